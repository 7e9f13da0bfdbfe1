package validator_test

import (
	"strings"
	"testing"

	"hotelier/shared/failure"
	"hotelier/shared/validator"
)

type createRequest struct {
	GuestID    string   `json:"guestId"    validate:"required"`
	RoomID     string   `json:"roomId"     validate:"required"`
	TotalPrice *float64 `json:"totalPrice" validate:"required,gte=0"`
	Status     string   `json:"status"     validate:"omitempty,oneof=pending confirmed cancelled completed"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErr  bool
		contains []string
	}{
		{
			name:    "valid body",
			body:    `{"guestId":"g1","roomId":"r1","totalPrice":100}`,
			wantErr: false,
		},
		{
			name:    "zero price is present",
			body:    `{"guestId":"g1","roomId":"r1","totalPrice":0}`,
			wantErr: false,
		},
		{
			name:     "missing required fields are comma-joined",
			body:     `{"status":"pending"}`,
			wantErr:  true,
			contains: []string{"GuestID is required", "RoomID is required", "TotalPrice is required", ", "},
		},
		{
			name:     "invalid status value",
			body:     `{"guestId":"g1","roomId":"r1","totalPrice":10,"status":"unknown"}`,
			wantErr:  true,
			contains: []string{"Status must be one of"},
		},
		{
			name:     "malformed json",
			body:     `{"guestId":`,
			wantErr:  true,
			contains: []string{"failed to decode request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createRequest{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if !tt.wantErr {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}

				return
			}

			if err == nil {
				t.Fatal("expected an error, got nil")
			}

			if failure.GetCode(err) != 400 {
				t.Errorf("expected code 400, got %d", failure.GetCode(err))
			}

			for _, fragment := range tt.contains {
				if !strings.Contains(err.Error(), fragment) {
					t.Errorf("expected message %q to contain %q", err.Error(), fragment)
				}
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("not-an-email", "email"); err == nil {
		t.Error("expected an error for invalid email")
	}

	if err := validator.ValidateVar("guest@example.com", "email"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}
