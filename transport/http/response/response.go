package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"hotelier/config"
	"hotelier/shared/constant"
	"hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/logger"
)

// Envelope is the body shape shared by every endpoint, success and error alike.
type Envelope struct {
	Success    bool            `json:"success"`
	Data       any             `json:"data,omitempty"`
	Message    *string         `json:"message,omitempty"`
	Pagination *dto.Pagination `json:"pagination,omitempty"`
	Detail     *string         `json:"detail,omitempty"`
}

// Writer renders envelopes and normalizes errors to HTTP responses. Detail
// echoing is decided once at construction so no handler consults the
// environment at request time.
type Writer struct {
	includeDetail bool
}

func NewWriter(cfg *config.Config) Writer {
	return Writer{
		includeDetail: cfg.Server.Env != constant.ServerEnvProduction,
	}
}

// WithJSON sends a success envelope containing a JSON payload.
func (w Writer) WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, Envelope{Success: true, Data: jsonPayload})
}

// WithPagination sends a success envelope containing a JSON payload and page metadata.
func (w Writer) WithPagination(writer http.ResponseWriter, code int, jsonPayload any, pagination dto.Pagination) {
	response(writer, code, Envelope{Success: true, Data: jsonPayload, Pagination: &pagination})
}

// WithMessage sends a success envelope with a simple text message.
func (w Writer) WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Envelope{Success: true, Message: &message})
}

// WithError normalizes any error to a failure envelope. Unrecognized errors
// collapse to a generic 500; outside production the underlying cause is
// echoed in the detail field.
func (w Writer) WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	// A non-500 code means err carries a Failure; render the Failure's own
	// message so wrapping along the way never reaches the client.
	message := constant.ResponseErrorInternal

	var fail *failure.Failure
	if code != http.StatusInternalServerError && errors.As(err, &fail) {
		message = fail.Message
	}

	envelope := Envelope{Success: false, Message: &message}

	if w.includeDetail {
		detail := failure.Cause(err).Error()
		envelope.Detail = &detail
	}

	response(writer, code, envelope)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded.
func (w Writer) WithRequestLimitExceeded(writer http.ResponseWriter) {
	message := constant.ResponseErrorRequestLimitExceeded

	response(writer, http.StatusTooManyRequests, Envelope{Success: false, Message: &message})
}

func response(writer http.ResponseWriter, code int, payload Envelope) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(body)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
