package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelier/config"
	"hotelier/shared/constant"
	"hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/transport/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWriter(env string) response.Writer {
	cfg := &config.Config{}
	cfg.Server.Env = env

	return response.NewWriter(cfg)
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return body
}

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	newWriter(constant.ServerEnvProduction).WithJSON(recorder, http.StatusOK, map[string]string{"id": "abc"})

	body := decode(t, recorder)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, constant.ContentTypeJSON, recorder.Header().Get(constant.RequestHeaderContentType))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]any{"id": "abc"}, body["data"])
	assert.NotContains(t, body, "message")
	assert.NotContains(t, body, "pagination")
}

func TestWithPagination(t *testing.T) {
	recorder := httptest.NewRecorder()

	pagination := dto.Pagination{Total: 25, Page: 1, Limit: 10, Pages: 3}
	newWriter(constant.ServerEnvProduction).WithPagination(recorder, http.StatusOK, []string{}, pagination)

	body := decode(t, recorder)

	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(25), body["pagination"].(map[string]any)["total"])
	assert.Equal(t, float64(3), body["pagination"].(map[string]any)["pages"])
}

func TestWithErrorFailure(t *testing.T) {
	recorder := httptest.NewRecorder()

	newWriter(constant.ServerEnvProduction).WithError(recorder, failure.NotFound("Booking not found"))

	body := decode(t, recorder)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Booking not found", body["message"])
	assert.NotContains(t, body, "detail")
}

// A failure wrapped on its way up still renders its own message and code.
func TestWithErrorWrappedFailure(t *testing.T) {
	recorder := httptest.NewRecorder()

	wrapped := fmt.Errorf("failed to create guest: %w", failure.Duplicate("email"))
	newWriter(constant.ServerEnvProduction).WithError(recorder, wrapped)

	body := decode(t, recorder)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Email already exists", body["message"])
}

func TestWithErrorUnrecognized(t *testing.T) {
	recorder := httptest.NewRecorder()

	newWriter(constant.ServerEnvProduction).WithError(recorder, errors.New("pq: connection refused"))

	body := decode(t, recorder)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, constant.ResponseErrorInternal, body["message"])
	assert.NotContains(t, body, "detail")
}

func TestWithErrorDetailOutsideProduction(t *testing.T) {
	recorder := httptest.NewRecorder()

	cause := errors.New("pq: connection refused")
	newWriter(constant.ServerEnvDevelopment).WithError(recorder, failure.InternalError(cause))

	body := decode(t, recorder)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, constant.ResponseErrorInternal, body["message"])
	assert.Equal(t, "pq: connection refused", body["detail"])
}

func TestWithRequestLimitExceeded(t *testing.T) {
	recorder := httptest.NewRecorder()

	newWriter(constant.ServerEnvProduction).WithRequestLimitExceeded(recorder)

	body := decode(t, recorder)

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, constant.ResponseErrorRequestLimitExceeded, body["message"])
}
