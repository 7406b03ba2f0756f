package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondBadRequest(rec, "некорректная дата")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"некорректная дата"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	RespondInternalError(rec)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"внутренняя ошибка сервера"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	RespondUnauthorized(rec)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDecodeJSON(t *testing.T) {
	var body struct {
		SessionDuration int `json:"sessionDuration"`
	}

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"sessionDuration":30}`))
	require.NoError(t, DecodeJSON(req, &body))
	assert.Equal(t, 30, body.SessionDuration)

	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"unknown":1}`))
	assert.Error(t, DecodeJSON(req, &body))

	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(``))
	assert.Error(t, DecodeJSON(req, &body))
}
