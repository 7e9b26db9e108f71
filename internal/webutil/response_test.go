package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_lingua_path/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: model.ErrNotFound, want: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("repo: %w", model.ErrNotFound), want: http.StatusNotFound},
		{name: "invalid input", err: model.NewAppError("VALIDATION_ERROR", "bad", "answer", model.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "unauthorized", err: model.ErrUnauthorized, want: http.StatusUnauthorized},
		{name: "forbidden", err: model.NewAppError("LANGUAGE_ACCESS_DENIED", "no", "", model.ErrForbidden), want: http.StatusForbidden},
		{name: "conflict", err: model.ErrConflict, want: http.StatusConflict},
		{name: "invariant violation", err: model.NewAppError("CARD_LEVEL_MISMATCH", "x", "", model.ErrInvariantViolation), want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestHandleError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("app error detail is returned", func(t *testing.T) {
		rr := httptest.NewRecorder()
		HandleError(rr, logger, model.NewAppError("CARD_LEVEL_MISMATCH", "Card and level belong to different modules.", "levelId", model.ErrInvariantViolation))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		var resp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "CARD_LEVEL_MISMATCH", resp.Error.Code)
		assert.Equal(t, "Card and level belong to different modules.", resp.Error.Message)
		assert.Equal(t, "levelId", resp.Error.Field)
	})

	t.Run("plain error is hidden", func(t *testing.T) {
		rr := httptest.NewRecorder()
		HandleError(rr, logger, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "connection refused")
		var resp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "INTERNAL_SERVER_ERROR", resp.Error.Code)
	})
}

type decodeTarget struct {
	Name  string `json:"name" validate:"required"`
	Count int    `json:"count" validate:"max=3"`
}

func TestDecodeJSONBody(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantCode  string
		wantField string
	}{
		{name: "valid", body: `{"name":"a","count":2}`},
		{name: "empty body", body: ``, wantCode: "INVALID_REQUEST"},
		{name: "syntax error", body: `{"name":}`, wantCode: "INVALID_JSON"},
		{name: "wrong type", body: `{"name":"a","count":"two"}`, wantCode: "INVALID_JSON", wantField: "count"},
		{name: "unknown field", body: `{"name":"a","extra":1}`, wantCode: "INVALID_JSON"},
		{name: "missing required", body: `{"count":1}`, wantCode: "VALIDATION_ERROR", wantField: "name"},
		{name: "too large", body: `{"name":"a","count":4}`, wantCode: "VALIDATION_ERROR", wantField: "count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst decodeTarget
			err := DecodeJSONBody(req, &dst)

			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, "a", dst.Name)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
			var appErr *model.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.Detail.Code)
			if tt.wantField != "" {
				assert.Equal(t, tt.wantField, appErr.Detail.Field)
			}
		})
	}
}

func TestValidationMessagesUseJSONNames(t *testing.T) {
	err := ValidateStruct(&model.SubmitCardRequest{Type: "essay"})

	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Detail.Field, "languageId")
	assert.Contains(t, appErr.Detail.Field, "type")
	assert.Contains(t, appErr.Detail.Message, "language id is required.")
	assert.Contains(t, appErr.Detail.Message, "task type must be one of [flash test dictation].")
}
