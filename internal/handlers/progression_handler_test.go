// internal/handlers/progression_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_lingua_path/internal/handlers"
	"go_lingua_path/internal/middleware"
	"go_lingua_path/internal/model"
	"go_lingua_path/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(h *handlers.ProgressionHandler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.DevLearnerContextMiddleware)
	router.Post("/api/v1/cards/{card_id}/submit", h.SubmitCard)
	router.Get("/api/v1/language-progress", h.GetLanguageProgress)
	return router
}

func newRequest(t *testing.T, method, path string, body interface{}, learnerID *uuid.UUID) *http.Request {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if learnerID != nil {
		req.Header.Set("X-Learner-ID", learnerID.String())
	}
	return req
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp.Error
}

func TestProgressionHandler_SubmitCard(t *testing.T) {
	learnerID := uuid.New()
	cardID := uuid.New()
	validBody := map[string]interface{}{
		"languageId": uuid.NewString(),
		"levelId":    uuid.NewString(),
		"type":       "test",
		"attemptId":  uuid.NewString(),
		"answer":     "hola",
	}
	result := &model.SubmissionResult{
		Attempt:            &model.Attempt{AttemptID: uuid.New(), Score: 25, CorrectAnswers: 1, TotalAnswers: 1},
		IsCorrect:          true,
		CorrectTranslation: "hola",
		Quality:            5,
		LevelScore:         25,
		ModuleProgress:     model.ModuleProgressSummary{TotalLevels: 3, TotalScore: 10.42, Unlocked: true},
	}

	withBody := func(changes map[string]interface{}) map[string]interface{} {
		body := map[string]interface{}{}
		for k, v := range validBody {
			body[k] = v
		}
		for k, v := range changes {
			if v == nil {
				delete(body, k)
			} else {
				body[k] = v
			}
		}
		return body
	}

	tests := []struct {
		name       string
		learnerID  *uuid.UUID
		cardID     string
		body       interface{}
		setupMock  func(m *mocks.ProgressionService)
		wantStatus int
		wantCode   string
	}{
		{
			name:      "Success",
			learnerID: &learnerID,
			cardID:    cardID.String(),
			body:      validBody,
			setupMock: func(m *mocks.ProgressionService) {
				m.On("Submit", mock.Anything, learnerID, cardID, mock.MatchedBy(func(req *model.SubmitCardRequest) bool {
					return req.Type == model.TaskTest && req.Answer == "hola" && req.LanguageID.String() == validBody["languageId"]
				})).Return(result, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Fail - Missing learner identity",
			cardID:     cardID.String(),
			body:       validBody,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "Fail - Invalid card ID",
			learnerID:  &learnerID,
			cardID:     "not-a-uuid",
			body:       validBody,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID",
		},
		{
			name:       "Fail - Missing level ID",
			learnerID:  &learnerID,
			cardID:     cardID.String(),
			body:       withBody(map[string]interface{}{"levelId": nil}),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "Fail - Unknown task type",
			learnerID:  &learnerID,
			cardID:     cardID.String(),
			body:       withBody(map[string]interface{}{"type": "essay"}),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "Fail - Unknown field",
			learnerID:  &learnerID,
			cardID:     cardID.String(),
			body:       withBody(map[string]interface{}{"score": 100}),
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_JSON",
		},
		{
			name:       "Fail - Malformed JSON",
			learnerID:  &learnerID,
			cardID:     cardID.String(),
			body:       `{"languageId":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:      "Fail - Access denied",
			learnerID: &learnerID,
			cardID:    cardID.String(),
			body:      validBody,
			setupMock: func(m *mocks.ProgressionService) {
				m.On("Submit", mock.Anything, learnerID, cardID, mock.Anything).
					Return(nil, model.NewAppError("LANGUAGE_ACCESS_DENIED", "Learner is neither native in nor learning this language.", "languageId", model.ErrForbidden)).Once()
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "LANGUAGE_ACCESS_DENIED",
		},
		{
			name:      "Fail - Catalog inconsistency surfaces as server error",
			learnerID: &learnerID,
			cardID:    cardID.String(),
			body:      validBody,
			setupMock: func(m *mocks.ProgressionService) {
				m.On("Submit", mock.Anything, learnerID, cardID, mock.Anything).
					Return(nil, model.NewAppError("CARD_LEVEL_MISMATCH", "Card and level belong to different modules.", "levelId", model.ErrInvariantViolation)).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "CARD_LEVEL_MISMATCH",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			progression := mocks.NewProgressionService(t)
			if tc.setupMock != nil {
				tc.setupMock(progression)
			}
			router := newTestRouter(handlers.NewProgressionHandler(progression, mocks.NewProgressQueryService(t)))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, newRequest(t, http.MethodPost, "/api/v1/cards/"+tc.cardID+"/submit", tc.body, tc.learnerID))

			assert.Equal(t, tc.wantStatus, rr.Code, "body: %s", rr.Body.String())
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			if tc.wantStatus == http.StatusOK {
				var got map[string]interface{}
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, true, got["isCorrect"])
				assert.Equal(t, "hola", got["correctTranslation"])
				assert.Equal(t, 25.0, got["levelScore"])
				assert.NotContains(t, got, "unlockedLevelId")
				moduleProgress, ok := got["moduleProgress"].(map[string]interface{})
				require.True(t, ok)
				assert.Equal(t, 10.42, moduleProgress["totalScore"])
				return
			}
			if tc.wantCode != "" {
				assert.Equal(t, tc.wantCode, decodeError(t, rr).Code)
			}
			if tc.setupMock == nil {
				progression.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestProgressionHandler_GetLanguageProgress(t *testing.T) {
	learnerID := uuid.New()
	languageID := uuid.New()
	moduleID := uuid.New()
	response := &model.LanguageProgressResponse{
		LanguageID: languageID,
		Modules: []model.ModuleProgressView{
			{ModuleID: moduleID, Title: "Greetings", Order: 1, RequiredScore: 80, TotalLevels: 1, Unlocked: true, Achievements: []string{}},
		},
	}

	tests := []struct {
		name       string
		learnerID  *uuid.UUID
		query      string
		setupMock  func(m *mocks.ProgressQueryService)
		wantStatus int
		wantCode   string
	}{
		{
			name:      "Success - whole language",
			learnerID: &learnerID,
			query:     "?languageId=" + languageID.String(),
			setupMock: func(m *mocks.ProgressQueryService) {
				m.On("GetLanguageProgress", mock.Anything, learnerID, languageID, (*uuid.UUID)(nil)).Return(response, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:      "Success - one module",
			learnerID: &learnerID,
			query:     "?languageId=" + languageID.String() + "&moduleId=" + moduleID.String(),
			setupMock: func(m *mocks.ProgressQueryService) {
				m.On("GetLanguageProgress", mock.Anything, learnerID, languageID, mock.MatchedBy(func(id *uuid.UUID) bool {
					return id != nil && *id == moduleID
				})).Return(response, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Fail - Missing language",
			learnerID:  &learnerID,
			query:      "",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID",
		},
		{
			name:       "Fail - Invalid module",
			learnerID:  &learnerID,
			query:      "?languageId=" + languageID.String() + "&moduleId=abc",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID",
		},
		{
			name:      "Fail - Access denied",
			learnerID: &learnerID,
			query:     "?languageId=" + languageID.String(),
			setupMock: func(m *mocks.ProgressQueryService) {
				m.On("GetLanguageProgress", mock.Anything, learnerID, languageID, (*uuid.UUID)(nil)).
					Return(nil, model.NewAppError("LANGUAGE_ACCESS_DENIED", "denied", "languageId", model.ErrForbidden)).Once()
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "LANGUAGE_ACCESS_DENIED",
		},
		{
			name:      "Fail - Unexpected error is hidden",
			learnerID: &learnerID,
			query:     "?languageId=" + languageID.String(),
			setupMock: func(m *mocks.ProgressQueryService) {
				m.On("GetLanguageProgress", mock.Anything, learnerID, languageID, (*uuid.UUID)(nil)).
					Return(nil, assert.AnError).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			progress := mocks.NewProgressQueryService(t)
			if tc.setupMock != nil {
				tc.setupMock(progress)
			}
			router := newTestRouter(handlers.NewProgressionHandler(mocks.NewProgressionService(t), progress))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, newRequest(t, http.MethodGet, "/api/v1/language-progress"+tc.query, nil, tc.learnerID))

			assert.Equal(t, tc.wantStatus, rr.Code, "body: %s", rr.Body.String())
			if tc.wantStatus == http.StatusOK {
				var got model.LanguageProgressResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, languageID, got.LanguageID)
				require.Len(t, got.Modules, 1)
				assert.Equal(t, "Greetings", got.Modules[0].Title)
				return
			}
			detail := decodeError(t, rr)
			assert.Equal(t, tc.wantCode, detail.Code)
			assert.False(t, strings.Contains(detail.Message, assert.AnError.Error()), "internal errors are not leaked")
		})
	}
}
