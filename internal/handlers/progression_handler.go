// internal/handlers/progression_handler.go
package handlers

import (
	"net/http"

	"go_lingua_path/internal/middleware"
	"go_lingua_path/internal/model"
	"go_lingua_path/internal/service"
	"go_lingua_path/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ProgressionHandler struct {
	progression service.ProgressionService
	progress    service.ProgressQueryService
}

func NewProgressionHandler(progression service.ProgressionService, progress service.ProgressQueryService) *ProgressionHandler {
	return &ProgressionHandler{progression: progression, progress: progress}
}

// SubmitCard handles POST /cards/{card_id}/submit.
func (h *ProgressionHandler) SubmitCard(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	cardID, err := uuid.Parse(chi.URLParam(r, "card_id"))
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_ID", "Invalid card ID format.", "card_id", model.ErrInvalidInput))
		return
	}

	var req model.SubmitCardRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Invalid submit request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.progression.Submit(r.Context(), learnerID, cardID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// GetLanguageProgress handles GET /language-progress?languageId=&moduleId=.
func (h *ProgressionHandler) GetLanguageProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	query := r.URL.Query()
	languageID, err := uuid.Parse(query.Get("languageId"))
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_ID", "languageId is required and must be a UUID.", "languageId", model.ErrInvalidInput))
		return
	}

	var moduleID *uuid.UUID
	if raw := query.Get("moduleId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			webutil.HandleError(w, logger, model.NewAppError("INVALID_ID", "moduleId must be a UUID.", "moduleId", model.ErrInvalidInput))
			return
		}
		moduleID = &id
	}

	progress, err := h.progress.GetLanguageProgress(r.Context(), learnerID, languageID, moduleID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}
