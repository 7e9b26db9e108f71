// internal/middleware/dev_auth.go
package middleware

import (
	"context"
	"net/http"

	"go_lingua_path/internal/model"
	"go_lingua_path/internal/webutil"

	"github.com/google/uuid"
)

// DevLearnerContextMiddleware is for local development and tests only.
// It trusts the X-Learner-ID header and does not check that the learner exists.
func DevLearnerContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		learnerIDStr := r.Header.Get("X-Learner-ID")
		if learnerIDStr == "" {
			logger.Warn("[DEV AUTH] X-Learner-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] Missing X-Learner-ID header.", "", model.ErrUnauthorized))
			return
		}

		learnerID, err := uuid.Parse(learnerIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] Invalid X-Learner-ID format", "value", learnerIDStr)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] Invalid X-Learner-ID format.", "", model.ErrUnauthorized))
			return
		}

		logger.Debug("[DEV AUTH] Learner ID set to context (no validation)", "learner_id", learnerID)
		ctx := context.WithValue(r.Context(), model.LearnerIDKey, learnerID)
		ctx = WithLogger(ctx, logger.With("learner_id", learnerID.String()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
