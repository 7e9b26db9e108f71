package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go_lingua_path/internal/model"
	"go_lingua_path/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTAuthMiddleware validates the Bearer token issued by the identity service and stores the
// learner id (the "sub" claim) in the request context.
func JWTAuthMiddleware(secretKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorization header is required.", "", model.ErrUnauthorized))
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: invalid Authorization header format")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorization header must be 'Bearer <token>'.", "", model.ErrUnauthorized))
				return
			}

			token, err := jwt.Parse(headerParts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(secretKey), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: invalid token", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "Token is invalid.", "", model.ErrUnauthorized))
				return
			}

			subject, err := token.Claims.GetSubject()
			if err != nil || subject == "" {
				logger.Warn("JWT auth failed: subject claim missing", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "Token does not identify a learner.", "", model.ErrUnauthorized))
				return
			}

			learnerID, err := uuid.Parse(subject)
			if err != nil {
				logger.Warn("JWT auth failed: invalid subject format", "subject", subject, "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "Token does not identify a learner.", "", model.ErrUnauthorized))
				return
			}

			ctx := context.WithValue(r.Context(), model.LearnerIDKey, learnerID)
			ctx = WithLogger(ctx, logger.With("learner_id", learnerID.String()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetLearnerIDFromContext returns the learner id set by one of the auth middlewares.
func GetLearnerIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.LearnerIDKey).(uuid.UUID)
	if !ok || value == uuid.Nil {
		return uuid.Nil, model.NewAppError("UNAUTHORIZED", "Learner identity not found in request.", "", model.ErrUnauthorized)
	}
	return value, nil
}
