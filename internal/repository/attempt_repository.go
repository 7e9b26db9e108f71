//go:generate mockery --name AttemptRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"time"

	"go_lingua_path/internal/middleware"
	"go_lingua_path/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttemptRepository stores the running score of review sessions.
type AttemptRepository interface {
	// Accumulate inserts delta as a new attempt for (LearnerID, SessionID) or adds its score,
	// correct and total answers onto the existing one, in a single statement.
	Accumulate(ctx context.Context, tx *gorm.DB, delta *model.Attempt) (*model.Attempt, error)
	FindBySession(ctx context.Context, db *gorm.DB, learnerID, sessionID uuid.UUID) (*model.Attempt, error)
}

type gormAttemptRepository struct{}

func NewGormAttemptRepository() AttemptRepository {
	return &gormAttemptRepository{}
}

func (r *gormAttemptRepository) Accumulate(ctx context.Context, tx *gorm.DB, delta *model.Attempt) (*model.Attempt, error) {
	logger := middleware.GetLogger(ctx)

	row := *delta
	if row.AttemptID == uuid.Nil {
		row.AttemptID = uuid.New()
	}
	row.UpdatedAt = time.Now()

	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "learner_id"}, {Name: "session_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"score":           gorm.Expr("attempts.score + excluded.score"),
			"correct_answers": gorm.Expr("attempts.correct_answers + excluded.correct_answers"),
			"total_answers":   gorm.Expr("attempts.total_answers + excluded.total_answers"),
			"updated_at":      gorm.Expr("excluded.updated_at"),
		}),
	}).Create(&row)
	if result.Error != nil {
		logger.Error("Error accumulating attempt in DB",
			"error", result.Error,
			"learner_id", delta.LearnerID.String(),
			"session_id", delta.SessionID.String(),
		)
		return nil, translateError("gormAttemptRepository.Accumulate", result.Error)
	}

	return r.FindBySession(ctx, tx, delta.LearnerID, delta.SessionID)
}

func (r *gormAttemptRepository) FindBySession(ctx context.Context, db *gorm.DB, learnerID, sessionID uuid.UUID) (*model.Attempt, error) {
	var attempt model.Attempt
	result := db.WithContext(ctx).Where("learner_id = ? AND session_id = ?", learnerID, sessionID).First(&attempt)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding attempt by session in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
			"session_id", sessionID.String(),
		)
		return nil, translateError("gormAttemptRepository.FindBySession", result.Error)
	}
	return &attempt, nil
}
