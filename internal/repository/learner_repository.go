//go:generate mockery --name LearnerRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"

	"go_lingua_path/internal/middleware"
	"go_lingua_path/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LearnerRepository answers identity questions about learners. Accounts are owned elsewhere.
type LearnerRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (*model.Learner, error)
	// HasLanguageAccess reports whether languageID is the learner's native language or one they are learning.
	HasLanguageAccess(ctx context.Context, db *gorm.DB, learnerID, languageID uuid.UUID) (bool, error)
}

type gormLearnerRepository struct{}

func NewGormLearnerRepository() LearnerRepository {
	return &gormLearnerRepository{}
}

func (r *gormLearnerRepository) FindByID(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (*model.Learner, error) {
	var learner model.Learner
	result := db.WithContext(ctx).Where("learner_id = ?", learnerID).First(&learner)
	if result.Error != nil {
		err := translateError("gormLearnerRepository.FindByID", result.Error)
		if !errors.Is(err, model.ErrNotFound) {
			middleware.GetLogger(ctx).Error("Error finding learner by ID in DB",
				"error", result.Error,
				"learner_id", learnerID.String(),
			)
		}
		return nil, err
	}
	return &learner, nil
}

func (r *gormLearnerRepository) HasLanguageAccess(ctx context.Context, db *gorm.DB, learnerID, languageID uuid.UUID) (bool, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.Learner{}).
		Where("learner_id = ?", learnerID).
		Where("native_language_id = ? OR EXISTS (SELECT 1 FROM learner_languages ll WHERE ll.learner_id = learners.learner_id AND ll.language_id = ?)",
			languageID, languageID).
		Count(&count)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error checking learner language access in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
			"language_id", languageID.String(),
		)
		return false, translateError("gormLearnerRepository.HasLanguageAccess", result.Error)
	}
	return count > 0, nil
}
