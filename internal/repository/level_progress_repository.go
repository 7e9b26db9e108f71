//go:generate mockery --name LevelProgressRepository --output ./mocks --outpkg mocks --case=underscore
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

var levelProgressConflictColumns = []clause.Column{
	{Name: "learner_id"}, {Name: "language_id"}, {Name: "module_id"}, {Name: "level_id"},
}

// LevelProgressRepository keeps per level best scores and unlock flags.
// Every write is conditional so that best_score only grows and unlocked only turns true.
type LevelProgressRepository interface {
	// EnsureExists inserts a row for key with the given initial unlock state unless one exists,
	// and returns the stored row.
	EnsureExists(ctx context.Context, tx *gorm.DB, key model.LevelKey, unlocked bool) (*model.LevelProgress, error)
	Find(ctx context.Context, db *gorm.DB, key model.LevelKey) (*model.LevelProgress, error)
	// RaiseBestScore sets best_score to score when score is higher. It reports whether the row changed.
	RaiseBestScore(ctx context.Context, tx *gorm.DB, key model.LevelKey, score float64) (bool, error)
	// Unlock makes the row unlocked, creating it with best_score 0 if absent.
	// It reports whether the row went from locked (or missing) to unlocked.
	Unlock(ctx context.Context, tx *gorm.DB, key model.LevelKey) (bool, error)
	// BulkSeed inserts rows, skipping keys that already exist.
	BulkSeed(ctx context.Context, tx *gorm.DB, rows []*model.LevelProgress) error
	CountByModule(ctx context.Context, db *gorm.DB, key model.ModuleKey) (int64, error)
	ListByModule(ctx context.Context, db *gorm.DB, key model.ModuleKey) ([]*model.LevelProgress, error)
	ListByLanguage(ctx context.Context, db *gorm.DB, learnerID, languageID uuid.UUID) ([]*model.LevelProgress, error)
}

type gormLevelProgressRepository struct{}

func NewGormLevelProgressRepository() LevelProgressRepository {
	return &gormLevelProgressRepository{}
}

func levelKeyWhere(db *gorm.DB, key model.LevelKey) *gorm.DB {
	return db.Where("learner_id = ? AND language_id = ? AND module_id = ? AND level_id = ?",
		key.LearnerID, key.LanguageID, key.ModuleID, key.LevelID)
}

func (r *gormLevelProgressRepository) EnsureExists(ctx context.Context, tx *gorm.DB, key model.LevelKey, unlocked bool) (*model.LevelProgress, error) {
	row := &model.LevelProgress{
		ProgressID: uuid.New(),
		LearnerID:  key.LearnerID,
		LanguageID: key.LanguageID,
		ModuleID:   key.ModuleID,
		LevelID:    key.LevelID,
		Unlocked:   unlocked,
	}
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{Columns: levelProgressConflictColumns, DoNothing: true}).Create(row)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error creating level progress in DB",
			"error", result.Error,
			"learner_id", key.LearnerID.String(),
			"level_id", key.LevelID.String(),
		)
		return nil, translateError("gormLevelProgressRepository.EnsureExists", result.Error)
	}
	return r.Find(ctx, tx, key)
}

func (r *gormLevelProgressRepository) Find(ctx context.Context, db *gorm.DB, key model.LevelKey) (*model.LevelProgress, error) {
	var progress model.LevelProgress
	result := levelKeyWhere(db.WithContext(ctx), key).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding level progress in DB",
			"error", result.Error,
			"learner_id", key.LearnerID.String(),
			"level_id", key.LevelID.String(),
		)
		return nil, translateError("gormLevelProgressRepository.Find", result.Error)
	}
	return &progress, nil
}

func (r *gormLevelProgressRepository) RaiseBestScore(ctx context.Context, tx *gorm.DB, key model.LevelKey, score float64) (bool, error) {
	result := levelKeyWhere(tx.WithContext(ctx).Model(&model.LevelProgress{}), key).
		Where("best_score < ?", score).
		Updates(map[string]interface{}{"best_score": score, "updated_at": time.Now()})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error raising level best score in DB",
			"error", result.Error,
			"learner_id", key.LearnerID.String(),
			"level_id", key.LevelID.String(),
			"score", score,
		)
		return false, translateError("gormLevelProgressRepository.RaiseBestScore", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *gormLevelProgressRepository) Unlock(ctx context.Context, tx *gorm.DB, key model.LevelKey) (bool, error) {
	logger := middleware.GetLogger(ctx)
	row := &model.LevelProgress{
		ProgressID: uuid.New(),
		LearnerID:  key.LearnerID,
		LanguageID: key.LanguageID,
		ModuleID:   key.ModuleID,
		LevelID:    key.LevelID,
		Unlocked:   true,
	}
	created := tx.WithContext(ctx).Clauses(clause.OnConflict{Columns: levelProgressConflictColumns, DoNothing: true}).Create(row)
	if created.Error != nil {
		logger.Error("Error creating unlocked level progress in DB", "error", created.Error, "level_id", key.LevelID.String())
		return false, translateError("gormLevelProgressRepository.Unlock", created.Error)
	}
	if created.RowsAffected > 0 {
		return true, nil
	}

	updated := levelKeyWhere(tx.WithContext(ctx).Model(&model.LevelProgress{}), key).
		Where("unlocked = ?", false).
		Updates(map[string]interface{}{"unlocked": true, "updated_at": time.Now()})
	if updated.Error != nil {
		logger.Error("Error unlocking level progress in DB", "error", updated.Error, "level_id", key.LevelID.String())
		return false, translateError("gormLevelProgressRepository.Unlock", updated.Error)
	}
	return updated.RowsAffected > 0, nil
}

func (r *gormLevelProgressRepository) BulkSeed(ctx context.Context, tx *gorm.DB, rows []*model.LevelProgress) error {
	if len(rows) == 0 {
		return nil
	}
	for _, row := range rows {
		if row.ProgressID == uuid.Nil {
			row.ProgressID = uuid.New()
		}
	}
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{Columns: levelProgressConflictColumns, DoNothing: true}).Create(&rows)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error seeding level progress in DB",
			"error", result.Error,
			"module_id", rows[0].ModuleID.String(),
			"rows", len(rows),
		)
		return translateError("gormLevelProgressRepository.BulkSeed", result.Error)
	}
	return nil
}

func (r *gormLevelProgressRepository) CountByModule(ctx context.Context, db *gorm.DB, key model.ModuleKey) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.LevelProgress{}).
		Where("learner_id = ? AND language_id = ? AND module_id = ?", key.LearnerID, key.LanguageID, key.ModuleID).
		Count(&count)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error counting level progress in DB", "error", result.Error, "module_id", key.ModuleID.String())
		return 0, translateError("gormLevelProgressRepository.CountByModule", result.Error)
	}
	return count, nil
}

func (r *gormLevelProgressRepository) ListByModule(ctx context.Context, db *gorm.DB, key model.ModuleKey) ([]*model.LevelProgress, error) {
	var rows []*model.LevelProgress
	result := db.WithContext(ctx).
		Where("learner_id = ? AND language_id = ? AND module_id = ?", key.LearnerID, key.LanguageID, key.ModuleID).
		Find(&rows)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error listing level progress by module in DB", "error", result.Error, "module_id", key.ModuleID.String())
		return nil, translateError("gormLevelProgressRepository.ListByModule", result.Error)
	}
	return rows, nil
}

func (r *gormLevelProgressRepository) ListByLanguage(ctx context.Context, db *gorm.DB, learnerID, languageID uuid.UUID) ([]*model.LevelProgress, error) {
	var rows []*model.LevelProgress
	result := db.WithContext(ctx).Where("learner_id = ? AND language_id = ?", learnerID, languageID).Find(&rows)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error listing level progress by language in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
			"language_id", languageID.String(),
		)
		return nil, translateError("gormLevelProgressRepository.ListByLanguage", result.Error)
	}
	return rows, nil
}
