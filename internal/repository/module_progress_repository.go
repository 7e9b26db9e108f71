//go:generate mockery --name ModuleProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"time"

	"go_lingua_path/internal/middleware"
	"go_lingua_path/internal/model"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var moduleProgressConflictColumns = []clause.Column{
	{Name: "learner_id"}, {Name: "language_id"}, {Name: "module_id"},
}

// ModuleProgressRepository keeps per module aggregates, unlock flags and achievements.
type ModuleProgressRepository interface {
	// SaveAggregate writes total_levels, completed_levels and total_score for the row's key.
	// A new row takes progress.Unlocked; an existing row keeps its unlock flag and achievements.
	SaveAggregate(ctx context.Context, tx *gorm.DB, progress *model.ModuleProgress) (*model.ModuleProgress, error)
	Find(ctx context.Context, db *gorm.DB, key model.ModuleKey) (*model.ModuleProgress, error)
	// Lock reads the row with SELECT ... FOR UPDATE so that writers of the same key queue behind tx.
	Lock(ctx context.Context, tx *gorm.DB, key model.ModuleKey) (*model.ModuleProgress, error)
	// CreateIfAbsent inserts progress unless a row for its key exists. It reports whether it inserted.
	CreateIfAbsent(ctx context.Context, tx *gorm.DB, progress *model.ModuleProgress) (bool, error)
	// Unlock flips unlocked from false to true. It reports whether the row changed.
	Unlock(ctx context.Context, tx *gorm.DB, key model.ModuleKey) (bool, error)
	// AppendAchievements adds labels not yet present and returns the ones it added.
	AppendAchievements(ctx context.Context, tx *gorm.DB, key model.ModuleKey, labels ...string) ([]string, error)
	ListByLanguage(ctx context.Context, db *gorm.DB, learnerID, languageID uuid.UUID) ([]*model.ModuleProgress, error)
}

type gormModuleProgressRepository struct{}

func NewGormModuleProgressRepository() ModuleProgressRepository {
	return &gormModuleProgressRepository{}
}

func moduleKeyWhere(db *gorm.DB, key model.ModuleKey) *gorm.DB {
	return db.Where("learner_id = ? AND language_id = ? AND module_id = ?", key.LearnerID, key.LanguageID, key.ModuleID)
}

func keyOf(progress *model.ModuleProgress) model.ModuleKey {
	return model.ModuleKey{LearnerID: progress.LearnerID, LanguageID: progress.LanguageID, ModuleID: progress.ModuleID}
}

func (r *gormModuleProgressRepository) SaveAggregate(ctx context.Context, tx *gorm.DB, progress *model.ModuleProgress) (*model.ModuleProgress, error) {
	row := *progress
	if row.ProgressID == uuid.Nil {
		row.ProgressID = uuid.New()
	}
	if row.Achievements == nil {
		row.Achievements = datatypes.JSONSlice[string]{}
	}
	row.UpdatedAt = time.Now()

	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   moduleProgressConflictColumns,
		DoUpdates: clause.AssignmentColumns([]string{"total_levels", "completed_levels", "total_score", "updated_at"}),
	}).Create(&row)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error saving module progress in DB",
			"error", result.Error,
			"learner_id", progress.LearnerID.String(),
			"module_id", progress.ModuleID.String(),
		)
		return nil, translateError("gormModuleProgressRepository.SaveAggregate", result.Error)
	}
	return r.Find(ctx, tx, keyOf(progress))
}

func (r *gormModuleProgressRepository) Find(ctx context.Context, db *gorm.DB, key model.ModuleKey) (*model.ModuleProgress, error) {
	var progress model.ModuleProgress
	result := moduleKeyWhere(db.WithContext(ctx), key).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding module progress in DB",
			"error", result.Error,
			"learner_id", key.LearnerID.String(),
			"module_id", key.ModuleID.String(),
		)
		return nil, translateError("gormModuleProgressRepository.Find", result.Error)
	}
	return &progress, nil
}

func (r *gormModuleProgressRepository) Lock(ctx context.Context, tx *gorm.DB, key model.ModuleKey) (*model.ModuleProgress, error) {
	var progress model.ModuleProgress
	result := moduleKeyWhere(tx.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), key).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error locking module progress in DB",
			"error", result.Error,
			"learner_id", key.LearnerID.String(),
			"module_id", key.ModuleID.String(),
		)
		return nil, translateError("gormModuleProgressRepository.Lock", result.Error)
	}
	return &progress, nil
}

func (r *gormModuleProgressRepository) CreateIfAbsent(ctx context.Context, tx *gorm.DB, progress *model.ModuleProgress) (bool, error) {
	if progress.ProgressID == uuid.Nil {
		progress.ProgressID = uuid.New()
	}
	if progress.Achievements == nil {
		progress.Achievements = datatypes.JSONSlice[string]{}
	}
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{Columns: moduleProgressConflictColumns, DoNothing: true}).Create(progress)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error creating module progress in DB",
			"error", result.Error,
			"learner_id", progress.LearnerID.String(),
			"module_id", progress.ModuleID.String(),
		)
		return false, translateError("gormModuleProgressRepository.CreateIfAbsent", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *gormModuleProgressRepository) Unlock(ctx context.Context, tx *gorm.DB, key model.ModuleKey) (bool, error) {
	result := moduleKeyWhere(tx.WithContext(ctx).Model(&model.ModuleProgress{}), key).
		Where("unlocked = ?", false).
		Updates(map[string]interface{}{"unlocked": true, "updated_at": time.Now()})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error unlocking module progress in DB",
			"error", result.Error,
			"learner_id", key.LearnerID.String(),
			"module_id", key.ModuleID.String(),
		)
		return false, translateError("gormModuleProgressRepository.Unlock", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *gormModuleProgressRepository) AppendAchievements(ctx context.Context, tx *gorm.DB, key model.ModuleKey, labels ...string) ([]string, error) {
	current, err := r.Find(ctx, tx, key)
	if err != nil {
		return nil, err
	}

	added := lo.Uniq(lo.Without(labels, current.Achievements...))
	if len(added) == 0 {
		return nil, nil
	}

	merged := datatypes.JSONSlice[string](append(append([]string{}, current.Achievements...), added...))
	result := moduleKeyWhere(tx.WithContext(ctx).Model(&model.ModuleProgress{}), key).
		Updates(map[string]interface{}{"achievements": merged, "updated_at": time.Now()})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error appending module achievements in DB",
			"error", result.Error,
			"learner_id", key.LearnerID.String(),
			"module_id", key.ModuleID.String(),
			"labels", added,
		)
		return nil, translateError("gormModuleProgressRepository.AppendAchievements", result.Error)
	}
	return added, nil
}

func (r *gormModuleProgressRepository) ListByLanguage(ctx context.Context, db *gorm.DB, learnerID, languageID uuid.UUID) ([]*model.ModuleProgress, error) {
	var rows []*model.ModuleProgress
	result := db.WithContext(ctx).Where("learner_id = ? AND language_id = ?", learnerID, languageID).Find(&rows)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error listing module progress by language in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
			"language_id", languageID.String(),
		)
		return nil, translateError("gormModuleProgressRepository.ListByLanguage", result.Error)
	}
	return rows, nil
}
