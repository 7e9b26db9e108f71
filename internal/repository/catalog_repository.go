//go:generate mockery --name CatalogRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"

	"go_lingua_path/internal/middleware"
	"go_lingua_path/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogRepository is the read-only view of languages, modules, levels, words and cards.
type CatalogRepository interface {
	GetModule(ctx context.Context, db *gorm.DB, moduleID uuid.UUID) (*model.Module, error)
	GetLevel(ctx context.Context, db *gorm.DB, levelID uuid.UUID) (*model.Level, error)
	GetCard(ctx context.Context, db *gorm.DB, cardID uuid.UUID) (*model.Card, error)
	GetWord(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.Word, error)
	// CountCardsInModule counts the cards of a module whose translation word is in languageID.
	CountCardsInModule(ctx context.Context, db *gorm.DB, moduleID, languageID uuid.UUID) (int64, error)
	CountLevelsInModule(ctx context.Context, db *gorm.DB, moduleID uuid.UUID) (int64, error)
	ListLevelsByModule(ctx context.Context, db *gorm.DB, moduleID uuid.UUID) ([]*model.Level, error)
	ListModulesByLanguage(ctx context.Context, db *gorm.DB, languageID uuid.UUID) ([]*model.Module, error)
	// NextLevel returns the level at order+1 in the module, or nil when order is the last one.
	NextLevel(ctx context.Context, db *gorm.DB, moduleID uuid.UUID, order int) (*model.Level, error)
	// NextModule returns the module at order+1 in the language, or nil when order is the last one.
	NextModule(ctx context.Context, db *gorm.DB, languageID uuid.UUID, order int) (*model.Module, error)
}

type gormCatalogRepository struct{}

func NewGormCatalogRepository() CatalogRepository {
	return &gormCatalogRepository{}
}

func (r *gormCatalogRepository) GetModule(ctx context.Context, db *gorm.DB, moduleID uuid.UUID) (*model.Module, error) {
	var module model.Module
	if err := db.WithContext(ctx).Where("module_id = ?", moduleID).First(&module).Error; err != nil {
		return nil, r.lookupError(ctx, "gormCatalogRepository.GetModule", err, "module_id", moduleID)
	}
	return &module, nil
}

func (r *gormCatalogRepository) GetLevel(ctx context.Context, db *gorm.DB, levelID uuid.UUID) (*model.Level, error) {
	var level model.Level
	if err := db.WithContext(ctx).Where("level_id = ?", levelID).First(&level).Error; err != nil {
		return nil, r.lookupError(ctx, "gormCatalogRepository.GetLevel", err, "level_id", levelID)
	}
	return &level, nil
}

func (r *gormCatalogRepository) GetCard(ctx context.Context, db *gorm.DB, cardID uuid.UUID) (*model.Card, error) {
	var card model.Card
	if err := db.WithContext(ctx).Where("card_id = ?", cardID).First(&card).Error; err != nil {
		return nil, r.lookupError(ctx, "gormCatalogRepository.GetCard", err, "card_id", cardID)
	}
	return &card, nil
}

func (r *gormCatalogRepository) GetWord(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.Word, error) {
	var word model.Word
	if err := db.WithContext(ctx).Where("word_id = ?", wordID).First(&word).Error; err != nil {
		return nil, r.lookupError(ctx, "gormCatalogRepository.GetWord", err, "word_id", wordID)
	}
	return &word, nil
}

func (r *gormCatalogRepository) CountCardsInModule(ctx context.Context, db *gorm.DB, moduleID, languageID uuid.UUID) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Card{}).
		Joins("JOIN words ON words.word_id = cards.translation_id").
		Where("cards.module_id = ? AND words.language_id = ?", moduleID, languageID).
		Count(&count).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error counting cards in module",
			"error", err,
			"module_id", moduleID.String(),
			"language_id", languageID.String(),
		)
		return 0, translateError("gormCatalogRepository.CountCardsInModule", err)
	}
	return count, nil
}

func (r *gormCatalogRepository) CountLevelsInModule(ctx context.Context, db *gorm.DB, moduleID uuid.UUID) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Level{}).Where("module_id = ?", moduleID).Count(&count).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error counting levels in module", "error", err, "module_id", moduleID.String())
		return 0, translateError("gormCatalogRepository.CountLevelsInModule", err)
	}
	return count, nil
}

func (r *gormCatalogRepository) ListLevelsByModule(ctx context.Context, db *gorm.DB, moduleID uuid.UUID) ([]*model.Level, error) {
	var levels []*model.Level
	if err := db.WithContext(ctx).Where("module_id = ?", moduleID).Order("position ASC").Find(&levels).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing levels by module", "error", err, "module_id", moduleID.String())
		return nil, translateError("gormCatalogRepository.ListLevelsByModule", err)
	}
	return levels, nil
}

func (r *gormCatalogRepository) ListModulesByLanguage(ctx context.Context, db *gorm.DB, languageID uuid.UUID) ([]*model.Module, error) {
	var modules []*model.Module
	if err := db.WithContext(ctx).Where("language_id = ?", languageID).Order("position ASC").Find(&modules).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing modules by language", "error", err, "language_id", languageID.String())
		return nil, translateError("gormCatalogRepository.ListModulesByLanguage", err)
	}
	return modules, nil
}

func (r *gormCatalogRepository) NextLevel(ctx context.Context, db *gorm.DB, moduleID uuid.UUID, order int) (*model.Level, error) {
	var level model.Level
	err := db.WithContext(ctx).Where("module_id = ? AND position = ?", moduleID, order+1).First(&level).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, r.lookupError(ctx, "gormCatalogRepository.NextLevel", err, "module_id", moduleID)
	}
	return &level, nil
}

func (r *gormCatalogRepository) NextModule(ctx context.Context, db *gorm.DB, languageID uuid.UUID, order int) (*model.Module, error) {
	var module model.Module
	err := db.WithContext(ctx).Where("language_id = ? AND position = ?", languageID, order+1).First(&module).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, r.lookupError(ctx, "gormCatalogRepository.NextModule", err, "language_id", languageID)
	}
	return &module, nil
}

func (r *gormCatalogRepository) lookupError(ctx context.Context, op string, err error, key string, id uuid.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ErrNotFound
	}
	middleware.GetLogger(ctx).Error("Error reading catalog", "op", op, "error", err, key, id.String())
	return translateError(op, err)
}
