//go:generate mockery --name ProgressQueryService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"go_lingua_path/internal/middleware"
	"go_lingua_path/internal/model"
	"go_lingua_path/internal/repository"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// ProgressQueryService is the read side of learner progress.
type ProgressQueryService interface {
	// GetLanguageProgress lists the modules of a language (or only moduleID when set) with the
	// learner's progress. Modules and levels without stored progress show their initial state.
	GetLanguageProgress(ctx context.Context, learnerID, languageID uuid.UUID, moduleID *uuid.UUID) (*model.LanguageProgressResponse, error)
}

type progressQueryService struct {
	db          *gorm.DB
	catalogRepo repository.CatalogRepository
	learnerRepo repository.LearnerRepository
	levelRepo   repository.LevelProgressRepository
	moduleRepo  repository.ModuleProgressRepository
}

func NewProgressQueryService(
	db *gorm.DB,
	catalogRepo repository.CatalogRepository,
	learnerRepo repository.LearnerRepository,
	levelRepo repository.LevelProgressRepository,
	moduleRepo repository.ModuleProgressRepository,
) ProgressQueryService {
	return &progressQueryService{
		db:          db,
		catalogRepo: catalogRepo,
		learnerRepo: learnerRepo,
		levelRepo:   levelRepo,
		moduleRepo:  moduleRepo,
	}
}

func (s *progressQueryService) GetLanguageProgress(ctx context.Context, learnerID, languageID uuid.UUID, moduleID *uuid.UUID) (*model.LanguageProgressResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "language_id", languageID)
	db := s.db.WithContext(ctx)

	if _, err := s.learnerRepo.FindByID(ctx, db, learnerID); err != nil {
		return nil, lookupError(err, "LEARNER_NOT_FOUND", "Learner not found.", "")
	}
	ok, err := s.learnerRepo.HasLanguageAccess(ctx, db, learnerID, languageID)
	if err != nil {
		return nil, internalError(err, "Failed to check language access.")
	}
	if !ok {
		return nil, model.NewAppError("LANGUAGE_ACCESS_DENIED", "Learner is neither native in nor learning this language.", "languageId", model.ErrForbidden)
	}

	modules, err := s.catalogRepo.ListModulesByLanguage(ctx, db, languageID)
	if err != nil {
		return nil, internalError(err, "Failed to load modules.")
	}
	if moduleID != nil {
		modules = lo.Filter(modules, func(m *model.Module, _ int) bool { return m.ModuleID == *moduleID })
		if len(modules) == 0 {
			return nil, model.NewAppError("MODULE_NOT_FOUND", "Module not found for this language.", "moduleId", model.ErrNotFound)
		}
	}

	moduleRows, err := s.moduleRepo.ListByLanguage(ctx, db, learnerID, languageID)
	if err != nil {
		return nil, internalError(err, "Failed to load module progress.")
	}
	levelRows, err := s.levelRepo.ListByLanguage(ctx, db, learnerID, languageID)
	if err != nil {
		return nil, internalError(err, "Failed to load level progress.")
	}

	moduleByID := lo.KeyBy(moduleRows, func(p *model.ModuleProgress) uuid.UUID { return p.ModuleID })
	levelByID := lo.KeyBy(levelRows, func(p *model.LevelProgress) uuid.UUID { return p.LevelID })

	views := make([]model.ModuleProgressView, 0, len(modules))
	for _, m := range modules {
		levels, err := s.catalogRepo.ListLevelsByModule(ctx, db, m.ModuleID)
		if err != nil {
			return nil, internalError(err, "Failed to load module levels.")
		}
		views = append(views, moduleView(m, levels, moduleByID[m.ModuleID], levelByID))
	}

	logger.Debug("Language progress loaded", "modules", len(views))
	return &model.LanguageProgressResponse{LanguageID: languageID, Modules: views}, nil
}

func moduleView(m *model.Module, levels []*model.Level, progress *model.ModuleProgress, levelByID map[uuid.UUID]*model.LevelProgress) model.ModuleProgressView {
	view := model.ModuleProgressView{
		ModuleID:      m.ModuleID,
		Title:         m.Title,
		Order:         m.Order,
		RequiredScore: m.RequiredScore,
		TotalLevels:   len(levels),
		Unlocked:      m.Order == 1,
		Achievements:  []string{},
		Levels:        make([]model.LevelProgressView, 0, len(levels)),
	}
	if progress != nil {
		view.CompletedLevels = progress.CompletedLevels
		view.TotalScore = progress.TotalScore
		view.Unlocked = progress.Unlocked
		view.Achievements = append(view.Achievements, progress.Achievements...)
	}

	for _, l := range levels {
		lv := model.LevelProgressView{
			LevelID:       l.LevelID,
			Order:         l.Order,
			Tasks:         l.Tasks,
			RequiredScore: l.RequiredScore,
			Unlocked:      initiallyUnlocked(m, l),
		}
		if p, ok := levelByID[l.LevelID]; ok {
			lv.BestScore = p.BestScore
			lv.Unlocked = p.Unlocked
			lv.Completed = isLevelCompleted(p.BestScore, l)
		}
		view.Levels = append(view.Levels, lv)
	}
	return view
}
