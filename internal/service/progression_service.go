//go:generate mockery --name ProgressionService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"go_lingua_path/internal/config"
	"go_lingua_path/internal/middleware"
	"go_lingua_path/internal/model"
	"go_lingua_path/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressionService grades card answers and moves learners through levels and modules.
type ProgressionService interface {
	Submit(ctx context.Context, learnerID, cardID uuid.UUID, req *model.SubmitCardRequest) (*model.SubmissionResult, error)
	// RecomputeModule re-derives a module's aggregate from the learner's level rows.
	RecomputeModule(ctx context.Context, key model.ModuleKey) (*model.ModuleProgress, error)
}

type progressionService struct {
	db          *gorm.DB
	catalogRepo repository.CatalogRepository
	learnerRepo repository.LearnerRepository
	attemptRepo repository.AttemptRepository
	levelRepo   repository.LevelProgressRepository
	moduleRepo  repository.ModuleProgressRepository
	cfg         *config.Config
}

func NewProgressionService(
	db *gorm.DB,
	catalogRepo repository.CatalogRepository,
	learnerRepo repository.LearnerRepository,
	attemptRepo repository.AttemptRepository,
	levelRepo repository.LevelProgressRepository,
	moduleRepo repository.ModuleProgressRepository,
	cfg *config.Config,
) ProgressionService {
	return &progressionService{
		db:          db,
		catalogRepo: catalogRepo,
		learnerRepo: learnerRepo,
		attemptRepo: attemptRepo,
		levelRepo:   levelRepo,
		moduleRepo:  moduleRepo,
		cfg:         cfg,
	}
}

// submission is the validated input of one Submit call plus the state its steps build up.
type submission struct {
	learnerID   uuid.UUID
	languageID  uuid.UUID
	sessionID   uuid.UUID
	task        model.TaskKind
	card        *model.Card
	level       *model.Level
	module      *model.Module
	source      *model.Word
	translation *model.Word
	totalCards  int64
	grade       GradeResult

	attempt          *model.Attempt
	levelProgress    *model.LevelProgress
	levelCompleted   bool
	moduleProgress   *model.ModuleProgress
	unlockedLevelID  *uuid.UUID
	unlockedModuleID *uuid.UUID
}

func (sub *submission) levelKey(levelID uuid.UUID) model.LevelKey {
	return model.LevelKey{LearnerID: sub.learnerID, LanguageID: sub.languageID, ModuleID: sub.module.ModuleID, LevelID: levelID}
}

func (sub *submission) moduleKey(moduleID uuid.UUID) model.ModuleKey {
	return model.ModuleKey{LearnerID: sub.learnerID, LanguageID: sub.languageID, ModuleID: moduleID}
}

type submitStep struct {
	name string
	run  func(ctx context.Context, tx *gorm.DB, sub *submission) error
}

func (s *progressionService) steps() []submitStep {
	return []submitStep{
		{name: "accumulate_attempt", run: s.accumulateAttempt},
		{name: "record_level", run: s.recordLevel},
		{name: "recompute_module", run: s.recomputeModule},
		{name: "unlock_next_level", run: s.unlockNextLevel},
		{name: "unlock_next_module", run: s.unlockNextModule},
	}
}

func (s *progressionService) Submit(ctx context.Context, learnerID, cardID uuid.UUID, req *model.SubmitCardRequest) (*model.SubmissionResult, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "card_id", cardID, "attempt_id", req.AttemptID)

	sub, err := s.validate(ctx, learnerID, cardID, req)
	if err != nil {
		logger.Warn("Submission rejected", "error", err)
		return nil, err
	}
	sub.grade = Grade(sub.source, sub.translation, sub.task, req.Answer)

	if err := s.runSteps(ctx, sub); err != nil {
		return nil, err
	}

	logger.Info("Submission recorded",
		"is_correct", sub.grade.IsCorrect,
		"level_score", sub.levelProgress.BestScore,
		"level_completed", sub.levelCompleted,
		"module_score", sub.moduleProgress.TotalScore,
	)
	return buildResult(sub), nil
}

// runSteps executes the pipeline in one transaction, or one transaction per step when
// atomic submits are disabled. In the latter case a failing step leaves earlier steps committed.
func (s *progressionService) runSteps(ctx context.Context, sub *submission) error {
	logger := middleware.GetLogger(ctx)
	steps := s.steps()

	if s.cfg.Progression.AtomicSubmit {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, step := range steps {
				if err := step.run(ctx, tx, sub); err != nil {
					logger.Error("Submission step failed, rolling back", "step", step.name, "error", err)
					return err
				}
			}
			return nil
		})
	}

	for _, step := range steps {
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return step.run(ctx, tx, sub)
		})
		if err != nil {
			logger.Error("Submission step failed, earlier steps stay committed", "step", step.name, "error", err)
			return err
		}
	}
	return nil
}

// validate performs every read-only check. Nothing is written before it succeeds.
func (s *progressionService) validate(ctx context.Context, learnerID, cardID uuid.UUID, req *model.SubmitCardRequest) (*submission, error) {
	db := s.db.WithContext(ctx)

	if _, err := s.learnerRepo.FindByID(ctx, db, learnerID); err != nil {
		return nil, lookupError(err, "LEARNER_NOT_FOUND", "Learner not found.", "")
	}

	ok, err := s.learnerRepo.HasLanguageAccess(ctx, db, learnerID, req.LanguageID)
	if err != nil {
		return nil, internalError(err, "Failed to check language access.")
	}
	if !ok {
		return nil, model.NewAppError("LANGUAGE_ACCESS_DENIED", "Learner is neither native in nor learning this language.", "languageId", model.ErrForbidden)
	}

	card, err := s.catalogRepo.GetCard(ctx, db, cardID)
	if err != nil {
		return nil, lookupError(err, "CARD_NOT_FOUND", "Card not found.", "card_id")
	}

	level, err := s.catalogRepo.GetLevel(ctx, db, req.LevelID)
	if err != nil {
		return nil, lookupError(err, "LEVEL_NOT_FOUND", "Level not found.", "levelId")
	}

	module, err := s.catalogRepo.GetModule(ctx, db, level.ModuleID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("LEVEL_MODULE_MISSING", "Level refers to a module that does not exist.", "levelId", model.ErrInvariantViolation)
		}
		return nil, internalError(err, "Failed to load module.")
	}

	if card.ModuleID != level.ModuleID {
		return nil, model.NewAppError("CARD_LEVEL_MISMATCH", "Card and level belong to different modules.", "levelId", model.ErrInvariantViolation)
	}
	if module.LanguageID != req.LanguageID {
		return nil, model.NewAppError("LEVEL_NOT_FOUND", "Level not found for this language.", "levelId", model.ErrNotFound)
	}

	source, err := s.catalogRepo.GetWord(ctx, db, card.WordID)
	if err != nil {
		return nil, wordError(err)
	}
	translation, err := s.catalogRepo.GetWord(ctx, db, card.TranslationID)
	if err != nil {
		return nil, wordError(err)
	}

	totalCards, err := s.catalogRepo.CountCardsInModule(ctx, db, module.ModuleID, req.LanguageID)
	if err != nil {
		return nil, internalError(err, "Failed to count module cards.")
	}
	if totalCards < 1 {
		return nil, model.NewAppError("MODULE_HAS_NO_CARDS", "Module has no cards for this language.", "", model.ErrInvariantViolation)
	}

	return &submission{
		learnerID:   learnerID,
		languageID:  req.LanguageID,
		sessionID:   req.AttemptID,
		task:        req.Type,
		card:        card,
		level:       level,
		module:      module,
		source:      source,
		translation: translation,
		totalCards:  totalCards,
	}, nil
}

func (s *progressionService) accumulateAttempt(ctx context.Context, tx *gorm.DB, sub *submission) error {
	correct := 0
	if sub.grade.IsCorrect {
		correct = 1
	}
	attempt, err := s.attemptRepo.Accumulate(ctx, tx, &model.Attempt{
		LearnerID:      sub.learnerID,
		SessionID:      sub.sessionID,
		LanguageID:     sub.languageID,
		ModuleID:       sub.module.ModuleID,
		LevelID:        sub.level.LevelID,
		Task:           sub.task,
		Score:          PerCardScore(sub.grade.Quality, sub.totalCards),
		CorrectAnswers: correct,
		TotalAnswers:   1,
	})
	if err != nil {
		return internalError(err, "Failed to record the attempt.")
	}
	sub.attempt = attempt
	return nil
}

func (s *progressionService) recordLevel(ctx context.Context, tx *gorm.DB, sub *submission) error {
	key := sub.levelKey(sub.level.LevelID)

	if err := s.lockModule(ctx, tx, sub.moduleKey(sub.module.ModuleID), sub.module); err != nil {
		return err
	}
	if _, err := s.levelRepo.EnsureExists(ctx, tx, key, initiallyUnlocked(sub.module, sub.level)); err != nil {
		return internalError(err, "Failed to create level progress.")
	}
	// The threshold check below runs on the rounded score, so a raw score within 0.005 of
	// RequiredScore completes the level.
	if _, err := s.levelRepo.RaiseBestScore(ctx, tx, key, levelScore(sub.attempt.Score)); err != nil {
		return internalError(err, "Failed to update level progress.")
	}

	progress, err := s.levelRepo.Find(ctx, tx, key)
	if err != nil {
		return internalError(err, "Failed to read level progress.")
	}

	sub.levelCompleted = isLevelCompleted(progress.BestScore, sub.level)
	if sub.levelCompleted && !progress.Unlocked {
		if _, err := s.levelRepo.Unlock(ctx, tx, key); err != nil {
			return internalError(err, "Failed to unlock the completed level.")
		}
		progress.Unlocked = true
	}
	sub.levelProgress = progress
	return nil
}

func (s *progressionService) recomputeModule(ctx context.Context, tx *gorm.DB, sub *submission) error {
	progress, err := s.recompute(ctx, tx, sub.moduleKey(sub.module.ModuleID), sub.module)
	if err != nil {
		return err
	}
	sub.moduleProgress = progress
	return nil
}

func (s *progressionService) RecomputeModule(ctx context.Context, key model.ModuleKey) (*model.ModuleProgress, error) {
	var progress *model.ModuleProgress
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		module, err := s.catalogRepo.GetModule(ctx, tx, key.ModuleID)
		if err != nil {
			return lookupError(err, "MODULE_NOT_FOUND", "Module not found.", "moduleId")
		}
		if module.LanguageID != key.LanguageID {
			return model.NewAppError("MODULE_NOT_FOUND", "Module not found for this language.", "moduleId", model.ErrNotFound)
		}
		progress, err = s.recompute(ctx, tx, key, module)
		return err
	})
	if err != nil {
		return nil, err
	}
	return progress, nil
}

// lockModule ensures the module row exists and holds its row lock until tx ends.
// It is taken before any level row of the module is written, so concurrent submits to
// different levels of one module queue here instead of saving stale aggregates.
func (s *progressionService) lockModule(ctx context.Context, tx *gorm.DB, key model.ModuleKey, module *model.Module) error {
	if _, err := s.moduleRepo.CreateIfAbsent(ctx, tx, &model.ModuleProgress{
		LearnerID:  key.LearnerID,
		LanguageID: key.LanguageID,
		ModuleID:   key.ModuleID,
		Unlocked:   module.Order == 1,
	}); err != nil {
		return internalError(err, "Failed to create module progress.")
	}
	if _, err := s.moduleRepo.Lock(ctx, tx, key); err != nil {
		return internalError(err, "Failed to lock module progress.")
	}
	return nil
}

// recompute rebuilds the aggregate of one module and appends any achievement it now earns.
func (s *progressionService) recompute(ctx context.Context, tx *gorm.DB, key model.ModuleKey, module *model.Module) (*model.ModuleProgress, error) {
	if err := s.lockModule(ctx, tx, key, module); err != nil {
		return nil, err
	}
	levels, err := s.catalogRepo.ListLevelsByModule(ctx, tx, module.ModuleID)
	if err != nil {
		return nil, internalError(err, "Failed to load module levels.")
	}
	rows, err := s.levelRepo.ListByModule(ctx, tx, key)
	if err != nil {
		return nil, internalError(err, "Failed to load level progress.")
	}

	agg := aggregateModule(levels, rows)
	progress, err := s.moduleRepo.SaveAggregate(ctx, tx, &model.ModuleProgress{
		LearnerID:       key.LearnerID,
		LanguageID:      key.LanguageID,
		ModuleID:        key.ModuleID,
		TotalLevels:     agg.TotalLevels,
		CompletedLevels: agg.CompletedLevels,
		TotalScore:      agg.TotalScore,
		Unlocked:        module.Order == 1,
	})
	if err != nil {
		return nil, internalError(err, "Failed to save module progress.")
	}

	if labels := moduleAchievements(progress.TotalScore, module); len(labels) > 0 {
		added, err := s.moduleRepo.AppendAchievements(ctx, tx, key, labels...)
		if err != nil {
			return nil, internalError(err, "Failed to record achievements.")
		}
		if len(added) > 0 {
			middleware.GetLogger(ctx).Info("Module achievements earned", "module_id", key.ModuleID, "achievements", added)
			progress.Achievements = append(progress.Achievements, added...)
		}
	}
	return progress, nil
}

func (s *progressionService) unlockNextLevel(ctx context.Context, tx *gorm.DB, sub *submission) error {
	if !sub.levelCompleted {
		return nil
	}
	next, err := s.catalogRepo.NextLevel(ctx, tx, sub.module.ModuleID, sub.level.Order)
	if err != nil {
		return internalError(err, "Failed to look up the next level.")
	}
	if next == nil {
		return nil
	}

	changed, err := s.levelRepo.Unlock(ctx, tx, sub.levelKey(next.LevelID))
	if err != nil {
		return internalError(err, "Failed to unlock the next level.")
	}
	if changed {
		middleware.GetLogger(ctx).Info("Level unlocked", "level_id", next.LevelID, "order", next.Order)
		id := next.LevelID
		sub.unlockedLevelID = &id
	}
	return nil
}

func (s *progressionService) unlockNextModule(ctx context.Context, tx *gorm.DB, sub *submission) error {
	if sub.moduleProgress.TotalScore < sub.module.RequiredScore {
		return nil
	}
	next, err := s.catalogRepo.NextModule(ctx, tx, sub.languageID, sub.module.Order)
	if err != nil {
		return internalError(err, "Failed to look up the next module.")
	}
	if next == nil {
		return nil
	}

	key := sub.moduleKey(next.ModuleID)
	levelCount, err := s.catalogRepo.CountLevelsInModule(ctx, tx, next.ModuleID)
	if err != nil {
		return internalError(err, "Failed to count levels of the next module.")
	}

	created, err := s.moduleRepo.CreateIfAbsent(ctx, tx, &model.ModuleProgress{
		LearnerID:   key.LearnerID,
		LanguageID:  key.LanguageID,
		ModuleID:    key.ModuleID,
		TotalLevels: int(levelCount),
		Unlocked:    true,
	})
	if err != nil {
		return internalError(err, "Failed to create progress for the next module.")
	}

	if !created {
		unlocked, err := s.moduleRepo.Unlock(ctx, tx, key)
		if err != nil {
			return internalError(err, "Failed to unlock the next module.")
		}
		if !unlocked {
			return nil
		}
		seeded, err := s.levelRepo.CountByModule(ctx, tx, key)
		if err != nil {
			return internalError(err, "Failed to count level progress of the next module.")
		}
		if seeded > 0 {
			sub.markModuleUnlocked(ctx, next)
			return nil
		}
	}

	if err := s.seedLevels(ctx, tx, key); err != nil {
		return err
	}
	sub.markModuleUnlocked(ctx, next)
	return nil
}

func (sub *submission) markModuleUnlocked(ctx context.Context, module *model.Module) {
	middleware.GetLogger(ctx).Info("Module unlocked", "module_id", module.ModuleID, "order", module.Order)
	id := module.ModuleID
	sub.unlockedModuleID = &id
}

// seedLevels creates a level row for every level of a newly unlocked module. Only the first level is reachable.
func (s *progressionService) seedLevels(ctx context.Context, tx *gorm.DB, key model.ModuleKey) error {
	levels, err := s.catalogRepo.ListLevelsByModule(ctx, tx, key.ModuleID)
	if err != nil {
		return internalError(err, "Failed to load levels of the next module.")
	}
	rows := make([]*model.LevelProgress, 0, len(levels))
	for _, l := range levels {
		rows = append(rows, &model.LevelProgress{
			ProgressID: uuid.New(),
			LearnerID:  key.LearnerID,
			LanguageID: key.LanguageID,
			ModuleID:   key.ModuleID,
			LevelID:    l.LevelID,
			Unlocked:   l.Order == 1,
		})
	}
	if err := s.levelRepo.BulkSeed(ctx, tx, rows); err != nil {
		return internalError(err, "Failed to seed levels of the next module.")
	}
	return nil
}

func buildResult(sub *submission) *model.SubmissionResult {
	return &model.SubmissionResult{
		Attempt:            sub.attempt,
		IsCorrect:          sub.grade.IsCorrect,
		CorrectTranslation: sub.grade.ExpectedText,
		Quality:            sub.grade.Quality,
		LevelCompleted:     sub.levelCompleted,
		LevelScore:         sub.levelProgress.BestScore,
		ModuleProgress: model.ModuleProgressSummary{
			CompletedLevels: sub.moduleProgress.CompletedLevels,
			TotalLevels:     sub.moduleProgress.TotalLevels,
			TotalScore:      sub.moduleProgress.TotalScore,
			Unlocked:        sub.moduleProgress.Unlocked,
		},
		UnlockedLevelID:  sub.unlockedLevelID,
		UnlockedModuleID: sub.unlockedModuleID,
	}
}

// lookupError turns a repository read error into a client facing error.
func lookupError(err error, code, message, field string) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAppError(code, message, field, model.ErrNotFound)
	}
	return internalError(err, "Failed to load catalog data.")
}

func wordError(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAppError("CARD_WORD_MISSING", "Card refers to a word that does not exist.", "", model.ErrInvariantViolation)
	}
	return internalError(err, "Failed to load card words.")
}

// internalError wraps err as a 500 unless it already carries a client facing detail.
func internalError(err error, message string) error {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return model.NewAppError("INTERNAL_SERVER_ERROR", message, "", err)
}
