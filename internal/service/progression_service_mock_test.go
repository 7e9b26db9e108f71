package service

import (
	"context"
	"errors"
	"testing"

	"go_lingua_path/internal/config"
	"go_lingua_path/internal/model"
	"go_lingua_path/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type progressionMocks struct {
	catalog *mocks.CatalogRepository
	learner *mocks.LearnerRepository
	attempt *mocks.AttemptRepository
	level   *mocks.LevelProgressRepository
	module  *mocks.ModuleProgressRepository
}

// Writers have no expectations set, so any call to them fails the test.
func newMockedProgressionService(t *testing.T) (ProgressionService, *progressionMocks) {
	m := &progressionMocks{
		catalog: mocks.NewCatalogRepository(t),
		learner: mocks.NewLearnerRepository(t),
		attempt: mocks.NewAttemptRepository(t),
		level:   mocks.NewLevelProgressRepository(t),
		module:  mocks.NewModuleProgressRepository(t),
	}
	cfg := &config.Config{Progression: config.ProgressionConfig{AtomicSubmit: true}}
	svc := NewProgressionService(setupTestDB(t), m.catalog, m.learner, m.attempt, m.level, m.module, cfg)
	return svc, m
}

func Test_progressionService_Submit_ValidationNeverWrites(t *testing.T) {
	ctx := context.Background()
	learnerID := uuid.New()
	cardID := uuid.New()
	languageID := uuid.New()
	moduleID := uuid.New()
	req := &model.SubmitCardRequest{
		LanguageID: languageID,
		LevelID:    uuid.New(),
		Type:       model.TaskDictation,
		AttemptID:  uuid.New(),
		Answer:     "hola",
	}
	card := &model.Card{CardID: cardID, WordID: uuid.New(), TranslationID: uuid.New(), ModuleID: moduleID}
	level := &model.Level{LevelID: req.LevelID, ModuleID: moduleID, Order: 1, Tasks: model.TaskDictation, RequiredScore: 80}
	module := &model.Module{ModuleID: moduleID, LanguageID: languageID, Order: 1, RequiredScore: 80}

	learnerOK := func(m *progressionMocks) {
		m.learner.On("FindByID", ctx, mock.Anything, learnerID).Return(&model.Learner{LearnerID: learnerID}, nil).Once()
		m.learner.On("HasLanguageAccess", ctx, mock.Anything, learnerID, languageID).Return(true, nil).Once()
	}
	catalogOK := func(m *progressionMocks) {
		m.catalog.On("GetCard", ctx, mock.Anything, cardID).Return(card, nil).Once()
		m.catalog.On("GetLevel", ctx, mock.Anything, req.LevelID).Return(level, nil).Once()
		m.catalog.On("GetModule", ctx, mock.Anything, moduleID).Return(module, nil).Once()
	}

	tests := []struct {
		name     string
		setup    func(m *progressionMocks)
		wantErr  error
		wantCode string
	}{
		{
			name: "access denied",
			setup: func(m *progressionMocks) {
				m.learner.On("FindByID", ctx, mock.Anything, learnerID).Return(&model.Learner{LearnerID: learnerID}, nil).Once()
				m.learner.On("HasLanguageAccess", ctx, mock.Anything, learnerID, languageID).Return(false, nil).Once()
			},
			wantErr:  model.ErrForbidden,
			wantCode: "LANGUAGE_ACCESS_DENIED",
		},
		{
			name: "access check fails",
			setup: func(m *progressionMocks) {
				m.learner.On("FindByID", ctx, mock.Anything, learnerID).Return(&model.Learner{LearnerID: learnerID}, nil).Once()
				m.learner.On("HasLanguageAccess", ctx, mock.Anything, learnerID, languageID).Return(false, errors.New("connection reset")).Once()
			},
			wantCode: "INTERNAL_SERVER_ERROR",
		},
		{
			name: "level module missing",
			setup: func(m *progressionMocks) {
				learnerOK(m)
				m.catalog.On("GetCard", ctx, mock.Anything, cardID).Return(card, nil).Once()
				m.catalog.On("GetLevel", ctx, mock.Anything, req.LevelID).Return(level, nil).Once()
				m.catalog.On("GetModule", ctx, mock.Anything, moduleID).Return(nil, model.ErrNotFound).Once()
			},
			wantErr:  model.ErrInvariantViolation,
			wantCode: "LEVEL_MODULE_MISSING",
		},
		{
			name: "translation word missing",
			setup: func(m *progressionMocks) {
				learnerOK(m)
				catalogOK(m)
				m.catalog.On("GetWord", ctx, mock.Anything, card.WordID).Return(&model.Word{WordID: card.WordID, Text: "hello"}, nil).Once()
				m.catalog.On("GetWord", ctx, mock.Anything, card.TranslationID).Return(nil, model.ErrNotFound).Once()
			},
			wantErr:  model.ErrInvariantViolation,
			wantCode: "CARD_WORD_MISSING",
		},
		{
			name: "module without cards",
			setup: func(m *progressionMocks) {
				learnerOK(m)
				catalogOK(m)
				m.catalog.On("GetWord", ctx, mock.Anything, card.WordID).Return(&model.Word{WordID: card.WordID, Text: "hello"}, nil).Once()
				m.catalog.On("GetWord", ctx, mock.Anything, card.TranslationID).Return(&model.Word{WordID: card.TranslationID, Text: "hola"}, nil).Once()
				m.catalog.On("CountCardsInModule", ctx, mock.Anything, moduleID, languageID).Return(int64(0), nil).Once()
			},
			wantErr:  model.ErrInvariantViolation,
			wantCode: "MODULE_HAS_NO_CARDS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newMockedProgressionService(t)
			tt.setup(m)

			res, err := svc.Submit(ctx, learnerID, cardID, req)

			require.Error(t, err)
			assert.Nil(t, res)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			var appErr *model.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.Detail.Code)

			m.attempt.AssertNotCalled(t, "Accumulate", mock.Anything, mock.Anything, mock.Anything)
			m.level.AssertNotCalled(t, "EnsureExists", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			m.module.AssertNotCalled(t, "SaveAggregate", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
