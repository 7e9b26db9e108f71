// internal/model/submission.go
package model

import "github.com/google/uuid"

// SubmitCardRequest is the body of POST /cards/{card_id}/submit.
type SubmitCardRequest struct {
	LanguageID uuid.UUID `json:"languageId" validate:"required"`
	LevelID    uuid.UUID `json:"levelId" validate:"required"`
	Type       TaskKind  `json:"type" validate:"required,oneof=flash test dictation"`
	AttemptID  uuid.UUID `json:"attemptId" validate:"required"`
	Answer     string    `json:"answer" validate:"max=500"`
}

// ModuleProgressSummary is the module part of a submission result.
type ModuleProgressSummary struct {
	CompletedLevels int     `json:"completedLevels"`
	TotalLevels     int     `json:"totalLevels"`
	TotalScore      float64 `json:"totalScore"`
	Unlocked        bool    `json:"unlocked"`
}

// SubmissionResult is what the progression engine returns for one answer.
type SubmissionResult struct {
	Attempt            *Attempt              `json:"attempt"`
	IsCorrect          bool                  `json:"isCorrect"`
	CorrectTranslation string                `json:"correctTranslation"`
	Quality            int                   `json:"quality"`
	LevelCompleted     bool                  `json:"levelCompleted"`
	LevelScore         float64               `json:"levelScore"`
	ModuleProgress     ModuleProgressSummary `json:"moduleProgress"`
	UnlockedLevelID    *uuid.UUID            `json:"unlockedLevelId,omitempty"`
	UnlockedModuleID   *uuid.UUID            `json:"unlockedModuleId,omitempty"`
}

// LevelProgressView is one level row of the language progress projection.
type LevelProgressView struct {
	LevelID       uuid.UUID `json:"levelId"`
	Order         int       `json:"order"`
	Tasks         TaskKind  `json:"tasks"`
	RequiredScore float64   `json:"requiredScore"`
	BestScore     float64   `json:"bestScore"`
	Unlocked      bool      `json:"unlocked"`
	Completed     bool      `json:"completed"`
}

// ModuleProgressView is one module row of the language progress projection.
type ModuleProgressView struct {
	ModuleID        uuid.UUID           `json:"moduleId"`
	Title           string              `json:"title"`
	Order           int                 `json:"order"`
	RequiredScore   float64             `json:"requiredScore"`
	TotalLevels     int                 `json:"totalLevels"`
	CompletedLevels int                 `json:"completedLevels"`
	TotalScore      float64             `json:"totalScore"`
	Unlocked        bool                `json:"unlocked"`
	Achievements    []string            `json:"achievements"`
	Levels          []LevelProgressView `json:"levels"`
}

// LanguageProgressResponse is the body of GET /language-progress.
type LanguageProgressResponse struct {
	LanguageID uuid.UUID            `json:"languageId"`
	Modules    []ModuleProgressView `json:"modules"`
}
