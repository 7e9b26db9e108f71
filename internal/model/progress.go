// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Achievement labels appended to ModuleProgress.
const (
	AchievementModulePassed   = "module_passed"
	AchievementModuleMastered = "module_mastered"
)

// Attempt accumulates the score of one review session (learner + session id).
type Attempt struct {
	AttemptID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"attempt_id"`
	LearnerID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attempt_session" json:"learner_id"`
	SessionID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attempt_session" json:"session_id"`
	LanguageID     uuid.UUID `gorm:"type:uuid;not null" json:"language_id"`
	ModuleID       uuid.UUID `gorm:"type:uuid;not null" json:"module_id"`
	LevelID        uuid.UUID `gorm:"type:uuid;not null;index" json:"level_id"`
	Task           TaskKind  `gorm:"type:varchar(16);not null" json:"task"`
	Score          float64   `gorm:"not null;default:0" json:"score"`
	CorrectAnswers int       `gorm:"not null;default:0" json:"correct_answers"`
	TotalAnswers   int       `gorm:"not null;default:0" json:"total_answers"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Attempt) TableName() string {
	return "attempts"
}

// LevelProgress is the best score and unlock state of one level for one learner.
// BestScore never decreases and Unlocked never goes back to false.
type LevelProgress struct {
	ProgressID uuid.UUID `gorm:"type:uuid;primaryKey" json:"progress_id"`
	LearnerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_level_progress,priority:1" json:"learner_id"`
	LanguageID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_level_progress,priority:2" json:"language_id"`
	ModuleID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_level_progress,priority:3" json:"module_id"`
	LevelID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_level_progress,priority:4" json:"level_id"`
	BestScore  float64   `gorm:"not null;default:0" json:"best_score"`
	Unlocked   bool      `gorm:"not null;default:false" json:"unlocked"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (LevelProgress) TableName() string {
	return "level_progress"
}

// ModuleProgress aggregates the level progress of one module for one learner.
// CompletedLevels and TotalScore are re-derived from LevelProgress on every write.
type ModuleProgress struct {
	ProgressID      uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"progress_id"`
	LearnerID       uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:uq_module_progress,priority:1" json:"learner_id"`
	LanguageID      uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:uq_module_progress,priority:2" json:"language_id"`
	ModuleID        uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:uq_module_progress,priority:3" json:"module_id"`
	TotalLevels     int                         `gorm:"not null;default:0" json:"total_levels"`
	CompletedLevels int                         `gorm:"not null;default:0" json:"completed_levels"`
	TotalScore      float64                     `gorm:"not null;default:0" json:"total_score"`
	Unlocked        bool                        `gorm:"not null;default:false" json:"unlocked"`
	Achievements    datatypes.JSONSlice[string] `json:"achievements"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}

func (ModuleProgress) TableName() string {
	return "module_progress"
}

// LevelKey addresses a LevelProgress row.
type LevelKey struct {
	LearnerID  uuid.UUID
	LanguageID uuid.UUID
	ModuleID   uuid.UUID
	LevelID    uuid.UUID
}

// ModuleKey addresses a ModuleProgress row.
type ModuleKey struct {
	LearnerID  uuid.UUID
	LanguageID uuid.UUID
	ModuleID   uuid.UUID
}
