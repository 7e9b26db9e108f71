// internal/model/learner.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Learner is the identity the progression engine works for. Accounts themselves are managed elsewhere.
type Learner struct {
	LearnerID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"learner_id"`
	Name             string    `gorm:"not null" json:"name"`
	NativeLanguageID uuid.UUID `gorm:"type:uuid;not null;index" json:"native_language_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	LearningLanguages []LearnerLanguage `gorm:"foreignKey:LearnerID" json:"-"`
}

func (Learner) TableName() string {
	return "learners"
}

// LearnerLanguage is one entry of a learner's learning-language set.
type LearnerLanguage struct {
	LearnerID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	LanguageID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time
}

func (LearnerLanguage) TableName() string {
	return "learner_languages"
}

type ContextKey string

const (
	LearnerIDKey ContextKey = "learnerID"
)
