// internal/model/catalog.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultRequiredScore is the pass threshold (percent) used when the catalog does not set one.
const DefaultRequiredScore = 80

// TaskKind is the exercise type of a level.
type TaskKind string

const (
	TaskFlash     TaskKind = "flash"
	TaskTest      TaskKind = "test"
	TaskDictation TaskKind = "dictation"
)

func (k TaskKind) Valid() bool {
	switch k {
	case TaskFlash, TaskTest, TaskDictation:
		return true
	}
	return false
}

// Language is a language offered by the catalog.
type Language struct {
	LanguageID uuid.UUID `gorm:"type:uuid;primaryKey" json:"language_id"`
	Code       string    `gorm:"type:varchar(16);not null;unique" json:"code"`
	Name       string    `gorm:"not null" json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Language) TableName() string {
	return "languages"
}

// Module is an ordered group of levels within a language.
type Module struct {
	ModuleID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"module_id"`
	LanguageID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_module_language_position" json:"language_id"`
	Order         int       `gorm:"column:position;not null;uniqueIndex:uq_module_language_position" json:"order"`
	Title         string    `gorm:"not null" json:"title"`
	RequiredScore float64   `gorm:"not null;default:80" json:"required_score"`
	WordCount     int       `gorm:"not null;default:0" json:"word_count"`
	LevelCount    int       `gorm:"not null;default:0" json:"level_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Module) TableName() string {
	return "modules"
}

// Level is an ordered exercise unit within a module.
type Level struct {
	LevelID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"level_id"`
	ModuleID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_level_module_position" json:"module_id"`
	Order         int       `gorm:"column:position;not null;uniqueIndex:uq_level_module_position" json:"order"`
	Tasks         TaskKind  `gorm:"type:varchar(16);not null" json:"tasks"`
	RequiredScore float64   `gorm:"not null;default:80" json:"required_score"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Level) TableName() string {
	return "levels"
}

// Word is a single word in one language.
type Word struct {
	WordID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"word_id"`
	LanguageID uuid.UUID `gorm:"type:uuid;not null;index" json:"language_id"`
	Text       string    `gorm:"not null" json:"text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Word) TableName() string {
	return "words"
}

// Card pairs a source word with its translation inside a module.
type Card struct {
	CardID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"card_id"`
	WordID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_card_pair" json:"word_id"`
	TranslationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_card_pair" json:"translation_id"`
	ModuleID      uuid.UUID `gorm:"type:uuid;not null;index" json:"module_id"`
	Example       *string   `json:"example,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Card) TableName() string {
	return "cards"
}
