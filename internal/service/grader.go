package service

import (
	"strings"

	"go_lingua_path/internal/model"
)

// Answer quality on the 0..5 scale. Grading is binary.
const (
	QualityCorrect   = 5
	QualityIncorrect = 0
	maxQuality       = 5
)

// GradeResult is the outcome of checking one answer.
type GradeResult struct {
	IsCorrect    bool
	ExpectedText string
	Quality      int
}

// ExpectedAnswer returns the text a learner must produce for task.
// Flash cards ask for the source word, every other task asks for the translation.
func ExpectedAnswer(source, translation *model.Word, task model.TaskKind) string {
	if task == model.TaskFlash {
		return source.Text
	}
	return translation.Text
}

// Grade compares answer with the expected text ignoring case and surrounding whitespace.
func Grade(source, translation *model.Word, task model.TaskKind, answer string) GradeResult {
	expected := ExpectedAnswer(source, translation, task)
	if strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(expected)) {
		return GradeResult{IsCorrect: true, ExpectedText: expected, Quality: QualityCorrect}
	}
	return GradeResult{IsCorrect: false, ExpectedText: expected, Quality: QualityIncorrect}
}

// PerCardScore is the share of 100 points one answer of the given quality earns in a module of totalCards cards.
func PerCardScore(quality int, totalCards int64) float64 {
	if totalCards <= 0 {
		return 0
	}
	return float64(quality) / maxQuality * (100 / float64(totalCards))
}
