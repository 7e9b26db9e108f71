package service

import (
	"testing"

	"go_lingua_path/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestLevelScore_CompletionUsesRoundedScore(t *testing.T) {
	level := &model.Level{RequiredScore: 80}

	tests := []struct {
		name          string
		attemptScore  float64
		wantScore     float64
		wantCompleted bool
	}{
		{name: "exact threshold", attemptScore: 80, wantScore: 80, wantCompleted: true},
		{name: "within half a hundredth rounds up", attemptScore: 79.996, wantScore: 80, wantCompleted: true},
		{name: "below half a hundredth stays short", attemptScore: 79.994, wantScore: 79.99, wantCompleted: false},
		{name: "negative is clamped", attemptScore: -5, wantScore: 0, wantCompleted: false},
		{name: "replays are capped", attemptScore: 125, wantScore: 100, wantCompleted: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := levelScore(tt.attemptScore)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantCompleted, isLevelCompleted(score, level))
		})
	}
}
