package service

import (
	"math"

	"go_lingua_path/internal/model"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const maxScore = 100

// roundScore rounds to two decimals so that sums of per card fractions hit thresholds exactly.
func roundScore(x float64) float64 {
	return math.Round(x*100) / 100
}

// levelScore is the value an attempt contributes to a level's best score.
func levelScore(attemptScore float64) float64 {
	return roundScore(math.Min(math.Max(attemptScore, 0), maxScore))
}

func isLevelCompleted(bestScore float64, level *model.Level) bool {
	return bestScore >= level.RequiredScore
}

// levelRatio is how far bestScore is towards the level threshold, capped at 1.
func levelRatio(bestScore float64, level *model.Level) float64 {
	if level.RequiredScore <= 0 {
		return 1
	}
	return math.Min(bestScore/level.RequiredScore, 1)
}

type moduleAggregate struct {
	TotalLevels     int
	CompletedLevels int
	TotalScore      float64
}

// aggregateModule derives module totals from the catalog levels and the learner's level rows.
// Levels without a row count as not attempted.
func aggregateModule(levels []*model.Level, rows []*model.LevelProgress) moduleAggregate {
	if len(levels) == 0 {
		return moduleAggregate{}
	}
	byLevel := lo.KeyBy(rows, func(p *model.LevelProgress) uuid.UUID { return p.LevelID })

	completed := lo.CountBy(levels, func(l *model.Level) bool {
		p, ok := byLevel[l.LevelID]
		return ok && isLevelCompleted(p.BestScore, l)
	})
	ratioSum := lo.SumBy(levels, func(l *model.Level) float64 {
		p, ok := byLevel[l.LevelID]
		if !ok {
			return 0
		}
		return levelRatio(p.BestScore, l)
	})

	return moduleAggregate{
		TotalLevels:     len(levels),
		CompletedLevels: completed,
		TotalScore:      roundScore(ratioSum / float64(len(levels)) * maxScore),
	}
}

// moduleAchievements lists the labels a module with totalScore has earned.
func moduleAchievements(totalScore float64, module *model.Module) []string {
	var labels []string
	if totalScore >= module.RequiredScore {
		labels = append(labels, model.AchievementModulePassed)
	}
	if totalScore >= maxScore {
		labels = append(labels, model.AchievementModuleMastered)
	}
	return labels
}

// initiallyUnlocked reports whether a level is reachable before any cascade ran.
func initiallyUnlocked(module *model.Module, level *model.Level) bool {
	return module.Order == 1 && level.Order == 1
}
