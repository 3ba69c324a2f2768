// Package recommendation ranks the study-method catalog against a student's survey,
// mood and personality answers and lays the result over their practice blocks.
//
// Everything here is a pure function of its input: no I/O, no shared mutable state.
package recommendation

import (
	"github.com/yungbote/edubridge-backend/internal/domain"
)

const (
	alternateCount = 3

	fallbackSimplifiedPlan = "Use short focused sessions with checkpoints and regular review."

	explanationPrimary    = "Primary method was selected from your learning style and personality responses."
	explanationAlternates = "Alternates are included so you can rotate methods if your energy or workload changes."
)

func BuildPersonalizedRecommendations(state domain.StudentState) domain.PersonalizedRecommendations {
	sig := ExtractSignals(state)
	ranked := Rank(sig)

	top := ranked[0]
	end := min(1+alternateCount, len(ranked))
	alternates := append([]domain.RecommendationMethod(nil), ranked[1:end]...)

	simplified := fallbackSimplifiedPlan
	if m, ok := Lookup(top.Name); ok {
		simplified = m.Simplified
	}

	return domain.PersonalizedRecommendations{
		TopMethod:        top,
		AlternateMethods: alternates,
		Explanation: []string{
			explanationPrimary,
			"Top fit reason: " + top.Reason,
			explanationAlternates,
		},
		SimplifiedPlan:  simplified,
		ScheduleDetails: BuildSchedule(state.PracticeBlocks(), ranked),
	}
}
