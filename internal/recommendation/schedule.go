package recommendation

import (
	"fmt"

	"github.com/yungbote/edubridge-backend/internal/domain"
)

const breakPlan = "Take a 5-minute reset after the block. Stand up, hydrate, then continue."

// BuildSchedule pairs practice blocks with ranked methods round-robin.
func BuildSchedule(blocks []domain.PracticeBlock, ranked []domain.RecommendationMethod) []domain.ScheduleDetail {
	out := make([]domain.ScheduleDetail, 0, len(blocks))
	for i, b := range blocks {
		strategy := string(catalog[0].Name)
		if len(ranked) > 0 {
			strategy = ranked[i%len(ranked)].Name
		}
		out = append(out, domain.ScheduleDetail{
			Subject:    b.Subject,
			Duration:   b.Duration,
			Task:       b.Task,
			Strategy:   strategy,
			Checkpoint: fmt.Sprintf("By minute %d, complete a quick self-check for this block.", checkpointMinute(i)),
			BreakPlan:  breakPlan,
			Output:     fmt.Sprintf("End with a short written summary of what you learned in %s.", b.Subject),
		})
	}
	return out
}

func checkpointMinute(i int) int {
	return max(10, 15+i*5)
}
