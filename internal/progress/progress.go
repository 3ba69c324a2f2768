// Package progress derives streaks, completion rates and the plain-text export from
// the completion and feedback history a client keeps.
package progress

import (
	"math"
	"time"

	"github.com/yungbote/edubridge-backend/internal/domain"
)

const (
	dateLayout = "2006-01-02"
	windowDays = 7
)

type Input struct {
	Completions []domain.ScheduleCompletion
	Feedback    []domain.MethodFeedback
	TotalBlocks int
	TopMethod   string
}

// Summarize computes the dashboard progress figures as of now. Days are UTC calendar days.
func Summarize(in Input, now time.Time) domain.ProgressSummary {
	today := now.UTC()
	todayKey := today.Format(dateLayout)

	perDay := map[string]int{}
	for _, c := range in.Completions {
		if c.Completed {
			perDay[c.Date]++
		}
	}
	completedToday := perDay[todayKey]

	last7 := make([]domain.DayCount, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		key := today.AddDate(0, 0, -i).Format(dateLayout)
		last7 = append(last7, domain.DayCount{Date: key, Count: perDay[key]})
	}

	helpful := 0
	for _, f := range in.Feedback {
		if f.Helpful {
			helpful++
		}
	}

	return domain.ProgressSummary{
		CompletedToday:        completedToday,
		TotalBlocks:           in.TotalBlocks,
		CompletionPercent:     percent(completedToday, in.TotalBlocks),
		Streak:                streak(perDay, today),
		Last7Days:             last7,
		MethodApprovalPercent: percent(helpful, len(in.Feedback)),
		TopMethod:             in.TopMethod,
	}
}

// streak counts consecutive days ending today with at least one completed block.
func streak(perDay map[string]int, today time.Time) int {
	n := 0
	for cursor := today; perDay[cursor.Format(dateLayout)] > 0; cursor = cursor.AddDate(0, 0, -1) {
		n++
	}
	return n
}

// percent rounds half up; zero denominators yield 0.
func percent(n, d int) int {
	if d <= 0 {
		return 0
	}
	return int(math.Floor(float64(n)*100/float64(d) + 0.5))
}
