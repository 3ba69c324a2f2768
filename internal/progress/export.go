package progress

import (
	"fmt"
	"strings"
	"time"

	"github.com/yungbote/edubridge-backend/internal/domain"
)

const ExportFilename = "edubridge-progress-summary.txt"

// ExportSummary renders the downloadable plain-text progress report.
func ExportSummary(studentName string, weeklyGoals []string, s domain.ProgressSummary, now time.Time) string {
	// Only an absent name falls back; a supplied name is printed as given.
	name := studentName
	if name == "" {
		name = "Student"
	}
	lines := []string{
		"Student: " + name,
		"Date: " + now.UTC().Format("2006-01-02T15:04:05.000Z"),
		"Top Method: " + s.TopMethod,
		fmt.Sprintf("Completed Today: %d/%d", s.CompletedToday, s.TotalBlocks),
		fmt.Sprintf("Current Streak: %d day(s)", s.Streak),
		fmt.Sprintf("Method Approval: %d%%", s.MethodApprovalPercent),
		"Weekly Goals:",
	}
	for _, g := range weeklyGoals {
		lines = append(lines, "- "+g)
	}
	return strings.Join(lines, "\n")
}
