package domain

type ScheduleCompletion struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Subject   string `json:"subject"`
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

type MethodFeedback struct {
	Method  string `json:"method"`
	Helpful bool   `json:"helpful"`
	Date    string `json:"date"`
}

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type ProgressSummary struct {
	CompletedToday        int        `json:"completedToday"`
	TotalBlocks           int        `json:"totalBlocks"`
	CompletionPercent     int        `json:"completionPercent"`
	Streak                int        `json:"streak"`
	Last7Days             []DayCount `json:"last7Days"`
	MethodApprovalPercent int        `json:"methodApprovalPercent"`
	TopMethod             string     `json:"topMethod"`
}

// ProgressRequest is the client-held history posted for a progress summary or export.
type ProgressRequest struct {
	StudentName         string               `json:"studentName"`
	State               StudentState         `json:"state"`
	ScheduleCompletions []ScheduleCompletion `json:"scheduleCompletions"`
	MethodFeedback      []MethodFeedback     `json:"methodFeedback"`
}
