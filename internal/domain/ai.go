package domain

type TutorTipRequest struct {
	Subject       string `json:"subject"`
	Task          string `json:"task"`
	LearningStyle string `json:"learningStyle"`
}

type TutorTip struct {
	Tip       string   `json:"tip"`
	MicroPlan []string `json:"microPlan"`
}

type StudyPlanRequest struct {
	Answers       []string       `json:"answers"`
	InitialSurvey map[string]any `json:"initialSurvey"`
	FinalSurvey   map[string]any `json:"finalSurvey"`
}

// FallbackTutorTip is what clients show when the tutor-tip proxy is unavailable.
var FallbackTutorTip = TutorTip{
	Tip: "Focus on one clear outcome for this block, then self-check before moving on.",
	MicroPlan: []string{
		"Define the exact question you need to solve.",
		"Work in a short timed sprint with no distractions.",
		"Summarize what worked and one thing to improve.",
	},
}
