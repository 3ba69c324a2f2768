package domain

type RecommendationMethod struct {
	Name                string   `json:"name"`
	Score               int      `json:"score"`
	Summary             string   `json:"summary"`
	ImplementationSteps []string `json:"implementationSteps"`
	Reason              string   `json:"reason"`
}

type ScheduleDetail struct {
	Subject    string `json:"subject"`
	Duration   string `json:"duration"`
	Task       string `json:"task"`
	Strategy   string `json:"strategy"`
	Checkpoint string `json:"checkpoint"`
	BreakPlan  string `json:"breakPlan"`
	Output     string `json:"output"`
}

type PersonalizedRecommendations struct {
	TopMethod        RecommendationMethod   `json:"topMethod"`
	AlternateMethods []RecommendationMethod `json:"alternateMethods"`
	Explanation      []string               `json:"explanation"`
	SimplifiedPlan   string                 `json:"simplifiedPlan"`
	ScheduleDetails  []ScheduleDetail       `json:"scheduleDetails"`
}
