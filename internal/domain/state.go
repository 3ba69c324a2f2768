package domain

// LearningStyle is the self-reported learning preference from the onboarding survey.
type LearningStyle string

const (
	LearningStyleVisual      LearningStyle = "Visual"
	LearningStyleAudio       LearningStyle = "Audio"
	LearningStyleReading     LearningStyle = "Reading"
	LearningStyleKinesthetic LearningStyle = "Kinesthetic"
)

// WorkEnvironment is the preferred work setting from the final survey.
type WorkEnvironment string

const (
	WorkEnvironmentRemote WorkEnvironment = "Remote"
	WorkEnvironmentOffice WorkEnvironment = "Office"
	WorkEnvironmentHybrid WorkEnvironment = "Hybrid"
	WorkEnvironmentField  WorkEnvironment = "Field"
)

// Personality traits asked about in the final survey.
const (
	TraitAnalytical = "Analytical"
	TraitCreative   = "Creative"
	TraitSocial     = "Social"
	TraitOrganized  = "Organized"
)

type PracticeBlock struct {
	Subject  string `json:"subject"`
	Duration string `json:"duration"`
	Task     string `json:"task"`
}

type StudyPlan struct {
	WeeklyGoals       []string        `json:"weeklyGoals"`
	RecommendedMethod string          `json:"recommendedMethod,omitempty"`
	PracticeBlocks    []PracticeBlock `json:"practiceBlocks"`
}

type InitialSurvey struct {
	FavoriteSubjects string        `json:"favoriteSubjects,omitempty"`
	WeakSubjects     string        `json:"weakSubjects,omitempty"`
	Interests        string        `json:"interests,omitempty"`
	LearningStyle    LearningStyle `json:"learningStyle,omitempty"`
	StudyMethod      string        `json:"studyMethod,omitempty"`
	AcademicGoals    string        `json:"academicGoals,omitempty"`
	PersonalGoals    string        `json:"personalGoals,omitempty"`
}

type Preferences struct {
	WorkEnvironment  WorkEnvironment `json:"workEnvironment,omitempty"`
	StudyEnvironment string          `json:"studyEnvironment,omitempty"`
	Location         string          `json:"location,omitempty"`
	Approach         string          `json:"approach,omitempty"`
}

type FinalSurvey struct {
	// Personality maps a trait name to a 5-point agreement answer ("Strongly Agree" .. "Strongly Disagree").
	Personality map[string]string `json:"personality,omitempty"`
	Values      []string          `json:"values,omitempty"`
	Preferences *Preferences      `json:"preferences,omitempty"`
}

type MoodEntry struct {
	// Rating is nil when the entry carries no score.
	Rating *int   `json:"rating,omitempty"`
	Note   string `json:"note,omitempty"`
	Date   string `json:"date,omitempty"`
}

// StudentState is the accumulated client-held state a recommendation is computed from.
// MoodEntries are ordered newest first.
type StudentState struct {
	StudyPlan     *StudyPlan     `json:"studyPlan,omitempty"`
	InitialSurvey *InitialSurvey `json:"initialSurvey,omitempty"`
	FinalSurvey   *FinalSurvey   `json:"finalSurvey,omitempty"`
	MoodEntries   []MoodEntry    `json:"moodEntries"`
}

// PracticeBlocks returns the plan's blocks, or nil when there is no plan.
func (s StudentState) PracticeBlocks() []PracticeBlock {
	if s.StudyPlan == nil {
		return nil
	}
	return s.StudyPlan.PracticeBlocks
}
