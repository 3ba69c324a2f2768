package recommendation

import "github.com/yungbote/edubridge-backend/internal/domain"

const neutralLevel = 3

// Signals are the normalized inputs the scoring rules read.
type Signals struct {
	LearningStyle   domain.LearningStyle
	BaselineMethod  string
	Personality     map[string]int
	LatestMood      int
	WorkEnvironment domain.WorkEnvironment
}

// Trait returns the 1-5 agreement level for a trait, or 3 when it was not answered.
func (s Signals) Trait(name string) int {
	if lvl, ok := s.Personality[name]; ok {
		return lvl
	}
	return neutralLevel
}

// AgreementLevel maps a 5-point Likert answer onto 1..5. Unknown answers are neutral.
func AgreementLevel(answer string) int {
	switch answer {
	case "Strongly Agree":
		return 5
	case "Agree":
		return 4
	case "Neutral":
		return 3
	case "Disagree":
		return 2
	case "Strongly Disagree":
		return 1
	default:
		return neutralLevel
	}
}

func ExtractSignals(state domain.StudentState) Signals {
	sig := Signals{
		Personality: map[string]int{},
		LatestMood:  neutralLevel,
	}
	if s := state.InitialSurvey; s != nil {
		sig.LearningStyle = s.LearningStyle
		sig.BaselineMethod = s.StudyMethod
	}
	if f := state.FinalSurvey; f != nil {
		for trait, answer := range f.Personality {
			sig.Personality[trait] = AgreementLevel(answer)
		}
		if f.Preferences != nil {
			sig.WorkEnvironment = f.Preferences.WorkEnvironment
		}
	}
	if len(state.MoodEntries) > 0 && state.MoodEntries[0].Rating != nil {
		sig.LatestMood = *state.MoodEntries[0].Rating
	}
	return sig
}
