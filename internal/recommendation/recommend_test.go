package recommendation

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/yungbote/edubridge-backend/internal/domain"
)

func TestBuildPersonalizedRecommendationsDefaults(t *testing.T) {
	t.Parallel()

	got := BuildPersonalizedRecommendations(domain.StudentState{})

	if got.TopMethod.Name != string(MethodPomodoro) || got.TopMethod.Score != 60 {
		t.Fatalf("unexpected top method: got=%s/%d", got.TopMethod.Name, got.TopMethod.Score)
	}
	if got.TopMethod.Reason != "Strong fit for consistency." {
		t.Fatalf("unexpected fallback reason: %q", got.TopMethod.Reason)
	}
	wantAlts := []string{string(MethodActiveRecall), string(MethodProblemLadder), string(MethodSpacedRepetition)}
	if len(got.AlternateMethods) != len(wantAlts) {
		t.Fatalf("alternates: got=%d want=%d", len(got.AlternateMethods), len(wantAlts))
	}
	for i, name := range wantAlts {
		if got.AlternateMethods[i].Name != name {
			t.Fatalf("alternate %d: got=%q want=%q", i, got.AlternateMethods[i].Name, name)
		}
	}
	if got.SimplifiedPlan != "Study in short rounds, then take quick breaks and repeat." {
		t.Fatalf("unexpected simplified plan: %q", got.SimplifiedPlan)
	}
	if got.ScheduleDetails == nil || len(got.ScheduleDetails) != 0 {
		t.Fatalf("expected empty non-nil schedule, got %#v", got.ScheduleDetails)
	}
	if len(got.Explanation) != 3 {
		t.Fatalf("explanation lines: got=%d want=3", len(got.Explanation))
	}
	if got.Explanation[1] != "Top fit reason: Strong fit for consistency." {
		t.Fatalf("unexpected explanation line: %q", got.Explanation[1])
	}
}

func TestBuildPersonalizedRecommendationsVisualLearner(t *testing.T) {
	t.Parallel()

	got := BuildPersonalizedRecommendations(domain.StudentState{
		InitialSurvey: &domain.InitialSurvey{LearningStyle: domain.LearningStyleVisual},
	})
	if got.TopMethod.Name != string(MethodConceptMapping) || got.TopMethod.Score != 62 {
		t.Fatalf("unexpected top method: got=%s/%d", got.TopMethod.Name, got.TopMethod.Score)
	}
	if got.TopMethod.Reason != "Your visual learning style aligns with concept maps." {
		t.Fatalf("unexpected reason: %q", got.TopMethod.Reason)
	}
	if got.SimplifiedPlan != "Draw how ideas connect instead of memorizing isolated facts." {
		t.Fatalf("unexpected simplified plan: %q", got.SimplifiedPlan)
	}
}

func TestBuildPersonalizedRecommendationsLowMood(t *testing.T) {
	t.Parallel()

	got := BuildPersonalizedRecommendations(domain.StudentState{
		MoodEntries: []domain.MoodEntry{{Rating: rating(1)}, {Rating: rating(5)}},
	})
	if got.TopMethod.Name != string(MethodPomodoro) || got.TopMethod.Score != 66 {
		t.Fatalf("unexpected top method: got=%s/%d", got.TopMethod.Name, got.TopMethod.Score)
	}
	if got.TopMethod.Reason != "Short focused rounds help when motivation is lower." {
		t.Fatalf("unexpected reason: %q", got.TopMethod.Reason)
	}
}

func TestBuildPersonalizedRecommendationsSchedule(t *testing.T) {
	t.Parallel()

	state := domain.StudentState{
		StudyPlan: &domain.StudyPlan{
			PracticeBlocks: []domain.PracticeBlock{
				{Subject: "Mathematics", Duration: "45 mins", Task: "Calculus Limits - Practice Set A"},
				{Subject: "History", Duration: "30 mins", Task: "WWII Timeline Construction"},
				{Subject: "Physics", Duration: "45 mins", Task: "Force Diagrams Review"},
			},
		},
	}
	got := BuildPersonalizedRecommendations(state)
	if len(got.ScheduleDetails) != 3 {
		t.Fatalf("schedule length: got=%d want=3", len(got.ScheduleDetails))
	}
	wantCheckpoints := []string{
		"By minute 15, complete a quick self-check for this block.",
		"By minute 20, complete a quick self-check for this block.",
		"By minute 25, complete a quick self-check for this block.",
	}
	wantStrategies := []string{string(MethodPomodoro), string(MethodActiveRecall), string(MethodProblemLadder)}
	for i, d := range got.ScheduleDetails {
		if d.Checkpoint != wantCheckpoints[i] {
			t.Fatalf("checkpoint %d: got=%q want=%q", i, d.Checkpoint, wantCheckpoints[i])
		}
		if d.Strategy != wantStrategies[i] {
			t.Fatalf("strategy %d: got=%q want=%q", i, d.Strategy, wantStrategies[i])
		}
		if d.Subject != state.StudyPlan.PracticeBlocks[i].Subject || d.Task != state.StudyPlan.PracticeBlocks[i].Task {
			t.Fatalf("block %d fields not copied: %+v", i, d)
		}
	}
	if got.ScheduleDetails[1].Output != "End with a short written summary of what you learned in History." {
		t.Fatalf("unexpected output: %q", got.ScheduleDetails[1].Output)
	}
	if got.ScheduleDetails[2].BreakPlan != breakPlan {
		t.Fatalf("unexpected break plan: %q", got.ScheduleDetails[2].BreakPlan)
	}
}

func TestBuildPersonalizedRecommendationsIsDeterministic(t *testing.T) {
	t.Parallel()

	state := domain.StudentState{
		StudyPlan: &domain.StudyPlan{PracticeBlocks: []domain.PracticeBlock{{Subject: "Chemistry", Duration: "30 mins", Task: "Moles"}}},
		InitialSurvey: &domain.InitialSurvey{LearningStyle: domain.LearningStyleKinesthetic, StudyMethod: "Recall"},
		FinalSurvey: &domain.FinalSurvey{
			Personality: map[string]string{
				domain.TraitAnalytical: "Strongly Agree",
				domain.TraitCreative:   "Agree",
				domain.TraitSocial:     "Agree",
				domain.TraitOrganized:  "Disagree",
			},
			Preferences: &domain.Preferences{WorkEnvironment: domain.WorkEnvironmentField},
		},
		MoodEntries: []domain.MoodEntry{{Rating: rating(2)}},
	}

	first, err := json.Marshal(BuildPersonalizedRecommendations(state))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := json.Marshal(BuildPersonalizedRecommendations(state))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("output differs between calls:\n%s\n%s", first, second)
	}
}

func TestBuildPersonalizedRecommendationsDoesNotLeakCatalog(t *testing.T) {
	t.Parallel()

	got := BuildPersonalizedRecommendations(domain.StudentState{})
	got.TopMethod.ImplementationSteps[0] = "mutated"

	again := BuildPersonalizedRecommendations(domain.StudentState{})
	if again.TopMethod.ImplementationSteps[0] != "Set one clear task for 25 minutes." {
		t.Fatalf("catalog was mutated through a result: %q", again.TopMethod.ImplementationSteps[0])
	}
}
