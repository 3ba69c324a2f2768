package recommendation

import (
	"reflect"
	"testing"

	"github.com/yungbote/edubridge-backend/internal/domain"
)

func mustLookup(t *testing.T, name MethodName) MethodProfile {
	t.Helper()
	m, ok := Lookup(string(name))
	if !ok {
		t.Fatalf("method %q missing from catalog", name)
	}
	return m
}

func TestScoreRules(t *testing.T) {
	t.Parallel()

	neutral := Signals{Personality: map[string]int{}, LatestMood: 3}

	cases := []struct {
		name        string
		method      MethodName
		sig         Signals
		wantScore   int
		wantReasons []string
	}{
		{
			name:      "no signals leaves base score",
			method:    MethodTeachBack,
			sig:       neutral,
			wantScore: 50,
		},
		{
			name:        "audio style",
			method:      MethodAudioReflection,
			sig:         Signals{LearningStyle: domain.LearningStyleAudio, LatestMood: 3},
			wantScore:   60,
			wantReasons: []string{"Your audio learning style aligns with verbal review."},
		},
		{
			name:        "reading style",
			method:      MethodSpacedRepetition,
			sig:         Signals{LearningStyle: domain.LearningStyleReading, LatestMood: 3},
			wantScore:   64,
			wantReasons: []string{"Reading preference benefits from repeat written review."},
		},
		{
			name:      "style rule never fires for an unnamed method",
			method:    MethodPomodoro,
			sig:       Signals{LearningStyle: domain.LearningStyleVisual, LatestMood: 3},
			wantScore: 60,
		},
		{
			name:   "kinesthetic analytical field stack in rule order",
			method: MethodProblemLadder,
			sig: Signals{
				LearningStyle:   domain.LearningStyleKinesthetic,
				Personality:     map[string]int{domain.TraitAnalytical: 5},
				WorkEnvironment: domain.WorkEnvironmentField,
				LatestMood:      3,
			},
			wantScore: 81,
			wantReasons: []string{
				"Kinesthetic learning is reinforced through active problem solving.",
				"Your analytical profile benefits from step-by-step challenge progression.",
				"Field preference benefits from practical task progression.",
			},
		},
		{
			name:   "pomodoro baseline organized remote low mood",
			method: MethodPomodoro,
			sig: Signals{
				BaselineMethod:  "Pomodoro",
				Personality:     map[string]int{domain.TraitOrganized: 4},
				WorkEnvironment: domain.WorkEnvironmentRemote,
				LatestMood:      2,
			},
			wantScore: 85,
			wantReasons: []string{
				"Matches your selected study method (Pomodoro).",
				"Your organized profile fits structured time blocks.",
				"Remote preference pairs well with independent timed sessions.",
				"Short focused rounds help when motivation is lower.",
			},
		},
		{
			name:      "baseline containment is case sensitive",
			method:    MethodActiveRecall,
			sig:       Signals{BaselineMethod: "Active recall", LatestMood: 3},
			wantScore: 58,
		},
		{
			name:        "social trait",
			method:      MethodTeachBack,
			sig:         Signals{Personality: map[string]int{domain.TraitSocial: 4}, LatestMood: 3},
			wantScore:   60,
			wantReasons: []string{"Your social profile benefits from discussion-based learning."},
		},
		{
			name:      "trait level three does not fire",
			method:    MethodConceptMapping,
			sig:       Signals{Personality: map[string]int{domain.TraitCreative: 3}, LatestMood: 3},
			wantScore: 48,
		},
		{
			name:        "hybrid environment",
			method:      MethodSpacedRepetition,
			sig:         Signals{WorkEnvironment: domain.WorkEnvironmentHybrid, LatestMood: 3},
			wantScore:   58,
			wantReasons: []string{"Hybrid preference benefits from portable distributed reviews."},
		},
		{
			name:      "office environment has no pairing",
			method:    MethodPomodoro,
			sig:       Signals{WorkEnvironment: domain.WorkEnvironmentOffice, LatestMood: 3},
			wantScore: 60,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			score, reasons := Score(mustLookup(t, tc.method), tc.sig)
			if score != tc.wantScore {
				t.Fatalf("score: got=%d want=%d", score, tc.wantScore)
			}
			if !reflect.DeepEqual(reasons, tc.wantReasons) {
				t.Fatalf("reasons: got=%q want=%q", reasons, tc.wantReasons)
			}
		})
	}
}

func TestRankKeepsCatalogOrderOnTies(t *testing.T) {
	t.Parallel()

	// Spaced Repetition (54 + 4) ties Active Recall (58) and must stay behind it.
	ranked := Rank(Signals{WorkEnvironment: domain.WorkEnvironmentHybrid, LatestMood: 3})
	want := []string{
		string(MethodPomodoro),
		string(MethodActiveRecall),
		string(MethodSpacedRepetition),
		string(MethodProblemLadder),
		string(MethodTeachBack),
		string(MethodConceptMapping),
		string(MethodAudioReflection),
	}
	if len(ranked) != len(want) {
		t.Fatalf("ranked length: got=%d want=%d", len(ranked), len(want))
	}
	for i := range want {
		if ranked[i].Name != want[i] {
			t.Fatalf("position %d: got=%q want=%q", i, ranked[i].Name, want[i])
		}
		if i > 0 && ranked[i].Score > ranked[i-1].Score {
			t.Fatalf("not sorted at %d: %d > %d", i, ranked[i].Score, ranked[i-1].Score)
		}
	}
}

func TestRulesForOnlyNamesItsMethod(t *testing.T) {
	t.Parallel()

	for _, m := range Catalog() {
		for _, r := range RulesFor(m.Name) {
			if r.Method != m.Name {
				t.Fatalf("rule for %q returned for %q", r.Method, m.Name)
			}
		}
	}
}
