// Package diagnostic holds the fixed onboarding questionnaire and the starter plan issued
// once it is answered.
package diagnostic

import (
	"errors"
	"fmt"
	"slices"

	"github.com/yungbote/edubridge-backend/internal/domain"
)

var ErrAnswerCount = errors.New("diagnostic: wrong number of answers")

// AnswerError reports an answer that is not one of its question's options.
type AnswerError struct {
	QuestionID int
	Answer     string
}

func (e *AnswerError) Error() string {
	return fmt.Sprintf("diagnostic: answer %q is not an option for question %d", e.Answer, e.QuestionID)
}

var questions = []domain.DiagnosticQuestion{
	{
		ID:   1,
		Text: "When facing a difficult math problem, what is your first instinct?",
		Options: []string{
			"Look for a similar example in the textbook",
			"Draw a diagram to visualize it",
			"Ask a friend or teacher immediately",
			"Try to break it down into smaller parts on my own",
		},
	},
	{
		ID:   2,
		Text: "How do you typically prepare for a history exam?",
		Options: []string{
			"Memorize dates and names using flashcards",
			"Create a timeline of events",
			"Read the chapters again",
			"Discuss the events with a study group",
		},
	},
	{
		ID:   3,
		Text: "Which environment helps you focus best?",
		Options: []string{
			"Complete silence in a library",
			"Coffee shop with background noise",
			"My room with music playing",
			"Outdoors in nature",
		},
	},
	{
		ID:   4,
		Text: "When reading a complex text, you usually...",
		Options: []string{
			"Highlight almost everything",
			"Take notes in the margins",
			"Summarize each paragraph in my head",
			"Read it out loud",
		},
	},
	{
		ID:   5,
		Text: "What motivates you most to study?",
		Options: []string{
			"Getting good grades",
			"Understanding how things work",
			"Competitive spirit",
			"Fear of falling behind",
		},
	},
}

// Questions returns a copy of the questionnaire in presentation order.
func Questions() []domain.DiagnosticQuestion {
	out := make([]domain.DiagnosticQuestion, len(questions))
	for i, q := range questions {
		q.Options = slices.Clone(q.Options)
		out[i] = q
	}
	return out
}

// Validate checks that every question has exactly one answer drawn from its options.
func Validate(answers []string) error {
	if len(answers) != len(questions) {
		return fmt.Errorf("%w: got %d want %d", ErrAnswerCount, len(answers), len(questions))
	}
	for i, q := range questions {
		if !slices.Contains(q.Options, answers[i]) {
			return &AnswerError{QuestionID: q.ID, Answer: answers[i]}
		}
	}
	return nil
}

// DefaultPlan is the starter plan every completed diagnostic receives.
func DefaultPlan() domain.StudyPlan {
	return domain.StudyPlan{
		WeeklyGoals: []string{
			"Complete 3 math practice sets",
			"Review history timeline for Chapter 4",
			"Spend 20 mins daily on active recall",
		},
		RecommendedMethod: "Pomodoro Technique (25m work / 5m break)",
		PracticeBlocks: []domain.PracticeBlock{
			{Subject: "Mathematics", Duration: "45 mins", Task: "Calculus Limits - Practice Set A"},
			{Subject: "History", Duration: "30 mins", Task: "WWII Timeline Construction"},
			{Subject: "Physics", Duration: "45 mins", Task: "Force Diagrams Review"},
		},
	}
}
