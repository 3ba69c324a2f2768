package recommendation

import (
	"fmt"
	"strings"

	"github.com/yungbote/edubridge-backend/internal/domain"
)

// Rule is one additive adjustment. Applies is only consulted for the named method.
type Rule struct {
	Method  MethodName
	Delta   int
	Applies func(Signals) bool
	Reason  func(Signals) string
}

func reason(text string) func(Signals) string {
	return func(Signals) string { return text }
}

func styleIs(style domain.LearningStyle) func(Signals) bool {
	return func(s Signals) bool { return s.LearningStyle == style }
}

func traitAtLeast(trait string, level int) func(Signals) bool {
	return func(s Signals) bool { return s.Trait(trait) >= level }
}

func workIs(env domain.WorkEnvironment) func(Signals) bool {
	return func(s Signals) bool { return s.WorkEnvironment == env }
}

// baselineRule fires for any method whose name contains the survey's study method.
func baselineRule(method MethodName) Rule {
	return Rule{
		Method: method,
		Delta:  6,
		Applies: func(s Signals) bool {
			return s.BaselineMethod != "" && strings.Contains(string(method), s.BaselineMethod)
		},
		Reason: func(s Signals) string {
			return fmt.Sprintf("Matches your selected study method (%s).", s.BaselineMethod)
		},
	}
}

var adjustmentRules = []Rule{
	{Method: MethodConceptMapping, Delta: 14, Applies: styleIs(domain.LearningStyleVisual),
		Reason: reason("Your visual learning style aligns with concept maps.")},
	{Method: MethodAudioReflection, Delta: 14, Applies: styleIs(domain.LearningStyleAudio),
		Reason: reason("Your audio learning style aligns with verbal review.")},
	{Method: MethodSpacedRepetition, Delta: 10, Applies: styleIs(domain.LearningStyleReading),
		Reason: reason("Reading preference benefits from repeat written review.")},
	{Method: MethodProblemLadder, Delta: 12, Applies: styleIs(domain.LearningStyleKinesthetic),
		Reason: reason("Kinesthetic learning is reinforced through active problem solving.")},

	{Method: MethodProblemLadder, Delta: 10, Applies: traitAtLeast(domain.TraitAnalytical, 4),
		Reason: reason("Your analytical profile benefits from step-by-step challenge progression.")},
	{Method: MethodConceptMapping, Delta: 8, Applies: traitAtLeast(domain.TraitCreative, 4),
		Reason: reason("Your creative profile benefits from visual synthesis and pattern links.")},
	{Method: MethodTeachBack, Delta: 10, Applies: traitAtLeast(domain.TraitSocial, 4),
		Reason: reason("Your social profile benefits from discussion-based learning.")},
	{Method: MethodPomodoro, Delta: 8, Applies: traitAtLeast(domain.TraitOrganized, 4),
		Reason: reason("Your organized profile fits structured time blocks.")},

	{Method: MethodPomodoro, Delta: 5, Applies: workIs(domain.WorkEnvironmentRemote),
		Reason: reason("Remote preference pairs well with independent timed sessions.")},
	{Method: MethodSpacedRepetition, Delta: 4, Applies: workIs(domain.WorkEnvironmentHybrid),
		Reason: reason("Hybrid preference benefits from portable distributed reviews.")},
	{Method: MethodProblemLadder, Delta: 4, Applies: workIs(domain.WorkEnvironmentField),
		Reason: reason("Field preference benefits from practical task progression.")},

	{Method: MethodPomodoro, Delta: 6, Applies: func(s Signals) bool { return s.LatestMood <= 2 },
		Reason: reason("Short focused rounds help when motivation is lower.")},
}

// RulesFor returns the rules evaluated for a method, in evaluation order.
func RulesFor(method MethodName) []Rule {
	rules := []Rule{baselineRule(method)}
	for _, r := range adjustmentRules {
		if r.Method == method {
			rules = append(rules, r)
		}
	}
	return rules
}

// Score applies every matching rule to the method's base score.
// Reasons are appended in rule order.
func Score(method MethodProfile, sig Signals) (int, []string) {
	score := method.BaseScore
	var reasons []string
	for _, r := range RulesFor(method.Name) {
		if !r.Applies(sig) {
			continue
		}
		score += r.Delta
		reasons = append(reasons, r.Reason(sig))
	}
	return score, reasons
}
