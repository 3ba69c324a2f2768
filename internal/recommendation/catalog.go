package recommendation

// MethodName identifies one study technique in the fixed catalog.
type MethodName string

const (
	MethodPomodoro         MethodName = "Pomodoro Technique"
	MethodActiveRecall     MethodName = "Active Recall Sprints"
	MethodSpacedRepetition MethodName = "Spaced Repetition Plan"
	MethodProblemLadder    MethodName = "Practice Problem Ladder"
	MethodTeachBack        MethodName = "Teach-Back Method"
	MethodConceptMapping   MethodName = "Concept Mapping Studio"
	MethodAudioReflection  MethodName = "Audio Reflection Review"
)

type MethodProfile struct {
	Name                MethodName
	BaseScore           int
	Summary             string
	Simplified          string
	ImplementationSteps []string
	BestFor             []string
}

// catalog order is the tie-break order for ranking. Never mutate it.
var catalog = []MethodProfile{
	{
		Name:       MethodPomodoro,
		BaseScore:  60,
		Summary:    "Use focused 25-minute sessions with short resets to protect energy and stay consistent.",
		Simplified: "Study in short rounds, then take quick breaks and repeat.",
		ImplementationSteps: []string{
			"Set one clear task for 25 minutes.",
			"Work with no distractions until timer ends.",
			"Take a 5-minute break and reset.",
			"After 4 rounds, take a longer break.",
		},
		BestFor: []string{"consistency", "energy control", "time-boxed work"},
	},
	{
		Name:       MethodActiveRecall,
		BaseScore:  58,
		Summary:    "Retrieve key ideas from memory first, then check notes to close specific gaps quickly.",
		Simplified: "Test yourself from memory, then correct mistakes right away.",
		ImplementationSteps: []string{
			"Close notes and write what you remember.",
			"Check against source material.",
			"Mark weak points and retry from memory.",
			"Repeat until recall is cleaner.",
		},
		BestFor: []string{"exam prep", "memory retention", "faster mastery"},
	},
	{
		Name:       MethodSpacedRepetition,
		BaseScore:  54,
		Summary:    "Review topics on planned intervals to lock concepts into long-term memory.",
		Simplified: "Review topics multiple times over days, not all at once.",
		ImplementationSteps: []string{
			"Create short review cards or prompts.",
			"Review today, then again in 2 days.",
			"Revisit in 1 week and 2 weeks.",
			"Spend extra rounds on low-confidence cards.",
		},
		BestFor: []string{"long-term memory", "language/content-heavy courses", "steady progress"},
	},
	{
		Name:       MethodProblemLadder,
		BaseScore:  55,
		Summary:    "Move from easy to medium to hard problems while logging mistakes and patterns.",
		Simplified: "Start simple, increase difficulty, and learn from each mistake.",
		ImplementationSteps: []string{
			"Solve 3 easy warm-up questions.",
			"Complete 4 medium questions.",
			"Finish with 2 hard questions.",
			"Write one correction note for every miss.",
		},
		BestFor: []string{"quantitative subjects", "accuracy", "confidence building"},
	},
	{
		Name:       MethodTeachBack,
		BaseScore:  50,
		Summary:    "Explain concepts out loud in simple language to expose gaps and reinforce understanding.",
		Simplified: "Teach the topic like a mini lesson to prove you understand it.",
		ImplementationSteps: []string{
			"Pick one concept and explain it in 3 minutes.",
			"Notice where explanations are unclear.",
			"Recheck sources and improve explanation.",
			"Repeat with a second concept.",
		},
		BestFor: []string{"deep understanding", "social learners", "presentation readiness"},
	},
	{
		Name:       MethodConceptMapping,
		BaseScore:  48,
		Summary:    "Use visual maps to connect ideas, causes, formulas, and examples across topics.",
		Simplified: "Draw how ideas connect instead of memorizing isolated facts.",
		ImplementationSteps: []string{
			"Place the core topic in the center.",
			"Add branches for key concepts.",
			"Link branches with cause/effect notes.",
			"Attach one example to each branch.",
		},
		BestFor: []string{"visual organization", "big-picture thinking", "complex chapters"},
	},
	{
		Name:       MethodAudioReflection,
		BaseScore:  46,
		Summary:    "Record short verbal summaries and replay them to reinforce memory and understanding.",
		Simplified: "Say key ideas out loud, record them, and listen again later.",
		ImplementationSteps: []string{
			"Record a 2-minute summary after each block.",
			"Replay during breaks or commute time.",
			"Pause and restate weak parts aloud.",
			"Update recording with clearer language.",
		},
		BestFor: []string{"audio learners", "verbal reinforcement", "lightweight review"},
	},
}

// Catalog returns a copy of the method library in catalog order.
func Catalog() []MethodProfile {
	out := make([]MethodProfile, len(catalog))
	for i, m := range catalog {
		out[i] = m.clone()
	}
	return out
}

// Lookup finds a catalog method by exact name.
func Lookup(name string) (MethodProfile, bool) {
	for _, m := range catalog {
		if string(m.Name) == name {
			return m.clone(), true
		}
	}
	return MethodProfile{}, false
}

func (m MethodProfile) clone() MethodProfile {
	m.ImplementationSteps = append([]string(nil), m.ImplementationSteps...)
	m.BestFor = append([]string(nil), m.BestFor...)
	return m
}
