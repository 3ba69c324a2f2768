package domain

type DiagnosticQuestion struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

type DiagnosticSubmission struct {
	// Answers is indexed by question position.
	Answers []string `json:"answers"`
}
