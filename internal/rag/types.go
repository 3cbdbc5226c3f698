package rag

// AskRequest represents a question-answering request.
type AskRequest struct {
	// Question is the user's natural-language question about the rulings.
	Question string `json:"question"`
	// TopK is the maximum number of rulings used as context. Zero means the
	// default; values above the maximum are rejected at the HTTP boundary.
	TopK int `json:"top_k,omitempty"`
}

// Reference identifies one ruling that backed the answer.
type Reference struct {
	// Providencia is the ruling's citation code (e.g., "T-123/20").
	Providencia string `json:"providencia"`
	// Fecha is the decision date as stored in the corpus.
	Fecha string `json:"fecha,omitempty"`
	// Score is the similarity score for semantically retrieved rulings;
	// absent for exact citation matches.
	Score *float32 `json:"score,omitempty"`
}

// AskResponse represents the answer to a question.
type AskResponse struct {
	// Answer is the generated answer text.
	Answer string `json:"answer"`
	// References lists the rulings the answer was composed from.
	References []Reference `json:"references"`
}
