package index

// Score rates the quality of a single term match.
type Score int

const (
	// OtherMatch is a plain text match in a label or description.
	OtherMatch Score = 1
	// ParentMatch is an exact match of a direct parent of a referenced
	// catalog entity (or one of the parent's synonyms).
	ParentMatch Score = 2
	// ExactMatch is an exact match of a referenced catalog entity's label
	// or one of its synonyms.
	ExactMatch Score = 3
)

// Posting locates one term match inside the crime-script hierarchy. A match in
// a script's own label or description carries ActIdx = PhaseIdx = -1.
type Posting struct {
	ScriptIdx int   `json:"crimeScriptIdx"`
	ActIdx    int   `json:"actIdx"`
	PhaseIdx  int   `json:"phaseIdx"`
	Score     Score `json:"score"`
}

// PostingList is every location a term occurs at, in indexing order.
type PostingList []Posting
