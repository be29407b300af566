package index

import "strings"

// FlexIndex maps a normalized term to every location it occurs at. An index is
// built in one pass from a full model snapshot and never mutated afterwards:
// on every rebuild trigger a fresh index is constructed and installed with a
// single pointer swap, so readers never observe a partially built index.
type FlexIndex struct {
	Postings map[string]PostingList
}

// New returns an empty, ready-to-fill index.
func New() *FlexIndex {
	return &FlexIndex{Postings: make(map[string]PostingList)}
}

// Add appends a posting to the given term's list. The term is trimmed and
// lowercased, so whole entity labels and synonyms can be added as-is and end
// up as a single multi-word key.
func (ix *FlexIndex) Add(term string, p Posting) {
	term = strings.ToLower(strings.TrimSpace(term))
	ix.Postings[term] = append(ix.Postings[term], p)
}

// Lookup returns the postings for a term, or nil when the term is unknown.
func (ix *FlexIndex) Lookup(term string) PostingList {
	return ix.Postings[term]
}

// Terms returns the number of distinct terms in the index.
func (ix *FlexIndex) Terms() int {
	return len(ix.Postings)
}
