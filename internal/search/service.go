// Package search implements the query-time half of flex search: term lookup
// against a built index, followed by deterministic aggregation and ranking of
// the collected postings.
package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/crimescripting/flexsearch/index"
	"github.com/crimescripting/flexsearch/services"
)

// Service runs queries against a single immutable index.
type Service struct {
	flexIndex *index.FlexIndex
}

// NewService creates a search Service over the given index.
func NewService(flexIndex *index.FlexIndex) (*Service, error) {
	if flexIndex == nil {
		return nil, fmt.Errorf("flex index cannot be nil")
	}
	return &Service{flexIndex: flexIndex}, nil
}

// Search looks up every whitespace-separated query token verbatim (lowercased,
// but deliberately without stopword or length filtering, so short tokens still
// match whole-label keys) and returns the aggregated, ranked scripts. An empty
// query or tokens absent from the index yield an empty result, never an error.
func (s *Service) Search(query string) (services.SearchResult, error) {
	start := time.Now()

	hits := Aggregate(s.Collect(query))

	return services.SearchResult{
		Hits:    hits,
		Total:   len(hits),
		Took:    time.Since(start).Milliseconds(),
		QueryID: uuid.New().String(),
	}, nil
}

// SearchTerms runs the same aggregation pipeline over pre-tokenized terms.
// The case-search path uses this: its input (catalog filter labels plus free
// case text) has already been through the tokenizer.
func (s *Service) SearchTerms(terms []string) (services.SearchResult, error) {
	start := time.Now()

	hits := Aggregate(s.CollectTerms(terms))

	return services.SearchResult{
		Hits:    hits,
		Total:   len(hits),
		Took:    time.Since(start).Milliseconds(),
		QueryID: uuid.New().String(),
	}, nil
}

// Collect gathers the postings of every query token, in token order.
func (s *Service) Collect(query string) []index.Posting {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var postings []index.Posting
	for _, token := range strings.Fields(query) {
		postings = append(postings, s.flexIndex.Lookup(token)...)
	}
	return postings
}

// CollectTerms gathers the postings of pre-tokenized terms. Used by the case
// search path, whose input has already been through the tokenizer.
func (s *Service) CollectTerms(terms []string) []index.Posting {
	var postings []index.Posting
	for _, term := range terms {
		postings = append(postings, s.flexIndex.Lookup(term)...)
	}
	return postings
}
