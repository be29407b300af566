// Package services defines the shared result types and interfaces between the
// search core and its callers (the API layer and, ultimately, the editor UI).
package services

import (
	"github.com/crimescripting/flexsearch/index"
	"github.com/crimescripting/flexsearch/model"
)

// ActHit is one act's aggregate within a matched crime script. PhaseIdx is the
// representative phase: the phase of the first posting seen for this act.
// Whole-script text matches appear as an act entry with ActIdx = -1.
type ActHit struct {
	ActIdx   int         `json:"actIdx"`
	PhaseIdx int         `json:"phaseIdx"`
	Score    index.Score `json:"score"`
}

// ScriptHit is one crime script in the ranked search results. TotalScore is
// the plain sum of every matching posting's score; repeated matches compound.
type ScriptHit struct {
	CrimeScriptIdx int         `json:"crimeScriptIdx"`
	TotalScore     index.Score `json:"totalScore"`
	Acts           []ActHit    `json:"acts"`
}

// SearchResult is the response of a single search: the ranked scripts plus
// query metadata. The caller maps the indices back to labels for display and
// deep links.
type SearchResult struct {
	Hits    []ScriptHit `json:"hits"`
	Total   int         `json:"total"`
	Took    int64       `json:"took"` // milliseconds
	QueryID string      `json:"query_id"`
}

// Searcher runs a free-text query against the current index.
type Searcher interface {
	Search(query string) (SearchResult, error)
}

// CaseSearcher matches a case description plus a structured catalog filter
// against the current index.
type CaseSearcher interface {
	CaseSearch(filter model.CrimeScriptFilter, text string) (SearchResult, error)
}

// IndexStats describes the currently installed index.
type IndexStats struct {
	Locale       string `json:"locale"`
	ModelVersion int    `json:"model_version"`
	LastUpdate   int64  `json:"last_update"`
	CrimeScripts int    `json:"crime_scripts"`
	Terms        int    `json:"terms"`
	Rebuilds     int    `json:"rebuilds"`
}

// ModelManager owns the model snapshot and the index lifecycle: replacing the
// model or switching locale triggers a full, synchronous index rebuild.
type ModelManager interface {
	SetModel(dm model.DataModel) error
	Model() model.DataModel
	SetLocale(locale string) error
	Locale() string
	Stats() IndexStats
}

// Engine is the full surface the API layer works against.
type Engine interface {
	ModelManager
	Searcher
	CaseSearcher
}
