// Package engine ties the search core together: it owns the model snapshot,
// the active locale, and the currently installed index, and rebuilds the
// index whenever either dependency changes.
package engine

import (
	stderrors "errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/crimescripting/flexsearch/config"
	"github.com/crimescripting/flexsearch/index"
	"github.com/crimescripting/flexsearch/internal/errors"
	"github.com/crimescripting/flexsearch/internal/indexing"
	"github.com/crimescripting/flexsearch/internal/persistence"
	"github.com/crimescripting/flexsearch/internal/search"
	"github.com/crimescripting/flexsearch/internal/tokenizer"
	"github.com/crimescripting/flexsearch/model"
	"github.com/crimescripting/flexsearch/services"
)

const modelSnapshotFile = "data_model.gob"

// Engine implements services.Engine. Index rebuilds are synchronous and
// wholesale: a fresh index is built from the current snapshot and installed
// in a single assignment, so concurrent readers only ever see a complete
// index. The rebuild is guarded by an explicit cache key of locale and model
// timestamp, so redundant triggers are no-ops.
type Engine struct {
	mu      sync.RWMutex
	cfg     config.Config
	dataDir string

	locale    string
	stopwords tokenizer.StopwordSet
	dataModel model.DataModel

	flexIndex *index.FlexIndex
	searcher  *search.Service
	buildKey  string
	rebuilds  int
}

// NewEngine creates an engine, loading a previously saved model snapshot from
// the data directory when one exists, and builds the initial index.
func NewEngine(cfg config.Config) *Engine {
	eng := &Engine{
		cfg:     cfg,
		dataDir: cfg.DataDir,
		locale:  cfg.Locale,
	}

	snapshotPath := filepath.Join(eng.dataDir, modelSnapshotFile)
	var dm model.DataModel
	if err := persistence.LoadGob(snapshotPath, &dm); err != nil {
		if stderrors.Is(err, errors.ErrSnapshotNotFound) {
			log.Printf("No model snapshot at %s, starting with an empty model", snapshotPath)
		} else {
			log.Printf("Warning: failed to load model snapshot from %s: %v. Starting with an empty model.", snapshotPath, err)
		}
	} else {
		eng.dataModel = dm
		log.Printf("Loaded model snapshot (version %d, %d crime scripts) from %s",
			dm.Version, len(dm.CrimeScripts), snapshotPath)
	}

	eng.mu.Lock()
	eng.refreshIndexLocked()
	eng.mu.Unlock()
	return eng
}

// refreshIndexLocked rebuilds the index when the (locale, lastUpdate) cache
// key changed since the last build. Callers must hold the write lock.
func (e *Engine) refreshIndexLocked() {
	key := fmt.Sprintf("%s - %d", e.locale, e.dataModel.LastUpdate)
	if key == e.buildKey && e.flexIndex != nil {
		return
	}

	e.stopwords = tokenizer.NewStopwordSet(e.cfg.Stopwords(e.locale))
	fresh := indexing.BuildIndex(&e.dataModel, e.stopwords)

	searcher, err := search.NewService(fresh)
	if err != nil {
		// Only possible with a nil index, which BuildIndex never returns.
		log.Printf("Error: failed to create search service: %v", err)
		return
	}

	e.flexIndex = fresh
	e.searcher = searcher
	e.buildKey = key
	e.rebuilds++
	log.Printf("Index rebuilt (locale %s, model version %d): %d terms", e.locale, e.dataModel.Version, fresh.Terms())
}

// SetModel replaces the model snapshot wholesale, stamps it, persists it, and
// rebuilds the index.
func (e *Engine) SetModel(dm model.DataModel) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if dm.Version == 0 {
		dm.Version = e.dataModel.Version + 1
	}
	dm.LastUpdate = time.Now().UnixMilli()

	e.dataModel = dm
	e.refreshIndexLocked()

	snapshotPath := filepath.Join(e.dataDir, modelSnapshotFile)
	if err := persistence.SaveGob(snapshotPath, dm); err != nil {
		log.Printf("Warning: model updated in memory but snapshot save failed: %v", err)
		return fmt.Errorf("failed to save model snapshot: %w", err)
	}
	return nil
}

// Model returns the current model snapshot. The caller must treat it as
// read-only.
func (e *Engine) Model() model.DataModel {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.dataModel
}

// SetLocale switches the active stopword language and rebuilds the index when
// the locale actually changed.
func (e *Engine) SetLocale(locale string) error {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return errors.NewValidationError("locale", "cannot be empty")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.locale = locale
	e.refreshIndexLocked()
	return nil
}

// Locale returns the active locale.
func (e *Engine) Locale() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.locale
}

// Search runs a free-text query against the current index.
func (e *Engine) Search(query string) (services.SearchResult, error) {
	e.mu.RLock()
	searcher := e.searcher
	e.mu.RUnlock()

	return searcher.Search(query)
}

// CaseSearch matches a structured catalog filter plus a free-text case
// description. The filter is translated to catalog labels, concatenated with
// the case text, and tokenized with the active stopwords, so both inputs go
// through the same lookup pipeline as indexing did.
func (e *Engine) CaseSearch(filter model.CrimeScriptFilter, text string) (services.SearchResult, error) {
	e.mu.RLock()
	searcher := e.searcher
	stopwords := e.stopwords
	labels := model.FilterLabels(e.dataModel.AllCatalogItems(), filter)
	e.mu.RUnlock()

	if labels == "" && strings.TrimSpace(text) == "" {
		return searcher.SearchTerms(nil)
	}
	terms := tokenizer.Tokenize(labels+" "+text, stopwords)
	return searcher.SearchTerms(terms)
}

// Stats describes the currently installed index.
func (e *Engine) Stats() services.IndexStats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return services.IndexStats{
		Locale:       e.locale,
		ModelVersion: e.dataModel.Version,
		LastUpdate:   e.dataModel.LastUpdate,
		CrimeScripts: len(e.dataModel.CrimeScripts),
		Terms:        e.flexIndex.Terms(),
		Rebuilds:     e.rebuilds,
	}
}
