// Package indexing builds the flex-search index from a full data-model
// snapshot. The walk is a single pass over every crime script, stage, act,
// phase, activity, and condition; it performs no cross-document comparisons
// and never fails on dangling references or missing optional fields.
package indexing

import (
	"github.com/crimescripting/flexsearch/index"
	"github.com/crimescripting/flexsearch/internal/tokenizer"
	"github.com/crimescripting/flexsearch/model"
)

// BuildIndex walks the data model and produces a fresh term -> postings index.
//
// Free text (labels and descriptions) is tokenized with the active stopword
// set and indexed with score OtherMatch. Referenced catalog entities are
// indexed with score ExactMatch under their full label and each synonym as a
// whole lowercase key, and their direct parents with score ParentMatch.
// A script's own label and description are indexed at actIdx = phaseIdx = -1.
func BuildIndex(dm *model.DataModel, stopwords tokenizer.StopwordSet) *index.FlexIndex {
	ix := index.New()
	if dm == nil {
		return ix
	}
	items := dm.CatalogLookup()

	addText := func(text string, p index.Posting) {
		for _, term := range tokenizer.Tokenize(text, stopwords) {
			ix.Add(term, p)
		}
	}

	for scriptIdx := range dm.CrimeScripts {
		script := &dm.CrimeScripts[scriptIdx]
		addText(script.Label+" "+script.Description, index.Posting{
			ScriptIdx: scriptIdx, ActIdx: -1, PhaseIdx: -1, Score: index.OtherMatch,
		})

		for _, stage := range script.Stages {
			for _, actID := range stage.IDs {
				actIdx := dm.ActIndex(actID)
				if actIdx < 0 {
					continue
				}
				act := &dm.Acts[actIdx]
				for phaseIdx, phase := range act.Phases() {
					indexPhase(ix, items, stopwords, phase, scriptIdx, actIdx, phaseIdx)
				}
			}
		}
	}
	return ix
}

func indexPhase(ix *index.FlexIndex, items map[model.ID]model.CatalogItem,
	stopwords tokenizer.StopwordSet, phase model.ActivityPhase, scriptIdx, actIdx, phaseIdx int) {

	if len(phase.LocationIDs) > 0 {
		addItemIDs(ix, items, phase.LocationIDs, index.Posting{
			ScriptIdx: scriptIdx, ActIdx: actIdx, PhaseIdx: phaseIdx, Score: index.ExactMatch,
		}, true)
	}

	textPosting := index.Posting{ScriptIdx: scriptIdx, ActIdx: actIdx, PhaseIdx: phaseIdx, Score: index.OtherMatch}

	for _, activity := range phase.Activities {
		for _, term := range tokenizer.Tokenize(activity.Label+" "+activity.Description, stopwords) {
			ix.Add(term, textPosting)
		}
		refs := make([]model.ID, 0, len(activity.Cast)+len(activity.Attributes)+len(activity.Transports))
		refs = append(refs, activity.Cast...)
		refs = append(refs, activity.Attributes...)
		refs = append(refs, activity.Transports...)
		addItemIDs(ix, items, refs, index.Posting{
			ScriptIdx: scriptIdx, ActIdx: actIdx, PhaseIdx: phaseIdx, Score: index.ExactMatch,
		}, true)
	}

	for _, condition := range phase.Conditions {
		for _, term := range tokenizer.Tokenize(condition.Label+" "+condition.Description, stopwords) {
			ix.Add(term, textPosting)
		}
	}
}

// addItemIDs resolves catalog ids and indexes each entity's label and synonyms
// at the given posting. Unresolved ids are skipped. When includeParents is
// set, direct parents are indexed once more with score ParentMatch; the
// recursion passes includeParents=false, so expansion is bounded to one level
// regardless of cycles in the parents DAG.
func addItemIDs(ix *index.FlexIndex, items map[model.ID]model.CatalogItem,
	ids []model.ID, p index.Posting, includeParents bool) {

	for _, id := range ids {
		item, ok := items[id]
		if !ok {
			continue
		}
		ix.Add(item.Label, p)
		for _, syn := range item.Synonyms {
			ix.Add(syn, p)
		}
		if includeParents && len(item.Parents) > 0 {
			parentPosting := p
			parentPosting.Score = index.ParentMatch
			addItemIDs(ix, items, item.Parents, parentPosting, false)
		}
	}
}
