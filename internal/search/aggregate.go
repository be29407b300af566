package search

import (
	"sort"

	"github.com/crimescripting/flexsearch/index"
	"github.com/crimescripting/flexsearch/services"
)

type actAccumulator struct {
	phaseIdx int // phase of the first posting seen for this act
	score    index.Score
}

type scriptAccumulator struct {
	total    index.Score
	actOrder []int
	acts     map[int]*actAccumulator
}

// Aggregate groups the collected postings by crime script and, within a
// script, by act. A script's total score is the plain sum of all its posting
// scores; an act's score is the sum of the postings sharing its actIdx, with
// the phase of the first posting as its representative phase.
//
// Scripts are sorted by total score descending; ties are broken by the
// script's single best act score descending, and remaining ties keep the
// order in which the scripts were first seen. Acts within a script are sorted
// by score descending, equal scores keeping first-seen order. Scripts without
// any posting do not appear at all.
func Aggregate(postings []index.Posting) []services.ScriptHit {
	scriptOrder := make([]int, 0)
	scripts := make(map[int]*scriptAccumulator)

	for _, p := range postings {
		acc, ok := scripts[p.ScriptIdx]
		if !ok {
			acc = &scriptAccumulator{acts: make(map[int]*actAccumulator)}
			scripts[p.ScriptIdx] = acc
			scriptOrder = append(scriptOrder, p.ScriptIdx)
		}
		acc.total += p.Score

		act, ok := acc.acts[p.ActIdx]
		if !ok {
			act = &actAccumulator{phaseIdx: p.PhaseIdx}
			acc.acts[p.ActIdx] = act
			acc.actOrder = append(acc.actOrder, p.ActIdx)
		}
		act.score += p.Score
	}

	hits := make([]services.ScriptHit, 0, len(scriptOrder))
	for _, scriptIdx := range scriptOrder {
		acc := scripts[scriptIdx]

		acts := make([]services.ActHit, 0, len(acc.actOrder))
		for _, actIdx := range acc.actOrder {
			act := acc.acts[actIdx]
			acts = append(acts, services.ActHit{
				ActIdx:   actIdx,
				PhaseIdx: act.phaseIdx,
				Score:    act.score,
			})
		}
		sort.SliceStable(acts, func(i, j int) bool {
			return acts[i].Score > acts[j].Score
		})

		hits = append(hits, services.ScriptHit{
			CrimeScriptIdx: scriptIdx,
			TotalScore:     acc.total,
			Acts:           acts,
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].TotalScore != hits[j].TotalScore {
			return hits[i].TotalScore > hits[j].TotalScore
		}
		return bestActScore(hits[i]) > bestActScore(hits[j])
	})
	return hits
}

// bestActScore is the highest act score of a hit. Acts are already sorted
// descending, so it is the first entry; a hit always has at least one act
// entry (possibly the actIdx = -1 whole-script one).
func bestActScore(hit services.ScriptHit) index.Score {
	if len(hit.Acts) == 0 {
		return 0
	}
	return hit.Acts[0].Score
}
