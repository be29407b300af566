// Package testing provides shared helpers for engine and API level tests.
package testing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crimescripting/flexsearch/config"
	"github.com/crimescripting/flexsearch/internal/engine"
	"github.com/crimescripting/flexsearch/model"
)

// CreateTestEngine creates an engine over a per-test temp directory.
func CreateTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	cfg := config.Config{DataDir: t.TempDir()}
	cfg.ApplyDefaults()
	return engine.NewEngine(cfg)
}

// CreateTestEngineWithModel creates a test engine preloaded with SampleModel.
func CreateTestEngineWithModel(t *testing.T) *engine.Engine {
	t.Helper()
	eng := CreateTestEngine(t)
	require.NoError(t, eng.SetModel(SampleModel()))
	return eng
}

// SampleModel is a small but complete model: one crime script with one stage,
// one act with an activity-phase activity referencing a cast member, plus a
// product catalog entry for case-search filters.
func SampleModel() model.DataModel {
	return model.DataModel{
		CrimeScripts: []model.CrimeScript{{
			Labeled: model.Labeled{ID: "cs1", Label: "Vehicle theft", Description: "Stealing and reselling cars"},
			Stages:  []model.Stage{{ID: "a1", IDs: []model.ID{"a1"}}},
		}},
		Acts: []model.Act{{
			Labeled: model.Labeled{ID: "a1", Label: "Acquire vehicle"},
			Activity: model.ActivityPhase{
				Activities: []model.Activity{{
					Labeled: model.Labeled{Label: "steal car"},
					Cast:    []model.ID{"c1"},
				}},
			},
		}},
		Cast: []model.CastMember{{
			CatalogItem: model.CatalogItem{Labeled: model.Labeled{ID: "c1", Label: "Driver"}},
		}},
		Products: []model.Product{{
			CatalogItem: model.CatalogItem{Labeled: model.Labeled{ID: "p1", Label: "Cars"}},
		}},
	}
}
