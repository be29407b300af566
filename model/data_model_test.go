package model

import "testing"

func TestActIndex(t *testing.T) {
	dm := &DataModel{Acts: []Act{
		{Labeled: Labeled{ID: "a1"}},
		{Labeled: Labeled{ID: "a2"}},
	}}

	if got := dm.ActIndex("a2"); got != 1 {
		t.Errorf("ActIndex(a2) = %d, want 1", got)
	}
	if got := dm.ActIndex("missing"); got != -1 {
		t.Errorf("ActIndex(missing) = %d, want -1", got)
	}
}

func TestPhasesFixedOrder(t *testing.T) {
	act := Act{
		Preparation:  ActivityPhase{Label: "prep"},
		PreActivity:  ActivityPhase{Label: "pre"},
		Activity:     ActivityPhase{Label: "act"},
		PostActivity: ActivityPhase{Label: "post"},
	}

	phases := act.Phases()
	if len(phases) != NumPhases {
		t.Fatalf("got %d phases, want %d", len(phases), NumPhases)
	}
	want := []string{"prep", "pre", "act", "post"}
	for i, label := range want {
		if phases[i].Label != label {
			t.Errorf("phase %d = %q, want %q", i, phases[i].Label, label)
		}
	}
}

// Ids are assumed unique across catalogs; when they collide, the catalog
// merged later shadows the earlier one (cast, attributes, transports,
// locations in that order).
func TestCatalogLookup_LastWriteWins(t *testing.T) {
	dm := &DataModel{
		Cast: []CastMember{{
			CatalogItem: CatalogItem{Labeled: Labeled{ID: "x", Label: "Cast label"}},
		}},
		Locations: []Location{{
			CatalogItem: CatalogItem{Labeled: Labeled{ID: "x", Label: "Location label"}},
		}},
	}

	item, ok := dm.CatalogLookup()["x"]
	if !ok {
		t.Fatal("id x not found")
	}
	if item.Label != "Location label" {
		t.Errorf("Label = %q, want the later catalog to win", item.Label)
	}
}

func TestFilterLabels(t *testing.T) {
	dm := &DataModel{
		Products: []Product{{
			CatalogItem: CatalogItem{Labeled: Labeled{ID: "p1", Label: "Cocaine"}},
		}},
		Cast: []CastMember{{
			CatalogItem: CatalogItem{Labeled: Labeled{ID: "c1", Label: "Driver"}},
		}},
	}

	filter := CrimeScriptFilter{
		ProductIDs: []ID{"p1", "dangling"},
		CastIDs:    []ID{"c1"},
	}
	got := FilterLabels(dm.AllCatalogItems(), filter)
	if got != "Cocaine Driver" {
		t.Errorf("FilterLabels = %q, want %q", got, "Cocaine Driver")
	}

	if filter.IsEmpty() {
		t.Error("filter with ids should not be empty")
	}
	if !(CrimeScriptFilter{}).IsEmpty() {
		t.Error("zero filter should be empty")
	}
	if got := FilterLabels(dm.AllCatalogItems(), CrimeScriptFilter{}); got != "" {
		t.Errorf("empty filter labels = %q, want empty string", got)
	}
}
