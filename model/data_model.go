// Package model defines the crime-script data model consumed by the search
// core. The model is owned and mutated by the editor UI; this package only
// describes its shape and a few read helpers. All types carry JSON tags since
// the model doubles as the editor's import/export format.
package model

// ID identifies a crime script, act, or catalog entity.
type ID = string

// DataModel is a full snapshot of the editor's state: the crime scripts
// themselves plus the shared catalogs they reference by id.
type DataModel struct {
	Version      int           `json:"version"`
	LastUpdate   int64         `json:"lastUpdate"` // epoch millis of the last mutation
	CrimeScripts []CrimeScript `json:"crimeScripts"`
	Acts         []Act         `json:"acts,omitempty"`
	Cast         []CastMember  `json:"cast,omitempty"`
	Attributes   []Attribute   `json:"attributes,omitempty"`
	Locations    []Location    `json:"locations,omitempty"`
	GeoLocations []GeoLocation `json:"geoLocations,omitempty"`
	Transports   []Transport   `json:"transports,omitempty"`
	Products     []Product     `json:"products,omitempty"`
}

// ActIndex returns the position of the act with the given id in the Acts
// catalog, or -1 when the reference does not resolve. Dangling references are
// expected (the author may leave the model inconsistent) and are not an error.
func (dm *DataModel) ActIndex(id ID) int {
	for i := range dm.Acts {
		if dm.Acts[i].ID == id {
			return i
		}
	}
	return -1
}

// CatalogLookup merges the cast, attribute, transport, and location catalogs
// into a single id -> item map. Ids are assumed unique across these catalogs;
// when they are not, the later catalog silently wins.
func (dm *DataModel) CatalogLookup() map[ID]CatalogItem {
	lookup := make(map[ID]CatalogItem)
	for _, c := range dm.Cast {
		lookup[c.ID] = c.CatalogItem
	}
	for _, a := range dm.Attributes {
		lookup[a.ID] = a.CatalogItem
	}
	for _, t := range dm.Transports {
		lookup[t.ID] = t.CatalogItem
	}
	for _, l := range dm.Locations {
		lookup[l.ID] = l.CatalogItem
	}
	return lookup
}

// AllCatalogItems returns every filterable catalog entity, in the order the
// editor presents them. Used to translate a CrimeScriptFilter into label text.
func (dm *DataModel) AllCatalogItems() []CatalogItem {
	items := make([]CatalogItem, 0,
		len(dm.Products)+len(dm.Transports)+len(dm.Attributes)+
			len(dm.GeoLocations)+len(dm.Locations)+len(dm.Cast))
	for _, p := range dm.Products {
		items = append(items, p.CatalogItem)
	}
	for _, t := range dm.Transports {
		items = append(items, t.CatalogItem)
	}
	for _, a := range dm.Attributes {
		items = append(items, a.CatalogItem)
	}
	for _, g := range dm.GeoLocations {
		items = append(items, g.CatalogItem)
	}
	for _, l := range dm.Locations {
		items = append(items, l.CatalogItem)
	}
	for _, c := range dm.Cast {
		items = append(items, c.CatalogItem)
	}
	return items
}
