package model

import "strings"

// CrimeScriptFilter is the structured filter of the case search page: per
// catalog, the ids the user selected.
type CrimeScriptFilter struct {
	ProductIDs     []ID `json:"productIds,omitempty"`
	GeoLocationIDs []ID `json:"geoLocationIds,omitempty"`
	LocationIDs    []ID `json:"locationIds,omitempty"`
	AttributeIDs   []ID `json:"attributeIds,omitempty"`
	TransportIDs   []ID `json:"transportIds,omitempty"`
	CastIDs        []ID `json:"castIds,omitempty"`
}

// IsEmpty reports whether no ids are selected at all.
func (f CrimeScriptFilter) IsEmpty() bool {
	return len(f.ProductIDs) == 0 && len(f.GeoLocationIDs) == 0 &&
		len(f.LocationIDs) == 0 && len(f.AttributeIDs) == 0 &&
		len(f.TransportIDs) == 0 && len(f.CastIDs) == 0
}

// FilterLabels translates the selected ids into the labels of the matching
// catalog items, joined into one text. The result is fed through the regular
// tokenizer, so a structured filter and free search text share one code path.
// Unresolved ids are skipped.
func FilterLabels(items []CatalogItem, f CrimeScriptFilter) string {
	byID := make(map[ID]string, len(items))
	for _, item := range items {
		byID[item.ID] = item.Label
	}

	var labels []string
	appendLabels := func(ids []ID) {
		for _, id := range ids {
			if label, ok := byID[id]; ok && label != "" {
				labels = append(labels, label)
			}
		}
	}
	appendLabels(f.ProductIDs)
	appendLabels(f.GeoLocationIDs)
	appendLabels(f.LocationIDs)
	appendLabels(f.AttributeIDs)
	appendLabels(f.TransportIDs)
	appendLabels(f.CastIDs)

	return strings.Join(labels, " ")
}
