package model

// Hierarchical adds synonym and parent links to a catalog entity. Parents form
// a DAG (an entity may have several parents); the search index expands parents
// exactly one level, so cycles cannot cause unbounded traversal.
type Hierarchical struct {
	Synonyms []string `json:"synonyms,omitempty"`
	Parents  []ID     `json:"parents,omitempty"`
}

// CatalogItem is the uniform view the search core takes of any catalog entity:
// a label, optional synonyms, and optional parent ids.
type CatalogItem struct {
	Labeled
	Hierarchical
}

// CastType classifies a cast member.
type CastType string

const (
	CastIndividual   CastType = "Individual"
	CastOrganisation CastType = "Organisation"
	CastRole         CastType = "Role"
)

// LevelType grades a skill.
type LevelType string

const (
	LevelBeginner     LevelType = "Beginner"
	LevelIntermediate LevelType = "Intermediate"
	LevelExpert       LevelType = "Expert"
)

// Skill is a capability of a cast member.
type Skill struct {
	Labeled
	Level LevelType `json:"level,omitempty"`
}

// CastMember is an actor (person, group, or role) appearing in activities.
type CastMember struct {
	CatalogItem
	Type   CastType `json:"type,omitempty"`
	Skills []Skill  `json:"skills,omitempty"`
}

// AttributeType classifies a crime script attribute.
type AttributeType int

const (
	AttributeEquipment AttributeType = iota + 1
	AttributeTools
	AttributeGear
	AttributeDevices
	AttributeAccessories
	AttributeDocumentation
	AttributeCyber
	AttributeOther
)

// Attribute is an object used during an activity, e.g. equipment or tools.
type Attribute struct {
	CatalogItem
	Type AttributeType `json:"type,omitempty"`
}

// Location is a place where a phase can take place.
type Location struct {
	CatalogItem
}

// GeoLocation is a geographic location (city, region, country).
type GeoLocation struct {
	CatalogItem
}

// Transport is a means of transport used during an activity.
type Transport struct {
	CatalogItem
}

// Product is a product involved in the crime, e.g. the goods being traded.
type Product struct {
	CatalogItem
}
