package model

// Labeled is the base shape shared by scripts, acts, activities, and catalog
// entities: an id plus human-readable text.
type Labeled struct {
	ID          ID     `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	// URL holds a base64 encoded data image, when set.
	URL  string `json:"url,omitempty"`
	Icon string `json:"icon,omitempty"`
}

// Status tracks the editorial lifecycle of a crime script.
type Status int

const (
	StatusFirstDraft Status = iota + 1
	StatusReadyForReview
	StatusUnderReview
	StatusReviewed
	StatusFinished
)

// LiteratureType classifies a literature reference.
type LiteratureType int

const (
	LiteratureCaseStudy LiteratureType = iota + 1
	LiteratureThesis
	LiteratureReport
	LiteratureTechnicalReport
	LiteratureProducerWebsite
	LiteratureWhitePaper
	LiteratureConferenceProceeding
	LiteraturePatent
	LiteraturePopularMedia
	LiteratureConsensusStatement
	LiteratureEmpiricalPeerReviewed
	LiteratureReviewPeerReviewed
	LiteratureSystematicReviewPeerReviewed
	LiteratureMetaAnalysisPeerReviewed
)

// Literature is a reference cited by a crime script.
type Literature struct {
	Labeled
	Authors string         `json:"authors,omitempty"`
	Type    LiteratureType `json:"type,omitempty"`
}

// CrimeScript is a structured narrative of a staged criminal activity: an
// ordered list of stages, each pointing at one or more candidate acts.
type CrimeScript struct {
	Labeled
	Owner      ID           `json:"owner,omitempty"`
	Updated    int64        `json:"updated,omitempty"`
	Reviewer   []ID         `json:"reviewer,omitempty"`
	Status     Status       `json:"status,omitempty"`
	Literature []Literature `json:"literature,omitempty"`
	Stages     []Stage      `json:"stages,omitempty"`
}

// Stage is a position in a crime script's sequence. It records the currently
// selected act plus every candidate act (variant) for that position.
type Stage struct {
	// ID is the currently selected act.
	ID ID `json:"id"`
	// IDs are the act ids of all variants for this stage.
	IDs []ID `json:"ids"`
}

// NumPhases is the fixed number of phases per act: preparation, pre-activity,
// activity, and post-activity.
const NumPhases = 4

// Act is a shared catalog entry referenced by stages. Every act has exactly
// four phases.
type Act struct {
	Labeled
	Preparation  ActivityPhase `json:"preparation"`
	PreActivity  ActivityPhase `json:"preactivity"`
	Activity     ActivityPhase `json:"activity"`
	PostActivity ActivityPhase `json:"postactivity"`
	// Measures to prevent or stop the crime.
	Measures []Measure `json:"measures,omitempty"`
}

// Phases returns the act's phases in their fixed order, so phase indices are
// stable: 0 = preparation, 1 = pre-activity, 2 = activity, 3 = post-activity.
func (a *Act) Phases() []ActivityPhase {
	return []ActivityPhase{a.Preparation, a.PreActivity, a.Activity, a.PostActivity}
}

// ActivityPhase holds the activities and conditions of one phase of an act,
// plus the locations where the phase takes place.
type ActivityPhase struct {
	Label       string      `json:"label,omitempty"`
	LocationIDs []ID        `json:"locationIds,omitempty"`
	Activities  []Activity  `json:"activities,omitempty"`
	Conditions  []Condition `json:"conditions,omitempty"`
}

// Activity is a single step within a phase. Cast, Attributes, and Transports
// reference their respective catalogs by id.
type Activity struct {
	Labeled
	Cast       []ID        `json:"cast,omitempty"`
	Attributes []ID        `json:"attributes,omitempty"`
	Transports []ID        `json:"transports,omitempty"`
	Conditions []Condition `json:"conditions,omitempty"`
}

// ConditionType classifies a condition.
type ConditionType string

const (
	ConditionPrerequisite ConditionType = "Prerequisite"
	ConditionFacilitator  ConditionType = "Facilitator"
	ConditionEnforcement  ConditionType = "Enforcement"
)

// Condition is a prerequisite, facilitator, or enforcement aspect of a phase
// or activity. It contributes only its text to the search index.
type Condition struct {
	Labeled
	Type ConditionType `json:"type,omitempty"`
}

// Measure is a preventive measure attached to an act.
type Measure struct {
	Labeled
	// Cat is the category the measure belongs to, e.g. situational crime
	// prevention.
	Cat string `json:"cat,omitempty"`
}
