package models

// GroupLabel — метка группы на групповом этапе.
type GroupLabel string

const (
	GroupA GroupLabel = "A"
	GroupB GroupLabel = "B"
)

type Team struct {
	ID       int     `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	CrestKey *string `json:"-" db:"crest_key"`
	CrestURL *string `json:"crest_url,omitempty" db:"-"`

	// Group is derived from roster order when a schedule is generated
	// (first half of the roster -> A, second half -> B). Populated by the
	// service layer, not stored on the team row.
	Group *GroupLabel `json:"group,omitempty" db:"-"`
}
