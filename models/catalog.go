package models

// Catalog — входной справочник для генерации расписания.
type Catalog struct {
	Teams    []Team    `json:"teams"`
	Venues   []Venue   `json:"venues"`
	Referees []Referee `json:"referees"`
}
