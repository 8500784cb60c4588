package models

type Referee struct {
	ID                 int    `json:"id" db:"id"`
	Name               string `json:"name" db:"name"`
	CertificationLevel int    `json:"certification_level" db:"certification_level"`
}
