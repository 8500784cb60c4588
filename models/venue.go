package models

type Venue struct {
	ID        int    `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Available bool   `json:"available" db:"available"`
}
