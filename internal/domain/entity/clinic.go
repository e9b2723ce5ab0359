package entity

import "time"

// Clinic representa una clínica dental (tenant del sistema).
type Clinic struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
