package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin" // administra la clínica y la facturación
	RoleStaff = "staff" // registra cirugías y pedidos
)

// User representa un usuario del sistema (pertenece a una Clinic).
type User struct {
	ID           string
	ClinicID     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, staff
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
