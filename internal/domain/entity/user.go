package entity

import "time"

// Roles de la aplicación.
const (
	RoleAdmin    = "admin"    // administra reglas globales y usuarios
	RoleAnalista = "analista" // registra etapas y reglas de excepción
	RoleConsulta = "consulta" // solo lectura
)

// User usuario de la aplicación.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
