package entity

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Inversiones-api/internal/domain"
)

// Role rol de un usuario. Es un conjunto cerrado: toda decisión de autorización se basa solo en este campo.
type Role string

// Roles válidos para User.
const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// ParseRole convierte un string en Role; cualquier valor fuera de employee|admin es ErrInvalidRole.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleEmployee:
		return RoleEmployee, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidRole, s)
	}
}

// Valid informa si el rol pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleAdmin:
		return true
	}
	return false
}

// User representa un usuario del panel (empleado o administrador).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash; nunca se expone en DTOs
	Name         string
	Role         Role
	Department   string
	Position     string
	ImageURL     string // opcional
}

// IsAdmin atajo para Role == RoleAdmin.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
