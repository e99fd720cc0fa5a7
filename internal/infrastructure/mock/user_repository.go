package mock

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Inversiones-api/internal/domain/entity"
	"github.com/jhoicas/Inversiones-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios de demo. Todos comparten la contraseña recibida en el constructor.
type UserRepo struct {
	users []entity.User
}

// NewUserRepository construye el repositorio hasheando password con bcrypt.
func NewUserRepository(password string) (*UserRepo, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password demo: %w", err)
	}
	list := users()
	for i := range list {
		list[i].PasswordHash = string(hash)
	}
	return &UserRepo{users: list}, nil
}

// GetByID obtiene un usuario por ID; (nil, nil) si no existe.
func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// GetByEmail obtiene un usuario por email (sin distinguir mayúsculas).
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, strings.TrimSpace(email)) {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// List devuelve todos los usuarios.
func (r *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for i := range r.users {
		u := r.users[i]
		out = append(out, &u)
	}
	return out, nil
}
