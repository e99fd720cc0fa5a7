package repository

import (
	"context"

	"github.com/jhoicas/Inversiones-api/internal/domain/entity"
)

// UserRepository define el puerto de lectura para User (DIP).
// GetByID y GetByEmail devuelven (nil, nil) si el usuario no existe.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
}
