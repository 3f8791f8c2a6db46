package repository

import (
	"context"

	"github.com/vendaflow/backoffice-api/internal/domain/entity"
)

// UserRepository porta de persistência para usuários.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
