package repository

import (
	"context"
	"honeydew-api/core/database"
	"honeydew-api/core/logger"

	"github.com/google/uuid"
)

// UserRepository handles profile mutations on the users table
type UserRepository struct {
	DB database.Database
}

func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{DB: db}
}

// UserRepositoryInterface defines the repository contract
type UserRepositoryInterface interface {
	UpdateProfile(ctx context.Context, id uuid.UUID, name, phone string) error
	MarkOnboarded(ctx context.Context, id uuid.UUID) error
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, name, phone string) error {
	query := `
		UPDATE users
		SET name = $2, phone = $3, updated_at = NOW()
		WHERE id = $1
	`
	if err := r.DB.ExecContext(ctx, query, id, name, phone); err != nil {
		logger.Error("UserRepository:UpdateProfile", err)
		return err
	}
	return nil
}

func (r *UserRepository) MarkOnboarded(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE users
		SET onboarded = TRUE, updated_at = NOW()
		WHERE id = $1
	`
	if err := r.DB.ExecContext(ctx, query, id); err != nil {
		logger.Error("UserRepository:MarkOnboarded", err)
		return err
	}
	return nil
}
