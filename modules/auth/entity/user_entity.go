package entity

import (
	coreEntity "honeydew-api/core/entity"
)

// User is an account holder. Identity is immutable once created.
type User struct {
	Name         string `db:"name"`
	Email        string `db:"email"`
	Phone        string `db:"phone"`
	PasswordHash string `db:"password_hash"`
	Onboarded    bool   `db:"onboarded"`

	coreEntity.BaseEntity
}
