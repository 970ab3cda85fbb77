package repository

import (
	"github.com/jmoiron/sqlx"
)

// UserRepo implements the user repository interface over PostgreSQL
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository instance
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}
