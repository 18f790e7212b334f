package remote

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrProfileNotFound = errors.New("profile not found")
)

// Store talks to the hosted relational backend, the cross-device source of
// truth the sync engine reconciles against.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		db: db,
	}
}
