package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrInternshipNotFound  = errors.New("internship not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationExists   = errors.New("application already exists")
	ErrProfileNotFound     = errors.New("profile not found")
)

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505). Duplicate email and duplicate application
// detection ride on this instead of a read-then-write check.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
