package repository

import (
	"context"
	"errors"
	"fmt"

	"mamacare/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateEmail is returned by Create when the email is already taken.
// The unique index is the single arbiter for concurrent registrations, so
// this surfaces from the insert itself rather than a prior existence check.
var ErrDuplicateEmail = errors.New("email already registered")

const uniqueViolationCode = "23505"

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	FindByVerificationToken(ctx context.Context, token string) (*model.User, error)
	MarkVerified(ctx context.Context, id int) error
	UpdateVerificationToken(ctx context.Context, id int, token string) error
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, name, password_hash, role, facility_name, license_number, due_date, is_verified, verification_token, created_at`

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (email, name, password_hash, role, facility_name, license_number, due_date, is_verified, verification_token, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	err := r.db.QueryRow(ctx, sql,
		user.Email, user.Name, user.PasswordHash, user.Role,
		user.FacilityName, user.LicenseNumber, user.DueDate,
		user.IsVerified, user.VerificationToken, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByEmail retrieves a user by their email address
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRow(ctx, sql, email), "email")
}

// FindByID retrieves a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRow(ctx, sql, id), "ID")
}

// FindByVerificationToken retrieves the user holding an unconsumed token
func (r *userRepository) FindByVerificationToken(ctx context.Context, token string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE verification_token = $1`
	return r.scanUser(r.db.QueryRow(ctx, sql, token), "verification token")
}

// MarkVerified sets is_verified and consumes the token in a single update,
// so a replayed token no longer matches any row.
func (r *userRepository) MarkVerified(ctx context.Context, id int) error {
	sql := `UPDATE users SET is_verified = TRUE, verification_token = NULL WHERE id = $1`
	tag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no user with id %d", id)
	}
	return nil
}

// UpdateVerificationToken rotates the token without touching is_verified.
func (r *userRepository) UpdateVerificationToken(ctx context.Context, id int, token string) error {
	sql := `UPDATE users SET verification_token = $1 WHERE id = $2`
	tag, err := r.db.Exec(ctx, sql, token, id)
	if err != nil {
		return fmt.Errorf("failed to update verification token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no user with id %d", id)
	}
	return nil
}

func (r *userRepository) scanUser(row pgx.Row, by string) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.Role,
		&user.FacilityName, &user.LicenseNumber, &user.DueDate,
		&user.IsVerified, &user.VerificationToken, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // User not found is not an error for this method's contract, service layer handles it
		}
		return nil, fmt.Errorf("failed to find user by %s: %w", by, err)
	}
	return user, nil
}
