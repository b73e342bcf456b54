package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/medication-reminder/internal/model"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

// Repository provides methods to interact with the users table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new user repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser inserts a new user into the database and returns its ID.
func (r *Repository) CreateUser(ctx context.Context, user model.User) (uuid.UUID, error) {
	query := `
		INSERT INTO users (
		    name, email, phone, password_hash, med_name, dosage, med_time, water_goal
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query,
		user.Name, user.Email, user.Phone, user.PasswordHash,
		user.MedName, user.Dosage, user.MedTime, user.WaterGoal,
	).Scan(&user.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user.ID, nil
}

// GetUserByID retrieves a single user by its ID.
func (r *Repository) GetUserByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `
		SELECT id, name, email, phone, password_hash, med_name, dosage, med_time, water_goal, created_at, updated_at
		FROM users
		WHERE id = $1;
    `

	var u model.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash,
		&u.MedName, &u.Dosage, &u.MedTime, &u.WaterGoal, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}

		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// GetUserByEmail retrieves a single user by email.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	query := `
		SELECT id, name, email, phone, password_hash, med_name, dosage, med_time, water_goal, created_at, updated_at
		FROM users
		WHERE email = $1;
    `

	var u model.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash,
		&u.MedName, &u.Dosage, &u.MedTime, &u.WaterGoal, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}

		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

// ListUsers retrieves all registered users ordered by creation time.
// The reminder sweep takes this as its per-run snapshot.
func (r *Repository) ListUsers(ctx context.Context) ([]model.User, error) {
	query := `
		SELECT id, name, email, phone, password_hash, med_name, dosage, med_time, water_goal, created_at, updated_at
		FROM users
		ORDER BY created_at;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash,
			&u.MedName, &u.Dosage, &u.MedTime, &u.WaterGoal, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}

		users = append(users, u)
	}

	return users, rows.Err()
}

// UpdateUser updates a user's editable profile fields by its ID.
func (r *Repository) UpdateUser(ctx context.Context, user model.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, phone = $3, med_name = $4, dosage = $5, med_time = $6, water_goal = $7, updated_at = now()
		WHERE id = $8;
    `

	res, err := r.db.ExecContext(
		ctx, query,
		user.Name, user.Email, user.Phone, user.MedName, user.Dosage, user.MedTime, user.WaterGoal,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}
