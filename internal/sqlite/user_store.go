package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/Tehl/bank-api/internal/core"
)

// UserStore implements core.UserRepository on the sqlite client. The unique
// index on username maps constraint violations to core.ErrUserExists.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) UserStore {
	return UserStore{
		db: db,
	}
}

func (s UserStore) CreateUser(ctx context.Context, username string) (core.AppUser, error) {
	query := `
		INSERT INTO users (username)
		VALUES (?)
	`

	result, err := s.db.ExecContext(ctx, query, username)
	if err != nil {
		if isUniqueViolation(err) {
			return core.AppUser{}, fmt.Errorf("%w: %s", core.ErrUserExists, username)
		}

		return core.AppUser{}, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return core.AppUser{}, fmt.Errorf("failed to get inserted user id: %w", err)
	}

	return core.AppUser{ID: id, Username: username}, nil
}

func (s UserStore) GetUserByID(ctx context.Context, userID int64) (*core.AppUser, error) {
	query := `
		SELECT id, username
		FROM users
		WHERE id = ?
	`

	return s.scanUser(s.db.QueryRowContext(ctx, query, userID))
}

func (s UserStore) GetUserByUsername(ctx context.Context, username string) (*core.AppUser, error) {
	query := `
		SELECT id, username
		FROM users
		WHERE username = ?
	`

	return s.scanUser(s.db.QueryRowContext(ctx, query, username))
}

func (s UserStore) GetAllUsers(ctx context.Context) ([]core.AppUser, error) {
	query := `
		SELECT id, username
		FROM users
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []core.AppUser
	for rows.Next() {
		var user core.AppUser
		if err := rows.Scan(&user.ID, &user.Username); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

func (s UserStore) scanUser(row *sql.Row) (*core.AppUser, error) {
	var user core.AppUser
	err := row.Scan(&user.ID, &user.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
