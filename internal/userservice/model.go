package userservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	ErrDuplicateUsername = errors.New("duplicate username")
	ErrNotFound          = errors.New("user not found")
)

func newUserModel(db *sql.DB) *UserModel {
	return &UserModel{db: db}
}

// uniqueViolation reports whether err is a unique constraint violation on
// the named constraint.
func uniqueViolation(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23505" && pqErr.Constraint == name {
			return true
		}
	}

	return false
}

func (m *UserModel) insert(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (username, name, email, password)
		VALUES ($1, $2, NULLIF($3, ''), $4)
		RETURNING id, created_at, version`

	args := []any{
		u.Username,
		u.Name,
		u.Email,
		u.Password.hash,
	}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.CreatedAt, &u.Version)
	if err != nil {
		switch {
		case uniqueViolation(err, "users_username_key"):
			return ErrDuplicateUsername
		default:
			return err
		}
	}

	return nil
}

func (m *UserModel) getByUsername(ctx context.Context, username string) (*User, error) {
	query := `
		SELECT id, username, name, COALESCE(email, ''), password, version
		FROM users
		WHERE username = $1`

	var u User

	err := m.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.Name, &u.Email, &u.Password.hash, &u.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

func (m *UserModel) getByID(ctx context.Context, id int) (*User, error) {
	query := `
		SELECT id, username, name, COALESCE(email, ''), version
		FROM users
		WHERE id = $1`

	var u User

	err := m.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Username, &u.Name, &u.Email, &u.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

// getAll returns every user together with the reduced representation of the
// blogs they own. A single left join is used instead of one query per user.
func (m *UserModel) getAll(ctx context.Context) ([]User, error) {
	query := `
		SELECT u.id, u.username, u.name, b.id, b.title, b.author, b.url, b.likes
		FROM users u
		LEFT JOIN blogs b ON b.user_id = u.id
		ORDER BY u.id, b.id`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var (
			id       int
			username string
			name     string
			blogID   sql.NullInt64
			title    sql.NullString
			author   sql.NullString
			url      sql.NullString
			likes    sql.NullInt64
		)

		err := rows.Scan(&id, &username, &name, &blogID, &title, &author, &url, &likes)
		if err != nil {
			return nil, err
		}

		if len(users) == 0 || users[len(users)-1].ID != id {
			users = append(users, User{ID: id, Username: username, Name: name, Blogs: []UserBlog{}})
		}

		if blogID.Valid {
			u := &users[len(users)-1]
			u.Blogs = append(u.Blogs, UserBlog{
				ID:     int(blogID.Int64),
				Title:  title.String,
				Author: author.String,
				URL:    url.String,
				Likes:  int(likes.Int64),
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
