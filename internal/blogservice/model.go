package blogservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrUserForeignKey = errors.New("user_id does not exist")
	ErrNotOwner       = errors.New("blog does not belong to user")
)

func newBlogModel(db *sql.DB) *BlogModel {
	return &BlogModel{db: db}
}

// ForeignKeyError is a helper function to check if the error is a foreign key
// constraint error.
func ForeignKeyError(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23503" && pqErr.Constraint == name {
			return true
		}
	}

	return false
}

func (m *BlogModel) insert(ctx context.Context, b *Blog) error {
	query := `
		INSERT INTO blogs (title, author, url, likes, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at, version`

	args := []any{
		b.Title,
		b.Author,
		b.URL,
		b.Likes,
		b.User.ID,
	}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt, &b.Version)
	if err != nil {
		switch {
		case ForeignKeyError(err, "blogs_user_id_fkey"):
			return ErrUserForeignKey
		default:
			return err
		}
	}

	return nil
}

// getBlogByID returns a blog with its owner and comments. The owner is fetched
// in the same query, the comments in a second one.
func (m *BlogModel) getBlogByID(ctx context.Context, id int) (*Blog, error) {
	query := `
		SELECT b.id, b.title, b.author, b.url, b.likes, b.created_at, b.updated_at, b.version, u.id, u.username, u.name
		FROM blogs b
		JOIN users u ON b.user_id = u.id
		WHERE b.id = $1`

	row := m.db.QueryRowContext(ctx, query, id)

	var blog Blog
	err := row.Scan(&blog.ID, &blog.Title, &blog.Author, &blog.URL, &blog.Likes, &blog.CreatedAt, &blog.UpdatedAt, &blog.Version, &blog.User.ID, &blog.User.Username, &blog.User.Name)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	comments, err := m.getComments(ctx, blog.ID)
	if err != nil {
		return nil, err
	}
	blog.Comments = comments

	return &blog, nil
}

// getBlogs returns every blog with its owner and comments in insertion order.
// Comments are fetched for all listed blogs in a single query.
func (m *BlogModel) getBlogs(ctx context.Context) ([]Blog, error) {
	query := `
		SELECT b.id, b.title, b.author, b.url, b.likes, b.created_at, b.updated_at, b.version, u.id, u.username, u.name
		FROM blogs b
		JOIN users u ON b.user_id = u.id
		ORDER BY b.id`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []Blog{}
	ids := []int{}
	for rows.Next() {
		var blog Blog
		err := rows.Scan(&blog.ID, &blog.Title, &blog.Author, &blog.URL, &blog.Likes, &blog.CreatedAt, &blog.UpdatedAt, &blog.Version, &blog.User.ID, &blog.User.Username, &blog.User.Name)
		if err != nil {
			return nil, err
		}
		blog.Comments = []Comment{}
		blogs = append(blogs, blog)
		ids = append(ids, blog.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(blogs) == 0 {
		return blogs, nil
	}

	comments, err := m.getCommentsForBlogs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byBlog := make(map[int][]Comment, len(blogs))
	for _, c := range comments {
		byBlog[c.BlogID] = append(byBlog[c.BlogID], c)
	}

	for i := range blogs {
		if cs, ok := byBlog[blogs[i].ID]; ok {
			blogs[i].Comments = cs
		}
	}

	return blogs, nil
}

func (m *BlogModel) getComments(ctx context.Context, blogID int) ([]Comment, error) {
	query := `
		SELECT id, text, blog_id
		FROM comments
		WHERE blog_id = $1
		ORDER BY id`

	rows, err := m.db.QueryContext(ctx, query, blogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []Comment{}
	for rows.Next() {
		var c Comment
		err := rows.Scan(&c.ID, &c.Text, &c.BlogID)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

func (m *BlogModel) getCommentsForBlogs(ctx context.Context, blogIDs []int) ([]Comment, error) {
	query := `
		SELECT id, text, blog_id
		FROM comments
		WHERE blog_id = ANY($1)
		ORDER BY id`

	rows, err := m.db.QueryContext(ctx, query, pq.Array(blogIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []Comment{}
	for rows.Next() {
		var c Comment
		err := rows.Scan(&c.ID, &c.Text, &c.BlogID)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

// getOwner returns the id of the user who owns the blog.
func (m *BlogModel) getOwner(ctx context.Context, blogID int) (int, error) {
	query := `
		SELECT user_id
		FROM blogs
		WHERE id = $1`

	var ownerID int
	err := m.db.QueryRowContext(ctx, query, blogID).Scan(&ownerID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return 0, ErrRecordNotFound
		default:
			return 0, err
		}
	}

	return ownerID, nil
}

// updateBlog replaces the mutable fields of a blog. The full new state wins,
// there is no version precondition.
func (m *BlogModel) updateBlog(ctx context.Context, b *Blog) error {
	query := `
		UPDATE blogs
		SET title = $1, author = $2, url = $3, likes = $4, updated_at = now(), version = version + 1
		WHERE id = $5
		RETURNING user_id, created_at, updated_at, version`

	err := m.db.QueryRowContext(ctx, query, b.Title, b.Author, b.URL, b.Likes, b.ID).Scan(&b.User.ID, &b.CreatedAt, &b.UpdatedAt, &b.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrRecordNotFound
		default:
			return err
		}
	}

	return nil
}

// deleteBlog removes a blog. Comments go with it through the foreign key
// cascade. Deleting an already absent blog is not an error.
func (m *BlogModel) deleteBlog(ctx context.Context, blogID int) error {
	query := `
		DELETE FROM blogs
		WHERE id = $1`

	_, err := m.db.ExecContext(ctx, query, blogID)
	if err != nil {
		return err
	}

	return nil
}

// addComment inserts a comment and bumps the parent blog inside one
// transaction. The blog update doubles as the existence check.
func (m *BlogModel) addComment(ctx context.Context, blogID int, text string) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `UPDATE blogs SET updated_at = now(), version = version + 1 WHERE id = $1`, blogID)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if rows == 0 {
		_ = tx.Rollback()
		return ErrRecordNotFound
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO comments (text, blog_id) VALUES ($1, $2)`, text, blogID)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}
