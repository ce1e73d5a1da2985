package blogservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ayumukasuga/bloglist/internal/common"
)

// NewBlogService creates a blog service backed by db. Read results are kept in
// c until the next write. When ownedUpdates is true updating a blog is
// restricted to its owner, matching the rule that already applies to deletes.
func NewBlogService(db *sql.DB, c *common.Cache, ownedUpdates bool) *BlogService {
	return &BlogService{
		m:            newBlogModel(db),
		c:            c,
		ownedUpdates: ownedUpdates,
	}
}

type CreateBlogRequest struct {
	Title  string
	Author string
	URL    string
	Likes  int
	UserID int
}

type UpdateBlogRequest struct {
	ID     int
	Title  string
	Author string
	URL    string
	Likes  int
}

// CreateBlog creates a new blog owned by the given user and returns it with
// the owner populated.
func (s *BlogService) CreateBlog(ctx context.Context, req *CreateBlogRequest) (*Blog, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateAuthor(v, req.Author)
	validateURL(v, req.URL)
	validateLikes(v, req.Likes)
	validateInt(v, req.UserID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog := Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
		User:   Owner{ID: req.UserID},
	}

	err := s.m.insert(ctx, &blog)
	if err != nil {
		return nil, err
	}

	s.c.Flush()

	return s.m.getBlogByID(ctx, blog.ID)
}

// GetBlogByID returns a blog with its owner and comments populated.
func (s *BlogService) GetBlogByID(ctx context.Context, id int) (*Blog, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if cached, ok := s.c.Get(common.CacheKeyBlog(id)); ok {
		if blog, ok := cached.(*Blog); ok {
			return blog, nil
		}
	}

	blog, err := s.m.getBlogByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyBlog(id), blog)

	return blog, nil
}

// GetBlogs returns all blogs with owners and comments populated.
func (s *BlogService) GetBlogs(ctx context.Context) ([]Blog, error) {
	if cached, ok := s.c.Get(common.CacheKeyBlogs()); ok {
		if blogs, ok := cached.([]Blog); ok {
			return blogs, nil
		}
	}

	blogs, err := s.m.getBlogs(ctx)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyBlogs(), blogs)

	return blogs, nil
}

// UpdateBlog replaces the stored state of a blog with the request. The update
// is open to any authenticated user unless the service was configured to
// restrict updates to the owner.
func (s *BlogService) UpdateBlog(ctx context.Context, req *UpdateBlogRequest, userID int) (*Blog, error) {
	v := common.NewValidator()
	validateInt(v, req.ID, "id")
	validateTitle(v, req.Title)
	validateAuthor(v, req.Author)
	validateURL(v, req.URL)
	validateLikes(v, req.Likes)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if s.ownedUpdates {
		ownerID, err := s.m.getOwner(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		if ownerID != userID {
			return nil, ErrNotOwner
		}
	}

	blog := Blog{
		ID:     req.ID,
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	}

	err := s.m.updateBlog(ctx, &blog)
	if err != nil {
		return nil, err
	}

	s.c.Flush()

	return s.m.getBlogByID(ctx, blog.ID)
}

// DeleteBlog deletes a blog owned by the given user. Deleting a blog that does
// not exist is a no-op so the operation stays idempotent.
func (s *BlogService) DeleteBlog(ctx context.Context, blogID, userID int) error {
	v := common.NewValidator()
	validateInt(v, blogID, "id")
	validateInt(v, userID, "user_id")
	if !v.Valid() {
		return v.ValidationError()
	}

	ownerID, err := s.m.getOwner(ctx, blogID)
	if err != nil {
		switch {
		case errors.Is(err, ErrRecordNotFound):
			return nil
		default:
			return err
		}
	}

	if ownerID != userID {
		return ErrNotOwner
	}

	err = s.m.deleteBlog(ctx, blogID)
	if err != nil {
		return err
	}

	s.c.Flush()

	return nil
}

// AddComment attaches an anonymous comment to a blog and returns the updated
// blog. The comment text is sanitized before it is validated and stored.
func (s *BlogService) AddComment(ctx context.Context, blogID int, text string) (*Blog, error) {
	text = sanitizeComment(text)

	v := common.NewValidator()
	validateInt(v, blogID, "id")
	validateComment(v, text)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	err := s.m.addComment(ctx, blogID, text)
	if err != nil {
		return nil, err
	}

	s.c.Flush()

	return s.m.getBlogByID(ctx, blogID)
}

// Stats summarizes the whole blog collection.
func (s *BlogService) Stats(ctx context.Context) (*Stats, error) {
	if cached, ok := s.c.Get(common.CacheKeyBlogStats()); ok {
		if stats, ok := cached.(*Stats); ok {
			return stats, nil
		}
	}

	blogs, err := s.GetBlogs(ctx)
	if err != nil {
		return nil, err
	}

	stats := Summarize(blogs)
	s.c.Set(common.CacheKeyBlogStats(), stats)

	return stats, nil
}
