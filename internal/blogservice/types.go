package blogservice

import (
	"database/sql"
	"time"

	"github.com/ayumukasuga/bloglist/internal/common"
)

type Blog struct {
	ID        int       `json:"id,string"`
	Title     string    `json:"title"`
	Author    string    `json:"author,omitempty"`
	URL       string    `json:"url"`
	Likes     int       `json:"likes"`
	User      Owner     `json:"user"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	Version   int       `json:"-"`
}

// Owner is the reduced user representation embedded in a blog.
type Owner struct {
	ID       int    `json:"id,string"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

type Comment struct {
	ID     int    `json:"id,string"`
	Text   string `json:"text"`
	BlogID int    `json:"-"`
}

type BlogModel struct {
	db *sql.DB
}

type BlogService struct {
	m *BlogModel
	c *common.Cache

	// ownedUpdates restricts blog updates to the owning user when enabled.
	ownedUpdates bool
}
