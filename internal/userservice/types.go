package userservice

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/ayumukasuga/bloglist/internal/common"
)

const (
	// AccessTokenTime is the default lifetime of an issued access token.
	AccessTokenTime time.Duration = 24 * time.Hour
)

var (
	AnonymousUser = User{}
)

type UserService struct {
	m      *UserModel
	mb     common.MessageProducer
	c      *common.Cache
	tokens *TokenManager
	logger *slog.Logger
}

type UserModel struct {
	db *sql.DB
}

type User struct {
	ID        int        `json:"id,string"`
	Username  string     `json:"username"`
	Name      string     `json:"name"`
	Email     string     `json:"-"`
	Password  Password   `json:"-"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
	Version   int        `json:"-"`
	Blogs     []UserBlog `json:"blogs"`
}

// Password holds only the bcrypt hash of a user's password.
type Password struct {
	hash []byte
}

// UserBlog is the reduced blog representation embedded in a user listing.
type UserBlog struct {
	ID     int    `json:"id,string"`
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

// AuthToken is the response body of a successful login.
type AuthToken struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}
