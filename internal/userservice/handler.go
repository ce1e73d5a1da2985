package userservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ayumukasuga/bloglist/internal/common"
)

var (
	ErrAuthenticationFailure = fmt.Errorf("invalid credentials")
)

func NewUserService(db *sql.DB, mb common.MessageProducer, c *common.Cache, tm *TokenManager, logger *slog.Logger) *UserService {
	return &UserService{
		m:      newUserModel(db),
		mb:     mb,
		c:      c,
		tokens: tm,
		logger: logger,
	}
}

// CreateUser creates a new user account. When the account carries an email
// address an user.created event is published so the mail worker can send a
// welcome email. Publishing is best effort: a broker failure is logged and the
// account is still created.
func (s *UserService) CreateUser(ctx context.Context, username, name, email, password string) (*User, error) {
	v := common.NewValidator()
	validateUsername(v, username)
	validateName(v, name)
	if email != "" {
		validateEmail(v, email)
	}
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	u := User{
		Username: username,
		Name:     name,
		Email:    email,
	}

	if err := u.Password.set(password); err != nil {
		return nil, err
	}

	err := s.m.insert(ctx, &u)
	if err != nil {
		return nil, err
	}
	u.Blogs = []UserBlog{}

	s.c.Delete(common.CacheKeyUsers())

	if s.mb != nil && u.Email != "" {
		data := struct {
			Email    string
			Username string
		}{
			Email:    u.Email,
			Username: u.Username,
		}

		emailData, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}

		err = s.mb.Publish(ctx, emailData, common.UserCreatedKey, common.UserExchange)
		if err != nil {
			s.logger.Error("could not publish user created event", slog.String("username", u.Username), slog.String("error", err.Error()))
		}
	}

	return &u, nil
}

// LoginUser checks the credentials and returns a signed access token. A wrong
// username and a wrong password are indistinguishable to the caller.
func (s *UserService) LoginUser(ctx context.Context, username, password string) (*AuthToken, error) {
	v := common.NewValidator()
	v.Check(username != "", "username", "must be provided")
	v.Check(password != "", "password", "must be provided")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	user, err := s.m.getByUsername(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, ErrAuthenticationFailure
		default:
			return nil, err
		}
	}

	ok, err := user.Password.matches(password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAuthenticationFailure
	}

	token, err := s.tokens.NewAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &AuthToken{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	}, nil
}

// GetUserByAccessToken verifies the token signature and expiry and loads the
// user it was issued for.
func (s *UserService) GetUserByAccessToken(ctx context.Context, token string) (*User, error) {
	id, err := s.tokens.VerifyAccessToken(token)
	if err != nil {
		return nil, err
	}

	return s.m.getByID(ctx, id)
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (*User, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getByID(ctx, id)
}

// GetUsers returns all users with the blogs they own.
func (s *UserService) GetUsers(ctx context.Context) ([]User, error) {
	if cached, ok := s.c.Get(common.CacheKeyUsers()); ok {
		if users, ok := cached.([]User); ok {
			return users, nil
		}
	}

	users, err := s.m.getAll(ctx)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyUsers(), users)

	return users, nil
}

func (u *User) IsAnonymous() bool {
	return u == &AnonymousUser
}
