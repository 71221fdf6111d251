// Package auth is the sign-in stub: only a fixed set of demo accounts can log
// in, compared in plaintext. Registration stores a new account and signs it in
// once; it cannot log in again afterwards. The signed-in user lives in the
// session's storage under masar_user.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wisp167/masar/internal/data"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidRole        = errors.New("role must be user or seller")
)

const demoPassword = "password"

var demoAccounts = []data.Account{
	{
		User: data.User{
			ID:     "user1",
			Name:   "John User",
			Email:  "user@example.com",
			Role:   data.RoleUser,
			Avatar: "/mystical-forest-spirit.png",
		},
		Password: demoPassword,
	},
	{
		User: data.User{
			ID:     "seller1",
			Name:   "Sarah Seller",
			Email:  "seller@example.com",
			Role:   data.RoleSeller,
			Avatar: "/mystical-forest-spirit.png",
		},
		Password: demoPassword,
	},
	{
		User: data.User{
			ID:     "admin1",
			Name:   "Admin User",
			Email:  "admin@example.com",
			Role:   data.RoleAdmin,
			Avatar: "/mystical-forest-spirit.png",
		},
		Password: demoPassword,
	},
}

// Provider signs users in and out of one session.
type Provider struct {
	users   data.UserModel
	session data.KV
	delay   time.Duration
}

// NewProvider binds the registered accounts to a session's storage. Login and
// Register sleep for delay before answering, as the web client did.
func NewProvider(users data.UserModel, session data.KV, delay time.Duration) *Provider {
	return &Provider{users: users, session: session, delay: delay}
}

func (p *Provider) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Provider) Login(ctx context.Context, email, password string) (*data.User, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	var found *data.User
	for _, acc := range demoAccounts {
		if acc.Email == email && acc.Password == password {
			u := acc.User
			found = &u
			break
		}
	}
	if found == nil {
		return nil, ErrInvalidCredentials
	}

	if err := p.remember(ctx, *found); err != nil {
		return nil, err
	}
	return found, nil
}

func (p *Provider) Register(ctx context.Context, name, email, password string, role data.Role) (*data.User, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	if role != data.RoleUser && role != data.RoleSeller {
		return nil, ErrInvalidRole
	}
	for _, acc := range demoAccounts {
		if strings.EqualFold(acc.Email, email) {
			return nil, ErrEmailInUse
		}
	}

	initial := ""
	if r := []rune(name); len(r) > 0 {
		initial = string(r[0])
	}
	acc := data.Account{
		User: data.User{
			ID:        data.NewUserID(),
			Name:      name,
			Email:     email,
			Role:      role,
			Avatar:    fmt.Sprintf("/placeholder.svg?height=32&width=32&query=%s", initial),
			CreatedAt: data.Now(),
		},
		Password: password,
	}
	ok, err := p.users.InsertAccount(ctx, acc)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrEmailInUse
	}

	if err := p.remember(ctx, acc.User); err != nil {
		return nil, err
	}
	return &acc.User, nil
}

func (p *Provider) Logout(ctx context.Context) error {
	return p.session.Delete(ctx, data.CurrentUserKey)
}

// CurrentUser returns nil when nobody is signed in.
func (p *Provider) CurrentUser(ctx context.Context) (*data.User, error) {
	raw, ok, err := p.session.Get(ctx, data.CurrentUserKey)
	if err != nil || !ok {
		return nil, err
	}
	var u data.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("decode %s: %w", data.CurrentUserKey, err)
	}
	return &u, nil
}

func (p *Provider) remember(ctx context.Context, u data.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return p.session.Set(ctx, data.CurrentUserKey, raw)
}
