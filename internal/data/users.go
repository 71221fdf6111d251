package data

import (
	"context"
	"strings"
	"time"
)

type UserModel struct {
	list list[Account]
}

func (m UserModel) GetUsers(ctx context.Context) ([]User, error) {
	accounts, err := m.list.all(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]User, 0, len(accounts))
	for _, a := range accounts {
		users = append(users, a.User)
	}
	return users, nil
}

func (m UserModel) GetUserByID(ctx context.Context, id string) (*User, error) {
	accounts, err := m.list.all(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.ID == id {
			u := a.User
			return &u, nil
		}
	}
	return nil, nil
}

func (m UserModel) GetUsersByRole(ctx context.Context, role Role) ([]User, error) {
	users, err := m.GetUsers(ctx)
	if err != nil {
		return nil, err
	}
	return filter(users, func(u User) bool { return u.Role == role }), nil
}

// InsertAccount appends a as-is, keeping whatever id and timestamp it
// carries. It reports false without writing when the email is taken.
func (m UserModel) InsertAccount(ctx context.Context, a Account) (bool, error) {
	inserted := false
	err := m.list.modify(ctx, func(accounts []Account) ([]Account, bool) {
		for _, existing := range accounts {
			if strings.EqualFold(existing.Email, a.Email) {
				return accounts, false
			}
		}
		inserted = true
		return append(accounts, a), true
	})
	return inserted, err
}

// NewUserID returns an id in the user_<millis> form used for registrations.
func NewUserID() string {
	return newID("user_")
}

// Now is the timestamp repository records are stamped with.
func Now() time.Time {
	return now()
}
