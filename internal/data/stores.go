package data

import (
	"context"
)

type StoreModel struct {
	list list[Store]
}

// StorePatch holds the fields of an update. Nil fields are left untouched.
type StorePatch struct {
	Name         *string       `json:"name"`
	Description  *string       `json:"description"`
	Logo         *string       `json:"logo"`
	CoverImage   *string       `json:"coverImage"`
	OwnerID      *string       `json:"ownerId"`
	Categories   []string      `json:"categories"`
	Location     *Location     `json:"location"`
	ContactInfo  *ContactInfo  `json:"contactInfo"`
	OpeningHours *OpeningHours `json:"openingHours"`
	Rating       *float64      `json:"rating"`
	Reviews      []Review      `json:"reviews"`
}

func (p StorePatch) apply(s *Store) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Logo != nil {
		s.Logo = *p.Logo
	}
	if p.CoverImage != nil {
		s.CoverImage = *p.CoverImage
	}
	if p.OwnerID != nil {
		s.OwnerID = *p.OwnerID
	}
	if p.Categories != nil {
		s.Categories = p.Categories
	}
	if p.Location != nil {
		s.Location = *p.Location
	}
	if p.ContactInfo != nil {
		s.ContactInfo = *p.ContactInfo
	}
	if p.OpeningHours != nil {
		s.OpeningHours = *p.OpeningHours
	}
	if p.Rating != nil {
		s.Rating = *p.Rating
	}
	if p.Reviews != nil {
		s.Reviews = p.Reviews
	}
}

func (m StoreModel) GetStores(ctx context.Context) ([]Store, error) {
	return m.list.all(ctx)
}

func (m StoreModel) GetStoreByID(ctx context.Context, id string) (*Store, error) {
	stores, err := m.list.all(ctx)
	if err != nil {
		return nil, err
	}
	for i := range stores {
		if stores[i].ID == id {
			return &stores[i], nil
		}
	}
	return nil, nil
}

func (m StoreModel) GetStoresByOwner(ctx context.Context, ownerID string) ([]Store, error) {
	stores, err := m.list.all(ctx)
	if err != nil {
		return nil, err
	}
	return filter(stores, func(s Store) bool { return s.OwnerID == ownerID }), nil
}

// AddStore stores a copy of s with a fresh id and creation time. Any id or
// timestamp on s is ignored.
func (m StoreModel) AddStore(ctx context.Context, s Store) (*Store, error) {
	s.ID = newID("store")
	s.CreatedAt = now()
	if s.Reviews == nil {
		s.Reviews = []Review{}
	}
	err := m.list.modify(ctx, func(stores []Store) ([]Store, bool) {
		return append(stores, s), true
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateStore returns nil, nil when no store has the given id.
func (m StoreModel) UpdateStore(ctx context.Context, id string, patch StorePatch) (*Store, error) {
	var updated *Store
	err := m.list.modify(ctx, func(stores []Store) ([]Store, bool) {
		for i := range stores {
			if stores[i].ID == id {
				patch.apply(&stores[i])
				s := stores[i]
				updated = &s
				return stores, true
			}
		}
		return stores, false
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (m StoreModel) DeleteStore(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := m.list.modify(ctx, func(stores []Store) ([]Store, bool) {
		filtered := filter(stores, func(s Store) bool { return s.ID != id })
		deleted = len(filtered) != len(stores)
		return filtered, deleted
	})
	return deleted, err
}
