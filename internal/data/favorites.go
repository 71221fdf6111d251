package data

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pkg/errors"
)

type ItemType string

const (
	FavoriteStore   ItemType = "store"
	FavoriteProduct ItemType = "product"
)

// FavoriteModel keeps one id list per user and item type under
// masar_favorites_<type>_<userID>.
type FavoriteModel struct {
	KV KV
	mu sync.Mutex
}

func favoritesKey(itemType ItemType, userID string) string {
	return fmt.Sprintf("masar_favorites_%s_%s", itemType, userID)
}

func checkItemType(itemType ItemType) error {
	if itemType != FavoriteStore && itemType != FavoriteProduct {
		return ErrInvalidItemType
	}
	return nil
}

func (m *FavoriteModel) List(ctx context.Context, itemType ItemType, userID string) ([]string, error) {
	if err := checkItemType(itemType); err != nil {
		return nil, err
	}
	key := favoritesKey(itemType, userID)
	raw, ok, err := m.KV.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	ids := []string{}
	if !ok {
		return ids, nil
	}
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, errors.Wrapf(err, "decode %s", key)
	}
	return ids, nil
}

func (m *FavoriteModel) IsFavorite(ctx context.Context, itemType ItemType, userID, itemID string) (bool, error) {
	ids, err := m.List(ctx, itemType, userID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == itemID {
			return true, nil
		}
	}
	return false, nil
}

// Toggle adds itemID when absent and removes it otherwise. It returns whether
// the item is a favorite afterwards.
func (m *FavoriteModel) Toggle(ctx context.Context, itemType ItemType, userID, itemID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids, err := m.List(ctx, itemType, userID)
	if err != nil {
		return false, err
	}
	kept := filter(ids, func(id string) bool { return id != itemID })
	favorite := len(kept) == len(ids)
	if favorite {
		kept = append(kept, itemID)
	}

	raw, err := json.Marshal(kept)
	if err != nil {
		return false, err
	}
	if err := m.KV.Set(ctx, favoritesKey(itemType, userID), raw); err != nil {
		return false, err
	}
	return favorite, nil
}
