package data

import (
	"context"
	"errors"
)

var ErrInvalidItemType = errors.New("invalid favorite item type")

// Storage keys. They match the keys the web client used in local storage so
// exported dumps stay interchangeable.
const (
	UsersKey       = "masar_users"
	StoresKey      = "masar_stores"
	ProductsKey    = "masar_products"
	ReviewsKey     = "masar_reviews"
	ServicesKey    = "masar_services"
	CurrentUserKey = "masar_user"
)

var collectionKeys = []string{UsersKey, StoresKey, ProductsKey, ReviewsKey, ServicesKey}

type Models struct {
	KV        KV
	Users     UserModel
	Stores    StoreModel
	Products  ProductModel
	Reviews   ReviewModel
	Services  ServiceModel
	Favorites *FavoriteModel
}

func NewModels(kv KV) Models {
	return Models{
		KV:        kv,
		Users:     UserModel{list: newList[Account](kv, UsersKey)},
		Stores:    StoreModel{list: newList[Store](kv, StoresKey)},
		Products:  ProductModel{list: newList[Product](kv, ProductsKey)},
		Reviews:   ReviewModel{list: newList[Review](kv, ReviewsKey)},
		Services:  ServiceModel{list: newList[Service](kv, ServicesKey)},
		Favorites: &FavoriteModel{KV: kv},
	}
}

// Reset removes every collection key. Favorites and sessions are left alone.
func (m Models) Reset(ctx context.Context) error {
	for _, key := range collectionKeys {
		if err := m.KV.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
