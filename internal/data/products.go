package data

import (
	"context"
)

type ProductModel struct {
	list list[Product]
}

type ProductPatch struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Price       *float64     `json:"price"`
	Category    *string      `json:"category"`
	StoreID     *string      `json:"storeId"`
	Image       *string      `json:"image"`
	InStock     *bool        `json:"inStock"`
	Rating      *float64     `json:"rating"`
	Location    *Coordinates `json:"location"`
}

func (p ProductPatch) apply(pr *Product) {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.Price != nil {
		pr.Price = *p.Price
	}
	if p.Category != nil {
		pr.Category = *p.Category
	}
	if p.StoreID != nil {
		pr.StoreID = *p.StoreID
	}
	if p.Image != nil {
		pr.Image = *p.Image
	}
	if p.InStock != nil {
		pr.InStock = *p.InStock
	}
	if p.Rating != nil {
		pr.Rating = *p.Rating
	}
	if p.Location != nil {
		loc := *p.Location
		pr.Location = &loc
	}
}

func (m ProductModel) GetProducts(ctx context.Context) ([]Product, error) {
	return m.list.all(ctx)
}

func (m ProductModel) GetProductByID(ctx context.Context, id string) (*Product, error) {
	products, err := m.list.all(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, nil
}

func (m ProductModel) GetProductsByStore(ctx context.Context, storeID string) ([]Product, error) {
	products, err := m.list.all(ctx)
	if err != nil {
		return nil, err
	}
	return filter(products, func(p Product) bool { return p.StoreID == storeID }), nil
}

// GetProductsByCategory matches the category exactly.
func (m ProductModel) GetProductsByCategory(ctx context.Context, category string) ([]Product, error) {
	products, err := m.list.all(ctx)
	if err != nil {
		return nil, err
	}
	return filter(products, func(p Product) bool { return p.Category == category }), nil
}

func (m ProductModel) AddProduct(ctx context.Context, p Product) (*Product, error) {
	p.ID = newID("product")
	p.CreatedAt = now()
	err := m.list.modify(ctx, func(products []Product) ([]Product, bool) {
		return append(products, p), true
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (m ProductModel) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*Product, error) {
	var updated *Product
	err := m.list.modify(ctx, func(products []Product) ([]Product, bool) {
		for i := range products {
			if products[i].ID == id {
				patch.apply(&products[i])
				p := products[i]
				updated = &p
				return products, true
			}
		}
		return products, false
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (m ProductModel) DeleteProduct(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := m.list.modify(ctx, func(products []Product) ([]Product, bool) {
		filtered := filter(products, func(p Product) bool { return p.ID != id })
		deleted = len(filtered) != len(products)
		return filtered, deleted
	})
	return deleted, err
}
