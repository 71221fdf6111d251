package data

import "context"

type AdminStats struct {
	TotalUsers    int `json:"totalUsers"`
	TotalStores   int `json:"totalStores"`
	TotalProducts int `json:"totalProducts"`
	TotalServices int `json:"totalServices"`
}

type SellerOverview struct {
	Stores         []Store   `json:"stores"`
	Products       []Product `json:"products"`
	TotalStores    int       `json:"totalStores"`
	TotalProducts  int       `json:"totalProducts"`
	InventoryValue float64   `json:"inventoryValue"`
}

func (m Models) AdminStats(ctx context.Context) (*AdminStats, error) {
	users, err := m.Users.GetUsers(ctx)
	if err != nil {
		return nil, err
	}
	stores, err := m.Stores.GetStores(ctx)
	if err != nil {
		return nil, err
	}
	products, err := m.Products.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	services, err := m.Services.GetServices(ctx)
	if err != nil {
		return nil, err
	}
	return &AdminStats{
		TotalUsers:    len(users),
		TotalStores:   len(stores),
		TotalProducts: len(products),
		TotalServices: len(services),
	}, nil
}

// SellerOverview gathers the seller's stores and every product listed in
// them. InventoryValue is the plain sum of those products' prices.
func (m Models) SellerOverview(ctx context.Context, sellerID string) (*SellerOverview, error) {
	stores, err := m.Stores.GetStoresByOwner(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	all, err := m.Products.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	owned := make(map[string]struct{}, len(stores))
	for _, s := range stores {
		owned[s.ID] = struct{}{}
	}
	products := filter(all, func(p Product) bool {
		_, ok := owned[p.StoreID]
		return ok
	})

	overview := &SellerOverview{
		Stores:        stores,
		Products:      products,
		TotalStores:   len(stores),
		TotalProducts: len(products),
	}
	for _, p := range products {
		overview.InventoryValue += p.Price
	}
	return overview, nil
}
