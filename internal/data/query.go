package data

import (
	"sort"
	"strings"
)

const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
)

type ProductQuery struct {
	Search   string
	Category string
	StoreID  string
	Sort     string
}

type StoreQuery struct {
	Search   string
	Category string
	OwnerID  string
}

type ServiceQuery struct {
	Search        string
	Category      string
	EmergencyOnly bool
}

func matchesSearch(search, name, description string) bool {
	if search == "" {
		return true
	}
	search = strings.ToLower(search)
	return strings.Contains(strings.ToLower(name), search) ||
		strings.Contains(strings.ToLower(description), search)
}

func matchesCategory(want, got string) bool {
	return want == "" || strings.EqualFold(want, got)
}

// FilterProducts returns the matching products in the requested order. An
// unknown sort keeps the stored order.
func FilterProducts(products []Product, q ProductQuery) []Product {
	out := filter(products, func(p Product) bool {
		return matchesSearch(q.Search, p.Name, p.Description) &&
			matchesCategory(q.Category, p.Category) &&
			(q.StoreID == "" || p.StoreID == q.StoreID)
	})

	sortBy := q.Sort
	if sortBy == "" {
		sortBy = SortNewest
	}
	switch sortBy {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}

func FilterStores(stores []Store, q StoreQuery) []Store {
	return filter(stores, func(s Store) bool {
		if !matchesSearch(q.Search, s.Name, s.Description) {
			return false
		}
		if q.OwnerID != "" && s.OwnerID != q.OwnerID {
			return false
		}
		if q.Category == "" {
			return true
		}
		for _, c := range s.Categories {
			if strings.EqualFold(c, q.Category) {
				return true
			}
		}
		return false
	})
}

func FilterServices(services []Service, q ServiceQuery) []Service {
	return filter(services, func(s Service) bool {
		return matchesSearch(q.Search, s.Name, s.Description) &&
			matchesCategory(q.Category, s.Category) &&
			(!q.EmergencyOnly || s.IsEmergency)
	})
}

// Categories lists the distinct store and service categories, sorted.
func Categories(stores []Store, services []Service) []string {
	var all []string
	for _, s := range stores {
		all = append(all, s.Categories...)
	}
	for _, s := range services {
		all = append(all, s.Category)
	}
	return distinctSorted(all)
}

func ProductCategories(products []Product) []string {
	all := make([]string, 0, len(products))
	for _, p := range products {
		all = append(all, p.Category)
	}
	return distinctSorted(all)
}

func distinctSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := []string{}
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
