package data

import (
	"context"
	_ "embed"
	"encoding/json"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

type seedData struct {
	Users    []Account `json:"users"`
	Stores   []Store   `json:"stores"`
	Products []Product `json:"products"`
	Reviews  []Review  `json:"reviews"`
	Services []Service `json:"services"`
}

// loadSeed decodes the fixture. The YAML is converted to JSON first so the
// records' json tags drive the field mapping.
func loadSeed() (*seedData, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(seedYAML, &raw); err != nil {
		return nil, errors.Wrap(err, "parse seed.yaml")
	}
	js, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.Wrap(err, "convert seed.yaml")
	}
	var seed seedData
	if err := json.Unmarshal(js, &seed); err != nil {
		return nil, errors.Wrap(err, "decode seed.yaml")
	}
	return &seed, nil
}

// Initialize writes the mock data into every collection key that does not
// exist yet and returns the keys it seeded. Existing data is never touched.
func (m Models) Initialize(ctx context.Context) ([]string, error) {
	seed, err := loadSeed()
	if err != nil {
		return nil, err
	}

	var seeded []string
	steps := []struct {
		key  string
		seed func() (bool, error)
	}{
		{UsersKey, func() (bool, error) { return seedList(ctx, m.Users.list, seed.Users) }},
		{StoresKey, func() (bool, error) { return seedList(ctx, m.Stores.list, seed.Stores) }},
		{ProductsKey, func() (bool, error) { return seedList(ctx, m.Products.list, seed.Products) }},
		{ReviewsKey, func() (bool, error) { return seedList(ctx, m.Reviews.list, seed.Reviews) }},
		{ServicesKey, func() (bool, error) { return seedList(ctx, m.Services.list, seed.Services) }},
	}
	for _, step := range steps {
		ok, err := step.seed()
		if err != nil {
			return seeded, err
		}
		if ok {
			seeded = append(seeded, step.key)
		}
	}
	return seeded, nil
}

func seedList[T any](ctx context.Context, l list[T], items []T) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ok, err := l.exists(ctx)
	if err != nil || ok {
		return false, err
	}
	return true, l.write(ctx, items)
}
