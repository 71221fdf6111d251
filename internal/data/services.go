package data

import (
	"context"
)

type ServiceModel struct {
	list list[Service]
}

// ServicePatch covers the fields an admin edits from the services screen.
// Type-specific extras (fuel prices, cuisines, ...) are only set on create.
type ServicePatch struct {
	Name         *string       `json:"name"`
	Description  *string       `json:"description"`
	Category     *string       `json:"category"`
	Tags         []string      `json:"tags"`
	Location     *Location     `json:"location"`
	ContactInfo  *ContactInfo  `json:"contactInfo"`
	OpeningHours *OpeningHours `json:"openingHours"`
	IsEmergency  *bool         `json:"isEmergency"`
	IsOpen       *bool         `json:"isOpen"`
	Image        *string       `json:"image"`
	Rating       *float64      `json:"rating"`
}

func (p ServicePatch) apply(s *Service) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.Tags != nil {
		s.Tags = p.Tags
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
	if p.IsEmergency != nil {
		s.IsEmergency = *p.IsEmergency
	}
	if p.IsOpen != nil {
		s.IsOpen = *p.IsOpen
	}
	if p.Image != nil {
		s.Image = *p.Image
	}
	if p.Rating != nil {
		s.Rating = *p.Rating
	}
}

func (m ServiceModel) GetServices(ctx context.Context) ([]Service, error) {
	return m.list.all(ctx)
}

func (m ServiceModel) GetServiceByID(ctx context.Context, id string) (*Service, error) {
	services, err := m.list.all(ctx)
	if err != nil {
		return nil, err
	}
	for i := range services {
		if services[i].ID == id {
			return &services[i], nil
		}
	}
	return nil, nil
}

func (m ServiceModel) AddService(ctx context.Context, s Service) (*Service, error) {
	s.ID = newID("service")
	s.CreatedAt = now()
	err := m.list.modify(ctx, func(services []Service) ([]Service, bool) {
		return append(services, s), true
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (m ServiceModel) UpdateService(ctx context.Context, id string, patch ServicePatch) (*Service, error) {
	var updated *Service
	err := m.list.modify(ctx, func(services []Service) ([]Service, bool) {
		for i := range services {
			if services[i].ID == id {
				patch.apply(&services[i])
				s := services[i]
				updated = &s
				return services, true
			}
		}
		return services, false
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (m ServiceModel) DeleteService(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := m.list.modify(ctx, func(services []Service) ([]Service, bool) {
		filtered := filter(services, func(s Service) bool { return s.ID != id })
		deleted = len(filtered) != len(services)
		return filtered, deleted
	})
	return deleted, err
}
