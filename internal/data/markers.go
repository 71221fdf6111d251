package data

import "strings"

type MarkerType string

const (
	MarkerStore     MarkerType = "store"
	MarkerGas       MarkerType = "gas"
	MarkerEmergency MarkerType = "emergency"
	MarkerMedical   MarkerType = "medical"
	MarkerDefault   MarkerType = "default"
)

// Map tabs.
const (
	TabAll      = "all"
	TabStores   = "stores"
	TabServices = "services"
)

type Marker struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Position [2]float64 `json:"position"`
	Type     MarkerType `json:"type"`
}

func storeMarkerType(s Store) MarkerType {
	if len(s.Categories) > 0 && strings.Contains(strings.ToLower(s.Categories[0]), "gas") {
		return MarkerGas
	}
	return MarkerStore
}

func serviceMarkerType(s Service) MarkerType {
	category := strings.ToLower(s.Category)
	switch {
	case s.IsEmergency:
		return MarkerEmergency
	case strings.Contains(category, "medical"):
		return MarkerMedical
	case strings.Contains(category, "gas"):
		return MarkerGas
	}
	return MarkerDefault
}

// Markers builds map pins for the given tab, stores first. An empty tab
// means TabAll.
func Markers(stores []Store, services []Service, tab string) []Marker {
	if tab == "" {
		tab = TabAll
	}
	markers := []Marker{}
	if tab == TabAll || tab == TabStores {
		for _, s := range stores {
			markers = append(markers, Marker{
				ID:       s.ID,
				Title:    s.Name,
				Position: [2]float64{s.Location.Lat, s.Location.Lng},
				Type:     storeMarkerType(s),
			})
		}
	}
	if tab == TabAll || tab == TabServices {
		for _, s := range services {
			markers = append(markers, Marker{
				ID:       s.ID,
				Title:    s.Name,
				Position: [2]float64{s.Location.Lat, s.Location.Lng},
				Type:     serviceMarkerType(s),
			})
		}
	}
	return markers
}
