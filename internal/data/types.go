package data

import "time"

type Role string

const (
	RoleUser   Role = "user"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Account is the stored form of a user. Only accounts created through
// registration carry a password.
type Account struct {
	User
	Password string `json:"password,omitempty"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Location struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website,omitempty"`
}

type OpeningHours struct {
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Saturday  string `json:"saturday"`
	Sunday    string `json:"sunday"`
}

// ForDay returns the hours string for the given weekday.
func (h OpeningHours) ForDay(d time.Weekday) string {
	switch d {
	case time.Monday:
		return h.Monday
	case time.Tuesday:
		return h.Tuesday
	case time.Wednesday:
		return h.Wednesday
	case time.Thursday:
		return h.Thursday
	case time.Friday:
		return h.Friday
	case time.Saturday:
		return h.Saturday
	default:
		return h.Sunday
	}
}

type Store struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Logo         string       `json:"logo"`
	CoverImage   string       `json:"coverImage"`
	OwnerID      string       `json:"ownerId"`
	Categories   []string     `json:"categories"`
	Location     Location     `json:"location"`
	ContactInfo  ContactInfo  `json:"contactInfo"`
	OpeningHours OpeningHours `json:"openingHours"`
	Rating       float64      `json:"rating,omitempty"`
	Reviews      []Review     `json:"reviews"`
	CreatedAt    time.Time    `json:"createdAt"`
}

type Product struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Category    string       `json:"category"`
	StoreID     string       `json:"storeId"`
	Image       string       `json:"image,omitempty"`
	InStock     bool         `json:"inStock"`
	Rating      float64      `json:"rating,omitempty"`
	Location    *Coordinates `json:"location,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

type Review struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Service struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	Tags         []string     `json:"tags,omitempty"`
	Location     Location     `json:"location"`
	ContactInfo  ContactInfo  `json:"contactInfo"`
	OpeningHours OpeningHours `json:"openingHours"`
	IsEmergency  bool         `json:"isEmergency"`
	IsOpen       bool         `json:"isOpen"`
	Image        string       `json:"image,omitempty"`
	Rating       float64      `json:"rating,omitempty"`
	ReviewCount  int          `json:"reviewCount,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`

	FacilityType  string   `json:"facilityType,omitempty"`
	ServiceType   string   `json:"serviceType,omitempty"`
	Specialties   []string `json:"specialties,omitempty"`
	Features      []string `json:"features,omitempty"`
	PriceRange    string   `json:"priceRange,omitempty"`
	DeliveryTime  string   `json:"deliveryTime,omitempty"`
	DeliveryTypes []string `json:"deliveryTypes,omitempty"`
	CuisineType   []string `json:"cuisineType,omitempty"`

	// gas stations
	FuelTypes    []string `json:"fuelTypes,omitempty"`
	RegularPrice string   `json:"regularPrice,omitempty"`
	PremiumPrice string   `json:"premiumPrice,omitempty"`
	DieselPrice  string   `json:"dieselPrice,omitempty"`
	LastUpdated  string   `json:"lastUpdated,omitempty"`

	Emergency bool `json:"emergency,omitempty"`
	Express   bool `json:"express,omitempty"`
}
