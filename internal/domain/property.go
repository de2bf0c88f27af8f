package domain

type Property struct {
	ID            string   `json:"id"`
	HostID        string   `json:"hostId"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	PricePerNight float64  `json:"pricePerNight"`
	BedroomCount  int      `json:"bedroomCount"`
	BathRoomCount int      `json:"bathRoomCount"`
	MaxGuestCount int      `json:"maxGuestCount"`
	Rating        int      `json:"rating"`
	AmenityIDs    []string `json:"amenityIds"`
}

type PropertyInput struct {
	HostID        string   `json:"hostId" validate:"required"`
	Title         string   `json:"title" validate:"required,max=255"`
	Description   string   `json:"description" validate:"required"`
	Location      string   `json:"location" validate:"required,max=255"`
	PricePerNight float64  `json:"pricePerNight" validate:"gte=0"`
	BedroomCount  int      `json:"bedroomCount" validate:"gte=0"`
	BathRoomCount int      `json:"bathRoomCount" validate:"gte=0"`
	MaxGuestCount int      `json:"maxGuestCount" validate:"gte=1"`
	Rating        int      `json:"rating" validate:"gte=0,lte=5"`
	AmenityIDs    []string `json:"amenityIds" validate:"dive,required"`
}

type PropertyFilter struct {
	Location      string
	PricePerNight *float64
	Amenity       string // amenity name
}
