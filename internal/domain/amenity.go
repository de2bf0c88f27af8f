package domain

type Amenity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AmenityInput struct {
	Name string `json:"name" validate:"required,max=255"`
}

type AmenityFilter struct {
	Name string
}
