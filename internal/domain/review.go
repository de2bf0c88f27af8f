package domain

type Review struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	PropertyID string `json:"propertyId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

type ReviewInput struct {
	UserID     string `json:"userId" validate:"required"`
	PropertyID string `json:"propertyId" validate:"required"`
	Rating     int    `json:"rating" validate:"gte=1,lte=5"`
	Comment    string `json:"comment"`
}

type ReviewFilter struct {
	UserID     string
	PropertyID string
}
