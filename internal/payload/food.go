package payload

// CoordinateRequest is a geographic point attached to a food item.
type CoordinateRequest struct {
	Latitude  float64 `json:"latitude"  validate:"required"`
	Longitude float64 `json:"longitude" validate:"required"`
}

// CreateFoodRequest is the body for POST /api/food.
type CreateFoodRequest struct {
	Name        string              `json:"name"        validate:"required"`
	Description string              `json:"description"`
	Price       float64             `json:"price"       validate:"required,gt=0"`
	Image       string              `json:"image"       validate:"required"`
	Category    string              `json:"category"    validate:"required,oneof=vegetarian non-vegetarian vegan dessert"`
	CategoryID  string              `json:"categoryId"  validate:"required"`
	Ingredients []string            `json:"ingredients" validate:"required,min=1"`
	IsAvailable *bool               `json:"isAvailable"`
	Rating      float64             `json:"rating"      validate:"required,gte=1,lte=5"`
	Servings    int                 `json:"servings"    validate:"required,gt=0"`
	Coords      []CoordinateRequest `json:"coords"      validate:"omitempty,dive"`
}

// UpdateFoodRequest is the body for PUT /api/food/{id}. Absent fields are
// left untouched.
type UpdateFoodRequest struct {
	Name        *string             `json:"name"`
	Description *string             `json:"description"`
	Price       *float64            `json:"price"       validate:"omitempty,gt=0"`
	Image       *string             `json:"image"`
	Category    *string             `json:"category"    validate:"omitempty,oneof=vegetarian non-vegetarian vegan dessert"`
	Ingredients []string            `json:"ingredients" validate:"omitempty,min=1"`
	IsAvailable *bool               `json:"isAvailable"`
	Rating      *float64            `json:"rating"      validate:"omitempty,gte=1,lte=5"`
	Servings    *int                `json:"servings"    validate:"omitempty,gt=0"`
	Coords      []CoordinateRequest `json:"coords"      validate:"omitempty,dive"`
}
