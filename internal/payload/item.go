package payload

// CreateItemRequest is the body for POST /api/item.
type CreateItemRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"    validate:"required,gt=0"`
	CategoryID  string `json:"categoryId"  validate:"required"`
}

// UpdateItemRequest is the body for PUT /api/item/{id}.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Quantity    *int    `json:"quantity"   validate:"omitempty,gt=0"`
	CategoryID  *string `json:"categoryId"`
}
