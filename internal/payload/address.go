package payload

// CreateAddressRequest is the body for POST /api/addresses.
type CreateAddressRequest struct {
	UserID    string `json:"userId"    validate:"required"`
	Street    string `json:"street"    validate:"required"`
	City      string `json:"city"      validate:"required"`
	State     string `json:"state"     validate:"required"`
	ZipCode   string `json:"zipCode"   validate:"required"`
	Country   string `json:"country"   validate:"required"`
	IsPrimary bool   `json:"isPrimary"`
}

// UpdateAddressRequest is the body for PUT /api/addresses/{id}.
type UpdateAddressRequest struct {
	Street    *string `json:"street"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	ZipCode   *string `json:"zipCode"`
	Country   *string `json:"country"`
	IsPrimary *bool   `json:"isPrimary"`
}
