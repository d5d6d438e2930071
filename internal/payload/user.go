package payload

// UpdateUserRequest is the body for PUT /api/users/{id}. Absent fields are
// left untouched; a supplied password is re-hashed before storage.
type UpdateUserRequest struct {
	Username   *string `json:"username"   validate:"omitempty,min=3,max=30"`
	Email      *string `json:"email"      validate:"omitempty,email"`
	Password   *string `json:"password"   validate:"omitempty,min=6"`
	FirstName  *string `json:"firstName"  validate:"omitempty,max=50"`
	LastName   *string `json:"lastName"   validate:"omitempty,max=50"`
	ProfilePic *string `json:"profilePic" validate:"omitempty,url"`
}
