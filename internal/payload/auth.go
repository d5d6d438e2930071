package payload

// RegisterRequest is the body for POST /api/users.
type RegisterRequest struct {
	Username  string `json:"username"  validate:"required,min=3,max=30"`
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"omitempty,max=50"`
	LastName  string `json:"lastName"  validate:"omitempty,max=50"`
}

// LoginRequest is the body for POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued bearer token together with a trimmed view
// of the account.
type LoginResponse struct {
	Message    string    `json:"message"`
	StatusCode int       `json:"statusCode"`
	Token      string    `json:"token"`
	User       LoginUser `json:"user"`
}

// LoginUser is the account summary embedded in a login response.
type LoginUser struct {
	ID        string `json:"id"`
	Username  string `json:"userName"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// ForgotPasswordRequest is the body for POST /api/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest is the body for POST /api/reset-password/{token}.
type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}
