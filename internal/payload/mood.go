package payload

// CreateMoodCategoryRequest is the body for POST /api/XMCategory.
type CreateMoodCategoryRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
	CreatorName string `json:"creatorName"`
}

// UpdateMoodCategoryRequest is the body for PUT /api/XMCategory/{id}.
type UpdateMoodCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CreatorName *string `json:"creatorName"`
}

// CreateMoodPhotoRequest is the body for POST /api/XMItem.
type CreateMoodPhotoRequest struct {
	URI        string `json:"uri"        validate:"required"`
	Shape      string `json:"shape"      validate:"required,oneof=square vertical landscape"`
	Type       string `json:"type"       validate:"required,oneof=image video"`
	CategoryID string `json:"categoryId" validate:"required"`
	Category   string `json:"category"   validate:"required"`
}

// UpdateMoodPhotoRequest is the body for PUT /api/XMItem/{id}.
type UpdateMoodPhotoRequest struct {
	URI        *string `json:"uri"`
	Shape      *string `json:"shape"      validate:"omitempty,oneof=square vertical landscape"`
	Type       *string `json:"type"       validate:"omitempty,oneof=image video"`
	CategoryID *string `json:"categoryId"`
	Category   *string `json:"category"`
}

// CreateMoodStoryRequest is the body for POST /api/XMStory.
type CreateMoodStoryRequest struct {
	Title    string `json:"title"    validate:"required"`
	Content  string `json:"content"  validate:"required"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
}

// UpdateMoodStoryRequest is the body for PUT /api/XMStory/{id}.
type UpdateMoodStoryRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Summary  *string `json:"summary"`
	Category *string `json:"category"`
}

// CreateMoodOnboardRequest is the body for POST /api/XMOnboard.
type CreateMoodOnboardRequest struct {
	Title    string `json:"title"    validate:"required"`
	SubTitle string `json:"sub_title"`
	ImageURL string `json:"image"    validate:"required"`
}

// CreateMoodReelRequest is the body for POST /api/XMReel.
type CreateMoodReelRequest struct {
	URL string `json:"url" validate:"required"`
}

// RegisterMoodUserRequest is the body for POST /api/XMUser.
type RegisterMoodUserRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// SwitchServiceRequest is the body for POST /api/XMSwitchService.
type SwitchServiceRequest struct {
	Number *int `json:"number" validate:"required"`
}
