package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// The mood content app is a self-contained set of collections served by the
// same process. Entities here never reference the ordering entities.

// MoodCategory groups mood photos. Name is unique.
type MoodCategory struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string        `bson:"name"          json:"name"`
	Description string        `bson:"description"   json:"description,omitempty"`
	CreatorName string        `bson:"creator_name"  json:"creatorName"`
	CreatedAt   time.Time     `bson:"created_at"    json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updated_at"    json:"updatedAt"`
}

// MediaShape is the display shape of a mood photo.
type MediaShape string

const (
	ShapeSquare    MediaShape = "square"
	ShapeVertical  MediaShape = "vertical"
	ShapeLandscape MediaShape = "landscape"
)

// MediaType distinguishes images from videos.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// MoodPhoto is an image or video entry. Category holds the denormalized
// category name for cheap filtering alongside the CategoryID reference.
type MoodPhoto struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	URI        string        `bson:"uri"           json:"uri"`
	Shape      MediaShape    `bson:"shape"         json:"shape"`
	Type       MediaType     `bson:"type"          json:"type"`
	CategoryID bson.ObjectID `bson:"category_id"   json:"categoryId"`
	Category   string        `bson:"category"      json:"category"`
	CreatedAt  time.Time     `bson:"created_at"    json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updated_at"    json:"updatedAt"`
}

// MoodStory is a text content entry.
type MoodStory struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string        `bson:"title"         json:"title"`
	Content   string        `bson:"content"       json:"content"`
	Summary   string        `bson:"summary"       json:"summary"`
	Category  string        `bson:"category"      json:"category"`
	CreatedAt time.Time     `bson:"created_at"    json:"createdAt"`
	UpdatedAt time.Time     `bson:"updated_at"    json:"updatedAt"`
}

// MoodOnboard is an onboarding slide.
type MoodOnboard struct {
	ID       bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string        `bson:"title"         json:"title"`
	SubTitle string        `bson:"sub_title"     json:"sub_title"`
	ImageURL string        `bson:"image_url"     json:"image"`
}

// MoodReel is a short video entry.
type MoodReel struct {
	ID  bson.ObjectID `bson:"_id,omitempty" json:"id"`
	URL string        `bson:"url"           json:"url"`
}

// MoodUser is a lightweight registration record counting repeat sign-ups.
type MoodUser struct {
	ID                bson.ObjectID `bson:"_id,omitempty"      json:"id"`
	Name              string        `bson:"name"               json:"name"`
	Email             string        `bson:"email"              json:"email"`
	RegistrationCount int           `bson:"registration_count" json:"registrationCount"`
}

// AppOpen tracks how often the app was opened per device class, with a
// per-user-agent visit breakdown.
type AppOpen struct {
	ID           bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	DeviceInfo   string         `bson:"device_info"   json:"deviceInfo"`
	DeviceVisits map[string]int `bson:"device_visits" json:"deviceVisits"`
	TotalOpens   int            `bson:"total_opens"   json:"totalOpens"`
}

// ServiceStatus is a single-document numeric switch toggling the mood service.
type ServiceStatus struct {
	ID     bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Number int           `bson:"number"        json:"number"`
}
