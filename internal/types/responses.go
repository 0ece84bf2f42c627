package types

import "time"

// Response is the envelope every endpoint answers with.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	CreatedAt time.Time `json:"createdAt"`
}

type FrameworkResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	AssetURL  string    `json:"assetUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProjectResponse struct {
	ID          uint                `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Link        string              `json:"link"`
	AssetURL    string              `json:"assetUrl"`
	CreatedAt   time.Time           `json:"createdAt"`
	Frameworks  []FrameworkResponse `json:"frameworks"`
}

type MessageResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
