package model

import "time"

// Category represents a clothing category in the database.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ClothingItem represents a clothing item in the database.
type ClothingItem struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	CategoryID  int64     `json:"category_id"`
	UserID      int64     `json:"user_id"`
}

// CreateClothingItemRequest represents an item creation request. The
// user_id field is accepted for wire compatibility but the owner is
// always the authenticated caller.
type CreateClothingItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	CategoryID  int64  `json:"category_id"`
	UserID      int64  `json:"user_id"`
}

// ClothingItemUpdate represents a partial update. A nil field leaves
// the stored value unchanged.
type ClothingItemUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	CategoryID  *int64  `json:"category_id"`
}
