package service

import (
	"context"
	"errors"

	"github.com/wardrobe/wardrobe-go/internal/model"
	"github.com/wardrobe/wardrobe-go/internal/repository"
)

var (
	ErrItemNotFound     = errors.New("clothing item not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrNotOwner         = errors.New("not the owner of this item")
	ErrNameRequired     = errors.New("name is required")
	ErrCategoryRequired = errors.New("category_id is required")
)

// ClothingItemStore is the subset of item persistence the clothing
// service needs.
type ClothingItemStore interface {
	Create(ctx context.Context, item *model.ClothingItem) error
	GetByID(ctx context.Context, id int64) (*model.ClothingItem, error)
	ListByUser(ctx context.Context, userID int64, skip, limit int) ([]model.ClothingItem, error)
	Update(ctx context.Context, item *model.ClothingItem) error
}

// CategoryStore is the subset of category persistence the clothing
// service needs.
type CategoryStore interface {
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	List(ctx context.Context, skip, limit int) ([]model.Category, error)
}

// ClothingService handles clothing item and category operations.
type ClothingService struct {
	items      ClothingItemStore
	categories CategoryStore
}

// NewClothingService creates a new ClothingService.
func NewClothingService(items ClothingItemStore, categories CategoryStore) *ClothingService {
	return &ClothingService{items: items, categories: categories}
}

// ListItems returns the caller's items, most recently created first.
func (s *ClothingService) ListItems(ctx context.Context, userID int64, skip, limit int) ([]model.ClothingItem, error) {
	return s.items.ListByUser(ctx, userID, skip, limit)
}

// GetItem returns a single item by ID.
func (s *ClothingService) GetItem(ctx context.Context, id int64) (*model.ClothingItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// CreateItem creates a clothing item owned by the authenticated
// caller. Any user_id supplied in the request body is ignored.
func (s *ClothingService) CreateItem(ctx context.Context, userID int64, req model.CreateClothingItemRequest) (*model.ClothingItem, error) {
	if req.Name == "" {
		return nil, ErrNameRequired
	}
	if req.CategoryID == 0 {
		return nil, ErrCategoryRequired
	}

	if _, err := s.categories.GetByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	item := &model.ClothingItem{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		UserID:      userID,
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateItem applies a partial update to an item the caller owns. Nil
// fields leave the stored values unchanged. Ownership is checked
// before anything is written.
func (s *ClothingService) UpdateItem(ctx context.Context, userID, itemID int64, update model.ClothingItemUpdate) (*model.ClothingItem, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if item.UserID != userID {
		return nil, ErrNotOwner
	}

	if update.Name != nil {
		item.Name = *update.Name
	}
	if update.Description != nil {
		item.Description = *update.Description
	}
	if update.ImageURL != nil {
		item.ImageURL = *update.ImageURL
	}
	if update.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *update.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		item.CategoryID = *update.CategoryID
	}

	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// ListCategories returns categories with offset pagination.
func (s *ClothingService) ListCategories(ctx context.Context, skip, limit int) ([]model.Category, error) {
	return s.categories.List(ctx, skip, limit)
}
