package service

import (
	"context"
	"sort"
	"time"

	"github.com/wardrobe/wardrobe-go/internal/model"
	"github.com/wardrobe/wardrobe-go/internal/repository"
)

// In-memory stores standing in for the MySQL repositories. They return
// the repository sentinel errors so the services' error mapping is
// exercised for real.

type memUserStore struct {
	nextID int64
	users  map[string]*model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*model.User)}
}

func (s *memUserStore) Create(_ context.Context, user *model.User) error {
	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repository.ErrDuplicateUser
		}
	}
	s.nextID++
	user.ID = s.nextID
	clone := *user
	s.users[user.Username] = &clone
	return nil
}

func (s *memUserStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

type memItemStore struct {
	nextID int64
	now    time.Time
	items  map[int64]*model.ClothingItem
}

func newMemItemStore() *memItemStore {
	return &memItemStore{
		now:   time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		items: make(map[int64]*model.ClothingItem),
	}
}

func (s *memItemStore) Create(_ context.Context, item *model.ClothingItem) error {
	s.nextID++
	s.now = s.now.Add(time.Second)
	item.ID = s.nextID
	item.CreatedAt = s.now
	clone := *item
	s.items[item.ID] = &clone
	return nil
}

func (s *memItemStore) GetByID(_ context.Context, id int64) (*model.ClothingItem, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, repository.ErrItemNotFound
	}
	clone := *item
	return &clone, nil
}

func (s *memItemStore) ListByUser(_ context.Context, userID int64, skip, limit int) ([]model.ClothingItem, error) {
	var items []model.ClothingItem
	for _, item := range s.items {
		if item.UserID == userID {
			items = append(items, *item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
	if skip >= len(items) {
		return nil, nil
	}
	items = items[skip:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

func (s *memItemStore) Update(_ context.Context, item *model.ClothingItem) error {
	stored, ok := s.items[item.ID]
	if !ok || stored.UserID != item.UserID {
		return nil
	}
	clone := *item
	clone.CreatedAt = stored.CreatedAt
	s.items[item.ID] = &clone
	return nil
}

type memCategoryStore struct {
	categories []model.Category
}

func newMemCategoryStore(names ...string) *memCategoryStore {
	s := &memCategoryStore{}
	for i, name := range names {
		s.categories = append(s.categories, model.Category{ID: int64(i + 1), Name: name})
	}
	return s
}

func (s *memCategoryStore) GetByID(_ context.Context, id int64) (*model.Category, error) {
	for _, c := range s.categories {
		if c.ID == id {
			clone := c
			return &clone, nil
		}
	}
	return nil, repository.ErrCategoryNotFound
}

func (s *memCategoryStore) List(_ context.Context, skip, limit int) ([]model.Category, error) {
	if skip >= len(s.categories) {
		return nil, nil
	}
	categories := s.categories[skip:]
	if limit < len(categories) {
		categories = categories[:limit]
	}
	return append([]model.Category(nil), categories...), nil
}
