package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/wardrobe/wardrobe-go/internal/model"
)

var ErrItemNotFound = errors.New("clothing item not found")

// ClothingItemRepository handles clothing item persistence operations.
type ClothingItemRepository struct {
	db *sql.DB
}

// NewClothingItemRepository creates a new ClothingItemRepository.
func NewClothingItemRepository(db *sql.DB) *ClothingItemRepository {
	return &ClothingItemRepository{db: db}
}

// Create inserts a new clothing item, assigning the creation timestamp
// and setting the generated ID on the item struct. A zero UserID is
// stored as NULL (seed items have no owner).
func (r *ClothingItemRepository) Create(ctx context.Context, item *model.ClothingItem) error {
	item.CreatedAt = time.Now().UTC().Truncate(time.Second)

	var owner sql.NullInt64
	if item.UserID != 0 {
		owner = sql.NullInt64{Int64: item.UserID, Valid: true}
	}

	query := `INSERT INTO clothing_items (name, description, image_url, created_at, category_id, user_id)
		VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		item.Name, item.Description, item.ImageURL, item.CreatedAt, item.CategoryID, owner,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	item.ID = id
	return nil
}

// GetByID retrieves a clothing item by its ID.
func (r *ClothingItemRepository) GetByID(ctx context.Context, id int64) (*model.ClothingItem, error) {
	query := `SELECT id, name, description, image_url, created_at, category_id, user_id
		FROM clothing_items WHERE id = ?`

	item := &model.ClothingItem{}
	var description, imageURL sql.NullString
	var owner sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Name, &description, &imageURL,
		&item.CreatedAt, &item.CategoryID, &owner,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	item.Description = description.String
	item.ImageURL = imageURL.String
	item.UserID = owner.Int64
	return item, nil
}

// ListByUser retrieves a user's clothing items with offset pagination,
// most recently created first.
func (r *ClothingItemRepository) ListByUser(ctx context.Context, userID int64, skip, limit int) ([]model.ClothingItem, error) {
	query := `SELECT id, name, description, image_url, created_at, category_id, user_id
		FROM clothing_items WHERE user_id = ?
		ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, userID, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.ClothingItem
	for rows.Next() {
		var item model.ClothingItem
		var description, imageURL sql.NullString
		var owner sql.NullInt64
		if err := rows.Scan(
			&item.ID, &item.Name, &description, &imageURL,
			&item.CreatedAt, &item.CategoryID, &owner,
		); err != nil {
			return nil, err
		}
		item.Description = description.String
		item.ImageURL = imageURL.String
		item.UserID = owner.Int64
		items = append(items, item)
	}

	return items, rows.Err()
}

// Update persists the mutable fields of an item. The WHERE clause is
// scoped to the owner so a row belonging to anyone else never matches,
// even if the caller's ownership check raced with another write.
func (r *ClothingItemRepository) Update(ctx context.Context, item *model.ClothingItem) error {
	query := `UPDATE clothing_items SET name = ?, description = ?, image_url = ?, category_id = ?
		WHERE id = ? AND user_id = ?`

	_, err := r.db.ExecContext(ctx, query,
		item.Name, item.Description, item.ImageURL, item.CategoryID,
		item.ID, item.UserID,
	)
	return err
}
