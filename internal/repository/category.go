package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/wardrobe/wardrobe-go/internal/model"
)

var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository handles clothing category persistence operations.
type CategoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create inserts a new category and sets the generated ID.
func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	query := `INSERT INTO clothing_categories (name) VALUES (?)`

	result, err := r.db.ExecContext(ctx, query, category.Name)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	category.ID = id
	return nil
}

// GetByID retrieves a category by its ID.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	query := `SELECT id, name FROM clothing_categories WHERE id = ?`

	category := &model.Category{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	return category, nil
}

// GetByName retrieves a category by its unique name.
func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*model.Category, error) {
	query := `SELECT id, name FROM clothing_categories WHERE name = ?`

	category := &model.Category{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	return category, nil
}

// GetOrCreate looks a category up by name, creating it when absent.
// Used by the seed import.
func (r *CategoryRepository) GetOrCreate(ctx context.Context, name string) (*model.Category, error) {
	category, err := r.GetByName(ctx, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, ErrCategoryNotFound) {
		return nil, err
	}

	category = &model.Category{Name: name}
	if err := r.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// List retrieves categories with offset pagination.
func (r *CategoryRepository) List(ctx context.Context, skip, limit int) ([]model.Category, error) {
	query := `SELECT id, name FROM clothing_categories ORDER BY id LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// Count returns the number of stored categories.
func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clothing_categories`).Scan(&n)
	return n, err
}
