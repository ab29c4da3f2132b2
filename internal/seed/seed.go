// Package seed populates a fresh database with the default clothing
// categories and, optionally, items from a JSON seed file.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/wardrobe/wardrobe-go/internal/model"
)

// DefaultCategories are created on first boot when the categories
// table is empty.
var DefaultCategories = []string{"nice to have", "wishlist", "bought"}

// CategoryStore is the category persistence the seeder needs.
type CategoryStore interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, category *model.Category) error
	GetOrCreate(ctx context.Context, name string) (*model.Category, error)
}

// ItemStore is the item persistence the seeder needs.
type ItemStore interface {
	Create(ctx context.Context, item *model.ClothingItem) error
}

// itemRecord is one entry of the JSON seed file.
type itemRecord struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
}

// EnsureDefaultCategories inserts the default categories when none
// exist yet.
func EnsureDefaultCategories(ctx context.Context, categories CategoryStore) error {
	n, err := categories.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting categories: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, name := range DefaultCategories {
		if err := categories.Create(ctx, &model.Category{Name: name}); err != nil {
			return fmt.Errorf("creating category %q: %w", name, err)
		}
	}

	slog.Info("seeded default categories", "count", len(DefaultCategories))
	return nil
}

// ImportFile loads clothing items from a JSON seed file. Categories
// are looked up or created by name. Seeded items have no owner.
func ImportFile(ctx context.Context, path string, categories CategoryStore, items ItemStore) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading seed file: %w", err)
	}

	var records []itemRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parsing seed file: %w", err)
	}

	for _, rec := range records {
		category, err := categories.GetOrCreate(ctx, rec.Category)
		if err != nil {
			return fmt.Errorf("resolving category %q: %w", rec.Category, err)
		}

		item := &model.ClothingItem{
			Name:        rec.Name,
			Description: rec.Description,
			ImageURL:    rec.ImageURL,
			CategoryID:  category.ID,
		}
		if err := items.Create(ctx, item); err != nil {
			return fmt.Errorf("creating item %q: %w", rec.Name, err)
		}
	}

	slog.Info("imported seed items", "count", len(records), "file", path)
	return nil
}
