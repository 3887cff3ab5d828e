// Package catalog provides the interfaces for loading and storing item catalogs
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/rpg-sheets/internal/repositories/catalog Repository,Writer

import (
	"context"

	"github.com/KirkDiggler/rpg-sheets/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheets/internal/entities/tree"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/services/normalizer"
)

// Repository defines the interface for reading catalogs
type Repository interface {
	// Get loads the catalog of one category
	// Returns errors.InvalidArgument for an unknown category or malformed content
	// Returns errors.NotFound if the catalog does not exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}

// Writer defines the interface for replacing catalogs
type Writer interface {
	// Put replaces the whole catalog of one category
	// Returns errors.InvalidArgument for an unknown category
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
}

// GetInput defines the input for loading a catalog
type GetInput struct {
	Category sheet.Category
}

// GetOutput defines the output for loading a catalog
type GetOutput struct {
	Catalog sheet.Catalog
}

// PutInput defines the input for storing a catalog
type PutInput struct {
	Category sheet.Category
	Catalog  sheet.Catalog
}

// PutOutput defines the output for storing a catalog
type PutOutput struct {
	Entries int
}

func validateCategory(category sheet.Category) error {
	if _, ok := sheet.ParseCategory(string(category)); !ok {
		return errors.InvalidArgumentf("unknown catalog category %q", category)
	}
	return nil
}

// FromTree builds a catalog from a decoded file. The tree is normalized, then
// unwrapped from the category's top key when that key holds a mapping. An
// empty document is an empty catalog; any other non-mapping is rejected.
func FromTree(category sheet.Category, root tree.Node) (sheet.Catalog, error) {
	if root == nil {
		return sheet.NewCatalog(tree.NewMap()), nil
	}

	normalized := normalizer.Normalize(root)
	entries, ok := tree.AsMap(normalized)
	if !ok {
		return sheet.Catalog{}, errors.InvalidArgumentf("catalog %s must be a mapping of item names", category)
	}

	if key := category.TopKey(); key != "" {
		if nested := entries.GetMap(key); nested != nil {
			entries = nested
		}
	}

	return sheet.NewCatalog(entries), nil
}
