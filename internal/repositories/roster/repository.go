// Package roster provides the interface for loading the character roster
package roster

//go:generate mockgen -destination=mock/mock_repository.go -package=rostermock github.com/KirkDiggler/rpg-sheets/internal/repositories/roster Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-sheets/internal/entities/sheet"
)

// Repository defines the interface for roster access
type Repository interface {
	// Get loads and parses the roster at the given path
	// Returns errors.InvalidArgument for an empty path or a malformed roster
	// Returns errors.NotFound if the roster does not exist
	// Returns errors.Internal for read failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}

// GetInput defines the input for loading a roster
type GetInput struct {
	Path string
}

// GetOutput defines the output for loading a roster
type GetOutput struct {
	Characters []*sheet.Character
}
