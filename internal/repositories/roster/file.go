package roster

import (
	"context"
	stderrors "errors"
	"io/fs"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/KirkDiggler/rpg-sheets/internal/entities/tree"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/services/normalizer"
)

type fileRepository struct {
	fs afero.Fs
}

// FileConfig contains configuration for the file-backed roster repository
type FileConfig struct {
	Fs afero.Fs
}

// Validate validates the FileConfig
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Fs == nil {
		return errors.InvalidArgument("fs cannot be nil")
	}
	return nil
}

// NewFile creates a roster repository reading YAML files from fs
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &fileRepository{fs: cfg.Fs}, nil
}

func (r *fileRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Path == "" {
		return nil, errors.InvalidArgument("roster path cannot be empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "roster load canceled")
	}

	data, err := afero.ReadFile(r.fs, input.Path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundf("roster %s not found", input.Path).WithMeta("path", input.Path)
		}
		return nil, errors.Wrapf(err, "failed to read roster %s", input.Path)
	}

	root, err := tree.Decode(data)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to decode roster %s", input.Path).
			WithMeta("path", input.Path)
	}

	characters, err := normalizer.ParseRoster(root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse roster %s", input.Path)
	}

	slog.Debug("Roster loaded", "path", input.Path, "characters", len(characters))

	return &GetOutput{Characters: characters}, nil
}
