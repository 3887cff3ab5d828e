package catalog

import (
	"context"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/KirkDiggler/rpg-sheets/internal/entities/tree"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
)

type fileRepository struct {
	fs  afero.Fs
	dir string
}

// FileConfig contains configuration for the file-backed catalog repository
type FileConfig struct {
	Fs  afero.Fs
	Dir string
}

// Validate validates the FileConfig
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Fs == nil {
		vb.RequiredField("Fs")
	}
	if cfg.Dir == "" {
		vb.RequiredField("Dir")
	}
	return vb.Build()
}

// NewFile creates a catalog repository reading <dir>/<category>.yaml
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &fileRepository{
		fs:  cfg.Fs,
		dir: cfg.Dir,
	}, nil
}

func (r *fileRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateCategory(input.Category); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "catalog load canceled")
	}

	path := filepath.Join(r.dir, input.Category.FileName())
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundf("catalog %s not found", path).
				WithMeta("category", string(input.Category))
		}
		return nil, errors.Wrapf(err, "failed to read catalog %s", path)
	}

	root, err := tree.Decode(data)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to decode catalog %s", path).
			WithMeta("category", string(input.Category))
	}

	catalog, err := FromTree(input.Category, root)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid catalog %s", path)
	}

	slog.Debug("Catalog loaded", "category", input.Category, "path", path, "entries", catalog.Len())

	return &GetOutput{Catalog: catalog}, nil
}
