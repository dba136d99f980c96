package ports

import (
	"context"

	"github.com/normd/normd/internal/core/domain"
)

//go:generate mockgen -source=normalizer.go -destination=mocks/mock_normalizer.go -package=mocks

// Normalizer renames single file system entries to a Unicode
// normalization form.
type Normalizer interface {
	// NormalizeEntry renames the entry at path so its basename is in
	// the given form. The byte-accurate current name is read from the
	// file system first; path itself is only a locator. An entry that
	// vanished before the rename is not an error.
	NormalizeEntry(ctx context.Context, path string, form domain.Form) error
}

// Converter applies a normalization form to entries on demand.
type Converter interface {
	// ConvertEntry normalizes the basename of the entry at path.
	ConvertEntry(ctx context.Context, path string, form domain.Form) error

	// ConvertChildren normalizes the direct children of the directory
	// at path, leaving the directory's own name untouched.
	ConvertChildren(ctx context.Context, path string, form domain.Form) error

	// ConvertTree normalizes every entry below path, renaming parents
	// before descending so child paths stay valid. The root's own name
	// is left untouched.
	ConvertTree(ctx context.Context, path string, form domain.Form) error
}
