package ports

import (
	"github.com/normd/normd/internal/core/domain"
)

//go:generate mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks

// ConfigStore persists the rule list.
type ConfigStore interface {
	// Load reads the rule list from disk. A missing file yields an
	// empty list without error.
	Load() (domain.RuleSet, error)

	// Save writes the rule list to disk, creating parent directories
	// as needed.
	Save(rules domain.RuleSet) error

	// ChangedOnDisk reports whether the file content differs from the
	// last Load or Save.
	ChangedOnDisk() (bool, error)

	// Path returns the absolute path of the backing file.
	Path() string
}
