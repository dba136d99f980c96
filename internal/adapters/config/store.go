// Package config persists the watch rule list as a YAML document.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/normd/normd/internal/core/domain"
	"github.com/normd/normd/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigStore = (*Store)(nil)

// missingFingerprint is the fingerprint recorded when the file does
// not exist.
const missingFingerprint = 0

// Store reads and writes the rule file and remembers a content
// fingerprint of what it last saw on disk.
type Store struct {
	path        string
	fingerprint uint64
}

// NewStore creates a Store over the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the absolute path of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the rule list. A missing file yields an empty list
// without error. Raw path strings are preserved verbatim.
func (s *Store) Load() (domain.RuleSet, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.fingerprint = missingFingerprint
			return domain.RuleSet{}, nil
		}
		return nil, zerr.Wrap(domain.ErrConfigRead, err.Error())
	}
	s.fingerprint = xxhash.Sum64(raw)

	var file File
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(domain.ErrConfigParse, err.Error())
	}

	rules := make(domain.RuleSet, 0, len(file.Paths))
	for i, dto := range file.Paths {
		action, err := parseAction(dto.Action)
		if err != nil {
			return nil, zerr.With(err, "entry", strconv.Itoa(i))
		}
		mode, err := parseMode(dto.Mode)
		if err != nil {
			return nil, zerr.With(err, "entry", strconv.Itoa(i))
		}
		rules = append(rules, domain.NewRule(dto.Path, action, mode))
	}
	return rules, nil
}

// Save writes the rule list, creating parent directories as needed.
// Only the raw path, action, and mode are persisted.
func (s *Store) Save(rules domain.RuleSet) error {
	file := File{Paths: make([]PathDTO, 0, len(rules))}
	for _, r := range rules {
		file.Paths = append(file.Paths, PathDTO{
			Path:   r.Raw,
			Action: r.Action.String(),
			Mode:   r.Mode.String(),
		})
	}

	out, err := yaml.Marshal(&file)
	if err != nil {
		return zerr.Wrap(domain.ErrConfigWrite, err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.Wrap(domain.ErrConfigWrite, err.Error())
	}
	if err := os.WriteFile(s.path, out, domain.FilePerm); err != nil {
		return zerr.Wrap(domain.ErrConfigWrite, err.Error())
	}

	s.fingerprint = xxhash.Sum64(out)
	return nil
}

// ChangedOnDisk reports whether the file content differs from the
// last Load or Save.
func (s *Store) ChangedOnDisk() (bool, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s.fingerprint != missingFingerprint, nil
		}
		return false, zerr.Wrap(domain.ErrConfigRead, err.Error())
	}
	return xxhash.Sum64(raw) != s.fingerprint, nil
}

func parseAction(value string) (domain.Action, error) {
	switch value {
	case domain.ActionWatch.String():
		return domain.ActionWatch, nil
	case domain.ActionIgnore.String():
		return domain.ActionIgnore, nil
	default:
		return 0, zerr.With(zerr.Wrap(domain.ErrInvalidAction, ""), "value", value)
	}
}

func parseMode(value string) (domain.Mode, error) {
	switch value {
	case domain.ModeRecursive.String():
		return domain.ModeRecursive, nil
	case domain.ModeChildren.String():
		return domain.ModeChildren, nil
	default:
		return 0, zerr.With(zerr.Wrap(domain.ErrInvalidMode, ""), "value", value)
	}
}
