package persistence

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-canvas/core"
)

const fileExt = ".toml"

// ErrBadName is returned for save names that are empty or leave the save directory
var ErrBadName = errors.New("invalid save name")

// Manager stores container snapshots as TOML files in one directory
type Manager struct {
	basePath string
}

// NewManager creates a manager rooted at basePath; the directory is created on first save
func NewManager(basePath string) *Manager {
	return &Manager{basePath: basePath}
}

func (m *Manager) BasePath() string { return m.basePath }

// FilePath returns the file for a save name; a trailing .toml in name is accepted
func (m *Manager) FilePath(name string) (string, error) {
	name = strings.TrimSuffix(strings.TrimSpace(name), fileExt)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrBadName, name)
	}
	return filepath.Join(m.basePath, name+fileExt), nil
}

// Exists reports whether a snapshot is stored under name
func (m *Manager) Exists(name string) bool {
	path, err := m.FilePath(name)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// List returns the stored save names in directory order
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.basePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), fileExt) {
			names = append(names, strings.TrimSuffix(e.Name(), fileExt))
		}
	}
	return names, nil
}

// Save writes dto under name through a temp file and rename
func (m *Manager) Save(name string, dto ContainerDTO) error {
	path, err := m.FilePath(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(m.basePath, 0o755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(dto); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(m.basePath, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// Load reads the snapshot stored under name
// A missing file wraps core.ErrNotFound; undecodable or invalid content wraps core.ErrCorrupt
func (m *Manager) Load(name string) (ContainerDTO, error) {
	var dto ContainerDTO

	path, err := m.FilePath(name)
	if err != nil {
		return dto, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return dto, fmt.Errorf("load %s: %w", name, core.ErrNotFound)
	}
	if err != nil {
		return dto, err
	}

	if _, err := toml.Decode(string(data), &dto); err != nil {
		return dto, fmt.Errorf("decode %s: %w: %w", name, err, core.ErrCorrupt)
	}
	if err := dto.Validate(); err != nil {
		return dto, fmt.Errorf("load %s: %w", name, err)
	}
	return dto, nil
}
