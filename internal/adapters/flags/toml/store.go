// Package toml persists named flags to a TOML file. It stands in for the
// host's flag storage: per-entity identity fields and per-user session state
// both land here.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/termdeck/termdeck/internal/domain"
	"github.com/termdeck/termdeck/internal/ports"
)

const (
	flagsPathKey    = "flags.path"
	flagsFileMode   = 0o600
	flagsDirMode    = 0o700
	flagsConfigDir  = ".termdeck"
	flagsConfigFile = "flags.toml"
	tempFilePattern = ".flags-*.toml.tmp"
)

type Store struct {
	flagsPath string
	mu        *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.FlagStore = (*Store)(nil)

func NewStore(cfg *viper.Viper) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetDefault(flagsPathKey, filepath.Join(homeDir, flagsConfigDir, flagsConfigFile))

	flagsPath := cfg.GetString(flagsPathKey)
	if flagsPath == "" {
		return nil, errors.New("flags path is empty")
	}
	flagsPath, err = normalizeFlagsPath(flagsPath)
	if err != nil {
		return nil, err
	}

	return &Store{flagsPath: flagsPath, mu: lockForPath(flagsPath)}, nil
}

func (s *Store) EntityFlag(ctx context.Context, id domain.EntityID, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.readSchema()
	if err != nil {
		return "", err
	}

	return lookupFlag(file.Entities, string(id), key), nil
}

func (s *Store) SetEntityFlag(ctx context.Context, id domain.EntityID, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readSchema()
	if err != nil {
		return err
	}

	file.Entities = upsertFlag(file.Entities, string(id), key, value)
	return s.writeSchema(file)
}

func (s *Store) UserFlag(ctx context.Context, userID, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.readSchema()
	if err != nil {
		return "", err
	}

	return lookupFlag(file.Users, userID, key), nil
}

func (s *Store) SetUserFlag(ctx context.Context, userID, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readSchema()
	if err != nil {
		return err
	}

	file.Users = upsertFlag(file.Users, userID, key, value)
	return s.writeSchema(file)
}

// Path reports where flags are persisted, so the file watcher can observe
// external edits.
func (s *Store) Path() string {
	return s.flagsPath
}

func (s *Store) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(s.flagsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read flags file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode flags file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (s *Store) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(s.flagsPath), flagsDirMode); err != nil {
		return fmt.Errorf("create flags directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode flags file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.flagsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp flags file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp flags file: %w", err)
	}

	if err := tempFile.Chmod(flagsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp flags file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp flags file: %w", err)
	}

	if err := os.Rename(tempName, s.flagsPath); err != nil {
		return fmt.Errorf("replace flags file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(s.flagsPath, flagsFileMode); err != nil {
		return fmt.Errorf("chmod flags file: %w", err)
	}

	return nil
}

func normalizeFlagsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve flags path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
