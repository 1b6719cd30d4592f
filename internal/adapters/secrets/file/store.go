package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mcarrasqub/itimer/internal/domain"
	"github.com/mcarrasqub/itimer/internal/ports"
	"github.com/pelletier/go-toml/v2"
)

const (
	storeDirMode   = 0o700
	secretFileMode = 0o600
	documentName   = "secrets.toml"
)

type document struct {
	Secrets map[string]string `toml:"secrets"`
}

// Store keeps every secret in one TOML document under root. Writes replace
// the document atomically.
type Store struct {
	path string
	mu   sync.RWMutex
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{path: filepath.Join(filepath.Clean(root), documentName)}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key, err := normalizeKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.Secrets[key] = value

	if err := s.save(doc); err != nil {
		return fmt.Errorf("write file secret %q: %w", key, err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key, err := normalizeKey(key)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return "", err
	}

	value, ok := doc.Secrets[key]
	if !ok {
		return "", fmt.Errorf("file secret %q: %w", key, domain.ErrSecretNotFound)
	}
	return value, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key, err := normalizeKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := doc.Secrets[key]; !ok {
		return nil
	}
	delete(doc.Secrets, key)

	if err := s.save(doc); err != nil {
		return fmt.Errorf("delete file secret %q: %w", key, err)
	}
	return nil
}

func (s *Store) load() (document, error) {
	doc := document{Secrets: map[string]string{}}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return doc, nil
		}
		return document{}, fmt.Errorf("read secret file: %w", err)
	}

	if err := toml.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("decode secret file: %w", err)
	}
	if doc.Secrets == nil {
		doc.Secrets = map[string]string{}
	}
	return doc, nil
}

func (s *Store) save(doc document) error {
	if err := os.MkdirAll(filepath.Dir(s.path), storeDirMode); err != nil {
		return fmt.Errorf("create secret directory: %w", err)
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode secret file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), documentName+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp secret file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if err := tmp.Chmod(secretFileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp secret file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp secret file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp secret file: %w", err)
	}

	return os.Rename(tmpPath, s.path)
}

func normalizeKey(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", errors.New("secret key is empty")
	}
	return trimmed, nil
}
