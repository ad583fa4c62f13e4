package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const filePerms = 0600

// FileStore persists the token in a dotenv-style file so it outlives a
// single navctl invocation. The file is re-read on every call; concurrent
// processes may see each other's writes late, which is accepted.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (f *FileStore) read() (map[string]string, error) {
	values, err := godotenv.Read(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session file: %w", err)
	}
	return values, nil
}

func (f *FileStore) write(values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0700); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}
	if err := godotenv.Write(values, f.Path); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	if err := os.Chmod(f.Path, filePerms); err != nil {
		return fmt.Errorf("restricting session file: %w", err)
	}
	return nil
}

func (f *FileStore) SetToken(token string) error {
	values, err := f.read()
	if err != nil {
		return err
	}
	values[TokenKey] = token
	return f.write(values)
}

// Token treats an unreadable file as "no token".
func (f *FileStore) Token() (string, bool) {
	values, err := f.read()
	if err != nil {
		return "", false
	}
	tok := values[TokenKey]
	return tok, tok != ""
}

func (f *FileStore) Clear() error {
	values, err := f.read()
	if err != nil {
		return err
	}
	if _, ok := values[TokenKey]; !ok {
		return nil
	}
	delete(values, TokenKey)
	return f.write(values)
}
