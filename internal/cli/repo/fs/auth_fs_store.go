package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"Diarium/internal/cli/repo"
)

var _ repo.TokenStore = AuthFSStore{}

// AuthFSStore — файловое хранилище токена и имени пользователя для CLI.
// Path — файл токена; пустой означает <UserConfigDir>/Diarium/token.
// Имя пользователя лежит рядом, в файле "<Path>.user".
type AuthFSStore struct {
	Path string
}

func (s AuthFSStore) tokenPath() (string, error) {
	if s.Path != "" {
		return s.Path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "Diarium", "token"), nil
}

func (s AuthFSStore) loginPath() (string, error) {
	p, err := s.tokenPath()
	if err != nil {
		return "", err
	}
	return p + ".user", nil
}

func writeFile(p, value string) error {
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return err
	}
	return os.WriteFile(p, []byte(value), 0o600)
}

// readTrimmed читает файл и обрезает завершающие переводы строки и пробелы.
func readTrimmed(p, what string) (string, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	v := strings.TrimRight(string(b), " \t\r\n")
	if v == "" {
		return "", errors.New("empty " + what + " file")
	}
	return v, nil
}

// Save сохраняет auth-токен в файл.
func (s AuthFSStore) Save(token string) error {
	p, err := s.tokenPath()
	if err != nil {
		return err
	}
	return writeFile(p, strings.TrimSpace(token))
}

// Load читает auth-токен из файла.
func (s AuthFSStore) Load() (string, error) {
	p, err := s.tokenPath()
	if err != nil {
		return "", err
	}
	return readTrimmed(p, "token")
}

// SaveLogin сохраняет имя пользователя, которому выдан токен.
func (s AuthFSStore) SaveLogin(username string) error {
	if username == "" {
		return errors.New("empty login")
	}
	p, err := s.loginPath()
	if err != nil {
		return err
	}
	return writeFile(p, username)
}

// LoadLogin читает имя пользователя из файла.
func (s AuthFSStore) LoadLogin() (string, error) {
	p, err := s.loginPath()
	if err != nil {
		return "", err
	}
	return readTrimmed(p, "login")
}

// Clear удаляет токен и имя пользователя; отсутствие файлов не ошибка.
func (s AuthFSStore) Clear() error {
	for _, f := range []func() (string, error){s.tokenPath, s.loginPath} {
		p, err := f()
		if err != nil {
			return err
		}
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}
