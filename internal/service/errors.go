package service

import (
	"Diarium/internal/repo"
	"errors"
	"sort"
	"strings"
)

var (
	// ErrInvalidCredentials — неверная пара логин/пароль. Не раскрывает, существует ли пользователь.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized — токен отсутствует или не найден.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound — запись не существует или не принадлежит вызывающему; эти случаи не различаются.
	ErrNotFound = repo.ErrNotFound
)

// Тексты ошибок валидации.
const (
	msgRequired      = "This field is required."
	msgBlank         = "This field may not be blank."
	msgUsernameTaken = "A user with that username already exists."
	msgUsernameChars = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	msgDateFormat    = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	msgDatetime      = "Datetime has wrong format. Use one of these formats instead: YYYY-MM-DDThh:mm[:ss[.uuuuuu]][+HH:MM|-HH:MM|Z]."
)

// ValidationError — ошибка входных данных с детализацией по полям.
type ValidationError struct {
	Fields map[string][]string
}

// Add добавляет сообщение к полю.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

// Empty — нет ни одной ошибки.
func (e *ValidationError) Empty() bool { return len(e.Fields) == 0 }

// OrNil возвращает nil для пустой ошибки, чтобы не получить typed-nil в интерфейсе error.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// fieldError — ValidationError по одному полю.
func fieldError(field, msg string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, msg)
	return v
}

// IsValidation сообщает, является ли err ошибкой валидации, и возвращает её.
func IsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
