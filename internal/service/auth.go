package service

import (
	"Diarium/internal/model"
	"Diarium/internal/repo"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var usernameRe = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

// Session — результат успешной регистрации или входа.
type Session struct {
	Token    string
	UserID   int64
	Username string
}

// KeyFunc генерирует ключ нового токена.
type KeyFunc func() string

// NewKey — ключ по умолчанию: UUIDv4 без дефисов (32 hex-символа).
func NewKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// AuthService регистрирует пользователей, выдаёт и проверяет токены.
type AuthService struct {
	users  repo.UserRepository
	tokens repo.TokenRepository
	newKey KeyFunc
	logger *zap.SugaredLogger
}

func NewAuthService(users repo.UserRepository, tokens repo.TokenRepository, logger *zap.SugaredLogger) *AuthService {
	return &AuthService{users: users, tokens: tokens, newKey: NewKey, logger: logger}
}

// WithKeyFunc подменяет генератор ключей (для тестов).
func (s *AuthService) WithKeyFunc(f KeyFunc) *AuthService {
	s.newKey = f
	return s
}

// Register создаёт пользователя и выдаёт ему токен.
func (s *AuthService) Register(ctx context.Context, username, password string) (Session, error) {
	username = strings.TrimSpace(username)

	v := &ValidationError{}
	switch {
	case username == "":
		v.Add("username", msgBlank)
	case len([]rune(username)) > maxUsernameLen:
		v.Add("username", "Ensure this field has no more than 150 characters.")
	case !usernameRe.MatchString(username):
		v.Add("username", msgUsernameChars)
	}
	password = strings.TrimSpace(password)
	if password == "" {
		v.Add("password", msgBlank)
	}
	if !v.Empty() {
		return Session{}, v
	}

	existing, err := s.users.GetUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return Session{}, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return Session{}, fieldError("username", msgUsernameTaken)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, &model.User{Username: username, Password: string(hash)})
	if err != nil {
		// гонка двух регистраций: уникальный индекс сработал после нашей проверки
		if errors.Is(err, repo.ErrDuplicate) {
			return Session{}, fieldError("username", msgUsernameTaken)
		}
		return Session{}, fmt.Errorf("create user: %w", err)
	}

	sess, err := s.issue(ctx, user)
	if err != nil {
		return Session{}, err
	}
	s.logger.Infow("user registered", "user_id", user.ID, "username", user.Username)
	return sess, nil
}

// Login проверяет пароль и возвращает действующий токен пользователя (создаёт его при первом входе).
func (s *AuthService) Login(ctx context.Context, username, password string) (Session, error) {
	// пароль обрезается так же, как при регистрации
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	v := &ValidationError{}
	if username == "" {
		v.Add("username", msgBlank)
	}
	if password == "" {
		v.Add("password", msgBlank)
	}
	if !v.Empty() {
		return Session{}, v
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return Session{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	return s.issue(ctx, user)
}

// Authenticate возвращает id владельца токена.
func (s *AuthService) Authenticate(ctx context.Context, key string) (int64, error) {
	if key == "" {
		return 0, ErrUnauthorized
	}
	tok, err := s.tokens.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return 0, ErrUnauthorized
		}
		return 0, fmt.Errorf("lookup token: %w", err)
	}
	return tok.UserID, nil
}

func (s *AuthService) issue(ctx context.Context, user *model.User) (Session, error) {
	tok, _, err := s.tokens.GetOrCreate(ctx, user.ID, s.newKey())
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}
	return Session{Token: tok.Key, UserID: user.ID, Username: user.Username}, nil
}
