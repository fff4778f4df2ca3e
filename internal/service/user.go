package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Alexandre-Machu/BagExpress/internal/domain"
	"github.com/Alexandre-Machu/BagExpress/internal/service/ports"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// tokenIssuer выдаёт подписанный токен сессии. Реализация — internal/auth.
type tokenIssuer interface {
	GenerateToken(userID, email, role string) (string, error)
}

type UserService struct {
	repo   ports.UserRepo
	tokens tokenIssuer
}

func NewUserService(repo ports.UserRepo, tokens tokenIssuer) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

// Signup создаёт учётку с bcrypt-хешем пароля. Открытый пароль дальше
// этого метода не уходит и нигде не сохраняется.
func (s *UserService) Signup(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if input.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	role := input.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Email:          strings.ToLower(input.Email),
		PasswordHash:   string(hash),
		Name:           input.Name,
		Phone:          input.Phone,
		Role:           role,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login сверяет пароль с хешем и выдаёт JWT. Неизвестный email и неверный
// пароль наружу неразличимы.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}
