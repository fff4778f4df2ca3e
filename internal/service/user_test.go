package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Alexandre-Machu/BagExpress/internal/domain"
	"github.com/Alexandre-Machu/BagExpress/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubTokenIssuer struct {
	token string
	err   error
}

func (s stubTokenIssuer) GenerateToken(userID, email, role string) (string, error) {
	return s.token, s.err
}

func TestUserService_Signup_HashesPassword(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, stubTokenIssuer{token: "t"})

	var created *domain.User
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, u *domain.User) { created = u }).Return(nil)

	user, err := svc.Signup(context.Background(), domain.CreateUserInput{
		Email:    "Alice@Example.COM",
		Password: "s3cret",
		Name:     "Alice",
		Phone:    "+33600000001",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))
}

func TestUserService_Signup_MissingFields(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, stubTokenIssuer{})

	_, err := svc.Signup(context.Background(), domain.CreateUserInput{Email: "a@b.c", Name: "A"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Signup(context.Background(), domain.CreateUserInput{Password: "x", Name: "A"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Signup_UnknownRole(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, stubTokenIssuer{})

	_, err := svc.Signup(context.Background(), domain.CreateUserInput{
		Email:    "a@b.c",
		Password: "x",
		Name:     "A",
		Role:     "SUPERVISOR",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Signup_DuplicateEmail(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, stubTokenIssuer{})

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Signup(context.Background(), domain.CreateUserInput{
		Email:    "taken@example.com",
		Password: "x",
		Name:     "A",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_Login_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, stubTokenIssuer{token: "signed-jwt"})

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(&domain.User{
		ID:           "u1",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	}, nil)

	token, user, err := svc.Login(context.Background(), "Alice@Example.com", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "signed-jwt", token)
	assert.Equal(t, "u1", user.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, stubTokenIssuer{token: "signed-jwt"})

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(&domain.User{
		ID:           "u1",
		PasswordHash: string(hash),
	}, nil)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, stubTokenIssuer{})

	repo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Login_TokenError(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, stubTokenIssuer{err: errors.New("no signing key")})

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(&domain.User{
		ID:           "u1",
		PasswordHash: string(hash),
	}, nil)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "s3cret")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate token")
}
