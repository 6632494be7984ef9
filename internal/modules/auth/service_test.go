package auth

import (
	"context"
	"testing"

	"roombook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockJWT struct {
	mock.Mock
}

func (m *MockJWT) GenerateToken(userID int64, role domain.UserRole) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestService_Register_Success(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockJWT))

	users.On("ExistsByEmail", mock.Anything, "tina@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	u, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Tina",
		Email:    " Tina@Example.com ",
		Password: "secret-password",
		Role:     "teacher",
	})
	require.NoError(t, err)

	assert.Equal(t, "tina@example.com", u.Email)
	assert.Equal(t, domain.RoleTeacher, u.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret-password")))
	users.AssertExpectations(t)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockJWT))

	users.On("ExistsByEmail", mock.Anything, "tina@example.com").Return(true, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Tina",
		Email:    "tina@example.com",
		Password: "secret-password",
		Role:     "teacher",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestService_Register_AdminRoleRejected(t *testing.T) {
	svc := NewService(new(MockUserRepository), new(MockJWT))

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Eve",
		Email:    "eve@example.com",
		Password: "secret-password",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Login_Success(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWT)
	svc := NewService(users, jwt)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	users.On("GetByEmail", mock.Anything, "tina@example.com").Return(&domain.User{
		ID: 42, Email: "tina@example.com", PasswordHash: string(hash), Role: domain.RoleTeacher,
	}, nil)
	jwt.On("GenerateToken", int64(42), domain.RoleTeacher).Return("token-42", nil)

	res, err := svc.Login(context.Background(), LoginRequest{Email: "tina@example.com", Password: "secret-password"})
	require.NoError(t, err)
	assert.Equal(t, "token-42", res.AccessToken)
	assert.Equal(t, int64(42), res.User.ID)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockJWT))

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	users.On("GetByEmail", mock.Anything, "tina@example.com").Return(&domain.User{
		ID: 42, Email: "tina@example.com", PasswordHash: string(hash),
	}, nil)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "tina@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockJWT))

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
