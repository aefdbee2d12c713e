package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"tunitest/internal/domain/model"
	repo "tunitest/internal/repository"
	"tunitest/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type AdminRepoMock struct{ mock.Mock }

func (m *AdminRepoMock) FindByUsername(ctx context.Context, username string) (model.AdminUser, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(model.AdminUser)
	return u, args.Error(1)
}

func (m *AdminRepoMock) Create(ctx context.Context, u model.AdminUser) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *AdminRepoMock) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

const testSecret = "test-secret"

func seededAdmin(t *testing.T, password string) model.AdminUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return model.AdminUser{
		ID:           "admin-1",
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
}

func TestAuthUsecase_Login_Success(t *testing.T) {
	aRepo := new(AdminRepoMock)
	uc := usecase.NewAuthUsecase(aRepo, testSecret)

	aRepo.On("FindByUsername", mock.Anything, "admin").Return(seededAdmin(t, "s3cret"), nil)
	aRepo.On("UpdateLastLogin", mock.Anything, "admin-1", mock.Anything).Return(nil)

	out, err := uc.Login(context.Background(), usecase.LoginInput{Username: "admin", Password: "s3cret"})
	assert.NoError(t, err)
	assert.Equal(t, "admin", out.Username)
	assert.Equal(t, string(model.RoleAdmin), out.Role)

	token, err := jwt.Parse(out.Token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin-1", claims["sub"])
	assert.Equal(t, string(model.RoleAdmin), claims["role"])
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	aRepo := new(AdminRepoMock)
	uc := usecase.NewAuthUsecase(aRepo, testSecret)

	aRepo.On("FindByUsername", mock.Anything, "admin").Return(seededAdmin(t, "s3cret"), nil)

	_, err := uc.Login(context.Background(), usecase.LoginInput{Username: "admin", Password: "wrong"})
	assertStatus(t, err, http.StatusUnauthorized)
}

func TestAuthUsecase_Login_UnknownUser(t *testing.T) {
	aRepo := new(AdminRepoMock)
	uc := usecase.NewAuthUsecase(aRepo, testSecret)

	aRepo.On("FindByUsername", mock.Anything, "ghost").Return(model.AdminUser{}, repo.ErrNotFound)

	_, err := uc.Login(context.Background(), usecase.LoginInput{Username: "ghost", Password: "x"})
	assertStatus(t, err, http.StatusUnauthorized)
}

func TestAuthUsecase_EnsureAdmin_SeedsOnce(t *testing.T) {
	aRepo := new(AdminRepoMock)
	uc := usecase.NewAuthUsecase(aRepo, testSecret)

	aRepo.On("FindByUsername", mock.Anything, "admin").Return(model.AdminUser{}, repo.ErrNotFound)
	aRepo.On("Create", mock.Anything, mock.MatchedBy(func(u model.AdminUser) bool {
		return u.Username == "admin" && u.Role == model.RoleAdmin && u.PasswordHash != "s3cret"
	})).Return(nil)

	err := uc.EnsureAdmin(context.Background(), "admin", "s3cret")
	assert.NoError(t, err)
	aRepo.AssertExpectations(t)
}

func TestAuthUsecase_EnsureAdmin_ExistingUntouched(t *testing.T) {
	aRepo := new(AdminRepoMock)
	uc := usecase.NewAuthUsecase(aRepo, testSecret)

	aRepo.On("FindByUsername", mock.Anything, "admin").Return(seededAdmin(t, "old"), nil)

	err := uc.EnsureAdmin(context.Background(), "admin", "new")
	assert.NoError(t, err)
	aRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
