package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"tunitest/internal/domain/model"
	repo "tunitest/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenTTL = 12 * time.Hour

const bcryptCost = 12

// AuthUsecase handles the admin login gate for the back office.
type AuthUsecase struct {
	adminRepo repo.AdminUserRepository
	jwtSecret []byte
	logger    *log.Entry
}

// DI
func NewAuthUsecase(adminRepo repo.AdminUserRepository, jwtSecret string) *AuthUsecase {
	return &AuthUsecase{
		adminRepo: adminRepo,
		jwtSecret: []byte(jwtSecret),
		logger:    log.WithField("component", "auth"),
	}
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return LoginOutput{}, NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	admin, err := u.adminRepo.FindByUsername(ctx, username)
	if err == repo.ErrNotFound {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)) != nil {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	now := time.Now()
	expiresAt := now.Add(accessTokenTTL)

	claims := jwt.MapClaims{
		"sub":  admin.ID,
		"role": string(admin.Role),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.jwtSecret)
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	if err := u.adminRepo.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		u.logger.WithError(err).Warn("last login not recorded")
	}

	return LoginOutput{
		Token:     signed,
		ExpiresAt: expiresAt,
		Username:  admin.Username,
		Role:      string(admin.Role),
	}, nil
}

// EnsureAdmin seeds the configured admin account at startup. Existing
// accounts are left untouched.
func (u *AuthUsecase) EnsureAdmin(ctx context.Context, username string, password string) error {
	if username == "" || password == "" {
		return nil
	}

	_, err := u.adminRepo.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if err != repo.ErrNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}

	u.logger.WithField("username", username).Info("seeding admin account")
	return u.adminRepo.Create(ctx, model.AdminUser{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	})
}
