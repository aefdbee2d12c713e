package usecase

import (
	"context"
	"net/http"
	"strings"

	"tunitest/internal/domain/model"
	repo "tunitest/internal/repository"

	"github.com/google/uuid"
)

type PartnerUsecase struct {
	partnerRepo repo.PartnerRepository
}

// DI
func NewPartnerUsecase(partnerRepo repo.PartnerRepository) *PartnerUsecase {
	return &PartnerUsecase{partnerRepo: partnerRepo}
}

type PartnerInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	BookTitle   string `json:"bookTitle"`
	Category    string `json:"category"`
	Level       string `json:"level"`
	Language    string `json:"language"`
	Description string `json:"description"`
}

func (u *PartnerUsecase) List(ctx context.Context) ([]model.Partner, error) {
	partners, err := u.partnerRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return partners, nil
}

// Create validates the onboarding request; every field is required.
func (u *PartnerUsecase) Create(ctx context.Context, in PartnerInput) (model.Partner, error) {
	for _, v := range []string{in.Name, in.Email, in.Phone, in.BookTitle, in.Description} {
		if strings.TrimSpace(v) == "" {
			return model.Partner{}, NewHTTPError(http.StatusBadRequest, "Missing required fields")
		}
	}
	if !validCategory(in.Category, false) {
		return model.Partner{}, NewHTTPError(http.StatusBadRequest, "invalid category")
	}
	if !validLevel(in.Level, false) {
		return model.Partner{}, NewHTTPError(http.StatusBadRequest, "invalid level")
	}
	if !validLanguage(in.Language, false) {
		return model.Partner{}, NewHTTPError(http.StatusBadRequest, "invalid language")
	}

	created, err := u.partnerRepo.Create(ctx, model.Partner{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		BookTitle:   strings.TrimSpace(in.BookTitle),
		Category:    model.Category(in.Category),
		Level:       model.Level(in.Level),
		Language:    model.Language(in.Language),
		Description: in.Description,
	})
	if err != nil {
		return model.Partner{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *PartnerUsecase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.partnerRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Partner not found or failed to delete")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
