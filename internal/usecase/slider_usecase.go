package usecase

import (
	"context"
	"net/http"
	"strings"

	"tunitest/internal/domain/model"
	repo "tunitest/internal/repository"

	"github.com/google/uuid"
)

type SliderUsecase struct {
	sliderRepo repo.SliderRepository
}

// DI
func NewSliderUsecase(sliderRepo repo.SliderRepository) *SliderUsecase {
	return &SliderUsecase{sliderRepo: sliderRepo}
}

type SliderInput struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Image     string `json:"image"`
	CTA       string `json:"cta"`
	Link      string `json:"link"`
	SortOrder int    `json:"order"`
}

func (u *SliderUsecase) List(ctx context.Context) ([]model.Slider, error) {
	sliders, err := u.sliderRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return sliders, nil
}

// Create requires only title and image; the rest is optional.
func (u *SliderUsecase) Create(ctx context.Context, in SliderInput) (model.Slider, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Image) == "" {
		return model.Slider{}, NewHTTPError(http.StatusBadRequest, "Missing required fields: title and image are required")
	}

	created, err := u.sliderRepo.Create(ctx, model.Slider{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Subtitle:  in.Subtitle,
		Image:     in.Image,
		CTA:       in.CTA,
		Link:      in.Link,
		SortOrder: in.SortOrder,
	})
	if err != nil {
		return model.Slider{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *SliderUsecase) Update(ctx context.Context, id string, in SliderInput) (model.Slider, error) {
	if id == "" {
		return model.Slider{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Image) == "" {
		return model.Slider{}, NewHTTPError(http.StatusBadRequest, "Missing required fields: title and image are required")
	}

	err := u.sliderRepo.Update(ctx, model.Slider{
		ID:        id,
		Title:     in.Title,
		Subtitle:  in.Subtitle,
		Image:     in.Image,
		CTA:       in.CTA,
		Link:      in.Link,
		SortOrder: in.SortOrder,
	})
	if err == repo.ErrNotFound {
		return model.Slider{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Slider{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	s, err := u.sliderRepo.FindByID(ctx, id)
	if err != nil {
		return model.Slider{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

func (u *SliderUsecase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.sliderRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
