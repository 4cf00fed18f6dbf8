package handler

import (
	"time"

	"talent-scout/internal/delivery/http/dto"
	"talent-scout/internal/delivery/http/middleware"
	"talent-scout/internal/pkg/response"
	"talent-scout/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileMatchUsecase
}

func NewProfileHandler(uc usecase.ProfileMatchUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/profiles")
	grp.Get("/matching-profiles", h.GetMatchingProfiles)
}

func (h *ProfileHandler) GetMatchingProfiles(c fiber.Ctx) error {
	page, err := parseQueryInt(c, "page", 1)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", []string{"page must be a number"}, err)
	}
	limit, err := parseQueryInt(c, "limit", 10)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", []string{"limit must be a number"}, err)
	}
	expYears, err := parseQueryInt(c, "experienceYears", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", []string{"experienceYears must be a number"}, err)
	}

	req := dto.ProfileMatchRequest{
		Designation:     c.Query("designation"),
		Location:        c.Query("location"),
		Company:         c.Query("company"),
		Skills:          dto.SplitSkills(c.Query("skills")),
		ExperienceYears: expYears,
		Industry:        c.Query("industry"),
		Page:            page,
		Limit:           limit,
	}
	if errs := req.Validate(); len(errs) > 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", errs, nil)
	}

	res, err := h.uc.MatchProfiles(c.Context(), req.Criteria(), req.Page, req.Limit)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	out := dto.NewProfileMatchResponse(res, req, time.Now())
	return response.Success(c, fiber.StatusOK, out)
}
