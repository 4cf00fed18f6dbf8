package handler

import (
	"errors"
	"strconv"
	"time"

	"talent-scout/internal/delivery/http/dto"
	"talent-scout/internal/delivery/http/middleware"
	"talent-scout/internal/pkg/response"
	"talent-scout/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc usecase.JobMatchUsecase
}

func NewJobHandler(uc usecase.JobMatchUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/matching-jobs", h.GetMatchingJobs)
}

func (h *JobHandler) GetMatchingJobs(c fiber.Ctx) error {
	page, err := parseQueryInt(c, "page", 1)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", []string{"page must be a number"}, err)
	}
	limit, err := parseQueryInt(c, "limit", 10)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", []string{"limit must be a number"}, err)
	}

	req := dto.JobMatchRequest{
		Designation:    c.Query("designation"),
		Location:       c.Query("location"),
		Skills:         dto.SplitSkills(c.Query("skills")),
		EmploymentType: c.Query("employmentType"),
		Page:           page,
		Limit:          limit,
	}
	if errs := req.Validate(); len(errs) > 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", errs, nil)
	}

	criteria := req.Criteria()
	res, err := h.uc.MatchJobs(c.Context(), criteria, req.Page, req.Limit)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	out := dto.NewJobMatchResponse(res, req, time.Now())
	return response.Success(c, fiber.StatusOK, out)
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func mapMatchUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
