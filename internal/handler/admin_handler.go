package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "phorum/internal/errors"
	"phorum/internal/model"
	"phorum/internal/service"
)

// AdminHandler handles the administrative aggregate listing.
type AdminHandler struct {
	userService service.UserService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(userService service.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

// OverviewResponse aggregates all users and all posts.
type OverviewResponse struct {
	Users []model.User `json:"users"`
	Posts []model.Post `json:"posts"`
}

// Overview godoc
// @Summary Aggregate listing of all users and posts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} OverviewResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/overview [get]
func (h *AdminHandler) Overview(c echo.Context) error {
	users, posts, err := h.userService.Overview(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, OverviewResponse{Users: users, Posts: posts})
}
