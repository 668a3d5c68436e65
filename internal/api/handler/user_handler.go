package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/peopledesk/users-api/internal/api/metrics"
	"github.com/peopledesk/users-api/internal/core/domain"
	"github.com/peopledesk/users-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user operations. Domain errors are
// returned as-is and translated by the central error handler.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /users.
//
// @Summary      List users with optional combinable filters
// @Tags         users
// @Produce      json
// @Param        name      query     string  false  "Substring match on name (case-insensitive)"
// @Param        email     query     string  false  "Substring match on email (case-insensitive)"
// @Param        jobTitle  query     string  false  "Exact match on job title (case-insensitive)"
// @Param        role      query     string  false  "Exact match on role (ADMIN, MANAGER, USER)"
// @Param        active    query     bool    false  "Exact match on active flag"
// @Success      200       {array}   userResponse
// @Failure      400       {object}  map[string]any
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	filter, err := parseSearchFilter(c)
	if err != nil {
		return err
	}

	users, err := h.service.Search(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}

// Get handles GET /users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  map[string]any
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Create handles POST /users.
//
// @Summary      Create a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User payload"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Create(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues(string(user.Role)).Inc()
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Update handles PUT /users/:id — a full replace of all mutable fields.
//
// @Summary      Replace a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Complete desired state"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), id, toUpdateInput(req))
	if err != nil {
		return err
	}

	metrics.UsersMutatedTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Patch handles PATCH /users/:id — only the fields present in the body
// change.
//
// @Summary      Partially update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "User id"
// @Param        body  body      patchUserRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /users/{id} [patch]
func (h *UserHandler) Patch(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req patchUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.service.Patch(c.Request().Context(), id, toPatch(req))
	if err != nil {
		return err
	}

	metrics.UsersMutatedTotal.WithLabelValues("patch").Inc()
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete handles DELETE /users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Param        id   path  int  true  "User id"
// @Success      204
// @Failure      404  {object}  map[string]any
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.UsersDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// Stats handles GET /users/stats.
//
// @Summary      Aggregate user counts by job title, role and active flag
// @Tags         users
// @Produce      json
// @Success      200  {object}  statsResponse
// @Router       /users/stats [get]
func (h *UserHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStatsResponse(stats))
}

// parseSearchFilter builds a typed filter from the query string. Bad role or
// active values are rejected rather than silently ignored.
func parseSearchFilter(c echo.Context) (ports.SearchFilter, error) {
	f := ports.SearchFilter{
		Name:     c.QueryParam("name"),
		Email:    c.QueryParam("email"),
		JobTitle: c.QueryParam("jobTitle"),
	}

	if raw := c.QueryParam("role"); raw != "" {
		role, err := domain.ParseRole(raw)
		if err != nil {
			return f, err
		}
		f.Role = &role
	}
	if raw := c.QueryParam("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return f, domain.NewValidationError("invalid active filter: expected true or false")
		}
		f.Active = &active
	}
	return f, nil
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	return uint(id), nil
}
