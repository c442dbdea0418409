package handlers

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/freightops/freight_broker_app/internal/apperrors"
	"github.com/freightops/freight_broker_app/internal/core/domain"
	portssvc "github.com/freightops/freight_broker_app/internal/core/ports/services"
	"github.com/freightops/freight_broker_app/internal/dto"
	"github.com/freightops/freight_broker_app/internal/middleware"
)

// userHandler handles HTTP requests related to users. User creation goes
// through the typed path so the password is hashed before it reaches the
// record engine; everything else rides the generic surface.
type userHandler struct {
	recordHandler[domain.User]
	userService portssvc.UserSvcFacade
}

// registerUserRoutes registers routes related to users. Management routes
// are admin-only; /users/me is open to any authenticated caller.
func registerUserRoutes(rg *gin.RouterGroup, us portssvc.UserSvcFacade, hs portssvc.HistorySvcFacade) {
	h := &userHandler{userService: us}
	h.recordHandler = recordHandler[domain.User]{
		svc:          us,
		historySvc:   hs,
		entityType:   domain.EntityUser,
		formatSingle: formatUser,
		formatPage:   formatUserPage,
	}

	rg.GET("/users/me", h.me)

	users := rg.Group("/users", middleware.RequireRole(domain.RoleAdmin))
	{
		users.GET("", h.list)
		users.GET("/search", h.search)
		users.GET("/stats", h.stats)
		users.POST("", h.createUser)
		users.POST("/bulk-update", h.bulkUpdate)
		users.POST("/bulk-delete", h.bulkDelete)
		users.GET("/:id", h.getByID)
		users.PUT("/:id", h.update)
		users.DELETE("/:id", h.delete)
		users.GET("/:id/history", h.getHistory)
	}
}

func formatUser(_ context.Context, user domain.User) (any, error) {
	return dto.ToUserResponse(user), nil
}

func formatUserPage(_ context.Context, users []domain.User) ([]any, error) {
	items := make([]any, len(users))
	for i, user := range users {
		items[i] = dto.ToUserResponse(user)
	}
	return items, nil
}

// createUser godoc
// @Summary Create a new user
// @Description Provisions a local user; the password is hashed before storage
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 409 {object} map[string]string "Email already registered"
// @Security BearerAuth
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateUser", slog.String("error", err.Error()))
		respondError(c, apperrors.NewInvalidArgumentError("invalid request body"))
		return
	}
	actorID, _ := middleware.GetUserIDFromContext(c)

	user, err := h.userService.CreateUser(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("User created", slog.String("user_id", user.UserID))
	respondCreated(c, dto.ToUserResponse(*user))
}

// me godoc
// @Summary Get the authenticated user
// @Description Returns the profile of the caller identified by the bearer token
// @Tags users
// @Produce  json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) me(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}
	user, err := h.userService.GetRecordByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ToUserResponse(*user))
}
