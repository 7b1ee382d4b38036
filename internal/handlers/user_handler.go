package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"userblog/internal/models"
	"userblog/internal/repositories"
	"userblog/internal/services"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service *services.UserService
	logger  zerolog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the user routes.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Get("/:id", h.HandleGetUserByID)
}

// HandleGetUsers returns every user, passwords included.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers()
	if err != nil {
		h.logger.Error().Err(err).Msg("error listing users")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}
	return c.JSON(users)
}

// HandleGetUserByID returns a single user.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	userID := c.Params("id")
	user, err := h.service.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "User not found")
		}
		h.logger.Error().Err(err).Str("user_id", userID).Msg("error getting user")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}
	return c.JSON(user)
}

// HandleCreateUser validates the body and appends a new user.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	const failure = "Failed to create user. Please check server logs."

	var input models.NewUser
	if err := decodeBody(c, &input); err != nil {
		h.logger.Error().Err(err).Msg("error parsing create user body")
		return errorJSON(c, fiber.StatusInternalServerError, failure)
	}

	user, err := h.service.AddUser(input)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return errorJSON(c, fiber.StatusBadRequest, vErr.Message)
		}
		h.logger.Error().Err(err).Msg("error creating user")
		return errorJSON(c, fiber.StatusInternalServerError, failure)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User added successfully",
		"user":    user,
	})
}
