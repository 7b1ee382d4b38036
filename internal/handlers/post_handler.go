package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"userblog/internal/models"
	"userblog/internal/repositories"
	"userblog/internal/services"
)

// PostHandler handles HTTP requests for blog posts.
type PostHandler struct {
	service *services.PostService
	logger  zerolog.Logger
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service *services.PostService, logger zerolog.Logger) *PostHandler {
	return &PostHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the blog routes.
func (h *PostHandler) RegisterRoutes(router fiber.Router) {
	postRoutes := router.Group("/blog")
	postRoutes.Get("/", h.HandleGetPosts)
	postRoutes.Post("/", h.HandleCreatePost)
	postRoutes.Get("/:id", h.HandleGetPostByID)
}

// HandleGetPosts returns every blog post.
func (h *PostHandler) HandleGetPosts(c *fiber.Ctx) error {
	posts, err := h.service.ListPosts()
	if err != nil {
		h.logger.Error().Err(err).Msg("error listing blog posts")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to fetch blog posts")
	}
	return c.JSON(posts)
}

// HandleGetPostByID returns a single blog post.
func (h *PostHandler) HandleGetPostByID(c *fiber.Ctx) error {
	postID := c.Params("id")
	post, err := h.service.GetPostByID(postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Blog post not found")
		}
		h.logger.Error().Err(err).Str("post_id", postID).Msg("error getting blog post")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to fetch blog post")
	}
	return c.JSON(post)
}

// HandleCreatePost validates the body and appends a new blog post.
func (h *PostHandler) HandleCreatePost(c *fiber.Ctx) error {
	const failure = "Failed to create blog post. Please check server logs."

	var input models.NewBlogPost
	if err := decodeBody(c, &input); err != nil {
		h.logger.Error().Err(err).Msg("error parsing create blog post body")
		return errorJSON(c, fiber.StatusInternalServerError, failure)
	}

	post, err := h.service.AddPost(input)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return errorJSON(c, fiber.StatusBadRequest, vErr.Message)
		}
		h.logger.Error().Err(err).Msg("error creating blog post")
		return errorJSON(c, fiber.StatusInternalServerError, failure)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Blog post added successfully",
		"post":    post,
	})
}
