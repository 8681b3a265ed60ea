package server

import (
	"chirp/internal/models"
	"chirp/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Content string   `json:"content"`
		Images  []string `json:"image"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:  currentUserID(c),
		Content: req.Content,
		Images:  req.Images,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// Retweet handles POST /api/posts/:id/retweet
func (s *Server) Retweet(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.retweetService.Retweet(c.Context(), service.RetweetInput{
		UserID: currentUserID(c),
		PostID: postID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	res, err := s.postService.DeletePost(c.Context(), service.DeletePostInput{
		UserID: currentUserID(c),
		PostID: postID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(res)
}
