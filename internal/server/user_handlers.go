package server

import (
	"chirp/internal/models"
	"chirp/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// LikePost handles PATCH /api/posts/:id/like
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	res, err := s.socialService.LikePost(c.Context(), currentUserID(c), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// UnlikePost handles DELETE /api/posts/:id/like
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	res, err := s.socialService.UnlikePost(c.Context(), currentUserID(c), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Follow handles PATCH /api/users/:id/follow
func (s *Server) Follow(c *fiber.Ctx) error {
	followeeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	res, err := s.socialService.Follow(c.Context(), currentUserID(c), followeeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Unfollow handles DELETE /api/users/:id/follow
func (s *Server) Unfollow(c *fiber.Ctx) error {
	followeeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	res, err := s.socialService.Unfollow(c.Context(), currentUserID(c), followeeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// GetFollowers handles GET /api/users/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	users, err := s.socialService.Followers(c.Context(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// GetFollowings handles GET /api/users/followings
func (s *Server) GetFollowings(c *fiber.Ctx) error {
	users, err := s.socialService.Followings(c.Context(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// UpdateNickname handles PATCH /api/users/nickname
func (s *Server) UpdateNickname(c *fiber.Ctx) error {
	var req struct {
		Nickname string `json:"nickname"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.ValidateNickname(req.Nickname); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	user, err := s.userRepo.GetByID(c.Context(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	user.Nickname = req.Nickname
	if err := s.userRepo.Update(c.Context(), user); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"nickname": user.Nickname})
}

// GetUserCached handles GET /api/users/:id, serving the public identity
// through the cache-aside path.
func (s *Server) GetUserCached(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user.Public())
}
