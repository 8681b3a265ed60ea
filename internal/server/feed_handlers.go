package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/posts?lastId=&pageSize=
func (s *Server) GetFeed(c *fiber.Ctx) error {
	var lastID *uint
	if v := c.QueryInt("lastId", 0); v > 0 {
		id := uint(v)
		lastID = &id
	}
	pageSize := c.QueryInt("pageSize", 0)

	posts, err := s.feedService.GetFeed(c.Context(), lastID, pageSize)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(posts)
}
