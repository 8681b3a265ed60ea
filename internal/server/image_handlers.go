package server

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"chirp/internal/models"

	"github.com/gofiber/fiber/v2"
)

var allowedImageExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// UploadImages handles POST /api/posts/images. It stores the uploaded files
// under the configured upload directory and returns the stored filenames so
// the client can reference them when creating a post.
func (s *Server) UploadImages(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid multipart form"))
	}

	files := form.File["image"]
	if len(files) == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("At least one image is required"))
	}

	uploadDir := s.config.UploadDir
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	stored := make([]string, 0, len(files))
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if _, ok := allowedImageExts[ext]; !ok {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Unsupported image type"))
		}

		base := strings.TrimSuffix(filepath.Base(file.Filename), filepath.Ext(file.Filename))
		name := fmt.Sprintf("%s_%d%s", base, time.Now().UnixNano(), ext)
		if err := c.SaveFile(file, filepath.Join(uploadDir, name)); err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
		stored = append(stored, name)
	}

	return c.JSON(stored)
}
