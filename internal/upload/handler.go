package upload

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const localDir = "./uploads/profile-pictures"

// Handler exposes the profile-picture hand-off. With a presigner configured
// it only issues presigned URLs; otherwise it stores files under ./uploads
// and main serves that directory statically.
type Handler struct {
	presigner *Presigner
}

type presignRequest struct {
	FileName string `json:"fileName"`
}

func NewHandler(presigner *Presigner) *Handler {
	return &Handler{presigner: presigner}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	if h.presigner != nil {
		app.Post("/api/upload/presign", h.presign)
		return
	}
	app.Post("/api/upload", h.uploadLocal)
}

func (h *Handler) presign(c *fiber.Ctx) error {
	payload := new(presignRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.FileName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "fileName is required"})
	}

	key, uploadURL, publicURL, err := h.presigner.PresignPut(c.Context(), payload.FileName)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{
		"key":       key,
		"uploadUrl": uploadURL,
		"publicUrl": publicURL,
	})
}

func (h *Handler) uploadLocal(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "file is required"})
	}

	name := uuid.New().String() + filepath.Ext(file.Filename)
	if err := os.MkdirAll(localDir, 0755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if err := c.SaveFile(file, filepath.Join(localDir, name)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{"url": "/uploads/profile-pictures/" + name})
}
