package user

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

type createUserRequest struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	DateOfBirth    *string `json:"dateOfBirth"`
	ProfilePicture *string `json:"profilePicture"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/users", h.getUsers)
	app.Post("/users", h.createUser)
	app.Get("/users/:id<[0-9]+>", h.getUser)
	app.Put("/users/:id<[0-9]+>", h.updateUser)
	app.Delete("/users/:id<[0-9]+>", h.deleteUser)
}

func (h *Handler) getUsers(c *fiber.Ctx) error {
	users, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching users"})
	}
	return c.JSON(users)
}

func (h *Handler) getUser(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
	}

	user, err := h.service.GetByID(userID)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching user"})
	}

	return c.JSON(user)
}

func (h *Handler) createUser(c *fiber.Ctx) error {
	payload := new(createUserRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Create(User{
		Name:           payload.Name,
		Email:          payload.Email,
		Phone:          payload.Phone,
		DateOfBirth:    payload.DateOfBirth,
		ProfilePicture: payload.ProfilePicture,
	})
	if err != nil {
		switch err {
		case ErrNameEmailRequired:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Name and email are required"})
		case ErrInvalidEmail, ErrInvalidDate, ErrEmailExists:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error creating user"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateUser(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
	}

	// clients send only the fields they changed; absent fields stay nil
	changes := new(Update)
	if err := c.BodyParser(changes); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.Update(userID, *changes)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		case ErrNameEmailRequired, ErrInvalidEmail, ErrInvalidDate, ErrEmailExists:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error updating user"})
		}
	}

	return c.JSON(updated)
}

func (h *Handler) deleteUser(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
	}

	if err := h.service.Delete(userID); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error deleting user"})
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
