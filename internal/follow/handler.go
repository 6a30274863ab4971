package follow

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/aniketSingh0310/user-dash/internal/user"
)

// Handler resolves both users through the user service so confirmations can
// name them, and delegates edge changes to the follow service.
type Handler struct {
	service     *Service
	userService *user.Service
}

type followRequest struct {
	FollowerID  int `json:"followerId"`
	FollowingID int `json:"followingId"`
}

func NewHandler(service *Service, userService *user.Service) *Handler {
	return &Handler{service: service, userService: userService}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/users/follow", h.follow)
	app.Post("/users/unfollow", h.unfollow)
}

func (h *Handler) follow(c *fiber.Ctx) error {
	payload := new(followRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.FollowerID <= 0 || payload.FollowingID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "followerId and followingId are required"})
	}
	if payload.FollowerID == payload.FollowingID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": ErrSelfFollow.Error()})
	}

	follower, following, err := h.resolve(payload.FollowerID, payload.FollowingID)
	if err != nil {
		return notFoundOrInternal(c, err)
	}

	if err := h.service.Follow(payload.FollowerID, payload.FollowingID); err != nil {
		switch err {
		case ErrAlreadyFollowing:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Already following this user"})
		case ErrSelfFollow:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error following user"})
		}
	}

	return c.JSON(fiber.Map{"message": fmt.Sprintf("%s is now following %s", follower.Name, following.Name)})
}

func (h *Handler) unfollow(c *fiber.Ctx) error {
	payload := new(followRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.FollowerID <= 0 || payload.FollowingID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "followerId and followingId are required"})
	}

	follower, following, err := h.resolve(payload.FollowerID, payload.FollowingID)
	if err != nil {
		return notFoundOrInternal(c, err)
	}

	if err := h.service.Unfollow(payload.FollowerID, payload.FollowingID); err != nil {
		switch err {
		case ErrNotFollowing:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "You are not following this user"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error unfollowing user"})
		}
	}

	return c.JSON(fiber.Map{"message": fmt.Sprintf("%s has unfollowed %s", follower.Name, following.Name)})
}

func (h *Handler) resolve(followerID, followingID int) (user.User, user.User, error) {
	follower, err := h.userService.GetByID(followerID)
	if err != nil {
		return user.User{}, user.User{}, err
	}
	following, err := h.userService.GetByID(followingID)
	if err != nil {
		return user.User{}, user.User{}, err
	}
	return follower, following, nil
}

func notFoundOrInternal(c *fiber.Ctx, err error) error {
	if err == user.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
}
