package auth

import (
	"errors"
	"log"

	"gudanglab-backend/internal/cache"
	"gudanglab-backend/internal/config"
	"gudanglab-backend/internal/models"
	"gudanglab-backend/internal/state"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func userJSON(u models.UserAccount) fiber.Map {
	return fiber.Map{
		"id":       u.ID,
		"username": u.Username,
		"fullName": u.FullName,
		"role":     u.Role,
		"room":     u.Room,
	}
}

// POST /api/auth/login
func LoginHandler(cfg *config.Config, store *state.Store, c2 *cache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}

		user, ok := Authenticate(store, body.Username, body.Password)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Username atau PIN salah!")
		}

		token, err := GenerateToken(cfg.JWTSecret, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token tidak bisa dibuat")
		}

		// Sesi disimpan ke cache lokal supaya pulih setelah restart
		if err := c2.SaveSession(user); err != nil {
			log.Println("Sesi gagal disimpan ke cache:", err)
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user":  userJSON(user),
		})
	}
}

// POST /api/auth/logout
func LogoutHandler(c2 *cache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := c2.ClearSession(); err != nil {
			log.Println("Sesi gagal dihapus dari cache:", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/auth/me
func MeHandler(store *state.Store, c2 *cache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDVal := c.Locals(CtxUserIDKey)
		if userID, ok := userIDVal.(string); ok {
			if user, found := store.FindUser(userID); found {
				return c.JSON(userJSON(user))
			}
		}

		// Fallback: snapshot sesi terakhir dari cache
		if user, err := c2.LoadSession(); err == nil {
			return c.JSON(userJSON(*user))
		} else if !errors.Is(err, cache.ErrNotFound) {
			log.Println("Sesi gagal dibaca dari cache:", err)
		}

		return fiber.NewError(fiber.StatusUnauthorized, "Sesi tidak ditemukan")
	}
}
