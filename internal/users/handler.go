package users

import (
	"strings"

	"gudanglab-backend/internal/auth"
	"gudanglab-backend/internal/models"
	"gudanglab-backend/internal/state"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserRequest struct {
	Username string          `json:"username"`
	Password string          `json:"password"`
	FullName string          `json:"fullName"`
	Role     models.UserRole `json:"role"`
	Room     models.Room     `json:"room"`
	// HashPin true = PIN disimpan sebagai hash bcrypt, bukan plaintext
	HashPin bool `json:"hashPin"`
}

func (r *UserRequest) validate() error {
	r.Username = strings.TrimSpace(r.Username)
	r.FullName = strings.TrimSpace(r.FullName)
	if r.Username == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Username wajib diisi")
	}
	if r.Role != models.RoleAdmin && r.Role != models.RoleStaff {
		return fiber.NewError(fiber.StatusBadRequest, "Role harus ADMIN atau STAFF")
	}
	if r.Room != "" && !models.ValidRoom(r.Room) {
		return fiber.NewError(fiber.StatusBadRequest, "Ruang tidak dikenal")
	}
	return nil
}

func storedPassword(raw string, hash bool) (string, error) {
	if !hash {
		return raw, nil
	}
	h, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "PIN gagal di-hash")
	}
	return string(h), nil
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

// GET /api/users
// PIN tidak pernah dikirim keluar.
func ListHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		all := store.Users()
		out := make([]fiber.Map, 0, len(all))
		for _, u := range all {
			out = append(out, userJSON(u))
		}
		return c.JSON(out)
	}
}

// POST /api/users
func CreateHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}
		if err := body.validate(); err != nil {
			return err
		}
		if body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "PIN wajib diisi")
		}
		if _, exists := store.FindUserByUsername(body.Username); exists {
			return fiber.NewError(fiber.StatusConflict, "Username sudah dipakai")
		}

		pwd, err := storedPassword(body.Password, body.HashPin)
		if err != nil {
			return err
		}

		user := models.UserAccount{
			ID:       uuid.NewString(),
			Username: body.Username,
			Password: pwd,
			FullName: body.FullName,
			Role:     body.Role,
			Room:     body.Room,
		}
		store.UpsertUser(user, false)
		return c.Status(fiber.StatusCreated).JSON(userJSON(user))
	}
}

// PUT /api/users/:id
// PIN kosong = PIN lama dipertahankan.
func UpdateHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		existing, ok := store.FindUser(id)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}

		var body UserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}
		if err := body.validate(); err != nil {
			return err
		}

		pwd := existing.Password
		if body.Password != "" {
			var err error
			pwd, err = storedPassword(body.Password, body.HashPin)
			if err != nil {
				return err
			}
		}

		user := models.UserAccount{
			ID:       existing.ID,
			Username: body.Username,
			Password: pwd,
			FullName: body.FullName,
			Role:     body.Role,
			Room:     body.Room,
		}
		store.UpsertUser(user, false)
		return c.JSON(userJSON(user))
	}
}

// DELETE /api/users/:id
func DeleteHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, ok := store.FindUser(id); !ok {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		if userID, ok := c.Locals(auth.CtxUserIDKey).(string); ok && userID == id {
			return fiber.NewError(fiber.StatusBadRequest, "Tidak bisa menghapus akun sendiri")
		}
		store.UpsertUser(models.UserAccount{ID: id}, true)
		return c.SendStatus(fiber.StatusNoContent)
	}
}
