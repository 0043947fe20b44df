package supplier

import (
	"strings"

	"gudanglab-backend/internal/models"
	"gudanglab-backend/internal/state"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SupplierRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

func (r *SupplierRequest) validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Contact = strings.TrimSpace(r.Contact)
	r.Address = strings.TrimSpace(r.Address)
	if r.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Nama supplier wajib diisi")
	}
	return nil
}

// GET /api/suppliers
func ListHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(store.Suppliers())
	}
}

// POST /api/suppliers
func CreateHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SupplierRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}
		if err := body.validate(); err != nil {
			return err
		}

		sup := models.Supplier{
			ID:      uuid.NewString(),
			Name:    body.Name,
			Contact: body.Contact,
			Address: body.Address,
		}
		store.UpsertSupplier(sup, false)
		return c.Status(fiber.StatusCreated).JSON(sup)
	}
}

// PUT /api/suppliers/:id
func UpdateHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, ok := store.FindSupplier(id); !ok {
			return fiber.NewError(fiber.StatusNotFound, "Supplier tidak ditemukan")
		}

		var body SupplierRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}
		if err := body.validate(); err != nil {
			return err
		}

		sup := models.Supplier{
			ID:      id,
			Name:    body.Name,
			Contact: body.Contact,
			Address: body.Address,
		}
		store.UpsertSupplier(sup, false)
		return c.JSON(sup)
	}
}

// DELETE /api/suppliers/:id
func DeleteHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, ok := store.FindSupplier(id); !ok {
			return fiber.NewError(fiber.StatusNotFound, "Supplier tidak ditemukan")
		}
		store.UpsertSupplier(models.Supplier{ID: id}, true)
		return c.SendStatus(fiber.StatusNoContent)
	}
}
