package inventory

import (
	"strings"
	"time"

	"gudanglab-backend/internal/models"
	"gudanglab-backend/internal/state"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ItemRequest struct {
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	SKU            string          `json:"sku"`
	LotNumber      string          `json:"lotNumber"`
	Unit           models.UnitType `json:"unit"`
	MinStock       int             `json:"minStock"`
	ExpiryDate     string          `json:"expiryDate"`
	ManualOrderQty int             `json:"manualOrderQty"`
}

func validateItemRequest(body *ItemRequest) error {
	body.Name = strings.TrimSpace(body.Name)
	body.SKU = strings.TrimSpace(body.SKU)
	body.LotNumber = strings.TrimSpace(body.LotNumber)

	if body.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Nama barang wajib diisi")
	}
	if !models.ValidUnit(body.Unit) {
		return fiber.NewError(fiber.StatusBadRequest, "Satuan tidak dikenal")
	}
	if body.MinStock < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Stok minimum tidak boleh negatif")
	}
	if body.ExpiryDate != "" {
		if _, err := time.Parse("2006-01-02", body.ExpiryDate); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Format tanggal expired harus 'YYYY-MM-DD'")
		}
	}
	return nil
}

// GET /api/items
func ListItemsHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(store.Items())
	}
}

// POST /api/items
// Barang baru selalu mulai dengan stok 0; stok hanya berubah lewat
// transaksi masuk/keluar.
func CreateItemHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}
		if err := validateItemRequest(&body); err != nil {
			return err
		}

		item := models.InventoryItem{
			ID:             uuid.NewString(),
			Name:           body.Name,
			Category:       strings.TrimSpace(body.Category),
			SKU:            body.SKU,
			LotNumber:      body.LotNumber,
			Unit:           body.Unit,
			Stock:          0,
			MinStock:       body.MinStock,
			ExpiryDate:     body.ExpiryDate,
			LastUpdated:    time.Now().Format("2006-01-02"),
			ManualOrderQty: body.ManualOrderQty,
		}

		store.UpsertItem(item, false)
		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// PUT /api/items/:id
// Edit metadata saja; stok yang tersimpan dipertahankan.
func UpdateItemHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		existing, ok := store.FindItem(id)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Barang tidak ditemukan")
		}

		var body ItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}
		if err := validateItemRequest(&body); err != nil {
			return err
		}

		item := models.InventoryItem{
			ID:             existing.ID,
			Name:           body.Name,
			Category:       strings.TrimSpace(body.Category),
			SKU:            body.SKU,
			LotNumber:      body.LotNumber,
			Unit:           body.Unit,
			Stock:          existing.Stock,
			MinStock:       body.MinStock,
			ExpiryDate:     body.ExpiryDate,
			LastUpdated:    time.Now().Format("2006-01-02"),
			ManualOrderQty: body.ManualOrderQty,
		}

		store.UpsertItem(item, false)
		return c.JSON(item)
	}
}

// DELETE /api/items/:id
func DeleteItemHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, ok := store.FindItem(id); !ok {
			return fiber.NewError(fiber.StatusNotFound, "Barang tidak ditemukan")
		}
		store.UpsertItem(models.InventoryItem{ID: id}, true)
		return c.SendStatus(fiber.StatusNoContent)
	}
}
