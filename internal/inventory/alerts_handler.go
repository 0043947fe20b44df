package inventory

import (
	"time"

	"gudanglab-backend/internal/models"
	"gudanglab-backend/internal/state"

	"github.com/gofiber/fiber/v2"
)

// Barang dengan expired dalam rentang ini masuk daftar "hampir expired".
const nearingExpiryDays = 30

type AlertsResponse struct {
	LowStock      []models.InventoryItem `json:"lowStock"`
	Expired       []models.InventoryItem `json:"expired"`
	NearingExpiry []models.InventoryItem `json:"nearingExpiry"`
}

// BuildAlerts mengelompokkan barang bermasalah per hari acuan.
func BuildAlerts(items []models.InventoryItem, today time.Time) AlertsResponse {
	resp := AlertsResponse{
		LowStock:      []models.InventoryItem{},
		Expired:       []models.InventoryItem{},
		NearingExpiry: []models.InventoryItem{},
	}
	day := today.Truncate(24 * time.Hour)

	for _, item := range items {
		if item.Stock <= item.MinStock {
			resp.LowStock = append(resp.LowStock, item)
		}
		if item.ExpiryDate == "" {
			continue
		}
		exp, err := time.Parse("2006-01-02", item.ExpiryDate)
		if err != nil {
			continue
		}
		days := int(exp.Sub(day).Hours() / 24)
		switch {
		case days < 0:
			resp.Expired = append(resp.Expired, item)
		case days > 0 && days <= nearingExpiryDays:
			resp.NearingExpiry = append(resp.NearingExpiry, item)
		}
	}
	return resp
}

// GET /api/alerts
func AlertsHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(BuildAlerts(store.Items(), time.Now()))
	}
}
