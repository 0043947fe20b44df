package inventory

import (
	"testing"
	"time"

	"gudanglab-backend/internal/models"
)

func TestBuildAlerts(t *testing.T) {
	today := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	items := []models.InventoryItem{
		{ID: "a", Name: "Reagen A", Stock: 2, MinStock: 5, ExpiryDate: "2027-01-01"},
		{ID: "b", Name: "Reagen B", Stock: 10, MinStock: 5, ExpiryDate: "2026-08-30"},
		{ID: "c", Name: "Reagen C", Stock: 10, MinStock: 5, ExpiryDate: "2026-09-15"},
		{ID: "d", Name: "Reagen D", Stock: 10, MinStock: 5, ExpiryDate: "2026-12-31"},
		{ID: "e", Name: "Reagen E", Stock: 5, MinStock: 5, ExpiryDate: ""},
		{ID: "f", Name: "Reagen F", Stock: 10, MinStock: 5, ExpiryDate: "tanggal-aneh"},
	}

	resp := BuildAlerts(items, today)

	if len(resp.LowStock) != 2 || resp.LowStock[0].ID != "a" || resp.LowStock[1].ID != "e" {
		t.Errorf("lowStock = %v", resp.LowStock)
	}
	if len(resp.Expired) != 1 || resp.Expired[0].ID != "b" {
		t.Errorf("expired = %v", resp.Expired)
	}
	if len(resp.NearingExpiry) != 1 || resp.NearingExpiry[0].ID != "c" {
		t.Errorf("nearingExpiry = %v", resp.NearingExpiry)
	}
}

func TestBuildAlertsStockAtMinimumCounts(t *testing.T) {
	today := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	items := []models.InventoryItem{
		{ID: "a", Stock: 5, MinStock: 5},
		{ID: "b", Stock: 6, MinStock: 5},
	}
	resp := BuildAlerts(items, today)
	if len(resp.LowStock) != 1 || resp.LowStock[0].ID != "a" {
		t.Errorf("lowStock = %v", resp.LowStock)
	}
}
