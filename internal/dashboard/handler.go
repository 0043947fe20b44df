package dashboard

import (
	"gudanglab-backend/internal/models"
	"gudanglab-backend/internal/state"

	"github.com/gofiber/fiber/v2"
)

const recentCount = 5

type Summary struct {
	TotalStock         int                       `json:"totalStock"`
	CriticalItems      int                       `json:"criticalItems"`
	TotalTransactions  int                       `json:"totalTransactions"`
	TotalUsers         int                       `json:"totalUsers"`
	RecentTransactions []models.StockTransaction `json:"recentTransactions"`
}

// BuildSummary menghitung angka-angka untuk kartu dashboard.
func BuildSummary(items []models.InventoryItem, txs []models.StockTransaction, users []models.UserAccount) Summary {
	s := Summary{
		TotalTransactions:  len(txs),
		TotalUsers:         len(users),
		RecentTransactions: []models.StockTransaction{},
	}
	for _, item := range items {
		s.TotalStock += item.Stock
		if item.Stock <= item.MinStock {
			s.CriticalItems++
		}
	}
	// Log sudah urut terbaru dulu
	n := recentCount
	if len(txs) < n {
		n = len(txs)
	}
	s.RecentTransactions = append(s.RecentTransactions, txs[:n]...)
	return s
}

// GET /api/dashboard
func Handler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(BuildSummary(store.Items(), store.Transactions(), store.Users()))
	}
}
