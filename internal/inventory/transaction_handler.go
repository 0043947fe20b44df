package inventory

import (
	"fmt"
	"strings"
	"time"

	"gudanglab-backend/internal/auth"
	"gudanglab-backend/internal/models"
	"gudanglab-backend/internal/state"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type InboundRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
	Supplier string `json:"supplier"`
	Date     string `json:"date"` // kosong = hari ini
}

type OutboundLine struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type OutboundRequest struct {
	Destination models.Room    `json:"destination"`
	Lines       []OutboundLine `json:"lines"`
	// Force melewati pre-check stok; ledger tetap men-clamp di nol.
	Force bool `json:"force"`
}

func resolveDate(raw string) (string, error) {
	if raw == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", raw); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Format tanggal harus 'YYYY-MM-DD'")
	}
	return raw, nil
}

// POST /api/transactions/inbound
func InboundHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body InboundRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}

		if body.ItemID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "itemId wajib diisi")
		}
		if body.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Jumlah harus lebih dari 0")
		}

		date, err := resolveDate(body.Date)
		if err != nil {
			return err
		}

		item, found := store.FindItem(body.ItemID)
		if !found {
			return fiber.NewError(fiber.StatusBadRequest, "Barang tidak ditemukan, daftarkan dulu di Master Barang")
		}

		tx := models.StockTransaction{
			ID:        uuid.NewString(),
			ItemID:    item.ID,
			ItemName:  item.Name,
			LotNumber: item.LotNumber,
			Type:      models.TxIn,
			Quantity:  body.Quantity,
			Unit:      item.Unit,
			Date:      date,
			Supplier:  strings.TrimSpace(body.Supplier),
		}

		outcomes := store.ApplyTransactions([]models.StockTransaction{tx})

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"transaction": tx,
			"outcomes":    outcomes,
		})
	}
}

// POST /api/transactions/outbound
// Satu keranjang permintaan = satu batch. Pre-check stok dijalankan di
// sini (validasi, ledger tidak pernah dipanggil kalau gagal); force=true
// melewatinya dan membiarkan ledger men-clamp.
func OutboundHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body OutboundRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}

		if len(body.Lines) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Daftar permintaan masih kosong")
		}
		if !models.ValidRoom(body.Destination) {
			return fiber.NewError(fiber.StatusBadRequest, "Ruang tujuan tidak dikenal")
		}
		for _, line := range body.Lines {
			if line.ItemID == "" {
				return fiber.NewError(fiber.StatusBadRequest, "itemId wajib diisi di setiap baris")
			}
			if line.Quantity <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Jumlah harus lebih dari 0 di setiap baris")
			}
		}

		// Pre-check stok: hitung total per barang karena baris dalam satu
		// keranjang saling menumpuk.
		if !body.Force {
			need := make(map[string]int)
			for _, line := range body.Lines {
				need[line.ItemID] += line.Quantity
			}
			var shortages []string
			for itemID, qty := range need {
				item, found := store.FindItem(itemID)
				if found && item.Stock < qty {
					shortages = append(shortages, fmt.Sprintf("%s (sisa %d, diminta %d)", item.Name, item.Stock, qty))
				}
			}
			if len(shortages) > 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Stok kurang! "+strings.Join(shortages, "; "))
			}
		}

		requester := requesterName(c, store)
		date := time.Now().Format("2006-01-02")

		batch := make([]models.StockTransaction, 0, len(body.Lines))
		for _, line := range body.Lines {
			tx := models.StockTransaction{
				ID:          uuid.NewString(),
				ItemID:      line.ItemID,
				Type:        models.TxOut,
				Quantity:    line.Quantity,
				Date:        date,
				Destination: body.Destination,
				Requester:   requester,
			}
			// Denormalisasi nama/LOT/satuan dari master saat dibuat
			if item, found := store.FindItem(line.ItemID); found {
				tx.ItemName = item.Name
				tx.LotNumber = item.LotNumber
				tx.Unit = item.Unit
			}
			batch = append(batch, tx)
		}

		outcomes := store.ApplyTransactions(batch)

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"transactions": batch,
			"outcomes":     outcomes,
		})
	}
}

// GET /api/transactions?type=IN|OUT&limit=50
func ListTransactionsHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		txType := c.Query("type")
		limit := c.QueryInt("limit", 0)

		txs := store.Transactions()
		if txType != "" {
			filtered := make([]models.StockTransaction, 0, len(txs))
			for _, t := range txs {
				if string(t.Type) == txType {
					filtered = append(filtered, t)
				}
			}
			txs = filtered
		}
		if limit > 0 && limit < len(txs) {
			txs = txs[:limit]
		}

		return c.JSON(txs)
	}
}

// requesterName: nama lengkap user dari token; kalau user sudah tidak
// ada di koleksi, pakai username dari claim.
func requesterName(c *fiber.Ctx, store *state.Store) string {
	if userID, ok := c.Locals(auth.CtxUserIDKey).(string); ok {
		if user, found := store.FindUser(userID); found {
			return user.FullName
		}
	}
	if username, ok := c.Locals(auth.CtxUsernameKey).(string); ok {
		return username
	}
	return "Unknown"
}
