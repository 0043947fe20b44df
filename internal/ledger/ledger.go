// Package ledger menghitung efek transaksi stok secara murni:
// tanpa I/O, tanpa menyentuh cache atau remote store. Caller (state.Store)
// yang bertanggung jawab menyimpan hasilnya.
package ledger

import "gudanglab-backend/internal/models"

type OutcomeStatus string

const (
	OutcomeApplied      OutcomeStatus = "APPLIED"
	OutcomeItemNotFound OutcomeStatus = "ITEM_NOT_FOUND"
)

// Outcome: hasil per intent dalam satu batch. Intent yang menunjuk
// barang tak dikenal tetap dicatat ke riwayat, hanya efek stoknya
// yang dilewati — caller bebas menampilkan peringatan.
type Outcome struct {
	TransactionID string        `json:"transactionId"`
	ItemID        string        `json:"itemId"`
	Status        OutcomeStatus `json:"status"`
	NewStock      int           `json:"newStock"`
	Clamped       bool          `json:"clamped"` // true kalau permintaan OUT melebihi sisa stok
}

// Apply memproses batch transaksi berurutan terhadap snapshot barang.
// Aturan:
//   - IN menambah stok, OUT mengurangi, hasil di-clamp minimum 0
//     (batch tidak pernah ditolak karena stok kurang).
//   - Intent dalam batch yang menunjuk barang sama saling menumpuk
//     (fold berurutan, bukan delta independen dari snapshot awal).
//   - LastUpdated barang mengikuti tanggal transaksi.
//
// Slice barang yang dikembalikan adalah salinan; elemen yang tidak
// tersentuh dibagikan apa adanya.
func Apply(items []models.InventoryItem, batch []models.StockTransaction) ([]models.InventoryItem, []Outcome) {
	updated := make([]models.InventoryItem, len(items))
	copy(updated, items)

	index := make(map[string]int, len(updated))
	for i, item := range updated {
		index[item.ID] = i
	}

	outcomes := make([]Outcome, 0, len(batch))
	for _, t := range batch {
		idx, ok := index[t.ItemID]
		if !ok {
			outcomes = append(outcomes, Outcome{
				TransactionID: t.ID,
				ItemID:        t.ItemID,
				Status:        OutcomeItemNotFound,
			})
			continue
		}

		delta := t.Quantity
		if t.Type == models.TxOut {
			delta = -t.Quantity
		}

		newStock := updated[idx].Stock + delta
		clamped := newStock < 0
		if clamped {
			newStock = 0
		}

		updated[idx].Stock = newStock
		updated[idx].LastUpdated = t.Date

		outcomes = append(outcomes, Outcome{
			TransactionID: t.ID,
			ItemID:        t.ItemID,
			Status:        OutcomeApplied,
			NewStock:      newStock,
			Clamped:       clamped,
		})
	}

	return updated, outcomes
}

// TouchedItems mengambil barang yang stoknya berubah oleh batch,
// untuk dikirim ke remote store (hanya baris yang tersentuh).
func TouchedItems(items []models.InventoryItem, batch []models.StockTransaction) []models.InventoryItem {
	wanted := make(map[string]bool, len(batch))
	for _, t := range batch {
		wanted[t.ItemID] = true
	}

	touched := make([]models.InventoryItem, 0, len(wanted))
	for _, item := range items {
		if wanted[item.ID] {
			touched = append(touched, item)
		}
	}
	return touched
}
