package models

type TxType string

const (
	TxIn  TxType = "IN"
	TxOut TxType = "OUT"
)

type Room string

const (
	RoomKasir        Room = "Ruang Kasir"
	RoomProses       Room = "Ruang Proses"
	RoomPhlebotomist Room = "Ruang Phlebotomist"
	RoomRadiologi    Room = "Ruang Radiologi"
	RoomAdmin        Room = "Ruang Admin"
	RoomAdminKeu     Room = "Ruang Admin Keuangan"
	RoomBM           Room = "Ruang BM"
	RoomOB           Room = "Ruang OB"
	RoomGudang       Room = "Gudang Maxima Palu"
)

func Rooms() []Room {
	return []Room{
		RoomKasir, RoomProses, RoomPhlebotomist, RoomRadiologi,
		RoomAdmin, RoomAdminKeu, RoomBM, RoomOB, RoomGudang,
	}
}

func ValidRoom(r Room) bool {
	for _, room := range Rooms() {
		if r == room {
			return true
		}
	}
	return false
}

// StockTransaction: catatan pergerakan stok, append-only.
// Nama dan LOT disalin dari barang saat transaksi dibuat (denormalisasi),
// jadi riwayat tetap utuh walau master barang diubah atau dihapus.
type StockTransaction struct {
	ID        string   `json:"id"`
	ItemID    string   `json:"itemId"`
	ItemName  string   `json:"itemName"`
	LotNumber string   `json:"lotNumber"`
	Type      TxType   `json:"type"`
	Quantity  int      `json:"quantity"`
	Unit      UnitType `json:"unit"`
	Date      string   `json:"date"` // "2006-01-02"

	// IN
	Supplier string `json:"supplier,omitempty"`

	// OUT
	Destination Room   `json:"destination,omitempty"`
	Requester   string `json:"requester,omitempty"`
}

func (t StockTransaction) GetID() string { return t.ID }
