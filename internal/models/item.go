package models

type UnitType string

const (
	UnitKarton UnitType = "Karton"
	UnitBox    UnitType = "Box"
	UnitPcs    UnitType = "Pcs"
	UnitKit    UnitType = "Kit"
	UnitPack   UnitType = "Pack"
	UnitBotol  UnitType = "Botol"
)

// ValidUnit: satuan harus salah satu dari daftar di atas
func ValidUnit(u UnitType) bool {
	switch u {
	case UnitKarton, UnitBox, UnitPcs, UnitKit, UnitPack, UnitBotol:
		return true
	}
	return false
}

// InventoryItem: satu SKU + nomor LOT di gudang.
// Stock tidak pernah negatif; mutasi stok hanya lewat ledger.
type InventoryItem struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	SKU            string   `json:"sku"`
	LotNumber      string   `json:"lotNumber"`
	Unit           UnitType `json:"unit"`
	Stock          int      `json:"stock"`
	MinStock       int      `json:"minStock"`
	ExpiryDate     string   `json:"expiryDate"`  // "2006-01-02"
	LastUpdated    string   `json:"lastUpdated"` // "2006-01-02"
	ManualOrderQty int      `json:"manualOrderQty,omitempty"`
}

func (i InventoryItem) GetID() string { return i.ID }

type Supplier struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

func (s Supplier) GetID() string { return s.ID }
