package remote

import "gudanglab-backend/internal/models"

// Bentuk baris di remote store. Semua nama kolom huruf kecil; paket ini
// satu-satunya titik terjemahan antara model in-memory dan skema remote.

type ItemRow struct {
	ID             string `gorm:"column:id;primaryKey"`
	Name           string `gorm:"column:name"`
	Category       string `gorm:"column:category"`
	SKU            string `gorm:"column:sku"`
	LotNumber      string `gorm:"column:lotnumber"`
	Unit           string `gorm:"column:unit"`
	Stock          int    `gorm:"column:stock"`
	MinStock       int    `gorm:"column:minstock"`
	ExpiryDate     string `gorm:"column:expirydate"`
	LastUpdated    string `gorm:"column:lastupdated"`
	ManualOrderQty int    `gorm:"column:manualorderqty"`
}

func (ItemRow) TableName() string { return "items" }

type UserRow struct {
	ID       string `gorm:"column:id;primaryKey"`
	Username string `gorm:"column:username"`
	Password string `gorm:"column:password"`
	FullName string `gorm:"column:fullname"`
	Role     string `gorm:"column:role"`
	Room     string `gorm:"column:room"`
}

func (UserRow) TableName() string { return "users" }

type SupplierRow struct {
	ID      string `gorm:"column:id;primaryKey"`
	Name    string `gorm:"column:name"`
	Contact string `gorm:"column:contact"`
	Address string `gorm:"column:address"`
}

func (SupplierRow) TableName() string { return "suppliers" }

type TransactionRow struct {
	ID          string `gorm:"column:id;primaryKey"`
	ItemID      string `gorm:"column:itemid"`
	ItemName    string `gorm:"column:itemname"`
	LotNumber   string `gorm:"column:lotnumber"`
	Type        string `gorm:"column:type"`
	Quantity    int    `gorm:"column:quantity"`
	Unit        string `gorm:"column:unit"`
	Date        string `gorm:"column:date;index"`
	Supplier    string `gorm:"column:supplier"`
	Destination string `gorm:"column:destination"`
	Requester   string `gorm:"column:requester"`
}

func (TransactionRow) TableName() string { return "transactions" }

func itemToRow(i models.InventoryItem) ItemRow {
	return ItemRow{
		ID:             i.ID,
		Name:           i.Name,
		Category:       i.Category,
		SKU:            i.SKU,
		LotNumber:      i.LotNumber,
		Unit:           string(i.Unit),
		Stock:          i.Stock,
		MinStock:       i.MinStock,
		ExpiryDate:     i.ExpiryDate,
		LastUpdated:    i.LastUpdated,
		ManualOrderQty: i.ManualOrderQty,
	}
}

func rowToItem(r ItemRow) models.InventoryItem {
	return models.InventoryItem{
		ID:             r.ID,
		Name:           r.Name,
		Category:       r.Category,
		SKU:            r.SKU,
		LotNumber:      r.LotNumber,
		Unit:           models.UnitType(r.Unit),
		Stock:          r.Stock,
		MinStock:       r.MinStock,
		ExpiryDate:     r.ExpiryDate,
		LastUpdated:    r.LastUpdated,
		ManualOrderQty: r.ManualOrderQty,
	}
}

func userToRow(u models.UserAccount) UserRow {
	return UserRow{
		ID:       u.ID,
		Username: u.Username,
		Password: u.Password,
		FullName: u.FullName,
		Role:     string(u.Role),
		Room:     string(u.Room),
	}
}

func rowToUser(r UserRow) models.UserAccount {
	return models.UserAccount{
		ID:       r.ID,
		Username: r.Username,
		Password: r.Password,
		FullName: r.FullName,
		Role:     models.UserRole(r.Role),
		Room:     models.Room(r.Room),
	}
}

func supplierToRow(s models.Supplier) SupplierRow {
	return SupplierRow{ID: s.ID, Name: s.Name, Contact: s.Contact, Address: s.Address}
}

func rowToSupplier(r SupplierRow) models.Supplier {
	return models.Supplier{ID: r.ID, Name: r.Name, Contact: r.Contact, Address: r.Address}
}

func txToRow(t models.StockTransaction) TransactionRow {
	return TransactionRow{
		ID:          t.ID,
		ItemID:      t.ItemID,
		ItemName:    t.ItemName,
		LotNumber:   t.LotNumber,
		Type:        string(t.Type),
		Quantity:    t.Quantity,
		Unit:        string(t.Unit),
		Date:        t.Date,
		Supplier:    t.Supplier,
		Destination: string(t.Destination),
		Requester:   t.Requester,
	}
}

func rowToTx(r TransactionRow) models.StockTransaction {
	return models.StockTransaction{
		ID:          r.ID,
		ItemID:      r.ItemID,
		ItemName:    r.ItemName,
		LotNumber:   r.LotNumber,
		Type:        models.TxType(r.Type),
		Quantity:    r.Quantity,
		Unit:        models.UnitType(r.Unit),
		Date:        r.Date,
		Supplier:    r.Supplier,
		Destination: models.Room(r.Destination),
		Requester:   r.Requester,
	}
}
