// Package remote adalah adaptor tipis ke table store jaringan (Postgres).
// Baca massal per tabel, upsert per baris berdasar id, hapus berdasar id.
// Tidak ada retry: error dikembalikan apa adanya ke caller, yang menurut
// kontraknya hanya mencatat log tanpa membatalkan perubahan lokal.
package remote

import (
	"fmt"
	"log"

	"gudanglab-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type Gateway struct {
	db *gorm.DB
}

// Init membuka koneksi dan menyiapkan keempat tabel.
func Init(dsn string) (*Gateway, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("remote store tidak bisa dihubungi: %w", err)
	}

	if err := db.AutoMigrate(&ItemRow{}, &UserRow{}, &SupplierRow{}, &TransactionRow{}); err != nil {
		return nil, fmt.Errorf("AutoMigrate gagal: %w", err)
	}

	log.Println("Koneksi remote store siap")
	return &Gateway{db: db}, nil
}

func (g *Gateway) FetchItems() ([]models.InventoryItem, error) {
	var rows []ItemRow
	if err := g.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("baca tabel items gagal: %w", err)
	}
	items := make([]models.InventoryItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, rowToItem(r))
	}
	return items, nil
}

func (g *Gateway) FetchUsers() ([]models.UserAccount, error) {
	var rows []UserRow
	if err := g.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("baca tabel users gagal: %w", err)
	}
	users := make([]models.UserAccount, 0, len(rows))
	for _, r := range rows {
		users = append(users, rowToUser(r))
	}
	return users, nil
}

func (g *Gateway) FetchSuppliers() ([]models.Supplier, error) {
	var rows []SupplierRow
	if err := g.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("baca tabel suppliers gagal: %w", err)
	}
	suppliers := make([]models.Supplier, 0, len(rows))
	for _, r := range rows {
		suppliers = append(suppliers, rowToSupplier(r))
	}
	return suppliers, nil
}

// FetchTransactions membaca maksimal limit baris, terbaru dulu.
func (g *Gateway) FetchTransactions(limit int) ([]models.StockTransaction, error) {
	var rows []TransactionRow
	if err := g.db.Order("date DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("baca tabel transactions gagal: %w", err)
	}
	txs := make([]models.StockTransaction, 0, len(rows))
	for _, r := range rows {
		txs = append(txs, rowToTx(r))
	}
	return txs, nil
}

// upsertRows: insert-or-update berdasar id, satu atau banyak baris.
func (g *Gateway) upsertRows(rows any) error {
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(rows).Error
}

func (g *Gateway) UpsertItems(items []models.InventoryItem) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([]ItemRow, 0, len(items))
	for _, i := range items {
		rows = append(rows, itemToRow(i))
	}
	if err := g.upsertRows(&rows); err != nil {
		return fmt.Errorf("upsert items gagal: %w", err)
	}
	return nil
}

func (g *Gateway) UpsertUsers(users []models.UserAccount) error {
	if len(users) == 0 {
		return nil
	}
	rows := make([]UserRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, userToRow(u))
	}
	if err := g.upsertRows(&rows); err != nil {
		return fmt.Errorf("upsert users gagal: %w", err)
	}
	return nil
}

func (g *Gateway) UpsertSuppliers(suppliers []models.Supplier) error {
	if len(suppliers) == 0 {
		return nil
	}
	rows := make([]SupplierRow, 0, len(suppliers))
	for _, s := range suppliers {
		rows = append(rows, supplierToRow(s))
	}
	if err := g.upsertRows(&rows); err != nil {
		return fmt.Errorf("upsert suppliers gagal: %w", err)
	}
	return nil
}

func (g *Gateway) UpsertTransactions(txs []models.StockTransaction) error {
	if len(txs) == 0 {
		return nil
	}
	rows := make([]TransactionRow, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, txToRow(t))
	}
	if err := g.upsertRows(&rows); err != nil {
		return fmt.Errorf("upsert transactions gagal: %w", err)
	}
	return nil
}

func (g *Gateway) DeleteItem(id string) error {
	if err := g.db.Delete(&ItemRow{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("hapus item %s gagal: %w", id, err)
	}
	return nil
}

func (g *Gateway) DeleteUser(id string) error {
	if err := g.db.Delete(&UserRow{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("hapus user %s gagal: %w", id, err)
	}
	return nil
}

func (g *Gateway) DeleteSupplier(id string) error {
	if err := g.db.Delete(&SupplierRow{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("hapus supplier %s gagal: %w", id, err)
	}
	return nil
}
