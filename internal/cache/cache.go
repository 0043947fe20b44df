// Package cache menyimpan snapshot terakhir tiap koleksi di disk lokal
// (Badger), supaya aplikasi tetap bisa jalan saat remote store tidak
// terjangkau. Key diberi sufiks versi skema agar data berbentuk lama
// tidak ikut terbaca setelah migrasi.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"

	"gudanglab-backend/internal/models"

	"github.com/dgraph-io/badger/v4"
)

const (
	KeyItems        = "gudang_items_v5"
	KeyUsers        = "gudang_users_v5"
	KeySuppliers    = "gudang_suppliers_v5"
	KeyTransactions = "gudang_transactions_v5"
	KeySession      = "gudang_session"
)

var ErrNotFound = errors.New("key tidak ada di cache")

type Cache struct {
	db *badger.DB
}

// Open membuka cache di direktori yang diberikan. Direktori kosong
// membuka mode in-memory (dipakai di test).
func Open(dir string) (*Cache, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("cache lokal tidak bisa dibuka: %w", err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// put: serialisasi seluruh koleksi sekaligus, sinkron.
func (c *Cache) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

func (c *Cache) get(key string, v any) error {
	return c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}

func (c *Cache) SaveItems(items []models.InventoryItem) error {
	return c.put(KeyItems, items)
}

// LoadItems: key yang belum ada dibaca sebagai koleksi kosong.
func (c *Cache) LoadItems() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := c.get(KeyItems, &items); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.InventoryItem{}, nil
		}
		return nil, err
	}
	return items, nil
}

func (c *Cache) SaveUsers(users []models.UserAccount) error {
	return c.put(KeyUsers, users)
}

// LoadUsers: kalau key belum ada atau isinya kosong, kembalikan akun
// bawaan supaya selalu ada yang bisa login.
func (c *Cache) LoadUsers() ([]models.UserAccount, error) {
	var users []models.UserAccount
	if err := c.get(KeyUsers, &users); err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.DefaultUsers(), nil
		}
		return nil, err
	}
	if len(users) == 0 {
		return models.DefaultUsers(), nil
	}
	return users, nil
}

func (c *Cache) SaveSuppliers(suppliers []models.Supplier) error {
	return c.put(KeySuppliers, suppliers)
}

func (c *Cache) LoadSuppliers() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := c.get(KeySuppliers, &suppliers); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.Supplier{}, nil
		}
		return nil, err
	}
	return suppliers, nil
}

func (c *Cache) SaveTransactions(txs []models.StockTransaction) error {
	return c.put(KeyTransactions, txs)
}

func (c *Cache) LoadTransactions() ([]models.StockTransaction, error) {
	var txs []models.StockTransaction
	if err := c.get(KeyTransactions, &txs); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.StockTransaction{}, nil
		}
		return nil, err
	}
	return txs, nil
}

// SaveSession menyimpan user yang sedang login; dipulihkan saat startup.
func (c *Cache) SaveSession(user models.UserAccount) error {
	return c.put(KeySession, user)
}

func (c *Cache) LoadSession() (*models.UserAccount, error) {
	var user models.UserAccount
	if err := c.get(KeySession, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Cache) ClearSession() error {
	return c.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(KeySession))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}
