// Package state memegang seluruh koleksi aplikasi di memori dan menjadi
// satu-satunya penulisnya. Pola tulisnya optimistis-lokal: mutasi diterapkan
// ke memori, cache lokal ditulis sinkron, lalu remote store didorong
// asinkron; kegagalan remote hanya dicatat dan tidak pernah membatalkan
// perubahan lokal.
package state

import (
	"log"
	"strings"
	"sync"
	"time"

	"gudanglab-backend/internal/ledger"
	"gudanglab-backend/internal/models"
)

type Status string

const (
	StatusDisconnected Status = "DISCONNECTED"
	StatusConnected    Status = "CONNECTED"
	StatusError        Status = "ERROR"
)

// Cacher: bagian dari cache lokal yang dibutuhkan store.
type Cacher interface {
	SaveItems([]models.InventoryItem) error
	SaveUsers([]models.UserAccount) error
	SaveSuppliers([]models.Supplier) error
	SaveTransactions([]models.StockTransaction) error
}

// Remote: bagian dari gateway remote yang dibutuhkan store.
type Remote interface {
	UpsertItems([]models.InventoryItem) error
	UpsertUsers([]models.UserAccount) error
	UpsertSuppliers([]models.Supplier) error
	UpsertTransactions([]models.StockTransaction) error
	DeleteItem(id string) error
	DeleteUser(id string) error
	DeleteSupplier(id string) error
}

type Store struct {
	mu           sync.RWMutex
	items        []models.InventoryItem
	users        []models.UserAccount
	suppliers    []models.Supplier
	transactions []models.StockTransaction

	cache  Cacher
	remote Remote // nil = mode offline, tidak ada push

	status   Status
	lastSync time.Time

	// push remote yang masih jalan; scheduler menunggu ini
	// sebelum menimpa state dengan hasil rekonsiliasi.
	pending sync.WaitGroup
}

// New membuat store kosong. remote boleh nil (remote store tidak
// dikonfigurasi); status awal DISCONNECTED sampai sync pertama berhasil.
func New(cache Cacher, remote Remote) *Store {
	return &Store{
		cache:  cache,
		remote: remote,
		status: StatusDisconnected,
	}
}

// LoadInitial mengisi store dari snapshot cache saat startup.
func (s *Store) LoadInitial(items []models.InventoryItem, users []models.UserAccount, suppliers []models.Supplier, txs []models.StockTransaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.users = users
	s.suppliers = suppliers
	s.transactions = txs
}

// ApplyTransactions menjalankan satu batch transaksi stok: ledger murni
// dulu, lalu barang + riwayat ditulis ke cache, lalu baris tersentuh dan
// transaksi baru didorong ke remote di belakang. Riwayat di-prepend
// (terbaru dulu).
func (s *Store) ApplyTransactions(batch []models.StockTransaction) []ledger.Outcome {
	s.mu.Lock()

	updated, outcomes := ledger.Apply(s.items, batch)
	s.items = updated

	newLog := make([]models.StockTransaction, 0, len(batch)+len(s.transactions))
	newLog = append(newLog, batch...)
	newLog = append(newLog, s.transactions...)
	s.transactions = newLog

	if err := s.cache.SaveItems(s.items); err != nil {
		log.Println("Cache items gagal ditulis:", err)
	}
	if err := s.cache.SaveTransactions(s.transactions); err != nil {
		log.Println("Cache transaksi gagal ditulis:", err)
	}

	touched := ledger.TouchedItems(updated, batch)
	s.mu.Unlock()

	s.pushAsync(func(r Remote) error {
		if err := r.UpsertItems(touched); err != nil {
			return err
		}
		return r.UpsertTransactions(batch)
	})

	return outcomes
}

// UpsertItem menerapkan create/update/delete barang. Barang baru mulai
// dengan stok 0 (diatur handler); mutasi stok bukan urusan fungsi ini.
func (s *Store) UpsertItem(item models.InventoryItem, isDelete bool) {
	s.mu.Lock()
	s.items = upsertByID(s.items, item, isDelete)
	if err := s.cache.SaveItems(s.items); err != nil {
		log.Println("Cache items gagal ditulis:", err)
	}
	s.mu.Unlock()

	s.pushAsync(func(r Remote) error {
		if isDelete {
			return r.DeleteItem(item.ID)
		}
		return r.UpsertItems([]models.InventoryItem{item})
	})
}

func (s *Store) UpsertSupplier(supplier models.Supplier, isDelete bool) {
	s.mu.Lock()
	s.suppliers = upsertByID(s.suppliers, supplier, isDelete)
	if err := s.cache.SaveSuppliers(s.suppliers); err != nil {
		log.Println("Cache supplier gagal ditulis:", err)
	}
	s.mu.Unlock()

	s.pushAsync(func(r Remote) error {
		if isDelete {
			return r.DeleteSupplier(supplier.ID)
		}
		return r.UpsertSuppliers([]models.Supplier{supplier})
	})
}

func (s *Store) UpsertUser(user models.UserAccount, isDelete bool) {
	s.mu.Lock()
	s.users = upsertByID(s.users, user, isDelete)
	if err := s.cache.SaveUsers(s.users); err != nil {
		log.Println("Cache user gagal ditulis:", err)
	}
	s.mu.Unlock()

	s.pushAsync(func(r Remote) error {
		if isDelete {
			return r.DeleteUser(user.ID)
		}
		return r.UpsertUsers([]models.UserAccount{user})
	})
}

// pushAsync: dorong ke remote tanpa memblokir caller. Gagal = catat log,
// state lokal tidak di-rollback; drift dibereskan rekonsiliasi berikutnya.
func (s *Store) pushAsync(fn func(Remote) error) {
	if s.remote == nil {
		return
	}
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := fn(s.remote); err != nil {
			log.Println("Sync ke remote gagal:", err)
		}
	}()
}

// WaitPending menunggu semua push remote yang sedang jalan selesai.
func (s *Store) WaitPending() {
	s.pending.Wait()
}

// ReplaceAll menimpa seluruh koleksi dengan hasil rekonsiliasi (bukan
// merge) dan menulis ulang cache. Set user kosong diganti akun bawaan
// supaya selalu ada yang bisa login.
func (s *Store) ReplaceAll(items []models.InventoryItem, users []models.UserAccount, suppliers []models.Supplier, txs []models.StockTransaction) {
	if len(users) == 0 {
		users = models.DefaultUsers()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = items
	s.users = users
	s.suppliers = suppliers
	s.transactions = txs
	s.status = StatusConnected
	s.lastSync = time.Now()

	if err := s.cache.SaveItems(items); err != nil {
		log.Println("Cache items gagal ditulis:", err)
	}
	if err := s.cache.SaveUsers(users); err != nil {
		log.Println("Cache user gagal ditulis:", err)
	}
	if err := s.cache.SaveSuppliers(suppliers); err != nil {
		log.Println("Cache supplier gagal ditulis:", err)
	}
	if err := s.cache.SaveTransactions(txs); err != nil {
		log.Println("Cache transaksi gagal ditulis:", err)
	}
}

func (s *Store) SetStatus(status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

func (s *Store) Status() (Status, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, s.lastSync
}

func (s *Store) Items() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.InventoryItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Users() []models.UserAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.UserAccount, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) Suppliers() []models.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Supplier, len(s.suppliers))
	copy(out, s.suppliers)
	return out
}

func (s *Store) Transactions() []models.StockTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.StockTransaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *Store) FindItem(id string) (models.InventoryItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.InventoryItem{}, false
}

func (s *Store) FindSupplier(id string) (models.Supplier, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sup := range s.suppliers {
		if sup.ID == id {
			return sup, true
		}
	}
	return models.Supplier{}, false
}

func (s *Store) FindUser(id string) (models.UserAccount, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.UserAccount{}, false
}

// FindUserByUsername: pencarian login, username tidak peka kapital.
func (s *Store) FindUserByUsername(username string) (models.UserAccount, bool) {
	want := strings.ToLower(strings.TrimSpace(username))
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.ToLower(u.Username) == want {
			return u, true
		}
	}
	return models.UserAccount{}, false
}
