package syncer

import (
	"errors"
	"testing"

	"gudanglab-backend/internal/models"
	"gudanglab-backend/internal/state"
)

type mockCache struct{}

func (mockCache) SaveItems([]models.InventoryItem) error         { return nil }
func (mockCache) SaveUsers([]models.UserAccount) error           { return nil }
func (mockCache) SaveSuppliers([]models.Supplier) error          { return nil }
func (mockCache) SaveTransactions([]models.StockTransaction) error { return nil }

type mockFetcher struct {
	items     []models.InventoryItem
	users     []models.UserAccount
	suppliers []models.Supplier
	txs       []models.StockTransaction
	failTable string
	gotLimit  int
}

func (m *mockFetcher) FetchItems() ([]models.InventoryItem, error) {
	if m.failTable == "items" {
		return nil, errors.New("timeout")
	}
	return m.items, nil
}

func (m *mockFetcher) FetchUsers() ([]models.UserAccount, error) {
	if m.failTable == "users" {
		return nil, errors.New("timeout")
	}
	return m.users, nil
}

func (m *mockFetcher) FetchSuppliers() ([]models.Supplier, error) {
	if m.failTable == "suppliers" {
		return nil, errors.New("timeout")
	}
	return m.suppliers, nil
}

func (m *mockFetcher) FetchTransactions(limit int) ([]models.StockTransaction, error) {
	m.gotLimit = limit
	if m.failTable == "transactions" {
		return nil, errors.New("timeout")
	}
	return m.txs, nil
}

func seededStore() *state.Store {
	s := state.New(mockCache{}, nil)
	s.LoadInitial(
		[]models.InventoryItem{{ID: "lokal", Name: "Barang Lokal", Stock: 1}},
		models.DefaultUsers(),
		nil,
		nil,
	)
	return s
}

func TestSyncNowOverwritesState(t *testing.T) {
	store := seededStore()
	remote := &mockFetcher{
		items: []models.InventoryItem{{ID: "r1", Name: "Dari Remote", Stock: 9}},
		users: []models.UserAccount{{ID: "u2", Username: "dewi", Password: "pw", Role: models.RoleStaff, Room: models.RoomKasir}},
		txs:   []models.StockTransaction{{ID: "t1", ItemID: "r1", Type: models.TxIn, Quantity: 9, Date: "2026-01-01"}},
	}

	sched := New(store, remote, 0)
	if err := sched.SyncNow(); err != nil {
		t.Fatalf("SyncNow: %v", err)
	}

	items := store.Items()
	if len(items) != 1 || items[0].ID != "r1" {
		t.Errorf("state harus ditimpa penuh dengan data remote: %v", items)
	}
	if remote.gotLimit != RecentTxLimit {
		t.Errorf("limit transaksi = %d, mau %d", remote.gotLimit, RecentTxLimit)
	}

	status, _ := store.Status()
	if status != state.StatusConnected {
		t.Errorf("status = %s, mau CONNECTED", status)
	}
}

func TestSyncNowEmptyUsersFallback(t *testing.T) {
	store := seededStore()
	remote := &mockFetcher{users: []models.UserAccount{}}

	if err := New(store, remote, 0).SyncNow(); err != nil {
		t.Fatalf("SyncNow: %v", err)
	}

	users := store.Users()
	if len(users) == 0 {
		t.Fatal("user kosong dari remote harus diganti akun bawaan, bukan pool login kosong")
	}
	if users[0].Username != "admin" {
		t.Errorf("fallback = %v", users[0])
	}
}

func TestSyncNowFailureLeavesStateUntouched(t *testing.T) {
	tables := []string{"items", "users", "suppliers", "transactions"}
	for _, table := range tables {
		t.Run(table, func(t *testing.T) {
			store := seededStore()
			remote := &mockFetcher{
				items:     []models.InventoryItem{{ID: "r1"}},
				failTable: table,
			}

			if err := New(store, remote, 0).SyncNow(); err == nil {
				t.Fatal("SyncNow harus mengembalikan error")
			}

			items := store.Items()
			if len(items) != 1 || items[0].ID != "lokal" {
				t.Errorf("state berubah padahal rekonsiliasi gagal: %v", items)
			}

			status, _ := store.Status()
			if status != state.StatusError {
				t.Errorf("status = %s, mau ERROR", status)
			}
		})
	}
}

func TestSyncNowNilRemote(t *testing.T) {
	store := seededStore()
	if err := New(store, nil, 0).SyncNow(); err != nil {
		t.Errorf("mode offline: SyncNow harus no-op tanpa error, dapat %v", err)
	}
}
