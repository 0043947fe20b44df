package state

import (
	"errors"
	"sync"
	"testing"

	"gudanglab-backend/internal/models"
)

// --- Mock cache & remote ---

type mockCache struct {
	items        []models.InventoryItem
	users        []models.UserAccount
	suppliers    []models.Supplier
	transactions []models.StockTransaction
	failAll      bool
}

func (m *mockCache) SaveItems(items []models.InventoryItem) error {
	if m.failAll {
		return errors.New("disk penuh")
	}
	m.items = items
	return nil
}

func (m *mockCache) SaveUsers(users []models.UserAccount) error {
	if m.failAll {
		return errors.New("disk penuh")
	}
	m.users = users
	return nil
}

func (m *mockCache) SaveSuppliers(suppliers []models.Supplier) error {
	if m.failAll {
		return errors.New("disk penuh")
	}
	m.suppliers = suppliers
	return nil
}

func (m *mockCache) SaveTransactions(txs []models.StockTransaction) error {
	if m.failAll {
		return errors.New("disk penuh")
	}
	m.transactions = txs
	return nil
}

type mockRemote struct {
	mu            sync.Mutex
	failAll       bool
	itemUpserts   [][]models.InventoryItem
	txUpserts     [][]models.StockTransaction
	userUpserts   [][]models.UserAccount
	supUpserts    [][]models.Supplier
	deletedItems  []string
	deletedUsers  []string
	deletedSupIDs []string
}

func (m *mockRemote) UpsertItems(items []models.InventoryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return errors.New("jaringan putus")
	}
	m.itemUpserts = append(m.itemUpserts, items)
	return nil
}

func (m *mockRemote) UpsertUsers(users []models.UserAccount) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return errors.New("jaringan putus")
	}
	m.userUpserts = append(m.userUpserts, users)
	return nil
}

func (m *mockRemote) UpsertSuppliers(suppliers []models.Supplier) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return errors.New("jaringan putus")
	}
	m.supUpserts = append(m.supUpserts, suppliers)
	return nil
}

func (m *mockRemote) UpsertTransactions(txs []models.StockTransaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return errors.New("jaringan putus")
	}
	m.txUpserts = append(m.txUpserts, txs)
	return nil
}

func (m *mockRemote) DeleteItem(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return errors.New("jaringan putus")
	}
	m.deletedItems = append(m.deletedItems, id)
	return nil
}

func (m *mockRemote) DeleteUser(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletedUsers = append(m.deletedUsers, id)
	return nil
}

func (m *mockRemote) DeleteSupplier(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletedSupIDs = append(m.deletedSupIDs, id)
	return nil
}

func newTestStore(remote Remote) (*Store, *mockCache) {
	c := &mockCache{}
	s := New(c, remote)
	s.LoadInitial(
		[]models.InventoryItem{
			{ID: "i1", Name: "Tabung EDTA", LotNumber: "L-1", Unit: models.UnitBox, Stock: 10, MinStock: 5},
			{ID: "i2", Name: "Reagen Glukosa", LotNumber: "L-2", Unit: models.UnitKit, Stock: 3, MinStock: 2},
		},
		models.DefaultUsers(),
		[]models.Supplier{{ID: "s1", Name: "PT Medika"}},
		nil,
	)
	return s, c
}

// --- Upsert generik ---

func TestUpsertIdempotent(t *testing.T) {
	s, _ := newTestStore(nil)

	item := models.InventoryItem{ID: "i9", Name: "Spuit 3cc", Unit: models.UnitPcs}
	s.UpsertItem(item, false)
	s.UpsertItem(item, false)

	items := s.Items()
	count := 0
	for _, i := range items {
		if i.ID == "i9" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("upsert dua kali menghasilkan %d entri, mau 1", count)
	}
}

func TestUpsertReplacesInPlace(t *testing.T) {
	s, _ := newTestStore(nil)

	edited := models.InventoryItem{ID: "i1", Name: "Tabung EDTA 3ml", LotNumber: "L-1", Unit: models.UnitBox, Stock: 10, MinStock: 7}
	s.UpsertItem(edited, false)

	items := s.Items()
	if items[0].ID != "i1" || items[0].Name != "Tabung EDTA 3ml" {
		t.Errorf("edit harus mengganti di tempat, urutan stabil; dapat %v", items)
	}
	if items[1].ID != "i2" {
		t.Errorf("elemen lain bergeser: %v", items)
	}
}

func TestDeleteThenUpsertIsFreshInsert(t *testing.T) {
	s, _ := newTestStore(nil)

	s.UpsertItem(models.InventoryItem{ID: "i1"}, true)
	if _, ok := s.FindItem("i1"); ok {
		t.Fatal("i1 masih ada setelah delete")
	}

	fresh := models.InventoryItem{ID: "i1", Name: "Barang Baru", Unit: models.UnitPack}
	s.UpsertItem(fresh, false)

	got, ok := s.FindItem("i1")
	if !ok {
		t.Fatal("i1 tidak ada setelah insert ulang")
	}
	if got != fresh {
		t.Errorf("insert ulang membawa sisa field lama: %v", got)
	}
}

func TestDeleteMissingIsNoop(t *testing.T) {
	s, _ := newTestStore(nil)
	before := len(s.Items())

	s.UpsertItem(models.InventoryItem{ID: "tidak-ada"}, true)

	if got := len(s.Items()); got != before {
		t.Errorf("delete id tak dikenal mengubah koleksi: %d -> %d", before, got)
	}
}

// --- ApplyTransactions ---

func TestApplyTransactionsWritesCacheAndRemote(t *testing.T) {
	r := &mockRemote{}
	s, c := newTestStore(r)

	batch := []models.StockTransaction{
		{ID: "t1", ItemID: "i1", ItemName: "Tabung EDTA", LotNumber: "L-1", Type: models.TxOut, Quantity: 15, Unit: models.UnitBox, Date: "2026-01-05", Destination: models.RoomProses, Requester: "Rina"},
	}

	outcomes := s.ApplyTransactions(batch)
	s.WaitPending()

	// Stok 10 - 15 di-clamp ke 0
	item, _ := s.FindItem("i1")
	if item.Stock != 0 {
		t.Errorf("stok = %d, mau 0", item.Stock)
	}
	if !outcomes[0].Clamped {
		t.Error("outcome harus menandai clamp")
	}

	// Riwayat terbaru dulu, kuantitas asli tetap tercatat
	txs := s.Transactions()
	if len(txs) != 1 || txs[0].Quantity != 15 || txs[0].Type != models.TxOut {
		t.Errorf("riwayat = %v", txs)
	}

	// Cache ditulis sinkron
	if len(c.items) == 0 || len(c.transactions) != 1 {
		t.Error("cache tidak ditulis")
	}

	// Remote menerima barang tersentuh + transaksi baru
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.itemUpserts) != 1 || len(r.itemUpserts[0]) != 1 || r.itemUpserts[0][0].ID != "i1" {
		t.Errorf("push barang tersentuh salah: %v", r.itemUpserts)
	}
	if len(r.txUpserts) != 1 || r.txUpserts[0][0].ID != "t1" {
		t.Errorf("push transaksi salah: %v", r.txUpserts)
	}
}

func TestApplyTransactionsPrependsNewestFirst(t *testing.T) {
	s, _ := newTestStore(nil)

	s.ApplyTransactions([]models.StockTransaction{{ID: "t1", ItemID: "i1", Type: models.TxIn, Quantity: 1, Date: "2026-01-01"}})
	s.ApplyTransactions([]models.StockTransaction{{ID: "t2", ItemID: "i1", Type: models.TxIn, Quantity: 1, Date: "2026-01-02"}})

	txs := s.Transactions()
	if txs[0].ID != "t2" || txs[1].ID != "t1" {
		t.Errorf("riwayat harus terbaru dulu: %v", txs)
	}
}

func TestRemoteFailureDoesNotRollback(t *testing.T) {
	r := &mockRemote{failAll: true}
	s, _ := newTestStore(r)

	s.ApplyTransactions([]models.StockTransaction{{ID: "t1", ItemID: "i1", Type: models.TxIn, Quantity: 5, Date: "2026-01-05"}})
	s.WaitPending()

	item, _ := s.FindItem("i1")
	if item.Stock != 15 {
		t.Errorf("kegagalan remote tidak boleh membatalkan perubahan lokal; stok = %d, mau 15", item.Stock)
	}
	if len(s.Transactions()) != 1 {
		t.Error("riwayat lokal harus tetap tumbuh walau remote gagal")
	}
}

func TestOfflineModeNoPush(t *testing.T) {
	s, _ := newTestStore(nil) // remote nil

	s.ApplyTransactions([]models.StockTransaction{{ID: "t1", ItemID: "i1", Type: models.TxIn, Quantity: 2, Date: "2026-01-05"}})
	s.WaitPending()

	item, _ := s.FindItem("i1")
	if item.Stock != 12 {
		t.Errorf("stok = %d, mau 12", item.Stock)
	}
}

// --- ReplaceAll ---

func TestReplaceAllOverwritesAndRewritesCache(t *testing.T) {
	s, c := newTestStore(nil)

	newItems := []models.InventoryItem{{ID: "x1", Name: "Masker N95", Unit: models.UnitBox, Stock: 50}}
	newUsers := []models.UserAccount{{ID: "u7", Username: "dewi", Password: "pw", Role: models.RoleAdmin, Room: models.RoomAdmin}}

	s.ReplaceAll(newItems, newUsers, nil, nil)

	if got := s.Items(); len(got) != 1 || got[0].ID != "x1" {
		t.Errorf("ReplaceAll harus menimpa penuh, bukan merge: %v", got)
	}
	if len(c.items) != 1 || c.items[0].ID != "x1" {
		t.Error("cache tidak ditulis ulang")
	}

	status, _ := s.Status()
	if status != StatusConnected {
		t.Errorf("status = %s, mau CONNECTED", status)
	}
}

func TestReplaceAllEmptyUsersFallback(t *testing.T) {
	s, _ := newTestStore(nil)

	s.ReplaceAll(nil, []models.UserAccount{}, nil, nil)

	users := s.Users()
	if len(users) == 0 {
		t.Fatal("set user kosong dari remote harus diganti akun bawaan")
	}
	if users[0].Username != "admin" {
		t.Errorf("fallback = %v, mau akun admin bawaan", users[0])
	}
}

func TestFindUserByUsernameCaseInsensitive(t *testing.T) {
	s, _ := newTestStore(nil)

	if _, ok := s.FindUserByUsername("ADMIN"); !ok {
		t.Error("lookup username harus tidak peka kapital")
	}
	if _, ok := s.FindUserByUsername("  admin "); !ok {
		t.Error("lookup username harus mengabaikan spasi pinggir")
	}
	if _, ok := s.FindUserByUsername("tidakada"); ok {
		t.Error("username tak dikenal harus gagal")
	}
}
