// Package syncer menjaga state lokal tetap konsisten (eventually) dengan
// remote store: sekali saat start, berkala, dan saat diminta lewat
// "sync now". Kebijakannya timpa penuh dengan remote sebagai sumber;
// perubahan lokal yang push-nya belum sampai bisa tertimpa kalau berasal
// dari sesi browser lain — batasan yang diterima untuk pemakaian satu
// gudang satu operator.
package syncer

import (
	"context"
	"log"
	"time"

	"gudanglab-backend/internal/models"
	"gudanglab-backend/internal/state"
)

// RecentTxLimit: jumlah maksimal transaksi yang ditarik per rekonsiliasi.
const RecentTxLimit = 200

// Fetcher: sisi baca gateway remote.
type Fetcher interface {
	FetchItems() ([]models.InventoryItem, error)
	FetchUsers() ([]models.UserAccount, error)
	FetchSuppliers() ([]models.Supplier, error)
	FetchTransactions(limit int) ([]models.StockTransaction, error)
}

type Scheduler struct {
	store    *state.Store
	remote   Fetcher // nil = remote tidak dikonfigurasi
	interval time.Duration
}

func New(store *state.Store, remote Fetcher, interval time.Duration) *Scheduler {
	return &Scheduler{store: store, remote: remote, interval: interval}
}

// Run: sync pertama langsung, lalu tiap interval sampai ctx selesai.
// Interval tetap berdetak walau siklus sebelumnya belum kelar; tiap
// siklus independen dan idempoten (timpa penuh) jadi tumpang tindih
// tidak berbahaya.
func (s *Scheduler) Run(ctx context.Context) {
	if s.remote == nil {
		log.Println("Remote store tidak dikonfigurasi, jalan mode offline")
		return
	}

	s.SyncNow()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.SyncNow()
		}
	}
}

// SyncNow menarik keempat koleksi dan menimpa state + cache. Satu tabel
// gagal = seluruh siklus batal: state dibiarkan utuh, status jadi ERROR,
// aplikasi lanjut dengan data cache. Push lokal yang masih jalan ditunggu
// dulu supaya hasil tulisnya sendiri tidak tertimpa bacaan basi; race
// antar sesi terpisah tetap ada (last writer wins di remote).
func (s *Scheduler) SyncNow() error {
	if s.remote == nil {
		return nil
	}

	s.store.WaitPending()

	items, err := s.remote.FetchItems()
	if err != nil {
		return s.degrade(err)
	}
	users, err := s.remote.FetchUsers()
	if err != nil {
		return s.degrade(err)
	}
	suppliers, err := s.remote.FetchSuppliers()
	if err != nil {
		return s.degrade(err)
	}
	txs, err := s.remote.FetchTransactions(RecentTxLimit)
	if err != nil {
		return s.degrade(err)
	}

	s.store.ReplaceAll(items, users, suppliers, txs)
	return nil
}

func (s *Scheduler) degrade(err error) error {
	log.Println("Rekonsiliasi gagal:", err)
	s.store.SetStatus(state.StatusError)
	return err
}
