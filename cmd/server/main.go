package main

import (
	"context"
	"log"
	"strings"

	"gudanglab-backend/internal/advisory"
	"gudanglab-backend/internal/auth"
	"gudanglab-backend/internal/cache"
	"gudanglab-backend/internal/config"
	"gudanglab-backend/internal/dashboard"
	"gudanglab-backend/internal/inventory"
	"gudanglab-backend/internal/models"
	"gudanglab-backend/internal/remote"
	"gudanglab-backend/internal/report"
	"gudanglab-backend/internal/state"
	"gudanglab-backend/internal/supplier"
	"gudanglab-backend/internal/syncer"
	"gudanglab-backend/internal/system"
	"gudanglab-backend/internal/users"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()

	localCache, err := cache.Open(cfg.CacheDir)
	if err != nil {
		log.Fatal(err)
	}
	defer localCache.Close()

	// Remote store opsional; gagal konek = jalan mode offline dengan
	// data cache, bukan mati.
	var remotePush state.Remote
	var remoteFetch syncer.Fetcher
	if cfg.DatabaseDSN != "" {
		gw, err := remote.Init(cfg.DatabaseDSN)
		if err != nil {
			log.Println("[WARN] Remote store tidak terjangkau, jalan mode offline:", err)
		} else {
			remotePush = gw
			remoteFetch = gw
		}
	}

	store := state.New(localCache, remotePush)
	loadFromCache(store, localCache)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scheduler := syncer.New(store, remoteFetch, cfg.SyncInterval)
	go scheduler.Run(ctx)

	ai := advisory.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Kesalahan server tak terduga",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/login", auth.LoginHandler(cfg, store, localCache))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler(store, localCache))
	protected.Post("/auth/logout", auth.LogoutHandler(localCache))

	// Master barang
	protected.Get("/items", inventory.ListItemsHandler(store))
	protected.Post("/items", inventory.CreateItemHandler(store))
	protected.Put("/items/:id", inventory.UpdateItemHandler(store))
	protected.Delete("/items/:id", inventory.DeleteItemHandler(store))
	protected.Get("/items/:id/label", report.ItemLabelHandler(store))

	// Transaksi stok
	protected.Post("/transactions/inbound", inventory.InboundHandler(store))
	protected.Post("/transactions/outbound", inventory.OutboundHandler(store))
	protected.Get("/transactions", inventory.ListTransactionsHandler(store))

	// Peringatan stok & expired
	protected.Get("/alerts", inventory.AlertsHandler(store))

	// Supplier
	protected.Get("/suppliers", supplier.ListHandler(store))
	protected.Post("/suppliers", supplier.CreateHandler(store))
	protected.Put("/suppliers/:id", supplier.UpdateHandler(store))
	protected.Delete("/suppliers/:id", supplier.DeleteHandler(store))

	// Dashboard
	protected.Get("/dashboard", dashboard.Handler(store))

	// Laporan & dokumen
	protected.Get("/reports", report.RowsHandler(store, ai))
	protected.Get("/reports/export", report.ExportHandler(store, ai))
	protected.Post("/reports/outbound-document", report.OutboundDocumentHandler(store))

	// Status koneksi & sync manual
	protected.Get("/system/status", system.StatusHandler(store))
	protected.Post("/system/sync", system.SyncNowHandler(store, scheduler))

	// Manajemen user, khusus admin
	adminRoutes := protected.Group("/users")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))
	adminRoutes.Get("/", users.ListHandler(store))
	adminRoutes.Post("/", users.CreateHandler(store))
	adminRoutes.Put("/:id", users.UpdateHandler(store))
	adminRoutes.Delete("/:id", users.DeleteHandler(store))

	log.Println("Server jalan di port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}

// loadFromCache mengisi store dari snapshot terakhir supaya aplikasi
// langsung bisa dipakai sebelum sync pertama selesai.
func loadFromCache(store *state.Store, c *cache.Cache) {
	items, err := c.LoadItems()
	if err != nil {
		log.Println("[WARN] Cache items gagal dibaca:", err)
	}
	userList, err := c.LoadUsers()
	if err != nil {
		log.Println("[WARN] Cache user gagal dibaca:", err)
		userList = models.DefaultUsers()
	}
	suppliers, err := c.LoadSuppliers()
	if err != nil {
		log.Println("[WARN] Cache supplier gagal dibaca:", err)
	}
	txs, err := c.LoadTransactions()
	if err != nil {
		log.Println("[WARN] Cache transaksi gagal dibaca:", err)
	}

	store.LoadInitial(items, userList, suppliers, txs)
	log.Printf("State awal dari cache: %d barang, %d user, %d supplier, %d transaksi",
		len(items), len(userList), len(suppliers), len(txs))
}
