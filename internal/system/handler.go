package system

import (
	"gudanglab-backend/internal/state"
	"gudanglab-backend/internal/syncer"

	"github.com/gofiber/fiber/v2"
)

// GET /api/system/status
func StatusHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, lastSync := store.Status()
		resp := fiber.Map{
			"status": status,
			"counts": fiber.Map{
				"items":        len(store.Items()),
				"users":        len(store.Users()),
				"suppliers":    len(store.Suppliers()),
				"transactions": len(store.Transactions()),
			},
		}
		if lastSync.IsZero() {
			resp["lastSync"] = nil
		} else {
			resp["lastSync"] = lastSync
		}
		return c.JSON(resp)
	}
}

// POST /api/system/sync
func SyncNowHandler(store *state.Store, sched *syncer.Scheduler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := sched.SyncNow(); err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "Sinkronisasi gagal: "+err.Error())
		}
		status, lastSync := store.Status()
		return c.JSON(fiber.Map{
			"status":   status,
			"lastSync": lastSync,
		})
	}
}
