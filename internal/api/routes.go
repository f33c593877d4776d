package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Get("/setup-status", handler.SetupStatus)
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Post("/change-password", handler.AuthRequired, handler.ChangePassword)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Get("", handler.GetSettings)
	settings.Put("", handler.OwnerOnly, handler.UpdateSettings)

	periods := api.Group("/periods", handler.AuthRequired)
	periods.Get("", handler.ListPeriods)
	periods.Post("", handler.OwnerOnly, handler.CreatePeriod)
	periods.Delete("/:id", handler.OwnerOnly, handler.DeletePeriod)

	ovulationTests := api.Group("/ovulation-tests", handler.AuthRequired)
	ovulationTests.Get("", handler.ListOvulationTests)
	ovulationTests.Post("", handler.OwnerOnly, handler.RecordOvulationTest)
	ovulationTests.Delete("/:date", handler.OwnerOnly, handler.DeleteOvulationTest)

	ovulationDays := api.Group("/ovulation-days", handler.AuthRequired)
	ovulationDays.Get("", handler.ListOvulationDays)
	ovulationDays.Post("", handler.OwnerOnly, handler.CreateOvulationDay)
	ovulationDays.Delete("/:date", handler.OwnerOnly, handler.DeleteOvulationDay)

	pills := api.Group("/pill-packages", handler.AuthRequired)
	pills.Get("", handler.ListPillPackages)
	pills.Post("", handler.OwnerOnly, handler.CreatePillPackage)
	pills.Delete("/:id", handler.OwnerOnly, handler.DeletePillPackage)

	pregnancy := api.Group("/pregnancy", handler.AuthRequired)
	pregnancy.Get("", handler.GetPregnancy)
	pregnancy.Put("", handler.OwnerOnly, handler.SavePregnancy)
	pregnancy.Delete("", handler.OwnerOnly, handler.DeletePregnancy)

	api.Get("/cycles", handler.AuthRequired, handler.GetCycles)
	api.Get("/status/:date", handler.AuthRequired, handler.GetStatus)
	api.Get("/calendar", handler.AuthRequired, handler.GetCalendar)

	export := api.Group("/export", handler.AuthRequired, handler.OwnerOnly)
	export.Get("/summary", handler.ExportSummary)
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)
}
