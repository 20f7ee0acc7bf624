package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)

	api.Get("/me", handler.AuthRequired, handler.Me)

	cycles := api.Group("/cycles", handler.AuthRequired)
	cycles.Get("", handler.ListCycles)
	cycles.Post("", handler.StartCycle)
	cycles.Get("/active", handler.GetActiveCycle)
	cycles.Get("/:id", handler.GetCycle)
	cycles.Patch("/:id/status", handler.UpdateCycleStatus)
	cycles.Get("/:id/milestones", handler.ListCycleMilestones)

	milestones := api.Group("/milestones", handler.AuthRequired)
	milestones.Patch("/:id", handler.UpdateMilestone)

	appointments := api.Group("/appointments", handler.AuthRequired)
	appointments.Get("", handler.ListAppointments)
	appointments.Post("", handler.CreateAppointment)
	appointments.Put("/:id", handler.UpdateAppointment)
	appointments.Delete("/:id", handler.DeleteAppointment)

	events := api.Group("/events", handler.AuthRequired)
	events.Get("", handler.ListEvents)
	events.Post("", handler.CreateEvent)
	events.Delete("/:id", handler.DeleteEvent)

	symptoms := api.Group("/symptoms", handler.AuthRequired)
	symptoms.Get("", handler.ListSymptoms)
	symptoms.Post("", handler.CreateSymptom)
	symptoms.Delete("/:id", handler.DeleteSymptom)

	doctors := api.Group("/doctors", handler.AuthRequired)
	doctors.Get("", handler.ListDoctors)
	doctors.Post("", handler.CreateDoctor)
	doctors.Get("/:id", handler.GetDoctor)

	calendar := api.Group("/calendar", handler.AuthRequired)
	calendar.Get("", handler.GetCalendarMonth)
	calendar.Get("/:date", handler.GetCalendarDay)

	api.Get("/stage", handler.AuthRequired, handler.GetStage)

	ref := api.Group("/reference")
	ref.Get("/templates", handler.ListTemplates)
	ref.Get("/templates/:type", handler.GetTemplate)
	ref.Post("/refresh", handler.AuthRequired, handler.RefreshReference)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/csv", handler.ExportCSV)
}
