package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/forgot-password", handler.ForgotPassword)
	auth.Post("/logout", handler.Logout)

	api.Get("/dashboard", handler.AuthRequired, handler.GetDashboard)

	records := api.Group("/records", handler.AuthRequired)
	records.Post("", handler.CreateRecord)
	records.Get("/series", handler.GetSeries)
	records.Get("/weekly", handler.GetWeekly)

	sales := api.Group("/sales", handler.AuthRequired)
	sales.Post("", handler.CreateSale)
	sales.Get("", handler.ListSales)

	api.Post("/costs", handler.AuthRequired, handler.CreateCost)
	api.Get("/balance", handler.AuthRequired, handler.GetBalance)

	notes := api.Group("/notes", handler.AuthRequired)
	notes.Get("", handler.GetNote)
	notes.Put("", handler.SaveNote)

	products := api.Group("/products", handler.AuthRequired)
	products.Get("", handler.ListProducts)
	products.Put("/:name", handler.LeaderOnly, handler.UpsertProduct)

	team := api.Group("/team", handler.AuthRequired)
	team.Post("/join", handler.RequestJoin)
	team.Post("/approve", handler.LeaderOnly, handler.ApproveJoin)
	team.Get("/pending", handler.LeaderOnly, handler.PendingRequests)
	team.Get("/tree", handler.TeamTree)

	admin := api.Group("/admin", handler.AuthRequired, handler.AdminOnly)
	admin.Get("/notices", handler.ListNotices)
	admin.Get("/users", handler.ListUsers)
	admin.Post("/reset-password", handler.ResetPassword)
	admin.Post("/promote", handler.PromoteToLeader)
}
