package internal

import (
	"net/http"

	"dpscan/internal/controllers"
	"dpscan/internal/providers"
	"dpscan/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/stats", http.HandlerFunc(apiController.GetStats))
	routers.Get("/profile", http.HandlerFunc(apiController.GetProfile))
	routers.Get("/servers", http.HandlerFunc(apiController.GetServers))
	routers.Get("/dms", http.HandlerFunc(apiController.GetDMs))
	routers.Get("/words", http.HandlerFunc(apiController.GetWords))
	routers.Get("/emojis", http.HandlerFunc(apiController.GetEmojis))
	routers.Get("/links", http.HandlerFunc(apiController.GetLinks))
	routers.Get("/activity", http.HandlerFunc(apiController.GetActivity))
	routers.Get("/tickets", http.HandlerFunc(apiController.GetTickets))
	routers.Get("/bots", http.HandlerFunc(apiController.GetBots))
	routers.Post("/scan", http.HandlerFunc(apiController.TriggerScan))
	return routers
}
