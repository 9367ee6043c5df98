// Package main is the entry point for the kitforge-service application.
//
// @title           KitForge Service API
// @version         1.0.0
// @description     API for estimating 3D print mass, cost, print time, and recommended
//
//	slicer settings from extracted mesh geometry, and for persisting the
//	results as shareable kit cards.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/kitforge/kitforge-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token. Format: "Bearer {token}".
//
// @tag.name        Estimates
// @tag.description Print estimation operations
//
// @tag.name        KitCards
// @tag.description Kit card persistence and export
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/kitforge/kitforge-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/kitforge/kitforge-service/config"
	"github.com/kitforge/kitforge-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
