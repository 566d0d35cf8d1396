// Package main is the entry point for the pizzeria order service.
//
// @title           Pizzeria Order API
// @version         1.0.0
// @description     Storefront API for a pizzeria: browse the menu, compose an
//
//	in-memory cart, and receive pre-formatted WhatsApp/SMS deep
//	links to hand the order to the business. No persistence, no
//	payments, no accounts.
//
// @contact.name   API Support
// @contact.url    https://github.com/walterflo/pizzeria-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Menu
// @tag.description Catalog browsing
//
// @tag.name        Carts
// @tag.description Cart composition and checkout
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/rs/zerolog/log"

	_ "github.com/walterflo/pizzeria-service/docs" // swagger docs

	"github.com/walterflo/pizzeria-service/config"
	"github.com/walterflo/pizzeria-service/internal/app"
)

func main() {
	cfg := config.Load()

	router, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Initialization error")
	}

	server := app.NewServer(router, cfg.Server.Port)
	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
