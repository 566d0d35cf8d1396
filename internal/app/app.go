// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/walterflo/pizzeria-service/config"
	"github.com/walterflo/pizzeria-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) (*gin.Engine, error) {
	// Logger first, everything else reports through it
	InitializeLogger()

	serviceComponents, err := InitializeServices(cfg)
	if err != nil {
		return nil, err
	}

	routerComponents := InitializeRouter(serviceComponents, cfg)

	return http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config), nil
}
