package main

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/tcp_snm/agora/internal/api"
	log "github.com/sirupsen/logrus"
)

func setCors(router *chi.Mux) {
	router.Use(
		cors.Handler(
			cors.Options{
				AllowedOrigins:   []string{"https://*", "http://*"},
				AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
				AllowedHeaders:   []string{"*"},
				AllowCredentials: false,
				ExposedHeaders:   []string{"Link"},
				MaxAge:           300,
			},
		),
	)
	log.Info("cors options has been set")
}

func NewRouter() *chi.Mux {
	router := chi.NewRouter()
	setCors(router)

	// mount v1 router
	router.Mount("/v1", api.NewV1Router(apiConfig))
	log.Info("v1 router has been mounted")

	return router
}
