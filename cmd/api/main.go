package main

import (
	"log"
	"net/http"

	"github.com/aniketSingh0310/user-dash/internal/infrastructure/config"
	"github.com/aniketSingh0310/user-dash/internal/infrastructure/database/inmemory"
	httpHandler "github.com/aniketSingh0310/user-dash/internal/interface/http/handler"
	"github.com/aniketSingh0310/user-dash/internal/interface/http/router"
	"github.com/aniketSingh0310/user-dash/internal/interface/presenter"
	"github.com/aniketSingh0310/user-dash/internal/usecase"
)

// main wires dependencies (dependency injection) and starts the HTTP server.
func main() {
	cfg := config.Load()

	userRepo := inmemory.NewUserRepository()
	userPresenter := presenter.NewUserPresenter()
	userUsecase := usecase.NewUserService(userRepo)
	userHandler := httpHandler.NewUserHandler(userUsecase, userPresenter)

	r := router.New(userHandler)

	log.Printf("starting server on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
