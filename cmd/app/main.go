package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/aniketSingh0310/user-dash/internal/config"
	"github.com/aniketSingh0310/user-dash/internal/follow"
	"github.com/aniketSingh0310/user-dash/internal/migrations"
	"github.com/aniketSingh0310/user-dash/internal/upload"
	"github.com/aniketSingh0310/user-dash/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLog)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	if err := runMigrations(db); err != nil {
		panic(err)
	}

	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	followRepo := follow.NewPostgresRepository(db)
	followService := follow.NewService(followRepo)
	// follow routes need the user service to name both sides in confirmations
	followHandler := follow.NewHandler(followService, userService)

	var presigner *upload.Presigner
	if cfg.S3Bucket != "" {
		presigner = upload.NewPresigner(cfg)
	}
	uploadHandler := upload.NewHandler(presigner)

	// register /users/follow and /users/unfollow ahead of /users/:id
	followHandler.RegisterRoutes(app)
	userHandler.RegisterRoutes(app)
	uploadHandler.RegisterRoutes(app)

	// locally stored profile pictures are public
	app.Static("/uploads", "./uploads")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("User Management API is running!")
	})

	if err := app.Listen(cfg.Addr); err != nil {
		panic(err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(context.Background(), db, ".")
}

func requestLog(c *fiber.Ctx) error {
	start := time.Now()
	fmt.Printf("URL = %s, Method = %s, Start Time = %v\n", c.OriginalURL(), c.Method(), start)
	return c.Next()
}
