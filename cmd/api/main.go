package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tunedesk/internal/httpserver"
	"tunedesk/internal/logger"
	"tunedesk/internal/models"
	"tunedesk/internal/storage"
)

func main() {
	_ = godotenv.Load()
	lg := logger.New()
	defer lg.Sync()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		lg.Fatalw("DATABASE_URL is empty")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		lg.Fatalw("db connect failed", "error", err)
	}
	if err := db.AutoMigrate(
		&models.Car{}, &models.CarInformation{}, &models.Customer{},
		&models.Tag{}, &models.User{}, &models.Order{}, &models.Binary{},
	); err != nil {
		lg.Fatalw("automigrate failed", "error", err)
	}

	maxBytes := int64(storage.DefaultMaxBytes)
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			lg.Fatalw("MAX_UPLOAD_BYTES is not a number", "error", err)
		}
		maxBytes = n
	}
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	st, err := storage.New(dir, maxBytes)
	if err != nil {
		lg.Fatalw("storage init failed", "error", err)
	}

	router := httpserver.NewRouter(db, st, lg)
	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}
	lg.Infow("listening", "port", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal(err)
	}
}
