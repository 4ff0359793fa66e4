package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"tunedesk/internal/models"
)

// newTestDB opens an isolated in-memory database with foreign keys
// enforced, matching the constraint behaviour of the production store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(
		&models.Car{}, &models.CarInformation{}, &models.Customer{},
		&models.Tag{}, &models.User{}, &models.Order{}, &models.Binary{},
	))
	return db
}

func seedCar(t *testing.T, db *gorm.DB) *models.Car {
	t.Helper()
	c, err := NewCarService(db).Create(context.Background(), CarInput{
		ModelName: "Tesla Model S",
		RegNumber: "ABC123X",
		Engine:    "Electric 100kWh",
	})
	require.NoError(t, err)
	return c
}

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	u, err := NewUserService(db).Create(context.Background(), UserInput{
		Name:  "Erik Tuner",
		Email: "erik@workshop.test",
		Phone: "+46701234567",
	})
	require.NoError(t, err)
	return u
}
