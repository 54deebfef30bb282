package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/skawashin1122/bento-ordering-system/entity"
)

// newTestDB opens a fresh in-memory SQLite database. Pool capped at one
// connection so every query sees the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Menu{},
		&entity.Order{},
		&entity.OrderItem{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *entity.User {
	t.Helper()
	u := &entity.User{
		Email:    email,
		Name:     "テスト",
		Password: "x",
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedMenu(t *testing.T, db *gorm.DB, name string, price int64, available bool) *entity.Menu {
	t.Helper()
	m := &entity.Menu{
		Name:        name,
		Price:       price,
		Category:    entity.CategoryMeat,
		IsAvailable: available,
	}
	require.NoError(t, db.Create(m).Error)
	if !available {
		// GORM omits the zero value false on insert because the column has
		// default:true, so force it with an explicit column update.
		require.NoError(t, db.Model(m).Update("is_available", false).Error)
		m.IsAvailable = false
	}
	return m
}
