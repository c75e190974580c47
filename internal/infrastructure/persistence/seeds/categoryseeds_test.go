package seeds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"marketplace/internal/infrastructure/persistence/models"
)

func TestDefaultCategories(t *testing.T) {
	fixtures, err := DefaultCategories()
	require.NoError(t, err)
	assert.NotEmpty(t, fixtures)
}

func TestSeedCategories_Idempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.CategoryModel{}))

	fixtures, err := DefaultCategories()
	require.NoError(t, err)

	created, err := SeedCategories(db)
	require.NoError(t, err)
	assert.Equal(t, len(fixtures), created)

	created, err = SeedCategories(db)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	var count int64
	require.NoError(t, db.Model(&models.CategoryModel{}).Count(&count).Error)
	assert.Equal(t, int64(len(fixtures)), count)
}
