package repositoryImp

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"agrilink/entities"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.Product{}))
	return db
}

func seedSupplier(t *testing.T, db *gorm.DB, id, status string) {
	t.Helper()
	require.NoError(t, db.Create(&entities.User{
		ID: id, Role: entities.RoleSupplier, Email: id + "@example.com",
		VerificationStatus: status,
	}).Error)
}

func TestListMarketplaceOnlyVerifiedSuppliers(t *testing.T) {
	db := testDB(t)
	repo := New(db)
	seedSupplier(t, db, "ok", entities.VerificationVerified)
	seedSupplier(t, db, "pending", entities.VerificationPending)

	require.NoError(t, repo.Create(&entities.Product{
		SupplierID: "ok", Name: "Urea 50kg", Category: "fertilizer", Active: true,
	}))
	require.NoError(t, repo.Create(&entities.Product{
		SupplierID: "pending", Name: "DAP 50kg", Category: "fertilizer", Active: true,
	}))
	require.NoError(t, repo.Create(&entities.Product{
		SupplierID: "ok", Name: "Old Sprayer", Category: "equipment", Active: false,
	}))

	list, err := repo.ListMarketplace("", "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Urea 50kg", list[0].Name)
}

func TestListMarketplaceFilters(t *testing.T) {
	db := testDB(t)
	repo := New(db)
	seedSupplier(t, db, "ok", entities.VerificationVerified)

	require.NoError(t, repo.Create(&entities.Product{
		SupplierID: "ok", Name: "Urea 50kg", Category: "fertilizer", Active: true,
	}))
	require.NoError(t, repo.Create(&entities.Product{
		SupplierID: "ok", Name: "Knapsack Sprayer", Category: "equipment", Active: true,
	}))

	byCategory, err := repo.ListMarketplace("equipment", "")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Knapsack Sprayer", byCategory[0].Name)

	byName, err := repo.ListMarketplace("", "Urea")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Urea 50kg", byName[0].Name)

	none, err := repo.ListMarketplace("fertilizer", "Sprayer")
	require.NoError(t, err)
	assert.Empty(t, none)
}
