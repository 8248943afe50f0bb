//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	orderspostgres "github.com/OleksandIadvigun/drugstore/internal/domains/orders/adapters/persistence/postgres"
	ordersdomain "github.com/OleksandIadvigun/drugstore/internal/domains/orders/domain"
	"github.com/OleksandIadvigun/drugstore/internal/domains/products/domain"
	"github.com/OleksandIadvigun/drugstore/internal/domains/products/ports"
	"github.com/OleksandIadvigun/drugstore/internal/platform/migrations"
)

func setupProductsPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("drugstore_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestRepository_SaveAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupProductsPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &domain.Product{Name: "aspirin", Quantity: 10, Price: decimal.RequireFromString("4.99")})
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	fetched, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "aspirin", fetched.Name)
	assert.True(t, fetched.Price.Equal(decimal.RequireFromString("4.99")))
}

func TestRepository_Replace_Overwrites(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupProductsPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &domain.Product{Name: "aspirin", Quantity: 10, Price: decimal.RequireFromString("4.99")})
	require.NoError(t, err)

	replaced, err := repo.Replace(ctx, saved.ID, &domain.Product{Name: "aspirin forte", Price: decimal.RequireFromString("6.00")})
	require.NoError(t, err)
	assert.Equal(t, saved.ID, replaced.ID)
	assert.Equal(t, "aspirin forte", replaced.Name)
	assert.Equal(t, int32(0), replaced.Quantity)
}

func TestRepository_Replace_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupProductsPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	_, err := repo.Replace(context.Background(), 9999, &domain.Product{Name: "ghost", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupProductsPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &domain.Product{Name: "aspirin", Quantity: 10, Price: decimal.RequireFromString("4.99")})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, saved.ID))
	_, err = repo.GetByID(ctx, saved.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, saved.ID), ports.ErrNotFound)
}

// Deleting a catalog product must not disturb orders holding frozen snapshots
// of its name and price.
func TestRepository_Delete_LeavesOrderSnapshotsIntact(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupProductsPostgresContainer(t)
	defer cleanup()

	productRepo := NewRepository(db)
	orderRepo := orderspostgres.NewRepository(db)
	ctx := context.Background()

	product, err := productRepo.Save(ctx, &domain.Product{Name: "aspirin", Quantity: 10, Price: decimal.RequireFromString("4.99")})
	require.NoError(t, err)

	order, err := ordersdomain.NewOrder(0, []ordersdomain.LineItem{
		{ProductID: product.ID, Name: product.Name, UnitPrice: product.Price, Quantity: 2},
	})
	require.NoError(t, err)
	savedOrder, err := orderRepo.Save(ctx, order)
	require.NoError(t, err)

	require.NoError(t, productRepo.Delete(ctx, product.ID))

	fetched, err := orderRepo.GetByID(ctx, savedOrder.ID)
	require.NoError(t, err)
	require.Len(t, fetched.LineItems, 1)
	assert.Equal(t, "aspirin", fetched.LineItems[0].Name)
	assert.True(t, fetched.LineItems[0].UnitPrice.Equal(decimal.RequireFromString("4.99")))
	assert.True(t, fetched.Total.Equal(decimal.RequireFromString("9.98")))
}
