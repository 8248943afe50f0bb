package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/OleksandIadvigun/drugstore/internal/domains/products/domain"
	"github.com/OleksandIadvigun/drugstore/internal/domains/products/ports"
)

func product(name, price string) *domain.Product {
	return &domain.Product{Name: name, Quantity: 10, Price: decimal.RequireFromString(price)}
}

func TestSave_AssignsID(t *testing.T) {
	repo := NewRepository()

	saved, err := repo.Save(context.Background(), product("aspirin", "4.99"))
	require.NoError(t, err)
	require.NotZero(t, saved.ID)
}

func TestSave_ReusesExplicitID(t *testing.T) {
	repo := NewRepository()
	explicit := product("aspirin", "4.99")
	explicit.ID = 7

	saved, err := repo.Save(context.Background(), explicit)
	require.NoError(t, err)
	require.Equal(t, int64(7), saved.ID)

	next, err := repo.Save(context.Background(), product("ibuprofen", "5.99"))
	require.NoError(t, err)
	require.Equal(t, int64(8), next.ID)
}

func TestGetByID_ReturnsDetachedCopy(t *testing.T) {
	repo := NewRepository()
	saved, err := repo.Save(context.Background(), product("aspirin", "4.99"))
	require.NoError(t, err)

	loaded, err := repo.GetByID(context.Background(), saved.ID)
	require.NoError(t, err)
	loaded.Name = "mutated"

	again, err := repo.GetByID(context.Background(), saved.ID)
	require.NoError(t, err)
	require.Equal(t, "aspirin", again.Name)
}

func TestReplace_OverwritesAtomically(t *testing.T) {
	repo := NewRepository()
	saved, err := repo.Save(context.Background(), product("aspirin", "4.99"))
	require.NoError(t, err)

	replaced, err := repo.Replace(context.Background(), saved.ID, &domain.Product{
		Name:  "aspirin forte",
		Price: decimal.RequireFromString("6.00"),
	})
	require.NoError(t, err)
	require.Equal(t, saved.ID, replaced.ID)
	require.Equal(t, "aspirin forte", replaced.Name)
	require.Equal(t, int32(0), replaced.Quantity)
}

func TestReplace_UnknownID(t *testing.T) {
	repo := NewRepository()

	_, err := repo.Replace(context.Background(), 99, product("aspirin", "4.99"))
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDelete_ThenGetNotFound(t *testing.T) {
	repo := NewRepository()
	saved, err := repo.Save(context.Background(), product("aspirin", "4.99"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(context.Background(), saved.ID))
	_, err = repo.GetByID(context.Background(), saved.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)
	require.ErrorIs(t, repo.Delete(context.Background(), saved.ID), ports.ErrNotFound)
}

// Concurrent replaces must serialize; the survivor is one full submitted
// product, never a field-level mix.
func TestReplace_ConcurrentWritesSerialize(t *testing.T) {
	repo := NewRepository()
	saved, err := repo.Save(context.Background(), product("aspirin", "1.00"))
	require.NoError(t, err)

	a := &domain.Product{Name: "variant-a", Quantity: 1, Price: decimal.RequireFromString("2.00")}
	b := &domain.Product{Name: "variant-b", Quantity: 2, Price: decimal.RequireFromString("3.00")}

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for _, p := range []*domain.Product{a, b} {
		wg.Add(1)
		go func(p *domain.Product) {
			defer wg.Done()
			_, err := repo.Replace(context.Background(), saved.ID, p)
			errs <- err
		}(p)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	final, err := repo.GetByID(context.Background(), saved.ID)
	require.NoError(t, err)
	switch final.Name {
	case "variant-a":
		require.Equal(t, int32(1), final.Quantity)
		require.True(t, final.Price.Equal(decimal.RequireFromString("2.00")))
	case "variant-b":
		require.Equal(t, int32(2), final.Quantity)
		require.True(t, final.Price.Equal(decimal.RequireFromString("3.00")))
	default:
		t.Fatalf("final state mixes both writes: %+v", final)
	}
}
