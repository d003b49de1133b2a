package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posterworks/internal/domain"
	"posterworks/internal/testutil"
)

// Unit Tests

func TestNewMySQLOrderItemRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLOrderItemRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestOrderItemRepository_InsertAllAndFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderItemRepository(db)

	items := []domain.OrderItem{
		{Name: "sunset poster", UnitAmount: 2500, Quantity: 2},
		{Name: "city map", UnitAmount: 3100, Quantity: 1},
	}

	require.NoError(t, repo.InsertAll(context.Background(), "ord-items-1", items))

	found, err := repo.FindByOrderID(context.Background(), "ord-items-1")
	require.NoError(t, err)
	require.Len(t, found, 2)

	assert.Equal(t, "sunset poster", found[0].Name)
	assert.Equal(t, int64(2500), found[0].UnitAmount)
	assert.Equal(t, 2, found[0].Quantity)
	assert.Equal(t, "ord-items-1", found[0].OrderID)
	assert.Equal(t, "city map", found[1].Name)
}

func TestOrderItemRepository_FindByOrderID_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderItemRepository(db)

	found, err := repo.FindByOrderID(context.Background(), "ord-no-items")
	require.NoError(t, err)
	assert.Empty(t, found)
}
