package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tender-app/backend/internal/testdb"
	"github.com/tender-app/backend/internal/types"
)

type fakeScanner struct {
	guesses []types.IngredientGuess
	err     error
}

func (f *fakeScanner) ScanImage(ctx context.Context, imageBase64 string) ([]types.IngredientGuess, error) {
	return f.guesses, f.err
}

func TestFridgeScanMergesIntoInventory(t *testing.T) {
	db := testdb.Setup(t)
	scanner := &fakeScanner{guesses: []types.IngredientGuess{
		{Name: "milk", Quantity: 1, Category: "Dairy"},
		{Name: "Milk", Quantity: 1, Category: "Dairy"},
		{Name: "carrot", Quantity: 3, Category: "Produce"},
		{Name: "", Quantity: 1},
	}}
	svc := NewFridgeService(db, scanner)
	ctx := context.Background()

	userID := seedUser(t, db, "scanner@example.com")

	_, err := svc.Scan(ctx, userID, "base64data")
	require.NoError(t, err)

	items, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	byName := map[string]int{}
	for _, item := range items {
		byName[item.Name] = item.Quantity
	}
	assert.Equal(t, 2, byName["milk"])
	assert.Equal(t, 3, byName["carrot"])
}

func TestFridgeScanWithoutScanner(t *testing.T) {
	db := testdb.Setup(t)
	svc := NewFridgeService(db, nil)

	userID := seedUser(t, db, "noscan@example.com")
	_, err := svc.Scan(context.Background(), userID, "base64data")
	assert.ErrorIs(t, err, ErrScannerUnavailable)
}

func TestFridgeAddMerges(t *testing.T) {
	db := testdb.Setup(t)
	svc := NewFridgeService(db, nil)
	ctx := context.Background()

	userID := seedUser(t, db, "fridge@example.com")

	_, err := svc.Add(ctx, userID, &types.AddItemRequest{Name: "Yogurt", Quantity: 2})
	require.NoError(t, err)
	merged, err := svc.Add(ctx, userID, &types.AddItemRequest{Name: "yogurt"})
	require.NoError(t, err)

	assert.Equal(t, 3, merged.Quantity)
}
