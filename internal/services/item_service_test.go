package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abidstic/Manush-Tech/internal/models/request_models"
	"github.com/Abidstic/Manush-Tech/internal/repositories"
	"github.com/Abidstic/Manush-Tech/pkg/utils"
)

func TestItemLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(repositories.NewItemRepository(db))
	ctx := context.Background()

	item, err := svc.CreateItem(ctx, request_models.ItemRequest{ItemName: "Daal", Category: "Protein"})
	require.NoError(t, err)
	require.NotZero(t, item.ID)

	_, err = svc.CreateItem(ctx, request_models.ItemRequest{ItemName: "Rice", Category: "Starch"})
	require.NoError(t, err)

	items, err := svc.ListItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	protein, err := svc.ListItemsByCategory(ctx, "Protein")
	require.NoError(t, err)
	require.Len(t, protein, 1)
	assert.Equal(t, "Daal", protein[0].ItemName)

	updated, err := svc.UpdateItem(ctx, item.ID, request_models.ItemRequest{ItemName: "Masoor Daal", Category: "Protein"})
	require.NoError(t, err)
	assert.Equal(t, "Masoor Daal", updated.ItemName)

	require.NoError(t, svc.DeleteItem(ctx, item.ID))
	items, err = svc.ListItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestItemCategoryValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(repositories.NewItemRepository(db))
	ctx := context.Background()

	_, err := svc.CreateItem(ctx, request_models.ItemRequest{ItemName: "Mystery", Category: "Dessert"})
	require.ErrorIs(t, err, utils.ErrInvalidCategory)

	_, err = svc.ListItemsByCategory(ctx, "Dessert")
	require.ErrorIs(t, err, utils.ErrInvalidCategory)
}

func TestUpdateMissingItem(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(repositories.NewItemRepository(db))

	_, err := svc.UpdateItem(context.Background(), 42, request_models.ItemRequest{ItemName: "Ghost", Category: "Soup"})
	require.ErrorIs(t, err, utils.ErrItemNotFound)

	err = svc.DeleteItem(context.Background(), 42)
	require.ErrorIs(t, err, utils.ErrItemNotFound)
}
