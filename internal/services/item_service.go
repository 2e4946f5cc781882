package services

import (
	"context"

	"github.com/Abidstic/Manush-Tech/internal/models/db_models"
	"github.com/Abidstic/Manush-Tech/internal/models/request_models"
	"github.com/Abidstic/Manush-Tech/internal/repositories"
	"github.com/Abidstic/Manush-Tech/pkg/utils"
)

var itemCategories = map[string]bool{
	"Protein":    true,
	"Starch":     true,
	"Vegetables": true,
	"Soup":       true,
}

type ItemServiceInterface interface {
	ListItems(ctx context.Context) ([]db_models.Item, error)
	ListItemsByCategory(ctx context.Context, category string) ([]db_models.Item, error)
	CreateItem(ctx context.Context, request request_models.ItemRequest) (*db_models.Item, error)
	UpdateItem(ctx context.Context, itemID uint, request request_models.ItemRequest) (*db_models.Item, error)
	DeleteItem(ctx context.Context, itemID uint) error
}

type ItemService struct {
	itemRepo repositories.ItemRepository
}

func NewItemService(itemRepo repositories.ItemRepository) ItemServiceInterface {
	return &ItemService{itemRepo: itemRepo}
}

func (s *ItemService) ListItems(ctx context.Context) ([]db_models.Item, error) {
	items, err := s.itemRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return items, nil
}

func (s *ItemService) ListItemsByCategory(ctx context.Context, category string) ([]db_models.Item, error) {
	if !itemCategories[category] {
		return nil, utils.ErrInvalidCategory
	}
	items, err := s.itemRepo.ListByCategory(ctx, category)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return items, nil
}

func (s *ItemService) CreateItem(ctx context.Context, request request_models.ItemRequest) (*db_models.Item, error) {
	if !itemCategories[request.Category] {
		return nil, utils.ErrInvalidCategory
	}
	item := &db_models.Item{
		ItemName: request.ItemName,
		Category: request.Category,
	}
	if err := s.itemRepo.Insert(ctx, item); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return item, nil
}

func (s *ItemService) UpdateItem(ctx context.Context, itemID uint, request request_models.ItemRequest) (*db_models.Item, error) {
	if !itemCategories[request.Category] {
		return nil, utils.ErrInvalidCategory
	}
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if item == nil {
		return nil, utils.ErrItemNotFound
	}

	item.ItemName = request.ItemName
	item.Category = request.Category
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return item, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, itemID uint) error {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if item == nil {
		return utils.ErrItemNotFound
	}
	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
