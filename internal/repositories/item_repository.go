package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Abidstic/Manush-Tech/internal/models/db_models"
)

type ItemRepository interface {
	ListAll(ctx context.Context) ([]db_models.Item, error)
	ListByCategory(ctx context.Context, category string) ([]db_models.Item, error)
	FindByID(ctx context.Context, itemID uint) (*db_models.Item, error)
	Insert(ctx context.Context, item *db_models.Item) error
	Update(ctx context.Context, item *db_models.Item) error
	Delete(ctx context.Context, itemID uint) error
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) ListAll(ctx context.Context) ([]db_models.Item, error) {
	var items []db_models.Item
	err := r.db.WithContext(ctx).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) ListByCategory(ctx context.Context, category string) ([]db_models.Item, error) {
	var items []db_models.Item
	err := r.db.WithContext(ctx).Where("category = ?", category).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) FindByID(ctx context.Context, itemID uint) (*db_models.Item, error) {
	var item db_models.Item
	err := r.db.WithContext(ctx).First(&item, itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) Insert(ctx context.Context, item *db_models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) Update(ctx context.Context, item *db_models.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepository) Delete(ctx context.Context, itemID uint) error {
	return r.db.WithContext(ctx).Delete(&db_models.Item{}, itemID).Error
}
