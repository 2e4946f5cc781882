package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Abidstic/Manush-Tech/internal/models/db_models"
)

type OrderRepository interface {
	FindByKey(ctx context.Context, userID, scheduleID uint, orderDate time.Time) (*db_models.Order, error)
	Upsert(ctx context.Context, userID, scheduleID uint, orderDate time.Time) (*db_models.Order, error)
	Create(ctx context.Context, order *db_models.Order) error
	ListByUser(ctx context.Context, userID uint) ([]db_models.Order, error)
	ListAll(ctx context.Context) ([]db_models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) FindByKey(ctx context.Context, userID, scheduleID uint, orderDate time.Time) (*db_models.Order, error) {
	var order db_models.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND schedule_id = ? AND order_date = ?", userID, scheduleID, orderDate).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// Upsert is create-if-absent with an empty update: an existing row wins and
// is returned unchanged. A concurrent writer hitting the unique index gets
// the same answer via a re-read instead of an error.
func (r *orderRepository) Upsert(ctx context.Context, userID, scheduleID uint, orderDate time.Time) (*db_models.Order, error) {
	existing, err := r.FindByKey(ctx, userID, scheduleID, orderDate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	order := db_models.Order{
		UserID:     userID,
		ScheduleID: scheduleID,
		OrderDate:  orderDate,
	}
	err = r.db.WithContext(ctx).Create(&order).Error
	if err == nil {
		return &order, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost the race; the row the other writer created is the result.
		return r.FindByKey(ctx, userID, scheduleID, orderDate)
	}
	return nil, err
}

func (r *orderRepository) Create(ctx context.Context, order *db_models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uint) ([]db_models.Order, error) {
	var orders []db_models.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Schedule").
		Preload("Schedule.Meal").
		Order("order_date ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) ListAll(ctx context.Context) ([]db_models.Order, error) {
	var orders []db_models.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Schedule").
		Preload("Schedule.Meal").
		Order("order_date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
