package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Abidstic/Manush-Tech/internal/models/db_models"
)

type ScheduleRepository interface {
	GetByID(ctx context.Context, scheduleID uint) (*db_models.MealSchedule, error)
	GetWeekly(ctx context.Context) ([]db_models.MealSchedule, error)
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) GetByID(ctx context.Context, scheduleID uint) (*db_models.MealSchedule, error) {
	var entry db_models.MealSchedule
	err := r.db.WithContext(ctx).
		Preload("Meal").
		Preload("Meal.Items").
		First(&entry, scheduleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *scheduleRepository) GetWeekly(ctx context.Context) ([]db_models.MealSchedule, error) {
	var entries []db_models.MealSchedule
	err := r.db.WithContext(ctx).
		Preload("Meal").
		Preload("Meal.Items").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
