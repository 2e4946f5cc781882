package services

import (
	"context"
	"sort"

	"github.com/Abidstic/Manush-Tech/internal/models/db_models"
	"github.com/Abidstic/Manush-Tech/internal/models/response_models"
	"github.com/Abidstic/Manush-Tech/internal/repositories"
	"github.com/Abidstic/Manush-Tech/pkg/utils"
)

type ScheduleServiceInterface interface {
	GetWeeklySchedule(ctx context.Context) ([]response_models.ScheduleEntryResponse, error)
	GetAllUserChoices(ctx context.Context, caller utils.Role) ([]response_models.AdminOrderResponse, error)
	GetUserChoices(ctx context.Context, caller utils.Role, callerID, userID uint) ([]response_models.UserOrderResponse, error)
}

type ScheduleService struct {
	scheduleRepo repositories.ScheduleRepository
	orderRepo    repositories.OrderRepository
}

func NewScheduleService(
	scheduleRepo repositories.ScheduleRepository,
	orderRepo repositories.OrderRepository,
) ScheduleServiceInterface {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		orderRepo:    orderRepo,
	}
}

// GetWeeklySchedule returns the full weekly template, Sunday through
// Saturday, each slot expanded with its meal and the meal's items. The
// ordering is the canonical week order, not whatever the storage layer
// happens to return.
func (s *ScheduleService) GetWeeklySchedule(ctx context.Context) ([]response_models.ScheduleEntryResponse, error) {
	entries, err := s.scheduleRepo.GetWeekly(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	sort.SliceStable(entries, func(i, j int) bool {
		ri, _ := utils.WeekdayRank(entries[i].DayOfWeek)
		rj, _ := utils.WeekdayRank(entries[j].DayOfWeek)
		if ri != rj {
			return ri < rj
		}
		return entries[i].MealID < entries[j].MealID
	})

	responses := make([]response_models.ScheduleEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toScheduleEntryResponse(entry))
	}
	return responses, nil
}

// GetAllUserChoices is the admin projection across every user's orders,
// newest first. Non-admin callers get an access-denied error and no data.
func (s *ScheduleService) GetAllUserChoices(ctx context.Context, caller utils.Role) ([]response_models.AdminOrderResponse, error) {
	if !caller.IsAdmin() {
		return nil, utils.ErrAccessDenied
	}

	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.AdminOrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, response_models.AdminOrderResponse{
			UserID:    order.User.ID,
			UserName:  order.User.Name,
			UserEmail: order.User.Email,
			MealName:  order.Schedule.Meal.MealName,
			DayOfWeek: order.Schedule.DayOfWeek,
			OrderDate: order.OrderDate.Format(dateLayout),
		})
	}
	return responses, nil
}

// GetUserChoices returns one user's choices; a caller may read their own,
// an admin may read anyone's.
func (s *ScheduleService) GetUserChoices(ctx context.Context, caller utils.Role, callerID, userID uint) ([]response_models.UserOrderResponse, error) {
	if !caller.IsAdmin() && callerID != userID {
		return nil, utils.ErrAccessDenied
	}

	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.UserOrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, response_models.UserOrderResponse{
			MealName:  order.Schedule.Meal.MealName,
			DayOfWeek: order.Schedule.DayOfWeek,
			OrderDate: order.OrderDate.Format(dateLayout),
		})
	}
	return responses, nil
}

func toScheduleEntryResponse(entry db_models.MealSchedule) response_models.ScheduleEntryResponse {
	items := make([]response_models.ItemResponse, 0, len(entry.Meal.Items))
	for _, item := range entry.Meal.Items {
		items = append(items, response_models.ItemResponse{
			ID:       item.ID,
			ItemName: item.ItemName,
			Category: item.Category,
		})
	}
	return response_models.ScheduleEntryResponse{
		ID:        entry.ID,
		MealID:    entry.MealID,
		DayOfWeek: entry.DayOfWeek,
		Meal: response_models.MealResponse{
			ID:       entry.Meal.ID,
			MealName: entry.Meal.MealName,
			Items:    items,
		},
	}
}
