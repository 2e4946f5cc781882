package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Abidstic/Manush-Tech/internal/models/db_models"
	"github.com/Abidstic/Manush-Tech/internal/models/response_models"
	"github.com/Abidstic/Manush-Tech/internal/repositories"
	"github.com/Abidstic/Manush-Tech/pkg/logger"
	"github.com/Abidstic/Manush-Tech/pkg/utils"
)

const dateLayout = "2006-01-02"

// Client-visible failure reasons for per-date outcomes. Raw storage errors
// stay in the server log.
const (
	reasonDuplicate = "order already exists for this date"
	reasonStorage   = "storage error"
)

var log = logger.New("orders")

type OrderServiceInterface interface {
	UpsertChoice(ctx context.Context, userID, scheduleID uint, orderDate time.Time) (*response_models.OrderResponse, error)
	ScheduleMonth(ctx context.Context, userID uint, month, year int, mealChoices map[string]uint) (*response_models.MonthScheduleResponse, error)
	GetUserOrders(ctx context.Context, caller utils.Role, callerID, userID uint) ([]response_models.UserOrderResponse, error)
}

type OrderService struct {
	orderRepo    repositories.OrderRepository
	scheduleRepo repositories.ScheduleRepository
	userRepo     repositories.UserRepository
	clock        utils.Clock
}

func NewOrderService(
	orderRepo repositories.OrderRepository,
	scheduleRepo repositories.ScheduleRepository,
	userRepo repositories.UserRepository,
	clock utils.Clock,
) OrderServiceInterface {
	return &OrderService{
		orderRepo:    orderRepo,
		scheduleRepo: scheduleRepo,
		userRepo:     userRepo,
		clock:        clock,
	}
}

// UpsertChoice saves a single day's meal choice. Calling it again with the
// same arguments returns the already-saved order unchanged. Dates strictly
// before today are rejected before anything is written; the comparison
// ignores time of day.
func (s *OrderService) UpsertChoice(ctx context.Context, userID, scheduleID uint, orderDate time.Time) (*response_models.OrderResponse, error) {
	if err := s.checkOrderingUser(ctx, userID); err != nil {
		return nil, err
	}

	entry, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if entry == nil {
		return nil, utils.ErrScheduleNotFound
	}

	day := utils.DateOnly(orderDate)
	if day.Before(s.clock.Today()) {
		return nil, utils.ErrPastDate
	}

	order, err := s.orderRepo.Upsert(ctx, userID, scheduleID, day)
	if err != nil || order == nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toOrderResponse(order)
	return &resp, nil
}

// ScheduleMonth expands a calendar month against the per-weekday choices and
// creates one order per matching date. Creates are unconditional and
// day-by-day: a failed date does not roll back earlier ones, so the result
// carries a per-date outcome alongside the created orders. Months in the
// past are allowed; this call is meant for forward scheduling but does not
// enforce it.
func (s *OrderService) ScheduleMonth(ctx context.Context, userID uint, month, year int, mealChoices map[string]uint) (*response_models.MonthScheduleResponse, error) {
	if month < 1 || month > 12 {
		return nil, utils.ErrInvalidMonth
	}
	for weekday := range mealChoices {
		if !utils.IsValidWeekday(weekday) {
			return nil, utils.ErrInvalidWeekday
		}
	}

	if err := s.checkOrderingUser(ctx, userID); err != nil {
		return nil, err
	}

	// Resolve every referenced schedule entry before creating anything, so a
	// bad id fails the whole request instead of half a month in.
	for _, scheduleID := range mealChoices {
		entry, err := s.scheduleRepo.GetByID(ctx, scheduleID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if entry == nil {
			return nil, utils.ErrScheduleNotFound
		}
	}

	result := &response_models.MonthScheduleResponse{
		Orders:   []response_models.OrderResponse{},
		Outcomes: []response_models.DayOutcome{},
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	for day := first; day.Month() == time.Month(month); day = day.AddDate(0, 0, 1) {
		weekday := day.Weekday().String()
		outcome := response_models.DayOutcome{
			Date:      day.Format(dateLayout),
			DayOfWeek: weekday,
		}

		scheduleID, ok := mealChoices[weekday]
		if !ok {
			outcome.Status = response_models.DaySkipped
			result.Outcomes = append(result.Outcomes, outcome)
			continue
		}

		outcome.ScheduleID = scheduleID
		order := db_models.Order{
			UserID:     userID,
			ScheduleID: scheduleID,
			OrderDate:  day,
		}
		if err := s.orderRepo.Create(ctx, &order); err != nil {
			outcome.Status = response_models.DayFailed
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				outcome.Error = reasonDuplicate
			} else {
				log.Errorw("month schedule insert failed",
					"user_id", userID, "schedule_id", scheduleID,
					"date", outcome.Date, "error", err)
				outcome.Error = reasonStorage
			}
			result.Outcomes = append(result.Outcomes, outcome)
			continue
		}

		outcome.Status = response_models.DayCreated
		result.Outcomes = append(result.Outcomes, outcome)
		result.Orders = append(result.Orders, toOrderResponse(&order))
	}

	return result, nil
}

// GetUserOrders returns a user's full order history, oldest first, with each
// order expanded to its schedule slot and meal. A caller may read their own
// history, an admin may read anyone's.
func (s *OrderService) GetUserOrders(ctx context.Context, caller utils.Role, callerID, userID uint) ([]response_models.UserOrderResponse, error) {
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

func (s *OrderService) checkOrderingUser(ctx context.Context, userID uint) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}
	if user.IsBanned {
		return utils.ErrUserBanned
	}
	return nil
}

func toOrderResponse(order *db_models.Order) response_models.OrderResponse {
	return response_models.OrderResponse{
		ID:         order.ID,
		UserID:     order.UserID,
		ScheduleID: order.ScheduleID,
		OrderDate:  order.OrderDate.Format(dateLayout),
	}
}
