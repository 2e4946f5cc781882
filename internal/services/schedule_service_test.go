package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Abidstic/Manush-Tech/internal/models/db_models"
	"github.com/Abidstic/Manush-Tech/internal/repositories"
	"github.com/Abidstic/Manush-Tech/pkg/utils"
)

func newScheduleService(db *gorm.DB) ScheduleServiceInterface {
	return NewScheduleService(
		repositories.NewScheduleRepository(db),
		repositories.NewOrderRepository(db),
	)
}

func TestWeeklyScheduleCanonicalOrder(t *testing.T) {
	db := newTestDB(t)
	meal := db_models.Meal{MealName: "Breakfast"}
	require.NoError(t, db.Create(&meal).Error)

	// Insert in scrambled order; the view must still come back
	// Sunday through Saturday.
	for _, day := range []string{"Friday", "Sunday", "Wednesday", "Saturday", "Monday", "Thursday", "Tuesday"} {
		require.NoError(t, db.Create(&db_models.MealSchedule{MealID: meal.ID, DayOfWeek: day}).Error)
	}

	svc := newScheduleService(db)
	entries, err := svc.GetWeeklySchedule(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 7)

	for i, entry := range entries {
		assert.Equal(t, utils.WeekdayNames[i], entry.DayOfWeek)
	}
}

func TestWeeklyScheduleExpandsMealAndItems(t *testing.T) {
	db := newTestDB(t)

	rice := db_models.Item{ItemName: "Rice", Category: "Starch"}
	curry := db_models.Item{ItemName: "Chicken Curry", Category: "Protein"}
	require.NoError(t, db.Create(&rice).Error)
	require.NoError(t, db.Create(&curry).Error)

	meal := db_models.Meal{MealName: "Lunch", Items: []db_models.Item{rice, curry}}
	require.NoError(t, db.Create(&meal).Error)
	require.NoError(t, db.Create(&db_models.MealSchedule{MealID: meal.ID, DayOfWeek: "Monday"}).Error)

	svc := newScheduleService(db)
	entries, err := svc.GetWeeklySchedule(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, meal.ID, entry.MealID)
	assert.Equal(t, "Lunch", entry.Meal.MealName)
	require.Len(t, entry.Meal.Items, 2)
	names := []string{entry.Meal.Items[0].ItemName, entry.Meal.Items[1].ItemName}
	assert.ElementsMatch(t, []string{"Rice", "Chicken Curry"}, names)
}

func TestAllUserChoicesDeniedForNonAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := newScheduleService(db)

	choices, err := svc.GetAllUserChoices(context.Background(), utils.RoleUser)
	require.ErrorIs(t, err, utils.ErrAccessDenied)
	assert.Nil(t, choices, "denied caller must receive no data")
}

func TestAllUserChoicesAdminViewDescending(t *testing.T) {
	db := newTestDB(t)
	_, userRole := createRoles(t, db)
	alice := createUser(t, db, "Alice", "alice@example.com", userRole.ID, false)
	bob := createUser(t, db, "Bob", "bob@example.com", userRole.ID, false)
	schedules := createScheduleWeek(t, db, "Dinner")

	base := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	for i, u := range []db_models.User{alice, bob, alice} {
		day := base.AddDate(0, 0, i)
		order := db_models.Order{
			UserID:     u.ID,
			ScheduleID: schedules[day.Weekday().String()],
			OrderDate:  day,
		}
		require.NoError(t, db.Create(&order).Error)
	}

	svc := newScheduleService(db)
	choices, err := svc.GetAllUserChoices(context.Background(), utils.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, choices, 3)

	assert.Equal(t, "2024-03-12", choices[0].OrderDate)
	assert.Equal(t, "2024-03-11", choices[1].OrderDate)
	assert.Equal(t, "2024-03-10", choices[2].OrderDate)

	assert.Equal(t, "Alice", choices[0].UserName)
	assert.Equal(t, "alice@example.com", choices[0].UserEmail)
	assert.Equal(t, "Bob", choices[1].UserName)
	for _, choice := range choices {
		assert.Equal(t, "Dinner", choice.MealName)
		assert.NotZero(t, choice.UserID)
	}
}

func TestUserChoicesSelfAndAdminAccess(t *testing.T) {
	db := newTestDB(t)
	_, userRole := createRoles(t, db)
	alice := createUser(t, db, "Alice", "alice@example.com", userRole.ID, false)
	bob := createUser(t, db, "Bob", "bob@example.com", userRole.ID, false)
	schedules := createScheduleWeek(t, db, "Lunch")

	order := db_models.Order{
		UserID:     alice.ID,
		ScheduleID: schedules["Monday"],
		OrderDate:  time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&order).Error)

	svc := newScheduleService(db)

	// Self read is allowed.
	own, err := svc.GetUserChoices(context.Background(), utils.RoleUser, alice.ID, alice.ID)
	require.NoError(t, err)
	assert.Len(t, own, 1)

	// Reading someone else's choices is not.
	_, err = svc.GetUserChoices(context.Background(), utils.RoleUser, bob.ID, alice.ID)
	require.ErrorIs(t, err, utils.ErrAccessDenied)

	// Admin can read anyone's.
	asAdmin, err := svc.GetUserChoices(context.Background(), utils.RoleAdmin, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Len(t, asAdmin, 1)
}
