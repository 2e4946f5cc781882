package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Abidstic/Manush-Tech/internal/infra"
	"github.com/Abidstic/Manush-Tech/internal/models/db_models"
	"github.com/Abidstic/Manush-Tech/pkg/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, infra.AutoMigrate(db))
	return db
}

func createRoles(t *testing.T, db *gorm.DB) (admin, user db_models.Role) {
	t.Helper()
	admin = db_models.Role{RoleName: "Admin"}
	user = db_models.Role{RoleName: "User"}
	require.NoError(t, db.Create(&admin).Error)
	require.NoError(t, db.Create(&user).Error)
	return admin, user
}

func createUser(t *testing.T, db *gorm.DB, name, email string, roleID uint, banned bool) db_models.User {
	t.Helper()
	hashed, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	u := db_models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		RoleID:   roleID,
		IsBanned: banned,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

// createScheduleWeek seeds one meal with one schedule slot per weekday and
// returns the schedule ids keyed by weekday name.
func createScheduleWeek(t *testing.T, db *gorm.DB, mealName string) map[string]uint {
	t.Helper()
	meal := db_models.Meal{MealName: mealName}
	require.NoError(t, db.Create(&meal).Error)

	ids := make(map[string]uint, len(utils.WeekdayNames))
	for _, day := range utils.WeekdayNames {
		entry := db_models.MealSchedule{MealID: meal.ID, DayOfWeek: day}
		require.NoError(t, db.Create(&entry).Error)
		ids[day] = entry.ID
	}
	return ids
}

func countOrders(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&db_models.Order{}).Count(&count).Error)
	return count
}
