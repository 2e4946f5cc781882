package infra

import (
	"gorm.io/gorm"

	"github.com/Abidstic/Manush-Tech/internal/models/db_models"
	"github.com/Abidstic/Manush-Tech/pkg/utils"
)

// Seed loads the static reference data: roles, demo users, the item catalog,
// the three meals, and the 7-day x 3-meal weekly schedule template. Safe to
// run repeatedly; existing rows are left untouched.
func Seed(db *gorm.DB) error {
	for _, name := range []string{"Admin", "User"} {
		role := db_models.Role{RoleName: name}
		if err := db.Where(db_models.Role{RoleName: name}).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}

	var adminRole, userRole db_models.Role
	if err := db.Where("role_name = ?", "Admin").First(&adminRole).Error; err != nil {
		return err
	}
	if err := db.Where("role_name = ?", "User").First(&userRole).Error; err != nil {
		return err
	}

	users := []struct {
		Email    string
		Password string
		Name     string
		RoleID   uint
		IsBanned bool
	}{
		{"admin@example.com", "admin123", "Admin User", adminRole.ID, false},
		{"user1@example.com", "user123", "Regular User 1", userRole.ID, false},
		{"user2@example.com", "user123", "Regular User 2", userRole.ID, false},
		{"banneduser@example.com", "banned123", "Banned User", userRole.ID, true},
	}
	for _, u := range users {
		var count int64
		if err := db.Model(&db_models.User{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		hashed, err := utils.HashPassword(u.Password)
		if err != nil {
			return err
		}
		user := db_models.User{
			Email:    u.Email,
			Password: hashed,
			Name:     u.Name,
			RoleID:   u.RoleID,
			IsBanned: u.IsBanned,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}

	items := []db_models.Item{
		{ItemName: "Chicken Curry", Category: "Protein"},
		{ItemName: "Rice", Category: "Starch"},
		{ItemName: "Fish Curry", Category: "Protein"},
		{ItemName: "Egg Curry", Category: "Protein"},
		{ItemName: "Egg Bhorta", Category: "Protein"},
		{ItemName: "Potato Bhorta", Category: "Vegetables"},
		{ItemName: "Daal", Category: "Protein"},
		{ItemName: "Begun Bhaji", Category: "Vegetables"},
	}
	for _, item := range items {
		rec := item
		if err := db.Where(db_models.Item{ItemName: item.ItemName}).FirstOrCreate(&rec).Error; err != nil {
			return err
		}
	}

	for _, name := range []string{"Breakfast", "Lunch", "Dinner"} {
		meal := db_models.Meal{MealName: name}
		if err := db.Where(db_models.Meal{MealName: name}).FirstOrCreate(&meal).Error; err != nil {
			return err
		}
	}

	mealItems := map[string][]string{
		"Breakfast": {"Egg Bhorta", "Rice"},
		"Lunch":     {"Chicken Curry", "Rice", "Daal"},
		"Dinner":    {"Fish Curry", "Rice", "Begun Bhaji"},
	}
	for mealName, itemNames := range mealItems {
		var meal db_models.Meal
		if err := db.Where("meal_name = ?", mealName).First(&meal).Error; err != nil {
			return err
		}
		var linked []db_models.Item
		if err := db.Where("item_name IN ?", itemNames).Find(&linked).Error; err != nil {
			return err
		}
		if err := db.Model(&meal).Association("Items").Replace(linked); err != nil {
			return err
		}
	}

	// One breakfast/lunch/dinner slot per weekday.
	var meals []db_models.Meal
	if err := db.Find(&meals).Error; err != nil {
		return err
	}
	for _, day := range utils.WeekdayNames {
		for _, meal := range meals {
			entry := db_models.MealSchedule{MealID: meal.ID, DayOfWeek: day}
			if err := db.Where(db_models.MealSchedule{MealID: meal.ID, DayOfWeek: day}).
				FirstOrCreate(&entry).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
