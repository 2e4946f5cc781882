package db_models

type Meal struct {
	BaseModel
	MealName string `gorm:"unique" json:"mealName"`

	Items []Item `gorm:"many2many:meal_items" json:"items"`
}

// MealSchedule is one weekly-recurring slot: a meal on a named weekday.
// The seed creates exactly one breakfast/lunch/dinner entry per day.
type MealSchedule struct {
	BaseModel
	MealID    uint   `json:"mealId"`
	Meal      Meal   `json:"meal"`
	DayOfWeek string `json:"dayOfWeek"`
}
