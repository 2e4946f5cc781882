package response_models

type ItemResponse struct {
	ID       uint   `json:"id"`
	ItemName string `json:"itemName"`
	Category string `json:"category"`
}

type MealResponse struct {
	ID       uint           `json:"id"`
	MealName string         `json:"mealName"`
	Items    []ItemResponse `json:"items"`
}

type ScheduleEntryResponse struct {
	ID        uint         `json:"id"`
	MealID    uint         `json:"mealId"`
	DayOfWeek string       `json:"dayOfWeek"`
	Meal      MealResponse `json:"meal"`
}
