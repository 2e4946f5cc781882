package request_models

// OrderDate is an ISO-8601 calendar date ("2006-01-02"); the controller
// parses it before the service sees it.
type UpdateChoiceRequest struct {
	UserID     uint   `json:"userId" binding:"required"`
	ScheduleID uint   `json:"scheduleId" binding:"required"`
	OrderDate  string `json:"orderDate" binding:"required"`
}

// MealChoices maps full English weekday names (Sunday..Saturday) to the
// chosen schedule entry id. Absent weekdays are skipped.
type ScheduleMonthRequest struct {
	UserID      uint            `json:"userId" binding:"required"`
	Month       int             `json:"month" binding:"required,min=1,max=12"`
	Year        int             `json:"year" binding:"required"`
	MealChoices map[string]uint `json:"mealChoices" binding:"required"`
}
