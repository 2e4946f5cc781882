package response_models

type OrderResponse struct {
	ID         uint   `json:"id"`
	UserID     uint   `json:"userId"`
	ScheduleID uint   `json:"scheduleId"`
	OrderDate  string `json:"orderDate"`
}

type UserOrderResponse struct {
	MealName  string `json:"mealName"`
	DayOfWeek string `json:"dayOfWeek"`
	OrderDate string `json:"orderDate"`
}

type AdminOrderResponse struct {
	UserID    uint   `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	MealName  string `json:"mealName"`
	DayOfWeek string `json:"dayOfWeek"`
	OrderDate string `json:"orderDate"`
}

// Per-date outcome of a month scheduling run. The loop is not atomic:
// earlier creates stay committed when a later date fails, so every date
// reports its own status.
type DayOutcomeStatus string

const (
	DayCreated DayOutcomeStatus = "created"
	DaySkipped DayOutcomeStatus = "skipped"
	DayFailed  DayOutcomeStatus = "failed"
)

type DayOutcome struct {
	Date       string           `json:"date"`
	DayOfWeek  string           `json:"dayOfWeek"`
	Status     DayOutcomeStatus `json:"status"`
	ScheduleID uint             `json:"scheduleId,omitempty"`
	Error      string           `json:"error,omitempty"`
}

type MonthScheduleResponse struct {
	Orders   []OrderResponse `json:"orders"`
	Outcomes []DayOutcome    `json:"outcomes"`
}
