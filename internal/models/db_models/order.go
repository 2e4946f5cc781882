package db_models

import "time"

// Order is a user's commitment to a schedule slot on a concrete calendar
// date. The composite unique index is what makes the upsert path safe under
// concurrent writers.
type Order struct {
	BaseModel
	UserID     uint         `gorm:"uniqueIndex:idx_user_schedule_date" json:"userId"`
	User       User         `json:"-"`
	ScheduleID uint         `gorm:"uniqueIndex:idx_user_schedule_date" json:"scheduleId"`
	Schedule   MealSchedule `gorm:"foreignKey:ScheduleID" json:"-"`
	OrderDate  time.Time    `gorm:"uniqueIndex:idx_user_schedule_date;type:date" json:"orderDate"`
}
