package db_models

type Item struct {
	BaseModel
	ItemName string `gorm:"unique" json:"itemName"`
	Category string `json:"category"`

	Meals []Meal `gorm:"many2many:meal_items" json:"-"`
}
