package request_models

type ItemRequest struct {
	ItemName string `json:"itemName" binding:"required"`
	Category string `json:"category" binding:"required"`
}
