package dto

// PurchaseLineRequest 下单明细项
type PurchaseLineRequest struct {
	GameID        uint   `json:"game_id" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,gt=0"`
	DiscountPrice *int64 `json:"discount_price" binding:"omitempty,gte=0"` // 折扣单价（分），可选
}

// CreatePurchaseRequest 下单请求
type CreatePurchaseRequest struct {
	Lines []PurchaseLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdateLineRequest 修改明细行请求
type UpdateLineRequest struct {
	Quantity      int    `json:"quantity" binding:"required,gt=0"`
	DiscountPrice *int64 `json:"discount_price" binding:"omitempty,gte=0"`
}

// PageQuery 分页查询参数
type PageQuery struct {
	Page     int `form:"page" binding:"omitempty,gte=1"`
	PageSize int `form:"page_size" binding:"omitempty,gte=1,lte=100"`
}
