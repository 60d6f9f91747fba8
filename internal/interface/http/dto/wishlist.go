package dto

// AddWishlistRequest 加入心愿单请求
type AddWishlistRequest struct {
	GameID   uint   `json:"game_id" binding:"required"`
	Priority int    `json:"priority" binding:"omitempty,gte=1,lte=5"` // 缺省1（最低）
	Note     string `json:"note" binding:"omitempty,max=500"`
}

// UpdateWishlistRequest 调整心愿单条目请求
type UpdateWishlistRequest struct {
	Priority int    `json:"priority" binding:"required,gte=1,lte=5"`
	Note     string `json:"note" binding:"omitempty,max=500"`
}
