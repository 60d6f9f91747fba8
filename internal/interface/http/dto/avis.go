package dto

// CreateAvisRequest 发表评价请求
type CreateAvisRequest struct {
	GameID  uint   `json:"game_id" binding:"required"`
	Comment string `json:"comment" binding:"omitempty,max=2000"`
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
}

// UpdateAvisRequest 修改评价请求
type UpdateAvisRequest struct {
	Comment string `json:"comment" binding:"omitempty,max=2000"`
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
}
