package dto

// CreateGameRequest 创建游戏请求
type CreateGameRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Price       int64  `json:"price" binding:"required,gt=0"` // 价格（分）
	Edition     int    `json:"edition" binding:"omitempty,gte=1"`
	AgeMin      int    `json:"age_min" binding:"omitempty,gte=0"`
	PlayersMin  int    `json:"players_min" binding:"omitempty,gte=1"`
	PlayersMax  int    `json:"players_max" binding:"omitempty,gte=1"`
	Duration    int    `json:"duration" binding:"omitempty,gte=1"` // 单局时长（分钟）
	CategoryID  uint   `json:"category_id" binding:"required"`
	PublisherID uint   `json:"publisher_id" binding:"required"`
	AuthorIDs   []uint `json:"author_ids" binding:"omitempty"`
}

// UpdateGameRequest 更新游戏请求
// 指针字段为null/缺省表示不修改
type UpdateGameRequest struct {
	Name        string `json:"name" binding:"omitempty,max=200"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Price       *int64 `json:"price" binding:"omitempty,gt=0"`
	Edition     *int   `json:"edition" binding:"omitempty,gte=1"`
	AgeMin      *int   `json:"age_min" binding:"omitempty,gte=0"`
	PlayersMin  *int   `json:"players_min" binding:"omitempty,gte=1"`
	PlayersMax  *int   `json:"players_max" binding:"omitempty,gte=1"`
	Duration    *int   `json:"duration" binding:"omitempty,gte=1"`
	CategoryID  *uint  `json:"category_id" binding:"omitempty"`
	PublisherID *uint  `json:"publisher_id" binding:"omitempty"`
	AuthorIDs   []uint `json:"author_ids"`
	Available   *bool  `json:"available"`
}

// SearchGamesRequest 游戏搜索请求（query参数）
// 指针字段缺省表示该维度不过滤
type SearchGamesRequest struct {
	Keyword     string `form:"keyword"`
	CategoryID  *uint  `form:"category_id"`
	PublisherID *uint  `form:"publisher_id"`
	PriceMin    *int64 `form:"price_min" binding:"omitempty,gte=0"`
	PriceMax    *int64 `form:"price_max" binding:"omitempty,gte=0"`
	AgeMin      *int   `form:"age_min" binding:"omitempty,gte=0"`
	PlayersMin  *int   `form:"players_min" binding:"omitempty,gte=1"`
	PlayersMax  *int   `form:"players_max" binding:"omitempty,gte=1"`
	MaxDuration *int   `form:"max_duration" binding:"omitempty,gte=1"`
	Available   *bool  `form:"available"`
}

// StockAdjustRequest 库存入库/出库请求
type StockAdjustRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// StockMinimumRequest 调整安全库存阈值请求
type StockMinimumRequest struct {
	StockMinimum *int `json:"stock_minimum" binding:"required,gte=0"`
}
