package dto

// CategoryRequest 创建/更新分类请求
// 更新时空字段表示不修改
type CategoryRequest struct {
	Type        string `json:"type" binding:"omitempty,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// PublisherRequest 创建/更新出版商请求
type PublisherRequest struct {
	Name        string `json:"name" binding:"omitempty,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
	Website     string `json:"website" binding:"omitempty,max=200"`
	Country     string `json:"country" binding:"omitempty,max=100"`
}

// AuthorRequest 创建/更新作者请求
type AuthorRequest struct {
	Name      string `json:"name" binding:"omitempty,max=100"`
	Biography string `json:"biography" binding:"omitempty,max=2000"`
	Country   string `json:"country" binding:"omitempty,max=100"`
}
