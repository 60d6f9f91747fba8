package avis

import (
	"time"
)

// Avis 游戏评价实体
// 设计说明：
// 1. 评分取值[1,5]的整数
// 2. 新建评价默认未审核（Approved=false），审核通过后才计入评分聚合
// 3. 只保存UserID/GameID外键，不持有跨聚合对象引用
type Avis struct {
	ID        uint
	UserID    uint
	GameID    uint
	Comment   string
	Rating    int // 评分[1,5]
	Approved  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAvis 创建评价（工厂方法）
func NewAvis(userID, gameID uint, comment string, rating int) (*Avis, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	now := time.Now()
	return &Avis{
		UserID:    userID,
		GameID:    gameID,
		Comment:   comment,
		Rating:    rating,
		Approved:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update 更新评价内容（重新进入待审核状态）
func (a *Avis) Update(comment string, rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	a.Comment = comment
	a.Rating = rating
	a.Approved = false
	a.UpdatedAt = time.Now()
	return nil
}

// Approve 审核通过（仅管理员操作）
func (a *Avis) Approve() {
	a.Approved = true
	a.UpdatedAt = time.Now()
}

// IsOwnedBy 检查评价是否属于指定用户
func (a *Avis) IsOwnedBy(userID uint) bool {
	return a.UserID == userID
}
