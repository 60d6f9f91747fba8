package wishlist

import (
	"time"
)

// Item 心愿单条目
// 设计说明：
// 1. (UserID, GameID)组合唯一，由数据库UNIQUE索引保证
// 2. 优先级取值[1,5]，1最低5最高，缺省1
type Item struct {
	ID        uint
	UserID    uint
	GameID    uint
	Priority  int // 优先级[1,5]
	Note      string
	AddedAt   time.Time
	UpdatedAt time.Time
}

// NewItem 创建心愿单条目（工厂方法）
func NewItem(userID, gameID uint, priority int, note string) (*Item, error) {
	if priority == 0 {
		priority = 1
	}
	if priority < 1 || priority > 5 {
		return nil, ErrInvalidPriority
	}
	now := time.Now()
	return &Item{
		UserID:    userID,
		GameID:    gameID,
		Priority:  priority,
		Note:      note,
		AddedAt:   now,
		UpdatedAt: now,
	}, nil
}

// Update 更新优先级和备注
func (i *Item) Update(priority int, note string) error {
	if priority < 1 || priority > 5 {
		return ErrInvalidPriority
	}
	i.Priority = priority
	i.Note = note
	i.UpdatedAt = time.Now()
	return nil
}

// IsOwnedBy 检查条目是否属于指定用户
func (i *Item) IsOwnedBy(userID uint) bool {
	return i.UserID == userID
}
