package wishlist

import (
	"context"
)

// Repository 心愿单仓储接口
type Repository interface {
	// Create 创建条目
	// 注意：(user_id, game_id)重复时返回ErrDuplicateItem
	Create(ctx context.Context, item *Item) error

	// FindByID 根据ID查找条目
	// 如果不存在，返回ErrItemNotFound
	FindByID(ctx context.Context, id uint) (*Item, error)

	// FindByUserID 查询用户的心愿单（优先级倒序，同优先级按加入时间倒序）
	FindByUserID(ctx context.Context, userID uint) ([]*Item, error)

	// FindByUserAndGame 查询用户是否已收藏某游戏
	// 如果不存在，返回ErrItemNotFound
	FindByUserAndGame(ctx context.Context, userID, gameID uint) (*Item, error)

	// Update 更新条目
	Update(ctx context.Context, item *Item) error

	// Delete 删除条目
	// 如果不存在，返回ErrItemNotFound
	Delete(ctx context.Context, id uint) error
}
