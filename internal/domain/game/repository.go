package game

import (
	"context"
)

// Repository 游戏仓储接口
type Repository interface {
	// Create 创建游戏
	Create(ctx context.Context, game *Game) error

	// FindByID 根据ID查找游戏
	// 如果不存在，返回ErrGameNotFound
	FindByID(ctx context.Context, id uint) (*Game, error)

	// FindByIDs 批量查找（用于推荐结果解析），保持入参顺序
	FindByIDs(ctx context.Context, ids []uint) ([]*Game, error)

	// FindAll 按存储顺序查询全部游戏
	FindAll(ctx context.Context) ([]*Game, error)

	// FindFirst 按存储顺序取前limit个（推荐服务降级用）
	FindFirst(ctx context.Context, limit int) ([]*Game, error)

	// SearchByKeyword 关键词预过滤（LIKE name OR description，大小写不敏感）
	// 空关键词返回全部游戏
	SearchByKeyword(ctx context.Context, keyword string) ([]*Game, error)

	// FindByAuthorName 按作者名查询（精确匹配，大小写不敏感）
	FindByAuthorName(ctx context.Context, name string) ([]*Game, error)

	// Update 更新游戏（含作者关联的替换）
	Update(ctx context.Context, game *Game) error

	// Delete 删除游戏（级联删除其库存记录）
	// 如果不存在，返回ErrGameNotFound
	Delete(ctx context.Context, id uint) error
}
