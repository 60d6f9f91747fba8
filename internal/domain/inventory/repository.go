package inventory

import (
	"context"
)

// Repository 库存仓储接口
type Repository interface {
	// Create 创建库存记录（随游戏创建）
	Create(ctx context.Context, inv *Inventory) error

	// FindByID 根据ID查找库存记录
	// 如果不存在，返回ErrInventoryNotFound
	FindByID(ctx context.Context, id uint) (*Inventory, error)

	// FindByGameID 根据游戏ID查找库存记录
	// 如果不存在，返回ErrInventoryNotFound
	FindByGameID(ctx context.Context, gameID uint) (*Inventory, error)

	// LockByGameID 锁定库存行（SELECT FOR UPDATE）
	// 必须在事务中调用（pkg/persistence的TxManager传递事务）
	LockByGameID(ctx context.Context, gameID uint) (*Inventory, error)

	// FindAll 查询全部库存记录
	FindAll(ctx context.Context) ([]*Inventory, error)

	// FindLowStock 查询低于安全库存的记录（stock <= stock_minimum）
	FindLowStock(ctx context.Context) ([]*Inventory, error)

	// Update 更新库存记录
	Update(ctx context.Context, inv *Inventory) error

	// Delete 删除库存记录
	Delete(ctx context.Context, id uint) error
}
