package inventory

import (
	"time"
)

// Inventory 库存实体
// 设计说明：
// 1. 每个游戏一条库存记录（一对一，game_id唯一）
// 2. Available是派生缓存标志，所有库存变更方法负责同步维护
// 3. 扣减是全有或全无：数量超过现存库存时整体失败，不做部分扣减
type Inventory struct {
	ID           uint
	GameID       uint
	Stock        int // 现存库存，>=0
	StockMinimum int // 安全库存阈值，缺省5
	Available    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewInventory 创建库存记录（工厂方法）
// 新建游戏时自动创建：stock=0、stockMinimum=5、available=true
func NewInventory(gameID uint) *Inventory {
	now := time.Now()
	return &Inventory{
		GameID:       gameID,
		Stock:        0,
		StockMinimum: 5,
		Available:    true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Decrement 扣减库存（下单出库）
// 业务规则：
// 1. 数量必须>0（拒绝负数和零）
// 2. 数量不能超过现存库存（全有或全无）
// 3. 扣减到0时Available翻转为false
func (i *Inventory) Decrement(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > i.Stock {
		return ErrInsufficientStock
	}
	i.Stock -= quantity
	if i.Stock == 0 {
		i.Available = false
	}
	i.UpdatedAt = time.Now()
	return nil
}

// Increment 增加库存（补货、订单取消回滚）
// 业务规则：
// 1. 数量必须>0（拒绝负数和零）
// 2. 库存>0后Available翻转为true
func (i *Inventory) Increment(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	i.Stock += quantity
	if i.Stock > 0 {
		i.Available = true
	}
	i.UpdatedAt = time.Now()
	return nil
}

// SetStockMinimum 调整安全库存阈值
func (i *Inventory) SetStockMinimum(minimum int) error {
	if minimum < 0 {
		return ErrInvalidStockMinimum
	}
	i.StockMinimum = minimum
	i.UpdatedAt = time.Now()
	return nil
}

// IsOutOfStock 是否缺货
func (i *Inventory) IsOutOfStock() bool {
	return i.Stock <= 0
}

// IsLowStock 是否低于安全库存
func (i *Inventory) IsLowStock() bool {
	return i.Stock <= i.StockMinimum
}
