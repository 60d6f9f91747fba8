package game

import (
	"context"
	"log"
	"time"

	"github.com/xiebiao/gamesup/internal/domain/inventory"
	"github.com/xiebiao/gamesup/pkg/metrics"
	"github.com/xiebiao/gamesup/pkg/mq"
)

// TxManager 事务执行器接口
// 生产环境注入mysql.TxManager；单元测试注入直通实现
type TxManager interface {
	Transaction(ctx context.Context, fn func(txCtx context.Context) error) error
}

// StockUseCase 库存管理用例（管理端）
// 设计说明：
// 1. 入库/出库都在事务里对库存行加悲观锁（SELECT FOR UPDATE），
//    与下单扣减走同一把锁，避免并发写冲突
// 2. 出库后若进入低库存区间，发布inventory.low_stock事件（尽力而为，
//    MQ不可用时不影响主流程）
type StockUseCase struct {
	inventoryRepo inventory.Repository
	txManager     TxManager
	publisher     *mq.Publisher // 可为nil（MQ未启用）
}

// NewStockUseCase 创建库存管理用例
func NewStockUseCase(inventoryRepo inventory.Repository, txManager TxManager, publisher *mq.Publisher) *StockUseCase {
	return &StockUseCase{
		inventoryRepo: inventoryRepo,
		txManager:     txManager,
		publisher:     publisher,
	}
}

// LowStockEvent 低库存事件消息体
type LowStockEvent struct {
	GameID       uint   `json:"game_id"`
	Stock        int    `json:"stock"`
	StockMinimum int    `json:"stock_minimum"`
	OccurredAt   string `json:"occurred_at"`
}

// Get 查询游戏库存
func (uc *StockUseCase) Get(ctx context.Context, gameID uint) (*StockInfo, error) {
	inv, err := uc.inventoryRepo.FindByGameID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return toStockInfo(inv), nil
}

// ListLowStock 查询低库存清单（补货提醒）
// 同时刷新低库存Gauge指标
func (uc *StockUseCase) ListLowStock(ctx context.Context) ([]LowStockEvent, error) {
	items, err := uc.inventoryRepo.FindLowStock(ctx)
	if err != nil {
		return nil, err
	}

	metrics.SetGauge(metrics.LowStockGames, float64(len(items)))

	list := make([]LowStockEvent, len(items))
	for i, inv := range items {
		list[i] = LowStockEvent{
			GameID:       inv.GameID,
			Stock:        inv.Stock,
			StockMinimum: inv.StockMinimum,
			OccurredAt:   inv.UpdatedAt.Format(time.RFC3339),
		}
	}
	return list, nil
}

// Increment 入库（补货）
func (uc *StockUseCase) Increment(ctx context.Context, gameID uint, quantity int) (*StockInfo, error) {
	var result *inventory.Inventory
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		inv, err := uc.inventoryRepo.LockByGameID(txCtx, gameID)
		if err != nil {
			return err
		}
		if err := inv.Increment(quantity); err != nil {
			return err
		}
		if err := uc.inventoryRepo.Update(txCtx, inv); err != nil {
			return err
		}
		result = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toStockInfo(result), nil
}

// Decrement 出库（手动核销、破损下架等管理操作）
// 扣减是全有或全无：数量超过现存库存时整体失败
func (uc *StockUseCase) Decrement(ctx context.Context, gameID uint, quantity int) (*StockInfo, error) {
	var result *inventory.Inventory
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		inv, err := uc.inventoryRepo.LockByGameID(txCtx, gameID)
		if err != nil {
			return err
		}
		if err := inv.Decrement(quantity); err != nil {
			metrics.IncCounterVec(metrics.StockDecrementsTotal, map[string]string{"result": "insufficient"})
			return err
		}
		if err := uc.inventoryRepo.Update(txCtx, inv); err != nil {
			return err
		}
		result = inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncCounterVec(metrics.StockDecrementsTotal, map[string]string{"result": "success"})
	uc.notifyIfLowStock(result)
	return toStockInfo(result), nil
}

// SetMinimum 调整安全库存阈值
func (uc *StockUseCase) SetMinimum(ctx context.Context, gameID uint, minimum int) (*StockInfo, error) {
	inv, err := uc.inventoryRepo.FindByGameID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if err := inv.SetStockMinimum(minimum); err != nil {
		return nil, err
	}
	if err := uc.inventoryRepo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return toStockInfo(inv), nil
}

// notifyIfLowStock 进入低库存区间时发布事件（尽力而为）
func (uc *StockUseCase) notifyIfLowStock(inv *inventory.Inventory) {
	if uc.publisher == nil || !inv.IsLowStock() {
		return
	}

	event := LowStockEvent{
		GameID:       inv.GameID,
		Stock:        inv.Stock,
		StockMinimum: inv.StockMinimum,
		OccurredAt:   time.Now().Format(time.RFC3339),
	}
	if err := uc.publisher.Publish("inventory.low_stock", event); err != nil {
		// 事件丢失可以接受，低库存清单接口兜底
		log.Printf("⚠️  低库存事件发布失败: game_id=%d, err=%v", inv.GameID, err)
	}
}

func toStockInfo(inv *inventory.Inventory) *StockInfo {
	return &StockInfo{
		Stock:        inv.Stock,
		StockMinimum: inv.StockMinimum,
		Available:    inv.Available,
		LowStock:     inv.IsLowStock(),
	}
}
