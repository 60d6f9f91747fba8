package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/gamesup/internal/domain/inventory"
	apperrors "github.com/xiebiao/gamesup/pkg/errors"
)

// inventoryRepository 库存仓储实现（MySQL）
// 设计说明：
// 1. LockByGameID使用SELECT FOR UPDATE悲观锁，防止两个订单
//    并发扣减同一库存行
// 2. 必须配合TxManager在事务中使用（事务DB从context提取）
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository 创建库存仓储
func NewInventoryRepository(db *gorm.DB) inventory.Repository {
	return &inventoryRepository{db: db}
}

// Create 创建库存记录
func (r *inventoryRepository) Create(ctx context.Context, inv *inventory.Inventory) error {
	model := &InventoryModel{
		GameID:       inv.GameID,
		Stock:        inv.Stock,
		StockMinimum: inv.StockMinimum,
		Available:    inv.Available,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建库存记录失败")
	}

	inv.ID = model.ID
	inv.CreatedAt = model.CreatedAt
	inv.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找库存记录
func (r *inventoryRepository) FindByID(ctx context.Context, id uint) (*inventory.Inventory, error) {
	var model InventoryModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inventory.ErrInventoryNotFound
		}
		return nil, apperrors.Wrap(err, "查询库存失败")
	}
	return toInventoryEntity(&model), nil
}

// FindByGameID 根据游戏ID查找库存记录
func (r *inventoryRepository) FindByGameID(ctx context.Context, gameID uint) (*inventory.Inventory, error) {
	var model InventoryModel
	err := getDB(ctx, r.db).Where("game_id = ?", gameID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inventory.ErrInventoryNotFound
		}
		return nil, apperrors.Wrap(err, "查询库存失败")
	}
	return toInventoryEntity(&model), nil
}

// LockByGameID 悲观锁查询库存行（用于订单创建）
// SELECT ... FOR UPDATE：同一行的并发事务在此串行化
func (r *inventoryRepository) LockByGameID(ctx context.Context, gameID uint) (*inventory.Inventory, error) {
	var model InventoryModel
	err := getDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("game_id = ?", gameID).
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inventory.ErrInventoryNotFound
		}
		return nil, apperrors.Wrap(err, "锁定库存失败")
	}

	return toInventoryEntity(&model), nil
}

// FindAll 查询全部库存记录
func (r *inventoryRepository) FindAll(ctx context.Context) ([]*inventory.Inventory, error) {
	var models []InventoryModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询库存列表失败")
	}
	return toInventoryEntities(models), nil
}

// FindLowStock 查询低于安全库存的记录
func (r *inventoryRepository) FindLowStock(ctx context.Context) ([]*inventory.Inventory, error) {
	var models []InventoryModel
	err := getDB(ctx, r.db).Where("stock <= stock_minimum").Order("id ASC").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询低库存列表失败")
	}
	return toInventoryEntities(models), nil
}

// Update 更新库存记录
// Save写入全部字段（Available为false也要落库）
func (r *inventoryRepository) Update(ctx context.Context, inv *inventory.Inventory) error {
	model := &InventoryModel{
		ID:           inv.ID,
		GameID:       inv.GameID,
		Stock:        inv.Stock,
		StockMinimum: inv.StockMinimum,
		Available:    inv.Available,
		CreatedAt:    inv.CreatedAt,
	}

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新库存失败")
	}

	inv.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除库存记录
func (r *inventoryRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&InventoryModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除库存失败")
	}
	if result.RowsAffected == 0 {
		return inventory.ErrInventoryNotFound
	}
	return nil
}

// toInventoryEntity GORM模型 → 领域实体
func toInventoryEntity(model *InventoryModel) *inventory.Inventory {
	return &inventory.Inventory{
		ID:           model.ID,
		GameID:       model.GameID,
		Stock:        model.Stock,
		StockMinimum: model.StockMinimum,
		Available:    model.Available,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func toInventoryEntities(models []InventoryModel) []*inventory.Inventory {
	inventories := make([]*inventory.Inventory, len(models))
	for i := range models {
		inventories[i] = toInventoryEntity(&models[i])
	}
	return inventories
}
