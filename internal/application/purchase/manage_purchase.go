package purchase

import (
	"context"
	"fmt"

	"github.com/xiebiao/gamesup/internal/domain/inventory"
	"github.com/xiebiao/gamesup/internal/domain/purchase"
	apperrors "github.com/xiebiao/gamesup/pkg/errors"
)

// ManagePurchaseUseCase 订单查询与状态管理用例
// 设计说明：
// 1. 查询接口做归属校验：普通用户只能访问自己的订单，管理员不受限
// 2. 取消订单回补库存，与下单扣减走同一把悲观锁（事务内LockByGameID）
// 3. 明细修改只允许PENDING状态的订单，数量变化同步调整库存
type ManagePurchaseUseCase struct {
	purchaseRepo  purchase.Repository
	inventoryRepo inventory.Repository
	txManager     TxManager
}

// NewManagePurchaseUseCase 创建订单管理用例
func NewManagePurchaseUseCase(
	purchaseRepo purchase.Repository,
	inventoryRepo inventory.Repository,
	txManager TxManager,
) *ManagePurchaseUseCase {
	return &ManagePurchaseUseCase{
		purchaseRepo:  purchaseRepo,
		inventoryRepo: inventoryRepo,
		txManager:     txManager,
	}
}

// LineDTO 订单明细DTO
type LineDTO struct {
	ID             uint   `json:"id"`
	GameID         uint   `json:"game_id"`
	Quantity       int    `json:"quantity"`
	UnitPrice      int64  `json:"unit_price"`
	DiscountPrice  *int64 `json:"discount_price"`
	EffectivePrice int64  `json:"effective_price"`
	LineTotal      int64  `json:"line_total"`
}

// PurchaseDTO 订单DTO
type PurchaseDTO struct {
	ID         uint      `json:"id"`
	PurchaseNo string    `json:"purchase_no"`
	UserID     uint      `json:"user_id"`
	Date       string    `json:"date"`
	Total      int64     `json:"total"`
	TotalEuros string    `json:"total_euros"`
	Status     string    `json:"status"`
	Paid       bool      `json:"paid"`
	Delivered  bool      `json:"delivered"`
	Archived   bool      `json:"archived"`
	Lines      []LineDTO `json:"lines"`
	CreatedAt  string    `json:"created_at"`
}

// PurchasePage 分页结果DTO
type PurchasePage struct {
	List       []PurchaseDTO `json:"list"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}

// Get 查询订单详情（归属校验）
func (uc *ManagePurchaseUseCase) Get(ctx context.Context, id, requesterID uint, isAdmin bool) (*PurchaseDTO, error) {
	p, err := uc.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && !p.IsOwnedBy(requesterID) {
		return nil, apperrors.ErrForbidden
	}
	return toPurchaseDTO(p), nil
}

// ListByUser 查询用户的订单列表（分页）
func (uc *ManagePurchaseUseCase) ListByUser(ctx context.Context, userID uint, page, pageSize int) (*PurchasePage, error) {
	// 参数默认值与范围限制
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	purchases, total, err := uc.purchaseRepo.ListByUserID(ctx, userID, page, pageSize)
	if err != nil {
		return nil, err
	}

	list := make([]PurchaseDTO, len(purchases))
	for i, p := range purchases {
		list[i] = *toPurchaseDTO(p)
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &PurchasePage{
		List:       list,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// ListAll 查询全部订单（管理端）
func (uc *ManagePurchaseUseCase) ListAll(ctx context.Context) ([]PurchaseDTO, error) {
	purchases, err := uc.purchaseRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]PurchaseDTO, len(purchases))
	for i, p := range purchases {
		list[i] = *toPurchaseDTO(p)
	}
	return list, nil
}

// Confirm 确认订单（管理端）
func (uc *ManagePurchaseUseCase) Confirm(ctx context.Context, id uint) (*PurchaseDTO, error) {
	return uc.transition(ctx, id, (*purchase.Purchase).Confirm)
}

// Ship 发货（管理端）
func (uc *ManagePurchaseUseCase) Ship(ctx context.Context, id uint) (*PurchaseDTO, error) {
	return uc.transition(ctx, id, (*purchase.Purchase).Ship)
}

// Deliver 送达（管理端）
func (uc *ManagePurchaseUseCase) Deliver(ctx context.Context, id uint) (*PurchaseDTO, error) {
	return uc.transition(ctx, id, (*purchase.Purchase).Deliver)
}

// MarkPaid 标记已支付（管理端）
func (uc *ManagePurchaseUseCase) MarkPaid(ctx context.Context, id uint) (*PurchaseDTO, error) {
	p, err := uc.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.MarkPaid()
	if err := uc.purchaseRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPurchaseDTO(p), nil
}

// Archive 归档订单（管理端）
func (uc *ManagePurchaseUseCase) Archive(ctx context.Context, id uint) (*PurchaseDTO, error) {
	p, err := uc.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Archive()
	if err := uc.purchaseRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPurchaseDTO(p), nil
}

// Cancel 取消订单并回补库存
// 归属校验：用户只能取消自己的订单（管理员不受限）
// 教学要点：回补必须和状态变更在同一事务，否则取消失败时库存已加回
func (uc *ManagePurchaseUseCase) Cancel(ctx context.Context, id, requesterID uint, isAdmin bool) (*PurchaseDTO, error) {
	var result *purchase.Purchase
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		p, err := uc.purchaseRepo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if !isAdmin && !p.IsOwnedBy(requesterID) {
			return apperrors.ErrForbidden
		}

		// 状态机校验：只有PENDING/CONFIRMED可以取消
		if err := p.Cancel(); err != nil {
			return err
		}

		// 回补每一行的库存（与下单扣减同一把锁）
		for _, line := range p.Lines {
			inv, err := uc.inventoryRepo.LockByGameID(txCtx, line.GameID)
			if err != nil {
				return err
			}
			if err := inv.Increment(line.Quantity); err != nil {
				return err
			}
			if err := uc.inventoryRepo.Update(txCtx, inv); err != nil {
				return err
			}
		}

		if err := uc.purchaseRepo.Update(txCtx, p); err != nil {
			return err
		}
		result = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseDTO(result), nil
}

// UpdateLine 修改明细行的数量/折扣价（仅PENDING订单）
// 数量变化的差额同步调整库存：增购走扣减（可能因库存不足失败），减购回补
func (uc *ManagePurchaseUseCase) UpdateLine(ctx context.Context, purchaseID, lineID uint, quantity int, discountPrice *int64, requesterID uint, isAdmin bool) (*PurchaseDTO, error) {
	var result *purchase.Purchase
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		p, err := uc.purchaseRepo.FindByID(txCtx, purchaseID)
		if err != nil {
			return err
		}
		if !isAdmin && !p.IsOwnedBy(requesterID) {
			return apperrors.ErrForbidden
		}
		if p.Status != purchase.StatusPending {
			return purchase.ErrInvalidStatusTransition
		}

		old := findLine(p, lineID)
		if old == nil {
			return purchase.ErrLineNotFound
		}
		delta := quantity - old.Quantity

		if err := p.UpdateLine(lineID, quantity, discountPrice); err != nil {
			return err
		}

		if delta != 0 {
			inv, err := uc.inventoryRepo.LockByGameID(txCtx, old.GameID)
			if err != nil {
				return err
			}
			if delta > 0 {
				err = inv.Decrement(delta)
			} else {
				err = inv.Increment(-delta)
			}
			if err != nil {
				return err
			}
			if err := uc.inventoryRepo.Update(txCtx, inv); err != nil {
				return err
			}
		}

		if err := uc.purchaseRepo.Update(txCtx, p); err != nil {
			return err
		}
		result = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseDTO(result), nil
}

// RemoveLine 移除明细行并回补库存（仅PENDING订单）
// 最后一行不允许移除（订单明细不能为空），应改走取消订单
func (uc *ManagePurchaseUseCase) RemoveLine(ctx context.Context, purchaseID, lineID uint, requesterID uint, isAdmin bool) (*PurchaseDTO, error) {
	var result *purchase.Purchase
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		p, err := uc.purchaseRepo.FindByID(txCtx, purchaseID)
		if err != nil {
			return err
		}
		if !isAdmin && !p.IsOwnedBy(requesterID) {
			return apperrors.ErrForbidden
		}
		if p.Status != purchase.StatusPending {
			return purchase.ErrInvalidStatusTransition
		}
		if len(p.Lines) <= 1 {
			return purchase.ErrEmptyLines
		}

		old := findLine(p, lineID)
		if old == nil {
			return purchase.ErrLineNotFound
		}

		if err := p.RemoveLine(lineID); err != nil {
			return err
		}

		inv, err := uc.inventoryRepo.LockByGameID(txCtx, old.GameID)
		if err != nil {
			return err
		}
		if err := inv.Increment(old.Quantity); err != nil {
			return err
		}
		if err := uc.inventoryRepo.Update(txCtx, inv); err != nil {
			return err
		}

		if err := uc.purchaseRepo.Update(txCtx, p); err != nil {
			return err
		}
		result = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseDTO(result), nil
}

// Delete 删除订单（管理端，级联删除明细）
func (uc *ManagePurchaseUseCase) Delete(ctx context.Context, id uint) error {
	return uc.purchaseRepo.Delete(ctx, id)
}

// transition 状态转换的公共流程
func (uc *ManagePurchaseUseCase) transition(ctx context.Context, id uint, fn func(*purchase.Purchase) error) (*PurchaseDTO, error) {
	p, err := uc.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	if err := uc.purchaseRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPurchaseDTO(p), nil
}

func findLine(p *purchase.Purchase, lineID uint) *purchase.Line {
	for i := range p.Lines {
		if p.Lines[i].ID == lineID {
			line := p.Lines[i]
			return &line
		}
	}
	return nil
}

// toPurchaseDTO 领域实体 → 应用层DTO
func toPurchaseDTO(p *purchase.Purchase) *PurchaseDTO {
	lines := make([]LineDTO, len(p.Lines))
	for i := range p.Lines {
		l := &p.Lines[i]
		lines[i] = LineDTO{
			ID:             l.ID,
			GameID:         l.GameID,
			Quantity:       l.Quantity,
			UnitPrice:      l.UnitPrice,
			DiscountPrice:  l.DiscountPrice,
			EffectivePrice: l.EffectivePrice(),
			LineTotal:      l.Total(),
		}
	}
	return &PurchaseDTO{
		ID:         p.ID,
		PurchaseNo: p.PurchaseNo,
		UserID:     p.UserID,
		Date:       p.Date.Format("2006-01-02 15:04:05"),
		Total:      p.Total,
		TotalEuros: fmt.Sprintf("%.2f", float64(p.Total)/100.0),
		Status:     string(p.Status),
		Paid:       p.Paid,
		Delivered:  p.Delivered,
		Archived:   p.Archived,
		Lines:      lines,
		CreatedAt:  p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
