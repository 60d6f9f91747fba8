package purchase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/xiebiao/gamesup/internal/domain/game"
	"github.com/xiebiao/gamesup/internal/domain/inventory"
	"github.com/xiebiao/gamesup/internal/domain/purchase"
	apperrors "github.com/xiebiao/gamesup/pkg/errors"
	"github.com/xiebiao/gamesup/pkg/metrics"
	"github.com/xiebiao/gamesup/pkg/mq"
)

// TxManager 事务执行器接口
// 生产环境注入mysql.TxManager；单元测试注入直通实现
type TxManager interface {
	Transaction(ctx context.Context, fn func(txCtx context.Context) error) error
}

// CreatePurchaseUseCase 创建订单用例
// 教学要点：这是整个项目最核心的用例之一
// 涉及：事务处理、并发控制、价格快照、业务规则校验
type CreatePurchaseUseCase struct {
	purchaseRepo  purchase.Repository
	gameRepo      game.Repository
	inventoryRepo inventory.Repository
	txManager     TxManager
	publisher     *mq.Publisher // 可为nil（MQ未启用）
}

// NewCreatePurchaseUseCase 创建下单用例
func NewCreatePurchaseUseCase(
	purchaseRepo purchase.Repository,
	gameRepo game.Repository,
	inventoryRepo inventory.Repository,
	txManager TxManager,
	publisher *mq.Publisher,
) *CreatePurchaseUseCase {
	return &CreatePurchaseUseCase{
		purchaseRepo:  purchaseRepo,
		gameRepo:      gameRepo,
		inventoryRepo: inventoryRepo,
		txManager:     txManager,
		publisher:     publisher,
	}
}

// CreatePurchaseRequest 下单请求DTO
type CreatePurchaseRequest struct {
	UserID uint                 // 买家用户ID（从JWT中提取）
	Lines  []CreatePurchaseLine // 订单明细
}

// CreatePurchaseLine 订单明细项
type CreatePurchaseLine struct {
	GameID        uint   // 游戏ID
	Quantity      int    // 购买数量
	DiscountPrice *int64 // 折扣单价（分），nil表示按原价结算
}

// PurchaseCreatedEvent 下单成功事件消息体
type PurchaseCreatedEvent struct {
	PurchaseID uint   `json:"purchase_id"`
	PurchaseNo string `json:"purchase_no"`
	UserID     uint   `json:"user_id"`
	Total      int64  `json:"total"`
	LineCount  int    `json:"line_count"`
	OccurredAt string `json:"occurred_at"`
}

// Execute 执行下单用例
// 教学重点：防止超卖的完整流程
//
// 核心问题：库存超卖
// 场景：游戏库存10盒，100人同时下单
// 错误实现：
//  1. 查询库存 → 10盒
//  2. 判断够不够 → 够
//  3. 扣减库存 → stock = stock - 1
//     结果：100个请求都通过了步骤2，最后卖出100盒（超卖90盒！）
//
// 正确实现：悲观锁
//  1. SELECT FOR UPDATE 锁定库存行
//  2. 判断库存是否充足
//  3. 扣减库存
//  4. 创建订单
//  5. COMMIT释放锁
func (uc *CreatePurchaseUseCase) Execute(ctx context.Context, req CreatePurchaseRequest) (*PurchaseDTO, error) {
	start := time.Now()

	// 1. 参数校验
	if len(req.Lines) == 0 {
		return nil, purchase.ErrEmptyLines
	}
	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return nil, purchase.ErrInvalidQuantity
		}
	}

	// 按GameID升序加锁，多行订单并发下单时避免交叉死锁
	lines := make([]CreatePurchaseLine, len(req.Lines))
	copy(lines, req.Lines)
	sort.Slice(lines, func(i, j int) bool { return lines[i].GameID < lines[j].GameID })

	// 使用事务执行整个下单流程
	// 教学要点：事务保证原子性，要么全成功，要么全失败
	var result *purchase.Purchase
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		purchaseLines := make([]purchase.Line, 0, len(lines))
		for _, line := range lines {
			// ========================================
			// 步骤1：锁定库存行（悲观锁，防止并发超卖）
			// ========================================
			// LockByGameID执行：SELECT * FROM inventories WHERE game_id = ? FOR UPDATE
			// 其他事务必须等待当前事务COMMIT或ROLLBACK后才能访问该行
			inv, err := uc.inventoryRepo.LockByGameID(txCtx, line.GameID)
			if err != nil {
				return err
			}

			// ========================================
			// 步骤2：价格快照与上架检查
			// ========================================
			// 教学要点：使用"锁定时的价格"而非前端传递的价格
			// 防止改价攻击：用户在前端修改价格提交
			g, err := uc.gameRepo.FindByID(txCtx, line.GameID)
			if err != nil {
				return err
			}
			if !g.Available {
				// 业务规则违反，返回400而非500
				return apperrors.New(apperrors.ErrCodeBusinessError,
					fmt.Sprintf("游戏《%s》已下架，无法购买", g.Name))
			}

			// ========================================
			// 步骤3：扣减库存
			// ========================================
			// 教学要点：必须在锁定后扣减，否则可能并发扣减导致超卖
			// Decrement是全有或全无：数量超过现存库存时返回ErrInsufficientStock
			if err := inv.Decrement(line.Quantity); err != nil {
				metrics.IncCounterVec(metrics.StockDecrementsTotal, map[string]string{"result": "insufficient"})
				return err
			}
			if err := uc.inventoryRepo.Update(txCtx, inv); err != nil {
				return err
			}
			metrics.IncCounterVec(metrics.StockDecrementsTotal, map[string]string{"result": "success"})

			purchaseLines = append(purchaseLines, purchase.Line{
				GameID:        line.GameID,
				Quantity:      line.Quantity,
				UnitPrice:     g.Price, // 数据库中的当前价格快照
				DiscountPrice: line.DiscountPrice,
			})
		}

		// ========================================
		// 步骤4：创建订单（总金额由明细自动计算）
		// ========================================
		purchaseNo := purchase.GeneratePurchaseNo()
		p, err := purchase.NewPurchase(purchaseNo, req.UserID, purchaseLines)
		if err != nil {
			return err
		}

		// 持久化订单（包含订单明细，同一事务）
		if err := uc.purchaseRepo.Create(txCtx, p); err != nil {
			return err
		}

		// ========================================
		// 步骤5：返回订单（事务自动COMMIT）
		// ========================================
		result = p
		return nil
	})

	metrics.ObserveHistogram(metrics.PurchaseCreationDuration, time.Since(start).Seconds())
	if err != nil {
		metrics.IncCounter(metrics.PurchasesFailedTotal)
		return nil, err
	}
	metrics.IncCounter(metrics.PurchasesCreatedTotal)

	// 事务提交后发布下单事件（尽力而为，失败不影响下单结果）
	uc.notifyCreated(result)

	return toPurchaseDTO(result), nil
}

// notifyCreated 发布purchase.created事件
func (uc *CreatePurchaseUseCase) notifyCreated(p *purchase.Purchase) {
	if uc.publisher == nil {
		return
	}

	event := PurchaseCreatedEvent{
		PurchaseID: p.ID,
		PurchaseNo: p.PurchaseNo,
		UserID:     p.UserID,
		Total:      p.Total,
		LineCount:  len(p.Lines),
		OccurredAt: time.Now().Format(time.RFC3339),
	}
	if err := uc.publisher.Publish("purchase.created", event); err != nil {
		// 事件丢失可以接受，订单本身已落库
		log.Printf("⚠️  订单创建事件发布失败: purchase_no=%s, err=%v", p.PurchaseNo, err)
	}
}
