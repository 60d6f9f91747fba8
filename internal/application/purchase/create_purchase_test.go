package purchase

import (
	"context"
	"errors"
	"testing"

	"github.com/xiebiao/gamesup/internal/domain/game"
	"github.com/xiebiao/gamesup/internal/domain/inventory"
	"github.com/xiebiao/gamesup/internal/domain/purchase"
	apperrors "github.com/xiebiao/gamesup/pkg/errors"
	"github.com/xiebiao/gamesup/pkg/metrics"
)

// =========================================
// 内存版Fake（单元测试不依赖数据库）
// =========================================

// fakeTxManager 直通事务：直接执行回调，不提供回滚
// 断言策略：失败用例只检查"订单未落库、库存未变"，
// 这两点由实体的全有或全无语义保证，不依赖回滚
type fakeTxManager struct{}

func (m *fakeTxManager) Transaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type fakeGameRepo struct {
	games map[uint]*game.Game
}

func (r *fakeGameRepo) Create(ctx context.Context, g *game.Game) error { return nil }
func (r *fakeGameRepo) FindByID(ctx context.Context, id uint) (*game.Game, error) {
	g, ok := r.games[id]
	if !ok {
		return nil, game.ErrGameNotFound
	}
	copied := *g
	return &copied, nil
}
func (r *fakeGameRepo) FindByIDs(ctx context.Context, ids []uint) ([]*game.Game, error) {
	return nil, nil
}
func (r *fakeGameRepo) FindAll(ctx context.Context) ([]*game.Game, error)   { return nil, nil }
func (r *fakeGameRepo) FindFirst(ctx context.Context, limit int) ([]*game.Game, error) {
	return nil, nil
}
func (r *fakeGameRepo) SearchByKeyword(ctx context.Context, keyword string) ([]*game.Game, error) {
	return nil, nil
}
func (r *fakeGameRepo) FindByAuthorName(ctx context.Context, name string) ([]*game.Game, error) {
	return nil, nil
}
func (r *fakeGameRepo) Update(ctx context.Context, g *game.Game) error { return nil }
func (r *fakeGameRepo) Delete(ctx context.Context, id uint) error      { return nil }

type fakeInventoryRepo struct {
	inventories map[uint]*inventory.Inventory // key: gameID
}

func (r *fakeInventoryRepo) Create(ctx context.Context, inv *inventory.Inventory) error { return nil }
func (r *fakeInventoryRepo) FindByID(ctx context.Context, id uint) (*inventory.Inventory, error) {
	return nil, inventory.ErrInventoryNotFound
}
func (r *fakeInventoryRepo) FindByGameID(ctx context.Context, gameID uint) (*inventory.Inventory, error) {
	return r.LockByGameID(ctx, gameID)
}
func (r *fakeInventoryRepo) LockByGameID(ctx context.Context, gameID uint) (*inventory.Inventory, error) {
	inv, ok := r.inventories[gameID]
	if !ok {
		return nil, inventory.ErrInventoryNotFound
	}
	copied := *inv
	return &copied, nil
}
func (r *fakeInventoryRepo) FindAll(ctx context.Context) ([]*inventory.Inventory, error) {
	return nil, nil
}
func (r *fakeInventoryRepo) FindLowStock(ctx context.Context) ([]*inventory.Inventory, error) {
	return nil, nil
}
func (r *fakeInventoryRepo) Update(ctx context.Context, inv *inventory.Inventory) error {
	copied := *inv
	r.inventories[inv.GameID] = &copied
	return nil
}
func (r *fakeInventoryRepo) Delete(ctx context.Context, id uint) error { return nil }

type fakePurchaseRepo struct {
	purchases []*purchase.Purchase
	nextID    uint
}

func (r *fakePurchaseRepo) Create(ctx context.Context, p *purchase.Purchase) error {
	r.nextID++
	p.ID = r.nextID
	for i := range p.Lines {
		p.Lines[i].ID = uint(i + 1)
		p.Lines[i].PurchaseID = p.ID
	}
	r.purchases = append(r.purchases, p)
	return nil
}
func (r *fakePurchaseRepo) FindByID(ctx context.Context, id uint) (*purchase.Purchase, error) {
	for _, p := range r.purchases {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, purchase.ErrPurchaseNotFound
}
func (r *fakePurchaseRepo) FindByPurchaseNo(ctx context.Context, purchaseNo string) (*purchase.Purchase, error) {
	return nil, purchase.ErrPurchaseNotFound
}
func (r *fakePurchaseRepo) FindAll(ctx context.Context) ([]*purchase.Purchase, error) {
	return r.purchases, nil
}
func (r *fakePurchaseRepo) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*purchase.Purchase, int64, error) {
	return r.purchases, int64(len(r.purchases)), nil
}
func (r *fakePurchaseRepo) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	return int64(len(r.purchases)), nil
}
func (r *fakePurchaseRepo) SumTotalByUserID(ctx context.Context, userID uint) (int64, error) {
	return 0, nil
}
func (r *fakePurchaseRepo) Update(ctx context.Context, p *purchase.Purchase) error { return nil }
func (r *fakePurchaseRepo) Delete(ctx context.Context, id uint) error              { return nil }

// =========================================
// 测试环境搭建
// =========================================

func newTestEnv() (*CreatePurchaseUseCase, *fakeGameRepo, *fakeInventoryRepo, *fakePurchaseRepo) {
	metrics.InitMetrics()

	gameRepo := &fakeGameRepo{games: map[uint]*game.Game{
		1: {ID: 1, Name: "Catan", Price: 4500, Available: true},
		2: {ID: 2, Name: "Azul", Price: 3500, Available: true},
		3: {ID: 3, Name: "绝版游戏", Price: 9900, Available: false},
	}}
	invRepo := &fakeInventoryRepo{inventories: map[uint]*inventory.Inventory{
		1: {ID: 1, GameID: 1, Stock: 10, StockMinimum: 5, Available: true},
		2: {ID: 2, GameID: 2, Stock: 2, StockMinimum: 5, Available: true},
		3: {ID: 3, GameID: 3, Stock: 0, StockMinimum: 5, Available: false},
	}}
	purchaseRepo := &fakePurchaseRepo{}

	uc := NewCreatePurchaseUseCase(purchaseRepo, gameRepo, invRepo, &fakeTxManager{}, nil)
	return uc, gameRepo, invRepo, purchaseRepo
}

// TestCreatePurchase 测试正常下单流程
func TestCreatePurchase(t *testing.T) {
	uc, _, invRepo, purchaseRepo := newTestEnv()

	discount := int64(3000)
	dto, err := uc.Execute(context.Background(), CreatePurchaseRequest{
		UserID: 7,
		Lines: []CreatePurchaseLine{
			{GameID: 1, Quantity: 2},                           // 2 × 4500 = 9000
			{GameID: 2, Quantity: 1, DiscountPrice: &discount}, // 1 × 3000 = 3000
		},
	})
	if err != nil {
		t.Fatalf("下单失败: %v", err)
	}

	// 总金额来自价格快照和折扣价
	if dto.Total != 12000 {
		t.Errorf("总金额错误: expected=12000, got=%d", dto.Total)
	}
	if dto.Status != string(purchase.StatusPending) {
		t.Errorf("初始状态错误: %s", dto.Status)
	}
	if dto.PurchaseNo == "" {
		t.Error("订单号不能为空")
	}

	// 库存已扣减
	if invRepo.inventories[1].Stock != 8 {
		t.Errorf("游戏1库存错误: expected=8, got=%d", invRepo.inventories[1].Stock)
	}
	if invRepo.inventories[2].Stock != 1 {
		t.Errorf("游戏2库存错误: expected=1, got=%d", invRepo.inventories[2].Stock)
	}

	// 订单已落库
	if len(purchaseRepo.purchases) != 1 {
		t.Fatalf("订单数错误: %d", len(purchaseRepo.purchases))
	}

	t.Log("✅ 下单流程测试通过")
}

// TestCreatePurchaseInsufficientStock 测试库存不足时整体失败
func TestCreatePurchaseInsufficientStock(t *testing.T) {
	uc, _, invRepo, purchaseRepo := newTestEnv()

	_, err := uc.Execute(context.Background(), CreatePurchaseRequest{
		UserID: 7,
		Lines: []CreatePurchaseLine{
			{GameID: 2, Quantity: 5}, // 库存只有2
		},
	})
	if !errors.Is(err, inventory.ErrInsufficientStock) {
		t.Fatalf("应返回库存不足错误, got: %v", err)
	}

	// 扣减是全有或全无：库存未变、订单未创建
	if invRepo.inventories[2].Stock != 2 {
		t.Errorf("库存不应变化: got=%d", invRepo.inventories[2].Stock)
	}
	if len(purchaseRepo.purchases) != 0 {
		t.Errorf("订单不应创建: got=%d", len(purchaseRepo.purchases))
	}

	t.Log("✅ 库存不足测试通过")
}

// TestCreatePurchaseUnavailableGame 测试下架游戏不能购买
func TestCreatePurchaseUnavailableGame(t *testing.T) {
	uc, _, _, purchaseRepo := newTestEnv()

	_, err := uc.Execute(context.Background(), CreatePurchaseRequest{
		UserID: 7,
		Lines:  []CreatePurchaseLine{{GameID: 3, Quantity: 1}},
	})
	if err == nil {
		t.Fatal("下架游戏应拒绝购买")
	}
	// 客户端输入违反业务规则，应映射为400而非500
	appErr := apperrors.GetAppError(err)
	if appErr.HTTPStatus() != 400 {
		t.Errorf("下架拒绝应是400类错误: code=%d, status=%d", appErr.Code, appErr.HTTPStatus())
	}
	if len(purchaseRepo.purchases) != 0 {
		t.Errorf("订单不应创建: got=%d", len(purchaseRepo.purchases))
	}

	t.Log("✅ 下架游戏测试通过")
}

// TestCreatePurchaseValidation 测试参数校验
func TestCreatePurchaseValidation(t *testing.T) {
	uc, _, _, _ := newTestEnv()
	ctx := context.Background()

	// 空明细
	if _, err := uc.Execute(ctx, CreatePurchaseRequest{UserID: 7}); !errors.Is(err, purchase.ErrEmptyLines) {
		t.Errorf("空明细应返回ErrEmptyLines, got: %v", err)
	}

	// 非法数量
	_, err := uc.Execute(ctx, CreatePurchaseRequest{
		UserID: 7,
		Lines:  []CreatePurchaseLine{{GameID: 1, Quantity: 0}},
	})
	if !errors.Is(err, purchase.ErrInvalidQuantity) {
		t.Errorf("数量为0应返回ErrInvalidQuantity, got: %v", err)
	}

	// 不存在的游戏
	_, err = uc.Execute(ctx, CreatePurchaseRequest{
		UserID: 7,
		Lines:  []CreatePurchaseLine{{GameID: 999, Quantity: 1}},
	})
	if err == nil {
		t.Error("不存在的游戏应返回错误")
	}

	t.Log("✅ 参数校验测试通过")
}

// TestCancelRestoresStock 测试取消订单回补库存
func TestCancelRestoresStock(t *testing.T) {
	uc, _, invRepo, purchaseRepo := newTestEnv()

	dto, err := uc.Execute(context.Background(), CreatePurchaseRequest{
		UserID: 7,
		Lines:  []CreatePurchaseLine{{GameID: 1, Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("下单失败: %v", err)
	}
	if invRepo.inventories[1].Stock != 7 {
		t.Fatalf("下单后库存错误: %d", invRepo.inventories[1].Stock)
	}

	manage := NewManagePurchaseUseCase(purchaseRepo, invRepo, &fakeTxManager{})
	cancelled, err := manage.Cancel(context.Background(), dto.ID, 7, false)
	if err != nil {
		t.Fatalf("取消失败: %v", err)
	}
	if cancelled.Status != string(purchase.StatusCancelled) {
		t.Errorf("状态错误: %s", cancelled.Status)
	}

	// 库存已回补
	if invRepo.inventories[1].Stock != 10 {
		t.Errorf("取消后库存错误: expected=10, got=%d", invRepo.inventories[1].Stock)
	}

	// 其他用户不能取消他人订单
	dto2, err := uc.Execute(context.Background(), CreatePurchaseRequest{
		UserID: 7,
		Lines:  []CreatePurchaseLine{{GameID: 1, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("下单失败: %v", err)
	}
	if _, err := manage.Cancel(context.Background(), dto2.ID, 8, false); err == nil {
		t.Error("非本人取消应被拒绝")
	}

	t.Log("✅ 取消回补测试通过")
}
