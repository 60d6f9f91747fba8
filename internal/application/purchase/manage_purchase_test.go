package purchase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/gamesup/internal/domain/inventory"
	"github.com/xiebiao/gamesup/internal/domain/purchase"
)

// =========================================
// 按行存储的Fake（模拟真实表语义）
// =========================================

// fakePurchaseTable 头部和明细分行存储，读写都经过值拷贝
// 设计说明：create_purchase_test.go里的fakePurchaseRepo存的是聚合指针，
// 内存修改等于"自动持久化"，验证不了仓储是否真的把明细写回去了；
// 这里模拟表语义：FindByID每次重新组装聚合，Update按聚合当前状态
// 做明细差量同步（与MySQL实现同一契约：逐行upsert + 删除缺失行）
type fakePurchaseTable struct {
	headers    map[uint]purchase.Purchase // 不含Lines
	lines      map[uint]purchase.Line     // key: lineID
	nextID     uint
	nextLineID uint
}

func newFakePurchaseTable() *fakePurchaseTable {
	return &fakePurchaseTable{
		headers: make(map[uint]purchase.Purchase),
		lines:   make(map[uint]purchase.Line),
	}
}

func (r *fakePurchaseTable) Create(ctx context.Context, p *purchase.Purchase) error {
	r.nextID++
	p.ID = r.nextID
	header := *p
	header.Lines = nil
	r.headers[p.ID] = header
	for i := range p.Lines {
		r.nextLineID++
		p.Lines[i].ID = r.nextLineID
		p.Lines[i].PurchaseID = p.ID
		r.lines[r.nextLineID] = p.Lines[i]
	}
	return nil
}

func (r *fakePurchaseTable) FindByID(ctx context.Context, id uint) (*purchase.Purchase, error) {
	header, ok := r.headers[id]
	if !ok {
		return nil, purchase.ErrPurchaseNotFound
	}
	p := header
	for _, line := range r.lines {
		if line.PurchaseID == id {
			p.Lines = append(p.Lines, line)
		}
	}
	return &p, nil
}

func (r *fakePurchaseTable) Update(ctx context.Context, p *purchase.Purchase) error {
	if _, ok := r.headers[p.ID]; !ok {
		return purchase.ErrPurchaseNotFound
	}
	header := *p
	header.Lines = nil
	r.headers[p.ID] = header

	// 明细差量同步：upsert聚合中的行，删除已不存在的行
	keep := make(map[uint]bool, len(p.Lines))
	for i := range p.Lines {
		l := p.Lines[i]
		if l.ID == 0 {
			r.nextLineID++
			l.ID = r.nextLineID
			p.Lines[i].ID = l.ID
		}
		l.PurchaseID = p.ID
		r.lines[l.ID] = l
		keep[l.ID] = true
	}
	for id, line := range r.lines {
		if line.PurchaseID == p.ID && !keep[id] {
			delete(r.lines, id)
		}
	}
	return nil
}

func (r *fakePurchaseTable) FindByPurchaseNo(ctx context.Context, purchaseNo string) (*purchase.Purchase, error) {
	return nil, purchase.ErrPurchaseNotFound
}
func (r *fakePurchaseTable) FindAll(ctx context.Context) ([]*purchase.Purchase, error) {
	return nil, nil
}
func (r *fakePurchaseTable) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*purchase.Purchase, int64, error) {
	return nil, 0, nil
}
func (r *fakePurchaseTable) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	return 0, nil
}
func (r *fakePurchaseTable) SumTotalByUserID(ctx context.Context, userID uint) (int64, error) {
	return 0, nil
}
func (r *fakePurchaseTable) Delete(ctx context.Context, id uint) error {
	delete(r.headers, id)
	return nil
}

// =========================================
// 测试环境搭建
// =========================================

// newManageTestEnv 预置一个PENDING订单：2×4500 + 1×3500 = 12500
func newManageTestEnv(t *testing.T) (*ManagePurchaseUseCase, *fakePurchaseTable, *fakeInventoryRepo, *purchase.Purchase) {
	t.Helper()

	repo := newFakePurchaseTable()
	invRepo := &fakeInventoryRepo{inventories: map[uint]*inventory.Inventory{
		1: {ID: 1, GameID: 1, Stock: 8, StockMinimum: 5, Available: true},
		2: {ID: 2, GameID: 2, Stock: 4, StockMinimum: 5, Available: true},
	}}

	p, err := purchase.NewPurchase("PO20260829001", 7, []purchase.Line{
		{GameID: 1, Quantity: 2, UnitPrice: 4500},
		{GameID: 2, Quantity: 1, UnitPrice: 3500},
	})
	require.NoError(t, err, "预置订单创建失败")
	require.NoError(t, repo.Create(context.Background(), p), "预置订单落库失败")

	uc := NewManagePurchaseUseCase(repo, invRepo, &fakeTxManager{})
	return uc, repo, invRepo, p
}

// storedLineByGame 从存储中重新读出订单后按GameID取明细行
func storedLineByGame(t *testing.T, repo *fakePurchaseTable, purchaseID, gameID uint) *purchase.Line {
	t.Helper()
	stored, err := repo.FindByID(context.Background(), purchaseID)
	require.NoError(t, err, "重新读取订单失败")
	for i := range stored.Lines {
		if stored.Lines[i].GameID == gameID {
			return &stored.Lines[i]
		}
	}
	return nil
}

// TestUpdateLinePersistsLines 修改明细后，存储中的明细必须与总额一致
// 总金额是派生字段：落库后的total必须等于落库后明细的Σ(实际单价×数量)
func TestUpdateLinePersistsLines(t *testing.T) {
	uc, repo, invRepo, p := newManageTestEnv(t)
	lineID := p.Lines[0].ID // GameID=1, qty=2

	discount := int64(4000)
	dto, err := uc.UpdateLine(context.Background(), p.ID, lineID, 5, &discount, 7, false)
	require.NoError(t, err, "修改明细失败")
	assert.Equal(t, int64(5*4000+3500), dto.Total, "返回的总金额应按新明细重算")

	// 关键断言：重新从存储读出，明细行本身已更新
	line := storedLineByGame(t, repo, p.ID, 1)
	require.NotNil(t, line, "明细行应存在")
	assert.Equal(t, 5, line.Quantity, "存储中的数量应是新值")
	require.NotNil(t, line.DiscountPrice, "存储中的折扣价应是新值")
	assert.Equal(t, int64(4000), *line.DiscountPrice)

	// 存储中的total与存储中的明细必须一致
	stored, err := repo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	var sum int64
	for i := range stored.Lines {
		sum += stored.Lines[i].Total()
	}
	assert.Equal(t, sum, stored.Total, "落库的总金额必须等于落库明细之和")

	// 增购3件，库存同步扣减：8 - 3 = 5
	assert.Equal(t, 5, invRepo.inventories[1].Stock, "库存应扣减数量差额")

	t.Log("✅ 明细修改持久化测试通过")
}

// TestRemoveLineDeletesRow 移除明细后，存储中该行必须消失且库存回补
func TestRemoveLineDeletesRow(t *testing.T) {
	uc, repo, invRepo, p := newManageTestEnv(t)
	lineID := p.Lines[1].ID // GameID=2, qty=1

	dto, err := uc.RemoveLine(context.Background(), p.ID, lineID, 7, false)
	require.NoError(t, err, "移除明细失败")
	assert.Equal(t, int64(9000), dto.Total, "移除后总金额应只剩2×4500")

	// 关键断言：重新从存储读出，被移除的行不能再出现
	stored, err := repo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, stored.Lines, 1, "存储中应只剩一行明细")
	assert.Equal(t, uint(1), stored.Lines[0].GameID)
	assert.Equal(t, int64(9000), stored.Total, "落库的总金额应与剩余明细一致")

	// 库存已回补：4 + 1 = 5
	assert.Equal(t, 5, invRepo.inventories[2].Stock, "移除行的库存应回补")

	t.Log("✅ 明细移除持久化测试通过")
}

// TestRemoveLastLineRejected 最后一行不允许移除（应改走取消订单）
func TestRemoveLastLineRejected(t *testing.T) {
	uc, repo, _, p := newManageTestEnv(t)

	_, err := uc.RemoveLine(context.Background(), p.ID, p.Lines[1].ID, 7, false)
	require.NoError(t, err)
	_, err = uc.RemoveLine(context.Background(), p.ID, p.Lines[0].ID, 7, false)
	assert.ErrorIs(t, err, purchase.ErrEmptyLines, "最后一行移除应被拒绝")

	stored, err := repo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Lines, 1, "存储中的最后一行不应被删除")

	t.Log("✅ 最后一行保护测试通过")
}
