package purchase

import (
	"testing"
)

func int64Ptr(v int64) *int64 { return &v }

// TestNewPurchase 测试订单创建与总额计算
func TestNewPurchase(t *testing.T) {
	lines := []Line{
		{GameID: 1, Quantity: 2, UnitPrice: 4500},                             // 2×45.00
		{GameID: 2, Quantity: 1, UnitPrice: 3000, DiscountPrice: int64Ptr(2500)}, // 折扣价25.00
	}

	p, err := NewPurchase("PUR1699248000123456", 10, lines)
	if err != nil {
		t.Fatalf("创建订单失败: %v", err)
	}

	if p.Status != StatusPending {
		t.Errorf("初始状态错误: expected=%s, got=%s", StatusPending, p.Status)
	}

	// 总额 = 2×4500 + 1×2500 = 11500
	if p.Total != 11500 {
		t.Errorf("订单总额错误: expected=11500, got=%d", p.Total)
	}

	t.Log("✅ 订单创建测试通过")
}

// TestNewPurchaseValidation 测试订单创建参数校验
func TestNewPurchaseValidation(t *testing.T) {
	// 空明细
	if _, err := NewPurchase("PUR1", 10, nil); err != ErrEmptyLines {
		t.Errorf("空明细应返回ErrEmptyLines, got=%v", err)
	}

	// 数量为0
	lines := []Line{{GameID: 1, Quantity: 0, UnitPrice: 4500}}
	if _, err := NewPurchase("PUR1", 10, lines); err != ErrInvalidQuantity {
		t.Errorf("数量为0应返回ErrInvalidQuantity, got=%v", err)
	}

	t.Log("✅ 订单参数校验测试通过")
}

// TestEffectivePrice 测试实际结算单价
func TestEffectivePrice(t *testing.T) {
	// 无折扣：使用快照单价
	l := Line{Quantity: 3, UnitPrice: 2000}
	if l.EffectivePrice() != 2000 {
		t.Errorf("无折扣单价错误: expected=2000, got=%d", l.EffectivePrice())
	}
	if l.Total() != 6000 {
		t.Errorf("行小计错误: expected=6000, got=%d", l.Total())
	}

	// 有折扣：使用折扣价
	l.DiscountPrice = int64Ptr(1500)
	if l.EffectivePrice() != 1500 {
		t.Errorf("折扣单价错误: expected=1500, got=%d", l.EffectivePrice())
	}
	if l.Total() != 4500 {
		t.Errorf("折扣行小计错误: expected=4500, got=%d", l.Total())
	}

	t.Log("✅ 实际结算单价测试通过")
}

// TestRecomputeTotalOnMutation 测试明细变更后总额自动重算
func TestRecomputeTotalOnMutation(t *testing.T) {
	p, err := NewPurchase("PUR1", 10, []Line{
		{ID: 1, GameID: 1, Quantity: 1, UnitPrice: 4500},
	})
	if err != nil {
		t.Fatalf("创建订单失败: %v", err)
	}

	// 追加一行：总额自动更新
	if err := p.AddLine(Line{ID: 2, GameID: 2, Quantity: 2, UnitPrice: 3000}); err != nil {
		t.Fatalf("追加明细失败: %v", err)
	}
	if p.Total != 4500+6000 {
		t.Errorf("追加后总额错误: expected=10500, got=%d", p.Total)
	}

	// 更新数量和折扣价
	if err := p.UpdateLine(2, 1, int64Ptr(2000)); err != nil {
		t.Fatalf("更新明细失败: %v", err)
	}
	if p.Total != 4500+2000 {
		t.Errorf("更新后总额错误: expected=6500, got=%d", p.Total)
	}

	// 移除一行
	if err := p.RemoveLine(1); err != nil {
		t.Fatalf("移除明细失败: %v", err)
	}
	if p.Total != 2000 {
		t.Errorf("移除后总额错误: expected=2000, got=%d", p.Total)
	}

	// 移除不存在的行
	if err := p.RemoveLine(99); err != ErrLineNotFound {
		t.Errorf("移除不存在的行应返回ErrLineNotFound, got=%v", err)
	}

	t.Log("✅ 总额自动重算测试通过")
}

// TestStatusTransitions 测试订单状态机
func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"待确认→已确认", StatusPending, StatusConfirmed, true},
		{"待确认→已取消", StatusPending, StatusCancelled, true},
		{"待确认→已发货", StatusPending, StatusShipped, false},
		{"已确认→已发货", StatusConfirmed, StatusShipped, true},
		{"已确认→已取消", StatusConfirmed, StatusCancelled, true},
		{"已发货→已送达", StatusShipped, StatusDelivered, true},
		{"已发货→已取消", StatusShipped, StatusCancelled, false},
		{"已送达→已取消", StatusDelivered, StatusCancelled, false},
		{"已取消→已确认", StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Purchase{Status: tt.from}
			if got := p.CanTransitionTo(tt.to); got != tt.allowed {
				t.Errorf("状态转换判定错误: %s→%s expected=%v, got=%v",
					tt.from, tt.to, tt.allowed, got)
			}
		})
	}
}

// TestDeliverSetsFlag 测试送达后Delivered标志
func TestDeliverSetsFlag(t *testing.T) {
	p := &Purchase{Status: StatusShipped}
	if err := p.Deliver(); err != nil {
		t.Fatalf("送达失败: %v", err)
	}
	if p.Status != StatusDelivered {
		t.Errorf("状态错误: expected=%s, got=%s", StatusDelivered, p.Status)
	}
	if !p.Delivered {
		t.Error("Delivered标志未设置")
	}

	// 终态不能再转换
	if err := p.Cancel(); err != ErrInvalidStatusTransition {
		t.Errorf("终态取消应返回ErrInvalidStatusTransition, got=%v", err)
	}

	t.Log("✅ 送达标志测试通过")
}
