package inventory

import (
	"testing"
)

// TestNewInventory 测试库存记录缺省值
func TestNewInventory(t *testing.T) {
	inv := NewInventory(42)

	if inv.GameID != 42 {
		t.Errorf("GameID错误: expected=42, got=%d", inv.GameID)
	}
	if inv.Stock != 0 {
		t.Errorf("初始库存错误: expected=0, got=%d", inv.Stock)
	}
	if inv.StockMinimum != 5 {
		t.Errorf("安全库存缺省值错误: expected=5, got=%d", inv.StockMinimum)
	}
	if !inv.Available {
		t.Error("新建库存记录应为可用状态")
	}

	t.Log("✅ 库存缺省值测试通过")
}

// TestDecrement 测试库存扣减
func TestDecrement(t *testing.T) {
	tests := []struct {
		name          string
		stock         int
		quantity      int
		wantErr       error
		wantStock     int
		wantAvailable bool
	}{
		{"正常扣减", 10, 3, nil, 7, true},
		{"扣减到0翻转可用标志", 5, 5, nil, 0, false},
		{"超过库存整体失败", 5, 6, ErrInsufficientStock, 5, true},
		{"数量为0拒绝", 5, 0, ErrInvalidQuantity, 5, true},
		{"负数拒绝", 5, -1, ErrInvalidQuantity, 5, true},
		{"零库存扣减失败", 0, 1, ErrInsufficientStock, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &Inventory{Stock: tt.stock, StockMinimum: 5, Available: true}
			err := inv.Decrement(tt.quantity)

			if err != tt.wantErr {
				t.Errorf("错误不匹配: expected=%v, got=%v", tt.wantErr, err)
			}
			if inv.Stock != tt.wantStock {
				t.Errorf("库存错误: expected=%d, got=%d", tt.wantStock, inv.Stock)
			}
			if inv.Available != tt.wantAvailable {
				t.Errorf("可用标志错误: expected=%v, got=%v", tt.wantAvailable, inv.Available)
			}
		})
	}
}

// TestIncrement 测试库存增加
func TestIncrement(t *testing.T) {
	// 缺货后补货：可用标志恢复
	inv := &Inventory{Stock: 0, StockMinimum: 5, Available: false}
	if err := inv.Increment(3); err != nil {
		t.Fatalf("补货失败: %v", err)
	}
	if inv.Stock != 3 {
		t.Errorf("库存错误: expected=3, got=%d", inv.Stock)
	}
	if !inv.Available {
		t.Error("补货后可用标志应恢复为true")
	}

	// 负数增量拒绝（不允许借道Increment做扣减）
	if err := inv.Increment(-2); err != ErrInvalidQuantity {
		t.Errorf("负数增量应返回ErrInvalidQuantity, got=%v", err)
	}
	if inv.Stock != 3 {
		t.Errorf("失败的增量不应改变库存: expected=3, got=%d", inv.Stock)
	}

	t.Log("✅ 库存增加测试通过")
}

// TestDecrementIncrementRoundTrip 测试扣减-回滚往返
// 订单取消回滚库存时依赖该性质：increment(decrement(s,q),q) == s
func TestDecrementIncrementRoundTrip(t *testing.T) {
	inv := &Inventory{Stock: 8, StockMinimum: 5, Available: true}

	if err := inv.Decrement(8); err != nil {
		t.Fatalf("扣减失败: %v", err)
	}
	if inv.Stock != 0 || inv.Available {
		t.Errorf("扣减到0后状态错误: stock=%d, available=%v", inv.Stock, inv.Available)
	}

	if err := inv.Increment(8); err != nil {
		t.Fatalf("回滚失败: %v", err)
	}
	if inv.Stock != 8 || !inv.Available {
		t.Errorf("回滚后状态错误: stock=%d, available=%v", inv.Stock, inv.Available)
	}

	t.Log("✅ 扣减-回滚往返测试通过")
}

// TestDerivedPredicates 测试派生谓词
func TestDerivedPredicates(t *testing.T) {
	inv := &Inventory{Stock: 0, StockMinimum: 5}
	if !inv.IsOutOfStock() {
		t.Error("库存0应判定为缺货")
	}
	if !inv.IsLowStock() {
		t.Error("库存0应判定为低库存")
	}

	inv.Stock = 5
	if inv.IsOutOfStock() {
		t.Error("库存5不应判定为缺货")
	}
	if !inv.IsLowStock() {
		t.Error("库存等于阈值应判定为低库存")
	}

	inv.Stock = 6
	if inv.IsLowStock() {
		t.Error("库存高于阈值不应判定为低库存")
	}

	t.Log("✅ 派生谓词测试通过")
}

// TestSetStockMinimum 测试安全库存阈值调整
func TestSetStockMinimum(t *testing.T) {
	inv := NewInventory(1)
	if err := inv.SetStockMinimum(10); err != nil {
		t.Fatalf("调整阈值失败: %v", err)
	}
	if inv.StockMinimum != 10 {
		t.Errorf("阈值错误: expected=10, got=%d", inv.StockMinimum)
	}

	if err := inv.SetStockMinimum(-1); err != ErrInvalidStockMinimum {
		t.Errorf("负数阈值应返回ErrInvalidStockMinimum, got=%v", err)
	}
}
