package game

import (
	"testing"
)

func uintPtr(v uint) *uint    { return &v }
func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }

func sampleGames() []*Game {
	return []*Game{
		{ID: 1, Name: "Catan", Description: "Trade and build", Price: 4500, AgeMin: 10, PlayersMin: 3, PlayersMax: 4, Duration: 75, Available: true, CategoryID: 1, PublisherID: 1},
		{ID: 2, Name: "Azul", Description: "Tile drafting", Price: 3500, AgeMin: 8, PlayersMin: 2, PlayersMax: 4, Duration: 45, Available: true, CategoryID: 2, PublisherID: 2},
		{ID: 3, Name: "Twilight Imperium", Description: "Epic space opera", Price: 12000, AgeMin: 14, PlayersMin: 3, PlayersMax: 6, Duration: 480, Available: false, CategoryID: 1, PublisherID: 3},
	}
}

// TestKeywordCaseInsensitive 测试关键词大小写不敏感匹配
func TestKeywordCaseInsensitive(t *testing.T) {
	games := sampleGames()

	c := &SearchCriteria{Keyword: "catan"}
	result := c.Filter(games)
	if len(result) != 1 || result[0].ID != 1 {
		t.Errorf("关键词匹配错误: got %d results", len(result))
	}

	// 描述也参与匹配
	c = &SearchCriteria{Keyword: "TILE"}
	result = c.Filter(games)
	if len(result) != 1 || result[0].ID != 2 {
		t.Errorf("描述匹配错误: got %d results", len(result))
	}

	// 空关键词匹配全部
	c = &SearchCriteria{}
	if len(c.Filter(games)) != 3 {
		t.Error("空关键词应返回全部游戏")
	}
}

// TestPlayerRangeCoverage 测试人数区间覆盖语义
// 游戏自身区间必须完整覆盖请求区间，而非简单相交
func TestPlayerRangeCoverage(t *testing.T) {
	games := sampleGames()

	// 请求2-4人：Catan(3-4)不覆盖下限2，Azul(2-4)覆盖，TI(3-6)不覆盖下限
	c := &SearchCriteria{PlayersMin: intPtr(2), PlayersMax: intPtr(4)}
	result := c.Filter(games)
	if len(result) != 1 || result[0].ID != 2 {
		t.Errorf("覆盖语义错误: expected [Azul], got %d results", len(result))
	}

	// 请求3-4人：Catan和TI都覆盖，Azul也覆盖（2<=3且4>=4）
	c = &SearchCriteria{PlayersMin: intPtr(3), PlayersMax: intPtr(4)}
	result = c.Filter(games)
	if len(result) != 3 {
		t.Errorf("覆盖语义错误: expected 3 results, got %d", len(result))
	}

	// 请求5-6人：只有TI(3-6)覆盖
	c = &SearchCriteria{PlayersMin: intPtr(5), PlayersMax: intPtr(6)}
	result = c.Filter(games)
	if len(result) != 1 || result[0].ID != 3 {
		t.Errorf("覆盖语义错误: expected [Twilight Imperium], got %d results", len(result))
	}
}

// TestCombinedCriteria 测试条件组合（AND语义）
func TestCombinedCriteria(t *testing.T) {
	games := sampleGames()

	c := &SearchCriteria{
		CategoryID: uintPtr(1),
		PriceMin:   int64Ptr(4000),
		PriceMax:   int64Ptr(10000),
		Available:  boolPtr(true),
	}
	result := c.Filter(games)
	if len(result) != 1 || result[0].ID != 1 {
		t.Errorf("组合条件错误: expected [Catan], got %d results", len(result))
	}

	// 价格闭区间边界
	c = &SearchCriteria{PriceMin: int64Ptr(4500), PriceMax: int64Ptr(4500)}
	result = c.Filter(games)
	if len(result) != 1 || result[0].ID != 1 {
		t.Errorf("价格闭区间错误: got %d results", len(result))
	}
}

// TestAgeAndDurationFilters 测试适龄与时长过滤
func TestAgeAndDurationFilters(t *testing.T) {
	games := sampleGames()

	// 适龄下限>=10：Catan(10)和TI(14)
	c := &SearchCriteria{AgeMin: intPtr(10)}
	result := c.Filter(games)
	if len(result) != 2 {
		t.Errorf("适龄过滤错误: expected 2 results, got %d", len(result))
	}

	// 时长上限60分钟：只有Azul(45)
	c = &SearchCriteria{MaxDuration: intPtr(60)}
	result = c.Filter(games)
	if len(result) != 1 || result[0].ID != 2 {
		t.Errorf("时长过滤错误: got %d results", len(result))
	}
}

// TestCriteriaValidate 测试条件自身校验
func TestCriteriaValidate(t *testing.T) {
	c := &SearchCriteria{PlayersMin: intPtr(5), PlayersMax: intPtr(2)}
	if err := c.Validate(); err != ErrInvalidPlayerRange {
		t.Errorf("区间倒置应返回ErrInvalidPlayerRange, got=%v", err)
	}

	c = &SearchCriteria{PlayersMin: intPtr(2), PlayersMax: intPtr(4)}
	if err := c.Validate(); err != nil {
		t.Errorf("合法区间不应报错: %v", err)
	}
}

// TestNewGameDefaults 测试游戏创建缺省值与不变式
func TestNewGameDefaults(t *testing.T) {
	g, err := NewGame("Catan", "Trade and build", 4500, 0, 0, 0, 0, 0, 1, 1, nil)
	if err != nil {
		t.Fatalf("创建游戏失败: %v", err)
	}
	if g.Edition != 1 || g.PlayersMin != 1 || g.PlayersMax != 4 || g.Duration != 60 {
		t.Errorf("缺省值错误: edition=%d, min=%d, max=%d, duration=%d",
			g.Edition, g.PlayersMin, g.PlayersMax, g.Duration)
	}
	if !g.Available {
		t.Error("新建游戏应为上架状态")
	}

	// 价格必须>0
	if _, err := NewGame("Bad", "", -500, 1, 0, 1, 4, 60, 1, 1, nil); err != ErrInvalidPrice {
		t.Errorf("负价格应返回ErrInvalidPrice, got=%v", err)
	}
	if _, err := NewGame("Bad", "", 0, 1, 0, 1, 4, 60, 1, 1, nil); err != ErrInvalidPrice {
		t.Errorf("零价格应返回ErrInvalidPrice, got=%v", err)
	}

	// 人数区间倒置拒绝
	if _, err := NewGame("Bad", "", 100, 1, 0, 5, 2, 60, 1, 1, nil); err != ErrInvalidPlayerRange {
		t.Errorf("人数区间倒置应返回ErrInvalidPlayerRange, got=%v", err)
	}
}
