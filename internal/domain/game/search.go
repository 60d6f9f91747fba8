package game

import (
	"strings"
)

// SearchCriteria 游戏搜索条件
// 设计说明：
// 1. 所有条件均可选（nil表示忽略），条件之间取AND
// 2. 关键词在存储层用LIKE过滤（大小写不敏感），其余条件在内存中
//    顺序收窄（目录规模小，后续可下推到SQL谓词）
// 3. 人数区间采用"覆盖"语义：游戏自身支持的区间必须完整覆盖
//    请求区间（g.PlayersMin <= *PlayersMin 且 g.PlayersMax >= *PlayersMax），
//    而非简单相交，保证筛出的游戏对整个人数区间都可玩
type SearchCriteria struct {
	Keyword     string // 匹配名称或描述的子串
	CategoryID  *uint
	PublisherID *uint
	PriceMin    *int64 // 单位：分，闭区间
	PriceMax    *int64
	AgeMin      *int // 游戏适龄下限 >= 该值
	PlayersMin  *int
	PlayersMax  *int
	MaxDuration *int // 单局时长上限（分钟）
	Available   *bool
}

// Validate 校验搜索条件自身合法性
func (c *SearchCriteria) Validate() error {
	if c.PlayersMin != nil && c.PlayersMax != nil && *c.PlayersMin > *c.PlayersMax {
		return ErrInvalidPlayerRange
	}
	return nil
}

// Matches 判断单个游戏是否满足全部条件
func (c *SearchCriteria) Matches(g *Game) bool {
	// 关键词：名称或描述的大小写不敏感子串匹配
	if c.Keyword != "" {
		kw := strings.ToLower(c.Keyword)
		if !strings.Contains(strings.ToLower(g.Name), kw) &&
			!strings.Contains(strings.ToLower(g.Description), kw) {
			return false
		}
	}

	if c.CategoryID != nil && g.CategoryID != *c.CategoryID {
		return false
	}
	if c.PublisherID != nil && g.PublisherID != *c.PublisherID {
		return false
	}

	// 价格闭区间
	if c.PriceMin != nil && g.Price < *c.PriceMin {
		return false
	}
	if c.PriceMax != nil && g.Price > *c.PriceMax {
		return false
	}

	// 适龄下限：筛出适合该年龄以上人群的游戏
	if c.AgeMin != nil && g.AgeMin < *c.AgeMin {
		return false
	}

	// 人数区间覆盖语义
	if c.PlayersMin != nil && g.PlayersMin > *c.PlayersMin {
		return false
	}
	if c.PlayersMax != nil && g.PlayersMax < *c.PlayersMax {
		return false
	}

	if c.MaxDuration != nil && g.Duration > *c.MaxDuration {
		return false
	}

	if c.Available != nil && g.Available != *c.Available {
		return false
	}

	return true
}

// Filter 对候选集做内存收窄
func (c *SearchCriteria) Filter(games []*Game) []*Game {
	result := make([]*Game, 0, len(games))
	for _, g := range games {
		if c.Matches(g) {
			result = append(result, g)
		}
	}
	return result
}
