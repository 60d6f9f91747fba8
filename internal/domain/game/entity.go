package game

import (
	"time"
)

// Game 桌游实体（聚合根）
// DDD设计说明：
// 1. Game是游戏聚合的根实体，Inventory与其一对一（级联删除）
// 2. 价格使用int64存储"分"为单位（避免浮点数精度问题）
// 3. Category/Publisher/Author是独立聚合，这里只持有外键引用
type Game struct {
	ID          uint
	Name        string // 游戏名（非空）
	Description string
	Price       int64 // 价格（单位：分，1元=100分），必须>0
	Edition     int   // 版次，默认1
	AgeMin      int   // 适龄下限，默认0
	PlayersMin  int   // 最少游戏人数，默认1
	PlayersMax  int   // 最多游戏人数，默认4
	Duration    int   // 单局时长（分钟），默认60
	Available   bool  // 上架状态
	CategoryID  uint
	PublisherID uint
	AuthorIDs   []uint // 作者集合（多对多）
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewGame 创建新游戏（工厂方法）
// 业务规则：
// 1. 名称非空
// 2. 价格必须>0
// 3. 最少人数不能大于最多人数
func NewGame(name, description string, price int64, edition, ageMin, playersMin, playersMax, duration int, categoryID, publisherID uint, authorIDs []uint) (*Game, error) {
	// 缺省值与原型保持一致
	if edition <= 0 {
		edition = 1
	}
	if playersMin <= 0 {
		playersMin = 1
	}
	if playersMax <= 0 {
		playersMax = 4
	}
	if duration <= 0 {
		duration = 60
	}

	g := &Game{
		Name:        name,
		Description: description,
		Price:       price,
		Edition:     edition,
		AgeMin:      ageMin,
		PlayersMin:  playersMin,
		PlayersMax:  playersMax,
		Duration:    duration,
		Available:   true,
		CategoryID:  categoryID,
		PublisherID: publisherID,
		AuthorIDs:   authorIDs,
	}
	if err := g.validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	g.CreatedAt = now
	g.UpdatedAt = now
	return g, nil
}

// validate 实体不变式校验
func (g *Game) validate() error {
	if g.Name == "" {
		return ErrInvalidName
	}
	if g.Price <= 0 {
		return ErrInvalidPrice
	}
	if g.AgeMin < 0 {
		return ErrInvalidAge
	}
	if g.PlayersMin > g.PlayersMax {
		return ErrInvalidPlayerRange
	}
	return nil
}

// UpdateInfo 更新游戏信息（部分字段拷贝，零值忽略）
// 更新后重新校验不变式
func (g *Game) UpdateInfo(name, description string, price int64, edition, ageMin, playersMin, playersMax, duration int) error {
	updated := *g
	if name != "" {
		updated.Name = name
	}
	if description != "" {
		updated.Description = description
	}
	if price > 0 {
		updated.Price = price
	}
	if edition > 0 {
		updated.Edition = edition
	}
	if ageMin >= 0 {
		updated.AgeMin = ageMin
	}
	if playersMin > 0 {
		updated.PlayersMin = playersMin
	}
	if playersMax > 0 {
		updated.PlayersMax = playersMax
	}
	if duration > 0 {
		updated.Duration = duration
	}
	if err := updated.validate(); err != nil {
		return err
	}

	*g = updated
	g.UpdatedAt = time.Now()
	return nil
}

// SetAvailability 上架/下架
func (g *Game) SetAvailability(available bool) {
	g.Available = available
	g.UpdatedAt = time.Now()
}

// SetAuthors 替换作者集合
func (g *Game) SetAuthors(authorIDs []uint) {
	g.AuthorIDs = authorIDs
	g.UpdatedAt = time.Now()
}
