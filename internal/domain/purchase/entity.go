package purchase

import (
	"time"
)

// Status 订单状态
// 设计说明：
// 1. 使用string类型直接对应API表示（便于前端和日志阅读）
// 2. 状态机：PENDING→CONFIRMED/CANCELLED，CONFIRMED→SHIPPED/CANCELLED，
//    SHIPPED→DELIVERED；DELIVERED和CANCELLED为终态
type Status string

const (
	StatusPending   Status = "PENDING"   // 待确认
	StatusConfirmed Status = "CONFIRMED" // 已确认
	StatusShipped   Status = "SHIPPED"   // 已发货
	StatusDelivered Status = "DELIVERED" // 已送达
	StatusCancelled Status = "CANCELLED" // 已取消
)

// IsValid 校验状态合法性
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Line 订单明细项
// 设计说明：
// 1. 不是独立聚合根，必须通过Purchase访问
// 2. UnitPrice记录"下单时的价格"（历史价格快照），防止改价后历史订单金额变化
// 3. DiscountPrice可选，有值时作为实际结算单价
// 4. 不直接关联Game对象，只保存GameID（避免跨聚合引用）
type Line struct {
	ID            uint
	PurchaseID    uint   // 所属订单ID
	GameID        uint   // 游戏ID
	Quantity      int    // 购买数量，>0
	UnitPrice     int64  // 下单时的单价（分）
	DiscountPrice *int64 // 折扣单价（分），nil表示无折扣
}

// EffectivePrice 实际结算单价：有折扣用折扣价，否则用快照单价
func (l *Line) EffectivePrice() int64 {
	if l.DiscountPrice != nil {
		return *l.DiscountPrice
	}
	return l.UnitPrice
}

// Total 行小计 = 实际单价 × 数量
func (l *Line) Total() int64 {
	return l.EffectivePrice() * int64(l.Quantity)
}

// Purchase 订单实体（聚合根）
// 设计说明：
// 1. Purchase是聚合根，Line是子实体（级联删除）
// 2. Total是派生字段，明细每次变更后自动重算（策略：变更即重算，
//    不允许外部直接设置）
// 3. PurchaseNo作为业务主键（全局唯一，时间有序）
type Purchase struct {
	ID         uint
	PurchaseNo string // 订单号（业务主键）
	UserID     uint   // 买家用户ID
	Date       time.Time
	Total      int64 // 订单总金额（分），派生字段
	Status     Status
	Paid       bool
	Delivered  bool
	Archived   bool
	Lines      []Line // 订单明细（聚合内的子实体）
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewPurchase 创建新订单（工厂方法）
// 业务规则：
// 1. 明细不能为空，每行数量必须>0
// 2. 初始状态为PENDING
// 3. 总金额由明细自动计算
func NewPurchase(purchaseNo string, userID uint, lines []Line) (*Purchase, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyLines
	}
	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	now := time.Now()
	p := &Purchase{
		PurchaseNo: purchaseNo,
		UserID:     userID,
		Date:       now,
		Status:     StatusPending,
		Lines:      lines,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	p.recomputeTotal()
	return p, nil
}

// recomputeTotal 重算订单总金额
// 幂等操作：总金额 = Σ(实际单价×数量)，空明细为0
// 所有明细变更方法必须调用，保证Total始终与明细一致
func (p *Purchase) recomputeTotal() {
	var total int64
	for i := range p.Lines {
		total += p.Lines[i].Total()
	}
	p.Total = total
}

// AddLine 追加明细行
func (p *Purchase) AddLine(line Line) error {
	if line.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	p.Lines = append(p.Lines, line)
	p.recomputeTotal()
	p.UpdatedAt = time.Now()
	return nil
}

// RemoveLine 移除明细行
func (p *Purchase) RemoveLine(lineID uint) error {
	for i := range p.Lines {
		if p.Lines[i].ID == lineID {
			p.Lines = append(p.Lines[:i], p.Lines[i+1:]...)
			p.recomputeTotal()
			p.UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrLineNotFound
}

// UpdateLine 更新明细行的数量/折扣价
func (p *Purchase) UpdateLine(lineID uint, quantity int, discountPrice *int64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	for i := range p.Lines {
		if p.Lines[i].ID == lineID {
			p.Lines[i].Quantity = quantity
			p.Lines[i].DiscountPrice = discountPrice
			p.recomputeTotal()
			p.UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrLineNotFound
}

// CanTransitionTo 检查是否可以转换到目标状态
// 状态机设计，防止非法状态跳转（例如已送达的订单不能再取消）
func (p *Purchase) CanTransitionTo(target Status) bool {
	// 定义合法的状态转换规则
	transitions := map[Status][]Status{
		StatusPending:   {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusShipped, StatusCancelled},
		StatusShipped:   {StatusDelivered},
		StatusDelivered: {}, // 终态
		StatusCancelled: {}, // 终态
	}

	allowedTargets, exists := transitions[p.Status]
	if !exists {
		return false
	}

	for _, allowed := range allowedTargets {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo 状态转换
// 先检查是否可以转换，成功后更新UpdatedAt（审计追踪）
func (p *Purchase) TransitionTo(target Status) error {
	if !p.CanTransitionTo(target) {
		return ErrInvalidStatusTransition
	}
	p.Status = target
	p.UpdatedAt = time.Now()
	return nil
}

// Confirm 确认订单（领域行为）
func (p *Purchase) Confirm() error {
	return p.TransitionTo(StatusConfirmed)
}

// Ship 发货（领域行为）
func (p *Purchase) Ship() error {
	return p.TransitionTo(StatusShipped)
}

// Deliver 送达（领域行为）
func (p *Purchase) Deliver() error {
	if err := p.TransitionTo(StatusDelivered); err != nil {
		return err
	}
	p.Delivered = true
	return nil
}

// Cancel 取消订单（领域行为）
func (p *Purchase) Cancel() error {
	return p.TransitionTo(StatusCancelled)
}

// MarkPaid 标记已支付
func (p *Purchase) MarkPaid() {
	p.Paid = true
	p.UpdatedAt = time.Now()
}

// Archive 归档（历史订单不再出现在默认列表）
func (p *Purchase) Archive() {
	p.Archived = true
	p.UpdatedAt = time.Now()
}

// IsOwnedBy 检查订单是否属于指定用户
// 权限校验，防止用户访问他人订单
func (p *Purchase) IsOwnedBy(userID uint) bool {
	return p.UserID == userID
}
