package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/gamesup/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	// 1. 构建DSN连接字符串
	dsn := cfg.Database.DSN()

	// 2. 配置GORM日志
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	// 3. 连接数据库
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	// 最大打开连接数（建议：CPU核数 * 2 + 磁盘数量）
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)

	// 最大空闲连接数（建议：MaxOpenConns的1/4到1/2）
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	// 连接最大存活时间（防止数据库主动断开连接）
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 6. 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// 注意：AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	// 注意：这里使用GORM的模型定义（带tag），不是domain层的实体
	return db.AutoMigrate(
		&UserModel{},
		&CategoryModel{},
		&PublisherModel{},
		&AuthorModel{},
		&GameModel{},
		&InventoryModel{},
		&PurchaseModel{},
		&PurchaseLineModel{},
		&AvisModel{},
		&WishlistModel{},
	)
}

// UserModel GORM用户模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/user/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
type UserModel struct {
	ID        uint           `gorm:"primaryKey"`
	LastName  string         `gorm:"size:50;not null;comment:姓"`
	FirstName string         `gorm:"size:50;comment:名"`
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	Role      string         `gorm:"size:10;not null;default:CLIENT;comment:角色(CLIENT/ADMIN)"`
	Active    bool           `gorm:"not null;default:true;comment:账号启用状态"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间（软删除）"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// CategoryModel GORM分类模型
type CategoryModel struct {
	ID          uint      `gorm:"primaryKey"`
	Type        string    `gorm:"uniqueIndex;size:100;not null;comment:分类类型名"`
	Description string    `gorm:"type:text;comment:描述"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CategoryModel) TableName() string {
	return "categories"
}

// PublisherModel GORM出版商模型
type PublisherModel struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"uniqueIndex;size:100;not null;comment:名称"`
	Description string    `gorm:"type:text;comment:描述"`
	Website     string    `gorm:"size:255;comment:官网"`
	Country     string    `gorm:"size:50;comment:国家"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (PublisherModel) TableName() string {
	return "publishers"
}

// AuthorModel GORM作者模型
type AuthorModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:100;not null;comment:姓名"`
	Biography string    `gorm:"type:text;comment:简介"`
	Country   string    `gorm:"size:50;comment:国家"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// GameModel GORM游戏模型
// 设计说明：
// 1. 价格使用int64存储"分"为单位（避免浮点数精度问题）
// 2. Authors多对多关联（连接表game_authors）
// 3. Name加索引支持关键词搜索
type GameModel struct {
	ID          uint          `gorm:"primaryKey"`
	Name        string        `gorm:"index;size:200;not null;comment:游戏名"`
	Description string        `gorm:"type:text;comment:描述"`
	Price       int64         `gorm:"index;not null;comment:价格(分)"`
	Edition     int           `gorm:"not null;default:1;comment:版次"`
	AgeMin      int           `gorm:"not null;default:0;comment:适龄下限"`
	PlayersMin  int           `gorm:"not null;default:1;comment:最少人数"`
	PlayersMax  int           `gorm:"not null;default:4;comment:最多人数"`
	Duration    int           `gorm:"not null;default:60;comment:单局时长(分钟)"`
	Available   bool          `gorm:"not null;default:true;comment:上架状态"`
	CategoryID  uint          `gorm:"index;not null;comment:分类ID"`
	PublisherID uint          `gorm:"index;not null;comment:出版商ID"`
	Authors     []AuthorModel `gorm:"many2many:game_authors"` // 多对多关联
	CreatedAt   time.Time     `gorm:"index;comment:创建时间"`
	UpdatedAt   time.Time     `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (GameModel) TableName() string {
	return "games"
}

// InventoryModel GORM库存模型
// game_id唯一索引保证一游戏一库存记录
type InventoryModel struct {
	ID           uint      `gorm:"primaryKey"`
	GameID       uint      `gorm:"uniqueIndex;not null;comment:游戏ID"`
	Stock        int       `gorm:"not null;default:0;comment:现存库存"`
	StockMinimum int       `gorm:"not null;default:5;comment:安全库存阈值"`
	Available    bool      `gorm:"not null;default:true;comment:可用标志"`
	CreatedAt    time.Time `gorm:"comment:创建时间"`
	UpdatedAt    time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (InventoryModel) TableName() string {
	return "inventories"
}

// PurchaseModel GORM订单模型
// 设计说明：
// 1. 与PurchaseLineModel是一对多关系（级联保存）
// 2. PurchaseNo有唯一索引（业务主键）
// 3. Total冗余存储（避免重复计算，防止改价攻击）
type PurchaseModel struct {
	ID         uint                `gorm:"primaryKey"`
	PurchaseNo string              `gorm:"uniqueIndex;size:32;not null;comment:订单号"`
	UserID     uint                `gorm:"index;not null;comment:买家用户ID"`
	Date       time.Time           `gorm:"index;comment:下单时间"`
	Total      int64               `gorm:"not null;comment:订单总金额(分)"`
	Status     string              `gorm:"index;size:16;not null;default:PENDING;comment:订单状态"`
	Paid       bool                `gorm:"not null;default:false;comment:已支付"`
	Delivered  bool                `gorm:"not null;default:false;comment:已送达"`
	Archived   bool                `gorm:"not null;default:false;comment:已归档"`
	Lines      []PurchaseLineModel `gorm:"foreignKey:PurchaseID"` // 一对多关联
	CreatedAt  time.Time           `gorm:"index;comment:创建时间"`
	UpdatedAt  time.Time           `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (PurchaseModel) TableName() string {
	return "purchases"
}

// PurchaseLineModel GORM订单明细模型
// 记录下单时的价格快照（UnitPrice），DiscountPrice为NULL表示无折扣
type PurchaseLineModel struct {
	ID            uint   `gorm:"primaryKey"`
	PurchaseID    uint   `gorm:"index;not null;comment:订单ID"`
	GameID        uint   `gorm:"index;not null;comment:游戏ID"`
	Quantity      int    `gorm:"not null;comment:购买数量"`
	UnitPrice     int64  `gorm:"not null;comment:下单时单价(分)"`
	DiscountPrice *int64 `gorm:"comment:折扣单价(分)"`
}

// TableName 指定表名
func (PurchaseLineModel) TableName() string {
	return "purchase_lines"
}

// AvisModel GORM评价模型
type AvisModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null;comment:用户ID"`
	GameID    uint      `gorm:"index;not null;comment:游戏ID"`
	Comment   string    `gorm:"type:text;comment:评价内容"`
	Rating    int       `gorm:"not null;comment:评分(1-5)"`
	Approved  bool      `gorm:"index;not null;default:false;comment:审核通过"`
	CreatedAt time.Time `gorm:"index;comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (AvisModel) TableName() string {
	return "avis"
}

// WishlistModel GORM心愿单模型
// (user_id, game_id)复合唯一索引防止重复收藏
type WishlistModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_game;not null;comment:用户ID"`
	GameID    uint      `gorm:"uniqueIndex:idx_user_game;not null;comment:游戏ID"`
	Priority  int       `gorm:"not null;default:1;comment:优先级(1-5)"`
	Note      string    `gorm:"type:text;comment:备注"`
	AddedAt   time.Time `gorm:"comment:加入时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (WishlistModel) TableName() string {
	return "wishlists"
}
