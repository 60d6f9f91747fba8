//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 教学说明：
// 1. Wire是Google开发的编译期依赖注入工具
// 2. 与运行时反射注入（如Spring的@Autowired）不同，Wire在编译期生成代码
// 3. 优势：零运行时开销、类型安全、编译期检测循环依赖
//
// Wire工作流程：
// Step 1: 编写wire.go（本文件），定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go，包含完整的依赖创建代码
// Step 4: main.go调用wire_gen.go中的InitializeApp()
//
// 核心概念：
// - Provider: 提供依赖的构造函数（如NewGameRepository）
// - Injector: 声明最终要构造的目标类型（如*gin.Engine）
// - wire.Build(): 告诉Wire如何组装依赖链
// - wire.Bind(): 把接口绑定到具体实现（如TxManager接口 → *mysql.TxManager）

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

	appavis "github.com/xiebiao/gamesup/internal/application/avis"
	appcatalog "github.com/xiebiao/gamesup/internal/application/catalog"
	appgame "github.com/xiebiao/gamesup/internal/application/game"
	apppurchase "github.com/xiebiao/gamesup/internal/application/purchase"
	apprecommendation "github.com/xiebiao/gamesup/internal/application/recommendation"
	appuser "github.com/xiebiao/gamesup/internal/application/user"
	appwishlist "github.com/xiebiao/gamesup/internal/application/wishlist"
	"github.com/xiebiao/gamesup/internal/domain/recommendation"
	"github.com/xiebiao/gamesup/internal/domain/user"
	"github.com/xiebiao/gamesup/internal/infrastructure/config"
	"github.com/xiebiao/gamesup/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/gamesup/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/gamesup/internal/infrastructure/recommender"
	"github.com/xiebiao/gamesup/internal/interface/http/handler"
	"github.com/xiebiao/gamesup/internal/interface/http/middleware"
	"github.com/xiebiao/gamesup/pkg/jwt"
	"github.com/xiebiao/gamesup/pkg/metrics"
	"github.com/xiebiao/gamesup/pkg/mq"
)

// ========================================
// Wire Provider Sets (依赖分组)
// ========================================

// infrastructureSet 基础设施层依赖
// 包含：配置加载、数据库连接、Redis连接、外部推荐服务、MQ发布者
var infrastructureSet = wire.NewSet(
	config.Load,               // 加载配置文件
	mysql.NewDB,               // 创建MySQL连接
	redis.NewClient,           // 创建Redis连接
	provideRecommenderClient,  // 推荐服务HTTP客户端
	providePublisher,          // RabbitMQ发布者（可为nil）
	wire.Bind(new(recommendation.Gateway), new(*recommender.Client)),
)

// repositorySet 仓储层依赖
// 包含：所有Repository的构造函数 + 事务管理器
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,      // 用户仓储
	mysql.NewGameRepository,      // 游戏仓储
	mysql.NewInventoryRepository, // 库存仓储
	mysql.NewPurchaseRepository,  // 订单仓储
	mysql.NewAvisRepository,      // 评价仓储
	mysql.NewWishlistRepository,  // 心愿单仓储
	mysql.NewCategoryRepository,  // 分类仓储
	mysql.NewPublisherRepository, // 出版商仓储
	mysql.NewAuthorRepository,    // 作者仓储
	mysql.NewTxManager,           // 事务管理器
	// 教学要点：应用层各自定义了最小化的TxManager接口（接口属于使用方），
	// 这里把它们统一绑定到同一个*mysql.TxManager实现
	wire.Bind(new(appgame.TxManager), new(*mysql.TxManager)),
	wire.Bind(new(apppurchase.TxManager), new(*mysql.TxManager)),
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService, // 用户领域服务
)

// applicationSet 应用层依赖
// 包含：所有Use Case的构造函数
var applicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,          // 用户注册用例
	appuser.NewLoginUseCase,             // 用户登录用例
	appuser.NewLogoutUseCase,            // 用户登出用例
	appuser.NewManageUsersUseCase,       // 账号管理用例
	appcatalog.NewCategoryUseCase,       // 分类用例
	appcatalog.NewPublisherUseCase,      // 出版商用例
	appcatalog.NewAuthorUseCase,         // 作者用例
	appgame.NewCreateGameUseCase,        // 游戏创建用例
	appgame.NewGetGameUseCase,           // 游戏详情用例
	appgame.NewListGamesUseCase,         // 游戏列表/搜索用例
	appgame.NewUpdateGameUseCase,        // 游戏更新用例
	appgame.NewStockUseCase,             // 库存管理用例
	apppurchase.NewCreatePurchaseUseCase, // 下单用例
	apppurchase.NewManagePurchaseUseCase, // 订单管理用例
	appavis.NewAvisUseCase,              // 评价用例
	appwishlist.NewWishlistUseCase,      // 心愿单用例
	apprecommendation.NewRecommendUseCase, // 推荐用例
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,            // JWT管理器（需要从config提取参数）
	provideSessionStore,          // Session存储（需要从Redis创建）
	middleware.NewAuthMiddleware, // 认证中间件
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewAuthHandler,           // 认证处理器
	handler.NewUserHandler,           // 用户处理器
	handler.NewCategoryHandler,       // 分类处理器
	handler.NewPublisherHandler,      // 出版商处理器
	handler.NewAuthorHandler,         // 作者处理器
	handler.NewGameHandler,           // 游戏处理器
	handler.NewPurchaseHandler,       // 订单处理器
	handler.NewAvisHandler,           // 评价处理器
	handler.NewWishlistHandler,       // 心愿单处理器
	handler.NewRecommendationHandler, // 推荐处理器
	wire.Struct(new(handlers), "*"),  // 聚合全部处理器
)

// ========================================
// Custom Providers (自定义Provider)
// ========================================

// provideJWTManager 从配置创建JWT管理器
// 教学要点：config.Config 包含多个字段，但jwt.NewManager只需要JWT相关的配置
// Wire无法自动知道如何从Config提取参数，所以需要手动编写Provider
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建Session存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideRecommenderClient 从配置创建推荐服务客户端
func provideRecommenderClient(cfg *config.Config) *recommender.Client {
	return recommender.NewClient(cfg.Recommender.BaseURL, cfg.Recommender.Timeout)
}

// providePublisher 从配置创建RabbitMQ发布者
// 教学要点：事件发布是尽力而为的旁路功能，MQ未启用或连接失败时
// 返回nil，用例内部会跳过发布（不能因为MQ挂了而起不来服务）
func providePublisher(cfg *config.Config) *mq.Publisher {
	if !cfg.MQ.Enabled {
		return nil
	}
	publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic")
	if err != nil {
		return nil
	}
	return publisher
}

// provideGinEngine 创建并配置Gin引擎
// 教学要点：
// 1. 路由注册复用main.go里的registerRoutes，避免两份路由表漂移
// 2. Prometheus指标在这里初始化（进程内只会执行一次）
func provideGinEngine(
	cfg *config.Config,
	h *handlers,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	metrics.InitMetrics()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	registerRoutes(r, h, authMiddleware)

	return r
}

// ========================================
// Wire Injector (依赖注入器)
// ========================================
// 教学说明：
// InitializeApp是Wire的入口函数（Injector）
//
// wire.Build() 告诉Wire需要哪些Provider来构建*gin.Engine
// Wire会自动分析依赖关系：
//
// 依赖链示例：
// *gin.Engine 需要 → *handlers
// *handlers 需要 → *handler.PurchaseHandler
// *handler.PurchaseHandler 需要 → *apppurchase.CreatePurchaseUseCase
// *apppurchase.CreatePurchaseUseCase 需要 → apppurchase.TxManager
// apppurchase.TxManager 绑定到 → *mysql.TxManager
// *mysql.TxManager 需要 → *gorm.DB
// *gorm.DB 需要 → *config.Config

// InitializeApp 初始化整个应用
// 返回：配置好的Gin引擎
// 错误：如果任何依赖创建失败
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		// 基础设施层
		infrastructureSet,

		// 仓储层
		repositorySet,

		// 领域层
		domainSet,

		// 应用层
		applicationSet,

		// 中间件层
		middlewareSet,

		// 接口层
		handlerSet,

		// Gin引擎
		provideGinEngine,
	)

	// 返回值是占位符，实际代码由wire_gen.go生成
	return nil, nil
}
