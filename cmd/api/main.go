package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/gamesup/docs" // swagger文档注册
	appavis "github.com/xiebiao/gamesup/internal/application/avis"
	appcatalog "github.com/xiebiao/gamesup/internal/application/catalog"
	appgame "github.com/xiebiao/gamesup/internal/application/game"
	apppurchase "github.com/xiebiao/gamesup/internal/application/purchase"
	apprecommendation "github.com/xiebiao/gamesup/internal/application/recommendation"
	appuser "github.com/xiebiao/gamesup/internal/application/user"
	appwishlist "github.com/xiebiao/gamesup/internal/application/wishlist"
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
	"github.com/xiebiao/gamesup/pkg/response"
)

// main 主程序入口
// 说明：手动依赖注入（wire.go里有等价的Wire版本，运行wire gen后可切换）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())
	fmt.Printf("  - 推荐服务: %s\n", cfg.Recommender.BaseURL)

	// 2. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 3. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 4. 初始化Prometheus指标
	metrics.InitMetrics()

	// 5. 初始化RabbitMQ发布者（可选）
	// 学习要点：事件发布是尽力而为的旁路功能，
	// MQ未启用或连接失败时publisher为nil，用例内部会跳过发布
	var publisher *mq.Publisher
	if cfg.MQ.Enabled {
		publisher, err = mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic")
		if err != nil {
			log.Printf("⚠️  RabbitMQ连接失败，事件发布已禁用: %v", err)
			publisher = nil
		}
	}

	// 6. 依赖注入（手动组装）
	// 学习要点：依赖注入链
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	gameRepo := mysql.NewGameRepository(db)
	inventoryRepo := mysql.NewInventoryRepository(db)
	purchaseRepo := mysql.NewPurchaseRepository(db)
	avisRepo := mysql.NewAvisRepository(db)
	wishlistRepo := mysql.NewWishlistRepository(db)
	categoryRepo := mysql.NewCategoryRepository(db)
	publisherRepo := mysql.NewPublisherRepository(db)
	authorRepo := mysql.NewAuthorRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
	recommenderGateway := recommender.NewClient(cfg.Recommender.BaseURL, cfg.Recommender.Timeout)

	// 领域层
	userService := user.NewService(userRepo)

	// 应用层
	registerUseCase := appuser.NewRegisterUseCase(userService)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore)
	logoutUseCase := appuser.NewLogoutUseCase(jwtManager, sessionStore)
	manageUsersUseCase := appuser.NewManageUsersUseCase(userRepo, purchaseRepo)
	categoryUseCase := appcatalog.NewCategoryUseCase(categoryRepo)
	publisherUseCase := appcatalog.NewPublisherUseCase(publisherRepo)
	authorUseCase := appcatalog.NewAuthorUseCase(authorRepo)
	createGameUseCase := appgame.NewCreateGameUseCase(gameRepo, inventoryRepo, categoryRepo, publisherRepo, authorRepo)
	getGameUseCase := appgame.NewGetGameUseCase(gameRepo, inventoryRepo, avisRepo, categoryRepo, publisherRepo, authorRepo)
	listGamesUseCase := appgame.NewListGamesUseCase(gameRepo)
	updateGameUseCase := appgame.NewUpdateGameUseCase(gameRepo, categoryRepo, publisherRepo, authorRepo)
	stockUseCase := appgame.NewStockUseCase(inventoryRepo, txManager, publisher)
	createPurchaseUseCase := apppurchase.NewCreatePurchaseUseCase(purchaseRepo, gameRepo, inventoryRepo, txManager, publisher)
	managePurchaseUseCase := apppurchase.NewManagePurchaseUseCase(purchaseRepo, inventoryRepo, txManager)
	avisUseCase := appavis.NewAvisUseCase(avisRepo, gameRepo)
	wishlistUseCase := appwishlist.NewWishlistUseCase(wishlistRepo, gameRepo)
	recommendUseCase := apprecommendation.NewRecommendUseCase(recommenderGateway, gameRepo)

	// 接口层
	h := &handlers{
		auth:           handler.NewAuthHandler(loginUseCase, logoutUseCase, manageUsersUseCase, jwtManager, sessionStore),
		user:           handler.NewUserHandler(registerUseCase, manageUsersUseCase),
		category:       handler.NewCategoryHandler(categoryUseCase),
		publisher:      handler.NewPublisherHandler(publisherUseCase),
		author:         handler.NewAuthorHandler(authorUseCase),
		game:           handler.NewGameHandler(createGameUseCase, getGameUseCase, listGamesUseCase, updateGameUseCase, stockUseCase),
		purchase:       handler.NewPurchaseHandler(createPurchaseUseCase, managePurchaseUseCase),
		avis:           handler.NewAvisHandler(avisUseCase),
		wishlist:       handler.NewWishlistHandler(wishlistUseCase),
		recommendation: handler.NewRecommendationHandler(recommendUseCase),
	}
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 7. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	// 8. 注册路由
	registerRoutes(r, h, authMiddleware)

	// 9. 启动服务（优雅停机）
	// 学习要点：收到SIGINT/SIGTERM后停止接收新请求，
	// 给在途请求最多10秒完成，再关闭MQ连接退出
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		fmt.Printf("\n🚀 服务启动成功！\n")
		fmt.Printf("   访问地址: http://localhost%s\n", addr)
		fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
		fmt.Printf("   API文档:  http://localhost%s/swagger/index.html\n", addr)
		fmt.Printf("   监控指标: http://localhost%s/metrics\n", addr)
		fmt.Printf("\n按Ctrl+C停止服务\n\n")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("启动服务失败: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	fmt.Println("\n正在停止服务...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("服务停止异常: %v", err)
	}
	if publisher != nil {
		_ = publisher.Close()
	}
	fmt.Println("服务已停止")
}

// handlers 全部HTTP处理器（只为让registerRoutes签名可读）
type handlers struct {
	auth           *handler.AuthHandler
	user           *handler.UserHandler
	category       *handler.CategoryHandler
	publisher      *handler.PublisherHandler
	author         *handler.AuthorHandler
	game           *handler.GameHandler
	purchase       *handler.PurchaseHandler
	avis           *handler.AvisHandler
	wishlist       *handler.WishlistHandler
	recommendation *handler.RecommendationHandler
}

// registerRoutes 注册路由
// 访问控制约定：
// - 公开：目录读、参考数据（分类/出版商/作者）、注册、推荐
// - 登录：游戏写操作、订单、评价、心愿单
// - 管理员：用户管理、订单状态流转、评价审核
func registerRoutes(r *gin.Engine, h *handlers, authMiddleware *middleware.AuthMiddleware) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		// 认证模块
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.auth.Login)                                 // ✅ 登录
			auth.POST("/logout", authMiddleware.RequireAuth(), h.auth.Logout) // ✅ 登出
			auth.GET("/me", authMiddleware.RequireAuth(), h.auth.Me)          // ✅ 当前账号
			auth.GET("/validate", h.auth.Validate)                            // ✅ Token存活检查（公开）
		}

		// 用户模块
		users := api.Group("/users")
		{
			// 公开接口
			users.POST("/register", h.user.Register)   // ✅ 客户注册
			users.GET("/clients", h.user.ListClients)  // ✅ 客户列表
			users.GET("/admins", h.user.ListAdmins)    // ✅ 管理员列表

			// 账号管理（管理员）
			admin := users.Group("", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
			{
				admin.POST("", h.user.Create)
				admin.GET("", h.user.List)
				admin.GET("/search", h.user.Search)
				admin.GET("/role/:role", h.user.ListByRole)
				admin.GET("/:id", h.user.Get)
				admin.PUT("/:id", h.user.Update)
				admin.PATCH("/:id/active", h.user.SetActive)
				admin.PATCH("/:id/role", h.user.ChangeRole)
				admin.DELETE("/:id", h.user.Delete)
			}
		}

		// 参考数据模块（公开）
		categories := api.Group("/categories")
		{
			categories.POST("", h.category.Create)
			categories.GET("", h.category.List)
			categories.GET("/:id", h.category.Get)
			categories.PUT("/:id", h.category.Update)
			categories.DELETE("/:id", h.category.Delete)
		}
		publishers := api.Group("/publishers")
		{
			publishers.POST("", h.publisher.Create)
			publishers.GET("", h.publisher.List)
			publishers.GET("/:id", h.publisher.Get)
			publishers.PUT("/:id", h.publisher.Update)
			publishers.DELETE("/:id", h.publisher.Delete)
		}
		authors := api.Group("/authors")
		{
			authors.POST("", h.author.Create)
			authors.GET("", h.author.List)
			authors.GET("/:id", h.author.Get)
			authors.PUT("/:id", h.author.Update)
			authors.DELETE("/:id", h.author.Delete)
		}

		// 游戏模块
		games := api.Group("/games")
		{
			// 读接口公开
			games.GET("", h.game.List)
			games.GET("/search", h.game.Search)
			games.GET("/available", h.game.ListAvailable)
			games.GET("/category/:id", h.game.ListByCategory)
			games.GET("/publisher/:id", h.game.ListByPublisher)
			games.GET("/author/:name", h.game.ListByAuthor)
			games.GET("/:id", h.game.Get)
			games.GET("/:id/stock", h.game.GetStock)

			// 写接口与库存操作需要登录
			authorized := games.Group("", authMiddleware.RequireAuth())
			{
				authorized.POST("", h.game.Create)
				authorized.PUT("/:id", h.game.Update)
				authorized.DELETE("/:id", h.game.Delete)
				authorized.POST("/:id/stock/increment", h.game.IncrementStock)
				authorized.POST("/:id/stock/decrement", h.game.DecrementStock)
				authorized.PATCH("/:id/stock/minimum", h.game.SetStockMinimum)
				authorized.GET("/stock/low", h.game.ListLowStock)
			}
		}

		// 订单模块（需要登录）
		purchases := api.Group("/purchases")
		purchases.Use(authMiddleware.RequireAuth())
		{
			purchases.POST("", h.purchase.Create)
			purchases.GET("", h.purchase.List)
			purchases.GET("/:id", h.purchase.Get)
			purchases.POST("/:id/cancel", h.purchase.Cancel)
			purchases.PUT("/:id/lines/:lineId", h.purchase.UpdateLine)
			purchases.DELETE("/:id/lines/:lineId", h.purchase.RemoveLine)

			// 管理端：全量列表与状态流转
			admin := purchases.Group("", authMiddleware.RequireAdmin())
			{
				admin.GET("/all", h.purchase.ListAll)
				admin.GET("/user/:userId", h.purchase.ListByUser)
				admin.POST("/:id/confirm", h.purchase.Confirm)
				admin.POST("/:id/ship", h.purchase.Ship)
				admin.POST("/:id/deliver", h.purchase.Deliver)
				admin.POST("/:id/pay", h.purchase.MarkPaid)
				admin.POST("/:id/archive", h.purchase.Archive)
				admin.DELETE("/:id", h.purchase.Delete)
			}
		}

		// 评价模块（需要登录）
		avis := api.Group("/avis")
		avis.Use(authMiddleware.RequireAuth())
		{
			avis.POST("", h.avis.Create)
			avis.GET("/game/:gameId", h.avis.ListByGame)
			avis.GET("/game/:gameId/summary", h.avis.Summary)
			avis.GET("/mine", h.avis.ListMine)
			avis.PUT("/:id", h.avis.Update)
			avis.DELETE("/:id", h.avis.Delete)

			// 管理端：审核
			admin := avis.Group("", authMiddleware.RequireAdmin())
			{
				admin.GET("/all", h.avis.ListAll)
				admin.GET("/user/:userId", h.avis.ListByUser)
				admin.POST("/:id/approve", h.avis.Approve)
			}
		}

		// 心愿单模块（需要登录）
		wishlist := api.Group("/wishlist")
		wishlist.Use(authMiddleware.RequireAuth())
		{
			wishlist.POST("", h.wishlist.Add)
			wishlist.GET("", h.wishlist.List)
			wishlist.PUT("/:id", h.wishlist.Update)
			wishlist.DELETE("/:id", h.wishlist.Remove)
			wishlist.DELETE("/game/:gameId", h.wishlist.RemoveByGame)
			wishlist.GET("/user/:userId", authMiddleware.RequireAdmin(), h.wishlist.ListByUser)
		}

		// 推荐模块（公开）
		recommendations := api.Group("/recommendations")
		{
			recommendations.GET("/user/:id", h.recommendation.ForUser)
			recommendations.GET("/game/:id", h.recommendation.ForGame)
			recommendations.POST("/update-model", h.recommendation.UpdateModel)
			recommendations.POST("/train", h.recommendation.Train)
			recommendations.GET("/health", h.recommendation.Health)
			// 原API的别名路径（兼容旧客户端）
			recommendations.POST("/send-data", h.recommendation.Train)
			recommendations.GET("/status", h.recommendation.Health)
		}
	}
}
