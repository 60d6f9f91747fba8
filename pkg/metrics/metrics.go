// Package metrics 提供基于Prometheus的指标收集框架
//
// # 核心概念
//
// **1. Counter（计数器）**：只增不减的累计值
//   - 示例：HTTP请求总数、采购订单总数、错误总数
//   - 特点：只能调用Inc()递增
//
// **2. Gauge（仪表盘）**：可增可减的瞬时值
//   - 示例：正在处理的请求数、goroutine数量
//   - 特点：可以调用Inc()、Dec()、Set()
//
// **3. Histogram（直方图）**：观测值的分布
//   - 示例：HTTP请求耗时、下单耗时
//   - 特点：自动计算分位数（P50、P90、P99）
//
// # 使用示例
//
//	// 1. 初始化Metrics
//	metrics.InitMetrics()
//
//	// 2. 在HTTP服务中暴露/metrics端点
//	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	// 3. 在业务代码中记录指标
//	func CreatePurchase(ctx context.Context) error {
//	    start := time.Now()
//
//	    if err := doCreatePurchase(ctx); err != nil {
//	        metrics.IncCounter(metrics.PurchasesFailedTotal)
//	        return err
//	    }
//
//	    metrics.IncCounter(metrics.PurchasesCreatedTotal)
//	    metrics.ObserveHistogram(metrics.PurchaseCreationDuration, time.Since(start).Seconds())
//	    return nil
//	}
//
// # 命名规范
//
// 1. **Counter**: 以`_total`结尾（purchases_created_total）
// 2. **Histogram**: 以单位结尾（http_request_duration_seconds）
// 3. **Gauge**: 使用现在时态（http_requests_in_progress）
//
// # 最佳实践
//
// 1. **使用标签（Label）区分不同维度**：method、path、status
// 2. **避免高基数标签**：不要用user_id、game_id作为标签
// 3. **合理设置Histogram桶**：HTTP耗时用0.001～10秒
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（/api/games）、status（200/500）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 采购业务指标

	// PurchasesCreatedTotal 采购订单创建总数（Counter）
	PurchasesCreatedTotal prometheus.Counter

	// PurchasesFailedTotal 采购订单创建失败总数（Counter）
	PurchasesFailedTotal prometheus.Counter

	// PurchaseCreationDuration 采购订单创建耗时（Histogram）
	PurchaseCreationDuration prometheus.Histogram

	// 库存指标

	// StockDecrementsTotal 库存扣减总数（Counter）
	// 标签：result（success/insufficient）
	StockDecrementsTotal *prometheus.CounterVec

	// LowStockGames 低于安全库存的游戏数量（Gauge）
	LowStockGames prometheus.Gauge

	// 推荐服务指标

	// RecommendationRequestsTotal 推荐请求总数（Counter）
	// 标签：result（success/fallback）
	RecommendationRequestsTotal *prometheus.CounterVec

	// RecommendationDuration 推荐服务调用耗时（Histogram）
	RecommendationDuration prometheus.Histogram

	// 消息队列指标

	// MessagesPublishedTotal 消息发布总数（Counter）
	// 标签：exchange（交换机）、routing_key（路由键）
	MessagesPublishedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
//
// 必须在程序启动时调用一次，用于注册所有指标到全局Registry
//
// 设计要点：
// 1. 使用promauto.New*自动注册到默认Registry
// 2. Counter使用*Vec支持标签（多维度统计）
// 3. Histogram的Buckets根据业务场景定制
func InitMetrics() {
	// 防止重复初始化
	if initialized {
		return
	}
	initialized = true

	// HTTP请求指标
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"}, // 标签：方法、路径、状态码
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP请求耗时（秒）",
			// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
			// 覆盖大部分HTTP请求耗时范围
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"}, // 标签：方法、路径
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	// 采购业务指标
	PurchasesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "purchases_created_total",
			Help: "采购订单创建总数",
		},
	)

	PurchasesFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "purchases_failed_total",
			Help: "采购订单创建失败总数",
		},
	)

	PurchaseCreationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "purchase_creation_duration_seconds",
			Help: "采购订单创建耗时（秒）",
			// 下单涉及库存锁定和扣减，耗时略高于普通请求
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
	)

	// 库存指标
	StockDecrementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stock_decrements_total",
			Help: "库存扣减总数",
		},
		[]string{"result"}, // 标签：结果（success/insufficient）
	)

	LowStockGames = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "low_stock_games",
			Help: "低于安全库存的游戏数量",
		},
	)

	// 推荐服务指标
	RecommendationRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "推荐请求总数",
		},
		[]string{"result"}, // 标签：结果（success/fallback）
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "recommendation_duration_seconds",
			Help: "推荐服务调用耗时（秒）",
			// 推荐服务有3秒超时上限
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 3, 5},
		},
	)

	// 消息队列指标
	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_published_total",
			Help: "消息发布总数",
		},
		[]string{"exchange", "routing_key"}, // 标签：交换机、路由键
	)
}

// IncCounter 递增Counter（便捷函数）
func IncCounter(counter prometheus.Counter) {
	counter.Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// SetGauge 设置Gauge值
func SetGauge(gauge prometheus.Gauge, value float64) {
	gauge.Set(value)
}

// SetGaugeVec 设置GaugeVec值（带标签）
func SetGaugeVec(gauge *prometheus.GaugeVec, labels map[string]string, value float64) {
	gauge.With(labels).Set(value)
}

// ObserveHistogram 记录Histogram观测值
func ObserveHistogram(histogram prometheus.Histogram, value float64) {
	histogram.Observe(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
