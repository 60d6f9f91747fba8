package handler

import (
	"github.com/gin-gonic/gin"

	appgame "github.com/xiebiao/gamesup/internal/application/game"
	"github.com/xiebiao/gamesup/internal/interface/http/dto"
	"github.com/xiebiao/gamesup/pkg/response"
)

// GameHandler 游戏HTTP处理器
// 读接口（列表/搜索/详情/库存查询）公开；写接口需要登录
type GameHandler struct {
	createUseCase *appgame.CreateGameUseCase
	getUseCase    *appgame.GetGameUseCase
	listUseCase   *appgame.ListGamesUseCase
	updateUseCase *appgame.UpdateGameUseCase
	stockUseCase  *appgame.StockUseCase
}

// NewGameHandler 创建游戏处理器
func NewGameHandler(
	createUseCase *appgame.CreateGameUseCase,
	getUseCase *appgame.GetGameUseCase,
	listUseCase *appgame.ListGamesUseCase,
	updateUseCase *appgame.UpdateGameUseCase,
	stockUseCase *appgame.StockUseCase,
) *GameHandler {
	return &GameHandler{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		stockUseCase:  stockUseCase,
	}
}

// List 游戏列表
// @Summary      游戏列表
// @Tags         游戏
// @Produce      json
// @Success      200 {array} appgame.GameListItem
// @Router       /api/games [get]
func (h *GameHandler) List(c *gin.Context) {
	list, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// Search 多条件搜索
// @Summary      搜索游戏
// @Description  关键词（大小写不敏感，匹配名称或描述）+ 可选条件的AND组合；人数条件按"覆盖"语义匹配
// @Tags         游戏
// @Produce      json
// @Param        keyword query string false "关键词"
// @Param        category_id query int false "分类ID"
// @Param        publisher_id query int false "出版商ID"
// @Param        price_min query int false "最低价格（分）"
// @Param        price_max query int false "最高价格（分）"
// @Param        age_min query int false "适龄下限"
// @Param        players_min query int false "人数下限"
// @Param        players_max query int false "人数上限"
// @Param        max_duration query int false "最长单局时长（分钟）"
// @Param        available query bool false "是否上架"
// @Success      200 {array} appgame.GameListItem
// @Failure      400 {object} response.ErrorResponse "条件非法"
// @Router       /api/games/search [get]
func (h *GameHandler) Search(c *gin.Context) {
	var req dto.SearchGamesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}

	list, err := h.listUseCase.Search(c.Request.Context(), appgame.SearchGamesRequest{
		Keyword:     req.Keyword,
		CategoryID:  req.CategoryID,
		PublisherID: req.PublisherID,
		PriceMin:    req.PriceMin,
		PriceMax:    req.PriceMax,
		AgeMin:      req.AgeMin,
		PlayersMin:  req.PlayersMin,
		PlayersMax:  req.PlayersMax,
		MaxDuration: req.MaxDuration,
		Available:   req.Available,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// ListAvailable 在售游戏列表
// @Summary      在售游戏列表
// @Tags         游戏
// @Produce      json
// @Success      200 {array} appgame.GameListItem
// @Router       /api/games/available [get]
func (h *GameHandler) ListAvailable(c *gin.Context) {
	available := true
	list, err := h.listUseCase.Search(c.Request.Context(), appgame.SearchGamesRequest{Available: &available})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// ListByCategory 按分类查询游戏
// @Summary      按分类查询游戏
// @Tags         游戏
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200 {array} appgame.GameListItem
// @Router       /api/games/category/{id} [get]
func (h *GameHandler) ListByCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	list, err := h.listUseCase.Search(c.Request.Context(), appgame.SearchGamesRequest{CategoryID: &id})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// ListByPublisher 按出版商查询游戏
// @Summary      按出版商查询游戏
// @Tags         游戏
// @Produce      json
// @Param        id path int true "出版商ID"
// @Success      200 {array} appgame.GameListItem
// @Router       /api/games/publisher/{id} [get]
func (h *GameHandler) ListByPublisher(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	list, err := h.listUseCase.Search(c.Request.Context(), appgame.SearchGamesRequest{PublisherID: &id})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// ListByAuthor 按作者名查询游戏
// @Summary      按作者名查询游戏
// @Tags         游戏
// @Produce      json
// @Param        name path string true "作者名"
// @Success      200 {array} appgame.GameListItem
// @Router       /api/games/author/{name} [get]
func (h *GameHandler) ListByAuthor(c *gin.Context) {
	list, err := h.listUseCase.ListByAuthorName(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// Get 游戏详情
// @Summary      游戏详情
// @Description  聚合游戏本体、目录信息、库存和评分（average_rating为null表示无已审核评价）
// @Tags         游戏
// @Produce      json
// @Param        id path int true "游戏ID"
// @Success      200 {object} appgame.GameDetail
// @Failure      404 {object} response.ErrorResponse "游戏不存在"
// @Router       /api/games/{id} [get]
func (h *GameHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, detail)
}

// Create 创建游戏
// @Summary      创建游戏
// @Description  自动创建stock=0的库存记录
// @Tags         游戏
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateGameRequest true "游戏信息"
// @Success      201 {object} appgame.GameDetail
// @Failure      400 {object} response.ErrorResponse "参数错误"
// @Failure      404 {object} response.ErrorResponse "分类/出版商/作者不存在"
// @Router       /api/games [post]
func (h *GameHandler) Create(c *gin.Context) {
	var req dto.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	detail, err := h.createUseCase.Execute(c.Request.Context(), appgame.CreateGameRequest{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Edition:     req.Edition,
		AgeMin:      req.AgeMin,
		PlayersMin:  req.PlayersMin,
		PlayersMax:  req.PlayersMax,
		Duration:    req.Duration,
		CategoryID:  req.CategoryID,
		PublisherID: req.PublisherID,
		AuthorIDs:   req.AuthorIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, detail)
}

// Update 更新游戏
// @Summary      更新游戏
// @Tags         游戏
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "游戏ID"
// @Param        request body dto.UpdateGameRequest true "游戏信息（缺省字段不修改）"
// @Success      200 {object} appgame.GameDetail
// @Router       /api/games/{id} [put]
func (h *GameHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	detail, err := h.updateUseCase.Execute(c.Request.Context(), id, appgame.UpdateGameRequest{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Edition:     req.Edition,
		AgeMin:      req.AgeMin,
		PlayersMin:  req.PlayersMin,
		PlayersMax:  req.PlayersMax,
		Duration:    req.Duration,
		CategoryID:  req.CategoryID,
		PublisherID: req.PublisherID,
		AuthorIDs:   req.AuthorIDs,
		Available:   req.Available,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, detail)
}

// Delete 删除游戏
// @Summary      删除游戏
// @Description  级联删除库存记录
// @Tags         游戏
// @Security     BearerAuth
// @Param        id path int true "游戏ID"
// @Success      204 "删除成功"
// @Failure      404 {object} response.ErrorResponse "游戏不存在"
// @Router       /api/games/{id} [delete]
func (h *GameHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.updateUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// =========================================
// 库存管理
// =========================================

// GetStock 查询库存
// @Summary      查询库存
// @Tags         库存
// @Produce      json
// @Param        id path int true "游戏ID"
// @Success      200 {object} appgame.StockInfo
// @Failure      404 {object} response.ErrorResponse "库存记录不存在"
// @Router       /api/games/{id}/stock [get]
func (h *GameHandler) GetStock(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	info, err := h.stockUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, info)
}

// IncrementStock 入库
// @Summary      入库
// @Tags         库存
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "游戏ID"
// @Param        request body dto.StockAdjustRequest true "入库数量"
// @Success      200 {object} appgame.StockInfo
// @Router       /api/games/{id}/stock/increment [post]
func (h *GameHandler) IncrementStock(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.StockAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	info, err := h.stockUseCase.Increment(c.Request.Context(), id, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, info)
}

// DecrementStock 出库
// @Summary      出库
// @Description  全有或全无：数量超过现存库存时返回400
// @Tags         库存
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "游戏ID"
// @Param        request body dto.StockAdjustRequest true "出库数量"
// @Success      200 {object} appgame.StockInfo
// @Failure      400 {object} response.ErrorResponse "库存不足"
// @Router       /api/games/{id}/stock/decrement [post]
func (h *GameHandler) DecrementStock(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.StockAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	info, err := h.stockUseCase.Decrement(c.Request.Context(), id, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, info)
}

// SetStockMinimum 调整安全库存阈值
// @Summary      调整安全库存阈值
// @Tags         库存
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "游戏ID"
// @Param        request body dto.StockMinimumRequest true "阈值"
// @Success      200 {object} appgame.StockInfo
// @Router       /api/games/{id}/stock/minimum [patch]
func (h *GameHandler) SetStockMinimum(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.StockMinimumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	info, err := h.stockUseCase.SetMinimum(c.Request.Context(), id, *req.StockMinimum)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, info)
}

// ListLowStock 低库存清单
// @Summary      低库存清单
// @Description  stock <= stock_minimum的游戏（补货提醒）
// @Tags         库存
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} appgame.LowStockEvent
// @Router       /api/games/stock/low [get]
func (h *GameHandler) ListLowStock(c *gin.Context) {
	list, err := h.stockUseCase.ListLowStock(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}
