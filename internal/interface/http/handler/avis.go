package handler

import (
	"github.com/gin-gonic/gin"

	appavis "github.com/xiebiao/gamesup/internal/application/avis"
	"github.com/xiebiao/gamesup/internal/interface/http/dto"
	"github.com/xiebiao/gamesup/internal/interface/http/middleware"
	"github.com/xiebiao/gamesup/pkg/response"
)

// AvisHandler 评价HTTP处理器
type AvisHandler struct {
	useCase *appavis.AvisUseCase
}

// NewAvisHandler 创建评价处理器
func NewAvisHandler(useCase *appavis.AvisUseCase) *AvisHandler {
	return &AvisHandler{useCase: useCase}
}

// Create 发表评价
// @Summary      发表评价
// @Description  新建评价为待审核状态，审核通过后才计入评分
// @Tags         评价
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateAvisRequest true "评价内容"
// @Success      201 {object} appavis.AvisDTO
// @Failure      404 {object} response.ErrorResponse "游戏不存在"
// @Router       /api/avis [post]
func (h *AvisHandler) Create(c *gin.Context) {
	var req dto.CreateAvisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.useCase.Create(c.Request.Context(), middleware.GetUserID(c), req.GameID, req.Comment, req.Rating)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// ListByGame 游戏的已审核评价（按时间倒序）
// @Summary      游戏评价列表
// @Tags         评价
// @Produce      json
// @Security     BearerAuth
// @Param        gameId path int true "游戏ID"
// @Success      200 {array} appavis.AvisDTO
// @Router       /api/avis/game/{gameId} [get]
func (h *AvisHandler) ListByGame(c *gin.Context) {
	gameID, ok := parseIDParam(c, "gameId")
	if !ok {
		return
	}

	// 管理员看到全部评价（含待审核），普通用户只看到已审核
	var (
		list []appavis.AvisDTO
		err  error
	)
	if middleware.IsAdmin(c) {
		list, err = h.useCase.ListByGameAll(c.Request.Context(), gameID)
	} else {
		list, err = h.useCase.ListByGame(c.Request.Context(), gameID)
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// Summary 游戏评分聚合
// @Summary      游戏评分
// @Description  average_rating为null表示尚无已审核评价
// @Tags         评价
// @Produce      json
// @Security     BearerAuth
// @Param        gameId path int true "游戏ID"
// @Success      200 {object} appavis.SummaryDTO
// @Router       /api/avis/game/{gameId}/summary [get]
func (h *AvisHandler) Summary(c *gin.Context) {
	gameID, ok := parseIDParam(c, "gameId")
	if !ok {
		return
	}

	result, err := h.useCase.Summary(c.Request.Context(), gameID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListMine 我发表的评价
// @Summary      我的评价
// @Tags         评价
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} appavis.AvisDTO
// @Router       /api/avis/mine [get]
func (h *AvisHandler) ListMine(c *gin.Context) {
	list, err := h.useCase.ListByUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// ListByUser 用户发表的评价（管理端）
// @Summary      用户评价列表
// @Tags         评价
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "用户ID"
// @Success      200 {array} appavis.AvisDTO
// @Router       /api/avis/user/{userId} [get]
func (h *AvisHandler) ListByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	list, err := h.useCase.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// ListAll 全部评价（管理端审核列表）
// @Summary      全部评价
// @Tags         评价
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} appavis.AvisDTO
// @Failure      403 {object} response.ErrorResponse "非管理员"
// @Router       /api/avis/all [get]
func (h *AvisHandler) ListAll(c *gin.Context) {
	list, err := h.useCase.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// Update 修改评价
// @Summary      修改评价
// @Description  修改后重新进入待审核状态
// @Tags         评价
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "评价ID"
// @Param        request body dto.UpdateAvisRequest true "评价内容"
// @Success      200 {object} appavis.AvisDTO
// @Failure      403 {object} response.ErrorResponse "非本人评价"
// @Router       /api/avis/{id} [put]
func (h *AvisHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAvisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.useCase.Update(c.Request.Context(), id, req.Comment, req.Rating,
		middleware.GetUserID(c), middleware.IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Approve 审核通过（管理端）
// @Summary      审核通过
// @Tags         评价
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "评价ID"
// @Success      200 {object} appavis.AvisDTO
// @Failure      403 {object} response.ErrorResponse "非管理员"
// @Router       /api/avis/{id}/approve [post]
func (h *AvisHandler) Approve(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.useCase.Approve(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Delete 删除评价
// @Summary      删除评价
// @Tags         评价
// @Security     BearerAuth
// @Param        id path int true "评价ID"
// @Success      204 "删除成功"
// @Failure      403 {object} response.ErrorResponse "非本人评价"
// @Router       /api/avis/{id} [delete]
func (h *AvisHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id, middleware.GetUserID(c), middleware.IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
