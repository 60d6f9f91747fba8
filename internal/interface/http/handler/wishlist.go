package handler

import (
	"github.com/gin-gonic/gin"

	appwishlist "github.com/xiebiao/gamesup/internal/application/wishlist"
	"github.com/xiebiao/gamesup/internal/interface/http/dto"
	"github.com/xiebiao/gamesup/internal/interface/http/middleware"
	"github.com/xiebiao/gamesup/pkg/response"
)

// WishlistHandler 心愿单HTTP处理器
type WishlistHandler struct {
	useCase *appwishlist.WishlistUseCase
}

// NewWishlistHandler 创建心愿单处理器
func NewWishlistHandler(useCase *appwishlist.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{useCase: useCase}
}

// Add 加入心愿单
// @Summary      加入心愿单
// @Description  同一游戏重复加入返回冲突错误
// @Tags         心愿单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddWishlistRequest true "心愿单条目"
// @Success      201 {object} appwishlist.ItemDTO
// @Failure      404 {object} response.ErrorResponse "游戏不存在"
// @Router       /api/wishlist [post]
func (h *WishlistHandler) Add(c *gin.Context) {
	var req dto.AddWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.useCase.Add(c.Request.Context(), middleware.GetUserID(c), req.GameID, req.Priority, req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// List 我的心愿单
// @Summary      我的心愿单
// @Description  按优先级降序、加入时间升序排列
// @Tags         心愿单
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} appwishlist.ItemDTO
// @Router       /api/wishlist [get]
func (h *WishlistHandler) List(c *gin.Context) {
	list, err := h.useCase.List(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// ListByUser 指定用户的心愿单（管理端）
// @Summary      用户心愿单
// @Tags         心愿单
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "用户ID"
// @Success      200 {array} appwishlist.ItemDTO
// @Failure      403 {object} response.ErrorResponse "非管理员"
// @Router       /api/wishlist/user/{userId} [get]
func (h *WishlistHandler) ListByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	list, err := h.useCase.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// Update 调整心愿单条目
// @Summary      调整心愿单条目
// @Tags         心愿单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "条目ID"
// @Param        request body dto.UpdateWishlistRequest true "优先级与备注"
// @Success      200 {object} appwishlist.ItemDTO
// @Failure      403 {object} response.ErrorResponse "非本人条目"
// @Router       /api/wishlist/{id} [put]
func (h *WishlistHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.useCase.Update(c.Request.Context(), id, req.Priority, req.Note, middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Remove 移除心愿单条目
// @Summary      移除心愿单条目
// @Tags         心愿单
// @Security     BearerAuth
// @Param        id path int true "条目ID"
// @Success      204 "移除成功"
// @Router       /api/wishlist/{id} [delete]
func (h *WishlistHandler) Remove(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.useCase.Remove(c.Request.Context(), id, middleware.GetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// RemoveByGame 按游戏移除心愿单条目
// @Summary      按游戏移除
// @Description  购买后前端调用此接口清理心愿单
// @Tags         心愿单
// @Security     BearerAuth
// @Param        gameId path int true "游戏ID"
// @Success      204 "移除成功"
// @Router       /api/wishlist/game/{gameId} [delete]
func (h *WishlistHandler) RemoveByGame(c *gin.Context) {
	gameID, ok := parseIDParam(c, "gameId")
	if !ok {
		return
	}

	if err := h.useCase.RemoveByGame(c.Request.Context(), middleware.GetUserID(c), gameID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
