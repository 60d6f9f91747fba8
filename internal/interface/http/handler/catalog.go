package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/gamesup/internal/application/catalog"
	"github.com/xiebiao/gamesup/internal/interface/http/dto"
	"github.com/xiebiao/gamesup/pkg/response"
)

// 目录维度（分类/出版商/作者）的HTTP处理器
// 三个处理器形态一致，集中在一个文件便于对照维护

// =========================================
// 分类
// =========================================

// CategoryHandler 分类HTTP处理器
type CategoryHandler struct {
	useCase *appcatalog.CategoryUseCase
}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler(useCase *appcatalog.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{useCase: useCase}
}

// Create 创建分类
// @Summary      创建分类
// @Tags         目录
// @Accept       json
// @Produce      json
// @Param        request body dto.CategoryRequest true "分类信息"
// @Success      201 {object} appcatalog.CategoryDTO
// @Failure      400 {object} response.ErrorResponse "类型名重复"
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.useCase.Create(c.Request.Context(), req.Type, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// List 分类列表
// @Summary      分类列表
// @Tags         目录
// @Produce      json
// @Success      200 {array} appcatalog.CategoryDTO
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	list, err := h.useCase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// Get 分类详情
// @Summary      分类详情
// @Tags         目录
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200 {object} appcatalog.CategoryDTO
// @Failure      404 {object} response.ErrorResponse "分类不存在"
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Update 更新分类
// @Summary      更新分类
// @Tags         目录
// @Accept       json
// @Produce      json
// @Param        id path int true "分类ID"
// @Param        request body dto.CategoryRequest true "分类信息"
// @Success      200 {object} appcatalog.CategoryDTO
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.useCase.Update(c.Request.Context(), id, req.Type, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Delete 删除分类
// @Summary      删除分类
// @Tags         目录
// @Param        id path int true "分类ID"
// @Success      204 "删除成功"
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// =========================================
// 出版商
// =========================================

// PublisherHandler 出版商HTTP处理器
type PublisherHandler struct {
	useCase *appcatalog.PublisherUseCase
}

// NewPublisherHandler 创建出版商处理器
func NewPublisherHandler(useCase *appcatalog.PublisherUseCase) *PublisherHandler {
	return &PublisherHandler{useCase: useCase}
}

// Create 创建出版商
// @Summary      创建出版商
// @Tags         目录
// @Accept       json
// @Produce      json
// @Param        request body dto.PublisherRequest true "出版商信息"
// @Success      201 {object} appcatalog.PublisherDTO
// @Router       /api/publishers [post]
func (h *PublisherHandler) Create(c *gin.Context) {
	var req dto.PublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.useCase.Create(c.Request.Context(), req.Name, req.Description, req.Website, req.Country)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// List 出版商列表
// @Summary      出版商列表
// @Tags         目录
// @Produce      json
// @Success      200 {array} appcatalog.PublisherDTO
// @Router       /api/publishers [get]
func (h *PublisherHandler) List(c *gin.Context) {
	list, err := h.useCase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// Get 出版商详情
// @Summary      出版商详情
// @Tags         目录
// @Produce      json
// @Param        id path int true "出版商ID"
// @Success      200 {object} appcatalog.PublisherDTO
// @Router       /api/publishers/{id} [get]
func (h *PublisherHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Update 更新出版商
// @Summary      更新出版商
// @Tags         目录
// @Accept       json
// @Produce      json
// @Param        id path int true "出版商ID"
// @Param        request body dto.PublisherRequest true "出版商信息"
// @Success      200 {object} appcatalog.PublisherDTO
// @Router       /api/publishers/{id} [put]
func (h *PublisherHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.PublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.useCase.Update(c.Request.Context(), id, req.Name, req.Description, req.Website, req.Country)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Delete 删除出版商
// @Summary      删除出版商
// @Tags         目录
// @Param        id path int true "出版商ID"
// @Success      204 "删除成功"
// @Router       /api/publishers/{id} [delete]
func (h *PublisherHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// =========================================
// 作者
// =========================================

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	useCase *appcatalog.AuthorUseCase
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(useCase *appcatalog.AuthorUseCase) *AuthorHandler {
	return &AuthorHandler{useCase: useCase}
}

// Create 创建作者
// @Summary      创建作者
// @Tags         目录
// @Accept       json
// @Produce      json
// @Param        request body dto.AuthorRequest true "作者信息"
// @Success      201 {object} appcatalog.AuthorDTO
// @Router       /api/authors [post]
func (h *AuthorHandler) Create(c *gin.Context) {
	var req dto.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.useCase.Create(c.Request.Context(), req.Name, req.Biography, req.Country)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// List 作者列表
// @Summary      作者列表
// @Tags         目录
// @Produce      json
// @Success      200 {array} appcatalog.AuthorDTO
// @Router       /api/authors [get]
func (h *AuthorHandler) List(c *gin.Context) {
	list, err := h.useCase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// Get 作者详情
// @Summary      作者详情
// @Tags         目录
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} appcatalog.AuthorDTO
// @Router       /api/authors/{id} [get]
func (h *AuthorHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Update 更新作者
// @Summary      更新作者
// @Tags         目录
// @Accept       json
// @Produce      json
// @Param        id path int true "作者ID"
// @Param        request body dto.AuthorRequest true "作者信息"
// @Success      200 {object} appcatalog.AuthorDTO
// @Router       /api/authors/{id} [put]
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.useCase.Update(c.Request.Context(), id, req.Name, req.Biography, req.Country)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Delete 删除作者
// @Summary      删除作者
// @Tags         目录
// @Param        id path int true "作者ID"
// @Success      204 "删除成功"
// @Router       /api/authors/{id} [delete]
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
