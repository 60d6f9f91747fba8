package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/xiebiao/gamesup/pkg/errors"
)

// ErrorResponse 统一错误响应结构
// 设计说明：
// 1. Status是HTTP状态码，Code是更细粒度的业务错误码
// 2. Error是错误类别的短描述，Message是用户友好的提示
// 3. Details仅在参数校验失败时携带 字段→错误信息 映射
type ErrorResponse struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Code      int               `json:"code"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
}

// Success 成功响应（200）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 创建成功响应（201）
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 删除成功响应（204）
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	err := gameService.Create(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := appErr.HTTPStatus()

	c.JSON(status, ErrorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Code:      appErr.Code,
		Error:     categoryOf(status),
		Message:   appErr.Message,
	})
}

// BindError 参数绑定/校验失败响应（400）
// 学习要点：validator.ValidationErrors可逐字段提取，转换为 字段→信息 映射
func BindError(c *gin.Context, err error) {
	details := map[string]string{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			details[fe.Field()] = validationMessage(fe)
		}
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Timestamp: time.Now(),
		Status:    http.StatusBadRequest,
		Code:      apperrors.ErrCodeBindError,
		Error:     "Validation Error",
		Message:   "提交的数据不合法",
		Details:   details,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	Error(c, apperrors.New(code, message))
}

// categoryOf HTTP状态码 → 错误类别短语
func categoryOf(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Bad Request"
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusForbidden:
		return "Forbidden"
	case http.StatusNotFound:
		return "Not Found"
	default:
		return "Internal Server Error"
	}
}

// validationMessage 将validator的错误翻译为可读信息
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "字段不能为空"
	case "email":
		return "邮箱格式不正确"
	case "min":
		return "长度或数值低于最小限制: " + fe.Param()
	case "max":
		return "长度或数值超过最大限制: " + fe.Param()
	case "gt":
		return "必须大于" + fe.Param()
	case "gte":
		return "必须大于等于" + fe.Param()
	case "lte":
		return "必须小于等于" + fe.Param()
	default:
		return "校验失败: " + fe.Tag()
	}
}

// =========================================
// 分页响应结构
// =========================================

// PageData 分页数据封装
type PageData struct {
	List       interface{} `json:"list"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

// NewPageData 创建分页数据
func NewPageData(list interface{}, total int64, page, pageSize int) *PageData {
	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	return &PageData{
		List:       list,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(c *gin.Context, list interface{}, total int64, page, pageSize int) {
	Success(c, NewPageData(list, total, page, pageSize))
}
