package user

import (
	apperrors "github.com/xiebiao/gamesup/pkg/errors"
)

// 用户领域错误定义
var (
	// ErrInvalidRole 非法角色
	ErrInvalidRole = apperrors.New(apperrors.ErrCodeInvalidParams, "角色必须是CLIENT或ADMIN")

	// ErrInvalidEmail 邮箱格式不正确
	ErrInvalidEmail = apperrors.New(apperrors.ErrCodeInvalidParams, "邮箱格式不正确")

	// ErrInvalidName 姓名不能为空
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidParams, "姓名不能为空")
)
