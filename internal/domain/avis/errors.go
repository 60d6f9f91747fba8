package avis

import (
	apperrors "github.com/xiebiao/gamesup/pkg/errors"
)

// 评价领域错误定义
var (
	// ErrAvisNotFound 评价不存在
	ErrAvisNotFound = apperrors.New(apperrors.ErrCodeAvisNotFound, "评价不存在")

	// ErrInvalidRating 评分超出范围
	ErrInvalidRating = apperrors.New(apperrors.ErrCodeInvalidParams, "评分必须在1到5之间")
)
