package catalog

import (
	apperrors "github.com/xiebiao/gamesup/pkg/errors"
)

// 目录领域错误定义
var (
	// ErrCategoryNotFound 分类不存在
	ErrCategoryNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "分类不存在")

	// ErrCategoryTypeDuplicate 分类类型已存在
	ErrCategoryTypeDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "分类类型已存在")

	// ErrInvalidCategoryType 分类类型不能为空
	ErrInvalidCategoryType = apperrors.New(apperrors.ErrCodeInvalidParams, "分类类型不能为空")

	// ErrPublisherNotFound 出版商不存在
	ErrPublisherNotFound = apperrors.New(apperrors.ErrCodePublisherNotFound, "出版商不存在")

	// ErrPublisherNameDuplicate 出版商名称已存在
	ErrPublisherNameDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "出版商名称已存在")

	// ErrInvalidPublisherName 出版商名称不能为空
	ErrInvalidPublisherName = apperrors.New(apperrors.ErrCodeInvalidParams, "出版商名称不能为空")

	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "作者不存在")

	// ErrInvalidAuthorName 作者姓名不能为空
	ErrInvalidAuthorName = apperrors.New(apperrors.ErrCodeInvalidParams, "作者姓名不能为空")
)
