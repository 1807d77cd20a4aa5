package repository

import "gorm.io/gorm"

// Pagination 分页参数；Offset 大于 0 时直接作为偏移量，不再按页码换算
type Pagination struct {
	Page     int
	PageSize int
	Offset   int
}

// applyPagination 应用分页参数，统一处理非法页码与偏移量。
func applyPagination(query *gorm.DB, page, pageSize, offset int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if offset <= 0 {
		if page < 1 {
			page = 1
		}
		offset = (page - 1) * pageSize
	}
	if offset < 0 {
		offset = 0
	}
	return query.Limit(pageSize).Offset(offset)
}

// newestFirst 按创建时间倒序，时间相同时按主键倒序保证顺序稳定。
func newestFirst(query *gorm.DB) *gorm.DB {
	return query.Order("created_at desc").Order("id desc")
}
