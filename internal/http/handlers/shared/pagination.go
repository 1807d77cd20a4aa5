package shared

import (
	"strconv"
	"strings"

	"github.com/fresh-groceries/internal/repository"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	// skip/limit 写法未给 limit 时的默认条数
	defaultLimit = 100
)

// NormalizePagination 归一化分页参数。
func NormalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// ParsePagination 读取 page/page_size，兼容 skip/limit 写法。
// 同时给出时以 page/page_size 为准；skip 原样作为偏移量。
func ParsePagination(c *gin.Context) repository.Pagination {
	page := queryInt(c, "page")
	pageSize := queryInt(c, "page_size")
	if page == 0 && pageSize == 0 && (hasQuery(c, "skip") || hasQuery(c, "limit")) {
		skip := queryInt(c, "skip")
		limit := queryInt(c, "limit")
		if limit <= 0 {
			limit = defaultLimit
		}
		if limit > maxPageSize {
			limit = maxPageSize
		}
		return repository.Pagination{
			Page:     skip/limit + 1,
			PageSize: limit,
			Offset:   skip,
		}
	}
	page, pageSize = NormalizePagination(page, pageSize)
	return repository.Pagination{Page: page, PageSize: pageSize}
}

func hasQuery(c *gin.Context, name string) bool {
	return strings.TrimSpace(c.Query(name)) != ""
}

func queryInt(c *gin.Context, name string) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0
	}
	return value
}
