package apihelpers

import (
	"fmt"
	"strconv"

	"github.com/case-framework/contact-manager/pkg/apperrors"
	"github.com/case-framework/contact-manager/pkg/contacts/types"
	"github.com/gin-gonic/gin"
)

const (
	QUERY_KEY_PAGE    = "page"
	QUERY_KEY_LIMIT   = "limit"
	QUERY_KEY_SORT_BY = "sortBy"
	QUERY_KEY_ORDER   = "order"
)

// ParseListQueryFromCtx reads page, limit, sortBy and order from the query string.
// Missing values fall back to the list defaults, range checks are left to the service.
func ParseListQueryFromCtx(c *gin.Context) (types.ListQuery, error) {
	query := types.DefaultListQuery()

	page, err := parseInt64Param(c, QUERY_KEY_PAGE, query.Page)
	if err != nil {
		return query, err
	}
	query.Page = page

	limit, err := parseInt64Param(c, QUERY_KEY_LIMIT, query.Limit)
	if err != nil {
		return query, err
	}
	query.Limit = limit

	if sortBy := c.Query(QUERY_KEY_SORT_BY); sortBy != "" {
		query.SortBy = sortBy
	}
	if order := c.Query(QUERY_KEY_ORDER); order != "" {
		query.Order = order
	}
	return query, nil
}

func parseInt64Param(c *gin.Context, key string, defaultValue int64) (int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError(key, fmt.Sprintf(`"%s" must be a number`, key))
	}
	return v, nil
}
