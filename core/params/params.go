package params

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// QueryParams carries common list-endpoint query parameters.
type QueryParams struct {
	PageNumber int
	PageSize   int
	Search     string
}

// FromContext parses pagination and search parameters with sane defaults.
func FromContext(c echo.Context) QueryParams {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	size, err := strconv.Atoi(c.QueryParam("page_size"))
	if err != nil || size < 1 || size > 100 {
		size = 20
	}

	return QueryParams{
		PageNumber: page,
		PageSize:   size,
		Search:     c.QueryParam("search"),
	}
}
