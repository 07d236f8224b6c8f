package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pribylovaa/hotel-listing-api/internal/models"
)

// queryParameters разбирает StartIndex, PageNumber и PageSize без учёта регистра имён.
// Отсутствующие параметры остаются нулевыми, нормализацию делает сервис.
func queryParameters(r *http.Request) (models.QueryParameters, bool) {
	var params models.QueryParameters

	for name, values := range r.URL.Query() {
		if len(values) == 0 || values[0] == "" {
			continue
		}

		var dst *int
		switch {
		case strings.EqualFold(name, "StartIndex"):
			dst = &params.StartIndex
		case strings.EqualFold(name, "PageNumber"):
			dst = &params.PageNumber
		case strings.EqualFold(name, "PageSize"):
			dst = &params.PageSize
		default:
			continue
		}

		n, err := strconv.Atoi(values[0])
		if err != nil {
			return models.QueryParameters{}, false
		}
		*dst = n
	}

	return params, true
}
