package dto

import (
	"net/http"
	"strconv"

	"hotelier/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"  validate:"omitempty"`
	Limit   int    `json:"limit" validate:"omitempty"`
	SortBy  string `json:"-"`
	SortDir string `json:"-"`
}

// FromRequest populates QueryParams from the HTTP request. Only positive
// integer values are accepted; anything else falls back to the defaults when
// `defaultRequest` is true. No upper bound is applied to limit, so callers
// may request arbitrarily large pages.
// Example:
//
//	q := &dto.QueryParams{}
//	q.FromRequest(req, true)
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}
