package dto

// Pagination describes the page window of a list response: Total is the
// number of records matching the filter, Pages is ceil(Total/Limit).
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}
