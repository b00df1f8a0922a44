package request

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pagseguro_gateway/pkg/pagination"
)

var ErrInvalidSearchQuery = errors.New("invalid search query")

var searchDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// SearchQuery is bound from the query string of the transaction and pre-approval
// search routes.
type SearchQuery struct {
	InitialDate string `form:"initial_date" binding:"required"`
	FinalDate   string `form:"final_date"`
	Page        *int   `form:"page"`
	MaxResults  *int   `form:"max_results"`
}

func (q SearchQuery) ToQuery() (pagination.Query, error) {
	initial, err := parseSearchDate(q.InitialDate)
	if err != nil {
		return pagination.Query{}, fmt.Errorf("%w: initial_date: %v", ErrInvalidSearchQuery, err)
	}
	out := pagination.Query{InitialDate: initial, Page: q.Page, MaxResults: q.MaxResults}

	if strings.TrimSpace(q.FinalDate) != "" {
		final, err := parseSearchDate(q.FinalDate)
		if err != nil {
			return pagination.Query{}, fmt.Errorf("%w: final_date: %v", ErrInvalidSearchQuery, err)
		}
		out.FinalDate = final
	}
	return out, nil
}

func parseSearchDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range searchDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date %q", s)
}
