package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"fintrack/internal/core"
	"fintrack/internal/storage"
)

// parseDate accepts RFC 3339 timestamps and bare YYYY-MM-DD dates.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// parseTxFilter extracts the list filters from query parameters.
// Unparseable values are rejected rather than silently dropped.
func parseTxFilter(r *http.Request) (storage.TxFilter, error) {
	var filter storage.TxFilter
	q := r.URL.Query()

	if v := strings.TrimSpace(q.Get("categoryId")); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, core.ValidationError("invalid categoryId")
		}
		filter.CategoryID = &id
	}
	if v := strings.TrimSpace(q.Get("startDate")); v != "" {
		t, ok := parseDate(v)
		if !ok {
			return filter, core.ValidationError("invalid startDate")
		}
		filter.StartDate = &t
	}
	if v := strings.TrimSpace(q.Get("endDate")); v != "" {
		t, ok := parseDate(v)
		if !ok {
			return filter, core.ValidationError("invalid endDate")
		}
		filter.EndDate = &t
	}
	filter.Search = strings.TrimSpace(q.Get("search"))

	return filter, nil
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, core.ValidationError("invalid id")
	}
	return id, nil
}
