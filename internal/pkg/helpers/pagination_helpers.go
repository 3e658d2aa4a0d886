package helpers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/apperrors"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
	DefaultSkip  = 0
)

// Window is an offset/limit pair used by every list query.
type Window struct {
	Skip  uint64
	Limit uint64
}

// NormalizeWindow clamps a window: a non-positive limit falls back to DefaultLimit,
// anything above MaxLimit is capped.
func NormalizeWindow(skip, limit int) Window {
	if skip < 0 {
		skip = DefaultSkip
	}
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	return Window{Skip: uint64(skip), Limit: uint64(limit)}
}

// ParseWindow extracts ?skip=&limit= from the request. Unparseable values fall back to defaults.
func ParseWindow(c *gin.Context) Window {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		skip = DefaultSkip
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))
	if err != nil {
		limit = DefaultLimit
	}

	return NormalizeWindow(skip, limit)
}

// ParseInt64Query returns a pointer to the parsed query parameter, nil when absent.
func ParseInt64Query(c *gin.Context, name string) (*int64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, apperrors.NewValidationError(name, "must be a positive integer")
	}
	return &v, nil
}

// ParseBoolQuery returns a pointer to the parsed boolean query parameter, nil when absent.
func ParseBoolQuery(c *gin.Context, name string) (*bool, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperrors.NewValidationError(name, "must be a boolean")
	}
	return &v, nil
}

// ParseStringQuery returns a pointer to the trimmed query parameter, nil when absent.
func ParseStringQuery(c *gin.Context, name string) *string {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	return &raw
}

// ParseIDParam parses an integer path parameter. Zero, negative and out-of-range ids are
// well formed; they match no row, so the lookup reports them as not found.
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, apperrors.NewResourceNotFoundError("resource not found")
	}
	if err != nil {
		return 0, apperrors.NewValidationError(name, "must be an integer")
	}
	return id, nil
}
