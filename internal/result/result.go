// Package result defines the uniform success/failure envelope returned by
// every command and query handler.
package result

import "fmt"

type Result[T any] struct {
	Success          bool     `json:"success"`
	Data             T        `json:"data,omitempty"`
	Error            string   `json:"error,omitempty"`
	ValidationErrors []string `json:"validation_errors,omitempty"`
}

func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func Failure[T any](msg string) Result[T] {
	return Result[T]{Success: false, Error: msg}
}

func Failuref[T any](format string, args ...any) Result[T] {
	return Result[T]{Success: false, Error: fmt.Sprintf(format, args...)}
}

func Invalid[T any](messages []string) Result[T] {
	return Result[T]{Success: false, Error: "validation failed", ValidationErrors: messages}
}

// NotFound is the conventional failure for a missing referenced entity; the
// HTTP layer keys on the message suffix.
func NotFound[T any](entity string) Result[T] {
	return Result[T]{Success: false, Error: entity + " not found"}
}

func (r Result[T]) IsFailure() bool { return !r.Success }

// Page is the paged-list envelope used by every paginated query.
type Page[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// NormalizePaging clamps page/pageSize to sane values.
func NormalizePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

func NewPage[T any](items []T, total int64, page, pageSize int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, TotalCount: total, Page: page, PageSize: pageSize}
}
