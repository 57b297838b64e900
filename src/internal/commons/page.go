package commons

import (
	"fmt"
	"strings"
)

const DefaultPageSize = 20

// SortSpec names a whitelisted sort column and direction, parsed from the
// Spring-style "field,direction" query parameter the history endpoint takes.
type SortSpec struct {
	Field      string
	Descending bool
}

var sortableFields = map[string]struct{}{
	"dateTime": {},
	"amount":   {},
}

func ParseSort(raw string) (SortSpec, error) {
	if strings.TrimSpace(raw) == "" {
		return SortSpec{Field: "dateTime"}, nil
	}

	parts := strings.SplitN(raw, ",", 2)
	field := strings.TrimSpace(parts[0])
	if _, ok := sortableFields[field]; !ok {
		return SortSpec{}, fmt.Errorf("unsortable field %q", field)
	}

	spec := SortSpec{Field: field}
	if len(parts) == 2 {
		switch strings.ToLower(strings.TrimSpace(parts[1])) {
		case "asc", "":
		case "desc":
			spec.Descending = true
		default:
			return SortSpec{}, fmt.Errorf("unknown sort direction %q", parts[1])
		}
	}
	return spec, nil
}

type PageRequest struct {
	Page int
	Size int
	Sort SortSpec
}

func (p PageRequest) Offset() int {
	if p.Page < 0 {
		return 0
	}
	return p.Page * p.Limit()
}

func (p PageRequest) Limit() int {
	if p.Size <= 0 {
		return DefaultPageSize
	}
	return p.Size
}

type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	size := req.Limit()
	pages := int(total) / size
	if int(total)%size != 0 {
		pages++
	}
	if content == nil {
		content = []T{}
	}
	return Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          size,
		TotalElements: total,
		TotalPages:    pages,
	}
}
