package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type page[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func parseLimitOffset(c *fiber.Ctx, defLimit int) (limit, offset int) {
	limit = defLimit
	offset = 0
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	if v := strings.TrimSpace(c.Query("offset")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// paginate slices items by the request's limit and offset.
func paginate[T any](c *fiber.Ctx, items []T, defLimit int) page[T] {
	limit, offset := parseLimitOffset(c, defLimit)
	p := page[T]{Total: len(items), Limit: limit, Offset: offset, Items: []T{}}
	if offset >= len(items) {
		return p
	}
	end := min(offset+limit, len(items))
	p.Items = items[offset:end]
	return p
}
