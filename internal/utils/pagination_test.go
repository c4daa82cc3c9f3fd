package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yukikurage/todo-api/internal/constants"
)

func TestNewPaginationParams(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		want        PaginationParams
	}{
		{"defaults", 0, 0, PaginationParams{Page: 1, Limit: constants.DefaultPageSize, Offset: 0}},
		{"third page", 3, 5, PaginationParams{Page: 3, Limit: 5, Offset: 10}},
		{"negative page", -2, 20, PaginationParams{Page: 1, Limit: 20, Offset: 0}},
		{"page clamped", constants.MaxPage * 1000, 100, PaginationParams{Page: constants.MaxPage, Limit: 100, Offset: (constants.MaxPage - 1) * 100}},
		{"limit too large", 2, constants.MaxPageSize + 1, PaginationParams{Page: 2, Limit: constants.DefaultPageSize, Offset: constants.DefaultPageSize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPaginationParams(tt.page, tt.limit))
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 7, TotalPages(7, 1))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestNewPaginationResponse(t *testing.T) {
	resp := NewPaginationResponse(NewPaginationParams(2, 3), 7)

	assert.Equal(t, PaginationResponse{Page: 2, Limit: 3, TotalItems: 7, TotalPages: 3}, resp)
}
