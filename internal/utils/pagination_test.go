// internal/utils/pagination_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	assert.Equal(t, []int{1, 2, 3}, Paginate(items, PaginationParams{Page: 1, Limit: 3}))
	assert.Equal(t, []int{4, 5, 6}, Paginate(items, PaginationParams{Page: 2, Limit: 3}))
	assert.Equal(t, []int{7}, Paginate(items, PaginationParams{Page: 3, Limit: 3}))
}

func TestPaginateOutOfRangeIsEmpty(t *testing.T) {
	items := []int{1, 2, 3}

	result := Paginate(items, PaginationParams{Page: 5, Limit: 10})
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestPaginateEmptyInput(t *testing.T) {
	assert.Empty(t, Paginate([]string{}, PaginationParams{Page: 1, Limit: 10}))
}

func TestCreatePaginationResult(t *testing.T) {
	result := CreatePaginationResult([]int{1, 2}, 7, PaginationParams{Page: 1, Limit: 3})

	assert.EqualValues(t, 7, result.Total)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 3, result.Limit)
}
