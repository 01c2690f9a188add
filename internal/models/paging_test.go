package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaging(t *testing.T) {
	tests := []struct {
		name              string
		page, size, total int
		wantTotalPage     int
	}{
		{name: "fifteen items by ten", page: 1, size: 10, total: 15, wantTotalPage: 2},
		{name: "exact multiple", page: 1, size: 5, total: 15, wantTotalPage: 3},
		{name: "no items", page: 1, size: 10, total: 0, wantTotalPage: 0},
		{name: "fewer than a page", page: 1, size: 10, total: 6, wantTotalPage: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaging(tt.page, tt.size, tt.total)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.wantTotalPage, p.TotalPage)
			assert.Equal(t, tt.total, p.TotalItems)
		})
	}
}
