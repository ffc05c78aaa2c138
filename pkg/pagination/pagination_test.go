package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/newsroom/pkg/pagination"
)

func TestParams_Offset(t *testing.T) {
	tests := []struct {
		params pagination.Params
		want   int
	}{
		{pagination.Params{Page: 1, Limit: 10}, 0},
		{pagination.Params{Page: 2, Limit: 10}, 10},
		{pagination.Params{Page: 3, Limit: 5}, 10},
		{pagination.Params{Page: 0, Limit: 5}, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.params.Offset())
	}
}

func TestParams_Valid(t *testing.T) {
	assert.True(t, pagination.Params{Page: 1, Limit: 1}.Valid())
	assert.True(t, pagination.Params{Page: 7, Limit: pagination.MaxLimit}.Valid())

	assert.False(t, pagination.Params{Page: 0, Limit: 10}.Valid())
	assert.False(t, pagination.Params{Page: 1, Limit: 0}.Valid())
	assert.False(t, pagination.Params{Page: 1, Limit: pagination.MaxLimit + 1}.Valid())
	assert.False(t, pagination.Params{Page: -2, Limit: 10}.Valid())
}

func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(pagination.Params{Page: 2, Limit: 5}, 12)

	assert.Equal(t, 12, meta.TotalCount)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, "showing results 6 to 10", meta.Displaying)
}
