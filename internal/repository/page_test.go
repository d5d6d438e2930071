package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageNormalize(t *testing.T) {
	assert.Equal(t, Page{Number: 1, Limit: 10}, Page{}.Normalize())
	assert.Equal(t, Page{Number: 1, Limit: 10}, Page{Number: -3, Limit: 0}.Normalize())
	assert.Equal(t, Page{Number: 4, Limit: 25}, Page{Number: 4, Limit: 25}.Normalize())
}

func TestPageSkip(t *testing.T) {
	assert.Equal(t, int64(0), Page{Number: 1, Limit: 10}.Skip())
	assert.Equal(t, int64(30), Page{Number: 4, Limit: 10}.Skip())
	assert.Equal(t, int64(0), Page{}.Skip())
}

func TestPageTotalPages(t *testing.T) {
	page := Page{Number: 1, Limit: 10}

	assert.Equal(t, int64(0), page.TotalPages(0))
	assert.Equal(t, int64(1), page.TotalPages(1))
	assert.Equal(t, int64(1), page.TotalPages(10))
	assert.Equal(t, int64(2), page.TotalPages(11))
	assert.Equal(t, int64(5), page.TotalPages(50))
}
