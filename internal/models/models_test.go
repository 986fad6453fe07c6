package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectivePrice(t *testing.T) {
	p := &Product{Price: 10000}
	assert.Equal(t, int64(10000), p.EffectivePrice())

	sale := int64(5000)
	p.SalePrice = &sale
	assert.Equal(t, int64(5000), p.EffectivePrice())

	// A sale price at or above the regular price never wins.
	higher := int64(12000)
	p.SalePrice = &higher
	assert.Equal(t, int64(10000), p.EffectivePrice())
}
