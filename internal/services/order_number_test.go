package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-[A-Z0-9]{6}$`)

func TestRandomOrderNumberGenerator_Format(t *testing.T) {
	g := NewRandomOrderNumberGenerator()

	first := g.Generate()
	second := g.Generate()

	assert.Regexp(t, orderNumberPattern, first)
	assert.Regexp(t, orderNumberPattern, second)
}

func TestRandomOrderNumberGenerator_NoReuseWithinSession(t *testing.T) {
	g := NewRandomOrderNumberGenerator()

	seen := map[string]struct{}{}
	for i := 0; i < 1000; i++ {
		number := g.Generate()
		_, dup := seen[number]
		assert.False(t, dup, "order number %s issued twice", number)
		seen[number] = struct{}{}
	}
}
