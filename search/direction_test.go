package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/awgu/gbfhs/search"
)

func TestDirection_Opposite(t *testing.T) {
	assert.Equal(t, search.Backward, search.Forward.Opposite())
	assert.Equal(t, search.Forward, search.Backward.Opposite())
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "forward", search.Forward.String())
	assert.Equal(t, "backward", search.Backward.String())
}

func TestDirection_InvalidPanics(t *testing.T) {
	bad := search.Direction(7)
	assert.Panics(t, func() { _ = bad.Opposite() })
	assert.Panics(t, func() { _ = bad.String() })
}
