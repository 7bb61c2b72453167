package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"fantasy", "science_fiction"}, splitList(" fantasy, ,science_fiction,"))
	assert.Nil(t, splitList(""))
}
