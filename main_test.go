package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitlesForIndices(t *testing.T) {
	provinces := []*Province{
		{Title: "Al-Basrah"},
		{Title: "Maysan"},
		{Title: "Baghdad"},
	}

	titles, ok := titlesForIndices([]string{"1", "3"}, provinces)
	require.True(t, ok)
	assert.Equal(t, []string{"Al-Basrah", "Baghdad"}, titles)

	// A single bad entry rejects the whole selection so the prompt can
	// ask again.
	_, ok = titlesForIndices([]string{"1", "4"}, provinces)
	assert.False(t, ok)
	_, ok = titlesForIndices([]string{"0"}, provinces)
	assert.False(t, ok)
	_, ok = titlesForIndices([]string{"2", "x"}, provinces)
	assert.False(t, ok)
}

func TestSplitNames(t *testing.T) {
	assert.Equal(t, []string{"Al-Basrah", "Maysan"}, splitNames(" Al-Basrah , Maysan "))
	assert.Equal(t, []string{"1", "5", "12"}, splitNames("1,5,12"))
	assert.Nil(t, splitNames(""))
	assert.Nil(t, splitNames(" , ,"))
}

func TestAllNumeric(t *testing.T) {
	assert.True(t, allNumeric([]string{"1", "5", "12"}))
	assert.False(t, allNumeric([]string{"1", "Maysan"}))
	assert.False(t, allNumeric(nil))
}
