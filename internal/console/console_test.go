// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scripted(lines ...string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	return NewWith(in, &out), &out
}

func TestInputTrimsWhitespace(t *testing.T) {
	c, _ := scripted("  hydrogen storage  ")
	got, err := c.Input("Title")
	require.NoError(t, err)
	assert.Equal(t, "hydrogen storage", got)
}

func TestConfirmDefault(t *testing.T) {
	c, _ := scripted("")
	got, err := c.Confirm("Continue?", true)
	require.NoError(t, err)
	assert.True(t, got)

	c, _ = scripted("")
	got, err = c.Confirm("Continue?", false)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestConfirmRepromptsOnGarbage(t *testing.T) {
	c, out := scripted("maybe", "no")
	got, err := c.Confirm("Continue?", true)
	require.NoError(t, err)
	assert.False(t, got)
	assert.Contains(t, out.String(), "Please answer y or n.")
}

func TestSelect(t *testing.T) {
	c, out := scripted("2")
	got, err := c.Select("Pick a market", []string{"Agriculture", "Biotech", "Energy"})
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.Contains(t, out.String(), "Biotech")
}

func TestSelectRepromptsOutOfRange(t *testing.T) {
	c, _ := scripted("0", "7", "three", "3")
	got, err := c.Select("Pick a market", []string{"Agriculture", "Biotech", "Energy"})
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestMultiSelect(t *testing.T) {
	c, _ := scripted("3, 1, 2")
	got, err := c.MultiSelect("Pick markets", []string{"A", "B", "C", "D"}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestMultiSelectEnforcesMinimum(t *testing.T) {
	c, out := scripted("1", "1,2,3")
	got, err := c.MultiSelect("Pick markets", []string{"A", "B", "C"}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, got)
	assert.Contains(t, out.String(), "Select at least 3 options.")
}

func TestMultiSelectDeduplicates(t *testing.T) {
	c, _ := scripted("2,2,1")
	got, err := c.MultiSelect("Pick markets", []string{"A", "B", "C"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, got)
}

func TestTableAlignsColumns(t *testing.T) {
	c, out := scripted()
	c.Table(
		[]string{"Market", "CAGR"},
		[][]string{
			{"Precision Fermentation", "12.4%"},
			{"Biofuels", "7.1%"},
		},
	)
	s := out.String()
	assert.Contains(t, s, "Precision Fermentation")
	assert.Contains(t, s, "Biofuels")
	assert.Contains(t, s, "12.4%")
}

func TestCardRendersFields(t *testing.T) {
	c, out := scripted()
	c.Card("Vertical Farming", "Size", "$12.0B 2026", "CAGR", "24.1%")
	s := out.String()
	assert.Contains(t, s, "Vertical Farming")
	assert.Contains(t, s, "24.1%")
}
