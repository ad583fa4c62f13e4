package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaqqye/navodaya_web/internal/models"
)

func TestBundledData(t *testing.T) {
	company := Company()
	assert.Equal(t, "PT Navodaya Multi Solusi", company.Name)
	assert.InDelta(t, -7.671703, company.Coordinates.Lat, 1e-9)

	services := Services()
	require.Len(t, services, 3)
	for _, s := range services {
		assert.True(t, s.Icon.Valid(), "service %s has unknown icon %q", s.ID, s.Icon)
		assert.NotEmpty(t, s.Features)
	}

	assert.Len(t, Projects(), 6)
}

func TestFind(t *testing.T) {
	s, ok := FindService("2")
	require.True(t, ok)
	assert.Equal(t, models.IconNetwork, s.Icon)

	p, ok := FindProject("5")
	require.True(t, ok)
	assert.Equal(t, "Data Center Setup", p.Title)

	_, ok = FindService("99")
	assert.False(t, ok)
	_, ok = FindProject("")
	assert.False(t, ok)
}

func TestReturnsCopies(t *testing.T) {
	s, _ := FindService("1")
	s.Features[0] = "mutated"
	*s.DetailedContent = "mutated"

	again, _ := FindService("1")
	assert.Equal(t, "Network Architecture & Design", again.Features[0])
	assert.NotEqual(t, "mutated", *again.DetailedContent)
}
