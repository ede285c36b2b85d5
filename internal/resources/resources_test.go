package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Len(t, c.Pakistan, 6)
	assert.Len(t, c.International, 6)

	for _, r := range append(c.Pakistan, c.International...) {
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.Description)
		assert.NotEmpty(t, r.Region)
		assert.Contains(t, r.URL, "http")
	}

	assert.Equal(t, "Rozee.pk", c.Pakistan[0].Name)
	assert.Equal(t, "Pakistan", c.Pakistan[0].Region)
	assert.Equal(t, "Global", c.International[0].Region)
}

func TestSortByName(t *testing.T) {
	rs := []Resource{
		{Name: "indeed"},
		{Name: "Glassdoor"},
		{Name: "10Pearls Careers"},
	}
	SortByName(rs)

	assert.Equal(t, "10Pearls Careers", rs[0].Name)
	assert.Equal(t, "Glassdoor", rs[1].Name)
	assert.Equal(t, "indeed", rs[2].Name)
}
