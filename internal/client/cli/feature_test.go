package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akozlovs/bizkeeper/internal/client/models"
)

func TestParseDomain(t *testing.T) {
	d, ok := parseDomain("calendar")
	assert.True(t, ok)
	assert.Equal(t, models.DomainCalendar, d)

	d, ok = parseDomain("EMAIL")
	assert.True(t, ok)
	assert.Equal(t, models.DomainEmail, d)

	_, ok = parseDomain("billing")
	assert.False(t, ok)
}

func TestDomainList(t *testing.T) {
	s := domainList()
	for _, d := range models.Domains() {
		assert.Contains(t, s, string(d))
	}
}
