package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingStatusIsTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, ListingStatusPending.IsTerminal())
	assert.True(t, ListingStatusApproved.IsTerminal())
	assert.True(t, ListingStatusRejected.IsTerminal())
}

func TestStatusAndTypeValidation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidListingStatus("pending"))
	assert.True(t, IsValidListingStatus("approved"))
	assert.True(t, IsValidListingStatus("rejected"))
	assert.False(t, IsValidListingStatus("archived"))

	assert.True(t, IsValidListingType("offer"))
	assert.True(t, IsValidListingType("request"))
	assert.False(t, IsValidListingType("auction"))
}

func TestReferenceLookups(t *testing.T) {
	t.Parallel()

	assert.True(t, IsChineseCity("Guangzhou"))
	assert.False(t, IsChineseCity("Oran"))

	assert.True(t, IsAlgerianCity("Oran"))
	assert.False(t, IsAlgerianCity("Shanghai"))

	assert.True(t, IsChinesePort("Port of Guangzhou"))
	assert.True(t, IsAlgerianPort("Port of Algiers"))
	assert.False(t, IsAlgerianPort("Port of Rotterdam"))

	assert.True(t, IsValidCarType("SUV"))
	assert.False(t, IsValidCarType("Hovercraft"))
}

func TestProfileDisplayName(t *testing.T) {
	t.Parallel()

	p := &Profile{ContactPerson: "Wang Li", CompanyName: "CargoLink Ltd"}
	assert.Equal(t, "Wang Li", p.DisplayName())

	p = &Profile{CompanyName: "CargoLink Ltd"}
	assert.Equal(t, "CargoLink Ltd", p.DisplayName())

	p = &Profile{}
	assert.Equal(t, "", p.DisplayName())
}
