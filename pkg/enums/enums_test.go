package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransmission(t *testing.T) {
	got, err := ParseTransmission("AMT")
	require.NoError(t, err)
	assert.Equal(t, TransmissionAMT, got)

	_, err = ParseTransmission("manual")
	assert.Error(t, err, "transmission keys are case-sensitive")

	assert.False(t, Transmission("CVT").IsValid())
}

func TestGroupStatusAcceptsOffers(t *testing.T) {
	cases := map[GroupStatus]bool{
		GroupStatusForming:     false,
		GroupStatusLocked:      true,
		GroupStatusNegotiation: true,
		GroupStatusCompleted:   false,
	}
	for status, want := range cases {
		assert.Equal(t, want, status.AcceptsOffers(), status.String())
	}
}

func TestParseGroupStatusAndUserRole(t *testing.T) {
	status, err := ParseGroupStatus("locked")
	require.NoError(t, err)
	assert.Equal(t, GroupStatusLocked, status)

	_, err = ParseGroupStatus("archived")
	assert.Error(t, err)

	role, err := ParseUserRole("admin")
	require.NoError(t, err)
	assert.Equal(t, UserRoleAdmin, role)
	assert.False(t, UserRole("owner").IsValid())
}
