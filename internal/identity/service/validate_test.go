package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmailPattern(t *testing.T) {
	valid := []string{
		"a@b.co",
		"alice@example.com",
		"first.last+tag@sub.domain.org",
		"UPPER_case%ok@Example.COM",
	}
	for _, email := range valid {
		require.True(t, emailPattern.MatchString(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local.com",
		"no-domain@",
		"no-tld@example",
		"two@@example.com",
		"spaces in@example.com",
	}
	for _, email := range invalid {
		require.False(t, emailPattern.MatchString(email), email)
	}
}

func TestValidateCredentials(t *testing.T) {
	require.NoError(t, validateCredentials("alice@example.com", "secret123"))

	// Exactly the minimum length is accepted.
	require.NoError(t, validateCredentials("alice@example.com", "sixxxx"))

	err := validateCredentials("alice@example.com", "five5")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "Password must be at least 6 characters", verr.Fields[0].Message)
}

func TestValidatePagination(t *testing.T) {
	page, limit, err := validatePagination(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, page)
	require.Equal(t, 10, limit)

	page, limit, err = validatePagination(3, 100)
	require.NoError(t, err)
	require.Equal(t, 3, page)
	require.Equal(t, 100, limit)

	for _, tc := range []struct{ page, limit int }{
		{-1, 10},
		{1, -5},
		{1, 101},
	} {
		_, _, err := validatePagination(tc.page, tc.limit)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "page=%d limit=%d", tc.page, tc.limit)
	}
}
