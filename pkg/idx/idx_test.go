package idx_test

import (
	"testing"
	"time"

	"github.com/campfirehq/identity/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewProducesValidIDs(t *testing.T) {
	t.Parallel()

	id := idx.New()
	require.False(t, id.IsZero())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestNewIsMonotonicWithinProcess(t *testing.T) {
	t.Parallel()

	prev := idx.New()
	for range 100 {
		next := idx.New()
		require.Greater(t, next.String(), prev.String())
		prev = next
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "   ", "not-a-ulid", "0000"} {
		_, err := idx.Parse(in)
		require.ErrorIs(t, err, idx.ErrInvalid)
	}
}

func TestTimeRoundTrip(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	id := idx.NewAt(at)
	require.WithinDuration(t, at, id.Time(), time.Millisecond)
}
