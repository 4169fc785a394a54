package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NormalizeLimit(0))
	assert.Equal(t, DefaultLimit, NormalizeLimit(-3))
	assert.Equal(t, 7, NormalizeLimit(7))
	assert.Equal(t, MaxLimit, NormalizeLimit(1000))
	assert.Equal(t, 8, LimitWithBuffer(7))
}

func TestCursorRoundTrip(t *testing.T) {
	in := Cursor{CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 6000, time.UTC), ID: uuid.New()}
	out, err := ParseCursor(EncodeCursor(in))
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, in.CreatedAt.Equal(out.CreatedAt))
	assert.Equal(t, in.ID, out.ID)
}

func TestParseCursorErrors(t *testing.T) {
	c, err := ParseCursor("  ")
	assert.NoError(t, err)
	assert.Nil(t, c)

	_, err = ParseCursor("%%%")
	assert.Error(t, err)

	_, err = ParseCursor(encodeRaw("no-separator"))
	assert.Error(t, err)

	_, err = ParseCursor(encodeRaw("2026-01-01T00:00:00Z|not-a-uuid"))
	assert.Error(t, err)
}

func TestBuildPage(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	cursorOf := func(id uuid.UUID) Cursor { return Cursor{ID: id} }

	page := BuildPage(ids, 2, cursorOf)
	assert.Equal(t, ids[:2], page.Items)
	require.NotEmpty(t, page.NextCursor)
	next, err := ParseCursor(page.NextCursor)
	require.NoError(t, err)
	assert.Equal(t, ids[1], next.ID)

	page = BuildPage(ids[:1], 2, cursorOf)
	assert.Len(t, page.Items, 1)
	assert.Empty(t, page.NextCursor)

	empty := BuildPage[uuid.UUID](nil, 2, cursorOf)
	assert.NotNil(t, empty.Items)
}

func encodeRaw(payload string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(payload))
}
