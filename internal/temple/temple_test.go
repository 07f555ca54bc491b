package temple

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omkaralabs/divinestore/internal/domain"
)

func TestDirectoryList(t *testing.T) {
	dir := NewDefaultDirectory()
	ctx := context.Background()

	t.Run("empty status returns all temples", func(t *testing.T) {
		temples, err := dir.List(ctx, "")
		require.NoError(t, err)

		assert.Len(t, temples, 5)
	})

	t.Run("status filter", func(t *testing.T) {
		temples, err := dir.List(ctx, DarshanAvailable)
		require.NoError(t, err)

		require.NotEmpty(t, temples)
		for _, temple := range temples {
			assert.Equal(t, DarshanAvailable, temple.DarshanStatus)
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := dir.List(ctx, "busy")
		require.Error(t, err)
		assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
	})
}

func TestDirectoryGet(t *testing.T) {
	dir := NewDefaultDirectory()
	ctx := context.Background()

	t.Run("known id", func(t *testing.T) {
		temple, err := dir.Get(ctx, "1")
		require.NoError(t, err)

		assert.Equal(t, "Siddhivinayak Temple", temple.Name)
		assert.NotZero(t, temple.Coordinates.Lat)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := dir.Get(ctx, "999")
		require.Error(t, err)
		assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
	})
}

func TestDarshanStatusValid(t *testing.T) {
	assert.True(t, DarshanAvailable.Valid())
	assert.True(t, DarshanCrowded.Valid())
	assert.True(t, DarshanClosed.Valid())
	assert.False(t, DarshanStatus("").Valid())
	assert.False(t, DarshanStatus("busy").Valid())
}
