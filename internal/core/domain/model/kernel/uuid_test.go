package kernel_test

import (
	"testing"

	"github.com/likecate/sky-take-out/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleUUID = "7f2c4a10-9d3e-4b6f-8a21-5c0e9d7b1f34"

func TestNewUUID(t *testing.T) {
	id := kernel.NewUUID()

	assert.NoError(t, id.Validate())
	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id.String())

	other := kernel.NewUUID()
	assert.False(t, id.IsEqual(other))
}

func TestUUIDFromString(t *testing.T) {
	t.Run("parses canonical form", func(t *testing.T) {
		id, err := kernel.UUIDFromString(sampleUUID)

		require.NoError(t, err)
		assert.Equal(t, sampleUUID, id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, input := range []string{
			"",
			"order-12345",
			"7f2c4a10-9d3e-4b6f-8a21",
			"7f2c4a10-9d3e-4b6f-8a21-5c0e9d7b1f34-tail",
		} {
			_, err := kernel.UUIDFromString(input)
			require.Error(t, err, "input %q", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round-trips through raw bytes", func(t *testing.T) {
		source, err := kernel.UUIDFromString(sampleUUID)
		require.NoError(t, err)

		raw := source.Bytes()
		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, source.IsEqual(restored))
	})

	t.Run("rejects short input", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x7f, 0x2c, 0x4a})
		assert.Error(t, err)
	})

	t.Run("rejects all-zero bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_IsEqual(t *testing.T) {
	a, _ := kernel.UUIDFromString(sampleUUID)
	b, _ := kernel.UUIDFromString(sampleUUID)

	assert.True(t, a.IsEqual(b))
	assert.True(t, b.IsEqual(a))

	var zeroA, zeroB kernel.UUID
	assert.True(t, zeroA.IsEqual(zeroB))
	assert.False(t, zeroA.IsEqual(a))
}

func TestUUID_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.UUID
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})

	t.Run("nil UUID string fails validation", func(t *testing.T) {
		id, _ := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})
}

func TestUUID_Bytes(t *testing.T) {
	id := kernel.NewUUID()
	raw := id.Bytes()

	assert.IsType(t, uuid.UUID{}, raw)
	assert.Equal(t, id.String(), raw.String())

	// Bytes returns a copy; mutating it leaves the value object intact.
	original := id.String()
	for i := range raw {
		raw[i] = 0xFF
	}
	assert.Equal(t, original, id.String())
}
