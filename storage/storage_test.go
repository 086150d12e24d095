package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingLifecycle(t *testing.T) {
	var b Binding

	assert.False(t, b.Bound())
	_, err := b.Backend()
	assert.ErrorIs(t, err, ErrUnbound)

	mem := NewMemory()
	b.Bind(mem)
	assert.True(t, b.Bound())

	s, err := b.Backend()
	require.NoError(t, err)
	assert.Equal(t, Storage(mem), s)

	b.Reset()
	assert.False(t, b.Bound())
}

func TestMemoryTypedOps(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.SetInt("i", 1))
	require.NoError(t, m.SetLong("l", 2))
	require.NoError(t, m.SetFloat("f", 1.5))
	require.NoError(t, m.SetString("s", "v"))
	require.NoError(t, m.SetBool("b", true))

	i, err := m.GetInt("i", 0)
	require.NoError(t, err)
	assert.Equal(t, int32(1), i)

	l, err := m.GetLong("l", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), l)

	f, err := m.GetFloat("f", 0)
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), f)

	s, err := m.GetString("s", "")
	require.NoError(t, err)
	assert.Equal(t, "v", s)

	b, err := m.GetBool("b", false)
	require.NoError(t, err)
	assert.True(t, b)
}

func TestMemoryMissingKeyReturnsDefault(t *testing.T) {
	m := NewMemory()

	v, err := m.GetInt("absent", 7)
	require.NoError(t, err)
	assert.Equal(t, int32(7), v)
}

func TestMemoryTypeMismatch(t *testing.T) {
	m := NewMemory()
	m.Put("k", "text")

	v, err := m.GetInt("k", 7)
	assert.Error(t, err)
	assert.Equal(t, int32(7), v)
}

func TestMemoryInjectedFailure(t *testing.T) {
	m := NewMemory()
	boom := errors.New("boom")
	m.Fail("k", boom)

	assert.ErrorIs(t, m.SetInt("k", 1), boom)

	_, err := m.GetInt("k", 0)
	assert.ErrorIs(t, err, boom)
}

func TestMemoryFlush(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Flush())
	assert.Equal(t, 1, m.Flushed)

	m.FlushErr = errors.New("io")
	assert.Error(t, m.Flush())
	assert.Equal(t, 1, m.Flushed)
}
