package discover

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTag(t *testing.T) {
	info, tagged := parseTag("", false)
	assert.False(t, tagged)
	assert.Zero(t, info)

	info, tagged = parseTag("", true)
	assert.True(t, tagged)
	assert.Zero(t, info)

	info, tagged = parseTag("waitTime", true)
	assert.True(t, tagged)
	assert.Equal(t, "waitTime", info.key)

	info, tagged = parseTag("waitTime,nopersist", true)
	assert.True(t, tagged)
	assert.Equal(t, "waitTime", info.key)
	assert.True(t, info.nopersist)
	assert.False(t, info.nosync)

	info, tagged = parseTag(",nosync", true)
	assert.True(t, tagged)
	assert.Empty(t, info.key)
	assert.True(t, info.nosync)

	info, tagged = parseTag("-", true)
	assert.True(t, tagged)
	assert.True(t, info.skip)
}
