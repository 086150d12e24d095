package field

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rcgen/storage"
)

// typedVal is a fixed-projection TypedValue for tests.
type typedVal struct {
	text string
	i    int64
	f    float64
	b    bool
}

func (v typedVal) Text() string   { return v.text }
func (v typedVal) Int() int64     { return v.i }
func (v typedVal) Float() float64 { return v.f }
func (v typedVal) Bool() bool     { return v.b }

// recorder collects reported faults.
type recorder struct {
	errs []error
}

func (r *recorder) Report(err error) { r.errs = append(r.errs, err) }

type testConfig struct {
	WaitTime int32
	Volume   float32
	Name     string
	Enabled  bool
	Slots    []int32
	Seed     int64
}

func newTestGroup(rep Reporter) (*Group, *testConfig) {
	cfg := &testConfig{WaitTime: 5, Volume: 1, Name: "default", Seed: 99}
	g := NewGroup("Test", GroupOpts{Reporter: rep})

	g.Int32("WaitTime", &cfg.WaitTime, Opts{})
	g.Float32("Volume", &cfg.Volume, Opts{RemoteKey: "volume"})
	g.String("Name", &cfg.Name, Opts{})
	g.Bool("Enabled", &cfg.Enabled, Opts{})
	g.Int32Slice("Slots", &cfg.Slots, Opts{})
	g.Int64("Seed", &cfg.Seed, Opts{NoSync: true})

	return g, cfg
}

func TestApplyRaw(t *testing.T) {
	g, cfg := newTestGroup(nil)

	assert.True(t, g.ApplyRaw("WaitTime", "30"))
	assert.Equal(t, int32(30), cfg.WaitTime)

	// Remote key override: field name misses, key hits.
	assert.False(t, g.ApplyRaw("Volume", "2"))
	assert.True(t, g.ApplyRaw("volume", "2"))
	assert.Equal(t, float32(2), cfg.Volume)

	// Malformed value keeps the current one.
	assert.True(t, g.ApplyRaw("WaitTime", "garbage"))
	assert.Equal(t, int32(30), cfg.WaitTime)

	// NoSync fields have no setter entry.
	assert.False(t, g.ApplyRaw("Seed", "1"))
	assert.Equal(t, int64(99), cfg.Seed)
}

func TestApplyTyped(t *testing.T) {
	g, cfg := newTestGroup(nil)

	assert.True(t, g.ApplyTyped("WaitTime", typedVal{i: 12}))
	assert.Equal(t, int32(12), cfg.WaitTime)

	assert.True(t, g.ApplyTyped("Enabled", typedVal{b: true}))
	assert.True(t, cfg.Enabled)

	assert.True(t, g.ApplyTyped("Slots", typedVal{text: "4,5"}))
	assert.Equal(t, []int32{4, 5}, cfg.Slots)

	assert.False(t, g.ApplyTyped("Unknown", typedVal{}))
}

func TestSetFieldGetField(t *testing.T) {
	g, cfg := newTestGroup(nil)

	// SetField addresses fields by name, including NoSync ones.
	assert.True(t, g.SetField("Seed", typedVal{i: 123}))
	assert.Equal(t, int64(123), cfg.Seed)

	v, ok := g.GetField("WaitTime")
	require.True(t, ok)
	assert.Equal(t, int32(5), v)

	_, ok = g.GetField("Nope")
	assert.False(t, ok)

	assert.False(t, g.SetField("Nope", typedVal{}))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	g, _ := newTestGroup(nil)
	var x int32

	assert.Panics(t, func() { g.Int32("WaitTime", &x, Opts{}) })
	assert.Panics(t, func() { g.Int32("Other", &x, Opts{RemoteKey: "volume"}) })
}

func TestBulkSaveUnbound(t *testing.T) {
	rep := &recorder{}
	g, _ := newTestGroup(rep)

	g.BulkSave()

	require.Len(t, rep.errs, 1)
	assert.ErrorIs(t, rep.errs[0], storage.ErrUnbound)
}

func TestBulkLoadUnbound(t *testing.T) {
	rep := &recorder{}
	g, _ := newTestGroup(rep)

	g.BulkLoad()

	require.Len(t, rep.errs, 1)
	assert.ErrorIs(t, rep.errs[0], storage.ErrUnbound)
}

func TestBulkSaveThenLoadRestores(t *testing.T) {
	rep := &recorder{}
	g, cfg := newTestGroup(rep)

	mem := storage.NewMemory()
	g.Bind(mem)

	cfg.WaitTime = 77
	cfg.Slots = []int32{1, 2}

	g.BulkSave()
	require.Empty(t, rep.errs)
	assert.Equal(t, 1, mem.Flushed)

	cfg.WaitTime = 0
	cfg.Slots = nil
	cfg.Name = "clobbered"

	g.BulkLoad()
	require.Empty(t, rep.errs)

	assert.Equal(t, int32(77), cfg.WaitTime)
	assert.Equal(t, []int32{1, 2}, cfg.Slots)
	assert.Equal(t, "default", cfg.Name)
}

func TestBulkSaveAbortsMidSequence(t *testing.T) {
	rep := &recorder{}
	g, _ := newTestGroup(rep)

	mem := storage.NewMemory()
	mem.Fail("rc_Volume", errors.New("disk full"))
	g.Bind(mem)

	g.BulkSave()

	// One reported error, remaining writes skipped, no flush.
	require.Len(t, rep.errs, 1)
	assert.Contains(t, rep.errs[0].Error(), "Volume")
	assert.True(t, mem.Has("rc_WaitTime"))
	assert.False(t, mem.Has("rc_Name"))
	assert.Equal(t, 0, mem.Flushed)
}

func TestBulkLoadIsolatesFieldFaults(t *testing.T) {
	rep := &recorder{}
	g, cfg := newTestGroup(rep)

	mem := storage.NewMemory()
	mem.Put("rc_WaitTime", "not an int32") // wrong stored type
	mem.Put("rc_Name", "loaded")
	g.Bind(mem)

	g.BulkLoad()

	// WaitTime reported and untouched; Name loaded in the same call.
	require.Len(t, rep.errs, 1)
	assert.Contains(t, rep.errs[0].Error(), "WaitTime")
	assert.Equal(t, int32(5), cfg.WaitTime)
	assert.Equal(t, "loaded", cfg.Name)
}

func TestBulkSkipsNoPersist(t *testing.T) {
	var keep, skip int32
	g := NewGroup("P", GroupOpts{})
	g.Int32("Keep", &keep, Opts{})
	g.Int32("Skip", &skip, Opts{NoPersist: true})

	mem := storage.NewMemory()
	g.Bind(mem)
	g.BulkSave()

	assert.True(t, mem.Has("rc_Keep"))
	assert.False(t, mem.Has("rc_Skip"))
}

func TestDebugExport(t *testing.T) {
	g, cfg := newTestGroup(nil)
	cfg.Name = strings.Repeat("x", 350)

	out := g.DebugExport()
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 6)

	// Sorted by field name.
	assert.True(t, strings.HasPrefix(lines[0], "Enabled: "))
	assert.True(t, strings.HasPrefix(lines[1], "Name: "))
	assert.True(t, strings.HasPrefix(lines[5], "WaitTime: "))

	// Over-long values truncated with a marker.
	assert.Contains(t, lines[1], "...[truncated]")
	assert.Less(t, len(lines[1]), 340)
}

func TestFieldsOrder(t *testing.T) {
	g, _ := newTestGroup(nil)
	assert.Equal(t, []string{"WaitTime", "Volume", "Name", "Enabled", "Slots", "Seed"}, g.Fields())
}
