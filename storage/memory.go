package storage

import "fmt"

// Memory is a map-backed Storage implementation. It is the reference
// backend used by tests; Fail lets a test inject a per-key failure, and
// Flushed counts Flush calls.
type Memory struct {
	data    map[string]any
	failing map[string]error

	// Flushed counts successful Flush calls.
	Flushed int
	// FlushErr, when set, is returned by Flush.
	FlushErr error
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{
		data:    make(map[string]any),
		failing: make(map[string]error),
	}
}

// Fail makes every subsequent operation on key return err.
func (m *Memory) Fail(key string, err error) {
	m.failing[key] = err
}

// Has reports whether key holds a value.
func (m *Memory) Has(key string) bool {
	_, ok := m.data[key]
	return ok
}

// Put stores a raw value directly, bypassing type checks. Tests use it to
// simulate malformed persisted data.
func (m *Memory) Put(key string, v any) {
	m.data[key] = v
}

// Len returns the number of stored keys.
func (m *Memory) Len() int {
	return len(m.data)
}

func (m *Memory) set(key string, v any) error {
	if err := m.failing[key]; err != nil {
		return err
	}

	m.data[key] = v
	return nil
}

// get returns the stored value for key. The ok result is false when the
// key is absent, which is not an error; err is set for injected failures
// and type mismatches.
func (m *Memory) get(key string) (v any, ok bool, err error) {
	if err := m.failing[key]; err != nil {
		return nil, false, err
	}

	v, ok = m.data[key]
	return v, ok, nil
}

func (m *Memory) SetInt(key string, v int32) error { return m.set(key, v) }

func (m *Memory) SetLong(key string, v int64) error { return m.set(key, v) }

func (m *Memory) SetFloat(key string, v float32) error { return m.set(key, v) }

func (m *Memory) SetString(key string, v string) error { return m.set(key, v) }

func (m *Memory) SetBool(key string, v bool) error { return m.set(key, v) }

func (m *Memory) GetInt(key string, def int32) (int32, error) {
	raw, ok, err := m.get(key)
	if err != nil || !ok {
		return def, err
	}

	v, isInt := raw.(int32)
	if !isInt {
		return def, fmt.Errorf("key %s: stored value is %T, want int32", key, raw)
	}

	return v, nil
}

func (m *Memory) GetLong(key string, def int64) (int64, error) {
	raw, ok, err := m.get(key)
	if err != nil || !ok {
		return def, err
	}

	v, isLong := raw.(int64)
	if !isLong {
		return def, fmt.Errorf("key %s: stored value is %T, want int64", key, raw)
	}

	return v, nil
}

func (m *Memory) GetFloat(key string, def float32) (float32, error) {
	raw, ok, err := m.get(key)
	if err != nil || !ok {
		return def, err
	}

	v, isFloat := raw.(float32)
	if !isFloat {
		return def, fmt.Errorf("key %s: stored value is %T, want float32", key, raw)
	}

	return v, nil
}

func (m *Memory) GetString(key string, def string) (string, error) {
	raw, ok, err := m.get(key)
	if err != nil || !ok {
		return def, err
	}

	v, isStr := raw.(string)
	if !isStr {
		return def, fmt.Errorf("key %s: stored value is %T, want string", key, raw)
	}

	return v, nil
}

func (m *Memory) GetBool(key string, def bool) (bool, error) {
	raw, ok, err := m.get(key)
	if err != nil || !ok {
		return def, err
	}

	v, isBool := raw.(bool)
	if !isBool {
		return def, fmt.Errorf("key %s: stored value is %T, want bool", key, raw)
	}

	return v, nil
}

func (m *Memory) Flush() error {
	if m.FlushErr != nil {
		return m.FlushErr
	}

	m.Flushed++
	return nil
}
