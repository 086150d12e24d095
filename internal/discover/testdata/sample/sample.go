// Package sample is a fixture for loader tests.
package sample

// Settings mixes exported, unexported and tagged members.
type Settings struct {
	WaitTime int32
	Ratio    float32 `rc:"ratio,nopersist"`
	hidden   bool
}

// NotAStruct exists to exercise the non-struct error path.
type NotAStruct int
