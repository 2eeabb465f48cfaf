package testutil

import (
	"errors"
	"fmt"
	"testing"
)

// These tests verify the assertion helpers work correctly.
// Failure paths are exercised through a recording testing.TB.

type recorder struct {
	testing.TB
	failed bool
	msg    string
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.failed = true
	r.msg = fmt.Sprintf(format, args...)
}

func TestAssertEqual(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3}, "value should be %d", 42)

	r := &recorder{TB: t}
	AssertEqual(r, []string{"e4"}, []string{"e5"}, "moves from %s", "e2")
	if !r.failed {
		t.Fatal("AssertEqual() on different slices did not fail")
	}
	AssertContains(t, r.msg, "moves from e2: mismatch")
}

func TestAssertNoError(t *testing.T) {
	AssertNoError(t, nil)

	r := &recorder{TB: t}
	AssertNoError(r, errors.New("boom"))
	AssertTrue(t, r.failed, "AssertNoError(err) should fail")
	AssertContains(t, r.msg, "boom")
}

func TestAssertErrorIs(t *testing.T) {
	base := errors.New("base")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", base), base)

	r := &recorder{TB: t}
	AssertErrorIs(r, errors.New("other"), base)
	AssertTrue(t, r.failed, "AssertErrorIs(unrelated) should fail")
}

func TestAssertTrueFalse(t *testing.T) {
	AssertTrue(t, true)
	AssertFalse(t, false)

	r := &recorder{TB: t}
	AssertTrue(r, false)
	AssertTrue(t, r.failed, "AssertTrue(false) should fail")

	r = &recorder{TB: t}
	AssertFalse(r, true)
	AssertTrue(t, r.failed, "AssertFalse(true) should fail")
}

func TestAssertPanics(t *testing.T) {
	AssertPanics(t, func() { panic("expected") })

	r := &recorder{TB: t}
	AssertPanics(r, func() {})
	AssertTrue(t, r.failed, "AssertPanics(no panic) should fail")
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"empty", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"format string", []interface{}{"value is %d", 42}, "value is 42"},
		{"non-string", []interface{}{42}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
