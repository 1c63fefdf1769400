// result_test.go - Result and Status behavior on the checked paths.
package xgxmeta

import (
	"errors"
	"testing"
)

func TestResult_Ok(t *testing.T) {
	t.Parallel()

	r := Ok(7)
	if r.HasError() {
		t.Fatalf("Ok reported an error")
	}
	if r.Value() != 7 {
		t.Fatalf("Value: want=7 got=%d", r.Value())
	}
	v, err := r.Get()
	if v != 7 || err != nil {
		t.Fatalf("Get: (%d, %v)", v, err)
	}
	if r.ValueOr(1) != 7 {
		t.Fatalf("ValueOr ignored the value")
	}
	if r.Status().HasError() {
		t.Fatalf("Status of Ok failed")
	}
}

func TestResult_Fail(t *testing.T) {
	t.Parallel()

	e := MakeError(BufferOverrun, "full")
	r := Fail[int](e)
	if !r.HasError() {
		t.Fatalf("Fail did not report an error")
	}
	if r.Err() != e {
		t.Fatalf("Err: want=%v got=%v", e, r.Err())
	}
	v, err := r.Get()
	if v != 0 || !errors.Is(err, BufferOverrun) {
		t.Fatalf("Get: (%d, %v)", v, err)
	}
	if r.ValueOr(9) != 9 {
		t.Fatalf("ValueOr must return fallback")
	}
	if s := r.Status(); !s.HasError() || s.Err() != e {
		t.Fatalf("Status lost the failure: %+v", s)
	}
}

func TestResult_ZeroIsSuccess(t *testing.T) {
	t.Parallel()

	var r Result[string]
	if r.HasError() || r.Value() != "" {
		t.Fatalf("zero Result must be a success with the zero value")
	}
}

func TestResult_Match(t *testing.T) {
	t.Parallel()

	var gotV int
	var gotE Error
	Ok(3).Match(func(v int) { gotV = v }, func(e Error) { t.Fatalf("onError called for Ok") })
	if gotV != 3 {
		t.Fatalf("onValue not called")
	}
	e := MakeError(BufferUnderflow, "x")
	Fail[int](e).Match(func(int) { t.Fatalf("onValue called for Fail") }, func(x Error) { gotE = x })
	if gotE != e {
		t.Fatalf("onError not called with the failure")
	}
	// nil callbacks are skipped
	Ok(1).Match(nil, nil)
	Fail[int](e).Match(nil, nil)
}

func TestResult_GetNeverReturnsTypedNil(t *testing.T) {
	t.Parallel()

	_, err := Ok("x").Get()
	if err != nil {
		t.Fatalf("Get on success returned non-nil error interface: %#v", err)
	}
}

func TestStatus(t *testing.T) {
	t.Parallel()

	if s := OK(); s.HasError() || s.AsError() != nil {
		t.Fatalf("OK() = %+v", s)
	}
	var zero Status
	if zero.HasError() {
		t.Fatalf("zero Status must be success")
	}
	e := MakeError(BufferOverrun, "full")
	s := Failed(e)
	if !s.HasError() || s.Err() != e || !errors.Is(s.AsError(), BufferOverrun) {
		t.Fatalf("Failed(e) = %+v", s)
	}
}
