package outcome

import (
	"strconv"
	"testing"
)

func TestMatch_Method_Success(t *testing.T) {
	t.Parallel()

	var successes, failures int
	Success[int, string](5).Match(
		func(v int) {
			successes++
			if v != 5 {
				t.Fatalf("expected 5, got %d", v)
			}
		},
		func(string) { failures++ },
	)

	if successes != 1 || failures != 0 {
		t.Fatalf("expected exactly the success callback, got: successes=%d, failures=%d", successes, failures)
	}
}

func TestMatch_Method_Failure(t *testing.T) {
	t.Parallel()

	var successes, failures int
	Failure[int, string]("down").Match(
		func(int) { successes++ },
		func(e string) {
			failures++
			if e != "down" {
				t.Fatalf("expected %q, got %q", "down", e)
			}
		},
	)

	if successes != 0 || failures != 1 {
		t.Fatalf("expected exactly the failure callback, got: successes=%d, failures=%d", successes, failures)
	}
}

func TestMatch_Returning(t *testing.T) {
	t.Parallel()

	got := Match(Success[int, string](5),
		func(v int) string { return "value " + strconv.Itoa(v) },
		func(e string) string { return "error " + e },
	)
	if got != "value 5" {
		t.Fatalf("expected %q, got %q", "value 5", got)
	}

	got = Match(Failure[int, string]("down"),
		func(v int) string { return "value " + strconv.Itoa(v) },
		func(e string) string { return "error " + e },
	)
	if got != "error down" {
		t.Fatalf("expected %q, got %q", "error down", got)
	}
}

func TestMap_Success(t *testing.T) {
	t.Parallel()

	calls := 0
	r := Map(Success[int, string](21), func(v int) int {
		calls++
		return v * 2
	})

	if !r.IsSuccess() || r.Value() != 42 {
		t.Fatalf("expected success with 42, got: success=%v, val=%v, err=%v", r.IsSuccess(), r.Value(), r.Err())
	}
	if calls != 1 {
		t.Fatalf("expected one transform call, got %d", calls)
	}
}

func TestMap_FailurePassesThrough(t *testing.T) {
	t.Parallel()

	r := Map(Failure[int, string]("down"), func(v int) string {
		t.Fatalf("transform must not run on a failure")
		return ""
	})

	if !r.IsFailure() || r.Err() != "down" {
		t.Fatalf("expected the failure payload to pass through, got: %v", r)
	}
}

func TestMap_Retype(t *testing.T) {
	t.Parallel()

	r := Map(Success[int, string](5), strconv.Itoa)
	if !r.IsSuccess() || r.Value() != "5" {
		t.Fatalf("expected success with %q, got: %v", "5", r)
	}
}

func TestMapErr_Failure(t *testing.T) {
	t.Parallel()

	r := MapErr(Failure[int, string]("down"), func(e string) int { return len(e) })
	if !r.IsFailure() || r.Err() != 4 {
		t.Fatalf("expected failure with 4, got: %v", r)
	}
}

func TestMapErr_SuccessPassesThrough(t *testing.T) {
	t.Parallel()

	r := MapErr(Success[int, string](5), func(string) string {
		t.Fatalf("transform must not run on a success")
		return ""
	})

	if !r.IsSuccess() || r.Value() != 5 {
		t.Fatalf("expected the success payload to pass through, got: %v", r)
	}
}

func TestFlatMap_Success(t *testing.T) {
	t.Parallel()

	r := FlatMap(Success[int, string](5), func(v int) Result[string, string] {
		return Success[string, string](strconv.Itoa(v))
	})
	if !r.IsSuccess() || r.Value() != "5" {
		t.Fatalf("expected success with %q, got: %v", "5", r)
	}

	r = FlatMap(Success[int, string](5), func(int) Result[string, string] {
		return Failure[string, string]("rejected")
	})
	if !r.IsFailure() || r.Err() != "rejected" {
		t.Fatalf("expected failure with %q, got: %v", "rejected", r)
	}
}

func TestFlatMap_FailureShortCircuits(t *testing.T) {
	t.Parallel()

	r := FlatMap(Failure[int, string]("down"), func(int) Result[string, string] {
		t.Fatalf("next step must not run on a failure")
		return Result[string, string]{}
	})

	if !r.IsFailure() || r.Err() != "down" {
		t.Fatalf("expected the failure payload to pass through, got: %v", r)
	}
}
