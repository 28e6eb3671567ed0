package solo

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/strata/pkg/rop"
)

func nonNegative(v int) func(ctx context.Context, in Outcome[int]) Outcome[int] {
	return func(ctx context.Context, in Outcome[int]) Outcome[int] {
		if v < 0 {
			return Fail[int](errors.New("negative"))
		}
		return Succeed(v)
	}
}

func even(v int) func(ctx context.Context, in Outcome[int]) Outcome[int] {
	return func(ctx context.Context, in Outcome[int]) Outcome[int] {
		if v%2 != 0 {
			return Fail[int](errors.New("odd"))
		}
		return Succeed(v)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	positive := func(_ context.Context, in int) (bool, string) { return in > 0, "not positive" }

	if r := Validate(ctx, 3, positive); !r.IsOk() || r.Unwrap() != 3 {
		t.Fatalf("expected Ok(3), got %v", r)
	}

	r := Validate(ctx, -3, positive)
	if !r.IsErr() || r.UnwrapErr().Error() != "not positive" {
		t.Fatalf("expected Err(not positive), got %v", r)
	}

	prior := Fail[int](errors.New("earlier"))
	called := false
	r = AndValidate(ctx, prior, func(context.Context, int) (bool, string) {
		called = true
		return true, ""
	})
	if called || r.UnwrapErr().Error() != "earlier" {
		t.Fatalf("validation must not run on the failure track")
	}
}

func TestValidateAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	r := ValidateAll(ctx, Succeed(10), true, nonNegative(10), even(10))
	if !r.IsOk() || r.Unwrap() != 10 {
		t.Fatalf("expected Ok(10), got %v", r)
	}

	executed := 0
	counting := func(ctx context.Context, in Outcome[int]) Outcome[int] {
		executed++
		return in
	}

	r = ValidateAll(ctx, Succeed(-1), true, nonNegative(-1), counting, even(-1))
	if executed != 0 {
		t.Fatalf("expected break on first error, ran %d more checks", executed)
	}
	if r.UnwrapErr().Error() != "negative" {
		t.Fatalf("expected negative, got %v", r.UnwrapErr())
	}

	r = ValidateAll(ctx, Succeed(-1), false, nonNegative(-1), even(-1))
	errs := rop.GetErrors(r.UnwrapErr())
	if len(errs) != 2 || errs[0].Error() != "negative" || errs[1].Error() != "odd" {
		t.Fatalf("expected both errors joined, got %v", errs)
	}
}

func TestValidateAllRunsEachCheckOnInput(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	check := func(valid func(int) bool, msg string) func(context.Context, Outcome[int]) Outcome[int] {
		return func(ctx context.Context, in Outcome[int]) Outcome[int] {
			return AndValidate(ctx, in, func(_ context.Context, v int) (bool, string) {
				return valid(v), msg
			})
		}
	}
	nonNeg := check(func(v int) bool { return v >= 0 }, "negative")
	isEven := check(func(v int) bool { return v%2 == 0 }, "odd")
	small := check(func(v int) bool { return v < 100 }, "too big")

	r := ValidateAll(ctx, Succeed(-1), false, nonNeg, isEven, small)
	errs := rop.GetErrors(r.UnwrapErr())
	if len(errs) != 2 || errs[0].Error() != "negative" || errs[1].Error() != "odd" {
		t.Fatalf("expected [negative odd], got %v", errs)
	}

	r = ValidateAll(ctx, Succeed(-1), true, nonNeg, isEven)
	errs = rop.GetErrors(r.UnwrapErr())
	if len(errs) != 1 || errs[0].Error() != "negative" {
		t.Fatalf("expected [negative], got %v", errs)
	}

	if r = ValidateAll(ctx, Succeed(4), false, nonNeg, isEven, small); r.Unwrap() != 4 {
		t.Fatalf("expected Ok(4), got %v", r)
	}

	prior := errors.New("earlier")
	r = ValidateAll(ctx, Fail[int](prior), false, nonNeg, isEven)
	if r.UnwrapErr() != prior {
		t.Fatalf("a failed input must pass through unchanged, got %v", r)
	}
}

func TestJoinStopsWhenCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	step := func(ctx context.Context, in Outcome[int]) Outcome[int] {
		called = true
		return in
	}
	identity := func(_ context.Context, in Outcome[int]) Outcome[int] { return in }

	r := Join(ctx, Succeed(1), false, identity, step)
	if called || r.Unwrap() != 1 {
		t.Fatalf("expected input back without running steps")
	}
}

func TestSwitchMapTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	parsed := Try(ctx, Succeed("21"), func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	doubled := Map(ctx, parsed, func(_ context.Context, n int) int { return n * 2 })
	text := Switch(ctx, doubled, func(_ context.Context, n int) Outcome[string] {
		return Succeed(strconv.Itoa(n))
	})
	if text.Unwrap() != "42" {
		t.Fatalf("expected 42, got %v", text)
	}

	bad := Try(ctx, Succeed("x"), func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	if !bad.IsErr() {
		t.Fatalf("expected parse failure")
	}
	if Map(ctx, bad, func(_ context.Context, n int) int { return n }).UnwrapErr() != bad.UnwrapErr() {
		t.Fatalf("failure must pass through Map")
	}
}

func TestTryRecoversViolation(t *testing.T) {
	t.Parallel()

	r := Try(context.Background(), Succeed(0), func(_ context.Context, _ int) (int, error) {
		return Fail[int](errors.New("boom")).Unwrap(), nil
	})
	if !errors.Is(r.UnwrapErr(), rop.ErrViolation) {
		t.Fatalf("expected violation, got %v", r)
	}
}

func TestFailOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	r := FailOnError(ctx, Succeed(5), func(context.Context, int) error { return nil })
	if r.Unwrap() != 5 {
		t.Fatalf("expected Ok(5), got %v", r)
	}

	r = FailOnError(ctx, Succeed(5), func(context.Context, int) error { return errors.New("no") })
	if r.UnwrapErr().Error() != "no" {
		t.Fatalf("expected Err(no), got %v", r)
	}
}

func TestTees(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen []int
	record := func(_ context.Context, v int) { seen = append(seen, v) }

	Tee(ctx, Succeed(1), record)
	Tee(ctx, Fail[int](errors.New("x")), record)
	TeeIf(ctx, Succeed(2), func(_ context.Context, v int) bool { return v > 5 }, record)
	TeeIf(ctx, Succeed(6), func(_ context.Context, v int) bool { return v > 5 }, record)

	if len(seen) != 2 || seen[0] != 1 || seen[1] != 6 {
		t.Fatalf("unexpected tee calls %v", seen)
	}
}

func TestCancelTrack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var track []string
	onErr := func(context.Context, error) { track = append(track, "error") }
	onCancel := func(context.Context, error) { track = append(track, "cancel") }
	onOk := func(context.Context, int) { track = append(track, "ok") }

	DoubleTee(ctx, Succeed(1), onOk, onErr, onCancel)
	DoubleTee(ctx, Fail[int](errors.New("x")), onOk, onErr, onCancel)
	DoubleTee(ctx, Cancel[int](errors.New("stopped")), onOk, onErr, onCancel)
	DoubleTee(ctx, Fail[int](context.DeadlineExceeded), onOk, onErr, onCancel)

	want := []string{"ok", "error", "cancel", "cancel"}
	if len(track) != len(want) {
		t.Fatalf("expected %v, got %v", want, track)
	}
	for i := range want {
		if track[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, track)
		}
	}

	if !IsCancel(Cancel[int](nil)) || IsCancel(Fail[int](errors.New("x"))) || IsCancel(Succeed(1)) {
		t.Fatalf("IsCancel misclassified")
	}
}

func TestDoubleMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	failures := 0
	onFail := func(context.Context, error) { failures++ }

	r := DoubleMap(ctx, Succeed(2), func(_ context.Context, n int) string { return strconv.Itoa(n) }, onFail, onFail)
	if r.Unwrap() != "2" {
		t.Fatalf("expected Ok(2), got %v", r)
	}

	r = DoubleMap(ctx, Fail[int](errors.New("x")), func(_ context.Context, n int) string { return strconv.Itoa(n) }, onFail, onFail)
	if !r.IsErr() || failures != 1 {
		t.Fatalf("expected failure reported once, got %v after %d", r, failures)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	describe := func(r Outcome[int]) string {
		return Finally(ctx, r,
			func(_ context.Context, n int) string { return "val:" + strconv.Itoa(n) },
			func(context.Context, error) string { return "err" },
			func(context.Context, error) string { return "cancel" })
	}

	if got := describe(Succeed(5)); got != "val:5" {
		t.Fatalf("got %s", got)
	}
	if got := describe(Fail[int](errors.New("x"))); got != "err" {
		t.Fatalf("got %s", got)
	}
	if got := describe(Cancel[int](errors.New("x"))); got != "cancel" {
		t.Fatalf("got %s", got)
	}
}
