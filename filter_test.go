package cascade

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	var seen []int
	inner := func(v int) Status {
		seen = append(seen, v)
		return Consumed
	}
	even := func(v int) bool { return v%2 == 0 }

	f := Filter(even, inner)

	assert.Equal(t, Consumed, f(4))
	assert.Equal(t, Filtered, f(3))
	assert.Equal(t, Consumed, f(0))
	assert.Equal(t, []int{4, 0}, seen, "inner ran for an argument the predicate rejected")
}

func TestFilterPredicateSeesExactArgs(t *testing.T) {
	var predArgs, innerArgs []string

	f := Filter(
		func(s string) bool {
			predArgs = append(predArgs, s)
			return s != ""
		},
		func(s string) Status {
			innerArgs = append(innerArgs, s)
			return Continue
		},
	)

	assert.Equal(t, Continue, f("Haggis"))
	assert.Equal(t, Filtered, f(""))
	assert.Equal(t, []string{"Haggis", ""}, predArgs)
	assert.Equal(t, []string{"Haggis"}, innerArgs)
}

func TestFilterNil(t *testing.T) {
	called := false
	inner := func(int) Status {
		called = true
		return Consumed
	}

	assert.Equal(t, Filtered, Filter[int](nil, inner)(1))
	assert.Equal(t, Filtered, Filter(func(int) bool { return true }, nil)(1))
	assert.Equal(t, Filtered, Filter[int](nil, nil)(1))
	assert.False(t, called)

	assert.Equal(t, Filtered, Filter0(nil, nil)())
	assert.Equal(t, Filtered, Filter2[int, int](nil, nil)(1, 2))
	assert.Equal(t, Filtered, Filter3[int, int, int](nil, nil)(1, 2, 3))
}

func TestFilterArities(t *testing.T) {
	yes := func() bool { return true }
	no := func() bool { return false }
	consume := func() Status { return Consumed }

	assert.Equal(t, Consumed, Filter0(yes, consume)())
	assert.Equal(t, Filtered, Filter0(no, consume)())

	sumPositive := func(a, b int) bool { return a+b > 0 }
	pair := func(int, int) Status { return Consumed }
	assert.Equal(t, Consumed, Filter2(sumPositive, pair)(1, 0))
	assert.Equal(t, Filtered, Filter2(sumPositive, pair)(-1, 0))

	flagged := func(_ string, _ int, flag bool) bool { return flag }
	triple := func(string, int, bool) Status { return Continue }
	assert.Equal(t, Continue, Filter3(flagged, triple)("a", 1, true))
	assert.Equal(t, Filtered, Filter3(flagged, triple)("a", 1, false))
}

func TestFilterRegistered(t *testing.T) {
	d := New[float64]()
	var ran []string

	guarded := d.RegisterAt(Filter(
		func(v float64) bool { return v > 0 },
		func(float64) Status {
			ran = append(ran, "guarded")
			return Consumed
		},
	), -1)
	fallback := d.Register(func(float64) Status {
		ran = append(ran, "fallback")
		return Continue
	})

	d.Dispatch(1)
	assert.Equal(t, []string{"guarded"}, ran)

	ran = nil
	d.Dispatch(-1)
	assert.Equal(t, []string{"fallback"}, ran, "Filtered did not let dispatch continue")

	stats := d.Stats()
	assert.Equal(t, uint64(1), stats.Filtered)
	assert.Equal(t, uint64(1), stats.Consumed)

	runtime.KeepAlive(guarded)
	runtime.KeepAlive(fallback)
}
