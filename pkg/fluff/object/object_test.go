package object

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.bug.st/f"

	"github.com/ib-77/fluff/pkg/fluff"
)

type point struct {
	X, Y int
}

// offByOne treats a as equal to b when a == b-1
var offByOne = fluff.EqualFunc(func(a, b int) bool { return a == b-1 })

func TestIsNullOrDefault(t *testing.T) {
	t.Parallel()

	var nilPtr *point
	var nilErr error
	var nilMap map[string]int

	assert.True(t, IsNullOrDefault(0))
	assert.True(t, IsNullOrDefault(""))
	assert.True(t, IsNullOrDefault(point{}))
	assert.True(t, IsNullOrDefault(nilPtr))
	assert.True(t, IsNullOrDefault(nilErr))
	assert.True(t, IsNullOrDefault(nilMap))
	assert.True(t, IsNullOrDefault(uuid.Nil))

	assert.False(t, IsNullOrDefault(1))
	assert.False(t, IsNullOrDefault("a"))
	assert.False(t, IsNullOrDefault(point{X: 1}))
	assert.False(t, IsNullOrDefault(&point{}))
	assert.False(t, IsNullOrDefault(uuid.New()))
	assert.False(t, IsNullOrDefault(map[string]int{}))
}

func TestIsNullOrDefault_WithComparer(t *testing.T) {
	t.Parallel()

	// -1 is "equal" to the zero value under offByOne
	assert.True(t, IsNullOrDefault(-1, offByOne))
	assert.False(t, IsNullOrDefault(0, offByOne))

	// nil comparers are skipped
	assert.True(t, IsNullOrDefault(0, nil))
	assert.True(t, IsNullOrDefault(-1, nil, offByOne))

	// a nil pointer is absent whatever the comparer says
	never := fluff.EqualFunc(func(a, b *point) bool { return false })
	assert.True(t, IsNullOrDefault[*point](nil, never))
}

func TestDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fallback", Default("", "fallback"))
	assert.Equal(t, "a", Default("a", "fallback"))
	assert.Equal(t, 7, Default(0, 7))
	assert.Equal(t, 5, Default(-1, 5, offByOne))
}

func TestDefaultFunc_AbsentInvokesFactory(t *testing.T) {
	t.Parallel()

	var s *string
	got := DefaultFunc(s, func() *string { return f.Ptr("1") })

	require.NotNil(t, got)
	assert.Equal(t, "1", *got)
}

func TestDefaultFunc_PresentSkipsFactory(t *testing.T) {
	t.Parallel()

	got := DefaultFunc("a", func() string {
		t.Fatal("factory must not be called for a present value")
		return ""
	})

	assert.Equal(t, "a", got)
}

func TestSelectOrDefault(t *testing.T) {
	t.Parallel()

	t.Run("absent source returns zero and skips selector", func(t *testing.T) {
		calls := 0
		got := SelectOrDefault((*point)(nil), func(p *point) int {
			calls++
			return p.X
		})
		assert.Equal(t, 0, got)
		assert.Equal(t, 0, calls)
	})

	t.Run("present source invokes selector once", func(t *testing.T) {
		calls := 0
		got := SelectOrDefault(&point{X: 3}, func(p *point) int {
			calls++
			return p.X
		})
		assert.Equal(t, 3, got)
		assert.Equal(t, 1, calls)
	})

	t.Run("string to string", func(t *testing.T) {
		assert.Equal(t, "", SelectOrDefault("", func(string) string { return "1" }))
		assert.Equal(t, "1", SelectOrDefault("a", func(string) string { return "1" }))
	})
}

func TestSelectOrDefaultValue(t *testing.T) {
	t.Parallel()

	upper := strings.ToUpper

	assert.Equal(t, "d", SelectOrDefaultValue("", upper, "d"))
	assert.Equal(t, "A", SelectOrDefaultValue("a", upper, "d"))
}

func TestSelectOrDefaultFunc(t *testing.T) {
	t.Parallel()

	got := SelectOrDefaultFunc("", func(string) string {
		t.Fatal("selector must not be called for an absent value")
		return ""
	}, func() string { return "d" })
	assert.Equal(t, "d", got)

	got = SelectOrDefaultFunc("a", func(string) string { return "1" }, func() string {
		t.Fatal("factory must not be called for a present value")
		return ""
	})
	assert.Equal(t, "1", got)
}

func TestMaybe(t *testing.T) {
	t.Parallel()

	Maybe("", func(string) { t.Fatal("action must not be called for an absent value") })

	var seen []string
	Maybe("a", func(s string) { seen = append(seen, s) })
	assert.Equal(t, []string{"a"}, seen)

	called := false
	Maybe(-1, func(int) { called = true }, offByOne)
	assert.False(t, called)
}

func TestAs(t *testing.T) {
	t.Parallel()

	var src any = strings.NewReader("x")

	r, ok := As[io.Reader](src)
	assert.True(t, ok)
	assert.NotNil(t, r)

	c, ok := As[io.Closer](src)
	assert.False(t, ok)
	assert.Nil(t, c)

	n, ok := As[int]("a")
	assert.False(t, ok)
	assert.Equal(t, 0, n)

	p, ok := As[*point]("a")
	assert.False(t, ok)
	assert.Nil(t, p)
}

func TestMaybeAs_ChainsAsTypeSwitch(t *testing.T) {
	t.Parallel()

	src := strings.NewReader("x")
	var hits []string

	out := MaybeAs(
		MaybeAs(
			MaybeAs(src, func(io.Reader) { hits = append(hits, "reader") }),
			func(io.Closer) { hits = append(hits, "closer") }),
		func(any) { hits = append(hits, "any") })

	assert.Same(t, src, out)
	assert.Equal(t, []string{"reader", "any"}, hits)
}

func TestMaybeAs_AbsentValueSkipsAction(t *testing.T) {
	t.Parallel()

	var p *point
	MaybeAs(p, func(*point) { t.Fatal("action must not be called for a nil pointer") })
	MaybeAs("", func(string) { t.Fatal("action must not be called for an empty string") })
}

func TestNilCallbacksPanic(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"DefaultFunc":         func() { DefaultFunc("a", nil) },
		"SelectOrDefault":     func() { SelectOrDefault[string, int]("", nil) },
		"SelectOrDefaultFunc": func() { SelectOrDefaultFunc("a", func(string) int { return 1 }, nil) },
		"Maybe":               func() { Maybe[string]("", nil) },
		"MaybeAs":             func() { MaybeAs[string, string]("a", nil) },
	}

	for name, call := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(error)
				require.True(t, ok)
				assert.True(t, errors.Is(err, fluff.ErrInvalidArgument))
			}()
			call()
		})
	}
}
