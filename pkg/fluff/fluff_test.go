package fluff

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entity struct {
	ID   uuid.UUID
	Name string
	Tags []string
}

func TestEquals_Structural(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	assert.True(t, Equals(1, 1))
	assert.False(t, Equals(1, 2))
	assert.True(t, Equals(entity{ID: id, Tags: []string{"a"}}, entity{ID: id, Tags: []string{"a"}}))
	assert.False(t, Equals(entity{ID: id}, entity{ID: uuid.New()}))
}

func TestEquals_Comparer(t *testing.T) {
	t.Parallel()

	byID := ComparerFunc[entity]{
		EqualFunc: func(a, b entity) bool { return a.ID == b.ID },
	}

	id := uuid.New()
	assert.True(t, Equals(entity{ID: id, Name: "a"}, entity{ID: id, Name: "b"}, byID))
	assert.False(t, Equals(entity{ID: id, Name: "a"}, entity{ID: id, Name: "b"}))

	// nil comparers fall through to the next one, then to structural equality
	assert.True(t, Equals(entity{ID: id, Name: "a"}, entity{ID: id, Name: "b"}, nil, byID))
	assert.False(t, Equals(entity{ID: id, Name: "a"}, entity{ID: id, Name: "b"}, nil))
}

func TestDefaultComparer(t *testing.T) {
	t.Parallel()

	c := DefaultComparer[uuid.UUID]()
	id := uuid.New()

	assert.True(t, c.Equal(id, id))
	assert.False(t, c.Equal(id, uuid.New()))
	assert.Equal(t, c.Hash(id), c.Hash(id))
}

func TestComparerFunc_NilHash(t *testing.T) {
	t.Parallel()

	c := EqualFunc(func(a, b int) bool { return a == b })
	assert.Equal(t, uint64(0), c.Hash(42))
}

func TestComparerFunc_NilEqualFunc(t *testing.T) {
	t.Parallel()

	var c Comparer[int] = ComparerFunc[int]{}

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		assert.Contains(t, err.Error(), "EqualFunc")
	}()
	Equals(1, 1, c)
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *entity
	var m map[string]int
	var s []int
	var fn func()
	var err error

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(m))
	assert.True(t, IsNil(s))
	assert.True(t, IsNil(fn))
	assert.True(t, IsNil(err))

	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil(&entity{}))
	assert.False(t, IsNil([]int{}))
}

func TestIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, IsZero(entity{}))
	assert.True(t, IsZero(uuid.Nil))
	assert.False(t, IsZero(entity{Name: "a"}))
}

func TestMustNotBeNil(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { MustNotBeNil("action", func() {}) })

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		assert.Contains(t, err.Error(), "action must not be nil")
	}()
	var action func()
	MustNotBeNil("action", action)
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	err := NotFound("no element equal to %d", 3)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "no element equal to 3: not found", err.Error())
}
