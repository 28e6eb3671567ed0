package queue

import (
	"testing"

	"github.com/ib-77/strata/pkg/collections/seq"
	"github.com/ib-77/strata/pkg/rop/option"
	"github.com/stretchr/testify/assert"
)

func TestEnqueueDequeue_Scenario(t *testing.T) {
	t.Parallel()

	q := New(1, 2, 3)
	q.Enqueue(4)

	want := []option.Option[int]{option.Some(1), option.Some(2), option.Some(3), option.Some(4), option.None[int]()}
	for i, w := range want {
		got := q.Dequeue()
		if !got.Eq(w) {
			t.Fatalf("dequeue #%d: expected %v, got %v", i, w, got)
		}
	}
}

func TestFrontAndBack(t *testing.T) {
	t.Parallel()

	q := New[string]()
	assert.True(t, q.Front().IsNone())
	assert.True(t, q.Back().IsNone())

	q.Enqueue("a")
	q.Enqueue("b")
	assert.True(t, q.Front().Eq(option.Some("a")))
	assert.True(t, q.Back().Eq(option.Some("b")))
	assert.Equal(t, 2, q.Len(), "peeking must not remove")

	q.Dequeue()
	q.Dequeue()
	assert.True(t, q.IsEmpty())
	assert.True(t, q.Back().IsNone())
}

func TestIterAndDrain(t *testing.T) {
	t.Parallel()

	q := New(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, seq.Collect(q.Iter()))
	assert.Equal(t, 3, q.Len())

	assert.Equal(t, []int{1, 2, 3}, seq.Collect(q.Drain()))
	assert.True(t, q.IsEmpty())
}

func TestString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "{ 1 => 2 }", New(1, 2).String())
}
