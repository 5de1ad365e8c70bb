package dllist

import (
	stderrs "errors"
	"testing"

	"github.com/sirkon/deepequal"
)

func drain(c *Cursor) []int {
	res := []int{}
	for c.Next() {
		res = append(res, c.Value())
	}

	return res
}

func TestCursors(t *testing.T) {
	t.Run("directions", func(t *testing.T) {
		l := listOf(1, 2, 3)
		deepequal.SideBySide(t, "forward", []int{1, 2, 3}, drain(l.Forward()))
		deepequal.SideBySide(t, "backward", []int{3, 2, 1}, drain(l.Backward()))
	})

	t.Run("reverse-of-forward", func(t *testing.T) {
		for n := 0; n < 10; n++ {
			l := New(nil)
			for i := 0; i < n; i++ {
				l.InsertHead(i * 3)
			}

			fwd := drain(l.Forward())
			bwd := drain(l.Backward())
			for i, j := 0, len(fwd)-1; i < j; i, j = i+1, j-1 {
				fwd[i], fwd[j] = fwd[j], fwd[i]
			}
			deepequal.SideBySide(t, "reversed forward", fwd, bwd)
		}
	})

	t.Run("restartable", func(t *testing.T) {
		l := listOf(1, 2)
		c := l.Forward()
		if !c.Next() || !c.Next() || c.Next() || c.Next() {
			t.Error("cursor must be finite and stay exhausted")
		}
		deepequal.SideBySide(t, "second traversal", []int{1, 2}, drain(l.Forward()))
	})

	t.Run("independent", func(t *testing.T) {
		l := listOf(1, 2, 3)
		a := l.Forward()
		b := l.Forward()
		a.Next()
		a.Next()
		b.Next()
		if a.Value() != 2 || b.Value() != 1 {
			t.Errorf("independent positions expected, got %d and %d", a.Value(), b.Value())
		}
	})

	t.Run("empty", func(t *testing.T) {
		l := New(nil)
		if l.Forward().Next() || l.Backward().Next() {
			t.Error("empty list cursors must yield nothing")
		}
	})

	t.Run("observes-changes", func(t *testing.T) {
		l := listOf(1, 2, 3)
		c := l.Forward()
		c.Next()
		l.Replace(3, 30)
		l.InsertTail(4)
		deepequal.SideBySide(t, "observed", []int{2, 30, 4}, drain(c))
		if c.Err() != nil {
			t.Errorf("unexpected cursor error: %s", c.Err())
		}
	})

	t.Run("invalidated", func(t *testing.T) {
		l := listOf(1, 2, 3)
		c := l.Forward()
		c.Next()
		c.Next()
		l.Remove(2)
		l.InsertTail(2)
		if c.Next() {
			t.Error("cursor must stop when its node is unlinked")
		}
		if !stderrs.Is(c.Err(), ErrCursorInvalidated) {
			t.Errorf("cursor invalidation error expected, got %v", c.Err())
		}
	})
}
