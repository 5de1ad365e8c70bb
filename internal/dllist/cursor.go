package dllist

import "github.com/sirkon/errors"

// Forward курсор по значениям списка от начала к концу.
// Каждый вызов выдаёт новый курсор, начинающий с головы списка.
func (l *List) Forward() *Cursor {
	return &Cursor{list: l}
}

// Backward курсор по значениям списка от конца к началу.
func (l *List) Backward() *Cursor {
	return &Cursor{
		list:     l,
		backward: true,
	}
}

// Cursor ленивый обход значений списка.
//
// Значения читаются в момент шага, изменения списка в других местах
// обходом видны. Если узел, на котором стоит курсор, удаляется из списка,
// то обход прекращается и Err возвращает ErrCursorInvalidated.
type Cursor struct {
	list     *List
	backward bool
	started  bool
	done     bool

	cur   ref
	gen   uint32
	steps int
	value int
	err   error
}

// Next переход к следующему значению.
func (c *Cursor) Next() bool {
	if c.done {
		return false
	}

	var r ref
	if !c.started {
		c.started = true
		if c.backward {
			r = c.list.tail
		} else {
			r = c.list.head
		}
	} else {
		s := c.list.nodes.at(c.cur)
		if !s.used || s.gen != c.gen {
			c.done = true
			c.err = errors.Wrap(ErrCursorInvalidated, "step from unlinked node").
				Int("steps-passed", c.steps).
				Int("last-value", c.value)
			return false
		}

		if c.backward {
			r = s.prev
		} else {
			r = s.next
		}
	}

	if r == nilRef {
		c.done = true
		return false
	}

	s := c.list.nodes.at(r)
	c.cur = r
	c.gen = s.gen
	c.value = s.value
	c.steps++
	return true
}

// Value значение прочитанное на последнем шаге.
func (c *Cursor) Value() int {
	return c.value
}

// Err возвращает ошибку времени обхода.
func (c *Cursor) Err() error {
	return c.err
}

// Values значения списка от начала к концу.
func (l *List) Values() []int {
	return collect(l.Forward(), l.len)
}

// ReversedValues значения списка от конца к началу.
func (l *List) ReversedValues() []int {
	return collect(l.Backward(), l.len)
}

func collect(c *Cursor, size int) []int {
	res := make([]int, 0, size)
	for c.Next() {
		res = append(res, c.Value())
	}

	return res
}
