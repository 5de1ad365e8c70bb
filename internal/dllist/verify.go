package dllist

import "github.com/sirkon/errors"

const (
	// ErrCursorInvalidated узел под курсором был удалён из списка между шагами.
	ErrCursorInvalidated errors.Const = "cursor node has been unlinked"

	// ErrBrokenEnds нарушена согласованность начала и конца списка.
	ErrBrokenEnds errors.Const = "list ends are inconsistent"

	// ErrBrokenLink связи соседних узлов не согласованы.
	ErrBrokenLink errors.Const = "node links are inconsistent"

	// ErrLengthMismatch число узлов при обходе не совпадает с длиной списка.
	ErrLengthMismatch errors.Const = "list length mismatch"
)

// Verify проверка структуры списка. Обходит список в обоих направлениях и
// возвращает первое найденное нарушение.
func (l *List) Verify() error {
	if (l.head == nilRef) != (l.tail == nilRef) {
		return errors.Wrap(ErrBrokenEnds, "only one end is present").
			Uint32("head-slot", uint32(l.head)).
			Uint32("tail-slot", uint32(l.tail))
	}

	if l.head == nilRef {
		if l.len != 0 {
			return errors.Wrap(ErrLengthMismatch, "empty list with non-zero length").
				Int("length", l.len)
		}

		return nil
	}

	if err := l.walk(false); err != nil {
		return errors.Wrap(err, "walk from head")
	}

	if err := l.walk(true); err != nil {
		return errors.Wrap(err, "walk from tail")
	}

	return nil
}

// walk обход списка с проверкой обратных связей на каждом шаге.
func (l *List) walk(backward bool) error {
	start, end := l.head, l.tail
	if backward {
		start, end = end, start
	}

	var steps int
	last := nilRef
	for r := start; r != nilRef; {
		if !l.nodes.valid(r) {
			return errors.Wrap(ErrBrokenLink, "link points outside of the arena").
				Int("position", steps).
				Uint32("slot", uint32(r)).
				Int("arena-size", len(l.nodes.slots))
		}

		s := l.nodes.at(r)
		if !s.used {
			return errors.Wrap(ErrBrokenLink, "link points to a released node").
				Int("position", steps).
				Uint32("slot", uint32(r))
		}

		back := s.prev
		next := s.next
		if backward {
			back, next = next, back
		}

		if back != last {
			return errors.Wrap(ErrBrokenLink, "reverse link does not point to the previous node").
				Int("position", steps).
				Uint32("slot", uint32(r)).
				Uint32("want-slot", uint32(last)).
				Uint32("got-slot", uint32(back))
		}

		steps++
		if steps > l.len {
			return errors.Wrap(ErrLengthMismatch, "walk passed more nodes than the list holds").
				Int("length", l.len)
		}

		last = r
		r = next
	}

	if last != end {
		return errors.Wrap(ErrBrokenEnds, "walk did not stop at the opposite end").
			Uint32("want-slot", uint32(end)).
			Uint32("got-slot", uint32(last))
	}

	if steps != l.len {
		return errors.Wrap(ErrLengthMismatch, "walk passed fewer nodes than the list holds").
			Int("length", l.len).
			Int("passed", steps)
	}

	return nil
}
