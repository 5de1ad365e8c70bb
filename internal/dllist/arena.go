package dllist

import "golang.org/x/exp/slices"

// ref номер слота в арене, начиная с единицы. Нулевое значение означает
// отсутствие узла.
type ref uint32

const nilRef ref = 0

// slot ячейка арены хранящая узел списка.
type slot struct {
	prev  ref
	next  ref
	value int
	gen   uint32
	used  bool
}

// arena хранилище узлов списка с переиспользованием освобождённых ячеек.
// Номер поколения ячейки увеличивается при каждом освобождении, что позволяет
// отличать устаревшие ссылки на неё.
type arena struct {
	slots []slot
	free  []ref
}

func (a *arena) at(r ref) *slot {
	return &a.slots[r-1]
}

func (a *arena) valid(r ref) bool {
	return r != nilRef && int(r) <= len(a.slots)
}

// alloc выделение ячейки под новый узел со значением v.
// Связи выделенной ячейки всегда пусты.
func (a *arena) alloc(v int) ref {
	if k := len(a.free); k > 0 {
		r := a.free[k-1]
		a.free = a.free[:k-1]

		s := a.at(r)
		s.value = v
		s.used = true
		return r
	}

	if len(a.slots) == cap(a.slots) {
		a.slots = slices.Grow(a.slots, growth(cap(a.slots)))
	}

	a.slots = append(a.slots, slot{
		prev:  nilRef,
		next:  nilRef,
		value: v,
		used:  true,
	})
	return ref(len(a.slots))
}

// release возврат ячейки в пул свободных.
func (a *arena) release(r ref) {
	s := a.at(r)
	s.prev = nilRef
	s.next = nilRef
	s.value = 0
	s.used = false
	s.gen++

	a.free = append(a.free, r)
}

func growth(capacity int) int {
	if capacity < defaultCapacity {
		return defaultCapacity
	}

	return capacity
}
