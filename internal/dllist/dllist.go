package dllist

import (
	"github.com/google/uuid"
	"github.com/sirkon/errors"
)

// New конструктор пустого двусвязного списка. opts может быть nil, тогда
// используются опции по умолчанию.
func New(opts *ListOptions) *List {
	if opts == nil {
		opts = Options()
	}

	l := &List{
		id:      uuid.New(),
		log:     opts.logger,
		checked: opts.checked,
	}
	l.nodes.slots = make([]slot, 0, opts.capacity)

	return l
}

// List двусвязный список целых чисел. Нулевое значение – пустой список
// готовый к работе.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type List struct {
	id    uuid.UUID
	head  ref
	tail  ref
	len   int
	nodes arena

	log     Logger
	checked bool
}

// InsertHead добавление значения в начало списка.
func (l *List) InsertHead(v int) {
	n := l.alloc(v)
	if l.head == nilRef {
		l.head = n
		l.tail = n
	} else {
		l.nodes.at(n).next = l.head
		l.nodes.at(l.head).prev = n
		l.head = n
	}
	l.len++

	l.check("insert head")
}

// InsertTail добавление значения в конец списка.
func (l *List) InsertTail(v int) {
	n := l.alloc(v)
	if l.tail == nilRef {
		l.head = n
		l.tail = n
	} else {
		l.nodes.at(n).prev = l.tail
		l.nodes.at(l.tail).next = n
		l.tail = n
	}
	l.len++

	l.check("insert tail")
}

// RemoveHead удаление первого элемента списка. На пустом списке ничего не делает.
func (l *List) RemoveHead() {
	if l.head == nilRef {
		return
	}

	f := l.head
	next := l.nodes.at(f).next
	if next == nilRef {
		// в списке был только один элемент
		l.head = nilRef
		l.tail = nilRef
	} else {
		l.nodes.at(next).prev = nilRef
		l.head = next
	}
	l.nodes.release(f)
	l.len--

	l.check("remove head")
}

// RemoveTail удаление последнего элемента списка. На пустом списке ничего не делает.
func (l *List) RemoveTail() {
	if l.tail == nilRef {
		return
	}

	t := l.tail
	prev := l.nodes.at(t).prev
	if prev == nilRef {
		l.head = nilRef
		l.tail = nilRef
	} else {
		l.nodes.at(prev).next = nilRef
		l.tail = prev
	}
	l.nodes.release(t)
	l.len--

	l.check("remove tail")
}

// InsertAfter вставка newValue сразу после первого узла со значением value.
// Если такого узла нет список не меняется.
func (l *List) InsertAfter(value, newValue int) {
	r := l.find(value)
	if r == nilRef {
		return
	}

	if r == l.tail {
		l.InsertTail(newValue)
		return
	}

	// Указатели на ячейки берутся после выделения: арена могла вырасти.
	n := l.alloc(newValue)
	cur := l.nodes.at(r)
	next := cur.next

	s := l.nodes.at(n)
	s.prev = r
	s.next = next
	l.nodes.at(next).prev = n
	cur.next = n
	l.len++

	l.check("insert after")
}

// Remove удаление первого узла со значением value.
// Если такого узла нет список не меняется.
func (l *List) Remove(value int) {
	r := l.find(value)
	switch r {
	case nilRef:
		return
	case l.head:
		l.RemoveHead()
		return
	case l.tail:
		l.RemoveTail()
		return
	}

	s := l.nodes.at(r)
	l.nodes.at(s.prev).next = s.next
	l.nodes.at(s.next).prev = s.prev
	l.nodes.release(r)
	l.len--

	l.check("remove")
}

// Replace замена значения oldValue на newValue во всех узлах, а не только в первом.
func (l *List) Replace(oldValue, newValue int) {
	for r := l.head; r != nilRef; {
		s := l.nodes.at(r)
		if s.value == oldValue {
			s.value = newValue
		}
		r = s.next
	}

	l.check("replace")
}

// Clear удаление всех элементов. Все выданные ранее ручки становятся недействительными.
func (l *List) Clear() {
	for r := l.head; r != nilRef; {
		next := l.nodes.at(r).next
		l.nodes.release(r)
		r = next
	}
	l.head = nilRef
	l.tail = nilRef
	l.len = 0

	l.check("clear")
}

// Len число элементов списка.
func (l *List) Len() int {
	return l.len
}

// First получение значения первого элемента списка.
func (l *List) First() (int, bool) {
	if l.head == nilRef {
		return 0, false
	}

	return l.nodes.at(l.head).value, true
}

// Last получение значения последнего элемента списка.
func (l *List) Last() (int, bool) {
	if l.tail == nilRef {
		return 0, false
	}

	return l.nodes.at(l.tail).value, true
}

// Find поиск первого узла со значением value.
func (l *List) Find(value int) (Handle, bool) {
	r := l.find(value)
	if r == nilRef {
		return Handle{}, false
	}

	if l.id == uuid.Nil {
		l.id = uuid.New()
	}

	return Handle{
		list: l.id,
		slot: r,
		gen:  l.nodes.at(r).gen,
	}, true
}

// Value значение узла с данной ручкой. Возвращает false если узел уже удалён
// или ручка выдана другим списком.
func (l *List) Value(h Handle) (int, bool) {
	s := l.live(h)
	if s == nil {
		l.logger().WarningStaleHandle(h)
		return 0, false
	}

	return s.value, true
}

// HeadTailAbsent проверка, что и начало, и конец списка отсутствуют.
func (l *List) HeadTailAbsent() bool {
	return l.head == nilRef && l.tail == nilRef
}

// HeadTailPresent проверка, что и начало, и конец списка присутствуют.
func (l *List) HeadTailPresent() bool {
	return l.head != nilRef && l.tail != nilRef
}

func (l *List) find(value int) ref {
	for r := l.head; r != nilRef; {
		s := l.nodes.at(r)
		if s.value == value {
			return r
		}
		r = s.next
	}

	return nilRef
}

func (l *List) live(h Handle) *slot {
	if h.list == uuid.Nil || h.list != l.id || !l.nodes.valid(h.slot) {
		return nil
	}

	s := l.nodes.at(h.slot)
	if !s.used || s.gen != h.gen {
		return nil
	}

	return s
}

func (l *List) alloc(v int) ref {
	from := cap(l.nodes.slots)
	r := l.nodes.alloc(v)
	if to := cap(l.nodes.slots); to != from {
		l.logger().DebugArenaGrow(from, to)
	}

	return r
}

func (l *List) check(op string) {
	if !l.checked {
		return
	}

	if err := l.Verify(); err != nil {
		l.logger().Error(errors.Wrap(err, "verify list structure").Str("operation", op))
	}
}

func (l *List) logger() Logger {
	if l.log == nil {
		return nopLogger{}
	}

	return l.log
}
