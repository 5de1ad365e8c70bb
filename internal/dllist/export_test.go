package dllist

// BreakPrevLink портит обратную ссылку второго узла. Только для тестов.
func BreakPrevLink(l *List) {
	second := l.nodes.at(l.head).next
	l.nodes.at(second).prev = nilRef
}
