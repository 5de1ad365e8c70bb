package dllist

import (
	"strconv"
	"strings"
)

// String отображение списка вида <LinkedList>{1, 2, 3}. Только для диагностики.
func (l *List) String() string {
	return render("<LinkedList>", l.Values())
}

// FormatValues отображение последовательности значений вида <IEnumerable>{1, 2, 3}.
func FormatValues(values []int) string {
	return render("<IEnumerable>", values)
}

func render(kind string, values []int) string {
	var b strings.Builder
	b.WriteString(kind)
	b.WriteByte('{')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte('}')

	return b.String()
}
