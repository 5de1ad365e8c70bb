package dllist

const defaultCapacity = 16

// ListOptions опции для List.
type ListOptions struct {
	capacity int
	logger   Logger
	checked  bool
}

// Options конструктор опций со значениями по умолчанию.
func Options() *ListOptions {
	return &ListOptions{
		capacity: defaultCapacity,
		logger:   nopLogger{},
	}
}

// Capacity задание начальной ёмкости хранилища узлов. По умолчанию – 16.
func (o *ListOptions) Capacity(n int) *ListOptions {
	if n < 0 {
		n = 0
	}
	o.capacity = n
	return o
}

// Logger задание логгера. По умолчанию ничего не логируется.
func (o *ListOptions) Logger(l Logger) *ListOptions {
	if l == nil {
		l = nopLogger{}
	}
	o.logger = l
	return o
}

// Checked включение проверки структуры списка после каждого изменения.
// Найденные нарушения отдаются в Logger.Error.
func (o *ListOptions) Checked(v bool) *ListOptions {
	o.checked = v
	return o
}
