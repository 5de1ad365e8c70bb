package dllist_test

import (
	stderrs "errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirkon/intlist/internal/dllist"
	"github.com/sirkon/intlist/internal/dllist/internal/mocks"
	"github.com/sirkon/intlist/internal/tlog"
)

func TestLoggerArenaGrow(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewLoggerMock(ctrl)

	m.EXPECT().DebugArenaGrow(2, gomock.Any()).Do(func(from, to int) {
		if to <= from {
			t.Errorf("arena must grow, got %d -> %d", from, to)
		}
	})

	l := dllist.New(dllist.Options().Capacity(2).Logger(m))
	l.InsertTail(1)
	l.InsertTail(2)
	l.InsertTail(3)

	// Освобождённые ячейки переиспользуются без роста.
	l.RemoveHead()
	l.InsertHead(1)
}

func TestLoggerStaleHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewLoggerMock(ctrl)

	l := dllist.New(dllist.Options().Logger(m))
	l.InsertTail(1)
	l.InsertTail(2)

	h, ok := l.Find(2)
	if !ok {
		t.Fatal("value 2 must be found")
	}
	l.RemoveTail()

	m.EXPECT().WarningStaleHandle(h)
	if _, ok := l.Value(h); ok {
		t.Error("handle of removed node must be stale")
	}
}

func TestLoggerChecked(t *testing.T) {
	t.Run("intact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mocks.NewLoggerMock(ctrl)

		l := dllist.New(dllist.Options().Logger(m).Checked(true))
		l.InsertTail(1)
		l.InsertHead(0)
		l.InsertAfter(0, 5)
		l.Replace(5, 6)
		l.Remove(6)
		l.RemoveTail()
		l.RemoveHead()
		l.Clear()
	})

	t.Run("broken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mocks.NewLoggerMock(ctrl)

		l := dllist.New(dllist.Options().Logger(m).Checked(true))
		l.InsertTail(1)
		l.InsertTail(2)
		l.InsertTail(3)
		dllist.BreakPrevLink(l)

		m.EXPECT().Error(gomock.Any()).Do(func(err error) {
			if !stderrs.Is(err, dllist.ErrBrokenLink) {
				t.Errorf("broken link error expected, got %v", err)
			}
			tlog.Log(t, err)
		})
		l.Replace(1, 10)
	})
}
