package dllist

import (
	"fmt"

	"github.com/google/uuid"
)

// Handle ручка узла списка.
// Действительна пока узел остаётся в списке, которым была выдана.
type Handle struct {
	list uuid.UUID
	slot ref
	gen  uint32
}

func (h Handle) String() string {
	return h.list.String() + "/" + fmt.Sprintf("%08x", uint32(h.slot)) + "-" + fmt.Sprintf("%08x", h.gen)
}
