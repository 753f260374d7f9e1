package scene

import "go.trai.ch/strata/internal/core/domain"

// NoticeKind tags a recorded notification.
type NoticeKind uint8

const (
	// NoticeAdded records a PrimsAdded entry.
	NoticeAdded NoticeKind = iota + 1
	// NoticeRemoved records a PrimsRemoved entry.
	NoticeRemoved
	// NoticeDirtied records a PrimsDirtied entry.
	NoticeDirtied
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeAdded:
		return "added"
	case NoticeRemoved:
		return "removed"
	case NoticeDirtied:
		return "dirtied"
	}
	return "unknown"
}

// Notice is one entry of one notification, flattened for recording.
// Batch numbers the notification the entry arrived in, starting at 1.
type Notice struct {
	Batch    int
	Kind     NoticeKind
	Path     domain.Path
	Type     domain.Token
	Locators domain.LocatorSet
}
