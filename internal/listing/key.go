package listing

import (
	"strings"
	"time"
)

type keyKind int

const (
	kindText keyKind = iota
	kindDate
)

// Key is a sortable value taken from a record.
type Key struct {
	kind keyKind
	text string
	date time.Time
}

func Text(s string) Key {
	return Key{kind: kindText, text: s}
}

func Date(t time.Time) Key {
	return Key{kind: kindDate, date: t}
}

// compare orders dates chronologically and everything else as
// case-insensitive text.
func compare(a, b Key) int {
	if a.kind == kindDate && b.kind == kindDate {
		return a.date.Compare(b.date)
	}
	return strings.Compare(strings.ToLower(a.String()), strings.ToLower(b.String()))
}

func (k Key) String() string {
	if k.kind == kindDate {
		if k.date.IsZero() {
			return ""
		}
		return k.date.Format(time.RFC3339)
	}
	return k.text
}
