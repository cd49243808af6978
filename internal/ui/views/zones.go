package views

// HitKind classifies a pointer position against the last rendered layout
type HitKind int

const (
	HitOutside HitKind = iota
	HitTrigger
	HitOption
	// HitList is the listbox frame or a scroll indicator: inside the widget
	// but not an option
	HitList
)

// Hit is the result of a hit test
type Hit struct {
	Kind  HitKind
	ID    string // option id for HitOption
	Index int
}

type span struct {
	top, bottom int // inclusive line range
	width       int
}

func (s span) contains(x, y int) bool {
	return y >= s.top && y <= s.bottom && x >= 0 && x < s.width
}

type optionLine struct {
	y     int
	id    string
	index int
}

// zones records where the last View put each interactive part. Coordinates
// are relative to the top-left cell of the widget.
type zones struct {
	trigger span
	list    span
	open    bool
	options []optionLine
}

func (z zones) hit(x, y int) Hit {
	if z.trigger.contains(x, y) {
		return Hit{Kind: HitTrigger, Index: -1}
	}
	if !z.open || !z.list.contains(x, y) {
		return Hit{Kind: HitOutside, Index: -1}
	}
	for _, o := range z.options {
		if o.y == y {
			return Hit{Kind: HitOption, ID: o.id, Index: o.index}
		}
	}
	return Hit{Kind: HitList, Index: -1}
}
