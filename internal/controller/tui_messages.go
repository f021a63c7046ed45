package controller

// pickerKind selects what the picker list offers.
type pickerKind int

const (
	pickNone pickerKind = iota
	pickNote
	pickChord
)

// List item types.
type pickItem struct {
	label string
	kind  pickerKind
}

func (p pickItem) FilterValue() string {
	return p.label
}
