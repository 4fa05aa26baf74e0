package ui

// AppMode represents the top-level application mode (Index + Reader).
type AppMode int

const (
	ModeIndex AppMode = iota
	ModeReader
)

func (m AppMode) String() string {
	switch m {
	case ModeIndex:
		return "Index"
	case ModeReader:
		return "Reader"
	default:
		return "Unknown"
	}
}
