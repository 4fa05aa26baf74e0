// Package content holds the typed content model for phiview screens.
//
// A Screen is a flat list of Elements built from literal data at
// construction time. Nothing here touches the terminal: elements carry
// only strings and Accent tokens, and the ui package resolves those to
// styles at render time. Constructors are pure, so two calls always
// produce equal values.
package content

// Accent is an enumerated style token attached to cards and rows.
// The zero value means the default text color.
type Accent int

const (
	AccentDefault Accent = iota
	AccentYellow
	AccentBlue
	AccentPurple
	AccentGreen
)

func (a Accent) String() string {
	switch a {
	case AccentYellow:
		return "yellow"
	case AccentBlue:
		return "blue"
	case AccentPurple:
		return "purple"
	case AccentGreen:
		return "green"
	default:
		return "default"
	}
}

// Element is one block of screen content. Implementations are plain
// value types; the ui package switches on the concrete type.
type Element interface {
	element()
}

// Heading is the single top-level title of a screen.
type Heading struct {
	Text string
}

// Section is a titled divider between groups of elements.
type Section struct {
	Title string
}

// Paragraph is a run of body text, wrapped at render time.
type Paragraph struct {
	Text string
}

// Spacer inserts blank lines between elements.
type Spacer struct {
	Lines int
}

// LabeledRow is a small caption above a value string. Accent colors the
// value; AccentDefault renders it in the normal text color.
type LabeledRow struct {
	Label  string
	Value  string
	Accent Accent
}

// ComparisonCard describes one example system: an icon with an accent
// color, a title, and three labeled rows in fixed order (differentiation,
// integration, Φ value). All fields are non-empty on shipped screens.
type ComparisonCard struct {
	Title           string
	Icon            string
	Accent          Accent
	Differentiation string
	Integration     string
	PhiValue        string
}

// Rows returns the card's labeled rows in display order.
func (c ComparisonCard) Rows() []LabeledRow {
	return []LabeledRow{
		{Label: "Differentiation", Value: c.Differentiation},
		{Label: "Integration", Value: c.Integration},
		{Label: "Φ", Value: c.PhiValue, Accent: c.Accent},
	}
}

// ComparisonRow lays out cards side by side.
type ComparisonRow struct {
	Cards []ComparisonCard
}

// CodeBlock is a fixed multi-line string shown verbatim in a bordered
// monospace panel. The text is illustrative and never parsed.
type CodeBlock struct {
	Text string
}

// Citation is one literal reference string, ending in a DOI URL.
type Citation struct {
	Text string
}

// References is the attribution block at the end of a screen.
type References struct {
	Citations []Citation
}

func (Heading) element()       {}
func (Section) element()       {}
func (Paragraph) element()     {}
func (Spacer) element()        {}
func (LabeledRow) element()    {}
func (ComparisonRow) element() {}
func (CodeBlock) element()     {}
func (References) element()    {}

// Screen is one navigable unit of content. Name is the fixed key a host
// uses to open it; Title is what the index displays.
type Screen struct {
	Name     string
	Title    string
	Elements []Element
}

// Screens returns every registered screen in display order.
func Screens() []Screen {
	return []Screen{
		QuantityScreen(),
	}
}

// Lookup returns the screen registered under name.
func Lookup(name string) (Screen, bool) {
	for _, s := range Screens() {
		if s.Name == name {
			return s, true
		}
	}
	return Screen{}, false
}
