package dashboard

// The view tree is a DOM-free description of a rendered tab. Renderers build
// pages out of these nodes; transports decide how to serialize them. Event
// wiring is declarative through Action values so renderers stay unit-testable.

// Page is the root of one tab's rendered output.
type Page struct {
	Tab    Tab
	Title  string
	Anchor string
	Nodes  []Node
}

// Node is a single element of the view tree.
type Node interface {
	node()
}

// Tone tags a node with a display emphasis.
type Tone string

const (
	ToneDanger  Tone = "danger"
	ToneWarning Tone = "warning"
	ToneSuccess Tone = "success"
	ToneInfo    Tone = "info"
	TonePrimary Tone = "primary"
	ToneMuted   Tone = "muted"
)

// ActionKind describes the intent behind an interactive element.
type ActionKind string

const (
	ActionNavigate ActionKind = "navigate"
	ActionSubmit   ActionKind = "submit"
	ActionDelete   ActionKind = "delete"
	ActionModal    ActionKind = "modal"
	ActionExport   ActionKind = "export"
	ActionPrint    ActionKind = "print"
)

// Action is a declarative event intent. Target carries the destination tab,
// form endpoint, or modal kind depending on Kind. Confirm, when set, requires
// an explicit user confirmation before dispatch.
type Action struct {
	Kind    ActionKind
	Label   string
	Target  string
	Anchor  string
	Tone    Tone
	Confirm string
}

func (Action) node() {}

// Card groups nodes under a header.
type Card struct {
	ID     string
	Header string
	Body   []Node
}

func (Card) node() {}

// Row lays out children side by side.
type Row struct {
	Columns []Node
}

func (Row) node() {}

// Table is a plain data table. Row tones drive status coloring.
type Table struct {
	Columns []string
	Rows    []TableRow
}

func (Table) node() {}

// TableRow is one table row plus any row-scoped actions.
type TableRow struct {
	Cells   []string
	Tone    Tone
	Actions []Action
}

// StatList renders label/value pairs with badge emphasis.
type StatList struct {
	Items []StatItem
}

func (StatList) node() {}

// StatItem is one statistic. Caption carries an optional formula note.
type StatItem struct {
	Label   string
	Value   string
	Tone    Tone
	Caption string
}

// AlertBox is a prominent inline message.
type AlertBox struct {
	Tone Tone
	Text string
}

func (AlertBox) node() {}

// Text is a plain paragraph.
type Text struct {
	Tone    Tone
	Content string
}

func (Text) node() {}

// ChartSlot embeds a rendered chart. Slot names the canvas so the coordinator
// can destroy and recreate handles on navigation and theme changes.
type ChartSlot struct {
	Slot string
	HTML string
}

func (ChartSlot) node() {}

// FormSpec describes an input form. Live computations are expressed through
// the Compute hints on readonly fields; the FormController owns the math.
type FormSpec struct {
	ID     string
	Title  string
	Fields []FormField
	Submit Action
}

func (FormSpec) node() {}

// FormField is one form input.
type FormField struct {
	Name     string
	Label    string
	Kind     string // number, text, date
	Required bool
	ReadOnly bool
	Step     string
	Compute  string // product_name, unit_cost, revenue, profit, total_cost
}
