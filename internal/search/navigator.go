package search

// Key is a keyboard key name as reported by the browser.
type Key string

const (
	KeyArrowDown Key = "ArrowDown"
	KeyArrowUp   Key = "ArrowUp"
	KeyEnter     Key = "Enter"
	KeyEscape    Key = "Escape"
)

type Action int

const (
	ActionNone Action = iota
	ActionNavigate
	ActionClose
)

// Navigator tracks keyboard selection over a quick-search result list.
// The cursor stays within [-1, len(results)-1]; -1 means nothing selected.
type Navigator struct {
	query  string
	ids    []string
	cursor int
}

func NewNavigator() *Navigator {
	return &Navigator{cursor: -1}
}

// SetResults replaces the result list and clears the selection.
func (n *Navigator) SetResults(query string, results []Result) {
	n.query = query
	n.ids = n.ids[:0]
	for _, r := range results {
		n.ids = append(n.ids, r.ID)
	}
	n.cursor = -1
}

func (n *Navigator) Cursor() int {
	return n.cursor
}

// Handle applies a key press. For ActionNavigate the returned string is the
// destination address.
func (n *Navigator) Handle(k Key) (Action, string) {
	switch k {
	case KeyArrowDown:
		if n.cursor < len(n.ids)-1 {
			n.cursor++
		}
	case KeyArrowUp:
		if n.cursor > -1 {
			n.cursor--
		}
	case KeyEnter:
		if n.cursor >= 0 && n.cursor < len(n.ids) {
			return ActionNavigate, ProductURL(n.ids[n.cursor])
		}
		if normalize(n.query) != "" {
			return ActionNavigate, ResultsURL(n.query)
		}
	case KeyEscape:
		return ActionClose, ""
	}
	return ActionNone, ""
}

func (a Action) String() string {
	switch a {
	case ActionNavigate:
		return "navigate"
	case ActionClose:
		return "close"
	}
	return "none"
}
