package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidListPolicy indicates an unrecognized list policy name.
var ErrInvalidListPolicy = errors.New("invalid list policy")

// ListPolicy selects how list items are wrapped in list containers.
type ListPolicy string

const (
	// ListShared wraps each run of consecutive items of the same kind in a
	// single <ul>/<ol>, with one <li> line per item.
	ListShared ListPolicy = "shared"

	// ListPerItem wraps every item in its own <ul><li>…</li></ul> fragment,
	// regardless of adjacency.
	ListPerItem ListPolicy = "per-item"
)

// DefaultListPolicy is used when no policy is configured.
const DefaultListPolicy = ListShared

// ListPolicies returns the recognized policy names.
func ListPolicies() []string {
	return []string{string(ListShared), string(ListPerItem)}
}

// ParseListPolicy resolves a policy name, case-insensitively.
// An empty name selects DefaultListPolicy.
func ParseListPolicy(name string) (ListPolicy, error) {
	switch ListPolicy(strings.ToLower(strings.TrimSpace(name))) {
	case "":
		return DefaultListPolicy, nil
	case ListShared:
		return ListShared, nil
	case ListPerItem:
		return ListPerItem, nil
	default:
		return "", fmt.Errorf("%w: %q (must be %s)", ErrInvalidListPolicy, name, strings.Join(ListPolicies(), " or "))
	}
}

// List container tags.
const (
	ulOpen  = "<ul>"
	ulClose = "</ul>"
	olOpen  = "<ol>"
	olClose = "</ol>"
)

// blockState records which list block is open. Only one can be open at a
// time: an item of the other kind closes the current block first.
type blockState struct {
	inUL bool
	inOL bool
}

// Stats summarizes one conversion.
type Stats struct {
	Lines      int    // input lines consumed
	Fragments  int    // output lines produced, list tags included
	Headings   int    // heading lines
	Paragraphs int    // paragraph lines
	Items      int    // list item lines
	Lists      int    // list containers opened
	Title      string // content of the first heading, "" if none
}

// Driver turns a sequence of input lines into output lines, one call per
// line. A Driver belongs to a single conversion and is not safe for
// concurrent use.
type Driver struct {
	policy ListPolicy
	state  blockState
	stats  Stats
}

// NewDriver creates a Driver. An empty policy selects DefaultListPolicy.
func NewDriver(policy ListPolicy) (*Driver, error) {
	p, err := ParseListPolicy(string(policy))
	if err != nil {
		return nil, err
	}
	return &Driver{policy: p}, nil
}

// Feed classifies one raw line and returns the output lines it produces,
// in order. The result may be empty.
func (d *Driver) Feed(raw string) []string {
	d.stats.Lines++

	line := ClassifyLine(raw)
	var out []string

	switch line.Kind {
	case KindUnorderedItem:
		out = d.item(out, line, ulOpen, ulClose, &d.state.inUL, &d.state.inOL, olClose)
	case KindOrderedItem:
		out = d.item(out, line, olOpen, olClose, &d.state.inOL, &d.state.inUL, ulClose)
	default:
		out = d.closeLists(out)
		if frag := RenderLine(line); frag != "" {
			out = append(out, frag)
		}
		d.count(line)
	}

	d.stats.Fragments += len(out)
	return out
}

// Finish closes any list left open at end of input.
func (d *Driver) Finish() []string {
	out := d.closeLists(nil)
	d.stats.Fragments += len(out)
	return out
}

// Stats returns the counters accumulated so far.
func (d *Driver) Stats() Stats {
	return d.stats
}

// item emits one list item. own is the state flag for the item's list kind,
// other the flag for the opposite kind, closed with otherClose.
func (d *Driver) item(out []string, line Line, openTag, closeTag string, own, other *bool, otherClose string) []string {
	d.stats.Items++
	frag := RenderLine(line)

	if d.policy == ListPerItem {
		d.stats.Lists++
		return append(out, openTag+frag+closeTag)
	}

	if *other {
		out = append(out, otherClose)
		*other = false
	}
	if !*own {
		out = append(out, openTag)
		*own = true
		d.stats.Lists++
	}
	return append(out, frag)
}

// closeLists emits the close tag of whichever list is open.
func (d *Driver) closeLists(out []string) []string {
	if d.state.inUL {
		out = append(out, ulClose)
		d.state.inUL = false
	}
	if d.state.inOL {
		out = append(out, olClose)
		d.state.inOL = false
	}
	return out
}

func (d *Driver) count(line Line) {
	switch line.Kind {
	case KindHeading:
		d.stats.Headings++
		if d.stats.Title == "" {
			d.stats.Title = line.Content
		}
	case KindParagraph:
		d.stats.Paragraphs++
	}
}

// ConvertLines runs a fresh Driver over lines and returns every output line,
// list closers included.
func ConvertLines(lines []string, policy ListPolicy) ([]string, error) {
	d, err := NewDriver(policy)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, l := range lines {
		out = append(out, d.Feed(l)...)
	}
	return append(out, d.Finish()...), nil
}
