package browser

import (
	"fmt"
	"strconv"
	"strings"
)

// TestIDAttribute is the attribute the site exposes stable test identifiers on.
const TestIDAttribute = "data-testid"

// Locator is a deferred reference to one or more DOM elements. Nothing is
// queried until a Session resolves it.
type Locator struct {
	scope    *Locator // positioned ancestor the selector is relative to
	selector string
	index    int // -1 selects the first match
}

// ByTestID targets elements whose data-testid equals id.
func ByTestID(id string) Locator {
	return Locator{
		selector: fmt.Sprintf(`[%s=%s]`, TestIDAttribute, strconv.Quote(id)),
		index:    -1,
	}
}

// ByCSS targets elements matching a raw CSS selector.
func ByCSS(selector string) Locator {
	return Locator{selector: selector, index: -1}
}

// Locate narrows l to descendants matching css. When l picks a position
// with Nth, only descendants of that one match are searched.
func (l Locator) Locate(css string) Locator {
	if l.index < 0 {
		return Locator{scope: l.scope, selector: l.selector + " " + css, index: -1}
	}
	return Locator{scope: &l, selector: css, index: -1}
}

// Nth picks the i-th (zero-based) match.
func (l Locator) Nth(i int) Locator {
	l.index = i
	return l
}

// Selector returns the CSS selector, without the position. It is relative
// to Scope when there is one.
func (l Locator) Selector() string {
	return l.selector
}

// Scope returns the positioned locator Selector is evaluated under.
func (l Locator) Scope() (Locator, bool) {
	if l.scope == nil {
		return Locator{}, false
	}
	return *l.scope, true
}

// Index returns the position picked by Nth, or -1.
func (l Locator) Index() int {
	return l.index
}

// position is the index a single-element query resolves to.
func (l Locator) position() int {
	if l.index < 0 {
		return 0
	}
	return l.index
}

func (l Locator) String() string {
	var b strings.Builder
	if l.scope != nil {
		b.WriteString(l.scope.String())
		b.WriteString(" >> ")
	}
	b.WriteString(l.selector)
	if l.index >= 0 {
		b.WriteString(" >> nth=")
		b.WriteString(strconv.Itoa(l.index))
	}
	return b.String()
}

// queryAllJS is a JavaScript expression evaluating to the array of every
// element l's selector matches, ignoring l's own position.
func queryAllJS(l Locator) string {
	sel := strconv.Quote(l.selector)
	if l.scope == nil {
		return fmt.Sprintf(`Array.from(document.querySelectorAll(%s))`, sel)
	}
	return fmt.Sprintf(`((root) => root ? Array.from(root.querySelectorAll(%s)) : [])((%s)[%d])`,
		sel, queryAllJS(*l.scope), l.scope.position())
}
