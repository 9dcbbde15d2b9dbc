package confparse

import (
	"fmt"
	"strings"
)

// WarnFunc receives a non-fatal warning (currently only the ambiguous '#'
// case) at the path/line it was detected, without aborting the parse.
type WarnFunc func(path string, line int, message string)

// Parse reads path and any files it transitively includes, dispatching
// events to cb in file order. section, if non-empty, is a slash-separated
// selector ("A/B/C"): the parser descends only along the nested section
// chain that selector names, dispatching that chain's own open/close
// events and its innermost section's body, and returns success the
// instant it has closed back out of the chain's outermost (first-matched)
// section. A selector naming a path that does not exist yields success
// with zero callbacks, per spec.md §8's path-targeting law.
func Parse(path string, section string, cb Callbacks, warn WarnFunc) error {
	stack := &inputStack{}
	if err := stack.push(path); err != nil {
		return fmt.Errorf("Can't open configuration file %s: %w", path, err)
	}
	defer stack.closeAll()

	p := &parseState{stack: stack, cb: cb, warn: warn}
	if section != "" {
		p.navComponents = strings.Split(section, "/")
	}

	return p.run()
}

// parseState is the single mutable cursor spec.md §3 describes as
// "SectionState": depth counter, skip counter, the path-targeting cursor,
// and the path/line of the most recently changed section for error
// enrichment.
type parseState struct {
	stack *inputStack
	cb    Callbacks
	warn  WarnFunc

	scanner lineScanner

	sections int
	skip     int

	// Path-addressed targeting (spec.md §4.7). navComponents is the
	// selector split on '/'; navIdx is the index of the component still
	// being searched for. Once every component has matched, navDone is
	// true and the parser dispatches normally for whatever is nested
	// inside the final matched section. haveRoot/rootDepth record the
	// depth of the *first* matched component (the outermost section on
	// the targeted path); deepestMatchDepth records the depth of the
	// *last* matched component (the section whose body is the actual
	// target). postTarget becomes true once the deepest section's own
	// close has been dispatched — from then on every further open is
	// forced into skip mode (a sibling of the target must never
	// dispatch), while the closes that unwind back through the
	// already-matched ancestor chain still fire, until the close that
	// drops below rootDepth ends the parse successfully.
	navComponents     []string
	navIdx            int
	haveRoot          bool
	rootDepth         int
	deepestMatchDepth int
	postTarget        bool

	lastSectionPath string
	lastSectionLine int
}

func (p *parseState) navDone() bool {
	return len(p.navComponents) == 0 || p.navIdx >= len(p.navComponents)
}

func (p *parseState) run() error {
	p.scanner.stack = p.stack

	for {
		ll, ok, err := p.scanner.next(p.emitWarn)
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		done, errmsg := p.dispatch(ll)
		if errmsg != "" {
			return newParseError(ll.path, ll.line, "%s", errmsg)
		}
		if done {
			return nil
		}
	}

	if p.sections != 0 {
		return newParseError(p.lastSectionPath, p.lastSectionLine, "Unexpected end of file: %d section(s) not closed", p.sections)
	}
	return nil
}

func (p *parseState) emitWarn(path string, line int, msg string) {
	if p.warn != nil {
		p.warn(path, line, msg)
	}
}

// dispatch classifies and handles one logical line. done is true once a
// path-targeted parse has reached the end of its targeted subtree.
func (p *parseState) dispatch(ll logicalLine) (done bool, errmsg string) {
	key, rest := splitKey(ll.text)

	switch {
	case key == "!include" || key == "!include_try":
		tolerant := key == "!include_try"
		resolved := ResolveIncludePath(rest, ll.path)
		if err := includeFiles(p.stack, resolved, tolerant); err != nil {
			return false, err.Error()
		}
		return false, ""

	case strings.HasPrefix(rest, "="):
		return false, p.handleAssignment(key, rest)

	case ll.text == "}":
		return p.handleClose()

	default:
		return false, p.handleSectionOpen(key, rest)
	}
}

// splitKey extracts the leading token (bytes up to the first whitespace
// or '=') and returns it with the remainder, whitespace-trimmed on the
// left, per spec.md §4.7.
func splitKey(line string) (key, rest string) {
	i := 0
	for i < len(line) && !isWhite(line[i]) && line[i] != '=' {
		i++
	}
	key = line[:i]
	rest = strings.TrimLeft(line[i:], " \t")
	return key, rest
}

// dispatchSuppressed reports whether kv/section callbacks are currently
// disabled: either an ordinary skip (the consumer declined to descend, or
// there is no Section callback), or the path-targeting cursor hasn't yet
// reached the end of its selector, or it has reached the end and is now
// unwinding back out (postTarget).
func (p *parseState) dispatchSuppressed() bool {
	return p.skip > 0 || !p.navDone() || p.postTarget
}

func (p *parseState) handleAssignment(key, rest string) string {
	value := strings.TrimLeft(rest[1:], " \t")

	if isQuotedValue(value) {
		value = unescapeQuoted(value)
	} else {
		value = ExpandEnv(value)
	}

	if p.dispatchSuppressed() {
		return ""
	}
	if p.cb.KeyValue == nil {
		return ""
	}
	if err := p.cb.KeyValue(key, value); err != nil {
		return p.enrich(err.Error())
	}
	return ""
}

func (p *parseState) handleSectionOpen(key, rest string) string {
	name, ok := parseSectionName(rest)
	if !ok {
		return "Expecting '='"
	}

	p.sections++
	var errmsg string

	switch {
	case p.skip > 0:
		// Already inside a subtree that isn't being dispatched — either a
		// mismatched branch while navigating a selector, or a section
		// whose callback declined to descend. Nested opens just track
		// depth; matching/dispatch never resumes until the matching
		// close brings skip back to zero.
		p.skip++
	case p.postTarget:
		p.skip++
	case !p.navDone():
		errmsg = p.handleTargetedOpen(key, name)
	default:
		errmsg = p.handleOrdinaryOpen(key, name)
	}

	p.lastSectionPath = p.currentPath()
	p.lastSectionLine = p.currentLine()
	return errmsg
}

// parseSectionName parses the remainder of a section-open line ("{" or
// "NAME {") per the grammar; ok is false for anything else, the
// "Expecting '='" error case.
func parseSectionName(rest string) (name string, ok bool) {
	if rest == "{" {
		return "", true
	}
	if !strings.HasSuffix(rest, "{") {
		return "", false
	}
	name = strings.TrimRight(strings.TrimSuffix(rest, "{"), " \t")
	if name == "" || strings.ContainsAny(name, " \t") {
		return "", false
	}
	return name, true
}

// handleTargetedOpen is the section-open handling while still navigating
// the path selector: a match against the current component dispatches
// normally and advances the cursor; a mismatch skips the whole subtree so
// sibling sections can still be tried once it closes.
func (p *parseState) handleTargetedOpen(key, name string) string {
	want := p.navComponents[p.navIdx]
	if key != want {
		p.skip = 1
		return ""
	}

	if p.navIdx == 0 {
		p.haveRoot = true
		p.rootDepth = p.sections
	}
	p.navIdx++
	if p.navDone() {
		p.deepestMatchDepth = p.sections
	}

	return p.invokeSectionCallback(key, name)
}

func (p *parseState) handleOrdinaryOpen(key, name string) string {
	if p.cb.Section == nil {
		p.skip = 1
		return ""
	}
	return p.invokeSectionCallback(key, name)
}

func (p *parseState) invokeSectionCallback(key, name string) string {
	if p.cb.Section == nil {
		return ""
	}
	descend, err := p.cb.Section(key, name)
	if err != nil {
		return p.enrich(err.Error())
	}
	if !descend {
		p.skip = 1
	}
	return ""
}

func (p *parseState) handleClose() (done bool, errmsg string) {
	if p.sections == 0 {
		return false, "Unexpected '}'"
	}

	if p.skip > 0 {
		p.skip--
		p.sections--
		return false, ""
	}

	if p.cb.Close != nil {
		if err := p.cb.Close(); err != nil {
			errmsg = p.enrich(err.Error())
		}
	}

	if errmsg == "" && p.deepestMatchDepth != 0 && p.sections == p.deepestMatchDepth {
		p.postTarget = true
	}

	terminate := errmsg == "" && p.haveRoot && p.sections == p.rootDepth

	p.lastSectionPath = p.currentPath()
	p.lastSectionLine = p.currentLine()
	p.sections--
	return terminate, errmsg
}

func (p *parseState) enrich(msg string) string {
	if p.lastSectionLine == 0 {
		return msg
	}
	return wrapSectionContext(msg, p.lastSectionPath, p.lastSectionLine)
}

func (p *parseState) currentPath() string {
	if p.stack.top == nil {
		return p.lastSectionPath
	}
	return p.stack.top.path
}

func (p *parseState) currentLine() int {
	if p.stack.top == nil {
		return p.lastSectionLine
	}
	return p.stack.top.line
}
