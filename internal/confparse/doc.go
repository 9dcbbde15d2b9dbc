// Package confparse implements the hierarchical settings-file parser shared
// by the Oba server suite: tokenization with quote-aware comment stripping,
// `\` line continuation, `$ENV:NAME` expansion, glob-expanded `!include` /
// `!include_try` with cycle detection, section-skipping with path-addressed
// targeting, and file:line error reporting across stacked inputs.
//
// # Overview
//
// confparse does not know anything about the shape of a particular server's
// settings. It reads a root file and any files it transitively includes,
// classifies each logical line, and dispatches typed events to three
// caller-supplied callbacks:
//
//	kv(key, value string) error
//	section(typ, name string) (descend bool, err error)
//	close() error
//
// Open and close are separate callbacks rather than one overloaded function
// taking sentinel arguments, so neither side has to guess what an empty
// typ/name pair means.
//
// # Callbacks
//
//	type Callbacks struct {
//	    KeyValue func(key, value string) error
//	    Section  func(typ, name string) (descend bool, err error)
//	    Close    func() error
//	}
//
// A nil Section means every section body is skipped (structure is still
// tracked; Close does not fire for a skipped section, so the opens and
// closes a consumer sees stay balanced).
//
// # Path-addressed targeting
//
// Parse accepts an optional selector such as "outer/inner". When given, the
// parser starts in skip mode and calls back only for the sections along the
// nested chain named by the selector and for the body of the innermost one;
// it returns successfully the moment the chain's outermost section's closing
// brace is reached, without reading the rest of the file or any file
// included after that point.
//
// # Definition-driven settings
//
// Package confparse also exposes SettingDef and ApplySetting, a small
// reflection-free helper: given a table of {name, setter} pairs and a
// (key, value) pair from a KeyValue callback, it locates the matching
// definition and invokes its setter, coercing the string value to bool,
// uint, or leaving it as a string.
package confparse
