package confparse

// Callbacks holds the consumer-supplied handlers Parse dispatches events
// to. Section may be nil, in which case every section body is skipped
// (structure is still tracked; Close does not fire for the skipped
// sections) — matching a nil settings_section_callback_t in the
// original.
type Callbacks struct {
	// KeyValue handles a "key = value" line. A non-nil error aborts the
	// parse; it is wrapped with enclosing-section context if one is known.
	KeyValue func(key, value string) error

	// Section handles a section open ("type [name] {"). descend decides
	// whether the section body is dispatched (true) or entered in skip
	// mode (false); skip mode still counts nested opens/closes but never
	// invokes any callback.
	Section func(typ, name string) (descend bool, err error)

	// Close handles a section close ("}"). It is only invoked for
	// sections that were descended into (not skipped).
	Close func() error
}

// Kind identifies the coercion a SettingDef applies to a string value.
type Kind int

const (
	// KindString stores the value unchanged.
	KindString Kind = iota
	// KindUint coerces the value with ParseUint.
	KindUint
	// KindBool coerces the value with ParseBool.
	KindBool
)

// SettingDef names one recognized setting and how to store it. ApplySetting
// coerces the value according to Kind and passes it to the unexported
// setter for that Kind; concrete tables are built with
// StringSetting/UintSetting/BoolSetting below, which supply that setter.
type SettingDef struct {
	Name string
	Kind Kind

	setStr  func(string)
	setUint func(uint64)
	setBool func(bool)
}

// StringSetting defines a string-valued setting that writes into dst.
func StringSetting(name string, dst *string) SettingDef {
	return SettingDef{Name: name, Kind: KindString, setStr: func(v string) { *dst = v }}
}

// UintSetting defines an unsigned-integer-valued setting that writes into dst.
func UintSetting(name string, dst *uint64) SettingDef {
	return SettingDef{Name: name, Kind: KindUint, setUint: func(v uint64) { *dst = v }}
}

// BoolSetting defines a boolean-valued setting that writes into dst.
func BoolSetting(name string, dst *bool) SettingDef {
	return SettingDef{Name: name, Kind: KindBool, setBool: func(v bool) { *dst = v }}
}
