package confparse

import "fmt"

// ApplySetting looks up key in defs by exact name equality and, on a
// match, coerces value with the definition's Kind and invokes its setter.
// It returns "Unknown setting: <key>" on a miss, matching
// parse_setting_from_defs's fallthrough in the original.
func ApplySetting(defs []SettingDef, key, value string) error {
	for _, def := range defs {
		if def.Name != key {
			continue
		}
		switch def.Kind {
		case KindString:
			def.setStr(value)
			return nil
		case KindUint:
			n, err := ParseUint(value)
			if err != nil {
				return err
			}
			def.setUint(n)
			return nil
		case KindBool:
			b, err := ParseBool(value)
			if err != nil {
				return err
			}
			def.setBool(b)
			return nil
		}
	}
	return fmt.Errorf("Unknown setting: %s", key)
}
