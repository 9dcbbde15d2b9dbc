package confparse

import "testing"

func TestParseBool(t *testing.T) {
	cases := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"yes", true, false},
		{"YES", true, false},
		{"no", false, false},
		{"No", false, false},
		{"true", false, true},
		{"", false, true},
	}
	for _, c := range cases {
		got, err := ParseBool(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseBool(%q): expected error, got nil", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseBool(%q): unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseBool(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseUint(t *testing.T) {
	cases := []struct {
		in      string
		want    uint64
		wantErr bool
	}{
		{"0", 0, false},
		{"10", 10, false},
		{"0600", 0600, false},
		{"010", 8, false},
		{"0x10", 0, true},
		{"0X10", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got, err := ParseUint(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseUint(%q): expected error, got %v", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseUint(%q): unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseUint(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
