package confparse

import (
	"os"
	"testing"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("CONFPARSE_TEST_VAR", "hello")
	t.Setenv("CONFPARSE_TEST_OTHER", "world")

	cases := []struct {
		name  string
		value string
		want  string
	}{
		{"no dollar", "plain value", "plain value"},
		{"leading", "$ENV:CONFPARSE_TEST_VAR", "hello"},
		{"after whitespace", "prefix $ENV:CONFPARSE_TEST_VAR suffix", "prefix hello suffix"},
		{"two vars", "$ENV:CONFPARSE_TEST_VAR $ENV:CONFPARSE_TEST_OTHER", "hello world"},
		{"not at boundary", "x$ENV:CONFPARSE_TEST_VAR", "x$ENV:CONFPARSE_TEST_VAR"},
		{"unmatched name", "$ENV:CONFPARSE_TEST_DOES_NOT_EXIST", ""},
		{"bare dollar", "price: $5", "price: $5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ExpandEnv(c.value); got != c.want {
				t.Errorf("ExpandEnv(%q) = %q, want %q", c.value, got, c.want)
			}
		})
	}
}

func TestExpandEnvUnset(t *testing.T) {
	os.Unsetenv("CONFPARSE_TEST_UNSET")
	if got := ExpandEnv("$ENV:CONFPARSE_TEST_UNSET"); got != "" {
		t.Errorf("ExpandEnv of unset var = %q, want empty string", got)
	}
}
