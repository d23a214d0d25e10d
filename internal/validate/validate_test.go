package validate

import (
	"strings"
	"testing"
)

func TestAccount(t *testing.T) {
	cases := []struct {
		name    string
		login   string
		pw      string
		display string
		ok      bool
	}{
		{"valid", "maria", "123", "Maria Silva", true},
		{"empty display name allowed", "maria", "123", "", true},
		{"empty login", "", "123", "Maria", false},
		{"empty password", "maria", "", "Maria", false},
		{"reserved login prefix", "@flock", "123", "Maria", false},
		{"login too long", strings.Repeat("a", MaxLoginLen+1), "123", "x", false},
		{"password too long", "maria", strings.Repeat("p", MaxPasswordLen+1), "x", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Account(c.login, c.pw, c.display)
			if c.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !c.ok && err == nil {
				t.Error("expected an error")
			}
		})
	}
}
