package validators

import "testing"

func TestEmailDomain(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ann@example.com", "example.com"},
		{"Ann@EXAMPLE.COM", "example.com"},
		{"weird@name@example.com", "example.com"},
		{"no-at-sign", ""},
		{"trailing@", ""},
	}

	for _, tc := range cases {
		if got := EmailDomain(tc.in); got != tc.want {
			t.Errorf("EmailDomain(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDomainAllowed(t *testing.T) {
	cases := []struct {
		email       string
		restriction string
		want        bool
	}{
		{"ann@example.com", "example.com", true},
		{"ann@example.com", "@example.com", true},
		{"ann@example.com", " other.com , example.com ", true},
		{"ann@EXAMPLE.com", "example.COM", true},
		{"ann@elsewhere.com", "example.com", false},
		{"ann@example.com.evil.com", "example.com", false},
		{"no-at-sign", "example.com", false},
		{"ann@example.com", "", false},
	}

	for _, tc := range cases {
		if got := DomainAllowed(tc.email, tc.restriction); got != tc.want {
			t.Errorf("DomainAllowed(%q, %q) = %v, want %v", tc.email, tc.restriction, got, tc.want)
		}
	}
}
