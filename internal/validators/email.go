package validators

import "strings"

// EmailDomain returns the lowercased portion after the last '@', or "" when
// the address has no usable domain.
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}

// DomainAllowed reports whether the email's domain is in the comma-separated
// allow-list. Entries may carry a leading '@' and surrounding whitespace;
// matching is case-insensitive.
func DomainAllowed(email, restriction string) bool {
	domain := EmailDomain(email)
	if domain == "" {
		return false
	}

	for _, entry := range strings.Split(restriction, ",") {
		entry = strings.ToLower(strings.TrimSpace(entry))
		entry = strings.TrimPrefix(entry, "@")
		if entry != "" && entry == domain {
			return true
		}
	}
	return false
}
