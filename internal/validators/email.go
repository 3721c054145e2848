package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// DomainChecker reports whether an email's domain can receive mail.
type DomainChecker func(ctx context.Context, email string) bool

// IsEmailDomainValid accepts a domain with an MX record, or failing that any
// address record.
func IsEmailDomainValid(ctx context.Context, email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if mx, err := net.DefaultResolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.DefaultResolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

// AnyDomain skips the DNS lookup.
func AnyDomain(context.Context, string) bool { return true }
