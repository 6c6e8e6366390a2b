package extra

import (
	"net"
	"net/netip"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/dmitrymomot/facile/pkg/validator"
)

var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)

// URL passes for an absolute URL with a host. Arguments restrict the
// scheme: "url:https" or "url:http,https".
func URL(value, args string) error {
	u, err := url.ParseRequestURI(strings.TrimSpace(value))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return validator.Invalid(CauseURL)
	}
	if schemes := validator.SplitArgs(args); len(schemes) > 0 && !slices.Contains(schemes, u.Scheme) {
		return validator.Invalid(CauseURL)
	}
	return nil
}

// IP passes for an IPv4 or IPv6 address.
func IP(value, _ string) error {
	if _, err := netip.ParseAddr(value); err != nil {
		return validator.Invalid(CauseIP)
	}
	return nil
}

// IPv4 passes for a dotted-quad IPv4 address.
func IPv4(value, _ string) error {
	addr, err := netip.ParseAddr(value)
	if err != nil || !addr.Is4() {
		return validator.Invalid(CauseIPv4)
	}
	return nil
}

// IPv6 passes for an IPv6 address, including IPv4-mapped ones.
func IPv6(value, _ string) error {
	addr, err := netip.ParseAddr(value)
	if err != nil || !addr.Is6() {
		return validator.Invalid(CauseIPv6)
	}
	return nil
}

// MAC passes for a hardware address in any format net.ParseMAC accepts.
func MAC(value, _ string) error {
	if _, err := net.ParseMAC(value); err != nil {
		return validator.Invalid(CauseMAC)
	}
	return nil
}

// Phone passes for an E.164 number. Spaces and dashes are ignored.
func Phone(value, _ string) error {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(value)
	if phoneRegex.MatchString(cleaned) {
		return nil
	}
	return validator.Invalid(CausePhone)
}
