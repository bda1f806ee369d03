package helpers

import (
	"net"
	"strings"
)

// DefaultPort is the KMS service port.
const DefaultPort = "1688"

// ParseAddress splits "host:port", "[ipv6]:port", a bare host or a bare IPv6
// address. A missing port yields DefaultPort.
func ParseAddress(addr string) (host, port string) {
	if h, p, err := net.SplitHostPort(addr); err == nil {
		if p == "" {
			p = DefaultPort
		}
		return h, p
	}
	host = strings.TrimSuffix(strings.TrimPrefix(addr, "["), "]")
	return host, DefaultPort
}
