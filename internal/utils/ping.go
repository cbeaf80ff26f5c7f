package utils

import (
	"fmt"
	"net"
	"net/url"
	"time"
)

// AuthorizerPingTimeout bounds the health route's reachability probe of the auth server
const AuthorizerPingTimeout = 1500 * time.Millisecond

// dialAddress returns host:port for a service URL, filling the scheme's default port
func dialAddress(serviceURL string) (string, error) {
	u, err := url.Parse(serviceURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("invalid URL: %q has no host", serviceURL)
	}

	port := u.Port()
	switch {
	case port != "":
	case u.Scheme == "https":
		port = "443"
	default:
		port = "80"
	}
	return net.JoinHostPort(u.Hostname(), port), nil
}

// PingService reports whether a TCP connection to the host of serviceURL opens within timeout
func PingService(serviceURL string, timeout time.Duration) error {
	address, err := dialAddress(serviceURL)
	if err != nil {
		return err
	}

	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return fmt.Errorf("%s unreachable: %w", address, err)
	}
	return conn.Close()
}

// PingAuthorizer checks that the Authorizer accepts connections
func PingAuthorizer(authzURL string) error {
	return PingService(authzURL, AuthorizerPingTimeout)
}
