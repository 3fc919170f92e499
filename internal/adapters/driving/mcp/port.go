package mcp

import (
	"fmt"
	"net"
)

// Port range scanned when the HTTP transport is requested without a port.
const (
	DefaultPortStart = 8080
	DefaultPortEnd   = 8099
)

// FindAvailablePort returns the first port in [startPort, endPort] that
// can be bound on localhost.
func FindAvailablePort(startPort, endPort int) (int, error) {
	for port := startPort; port <= endPort; port++ {
		addr := fmt.Sprintf("127.0.0.1:%d", port)
		listener, err := net.Listen("tcp", addr)
		if err == nil {
			listener.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port in range %d-%d", startPort, endPort)
}
