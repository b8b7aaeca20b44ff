package services

import (
	"fmt"
	"net"
	"strconv"
)

// Port range scanned when the MCP server is asked for HTTP without a port.
const (
	DefaultMCPPortStart = 18620
	DefaultMCPPortEnd   = 18640
)

// FindAvailablePort returns the first port in [startPort, endPort] that can be
// bound on the loopback interface.
func FindAvailablePort(startPort, endPort int) (int, error) {
	if startPort <= 0 || endPort < startPort {
		return 0, fmt.Errorf("invalid port range %d-%d", startPort, endPort)
	}
	for port := startPort; port <= endPort; port++ {
		listener, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
		if err == nil {
			listener.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port in range %d-%d", startPort, endPort)
}
