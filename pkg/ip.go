package pkg

import (
	"fmt"
	"net"
	"net/http"
)

func ReadUserIP(r *http.Request) (string, error) {
	ipAddr := r.Header.Get("X-Real-Ip")
	if ipAddr == "" {
		ipAddr = r.Header.Get("X-Forwarded-For")
	}
	if ipAddr == "" {
		ipAddr = r.RemoteAddr
	}

	if ipAddr == "" {
		return "", fmt.Errorf("failed to get user IP address")
	}

	// remote addr usually comes with the port attached
	if host, _, err := net.SplitHostPort(ipAddr); err == nil {
		return host, nil
	}

	return ipAddr, nil
}
