package server

import "strings"

// Addr normalizes the listen address. Accepts either "8080" or ":8080".
func Addr(port string) string {
	port = strings.TrimSpace(port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}
