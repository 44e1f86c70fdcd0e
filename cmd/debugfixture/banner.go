package main

import (
	"fmt"
	"io"
	"net"
	"strings"

	"debugfixture/internal/static"
)

// bannerBaseURL turns a bound address into a URL an operator can paste.
// Wildcard hosts are shown as localhost.
func bannerBaseURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}

func printBanner(w io.Writer, addr, staticDir string) {
	base := bannerBaseURL(addr)
	rule := "  " + strings.Repeat("=", 60)

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "       debugfixture test server (dynamic)")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  Server: %s\n", base)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Test URLs:")
	fmt.Fprintf(w, "    %-17s%s/\n", "Main page:", base)
	fmt.Fprintf(w, "    %-17s%s/?debug=1\n", "With debug:", base)
	fmt.Fprintf(w, "    %-17s%s/?env=dev\n", "With env:", base)
	fmt.Fprintln(w)
	if staticDir != "" {
		fmt.Fprintf(w, "  Static files: %s\n", staticDir)
	} else {
		fmt.Fprintln(w, "  Sensitive paths (scanners should detect these):")
		for _, a := range static.Advertised() {
			fmt.Fprintf(w, "    %-17s%s\n", a.Path, a.Description)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Press Ctrl+C to stop the server")
	fmt.Fprintln(w)
}
