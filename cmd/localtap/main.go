// Package main provides the entry point for the localtap CLI.
//
// LocalTap audits the attack surface a machine exposes on loopback:
// it probes the conventional ports of developer tools, AI stacks, and
// local infrastructure and reports which services are reachable.
//
// Usage:
//
//	localtap scan
//	localtap serve
//
// See --help for all available options.
package main

// main is the entry point for localtap.
func main() {
	Execute()
}
