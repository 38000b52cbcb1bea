// Package catalog defines the static list of local services whose
// reachability LocalTap tries to infer. A catalog is an immutable,
// port-deduplicated set of service records built once at process start.
package catalog
