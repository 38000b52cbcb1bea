// Package config holds runtime configuration for localtap.
package config
