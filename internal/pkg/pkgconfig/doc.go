// Package pkgconfig reads application configuration from a file with
// environment variable overrides.
//
// Callers depend on the Config interface rather than on a concrete source,
// so tests can substitute fixed values and the backing format stays
// swappable. The shipped implementation wraps Viper.
package pkgconfig
