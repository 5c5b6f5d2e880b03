// Package config defines the format-agnostic settings model for a sheet
// session, along with the Loader interface for reading settings from a
// file.
//
// The `config.Model` only records what a file actually sets; zero values
// mean "not set" and are filled in by the app package, which merges file
// settings under command-line flags and applies defaults. Concrete loaders,
// such as the HCL one, live in separate packages.
package config
