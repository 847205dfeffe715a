// Package config defines the format-agnostic configuration model for a
// render pipeline, along with the Loader interface for producing it from
// configuration files.
//
// The config.Pipeline is the single input of the graph builder. Concrete
// loader implementations, such as for HCL, live in separate packages.
package config
