// Package hcl_adapter provides the HCL implementation of the config.Loader
// interface. Documents in JSON are read through HCL's JSON syntax, and
// documents ending in .hcl through the native syntax; both decode into the
// same model. Attribute values are bound to Go types with go-cty.
package hcl_adapter
