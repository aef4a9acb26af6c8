// Package openapi hosts the kin-openapi backed implementation behind
// pkg/openapi.
package openapi
