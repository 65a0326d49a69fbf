// Package resource bounds the memory and IO bandwidth used by catalog
// operations.
package resource
