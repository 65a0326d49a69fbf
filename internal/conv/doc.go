// Package conv provides checked integer conversions for on-disk headers.
//
// Archive headers store counts and lengths as fixed-width unsigned integers;
// these helpers reject values that would silently wrap when encoded, and
// values read from untrusted data that do not fit the platform int.
package conv
