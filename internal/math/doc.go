// Package vecmath holds the small amount of vector algebra and interpolation
// the noise field is built from.
package vecmath
