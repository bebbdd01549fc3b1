// Package aliases provides a thread-safe registry that maps alternate
// names onto canonical names, including transitive chains of
// aliases-of-aliases. It guards the mapping against circular references
// and supports a bulk resolution pass that rewrites every stored name
// through a caller-supplied transformer.
package aliases
