// Package runtime is the support library compiled HiLow programs link
// against. The HiLow compiler lowers dynamic arrays, string operations,
// closures, and defer blocks into calls on the types here; the package
// preserves the observable behavior of those constructs (element ordering,
// capture visibility, exit-path coverage) without the manual memory
// management of the original C target. Everything is single-threaded:
// sequences, environments, and defer scopes have one owning scope at a time
// and are not safe for concurrent mutation.
package runtime
