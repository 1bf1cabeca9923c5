// Package algebra defines how transducer outputs are factored and merged
// while a minimal FST is built.
//
// What:
//
//   - Output[T]: an optional output value. Absence ("no output") is a
//     distinct value and is never equal to a present zero value.
//   - Algebra[T]: the four factoring operations (Default, Prefix, Concat,
//     Subtract) plus the Identity[T] hooks (Equal, AppendKey) used to
//     compare and fingerprint outputs inside canonical states.
//   - Bytes: byte-sequence outputs; Prefix is the longest common prefix,
//     Concat is concatenation, Subtract drops a known prefix.
//   - Scalar[T]: atomic integer outputs; values can only be shared when they
//     are equal, they are never split.
//
// Laws:
//
//   - Bytes satisfies Concat(p, Subtract(a, p)) == a for p = Prefix(a, b):
//     the shared prefix followed by the remainder rebuilds the original.
//   - Scalar satisfies sharing by equality only. When two different values
//     compete for one transition the earlier one is kept and the later one
//     is dropped. Callers that need exact per-key integers should encode
//     them as bytes and use Bytes.
//
// Custom algebras are accepted as-is. A custom algebra that breaks its own
// round-trip law yields a structurally valid but semantically wrong FST;
// nothing checks this at runtime.
package algebra
