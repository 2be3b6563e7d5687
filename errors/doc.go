// Package errors provides standardized error handling patterns for nano-cache.
//
// # Overview
//
// The errors package implements a three-class error classification system:
// Transient (temporary, retryable), Invalid (bad input or data,
// non-retryable), and Fatal (unrecoverable, stop processing).
//
// The cache itself never retries: every codec failure (encode, decode,
// compress, decompress) is classified Invalid and surfaced synchronously
// from the operation that triggered it. The classification exists so that
// callers embedding the cache in larger systems can make uniform retry and
// escalation decisions without matching on error strings.
//
// # Quick Start
//
// Use standard error variables for known conditions:
//
//	if key == "" {
//	    return errors.ErrEmptyKey
//	}
//
// Wrap errors with component context:
//
//	if err := serializer.Encode(value); err != nil {
//	    return errors.WrapInvalid(err, "Cache", "Set", "encode value")
//	}
//
// Check classification:
//
//	if errors.IsInvalid(err) {
//	    // bad data, do not retry; delete or overwrite the entry instead
//	}
//
// The system integrates with Go's standard error handling: ClassifiedError
// supports errors.Is, errors.As, and wrapping chains, so sentinel checks
// like errors.Is(err, errors.ErrDecodeFailed) work through any number of
// Wrap* layers.
package errors
