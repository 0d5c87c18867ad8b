// Package canon converts an ordered list of typed parameter values into a single
// deterministic string, suitable for keyed hashing: each parameter is formatted by a
// fixed per-type rule and the results are joined with newlines, so that two
// independent implementations (e.g. a client-side signer and a server-side verifier)
// produce byte-identical output for the same logical input. Parameters are
// constructed through an explicit, closed set of variants rather than inferred from
// runtime types, so the formatting rule applied to each value is visible at the call
// site.
package canon
