// Package sig implements the shared-secret signing primitive used to authenticate
// requests between services: the sender canonicalizes an ordered list of parameters
// (see package canon), computes an HMAC digest over the canonical string using a
// secret shared with the receiver, and transmits the base64-encoded digest alongside
// the request as an auth code. The receiver recomputes the code from the same
// parameters and its own copy of the secret, proving that the request was produced
// by a party holding the secret and that the covered parameters were not tampered
// with in transit (while refraining from sending the secret itself over the wire).
//
// HMAC-SHA1 is used for byte-for-byte compatibility with the counterpart signers
// already deployed on the other side of the trust boundary; it is used strictly as a
// MAC, not for collision resistance.
package sig
