// Package httpsig attaches the shared-secret signing primitive (see package sig) to
// HTTP requests: when an internal service needs to authenticate itself against
// another, it's configured with a shared secret, and it uses httpsig.Signer.Sign()
// to stamp an auth code (along with the request ID and timestamp it covers) onto the
// request as headers. The receiving service uses the same secret to recompute the
// code via httpsig.Verifier.Verify(), thereby proving that the request originated
// from a service with access to the shared secret and that the covered values were
// not altered in transit.
package httpsig
