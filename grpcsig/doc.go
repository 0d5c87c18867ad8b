// Package grpcsig attaches the shared-secret signing primitive (see package sig) to
// unary gRPC calls, mirroring package httpsig: a client interceptor stamps each
// outgoing call with request ID, timestamp, and auth code metadata, and a server
// interceptor rejects any incoming call whose metadata is missing or fails
// verification. The auth code covers the request ID, the timestamp, and the full
// gRPC method name.
package grpcsig
