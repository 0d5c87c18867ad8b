package grpcsig

import (
	"context"
	"time"

	"github.com/golden-vcr/signing-common/canon"
	"google.golang.org/grpc/metadata"
)

const (
	// MetadataRequestId is the metadata key that carries a unique ID generated for a
	// signed call
	MetadataRequestId = "x-sig-request-id"

	// MetadataTimestamp is the metadata key that carries an RFC3339 timestamp
	// indicating when the call was made
	MetadataTimestamp = "x-sig-timestamp"

	// MetadataCode is the metadata key that carries the auth code computed over the
	// request ID, timestamp, and full method name
	MetadataCode = "x-sig-code"
)

// callParams builds the canonical parameter sequence covered by a call signature:
// the request ID, the call timestamp, and the full gRPC method name, in that order.
// Client and server interceptors must agree on this sequence exactly.
func callParams(requestId string, timestamp time.Time, fullMethod string) []canon.Param {
	return []canon.Param{
		canon.Text(requestId),
		canon.Instant(timestamp),
		canon.Text(fullMethod),
	}
}

// incomingValue reads the first value for the given metadata key from an incoming
// call's context, or returns an empty string if the key is absent
func incomingValue(ctx context.Context, key string) string {
	if values := metadata.ValueFromIncomingContext(ctx, key); len(values) > 0 {
		return values[0]
	}
	return ""
}
