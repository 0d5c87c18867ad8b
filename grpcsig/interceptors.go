package grpcsig

import (
	"context"
	"time"

	"github.com/golden-vcr/signing-common/sig"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// SigningUnaryClientInterceptor returns a client interceptor that signs every
// outgoing unary call: a unique request ID and the current timestamp are attached as
// metadata, along with the auth code computed over them and the method name
func SigningUnaryClientInterceptor(s sig.Signer) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		requestId := uuid.NewString()
		timestamp := time.Now().UTC()

		code, err := s.Sign(callParams(requestId, timestamp, method))
		if err != nil {
			return status.Errorf(codes.Internal, "failed to sign call: %v", err)
		}

		ctx = metadata.AppendToOutgoingContext(ctx,
			MetadataRequestId, requestId,
			MetadataTimestamp, timestamp.Format(time.RFC3339),
			MetadataCode, code,
		)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// RequireSignature returns a server interceptor that rejects any incoming unary
// call whose signature metadata is missing or fails verification, responding with
// codes.Unauthenticated in either case
func RequireSignature(v sig.Verifier) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestId := incomingValue(ctx, MetadataRequestId)
		timestampValue := incomingValue(ctx, MetadataTimestamp)
		code := incomingValue(ctx, MetadataCode)
		if requestId == "" || timestampValue == "" || code == "" {
			return nil, status.Error(codes.Unauthenticated, "call is not signed")
		}

		timestamp, err := time.Parse(time.RFC3339, timestampValue)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "call has a malformed timestamp")
		}

		if err := v.Verify(code, callParams(requestId, timestamp, info.FullMethod)); err != nil {
			return nil, status.Error(codes.Unauthenticated, "signature verification failed")
		}
		return handler(ctx, req)
	}
}
