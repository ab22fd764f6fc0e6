package main

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/nixpig/worker/internal/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthgrpc "google.golang.org/grpc/health/grpc_health_v1"
	reflectionv1 "google.golang.org/grpc/reflection/grpc_reflection_v1"
	reflectionv1alpha "google.golang.org/grpc/reflection/grpc_reflection_v1alpha"
	"google.golang.org/grpc/status"
)

// unauthorisedServices may be called by any client with a verified
// certificate.
var unauthorisedServices = []string{
	healthgrpc.Health_ServiceDesc.ServiceName,
	reflectionv1.ServerReflection_ServiceDesc.ServiceName,
	reflectionv1alpha.ServerReflection_ServiceDesc.ServiceName,
}

func isUnauthorisedMethod(method string) bool {
	return slices.ContainsFunc(unauthorisedServices, func(service string) bool {
		return strings.HasPrefix(method, "/"+service+"/")
	})
}

// authorise checks the client calling method is allowed to and returns a
// context carrying its principal.
func authorise(
	ctx context.Context,
	method string,
	logger *slog.Logger,
) (context.Context, error) {
	if isUnauthorisedMethod(method) {
		return ctx, nil
	}

	cn, err := auth.Authorise(ctx, method)
	if err != nil {
		if errors.Is(err, auth.ErrNoIdentity) ||
			errors.Is(err, auth.ErrNoPrincipal) {
			logger.Warn("failed to get client identity", "method", method, "err", err)
			return nil, status.Error(codes.Unauthenticated, "not authenticated")
		}

		logger.Warn("failed to authorise client", "method", method, "err", err)
		return nil, status.Error(codes.PermissionDenied, "not authorised")
	}

	logger.Debug("authorised client request", "cn", cn, "method", method)

	return auth.WithPrincipal(ctx, cn), nil
}

func authUnaryInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		ctx, err := authorise(ctx, info.FullMethod, logger)
		if err != nil {
			return nil, err
		}

		return handler(ctx, req)
	}
}

func authStreamInterceptor(logger *slog.Logger) grpc.StreamServerInterceptor {
	return func(
		srv any,
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		ctx, err := authorise(ss.Context(), info.FullMethod, logger)
		if err != nil {
			return err
		}

		return handler(srv, &authorisedStream{ServerStream: ss, ctx: ctx})
	}
}

// authorisedStream overrides the context of a grpc.ServerStream with one
// carrying the client's principal.
type authorisedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authorisedStream) Context() context.Context {
	return s.ctx
}

// principal returns the principal stored in ctx by the auth interceptors.
func principal(ctx context.Context) (string, error) {
	p, ok := auth.PrincipalFromContext(ctx)
	if !ok {
		return "", errors.New("no principal in context")
	}

	return p, nil
}

// contextCheckUnaryInterceptor rejects requests with a cancelled context.
func contextCheckUnaryInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {
	if ctx.Err() != nil {
		return nil, status.FromContextError(ctx.Err()).Err()
	}

	return handler(ctx, req)
}

// contextCheckStreamInterceptor rejects streams with a cancelled context.
func contextCheckStreamInterceptor(
	srv any,
	ss grpc.ServerStream,
	info *grpc.StreamServerInfo,
	handler grpc.StreamHandler,
) error {
	if ss.Context().Err() != nil {
		return status.FromContextError(ss.Context().Err()).Err()
	}

	return handler(srv, ss)
}
