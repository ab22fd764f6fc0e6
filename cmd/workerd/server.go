package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"

	"github.com/google/uuid"
	api "github.com/nixpig/worker/api/v1"
	"github.com/nixpig/worker/internal/jobmanager"
	"github.com/nixpig/worker/internal/tlsconfig"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthgrpc "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

const (
	// streamBufferSize is the buffer size for reading job output.
	// 4KB aligns with typical pipe buffer sizes.
	streamBufferSize = 4096
)

type server struct {
	api.UnimplementedJobServiceServer

	manager    *jobmanager.Manager
	logger     *slog.Logger
	cfg        *config
	grpcServer *grpc.Server
	health     *health.Server
}

func newServer(
	manager *jobmanager.Manager,
	logger *slog.Logger,
	cfg *config,
) *server {
	return &server{
		manager: manager,
		logger:  logger,
		cfg:     cfg,
		health:  health.NewServer(),
	}
}

// init sets up the gRPC server. It must be called before start or shutdown.
func (s *server) init() error {
	tlsCreds, err := s.loadTLSCreds()
	if err != nil {
		return fmt.Errorf("load TLS credentials: %w", err)
	}

	s.grpcServer = grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			contextCheckUnaryInterceptor,
			authUnaryInterceptor(s.logger),
		),
		grpc.ChainStreamInterceptor(
			contextCheckStreamInterceptor,
			authStreamInterceptor(s.logger),
		),
		grpc.Creds(tlsCreds),
	)

	api.RegisterJobServiceServer(s.grpcServer, s)
	healthgrpc.RegisterHealthServer(s.grpcServer, s.health)
	reflection.Register(s.grpcServer)

	s.health.SetServingStatus("", healthgrpc.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(
		api.JobService_ServiceDesc.ServiceName,
		healthgrpc.HealthCheckResponse_SERVING,
	)

	return nil
}

// start serves gRPC on listener until shutdown is called.
func (s *server) start(listener net.Listener) error {
	s.logger.Info("starting server", "addr", listener.Addr().String())

	return s.grpcServer.Serve(listener)
}

func (s *server) shutdown() {
	s.health.Shutdown()

	if s.grpcServer != nil {
		s.grpcServer.GracefulStop()
	}
}

func (s *server) CreateJob(
	ctx context.Context,
	req *api.CreateJobRequest,
) (*api.CreateJobResponse, error) {
	owner, err := principal(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "not authenticated")
	}

	id := req.Id
	if id == "" {
		id = uuid.NewString()
	} else if _, err := uuid.Parse(id); err != nil {
		return nil, status.Error(codes.InvalidArgument, "id is not a valid UUID")
	}

	if err := s.manager.RunJob(id, owner, req.CommandLine); err != nil {
		return nil, s.mapError("create job", err)
	}

	s.logger.Info(
		"created job",
		"id", id,
		"owner", owner,
		"command", req.GetCommandLine(),
	)

	return &api.CreateJobResponse{Id: id}, nil
}

func (s *server) StopJob(
	ctx context.Context,
	req *api.StopJobRequest,
) (*api.StopJobResponse, error) {
	owner, err := principal(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "not authenticated")
	}

	if err := validateID(req.Id); err != nil {
		return nil, err
	}

	if err := s.manager.StopJob(req.Id, owner); err != nil {
		return nil, s.mapError("stop job", err)
	}

	return &api.StopJobResponse{}, nil
}

func (s *server) QueryJob(
	ctx context.Context,
	req *api.QueryJobRequest,
) (*api.QueryJobResponse, error) {
	owner, err := principal(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "not authenticated")
	}

	if err := validateID(req.Id); err != nil {
		return nil, err
	}

	jobStatus, err := s.manager.QueryJob(req.Id, owner)
	if err != nil {
		return nil, s.mapError("query job", err)
	}

	signal := ""
	if jobStatus.Signal != 0 {
		signal = jobStatus.Signal.String()
	}

	return &api.QueryJobResponse{
		State:     api.JobState(jobStatus.State),
		ExitCode:  int32(jobStatus.ExitCode),
		Signal:    signal,
		Succeeded: jobStatus.Succeeded(),
	}, nil
}

func (s *server) StreamJobOutput(
	req *api.StreamJobOutputRequest,
	stream api.JobService_StreamJobOutputServer,
) error {
	owner, err := principal(stream.Context())
	if err != nil {
		return status.Error(codes.Unauthenticated, "not authenticated")
	}

	if err := validateID(req.Id); err != nil {
		return err
	}

	outputReader, err := s.manager.StreamJobOutput(
		stream.Context(),
		req.Id,
		owner,
	)
	if err != nil {
		return s.mapError("output stream", err)
	}

	defer func() {
		if err := outputReader.Close(); err != nil {
			s.logger.Warn("close output reader", "id", req.Id, "err", err)
		}
	}()

	buf := make([]byte, streamBufferSize)
	for {
		n, err := outputReader.Read(buf)
		if n > 0 {
			if err := stream.Send(&api.StreamJobOutputResponse{
				Output: buf[:n],
			}); err != nil {
				s.logger.Warn("stream data to client", "id", req.Id, "err", err)
				return status.Error(codes.DataLoss, "failed to stream data")
			}
		}
		if err != nil {
			if err == io.EOF {
				break
			}

			return s.mapError("read job output stream", err)
		}
	}

	return nil
}

func (s *server) DeleteJob(
	ctx context.Context,
	req *api.DeleteJobRequest,
) (*api.DeleteJobResponse, error) {
	owner, err := principal(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "not authenticated")
	}

	if err := validateID(req.Id); err != nil {
		return nil, err
	}

	if err := s.manager.RemoveJob(req.Id, owner); err != nil {
		return nil, s.mapError("delete job", err)
	}

	s.logger.Info("deleted job", "id", req.Id, "owner", owner)

	return &api.DeleteJobResponse{}, nil
}

func validateID(id string) error {
	if id == "" {
		return status.Error(codes.InvalidArgument, "id is empty")
	}

	if _, err := uuid.Parse(id); err != nil {
		return status.Error(codes.InvalidArgument, "id is not a valid UUID")
	}

	return nil
}

// mapError translates jobmanager errors to gRPC errors.
func (s *server) mapError(logMsg string, err error) error {
	switch {
	case errors.Is(err, jobmanager.ErrJobNotFound):
		s.logger.Warn(logMsg, "err", err)
		return status.Error(codes.NotFound, err.Error())

	case errors.Is(err, jobmanager.ErrJobExists):
		s.logger.Warn(logMsg, "err", err)
		return status.Error(codes.AlreadyExists, err.Error())

	case errors.Is(err, jobmanager.ErrUnauthorized):
		s.logger.Warn(logMsg, "err", err)
		return status.Error(codes.PermissionDenied, "not authorised")

	case errors.Is(err, jobmanager.ErrInvalidCommand),
		errors.Is(err, jobmanager.ErrCommandNotFound),
		errors.Is(err, jobmanager.ErrInvalidID):
		s.logger.Warn(logMsg, "err", err)
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, jobmanager.ErrJobInProgress):
		s.logger.Warn(logMsg, "err", err)
		return status.Error(codes.FailedPrecondition, err.Error())

	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		s.logger.Debug(logMsg, "err", err)
		return status.FromContextError(err).Err()

	default:
		s.logger.Error(logMsg, "err", err)
		return status.Error(codes.Internal, "internal server error")
	}
}

// loadTLSCreds creates the gRPC transport credentials with mTLS enabled.
func (s *server) loadTLSCreds() (credentials.TransportCredentials, error) {
	tlsConfig, err := tlsconfig.SetupTLS(&tlsconfig.Config{
		CertPath:   s.cfg.CertPath,
		KeyPath:    s.cfg.KeyPath,
		CACertPath: s.cfg.CACertPath,
		Server:     true,
	})
	if err != nil {
		return nil, err
	}

	return credentials.NewTLS(tlsConfig), nil
}
