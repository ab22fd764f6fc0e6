package main

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	api "github.com/nixpig/worker/api/v1"
	"github.com/nixpig/worker/internal/tlsconfig"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/status"
)

const version = "0.0.1"

type config struct {
	serverHostname string
	serverPort     string
	caCertPath     string
	certPath       string
	keyPath        string
}

type cli struct {
	client api.JobServiceClient
	conn   *grpc.ClientConn
}

func newCLI() *cli {
	return &cli{}
}

func (c *cli) rootCmd() *cobra.Command {
	cfg := &config{}

	command := &cobra.Command{
		Use:          "workerctl",
		Short:        "CLI for running and managing jobs on a worker server",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Tests inject a client directly.
			if c.client != nil {
				return nil
			}

			tlsConfig, err := tlsconfig.SetupTLS(&tlsconfig.Config{
				CertPath:   cfg.certPath,
				KeyPath:    cfg.keyPath,
				CACertPath: cfg.caCertPath,
				ServerName: cfg.serverHostname,
			})
			if err != nil {
				return err
			}

			c.conn, err = grpc.NewClient(
				net.JoinHostPort(
					cfg.serverHostname,
					cfg.serverPort,
				),
				grpc.WithTransportCredentials(credentials.NewTLS(tlsConfig)),
			)
			if err != nil {
				return err
			}

			c.client = api.NewJobServiceClient(c.conn)

			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.conn == nil {
				return nil
			}

			// Connection needs to remain open for duration of any child commands.
			return c.conn.Close()
		},
	}

	command.AddCommand(
		c.startCmd(),
		c.statusCmd(),
		c.stopCmd(),
		c.outputCmd(),
		c.deleteCmd(),
	)

	command.CompletionOptions.HiddenDefaultCmd = true

	command.PersistentFlags().StringVar(
		&cfg.serverHostname,
		"server-hostname",
		"localhost",
		"Server hostname",
	)

	command.PersistentFlags().StringVar(
		&cfg.serverPort,
		"server-port",
		"8443",
		"Server port",
	)

	command.PersistentFlags().StringVar(
		&cfg.certPath,
		"cert-path",
		"certs/client-operator.crt",
		"Path to client TLS certificate",
	)

	command.PersistentFlags().StringVar(
		&cfg.keyPath,
		"key-path",
		"certs/client-operator.key",
		"Path to client TLS private key",
	)

	command.PersistentFlags().StringVar(
		&cfg.caCertPath,
		"ca-cert-path",
		"certs/ca.crt",
		"Path to CA certificate for mTLS",
	)

	return command
}

func (c *cli) startCmd() *cobra.Command {
	var id string

	command := &cobra.Command{
		Use:     "start [flags] PROGRAM [ARGS]",
		Short:   "Start a new job",
		Example: "  workerctl start tail -f server.log",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if id != "" {
				if _, err := uuid.Parse(id); err != nil {
					return fmt.Errorf("id is not a valid UUID: %w", err)
				}
			}

			resp, err := c.client.CreateJob(
				cmd.Context(),
				&api.CreateJobRequest{
					Id:          id,
					CommandLine: commandLine(args),
				},
			)
			if err != nil {
				return mapError(err)
			}

			cmd.OutOrStdout().Write([]byte(resp.Id + "\n"))

			return nil
		},
	}

	command.Flags().StringVar(
		&id,
		"id",
		"",
		"UUID to identify the job (generated by the server if empty)",
	)

	// Stop parsing args after first position so that flags passed to the program
	// to run are not interpreted by the workerctl CLI and are passed as-is,
	// e.g. `-f` is an argument to `tail` _not_ to `workerctl start`:
	//	`workerctl start tail -f server.log`
	command.Flags().SetInterspersed(false)

	return command
}

func (c *cli) statusCmd() *cobra.Command {
	command := &cobra.Command{
		Use:     "status [flags] JOB_ID",
		Short:   "Query status of job",
		Example: "  workerctl status 9302033c-f8f7-4b6e-9363-a7aa201cce1b",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.QueryJob(
				cmd.Context(),
				&api.QueryJobRequest{Id: args[0]},
			)
			if err != nil {
				return mapError(err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			fmt.Fprintf(w, "STATE\tEXIT CODE\tSIGNAL\tSUCCEEDED\t\n")
			fmt.Fprintf(
				w,
				"%s\t%d\t%s\t%t\t\n",
				mapState(resp.State),
				resp.ExitCode,
				resp.Signal,
				resp.Succeeded,
			)

			w.Flush()

			return nil
		},
	}

	return command
}

func (c *cli) stopCmd() *cobra.Command {
	command := &cobra.Command{
		Use:     "stop [flags] JOB_ID",
		Short:   "Stop a running job",
		Example: "  workerctl stop 9302033c-f8f7-4b6e-9363-a7aa201cce1b",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.client.StopJob(
				cmd.Context(),
				&api.StopJobRequest{Id: args[0]},
			); err != nil {
				return mapError(err)
			}

			return nil
		},
	}

	return command
}

func (c *cli) outputCmd() *cobra.Command {
	command := &cobra.Command{
		Use:     "output [flags] JOB_ID",
		Short:   "Stream job output",
		Example: "  workerctl output 9302033c-f8f7-4b6e-9363-a7aa201cce1b",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stream, err := c.client.StreamJobOutput(
				cmd.Context(),
				&api.StreamJobOutputRequest{Id: args[0]},
			)
			if err != nil {
				return mapError(err)
			}

			for {
				resp, err := stream.Recv()
				if err != nil {
					if err == io.EOF {
						break
					}

					if status.Code(err) == codes.Canceled {
						break
					}

					return mapError(err)
				}

				cmd.OutOrStdout().Write(resp.Output)
			}

			return nil
		},
	}

	return command
}

func (c *cli) deleteCmd() *cobra.Command {
	command := &cobra.Command{
		Use:     "delete [flags] JOB_ID",
		Short:   "Delete a finished job and its output",
		Example: "  workerctl delete 9302033c-f8f7-4b6e-9363-a7aa201cce1b",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.client.DeleteJob(
				cmd.Context(),
				&api.DeleteJobRequest{Id: args[0]},
			); err != nil {
				return mapError(err)
			}

			return nil
		},
	}

	return command
}

// commandLine joins the program and its args into the command line the server
// tokenises on whitespace.
func commandLine(args []string) string {
	return strings.Join(args, " ")
}

// mapError translates gRPC errors to human-readable messages.
func mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.NotFound:
		return errors.New("not found")
	case codes.AlreadyExists:
		return errors.New("job with id already exists")
	case codes.PermissionDenied:
		return errors.New("permission denied")
	case codes.Unauthenticated:
		return errors.New("not authenticated")
	case codes.FailedPrecondition:
		return errors.New("job is still in progress")
	case codes.InvalidArgument:
		return fmt.Errorf("%s", st.Message())
	case codes.Unavailable:
		return errors.New("server unavailable")
	default:
		return fmt.Errorf("%s", st.Message())
	}
}

// mapState translates API JobState values to human-readable strings.
func mapState(state api.JobState) string {
	switch state {
	case api.JobState_JOB_STATE_UNSPECIFIED:
		return "Unspecified"
	case api.JobState_JOB_STATE_IN_PROGRESS:
		return "InProgress"
	case api.JobState_JOB_STATE_FAILED:
		return "Failed"
	case api.JobState_JOB_STATE_DONE:
		return "Done"
	default:
		return fmt.Sprintf("Unknown(%d)", state)
	}
}
