package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nixpig/worker/internal/jobmanager"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type config struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	CertPath     string        `yaml:"cert_path"`
	KeyPath      string        `yaml:"key_path"`
	CACertPath   string        `yaml:"ca_cert_path"`
	OutputDir    string        `yaml:"output_dir"`
	HealthAddr   string        `yaml:"health_addr"`
	PollInterval time.Duration `yaml:"poll_interval"`
	Debug        bool          `yaml:"debug"`
}

func defaultConfig() *config {
	return &config{
		Host:         "localhost",
		Port:         8443,
		CertPath:     "certs/server.crt",
		KeyPath:      "certs/server.key",
		CACertPath:   "certs/ca.crt",
		OutputDir:    ".",
		PollInterval: 100 * time.Millisecond,
	}
}

// bindFlags binds flags on fs to the fields of c, using the current values of
// c as defaults.
func (c *config) bindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Host, "host", c.Host, "gRPC server host to bind")
	fs.IntVar(&c.Port, "port", c.Port, "gRPC server port")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Enable debug logs")

	fs.StringVar(
		&c.CertPath,
		"cert-path",
		c.CertPath,
		"Path to server TLS certificate",
	)

	fs.StringVar(
		&c.KeyPath,
		"key-path",
		c.KeyPath,
		"Path to server TLS private key",
	)

	fs.StringVar(
		&c.CACertPath,
		"ca-cert-path",
		c.CACertPath,
		"Path to CA certificate for mTLS",
	)

	fs.StringVar(
		&c.OutputDir,
		"output-dir",
		c.OutputDir,
		"Directory to write job output files to",
	)

	fs.StringVar(
		&c.HealthAddr,
		"health-addr",
		c.HealthAddr,
		"Address for the HTTP health endpoint (disabled if empty)",
	)

	fs.DurationVar(
		&c.PollInterval,
		"poll-interval",
		c.PollInterval,
		"Interval between checks for new job output",
	)
}

// load reads the YAML config file at path into c. Flags explicitly set on fs
// take precedence over values in the file.
func (c *config) load(path string, fs *pflag.FlagSet) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	changed := make(map[string]string)
	fs.Visit(func(f *pflag.Flag) {
		changed[f.Name] = f.Value.String()
	})

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config file: %w", err)
	}

	for name, value := range changed {
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("reapply flag '%s': %w", name, err)
		}
	}

	return nil
}

func (c *config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.New("port must be in valid range")
	}

	if c.CertPath == "" {
		return errors.New("cert-path cannot be empty")
	}

	if _, err := os.Stat(c.CertPath); err != nil {
		return fmt.Errorf("failed to stat cert-path: %w", err)
	}

	if c.KeyPath == "" {
		return errors.New("key-path cannot be empty")
	}

	if _, err := os.Stat(c.KeyPath); err != nil {
		return fmt.Errorf("failed to stat key-path: %w", err)
	}

	if c.CACertPath == "" {
		return errors.New("ca-cert-path cannot be empty")
	}

	if _, err := os.Stat(c.CACertPath); err != nil {
		return fmt.Errorf("failed to stat ca-cert-path: %w", err)
	}

	if err := jobmanager.ValidateOutputDir(c.OutputDir); err != nil {
		return fmt.Errorf("invalid output-dir: %w", err)
	}

	if c.PollInterval <= 0 {
		return errors.New("poll-interval must be positive")
	}

	return nil
}
