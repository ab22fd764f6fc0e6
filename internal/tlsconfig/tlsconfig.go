// Package tlsconfig builds mutual TLS configurations for the server and its
// clients.
package tlsconfig

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"time"
)

var (
	ErrMissingPath       = errors.New("missing path")
	ErrMissingServerName = errors.New("missing server name")
	ErrCertNotValid      = errors.New("certificate not valid at current time")
)

// Config holds the paths of the certificate, private key and CA certificate
// used to set up mTLS. ServerName is checked against the server's certificate
// by clients and must be set unless Server is true.
type Config struct {
	CertPath   string
	KeyPath    string
	CACertPath string
	ServerName string
	Server     bool
}

func (c *Config) validate() error {
	for name, path := range map[string]string{
		"certificate":    c.CertPath,
		"private key":    c.KeyPath,
		"CA certificate": c.CACertPath,
	} {
		if path == "" {
			return fmt.Errorf("%w: %s", ErrMissingPath, name)
		}
	}

	if !c.Server && c.ServerName == "" {
		return ErrMissingServerName
	}

	return nil
}

// SetupTLS creates a tls.Config requiring TLS 1.3 from config. Servers require
// and verify client certificates signed by the CA. Clients verify the server
// against it.
func SetupTLS(config *Config) (*tls.Config, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	cert, err := loadKeyPair(config.CertPath, config.KeyPath, time.Now())
	if err != nil {
		return nil, err
	}

	pool, err := loadCertPool(config.CACertPath)
	if err != nil {
		return nil, err
	}

	if config.Server {
		return serverConfig(cert, pool), nil
	}

	return clientConfig(cert, pool, config.ServerName), nil
}

// loadKeyPair loads the certificate and key, failing early when the leaf is
// outside its validity period at now instead of at handshake.
func loadKeyPair(certPath, keyPath string, now time.Time) (tls.Certificate, error) {
	cert, err := tls.LoadX509KeyPair(certPath, keyPath)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("load key pair %s: %w", certPath, err)
	}

	leaf := cert.Leaf
	if leaf == nil {
		if leaf, err = x509.ParseCertificate(cert.Certificate[0]); err != nil {
			return tls.Certificate{}, fmt.Errorf("parse certificate %s: %w", certPath, err)
		}
	}

	if now.Before(leaf.NotBefore) || now.After(leaf.NotAfter) {
		return tls.Certificate{}, fmt.Errorf(
			"%w: %s valid from %s to %s",
			ErrCertNotValid,
			certPath,
			leaf.NotBefore.Format(time.RFC3339),
			leaf.NotAfter.Format(time.RFC3339),
		)
	}

	return cert, nil
}

func loadCertPool(path string) (*x509.CertPool, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read CA certificate: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("parse CA certificate %s: no certificates found", path)
	}

	return pool, nil
}

func serverConfig(cert tls.Certificate, clientCAs *x509.CertPool) *tls.Config {
	return &tls.Config{
		MinVersion:   tls.VersionTLS13,
		Certificates: []tls.Certificate{cert},
		ClientAuth:   tls.RequireAndVerifyClientCert,
		ClientCAs:    clientCAs,
	}
}

func clientConfig(
	cert tls.Certificate,
	rootCAs *x509.CertPool,
	serverName string,
) *tls.Config {
	return &tls.Config{
		MinVersion:   tls.VersionTLS13,
		Certificates: []tls.Certificate{cert},
		RootCAs:      rootCAs,
		ServerName:   serverName,
	}
}
