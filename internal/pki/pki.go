// Package pki issues the CA, server and client certificates used for mTLS
// between the server and its clients. It's intended for development and
// tests; production deployments should use certificates from a real CA.
package pki

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const defaultValidity = 365 * 24 * time.Hour

// Identity is the principal and role encoded in a client certificate, as
// CommonName and OrganizationalUnit respectively.
type Identity struct {
	CommonName string
	Role       string
}

// ParseIdentity parses an identity of the form "CN:ROLE".
func ParseIdentity(s string) (Identity, error) {
	cn, role, ok := strings.Cut(s, ":")
	if !ok || cn == "" || role == "" {
		return Identity{}, fmt.Errorf("identity must be CN:ROLE: got '%s'", s)
	}

	if strings.ContainsRune(cn, filepath.Separator) {
		return Identity{}, fmt.Errorf("identity CN contains path separator: '%s'", cn)
	}

	return Identity{CommonName: cn, Role: role}, nil
}

// Certificate is a certificate and its private key.
type Certificate struct {
	Cert    *x509.Certificate
	Key     *ecdsa.PrivateKey
	CertPEM []byte
	KeyPEM  []byte
}

// NewCA creates a self-signed CA certificate.
func NewCA(commonName string) (*Certificate, error) {
	template, err := newTemplate(commonName)
	if err != nil {
		return nil, err
	}

	template.IsCA = true
	template.BasicConstraintsValid = true
	template.KeyUsage = x509.KeyUsageCertSign | x509.KeyUsageCRLSign

	return issue(template, nil)
}

// IssueServer issues a server certificate for the given hosts, which may be
// DNS names or IP addresses.
func (ca *Certificate) IssueServer(hosts []string) (*Certificate, error) {
	if len(hosts) == 0 {
		return nil, errors.New("server certificate needs at least one host")
	}

	template, err := newTemplate(hosts[0])
	if err != nil {
		return nil, err
	}

	template.KeyUsage = x509.KeyUsageDigitalSignature
	template.ExtKeyUsage = []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth}

	for _, h := range hosts {
		if ip := net.ParseIP(h); ip != nil {
			template.IPAddresses = append(template.IPAddresses, ip)
		} else {
			template.DNSNames = append(template.DNSNames, h)
		}
	}

	return issue(template, ca)
}

// IssueClient issues a client certificate for id.
func (ca *Certificate) IssueClient(id Identity) (*Certificate, error) {
	template, err := newTemplate(id.CommonName)
	if err != nil {
		return nil, err
	}

	template.Subject.OrganizationalUnit = []string{id.Role}
	template.KeyUsage = x509.KeyUsageDigitalSignature
	template.ExtKeyUsage = []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth}

	return issue(template, ca)
}

// WriteFiles writes the certificate to dir/name.crt and the private key to
// dir/name.key.
func (c *Certificate) WriteFiles(dir, name string) error {
	certPath := filepath.Join(dir, name+".crt")
	if err := os.WriteFile(certPath, c.CertPEM, 0644); err != nil {
		return fmt.Errorf("write certificate: %w", err)
	}

	keyPath := filepath.Join(dir, name+".key")
	if err := os.WriteFile(keyPath, c.KeyPEM, 0600); err != nil {
		return fmt.Errorf("write private key: %w", err)
	}

	return nil
}

// ClientFileName returns the file name, without extension, that Generate
// writes the certificate for id to.
func ClientFileName(id Identity) string {
	return "client-" + id.CommonName
}

// Generate writes a new CA (ca.crt, ca.key), a server certificate for
// serverHosts (server.crt, server.key) and a client certificate for each of
// clients to dir.
func Generate(dir string, serverHosts []string, clients []Identity) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("make certs dir: %w", err)
	}

	ca, err := NewCA("worker CA")
	if err != nil {
		return fmt.Errorf("create CA: %w", err)
	}

	if err := ca.WriteFiles(dir, "ca"); err != nil {
		return err
	}

	server, err := ca.IssueServer(serverHosts)
	if err != nil {
		return fmt.Errorf("issue server certificate: %w", err)
	}

	if err := server.WriteFiles(dir, "server"); err != nil {
		return err
	}

	for _, id := range clients {
		client, err := ca.IssueClient(id)
		if err != nil {
			return fmt.Errorf("issue client certificate '%s': %w", id.CommonName, err)
		}

		if err := client.WriteFiles(dir, ClientFileName(id)); err != nil {
			return err
		}
	}

	return nil
}

func newTemplate(commonName string) (*x509.Certificate, error) {
	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return nil, fmt.Errorf("generate serial number: %w", err)
	}

	now := time.Now()

	return &x509.Certificate{
		SerialNumber: serial,
		Subject:      pkix.Name{CommonName: commonName},
		NotBefore:    now.Add(-time.Minute),
		NotAfter:     now.Add(defaultValidity),
	}, nil
}

// issue signs template with parent, or self-signs it if parent is nil.
func issue(template *x509.Certificate, parent *Certificate) (*Certificate, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}

	signerCert, signerKey := template, key
	if parent != nil {
		signerCert, signerKey = parent.Cert, parent.Key
	}

	der, err := x509.CreateCertificate(
		rand.Reader,
		template,
		signerCert,
		&key.PublicKey,
		signerKey,
	)
	if err != nil {
		return nil, fmt.Errorf("create certificate: %w", err)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, fmt.Errorf("parse certificate: %w", err)
	}

	keyDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("marshal private key: %w", err)
	}

	return &Certificate{
		Cert:    cert,
		Key:     key,
		CertPEM: pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}),
		KeyPEM:  pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyDER}),
	}, nil
}
