package tlsconfig

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/nixpig/worker/internal/pki"
)

func TestLoadKeyPair(t *testing.T) {
	t.Parallel()

	certDir := t.TempDir()

	if err := pki.Generate(certDir, []string{"localhost"}, nil); err != nil {
		t.Fatalf("generate certs: %v", err)
	}

	certPath := filepath.Join(certDir, "server.crt")
	keyPath := filepath.Join(certDir, "server.key")

	scenarios := map[string]struct {
		now     time.Time
		wantErr error
	}{
		"Test current certificate": {
			now: time.Now(),
		},
		"Test not yet valid certificate": {
			now:     time.Now().Add(-time.Hour),
			wantErr: ErrCertNotValid,
		},
		"Test expired certificate": {
			now:     time.Now().AddDate(100, 0, 0),
			wantErr: ErrCertNotValid,
		},
	}

	for scenario, sc := range scenarios {
		t.Run(scenario, func(t *testing.T) {
			t.Parallel()

			_, err := loadKeyPair(certPath, keyPath, sc.now)

			if sc.wantErr == nil && err != nil {
				t.Errorf("expected not to receive error: got '%v'", err)
			}

			if sc.wantErr != nil && !errors.Is(err, sc.wantErr) {
				t.Errorf("expected to receive '%v': got '%v'", sc.wantErr, err)
			}
		})
	}
}
