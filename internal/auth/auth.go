// Package auth identifies clients by their verified mTLS certificate and
// authorises them to call JobService methods based on their role.
//
// The certificate's CommonName is the principal that owns the jobs a client
// creates. The first OrganizationalUnit is the client's role.
package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"

	api "github.com/nixpig/worker/api/v1"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/peer"
)

type Permission string

const (
	PermissionJobCreate Permission = "job:create"
	PermissionJobStop   Permission = "job:stop"
	PermissionJobQuery  Permission = "job:query"
	PermissionJobOutput Permission = "job:output"
	PermissionJobDelete Permission = "job:delete"
)

type Role string

const (
	RoleOperator Role = "operator"
	RoleViewer   Role = "viewer"
)

var RolePermissions = map[Role][]Permission{
	RoleOperator: {
		PermissionJobCreate,
		PermissionJobStop,
		PermissionJobQuery,
		PermissionJobOutput,
		PermissionJobDelete,
	},
	RoleViewer: {PermissionJobQuery, PermissionJobOutput},
}

var MethodPermissions = map[string]Permission{
	api.JobService_CreateJob_FullMethodName:       PermissionJobCreate,
	api.JobService_StopJob_FullMethodName:         PermissionJobStop,
	api.JobService_QueryJob_FullMethodName:        PermissionJobQuery,
	api.JobService_StreamJobOutput_FullMethodName: PermissionJobOutput,
	api.JobService_DeleteJob_FullMethodName:       PermissionJobDelete,
}

var (
	ErrNoIdentity  = errors.New("no verified client identity")
	ErrNoPrincipal = errors.New("no principal in certificate")
)

// GetClientIdentity returns the CommonName and first OrganizationalUnit of the
// leaf certificate in the client's verified chain.
func GetClientIdentity(ctx context.Context) (string, string, error) {
	p, ok := peer.FromContext(ctx)
	if !ok {
		return "", "", fmt.Errorf("failed to get peer info from context")
	}

	tlsInfo, ok := p.AuthInfo.(credentials.TLSInfo)
	if !ok {
		return "", "", fmt.Errorf("failed to get TLS info from peer auth info")
	}

	if len(tlsInfo.State.VerifiedChains) == 0 ||
		len(tlsInfo.State.VerifiedChains[0]) == 0 {
		return "", "", fmt.Errorf("no verified chains in TLS info")
	}

	cert := tlsInfo.State.VerifiedChains[0][0]

	cn := cert.Subject.CommonName

	var ou string
	if len(cert.Subject.OrganizationalUnit) > 0 {
		ou = cert.Subject.OrganizationalUnit[0]
	}

	return cn, ou, nil
}

func IsAuthorised(clientRole Role, method string) error {
	requiredPermission, exists := MethodPermissions[method]
	if !exists {
		return fmt.Errorf("specified method not in method permissions")
	}

	permissions, ok := RolePermissions[clientRole]
	if !ok {
		return fmt.Errorf("specified role not in role permissions")
	}

	if !slices.Contains(permissions, requiredPermission) {
		return fmt.Errorf("required permission not in permissions for role")
	}

	return nil
}

// Authorise checks that the client in ctx may call method and returns its
// principal. Errors wrapping ErrNoIdentity or ErrNoPrincipal mean the client
// could not be identified. Any other error means it was identified but lacks
// the permission method requires.
func Authorise(ctx context.Context, method string) (string, error) {
	cn, ou, err := GetClientIdentity(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoIdentity, err)
	}

	if cn == "" {
		return "", ErrNoPrincipal
	}

	if err := IsAuthorised(Role(ou), method); err != nil {
		return "", fmt.Errorf("authorise client %q with role %q: %w", cn, ou, err)
	}

	return cn, nil
}

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying principal.
func WithPrincipal(ctx context.Context, principal string) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// PrincipalFromContext returns the principal stored by WithPrincipal.
func PrincipalFromContext(ctx context.Context) (string, bool) {
	principal, ok := ctx.Value(principalKey{}).(string)
	return principal, ok && principal != ""
}
