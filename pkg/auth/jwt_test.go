package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHMACService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService(JWTConfig{
		Secret:     "unit-test-secret",
		Issuer:     "tienda-gateway",
		Expiration: time.Hour,
	})
	require.NoError(t, err)
	return svc
}

func TestJWTService_GenerateAndValidate_HMAC(t *testing.T) {
	svc := newHMACService(t)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, []string{RoleCashier})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.True(t, claims.HasRole(RoleCashier))
	assert.False(t, claims.HasRole(RoleAdmin))
	assert.Equal(t, "tienda-gateway", claims.Issuer)
}

func TestJWTService_GenerateAndValidate_RSA(t *testing.T) {
	privPEM, pubPEM, err := GenerateKeyPair()
	require.NoError(t, err)

	issuer, err := NewJWTService(JWTConfig{
		PrivateKeyPEM: string(privPEM),
		Issuer:        "tienda-gateway",
		Expiration:    time.Hour,
	})
	require.NoError(t, err)

	validator, err := NewJWTService(JWTConfig{
		PublicKeyPEM: string(pubPEM),
		Issuer:       "tienda-gateway",
	})
	require.NoError(t, err)

	token, err := issuer.GenerateToken(uuid.New(), []string{RoleAdmin})
	require.NoError(t, err)

	claims, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, claims.HasRole(RoleAdmin))
}

func TestJWTService_ValidationOnlyCannotSign(t *testing.T) {
	_, pubPEM, err := GenerateKeyPair()
	require.NoError(t, err)

	validator, err := NewJWTService(JWTConfig{PublicKeyPEM: string(pubPEM)})
	require.NoError(t, err)

	_, err = validator.GenerateToken(uuid.New(), []string{RoleCashier})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation-only")
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newHMACService(t)

	token, err := svc.GenerateToken(uuid.New(), []string{RoleCashier})
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.ValidateToken(tampered)
	require.Error(t, err)
}

func TestJWTService_RejectsWrongIssuer(t *testing.T) {
	signer, err := NewJWTService(JWTConfig{
		Secret:     "unit-test-secret",
		Issuer:     "someone-else",
		Expiration: time.Hour,
	})
	require.NoError(t, err)

	token, err := signer.GenerateToken(uuid.New(), nil)
	require.NoError(t, err)

	validator := newHMACService(t)
	_, err = validator.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "issuer"))
}

func TestJWTService_RequiresKeyMaterial(t *testing.T) {
	_, err := NewJWTService(JWTConfig{})
	require.Error(t, err)
}
