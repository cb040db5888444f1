package relay_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"go-ems/internal/relay"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "relay-test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return signed
}

func TestAuthenticate_TokenFromQuery(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	token := signToken(t, jwt.MapClaims{
		"user_id":    "u-1",
		"company_id": "c-1",
		"role":       "EMPLOYEE",
		"approved":   true,
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/ws?token="+token, nil)
	claims, err := relay.Authenticate(req)

	assert.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "c-1", claims.CompanyID)
	assert.Equal(t, "EMPLOYEE", claims.Role)
}

func TestAuthenticate_TokenFromBearerHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	token := signToken(t, jwt.MapClaims{
		"user_id":    "u-2",
		"company_id": "c-2",
		"approved":   true,
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/ws", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	claims, err := relay.Authenticate(req)
	assert.NoError(t, err)
	assert.Equal(t, "u-2", claims.UserID)
}

func TestAuthenticate_MissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	req := httptest.NewRequest("GET", "/ws", nil)
	_, err := relay.Authenticate(req)
	assert.Error(t, err)
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    "u-1",
		"company_id": "c-1",
	})
	signed, err := token.SignedString([]byte("another-secret"))
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/ws?token="+signed, nil)
	_, err = relay.Authenticate(req)
	assert.Error(t, err)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	token := signToken(t, jwt.MapClaims{
		"user_id":    "u-1",
		"company_id": "c-1",
		"exp":        time.Now().Add(-time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/ws?token="+token, nil)
	_, err := relay.Authenticate(req)
	assert.Error(t, err)
}

func TestAuthenticate_UnapprovedAccount(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	token := signToken(t, jwt.MapClaims{
		"user_id":    "u-1",
		"company_id": "c-1",
		"approved":   false,
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/ws?token="+token, nil)
	_, err := relay.Authenticate(req)
	assert.Error(t, err)
}

// Token yang sama sekali tidak membawa klaim approved ditolak seperti
// approved=false.
func TestAuthenticate_MissingApprovedClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	token := signToken(t, jwt.MapClaims{
		"user_id":    "u-1",
		"company_id": "c-1",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/ws?token="+token, nil)
	_, err := relay.Authenticate(req)
	assert.Error(t, err)
}

func TestAuthenticate_MissingCompany(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	token := signToken(t, jwt.MapClaims{
		"user_id": "u-1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/ws?token="+token, nil)
	_, err := relay.Authenticate(req)
	assert.Error(t, err)
}
