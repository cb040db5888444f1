package relay

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID     string
	CompanyID  string
	EmployeeID string
	Role       string
}

// Authenticate memverifikasi JWT untuk handshake WebSocket. Browser
// tidak bisa mengirim header pada upgrade, jadi token juga diterima
// lewat query string.
func Authenticate(r *http.Request) (Claims, error) {
	tokenString := r.URL.Query().Get("token")
	if tokenString == "" {
		authHeader := r.Header.Get("Authorization")
		if after, found := strings.CutPrefix(authHeader, "Bearer "); found {
			tokenString = after
		}
	}
	if tokenString == "" {
		return Claims{}, fmt.Errorf("token not found")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return Claims{}, fmt.Errorf("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, fmt.Errorf("invalid token claims")
	}

	userID, _ := mapClaims["user_id"].(string)
	companyID, _ := mapClaims["company_id"].(string)
	if userID == "" || companyID == "" {
		return Claims{}, fmt.Errorf("token missing user or company")
	}

	// Klaim approved wajib ada dan bernilai true.
	if approved, isBool := mapClaims["approved"].(bool); !isBool || !approved {
		return Claims{}, fmt.Errorf("account is not approved")
	}

	employeeID, _ := mapClaims["employee_id"].(string)
	role, _ := mapClaims["role"].(string)

	return Claims{
		UserID:     userID,
		CompanyID:  companyID,
		EmployeeID: employeeID,
		Role:       role,
	}, nil
}
