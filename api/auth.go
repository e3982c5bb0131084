package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

type sessionClaims struct {
	Subject   string `json:"sub"`
	ExpiresAt int64  `json:"exp"`
}

// authMiddleware verifies the bearer token and stashes the caller's account
// id in the gin context under "userAccountID". Every authed resolver reads
// it back through getUserAccountID.
func (m ApiHandler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		returnErrorJsonCode(fmt.Errorf("missing authorization header"), c, http.StatusUnauthorized)
		return
	}
	tokenStr := strings.TrimPrefix(header, "Bearer ")

	claims, err := parseSessionJwt(tokenStr, m.JwtSecret)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid token: %w", err), c, http.StatusUnauthorized)
		return
	}

	if _, err := uuid.Parse(claims.Subject); err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid token subject: %w", err), c, http.StatusUnauthorized)
		return
	}

	c.Set("userAccountID", claims.Subject)
	c.Next()
}

func parseSessionJwt(jwtStr string, decodeToken string) (*sessionClaims, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(decodeToken), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("failed to parse claims")
	}

	claims := sessionClaims{}
	if sub, ok := mapClaims["sub"].(string); ok {
		claims.Subject = sub
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.ExpiresAt = int64(exp)
	}

	if claims.ExpiresAt != 0 && time.Now().UTC().Unix() > claims.ExpiresAt {
		return nil, fmt.Errorf("jwt is expired")
	}

	return &claims, nil
}

func getUserAccountID(c *gin.Context) (uuid.UUID, error) {
	idAny, ok := c.Get("userAccountID")
	if !ok {
		return uuid.Nil, fmt.Errorf("missing user account id in context")
	}
	idStr, ok := idAny.(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("failed to convert user account id to str")
	}
	return uuid.Parse(idStr)
}
