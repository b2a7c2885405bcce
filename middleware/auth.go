package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/mapsearch/api-go/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

func parseBearerToken(c *gin.Context) (*utils.UserClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 {
		return nil, false
	}

	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(bearerToken[1], claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !parsedToken.Valid {
		return nil, false
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, false
	}
	username, _ := claims["username"].(string)
	email, _ := claims["email"].(string)

	return &utils.UserClaims{
		UserID:   uint(userID),
		Username: username,
		Email:    email,
	}, true
}

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userClaims, ok := parseBearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required. Please login."})
			c.Abort()
			return
		}

		c.Set(string(utils.UserContextKey), userClaims)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches claims when a valid token is present and
// lets anonymous requests through. Review submission uses it: logged-in
// callers get their name and email from the account.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userClaims, ok := parseBearerToken(c); ok {
			c.Set(string(utils.UserContextKey), userClaims)
		}
		c.Next()
	}
}
