package middleware

import (
	"strings"

	"staybook/response"
	"staybook/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware xử lý authentication, roles rỗng nghĩa là chỉ cần login
func AuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Missing Authorization header.")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := services.ParseToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token.")
			c.Abort()
			return
		}

		// Kiểm tra role nếu có yêu cầu
		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == claims.Role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		// Lưu thông tin user vào context
		c.Set("userID", claims.UserID)
		c.Set("userRole", claims.Role)
		c.Set("userEmail", claims.Email)
		c.Next()
	}
}

// CurrentUserID lấy userID đã được AuthMiddleware gán vào context
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// CurrentUserRole lấy role đã được AuthMiddleware gán vào context
func CurrentUserRole(c *gin.Context) string {
	v, ok := c.Get("userRole")
	if !ok {
		return ""
	}
	role, _ := v.(string)
	return role
}
