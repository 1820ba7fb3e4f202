package middleware

import (
	"errors"
	"os"
	"strings"

	"travel_agency/constants"
	"travel_agency/helper"
	"travel_agency/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			// check header Authorization: Bearer xxx
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, 401, "Missing token", errors.New("no token"))
		}

		jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, 401, "Invalid token", err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

func OptionalJWT() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")

		if authHeader == "" {
			c.Locals("user", nil)
			return c.Next()
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			c.Locals("user", nil)
			return c.Next()
		}

		c.Locals("user", token)
		return c.Next()
	}
}

func OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, customer := helper.GetInfoCustomerFromToken(c)

		if claim.CustomerId == 0 {
			c.Locals("customerId", uint(0))
			return c.Next()
		}

		c.Locals("customerId", claim.CustomerId)

		// Nếu helper đã query được customer → gán vào Locals
		if customer.ID > 0 {
			c.Locals("customer", &customer)
		}

		return c.Next()
	}
}

// RequireCapability chặn request nếu level của user không có quyền tương ứng
func RequireCapability(capability string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, customer := helper.GetInfoCustomerFromToken(c)
		if claim.CustomerId == 0 || customer.ID == 0 {
			return utils.ErrorResponse(c, 401, "Chưa đăng nhập", errors.New("unauthenticated"))
		}
		if !customer.IsActive {
			return utils.ErrorResponse(c, 403, constants.ACCOUNT_NOT_ACTIVE, nil)
		}
		if !helper.HasCapability(claim.Level, capability) {
			return utils.ErrorResponse(c, 403, constants.FORBIDDEN, nil)
		}
		return c.Next()
	}
}

// RequireSuperAdmin dành riêng cho thao tác đổi level người dùng
func RequireSuperAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, customer := helper.GetInfoCustomerFromToken(c)
		if claim.CustomerId == 0 || customer.ID == 0 {
			return utils.ErrorResponse(c, 401, "Chưa đăng nhập", errors.New("unauthenticated"))
		}
		if claim.Level != constants.LEVEL_SUPER_ADMIN {
			return utils.ErrorResponse(c, 403, constants.FORBIDDEN, nil)
		}
		return c.Next()
	}
}
