package helper

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"travel_agency/constants"
	"travel_agency/database"
	"travel_agency/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetCustomerByEmail(e string) (*model.Customer, error) {
	db := database.DB
	var customer model.Customer
	if err := db.Preload("Profile").Where(&model.Customer{Email: e}).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["email"] = tokenClaim.Email
	claims["customerId"] = tokenClaim.CustomerId
	claims["level"] = tokenClaim.Level
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	return token.SignedString(JwtSecret)
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["email"] = tokenClaim.Email
	claims["customerId"] = tokenClaim.CustomerId
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	return token.SignedString(JwtSecret)
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})
}

// GetInfoCustomerFromToken đọc claim từ Locals, trả về guest claim nếu chưa đăng nhập
func GetInfoCustomerFromToken(c *fiber.Ctx) (model.TokenClaim, model.Customer) {
	var emptyCustomer model.Customer
	guestClaim := model.TokenClaim{CustomerId: 0}

	u := c.Locals("user")
	if u == nil {
		return guestClaim, emptyCustomer
	}

	userToken, ok := u.(*jwt.Token)
	if !ok || userToken == nil {
		return guestClaim, emptyCustomer
	}

	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		return guestClaim, emptyCustomer
	}

	customerIdFloat, _ := claims["customerId"].(float64)
	if customerIdFloat == 0 {
		return guestClaim, emptyCustomer
	}

	email, _ := claims["email"].(string)
	tokenClaim := model.TokenClaim{
		CustomerId: uint(customerIdFloat),
		Email:      email,
	}

	var customer model.Customer
	db := database.DB
	if err := db.Preload("Profile").First(&customer, tokenClaim.CustomerId).Error; err != nil {
		log.Printf("Customer not found (id=%d): %v", tokenClaim.CustomerId, err)
		return guestClaim, emptyCustomer
	}
	if customer.Profile != nil {
		tokenClaim.Level = customer.Profile.Level
	}

	c.Locals("customer", &customer)

	return tokenClaim, customer
}

// capabilitySets map level → tập quyền, dựng 1 lần, check O(1) mỗi request
var capabilitySets = map[string]map[string]bool{
	constants.LEVEL_NORMAL: {},
	constants.LEVEL_WRITER: {
		constants.CAN_MANAGE_CONTENT: true,
	},
	constants.LEVEL_ADMIN: {
		constants.CAN_MANAGE_CONTENT:  true,
		constants.CAN_MANAGE_TOURS:    true,
		constants.CAN_MANAGE_BOOKINGS: true,
		constants.CAN_MANAGE_DISCOUNT: true,
		constants.CAN_VIEW_REPORTS:    true,
	},
	constants.LEVEL_SUPER_ADMIN: {
		constants.CAN_MANAGE_CONTENT:  true,
		constants.CAN_MANAGE_TOURS:    true,
		constants.CAN_MANAGE_BOOKINGS: true,
		constants.CAN_MANAGE_DISCOUNT: true,
		constants.CAN_VIEW_REPORTS:    true,
		constants.CAN_MANAGE_USERS:    true,
	},
}

func HasCapability(level, capability string) bool {
	caps, ok := capabilitySets[level]
	if !ok {
		return false
	}
	return caps[capability]
}

func Capabilities(level string) []string {
	caps := []string{}
	for name, ok := range capabilitySets[level] {
		if ok {
			caps = append(caps, name)
		}
	}
	return caps
}
