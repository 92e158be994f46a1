package serverutils

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	LocalUserID = "user_id"
	LocalRole   = "role"

	RoleAdmin = "admin"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type Claims struct {
	UserId uuid.UUID
	Role   string
}

// IssueToken signs an HS256 access token carrying user_id and role.
func IssueToken(secret string, userId uuid.UUID, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || token == nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	rawId, _ := mapClaims["user_id"].(string)
	userId, err := uuid.Parse(rawId)
	if err != nil {
		return nil, ErrInvalidToken
	}
	role, _ := mapClaims["role"].(string)

	return &Claims{UserId: userId, Role: role}, nil
}

// JwtMiddleware authenticates the bearer token and stores user_id / role in Locals.
func JwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing or invalid authorization header"))
		}

		claims, err := ParseToken(secret, authHeader[7:])
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid or expired token"))
		}

		ctx.Locals(LocalUserID, claims.UserId)
		ctx.Locals(LocalRole, claims.Role)
		return ctx.Next()
	}
}

// AdminOnly must run after JwtMiddleware.
func AdminOnly(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals(LocalRole).(string)
	if role == "" {
		return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "Access denied: Role missing"))
	}
	if role != RoleAdmin {
		return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "Access denied: Admins only"))
	}
	return ctx.Next()
}

// CurrentUserID reads the id stored by JwtMiddleware.
func CurrentUserID(ctx *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := ctx.Locals(LocalUserID).(uuid.UUID)
	return id, ok
}
