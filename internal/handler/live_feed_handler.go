package handler

import (
	"roofing-site-be/internal/pkg/logger"
	"roofing-site-be/internal/pkg/serverutils"
	internalWS "roofing-site-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// LiveFeedHandler upgrades admin dashboards to the live feed websocket.
type LiveFeedHandler struct {
	hub       *internalWS.Hub
	jwtSecret string
	logger    logger.ILogger
}

func NewLiveFeedHandler(hub *internalWS.Hub, jwtSecret string, log logger.ILogger) *LiveFeedHandler {
	return &LiveFeedHandler{
		hub:       hub,
		jwtSecret: jwtSecret,
		logger:    log,
	}
}

// ServeWs handles websocket requests from the admin dashboard.
func (h *LiveFeedHandler) ServeWs(c *fiber.Ctx) error {
	// Browsers cannot set headers on a websocket handshake, so the query param comes first
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}

	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Missing token (query 'token' or Authorization header)"))
	}

	claims, err := serverutils.ParseToken(h.jwtSecret, tokenStr)
	if err != nil {
		h.logger.Warn("LIVE_FEED", "Invalid token in websocket handshake", map[string]interface{}{"error": err.Error()})
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid token"))
	}
	if claims.Role != serverutils.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, "Access denied: Admins only"))
	}

	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	userID := claims.UserId
	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("LIVE_FEED", "Admin connected to live feed", map[string]interface{}{"user_id": userID.String()})
		internalWS.ServeWs(h.hub, conn, userID)
		h.logger.Info("LIVE_FEED", "Admin disconnected from live feed", map[string]interface{}{"user_id": userID.String()})
	})(c)
}

func (h *LiveFeedHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/admin/ws", h.ServeWs)
}
