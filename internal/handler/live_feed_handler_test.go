package handler

import (
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"roofing-site-be/internal/pkg/logger"
	"roofing-site-be/internal/pkg/serverutils"
	internalWS "roofing-site-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "feed_secret"

func TestServeWsHandshakeChecks(t *testing.T) {
	log := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "app.log"))
	h := NewLiveFeedHandler(internalWS.NewHub(nil, log), secret, log)

	app := fiber.New()
	h.RegisterRoutes(app)

	adminToken, err := serverutils.IssueToken(secret, uuid.New(), serverutils.RoleAdmin, time.Hour)
	require.NoError(t, err)
	userToken, err := serverutils.IssueToken(secret, uuid.New(), "user", time.Hour)
	require.NoError(t, err)

	cases := []struct {
		name   string
		target string
		status int
	}{
		{"missing token", "/admin/ws", fiber.StatusUnauthorized},
		{"garbage token", "/admin/ws?token=nope", fiber.StatusUnauthorized},
		{"non admin", "/admin/ws?token=" + userToken, fiber.StatusForbidden},
		{"admin without upgrade", "/admin/ws?token=" + adminToken, fiber.StatusUpgradeRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tc.target, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
