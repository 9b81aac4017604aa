package handler

import (
	"os"

	"idea-forge-be/internal/dto"
	"idea-forge-be/internal/model"
	"idea-forge-be/internal/pkg/logger"
	"idea-forge-be/internal/pkg/serverutils"
	"idea-forge-be/internal/service"
	internalWS "idea-forge-be/internal/websocket"
	"idea-forge-be/pkg/propagation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// NotificationHandler owns the notification REST surface and the websocket
// endpoint that streams notifications and propagation snapshots.
type NotificationHandler struct {
	service            *service.NotificationService
	propagationService service.IPropagationService
	hub                *internalWS.Hub
	logger             logger.ILogger
}

func NewNotificationHandler(
	svc *service.NotificationService,
	propagationService service.IPropagationService,
	hub *internalWS.Hub,
	log logger.ILogger,
) *NotificationHandler {
	return &NotificationHandler{
		service:            svc,
		propagationService: propagationService,
		hub:                hub,
		logger:             log,
	}
}

func (h *NotificationHandler) RegisterRoutes(router fiber.Router) {
	notif := router.Group("/notifications")
	notif.Use(serverutils.JwtMiddleware)
	notif.Get("/", h.GetNotifications)
	notif.Get("/unread-count", h.GetUnreadCount)
	notif.Patch("/read-all", h.MarkAllAsRead)
	notif.Patch("/:id/read", h.MarkAsRead)

	router.Get("/ws", h.ServeWs)
}

// ServeWs authenticates the handshake and upgrades. Browsers cannot set an
// Authorization header on websocket connects, so a token query param is the
// primary path.
func (h *NotificationHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		h.logger.Warn("NotificationHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token missing user_id"})
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user ID format in token"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("NotificationHandler", "Starting WebSocket session", map[string]interface{}{"user_id": userID})

			// Live highlight updates: every propagation mutation during the
			// session is pushed as a snapshot.
			state := h.propagationService.State(userID)
			unsubscribe := state.Subscribe(func(snap propagation.Snapshot) {
				h.hub.SendJSON(userID, "propagation_state", snap)
			})

			internalWS.ServeWs(h.hub, conn, userID, unsubscribe)
			h.logger.Info("NotificationHandler", "WebSocket session ended", map[string]interface{}{"user_id": userID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	notifications, total, err := h.service.GetNotifications(c.UserContext(), userID, limit, offset)
	if err != nil {
		return err
	}
	unread, err := h.service.GetUnreadCount(c.UserContext(), userID)
	if err != nil {
		return err
	}

	res := dto.NotificationListResponse{
		Notifications: make([]dto.NotificationResponse, len(notifications)),
		Total:         total,
		UnreadCount:   unread,
	}
	for i, n := range notifications {
		res.Notifications[i] = toNotificationResponse(n)
	}

	return serverutils.SuccessResponse(c, fiber.StatusOK, "Success list notifications", res)
}

func (h *NotificationHandler) GetUnreadCount(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	count, err := h.service.GetUnreadCount(c.UserContext(), userID)
	if err != nil {
		return err
	}

	return serverutils.SuccessResponse(c, fiber.StatusOK, "Success count unread notifications", fiber.Map{"count": count})
}

func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, "Invalid notification id", err)
	}

	if err := h.service.MarkAsRead(c.UserContext(), id); err != nil {
		return err
	}

	return serverutils.SuccessResponse(c, fiber.StatusOK, "Success mark notification as read", nil)
}

func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.MarkAllAsRead(c.UserContext(), userID); err != nil {
		return err
	}

	return serverutils.SuccessResponse(c, fiber.StatusOK, "Success mark all notifications as read", nil)
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, serverutils.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, serverutils.NewAppError(fiber.StatusUnauthorized, "Invalid user ID", err)
	}
	return userID, nil
}

func toNotificationResponse(n model.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		Id:        n.ID,
		TypeCode:  n.TypeCode,
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}
