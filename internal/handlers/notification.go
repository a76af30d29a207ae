package handlers

import (
	"errors"
	"net/http"

	"project-hub/internal/middleware"
	"project-hub/internal/storage"

	"github.com/gin-gonic/gin"
)

//
// УВЕДОМЛЕНИЯ
//

// ListNotifications отдаёт уведомления текущего пользователя сессии.
func (h *Handler) ListNotifications(c *gin.Context) {
	uid := middleware.CurrentUserID(c)
	if err := h.store.LoadNotifications(uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка загрузки уведомлений"})
		return
	}
	c.JSON(http.StatusOK, h.store.Notifications())
}

func (h *Handler) MarkNotificationRead(c *gin.Context) {
	err := h.store.MarkNotificationRead(c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Уведомление не найдено"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) MarkAllNotificationsRead(c *gin.Context) {
	if err := h.store.MarkAllNotificationsRead(middleware.CurrentUserID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
