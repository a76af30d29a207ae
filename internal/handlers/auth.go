package handlers

import (
	"log"
	"net/http"
	"strings"

	"project-hub/internal/middleware"
	"project-hub/internal/storage"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type loginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login. В демо-режиме подходят любые реквизиты — сессия подписывается
// синтетическим демо-пользователем. В обычном режиме — профиль по email
// и bcrypt-сравнение, с отметкой last_login.
func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}

	sess := sessions.Default(c)

	if h.cfg.DemoMode {
		email := strings.TrimSpace(form.Email)
		if email == "" {
			email = "demo@example.com"
		}
		sess.Set(middleware.SessionUserKey, storage.DemoUserID)
		sess.Set("demo_email", email)
		_ = sess.Save()

		c.JSON(http.StatusOK, gin.H{
			"id":        storage.DemoUserID,
			"email":     email,
			"full_name": "Demo User",
		})
		return
	}

	user, err := h.store.MemberByEmail(strings.TrimSpace(form.Email))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка входа"})
		return
	}
	if user == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный email или пароль"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный email или пароль"})
		return
	}

	if err := h.store.TouchLastLogin(user.ID); err != nil {
		// не валим вход из-за отметки времени
		log.Printf("failed to stamp last_login for %s: %v", user.ID, err)
	}

	sess.Set(middleware.SessionUserKey, user.ID)
	_ = sess.Save()

	c.JSON(http.StatusOK, user)
}

func (h *Handler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me отдаёт профиль текущей сессии.
func (h *Handler) Me(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	if h.cfg.DemoMode && userID == storage.DemoUserID {
		sess := sessions.Default(c)
		email, _ := sess.Get("demo_email").(string)
		c.JSON(http.StatusOK, gin.H{
			"id":        storage.DemoUserID,
			"email":     email,
			"full_name": "Demo User",
		})
		return
	}

	if m := h.store.MemberByID(userID); m != nil {
		c.JSON(http.StatusOK, m)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Профиль не найден"})
}
