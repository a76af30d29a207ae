package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"project-hub/internal/models"
	"project-hub/internal/storage"

	"github.com/gin-gonic/gin"
)

//
// КОМАНДА
//

type memberView struct {
	models.Profile
	Presence models.PresenceStatus `json:"presence"`
}

func (h *Handler) ListMembers(c *gin.Context) {
	now := time.Now()
	members := h.store.Members()

	views := make([]memberView, 0, len(members))
	for _, m := range members {
		views = append(views, memberView{Profile: m, Presence: m.Presence(now)})
	}
	c.JSON(http.StatusOK, views)
}

func (h *Handler) GetMember(c *gin.Context) {
	m := h.store.MemberByID(c.Param("id"))
	if m == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Сотрудник не найден"})
		return
	}
	c.JSON(http.StatusOK, memberView{Profile: *m, Presence: m.Presence(time.Now())})
}

type createMemberForm struct {
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	JobTitle *string `json:"job_title"`
	Bio      *string `json:"bio"`
}

func (h *Handler) CreateMember(c *gin.Context) {
	var form createMemberForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}

	form.FullName = strings.TrimSpace(form.FullName)
	form.Email = strings.TrimSpace(strings.ToLower(form.Email))
	if form.FullName == "" || form.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Нужны имя и email"})
		return
	}
	if len(form.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Пароль должен быть не менее 6 символов"})
		return
	}

	if existing, err := h.store.MemberByEmail(form.Email); err == nil && existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Пользователь с таким email уже существует"})
		return
	}

	m, err := h.store.CreateMember(models.Profile{
		FullName: form.FullName,
		Email:    form.Email,
		JobTitle: form.JobTitle,
		Bio:      form.Bio,
	}, form.Password)
	if errors.Is(err, storage.ErrDuplicate) {
		c.JSON(http.StatusConflict, gin.H{"error": "Пользователь с таким email уже существует"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка создания пользователя"})
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *Handler) UpdateMember(c *gin.Context) {
	var upd models.ProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}
	if upd.Password != nil && *upd.Password != "" && len(*upd.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Пароль должен быть не менее 6 символов"})
		return
	}

	m, err := h.store.UpdateMember(c.Param("id"), upd)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Сотрудник не найден"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения"})
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) DeleteMember(c *gin.Context) {
	err := h.store.DeleteMember(c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Сотрудник не найден"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка удаления"})
		return
	}
	c.Status(http.StatusNoContent)
}
