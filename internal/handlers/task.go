package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"project-hub/internal/board"
	"project-hub/internal/middleware"
	"project-hub/internal/models"
	"project-hub/internal/storage"

	"github.com/gin-gonic/gin"
)

//
// ЗАДАЧИ
//

func (h *Handler) ListTasks(c *gin.Context) {
	projectID := c.Query("project_id")
	if projectID != "" {
		if err := h.store.LoadTasks(projectID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка загрузки задач"})
			return
		}
	}

	tasks := h.store.Tasks()
	if projectID != "" {
		filtered := tasks[:0:0]
		for _, t := range tasks {
			if t.ProjectID == projectID {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}
	c.JSON(http.StatusOK, tasks)
}

// Board — задачи, разложенные по четырём колонкам канбана.
func (h *Handler) Board(c *gin.Context) {
	tasks := h.store.Tasks()

	if projectID := c.Query("project_id"); projectID != "" {
		filtered := tasks[:0:0]
		for _, t := range tasks {
			if t.ProjectID == projectID {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}
	c.JSON(http.StatusOK, board.Group(tasks))
}

func (h *Handler) CreateTask(c *gin.Context) {
	var ins models.TaskInsert
	if err := c.ShouldBindJSON(&ins); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}

	ins.Title = strings.TrimSpace(ins.Title)
	if ins.Title == "" || ins.ProjectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Нужны заголовок и проект"})
		return
	}
	if ins.Status != "" && !models.ValidTaskStatus(ins.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный статус задачи"})
		return
	}
	if ins.Priority != "" && !models.ValidTaskPriority(ins.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный приоритет"})
		return
	}

	uid := middleware.CurrentUserID(c)
	if ins.CreatedBy == nil {
		ins.CreatedBy = &uid
	}

	t, err := h.store.CreateTask(ins)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения задачи"})
		return
	}

	h.notifyAssigned(t, uid)
	c.JSON(http.StatusCreated, t)
}

func (h *Handler) UpdateTask(c *gin.Context) {
	var upd models.TaskUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}

	if upd.Status != nil && !models.ValidTaskStatus(*upd.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный статус задачи"})
		return
	}
	if upd.Priority != nil && !models.ValidTaskPriority(*upd.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный приоритет"})
		return
	}

	id := c.Param("id")
	prev := h.store.TaskByID(id)

	t, err := h.store.UpdateTask(id, upd)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Задача не найдена"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения задачи"})
		return
	}

	// уведомляем только при смене исполнителя
	if upd.AssigneeID != nil && (prev == nil || prev.AssigneeID == nil || *prev.AssigneeID != *upd.AssigneeID) {
		h.notifyAssigned(t, middleware.CurrentUserID(c))
	}

	c.JSON(http.StatusOK, t)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	err := h.store.DeleteTask(c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Задача не найдена"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка удаления"})
		return
	}
	c.Status(http.StatusNoContent)
}

//
// DRAG-AND-DROP
//

type moveForm struct {
	// Target — id колонки (todo/in_progress/review/done) либо id карточки,
	// на которую отпустили перетаскиваемую задачу.
	Target string `json:"target"`
}

// MoveTask — serverная развязка жеста: start по id из пути, end по цели
// из тела. Не больше одного перевода статуса на жест.
func (h *Handler) MoveTask(c *gin.Context) {
	var form moveForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}

	g := board.NewGesture(h.store)
	g.Start(c.Param("id"))
	moved, err := g.End(form.Target)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка перемещения задачи"})
		return
	}

	resp := gin.H{"moved": moved}
	if t := h.store.TaskByID(c.Param("id")); t != nil {
		resp["task"] = t
	}
	c.JSON(http.StatusOK, resp)
}

//
// КОММЕНТАРИИ
//

func (h *Handler) ListTaskComments(c *gin.Context) {
	comments, err := h.store.CommentsForTask(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка загрузки комментариев"})
		return
	}
	c.JSON(http.StatusOK, comments)
}

type commentForm struct {
	Content string `json:"content"`
}

func (h *Handler) AddTaskComment(c *gin.Context) {
	var form commentForm
	if err := c.ShouldBindJSON(&form); err != nil || strings.TrimSpace(form.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Пустой комментарий"})
		return
	}

	cm, err := h.store.AddComment(c.Param("id"), middleware.CurrentUserID(c), strings.TrimSpace(form.Content))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения комментария"})
		return
	}
	c.JSON(http.StatusCreated, cm)
}

func (h *Handler) DeleteTaskComment(c *gin.Context) {
	err := h.store.DeleteComment(c.Param("commentID"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Комментарий не найден"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка удаления"})
		return
	}
	c.Status(http.StatusNoContent)
}

// notifyAssigned шлёт исполнителю task_assigned; сбой уведомления задачу
// не откатывает.
func (h *Handler) notifyAssigned(t models.Task, actorID string) {
	if t.AssigneeID == nil || *t.AssigneeID == "" || *t.AssigneeID == actorID {
		return
	}

	ref := models.RefTask
	content := fmt.Sprintf("Вам назначена задача %q", t.Title)
	_, err := h.store.CreateNotification(models.NotificationInsert{
		UserID:        *t.AssigneeID,
		Type:          models.NotifTaskAssigned,
		Title:         "Новая задача",
		Content:       &content,
		ReferenceID:   &t.ID,
		ReferenceType: &ref,
	})
	if err != nil {
		log.Printf("failed to create notification: %v", err)
	}
}
