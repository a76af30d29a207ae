package handlers

import (
	"errors"
	"net/http"
	"strings"

	"project-hub/internal/middleware"
	"project-hub/internal/models"
	"project-hub/internal/storage"

	"github.com/gin-gonic/gin"
)

//
// СПИСОК И КАРТОЧКА ПРОЕКТА
//

func (h *Handler) ListProjects(c *gin.Context) {
	projects := h.store.Projects()

	if status := c.Query("status"); status != "" {
		filtered := projects[:0:0]
		for _, p := range projects {
			if string(p.Status) == status {
				filtered = append(filtered, p)
			}
		}
		projects = filtered
	}

	c.JSON(http.StatusOK, projects)
}

func (h *Handler) GetProject(c *gin.Context) {
	p := h.store.ProjectByID(c.Param("id"))
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Проект не найден"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Сводка: прогресс по задачам + финансовый итог + сумма долей.
func (h *Handler) ProjectSummary(c *gin.Context) {
	id := c.Param("id")
	if h.store.ProjectByID(id) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Проект не найден"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"progress":    h.store.ProjectProgress(id),
		"finance":     h.store.ProjectFinanceSummary(id),
		"total_share": h.store.TotalShare(id),
	})
}

//
// СОЗДАНИЕ / РЕДАКТИРОВАНИЕ / УДАЛЕНИЕ
//

func (h *Handler) CreateProject(c *gin.Context) {
	var ins models.ProjectInsert
	if err := c.ShouldBindJSON(&ins); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}

	ins.Name = strings.TrimSpace(ins.Name)
	if len(ins.Name) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Название проекта должно быть не короче 3 символов"})
		return
	}
	if ins.Status != "" && !models.ValidProjectStatus(ins.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный статус проекта"})
		return
	}

	if ins.CreatedBy == nil {
		uid := middleware.CurrentUserID(c)
		ins.CreatedBy = &uid
	}

	p, err := h.store.CreateProject(ins)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения проекта"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) UpdateProject(c *gin.Context) {
	var upd models.ProjectUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}

	if upd.Name != nil {
		trimmed := strings.TrimSpace(*upd.Name)
		if len(trimmed) < 3 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Название слишком короткое"})
			return
		}
		upd.Name = &trimmed
	}
	if upd.Status != nil && !models.ValidProjectStatus(*upd.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный статус проекта"})
		return
	}

	p, err := h.store.UpdateProject(c.Param("id"), upd)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Проект не найден"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения проекта"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) DeleteProject(c *gin.Context) {
	err := h.store.DeleteProject(c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Проект не найден"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка удаления"})
		return
	}
	c.Status(http.StatusNoContent)
}

//
// УЧАСТНИКИ ПРОЕКТА
//

func (h *Handler) ListProjectMembers(c *gin.Context) {
	projectID := c.Param("id")
	if err := h.store.LoadProjectMembers(projectID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка загрузки участников"})
		return
	}
	c.JSON(http.StatusOK, h.store.ProjectMembers(projectID))
}

type addMemberForm struct {
	UserID string            `json:"user_id"`
	Role   models.MemberRole `json:"role"`
}

func (h *Handler) AddProjectMember(c *gin.Context) {
	var form addMemberForm
	if err := c.ShouldBindJSON(&form); err != nil || form.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}
	if form.Role != "" && !models.ValidMemberRole(form.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверная роль"})
		return
	}

	m, err := h.store.AddProjectMember(c.Param("id"), form.UserID, form.Role)
	if errors.Is(err, storage.ErrDuplicate) {
		c.JSON(http.StatusConflict, gin.H{"error": "Участник уже добавлен в проект"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка добавления участника"})
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *Handler) RemoveProjectMember(c *gin.Context) {
	err := h.store.RemoveProjectMember(c.Param("id"), c.Param("userID"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Участник не найден"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка удаления участника"})
		return
	}
	c.Status(http.StatusNoContent)
}

//
// ФАЙЛЫ ПРОЕКТА
//

func (h *Handler) ListProjectFiles(c *gin.Context) {
	projectID := c.Param("id")
	if err := h.store.LoadProjectFiles(projectID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка загрузки файлов"})
		return
	}
	c.JSON(http.StatusOK, h.store.ProjectFiles(projectID))
}

func (h *Handler) AddProjectFile(c *gin.Context) {
	var ins models.ProjectFileInsert
	if err := c.ShouldBindJSON(&ins); err != nil || ins.Name == "" || ins.FilePath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}
	ins.ProjectID = c.Param("id")
	if ins.UploadedBy == nil {
		uid := middleware.CurrentUserID(c)
		ins.UploadedBy = &uid
	}

	f, err := h.store.AddFile(ins)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения файла"})
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (h *Handler) DeleteProjectFile(c *gin.Context) {
	err := h.store.DeleteFile(c.Param("fileID"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Файл не найден"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка удаления файла"})
		return
	}
	c.Status(http.StatusNoContent)
}
