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
// ФИНАНСЫ ПРОЕКТА
//

// ProjectFinance — доходы, расходы, доли и сводка одним ответом.
func (h *Handler) ProjectFinance(c *gin.Context) {
	projectID := c.Param("id")
	if h.store.ProjectByID(projectID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Проект не найден"})
		return
	}
	if err := h.store.LoadProjectFinance(projectID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка загрузки финансов"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"incomes":     h.store.Incomes(projectID),
		"expenses":    h.store.Expenses(projectID),
		"shares":      h.store.RevenueShares(projectID),
		"summary":     h.store.ProjectFinanceSummary(projectID),
		"total_share": h.store.TotalShare(projectID),
	})
}

//
// ДОХОДЫ
//

func (h *Handler) CreateIncome(c *gin.Context) {
	var ins models.IncomeInsert
	if err := c.ShouldBindJSON(&ins); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}

	ins.ProjectID = c.Param("id")
	ins.Title = strings.TrimSpace(ins.Title)
	if ins.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Нужно название"})
		return
	}
	if ins.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Сумма должна быть положительной"})
		return
	}
	if ins.Category == "" {
		ins.Category = models.IncomeOther
	}
	uid := middleware.CurrentUserID(c)
	if ins.CreatedBy == nil {
		ins.CreatedBy = &uid
	}

	inc, err := h.store.AddIncome(ins)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения"})
		return
	}
	c.JSON(http.StatusCreated, inc)
}

func (h *Handler) UpdateIncome(c *gin.Context) {
	var upd models.IncomeUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}
	if upd.Amount != nil && *upd.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Сумма должна быть положительной"})
		return
	}

	inc, err := h.store.UpdateIncome(c.Param("incomeID"), upd)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Запись не найдена"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения"})
		return
	}
	c.JSON(http.StatusOK, inc)
}

func (h *Handler) DeleteIncome(c *gin.Context) {
	err := h.store.DeleteIncome(c.Param("incomeID"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Запись не найдена"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка удаления"})
		return
	}
	c.Status(http.StatusNoContent)
}

//
// РАСХОДЫ
//

func (h *Handler) CreateExpense(c *gin.Context) {
	var ins models.ExpenseInsert
	if err := c.ShouldBindJSON(&ins); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}

	ins.ProjectID = c.Param("id")
	ins.Title = strings.TrimSpace(ins.Title)
	if ins.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Нужно название"})
		return
	}
	if ins.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Сумма должна быть положительной"})
		return
	}
	if ins.Category == "" {
		ins.Category = models.ExpenseOther
	}
	uid := middleware.CurrentUserID(c)
	if ins.CreatedBy == nil {
		ins.CreatedBy = &uid
	}

	exp, err := h.store.AddExpense(ins)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения"})
		return
	}
	c.JSON(http.StatusCreated, exp)
}

func (h *Handler) UpdateExpense(c *gin.Context) {
	var upd models.ExpenseUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}
	if upd.Amount != nil && *upd.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Сумма должна быть положительной"})
		return
	}

	exp, err := h.store.UpdateExpense(c.Param("expenseID"), upd)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Запись не найдена"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения"})
		return
	}
	c.JSON(http.StatusOK, exp)
}

func (h *Handler) DeleteExpense(c *gin.Context) {
	err := h.store.DeleteExpense(c.Param("expenseID"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Запись не найдена"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка удаления"})
		return
	}
	c.Status(http.StatusNoContent)
}

//
// ДОЛИ УЧАСТНИКОВ
//

type shareForm struct {
	UserID          string  `json:"user_id"`
	SharePercentage float64 `json:"share_percentage"`
}

// SetRevenueShare задаёт долю участника. Значение за пределами [0, 100]
// прижимается к границе, после записи доли проекта перечитываются.
func (h *Handler) SetRevenueShare(c *gin.Context) {
	var form shareForm
	if err := c.ShouldBindJSON(&form); err != nil || form.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}

	projectID := c.Param("id")
	if err := h.store.UpdateRevenueShare(projectID, form.UserID, form.SharePercentage); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения доли"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shares":      h.store.RevenueShares(projectID),
		"total_share": h.store.TotalShare(projectID),
	})
}
