package store

import (
	"math"
	"strings"

	"project-hub/internal/models"
)

// Производные выборки. Считаются на каждом чтении по зеркалу,
// в базу не ходят.

type SearchResults struct {
	Projects []models.Project `json:"projects"`
	Tasks    []models.Task    `json:"tasks"`
}

// Search — регистронезависимый поиск подстроки по имени/описанию проектов
// и заголовку/описанию задач.
func (s *Store) Search(query string) SearchResults {
	q := strings.ToLower(strings.TrimSpace(query))

	var res SearchResults
	if q == "" {
		return res
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.projects {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			(p.Description != nil && strings.Contains(strings.ToLower(*p.Description), q)) {
			res.Projects = append(res.Projects, p)
		}
	}
	for _, t := range s.tasks {
		if strings.Contains(strings.ToLower(t.Title), q) ||
			(t.Description != nil && strings.Contains(strings.ToLower(*t.Description), q)) {
			res.Tasks = append(res.Tasks, t)
		}
	}
	return res
}

// ProjectProgress — процент закрытых задач проекта, round(done/total*100).
// Для проекта без задач — 0.
func (s *Store) ProjectProgress(projectID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total, done := 0, 0
	for _, t := range s.tasks {
		if t.ProjectID != projectID {
			continue
		}
		total++
		if t.Status == models.TaskDone {
			done++
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

type FinanceSummary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	NetProfit    float64 `json:"net_profit"`
	// процент с одним знаком после запятой; 0 при нулевом доходе
	ProfitMargin float64 `json:"profit_margin"`
}

func (s *Store) ProjectFinanceSummary(projectID string) FinanceSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum FinanceSummary
	for _, row := range s.incomes {
		if row.ProjectID == projectID {
			sum.TotalIncome += row.Amount
		}
	}
	for _, row := range s.expenses {
		if row.ProjectID == projectID {
			sum.TotalExpense += row.Amount
		}
	}
	sum.NetProfit = sum.TotalIncome - sum.TotalExpense
	if sum.TotalIncome > 0 {
		sum.ProfitMargin = math.Round(sum.NetProfit/sum.TotalIncome*100*10) / 10
	}
	return sum
}

// TotalShare — сумма долей по проекту. Ни к чему не принуждает:
// UI показывает расхождение с 100% как предупреждение, не как ошибку.
func (s *Store) TotalShare(projectID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, row := range s.shares {
		if row.ProjectID == projectID {
			total += row.SharePercentage
		}
	}
	return total
}

// MemberPayout — выплата участнику от чистой прибыли по его доле.
func MemberPayout(netProfit, sharePercentage float64) float64 {
	return netProfit * sharePercentage / 100
}
