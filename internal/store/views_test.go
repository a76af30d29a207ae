package store

import (
	"testing"

	"project-hub/internal/models"
)

// На демо-фикстуре у project-1 три задачи, одна закрыта.
func TestProjectProgress(t *testing.T) {
	s := newTestStore(t)

	if got := s.ProjectProgress("project-1"); got != 33 {
		t.Errorf("progress = %d, want 33", got)
	}
	if got := s.ProjectProgress("project-3"); got != 0 {
		t.Errorf("progress for project without tasks = %d, want 0", got)
	}

	// 4 задачи, 1 закрыта -> 25
	if _, err := s.CreateTask(models.TaskInsert{ProjectID: "project-1", Title: "Ревью макетов"}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if got := s.ProjectProgress("project-1"); got != 25 {
		t.Errorf("progress = %d, want 25", got)
	}
}

func TestProjectFinanceSummary(t *testing.T) {
	s := newTestStore(t)

	sum := s.ProjectFinanceSummary("project-1")
	if sum.TotalIncome != 225000 {
		t.Errorf("total income = %v, want 225000", sum.TotalIncome)
	}
	if sum.TotalExpense != 85000 {
		t.Errorf("total expense = %v, want 85000", sum.TotalExpense)
	}
	if sum.NetProfit != 140000 {
		t.Errorf("net profit = %v, want 140000", sum.NetProfit)
	}
	if sum.ProfitMargin != 62.2 {
		t.Errorf("profit margin = %v, want 62.2", sum.ProfitMargin)
	}

	// проект без финансов: нули и нулевая маржа без деления на ноль
	empty := s.ProjectFinanceSummary("project-3")
	if empty.TotalIncome != 0 || empty.NetProfit != 0 || empty.ProfitMargin != 0 {
		t.Errorf("empty summary = %+v", empty)
	}
}

func TestTotalShareAndPayout(t *testing.T) {
	s := newTestStore(t)

	if got := s.TotalShare("project-1"); got != 100 {
		t.Errorf("total share = %v, want 100", got)
	}

	// доля 35% от чистой прибыли 140000
	if got := MemberPayout(140000, 35); got != 49000 {
		t.Errorf("payout = %v, want 49000", got)
	}
	if got := MemberPayout(140000, 0); got != 0 {
		t.Errorf("payout with zero share = %v, want 0", got)
	}
}

func TestSearch(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name         string
		query        string
		wantProjects int
		wantTasks    int
	}{
		{"empty query", "", 0, 0},
		{"spaces only", "   ", 0, 0},
		{"project by name", "redesign", 1, 0},
		{"case insensitive", "MOBILE", 1, 0},
		{"task by title", "SEO", 0, 1},
		{"cyrillic", "дизайн", 1, 1},
		{"no matches", "kubernetes", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := s.Search(tt.query)
			if len(res.Projects) != tt.wantProjects {
				t.Errorf("projects = %d, want %d", len(res.Projects), tt.wantProjects)
			}
			if len(res.Tasks) != tt.wantTasks {
				t.Errorf("tasks = %d, want %d", len(res.Tasks), tt.wantTasks)
			}
		})
	}
}

func TestSearchSeesFreshData(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.CreateProject(models.ProjectInsert{Name: "Kubernetes Migration"}); err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	res := s.Search("kubernetes")
	if len(res.Projects) != 1 {
		t.Errorf("projects = %d, want 1", len(res.Projects))
	}
}
