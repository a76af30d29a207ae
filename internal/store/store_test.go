package store

import (
	"errors"
	"strings"
	"testing"

	"project-hub/internal/models"
	"project-hub/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(storage.OpenDemo())
	if err := s.LoadAll(); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	return s
}

func TestCreateProjectDefaults(t *testing.T) {
	s := newTestStore(t)
	before := len(s.Projects())

	p, err := s.CreateProject(models.ProjectInsert{Name: "Новый портал"})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if p.ID == "" || !strings.HasPrefix(p.ID, "project-") {
		t.Errorf("id = %q, want project- prefix", p.ID)
	}
	if p.Status != models.ProjectActive {
		t.Errorf("status = %q, want %q", p.Status, models.ProjectActive)
	}
	if p.CreatedAt.IsZero() {
		t.Error("created_at must be set")
	}
	if got := len(s.Projects()); got != before+1 {
		t.Errorf("projects = %d, want %d", got, before+1)
	}
}

func TestCreateAndUpdateTask(t *testing.T) {
	s := newTestStore(t)

	created, err := s.CreateTask(models.TaskInsert{
		ProjectID: "project-1",
		Title:     "Настроить CI",
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if created.Status != models.TaskTodo {
		t.Errorf("default status = %q, want todo", created.Status)
	}
	if created.Priority != models.PriorityMedium {
		t.Errorf("default priority = %q, want medium", created.Priority)
	}

	st := models.TaskInProgress
	updated, err := s.UpdateTask(created.ID, models.TaskUpdate{Status: &st})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.Status != models.TaskInProgress {
		t.Errorf("status = %q, want in_progress", updated.Status)
	}
	if updated.Title != "Настроить CI" {
		t.Errorf("title must survive partial update, got %q", updated.Title)
	}

	// зеркало видит ту же версию
	mirrored := s.TaskByID(created.ID)
	if mirrored == nil || mirrored.Status != models.TaskInProgress {
		t.Errorf("mirror out of sync: %+v", mirrored)
	}
}

func TestUpdateUnknownTask(t *testing.T) {
	s := newTestStore(t)

	st := models.TaskDone
	_, err := s.UpdateTask("no-such-task", models.TaskUpdate{Status: &st})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if err := s.DeleteTask("no-such-task"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("delete err = %v, want ErrNotFound", err)
	}
}

// Повторная загрузка задач одного проекта не должна плодить дубли
// и не должна трогать задачи других проектов.
func TestLoadTasksPartitionReplace(t *testing.T) {
	s := newTestStore(t)

	countByProject := func() map[string]int {
		out := map[string]int{}
		for _, task := range s.Tasks() {
			out[task.ProjectID]++
		}
		return out
	}
	before := countByProject()

	for i := 0; i < 3; i++ {
		if err := s.LoadTasks("project-1"); err != nil {
			t.Fatalf("LoadTasks: %v", err)
		}
	}

	after := countByProject()
	for pid, n := range before {
		if after[pid] != n {
			t.Errorf("project %s: tasks = %d, want %d", pid, after[pid], n)
		}
	}

	seen := map[string]bool{}
	for _, task := range s.Tasks() {
		if seen[task.ID] {
			t.Errorf("duplicate task %s after reload", task.ID)
		}
		seen[task.ID] = true
	}
}

// Перечитывание раздела убирает строки, которых в свежем ответе
// хранилища уже нет, и не плодит дубли пар.
func TestLoadPartitionDropsStaleRows(t *testing.T) {
	d := storage.OpenDemo()
	s := New(d)
	if err := s.LoadAll(); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	if _, err := s.AddProjectMember("project-1", "1", ""); err != nil {
		t.Fatalf("AddProjectMember: %v", err)
	}
	if _, err := s.AddProjectMember("project-1", "2", ""); err != nil {
		t.Fatalf("AddProjectMember: %v", err)
	}

	// участник исчезает в хранилище мимо зеркала
	if err := d.RemoveProjectMember("project-1", "2"); err != nil {
		t.Fatalf("RemoveProjectMember: %v", err)
	}
	if err := s.LoadProjectMembers("project-1"); err != nil {
		t.Fatalf("LoadProjectMembers: %v", err)
	}

	members := s.ProjectMembers("project-1")
	if len(members) != 1 {
		t.Fatalf("members = %d, want 1 after stale row dropped", len(members))
	}
	if members[0].UserID != "1" {
		t.Errorf("remaining member = %s, want user 1", members[0].UserID)
	}

	seenPairs := map[string]bool{}
	for _, m := range members {
		key := m.ProjectID + "/" + m.UserID
		if seenPairs[key] {
			t.Errorf("duplicate pair %s", key)
		}
		seenPairs[key] = true
	}

	// то же для задач
	if err := d.DeleteTask("task-1"); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if err := s.LoadTasks("project-1"); err != nil {
		t.Fatalf("LoadTasks: %v", err)
	}
	if s.TaskByID("task-1") != nil {
		t.Error("task-1 must disappear from the mirror after reload")
	}
	for _, task := range s.Tasks() {
		if task.ProjectID == "project-1" && task.ID == "task-1" {
			t.Error("stale task survived partition reload")
		}
	}
}

func TestAddProjectMemberDuplicatePair(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.AddProjectMember("project-2", "3", ""); err != nil {
		t.Fatalf("AddProjectMember: %v", err)
	}
	if _, err := s.AddProjectMember("project-2", "3", ""); !errors.Is(err, storage.ErrDuplicate) {
		t.Errorf("second add err = %v, want ErrDuplicate", err)
	}
	if got := len(s.ProjectMembers("project-2")); got != 1 {
		t.Errorf("members = %d, want 1", got)
	}
}

func TestDeleteProject(t *testing.T) {
	s := newTestStore(t)

	if err := s.DeleteProject("project-3"); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if s.ProjectByID("project-3") != nil {
		t.Error("project-3 still visible after delete")
	}
	if err := s.DeleteProject("project-3"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestCreateMemberHashesPassword(t *testing.T) {
	s := newTestStore(t)

	m, err := s.CreateMember(models.Profile{
		FullName: "Олег Ершов",
		Email:    "oleg@example.com",
	}, "s3cret-pass")
	if err != nil {
		t.Fatalf("CreateMember: %v", err)
	}
	if m.PasswordHash == "" || m.PasswordHash == "s3cret-pass" {
		t.Fatal("password must be stored as a hash")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Errorf("hash does not match password: %v", err)
	}

	found, err := s.MemberByEmail("oleg@example.com")
	if err != nil || found == nil || found.ID != m.ID {
		t.Errorf("MemberByEmail = %+v, %v", found, err)
	}
}

func TestNotificationsFlow(t *testing.T) {
	s := newTestStore(t)

	if err := s.LoadNotifications(storage.DemoUserID); err != nil {
		t.Fatalf("LoadNotifications: %v", err)
	}
	notifs := s.Notifications()
	if len(notifs) == 0 {
		t.Fatal("demo user must have seeded notifications")
	}

	if err := s.MarkNotificationRead(notifs[0].ID); err != nil {
		t.Fatalf("MarkNotificationRead: %v", err)
	}
	if err := s.MarkAllNotificationsRead(storage.DemoUserID); err != nil {
		t.Fatalf("MarkAllNotificationsRead: %v", err)
	}

	if err := s.LoadNotifications(storage.DemoUserID); err != nil {
		t.Fatalf("reload: %v", err)
	}
	for _, n := range s.Notifications() {
		if !n.IsRead {
			t.Errorf("notification %s is still unread", n.ID)
		}
	}
}

// Успешный update строки, которой зеркало ещё не видело, добавляет её,
// а не теряет — как и у задач с проектами.
func TestUpdateIncomeAbsentFromMirror(t *testing.T) {
	d := storage.OpenDemo()
	s := New(d)
	if err := s.LoadAll(); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	// строка появляется в хранилище мимо зеркала
	row, err := d.CreateIncome(models.IncomeInsert{
		ProjectID: "project-1",
		Title:     "Финальный платёж",
		Amount:    40000,
	})
	if err != nil {
		t.Fatalf("CreateIncome: %v", err)
	}

	amount := 45000.0
	updated, err := s.UpdateIncome(row.ID, models.IncomeUpdate{Amount: &amount})
	if err != nil {
		t.Fatalf("UpdateIncome: %v", err)
	}
	if updated.Amount != 45000 {
		t.Errorf("amount = %v, want 45000", updated.Amount)
	}

	found := false
	for _, inc := range s.Incomes("project-1") {
		if inc.ID == row.ID {
			if found {
				t.Fatal("income appended twice")
			}
			found = true
			if inc.Amount != 45000 {
				t.Errorf("mirror amount = %v, want 45000", inc.Amount)
			}
		}
	}
	if !found {
		t.Error("updated income missing from the mirror")
	}
}

func TestRevenueShareClamp(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name string
		pct  float64
		want float64
	}{
		{"above range", 150, 100},
		{"below range", -10, 0},
		{"in range", 42.5, 42.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.UpdateRevenueShare("project-1", "4", tt.pct); err != nil {
				t.Fatalf("UpdateRevenueShare: %v", err)
			}
			var got *float64
			for _, sh := range s.RevenueShares("project-1") {
				if sh.UserID == "4" {
					v := sh.SharePercentage
					got = &v
				}
			}
			if got == nil {
				t.Fatal("share for user 4 not found after upsert")
			}
			if *got != tt.want {
				t.Errorf("share = %v, want %v", *got, tt.want)
			}
		})
	}

	// upsert по существующей паре не создаёт вторую строку
	count := 0
	for _, sh := range s.RevenueShares("project-1") {
		if sh.UserID == "4" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("rows for user 4 = %d, want 1", count)
	}
}
