package storage

import (
	"errors"
	"testing"
	"time"

	"project-hub/internal/models"
)

func TestDemoSeed(t *testing.T) {
	d := OpenDemo()

	profiles, err := d.Profiles()
	if err != nil {
		t.Fatalf("Profiles: %v", err)
	}
	if len(profiles) != 5 {
		t.Errorf("profiles = %d, want 5", len(profiles))
	}
	for i := 1; i < len(profiles); i++ {
		if profiles[i-1].FullName > profiles[i].FullName {
			t.Errorf("profiles not sorted by name: %q before %q", profiles[i-1].FullName, profiles[i].FullName)
		}
	}

	projects, err := d.Projects()
	if err != nil {
		t.Fatalf("Projects: %v", err)
	}
	if len(projects) != 3 {
		t.Errorf("projects = %d, want 3", len(projects))
	}

	notifs, err := d.Notifications(DemoUserID)
	if err != nil {
		t.Fatalf("Notifications: %v", err)
	}
	if len(notifs) != 2 {
		t.Errorf("notifications = %d, want 2", len(notifs))
	}
	// свежие сверху
	if len(notifs) == 2 && notifs[0].CreatedAt.Before(notifs[1].CreatedAt) {
		t.Error("notifications must be sorted newest first")
	}
}

func TestDemoGetMissingRow(t *testing.T) {
	d := OpenDemo()

	p, err := d.Project("no-such-project")
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if p != nil {
		t.Errorf("got %+v, want nil for missing project", p)
	}

	pr, err := d.Profile("no-such-user")
	if err != nil || pr != nil {
		t.Errorf("Profile = %+v, %v, want nil, nil", pr, err)
	}
}

func TestDemoNotFoundOnMutation(t *testing.T) {
	d := OpenDemo()

	name := "x"
	if _, err := d.UpdateProject("ghost", models.ProjectUpdate{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateProject err = %v, want ErrNotFound", err)
	}
	if err := d.DeleteTask("ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteTask err = %v, want ErrNotFound", err)
	}
	if err := d.MarkNotificationRead("ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("MarkNotificationRead err = %v, want ErrNotFound", err)
	}
}

func TestDemoIDsAreUnique(t *testing.T) {
	d := OpenDemo()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		task, err := d.CreateTask(models.TaskInsert{ProjectID: "project-1", Title: "t"})
		if err != nil {
			t.Fatalf("CreateTask: %v", err)
		}
		if seen[task.ID] {
			t.Fatalf("duplicate id %s", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestDemoTasksFilter(t *testing.T) {
	d := OpenDemo()

	all, err := d.Tasks("")
	if err != nil {
		t.Fatalf("Tasks: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("all tasks = %d, want 5", len(all))
	}

	scoped, err := d.Tasks("project-1")
	if err != nil {
		t.Fatalf("Tasks scoped: %v", err)
	}
	if len(scoped) != 3 {
		t.Errorf("project-1 tasks = %d, want 3", len(scoped))
	}
	for _, task := range scoped {
		if task.ProjectID != "project-1" {
			t.Errorf("foreign task %s in scoped result", task.ID)
		}
	}
}

// Пара (проект, участник) уникальна и в демо-режиме, как уникальный
// индекс в базе.
func TestDemoAddProjectMemberDuplicate(t *testing.T) {
	d := OpenDemo()

	if _, err := d.AddProjectMember("project-1", "1", models.RoleMember); err != nil {
		t.Fatalf("AddProjectMember: %v", err)
	}
	if _, err := d.AddProjectMember("project-1", "1", models.RoleAdmin); !errors.Is(err, ErrDuplicate) {
		t.Errorf("second add err = %v, want ErrDuplicate", err)
	}

	members, err := d.ProjectMembersOf("project-1")
	if err != nil {
		t.Fatalf("ProjectMembersOf: %v", err)
	}
	count := 0
	for _, m := range members {
		if m.UserID == "1" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("rows for (project-1, user 1) = %d, want 1", count)
	}

	// после удаления пару можно добавить заново
	if err := d.RemoveProjectMember("project-1", "1"); err != nil {
		t.Fatalf("RemoveProjectMember: %v", err)
	}
	if _, err := d.AddProjectMember("project-1", "1", models.RoleOwner); err != nil {
		t.Errorf("re-add after remove: %v", err)
	}
}

func TestDemoCreateProfileDuplicateEmail(t *testing.T) {
	d := OpenDemo()

	// anna@example.com уже в фикстуре
	_, err := d.CreateProfile(models.Profile{FullName: "Другая Анна", Email: "anna@example.com"})
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("err = %v, want ErrDuplicate", err)
	}

	profiles, _ := d.Profiles()
	if len(profiles) != 5 {
		t.Errorf("profiles = %d, want untouched 5", len(profiles))
	}
}

func TestDemoUpsertRevenueShare(t *testing.T) {
	d := OpenDemo()

	// обновление существующей пары
	s, err := d.UpsertRevenueShare("project-1", "1", 50)
	if err != nil {
		t.Fatalf("UpsertRevenueShare: %v", err)
	}
	if s.ID != "share-1" {
		t.Errorf("upsert replaced row id: %s", s.ID)
	}
	if s.SharePercentage != 50 {
		t.Errorf("share = %v, want 50", s.SharePercentage)
	}

	// вставка новой пары
	s2, err := d.UpsertRevenueShare("project-3", "2", 15)
	if err != nil {
		t.Fatalf("UpsertRevenueShare insert: %v", err)
	}
	if s2.ProjectID != "project-3" || s2.SharePercentage != 15 {
		t.Errorf("inserted share = %+v", s2)
	}

	shares, err := d.RevenueShares("project-1")
	if err != nil {
		t.Fatalf("RevenueShares: %v", err)
	}
	count := 0
	for _, sh := range shares {
		if sh.UserID == "1" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("rows for (project-1, user 1) = %d, want 1", count)
	}
}

func TestDemoCommentsOrder(t *testing.T) {
	d := OpenDemo()

	for _, text := range []string{"первый", "второй", "третий"} {
		if _, err := d.CreateTaskComment("task-1", "1", text); err != nil {
			t.Fatalf("CreateTaskComment: %v", err)
		}
		time.Sleep(time.Millisecond)
	}

	comments, err := d.TaskComments("task-1")
	if err != nil {
		t.Fatalf("TaskComments: %v", err)
	}
	if len(comments) != 3 {
		t.Fatalf("comments = %d, want 3", len(comments))
	}
	if comments[0].Content != "первый" || comments[2].Content != "третий" {
		t.Errorf("comments out of order: %+v", comments)
	}
}
