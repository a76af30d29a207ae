package board

import (
	"testing"

	"project-hub/internal/models"
)

// fakeStore отдаёт фиксированный набор задач и считает вызовы UpdateTask.
type fakeStore struct {
	tasks   map[string]models.Task
	updates []models.TaskUpdate
}

func newFakeStore(tasks ...models.Task) *fakeStore {
	f := &fakeStore{tasks: map[string]models.Task{}}
	for _, t := range tasks {
		f.tasks[t.ID] = t
	}
	return f
}

func (f *fakeStore) TaskByID(id string) *models.Task {
	t, ok := f.tasks[id]
	if !ok {
		return nil
	}
	return &t
}

func (f *fakeStore) UpdateTask(id string, upd models.TaskUpdate) (models.Task, error) {
	f.updates = append(f.updates, upd)
	t := f.tasks[id]
	if upd.Status != nil {
		t.Status = *upd.Status
	}
	f.tasks[id] = t
	return t, nil
}

func TestGestureEnd(t *testing.T) {
	tests := []struct {
		name        string
		activeID    string
		targetID    string
		wantMoved   bool
		wantUpdates int
		wantStatus  models.TaskStatus
	}{
		{
			name:     "drop into another column",
			activeID: "t-todo", targetID: "done",
			wantMoved: true, wantUpdates: 1, wantStatus: models.TaskDone,
		},
		{
			name:     "drop onto card from another column",
			activeID: "t-todo", targetID: "t-review",
			wantMoved: true, wantUpdates: 1, wantStatus: models.TaskReview,
		},
		{
			name:     "drop into own column",
			activeID: "t-todo", targetID: "todo",
			wantMoved: false, wantUpdates: 0,
		},
		{
			name:     "drop onto card with same status",
			activeID: "t-todo", targetID: "t-todo2",
			wantMoved: false, wantUpdates: 0,
		},
		{
			name:     "drop onto itself",
			activeID: "t-todo", targetID: "t-todo",
			wantMoved: false, wantUpdates: 0,
		},
		{
			name:     "drop into nothing",
			activeID: "t-todo", targetID: "",
			wantMoved: false, wantUpdates: 0,
		},
		{
			name:     "drop onto unknown target",
			activeID: "t-todo", targetID: "ghost",
			wantMoved: false, wantUpdates: 0,
		},
		{
			name:     "end without start",
			activeID: "", targetID: "done",
			wantMoved: false, wantUpdates: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore(
				models.Task{ID: "t-todo", Status: models.TaskTodo},
				models.Task{ID: "t-todo2", Status: models.TaskTodo},
				models.Task{ID: "t-review", Status: models.TaskReview},
			)
			g := NewGesture(store)
			if tt.activeID != "" {
				g.Start(tt.activeID)
			}
			g.Over(tt.targetID)

			moved, err := g.End(tt.targetID)
			if err != nil {
				t.Fatalf("End: %v", err)
			}
			if moved != tt.wantMoved {
				t.Errorf("moved = %v, want %v", moved, tt.wantMoved)
			}
			if len(store.updates) != tt.wantUpdates {
				t.Fatalf("updates = %d, want %d", len(store.updates), tt.wantUpdates)
			}
			if tt.wantUpdates == 1 {
				got := store.updates[0]
				if got.Status == nil || *got.Status != tt.wantStatus {
					t.Errorf("update status = %v, want %q", got.Status, tt.wantStatus)
				}
			}
			if g.Dragging() {
				t.Error("gesture must return to idle after End")
			}
		})
	}
}

func TestGestureCancel(t *testing.T) {
	store := newFakeStore(models.Task{ID: "t-1", Status: models.TaskTodo})

	g := NewGesture(store)
	g.Start("t-1")
	if !g.Dragging() {
		t.Fatal("expected dragging after Start")
	}
	g.Cancel()
	if g.Dragging() {
		t.Error("expected idle after Cancel")
	}

	// End после Cancel ничего не двигает
	moved, err := g.End("done")
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	if moved || len(store.updates) != 0 {
		t.Errorf("moved = %v, updates = %d, want no movement", moved, len(store.updates))
	}
}

func TestColumnStatus(t *testing.T) {
	for _, c := range Columns {
		st, ok := ColumnStatus(string(c))
		if !ok || st != c {
			t.Errorf("ColumnStatus(%q) = %q, %v", c, st, ok)
		}
	}
	if _, ok := ColumnStatus("task-123"); ok {
		t.Error("task id must not resolve to a column")
	}
}

func TestGroup(t *testing.T) {
	tasks := []models.Task{
		{ID: "a", Status: models.TaskTodo},
		{ID: "b", Status: models.TaskDone},
		{ID: "c", Status: models.TaskTodo},
	}

	cols := Group(tasks)
	if len(cols) != 4 {
		t.Fatalf("columns = %d, want 4", len(cols))
	}
	if cols[0].Status != models.TaskTodo || len(cols[0].Tasks) != 2 {
		t.Errorf("todo column: status %q, %d tasks", cols[0].Status, len(cols[0].Tasks))
	}
	if len(cols[1].Tasks) != 0 || len(cols[2].Tasks) != 0 {
		t.Error("empty columns must stay empty")
	}
	if len(cols[3].Tasks) != 1 || cols[3].Tasks[0].ID != "b" {
		t.Errorf("done column: %+v", cols[3].Tasks)
	}
}
