// Package board — канбан-доска задач: фиксированные колонки по статусу
// и разбор drag-and-drop жеста в единственный перевод статуса.
package board

import "project-hub/internal/models"

// Columns — четыре колонки доски в фиксированном порядке. Принадлежность
// колонке — чистая функция от статуса, отдельного поля позиции нет,
// поэтому порядок карточек внутри колонки не персистится.
var Columns = [4]models.TaskStatus{
	models.TaskTodo,
	models.TaskInProgress,
	models.TaskReview,
	models.TaskDone,
}

// ColumnStatus распознаёт токен колонки в id drop-цели.
func ColumnStatus(id string) (models.TaskStatus, bool) {
	for _, c := range Columns {
		if string(c) == id {
			return c, true
		}
	}
	return "", false
}

type Column struct {
	Status models.TaskStatus `json:"status"`
	Tasks  []models.Task     `json:"tasks"`
}

// Group раскладывает задачи по колонкам, сохраняя порядок колонок доски.
func Group(tasks []models.Task) []Column {
	out := make([]Column, len(Columns))
	for i, st := range Columns {
		out[i].Status = st
	}
	for _, t := range tasks {
		for i, st := range Columns {
			if t.Status == st {
				out[i].Tasks = append(out[i].Tasks, t)
				break
			}
		}
	}
	return out
}

// TaskStore — то, что доске нужно от стора.
type TaskStore interface {
	TaskByID(id string) *models.Task
	UpdateTask(id string, upd models.TaskUpdate) (models.Task, error)
}

// Gesture — один drag-жест: idle -> dragging -> idle. Промежуточные
// "over"-события данные не трогают — статус меняется один раз, на дропе,
// иначе каждое наведение порождало бы лишний сетевой вызов и дёргание UI.
type Gesture struct {
	store    TaskStore
	activeID string // "" — жест не идёт
}

func NewGesture(store TaskStore) *Gesture {
	return &Gesture{store: store}
}

func (g *Gesture) Dragging() bool { return g.activeID != "" }

// Start фиксирует поднятую карточку. Никаких мутаций.
func (g *Gesture) Start(taskID string) {
	g.activeID = taskID
}

// Over — подсветка цели под курсором, к данным отношения не имеет.
func (g *Gesture) Over(targetID string) {}

// Cancel — срыв жеста, эквивалентен дропу в пустоту.
func (g *Gesture) Cancel() {
	g.activeID = ""
}

// End разбирает drop-цель и выдаёт не больше одного UpdateTask за жест.
// Правила:
//   - цель-колонка: статус задачи становится статусом колонки, если отличается;
//   - цель-карточка: задача "вступает" в колонку этой карточки, если статусы разные;
//   - пустота, сама задача, своя колонка — ничего не происходит.
//
// Жест безусловно возвращается в idle, удачный дроп или нет.
func (g *Gesture) End(targetID string) (bool, error) {
	activeID := g.activeID
	g.activeID = ""

	if activeID == "" || targetID == "" || targetID == activeID {
		return false, nil
	}

	active := g.store.TaskByID(activeID)
	if active == nil {
		return false, nil
	}

	var newStatus models.TaskStatus
	if st, ok := ColumnStatus(targetID); ok {
		newStatus = st
	} else {
		over := g.store.TaskByID(targetID)
		if over == nil {
			return false, nil
		}
		newStatus = over.Status
	}

	if active.Status == newStatus {
		return false, nil
	}

	if _, err := g.store.UpdateTask(activeID, models.TaskUpdate{Status: &newStatus}); err != nil {
		return false, err
	}
	return true, nil
}
