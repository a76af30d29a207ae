package storage

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"project-hub/internal/models"
)

// Demo — реализация Storage на фикстуре в памяти. Работает как "фальшивая
// база": то же поведение, что у Remote, но без персистентности — всё живёт
// только до конца процесса.
type Demo struct {
	mu sync.Mutex

	profiles      []models.Profile
	projects      []models.Project
	members       []models.ProjectMember
	tasks         []models.Task
	comments      []models.TaskComment
	notifications []models.Notification
	incomes       []models.ProjectIncome
	expenses      []models.ProjectExpense
	shares        []models.MemberRevenueShare
	files         []models.ProjectFile

	seq atomic.Int64
}

func OpenDemo() *Demo {
	d := &Demo{}
	d.seq.Store(time.Now().UnixMilli())
	seedDemoData(d)
	return d
}

// demoID — типизированный id в духе "task-1727612345678". Счётчик стартует
// с unix-миллисекунд и монотонно растёт, чтобы два быстрых create не
// столкнулись.
func (d *Demo) demoID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, d.seq.Add(1))
}

//
// ПРОФИЛИ
//

func (d *Demo) Profiles() ([]models.Profile, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := append([]models.Profile(nil), d.profiles...)
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}

func (d *Demo) Profile(id string) (*models.Profile, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, p := range d.profiles {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (d *Demo) ProfileByEmail(email string) (*models.Profile, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, p := range d.profiles {
		if p.Email == email {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (d *Demo) CreateProfile(p models.Profile) (models.Profile, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.profiles {
		if existing.Email == p.Email {
			return models.Profile{}, ErrDuplicate
		}
	}

	now := time.Now()
	if p.ID == "" {
		p.ID = d.demoID("member")
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	d.profiles = append(d.profiles, p)
	return p, nil
}

func (d *Demo) UpdateProfile(id string, upd models.ProfileUpdate) (models.Profile, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.profiles {
		if d.profiles[i].ID != id {
			continue
		}
		p := &d.profiles[i]
		if upd.FullName != nil {
			p.FullName = *upd.FullName
		}
		if upd.Email != nil {
			p.Email = *upd.Email
		}
		if upd.JobTitle != nil {
			p.JobTitle = upd.JobTitle
		}
		if upd.Bio != nil {
			p.Bio = upd.Bio
		}
		if upd.AvatarURL != nil {
			p.AvatarURL = upd.AvatarURL
		}
		if upd.PasswordHash != nil {
			p.PasswordHash = *upd.PasswordHash
		}
		if upd.LastLogin != nil {
			p.LastLogin = upd.LastLogin
		}
		p.UpdatedAt = time.Now()
		return *p, nil
	}
	return models.Profile{}, ErrNotFound
}

func (d *Demo) DeleteProfile(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.profiles {
		if d.profiles[i].ID == id {
			d.profiles = append(d.profiles[:i], d.profiles[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

//
// ПРОЕКТЫ
//

func (d *Demo) Projects() ([]models.Project, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := append([]models.Project(nil), d.projects...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (d *Demo) Project(id string) (*models.Project, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, p := range d.projects {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (d *Demo) CreateProject(ins models.ProjectInsert) (models.Project, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	status := ins.Status
	if status == "" {
		status = models.ProjectActive
	}

	now := time.Now()
	p := models.Project{
		ID:            d.demoID("project"),
		CreatedAt:     now,
		UpdatedAt:     now,
		Name:          ins.Name,
		Description:   ins.Description,
		Status:        status,
		StartDate:     ins.StartDate,
		EndDate:       ins.EndDate,
		DemoURL:       ins.DemoURL,
		ProductionURL: ins.ProductionURL,
		GithubURL:     ins.GithubURL,
		CreatedBy:     ins.CreatedBy,
	}
	d.projects = append(d.projects, p)
	return p, nil
}

func (d *Demo) UpdateProject(id string, upd models.ProjectUpdate) (models.Project, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.projects {
		if d.projects[i].ID != id {
			continue
		}
		p := &d.projects[i]
		if upd.Name != nil {
			p.Name = *upd.Name
		}
		if upd.Description != nil {
			p.Description = upd.Description
		}
		if upd.Status != nil {
			p.Status = *upd.Status
		}
		if upd.StartDate != nil {
			p.StartDate = upd.StartDate
		}
		if upd.EndDate != nil {
			p.EndDate = upd.EndDate
		}
		if upd.DemoURL != nil {
			p.DemoURL = upd.DemoURL
		}
		if upd.ProductionURL != nil {
			p.ProductionURL = upd.ProductionURL
		}
		if upd.GithubURL != nil {
			p.GithubURL = upd.GithubURL
		}
		p.UpdatedAt = time.Now()
		return *p, nil
	}
	return models.Project{}, ErrNotFound
}

func (d *Demo) DeleteProject(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.projects {
		if d.projects[i].ID == id {
			// зависимые строки не трогаем — каскада нет и у настоящей базы
			d.projects = append(d.projects[:i], d.projects[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

//
// УЧАСТНИКИ ПРОЕКТОВ
//

func (d *Demo) ProjectMembers() ([]models.ProjectMember, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]models.ProjectMember(nil), d.members...), nil
}

func (d *Demo) ProjectMembersOf(projectID string) ([]models.ProjectMember, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []models.ProjectMember
	for _, m := range d.members {
		if m.ProjectID == projectID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (d *Demo) AddProjectMember(projectID, userID string, role models.MemberRole) (models.ProjectMember, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	// составная идентичность: вторая строка той же пары запрещена,
	// как и уникальным индексом в базе
	for _, m := range d.members {
		if m.ProjectID == projectID && m.UserID == userID {
			return models.ProjectMember{}, ErrDuplicate
		}
	}

	m := models.ProjectMember{
		ID:        fmt.Sprintf("pm-%s-%s", projectID, userID),
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
		JoinedAt:  time.Now(),
	}
	d.members = append(d.members, m)
	return m, nil
}

func (d *Demo) RemoveProjectMember(projectID, userID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.members {
		if d.members[i].ProjectID == projectID && d.members[i].UserID == userID {
			d.members = append(d.members[:i], d.members[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

//
// ЗАДАЧИ
//

func (d *Demo) Tasks(projectID string) ([]models.Task, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []models.Task
	for _, t := range d.tasks {
		if projectID == "" || t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (d *Demo) CreateTask(ins models.TaskInsert) (models.Task, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	status := ins.Status
	if status == "" {
		status = models.TaskTodo
	}
	priority := ins.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	now := time.Now()
	t := models.Task{
		ID:          d.demoID("task"),
		CreatedAt:   now,
		UpdatedAt:   now,
		ProjectID:   ins.ProjectID,
		Title:       ins.Title,
		Description: ins.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     ins.DueDate,
		AssigneeID:  ins.AssigneeID,
		CreatedBy:   ins.CreatedBy,
	}
	d.tasks = append(d.tasks, t)
	return t, nil
}

func (d *Demo) UpdateTask(id string, upd models.TaskUpdate) (models.Task, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.tasks {
		if d.tasks[i].ID != id {
			continue
		}
		t := &d.tasks[i]
		if upd.ProjectID != nil {
			t.ProjectID = *upd.ProjectID
		}
		if upd.Title != nil {
			t.Title = *upd.Title
		}
		if upd.Description != nil {
			t.Description = upd.Description
		}
		if upd.Status != nil {
			t.Status = *upd.Status
		}
		if upd.Priority != nil {
			t.Priority = *upd.Priority
		}
		if upd.DueDate != nil {
			t.DueDate = upd.DueDate
		}
		if upd.AssigneeID != nil {
			t.AssigneeID = upd.AssigneeID
		}
		t.UpdatedAt = time.Now()
		return *t, nil
	}
	return models.Task{}, ErrNotFound
}

func (d *Demo) DeleteTask(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.tasks {
		if d.tasks[i].ID == id {
			d.tasks = append(d.tasks[:i], d.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

//
// КОММЕНТАРИИ
//

func (d *Demo) TaskComments(taskID string) ([]models.TaskComment, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []models.TaskComment
	for _, c := range d.comments {
		if c.TaskID == taskID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (d *Demo) CreateTaskComment(taskID, userID, content string) (models.TaskComment, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	c := models.TaskComment{
		ID:        d.demoID("comment"),
		CreatedAt: time.Now(),
		TaskID:    taskID,
		UserID:    userID,
		Content:   content,
	}
	d.comments = append(d.comments, c)
	return c, nil
}

func (d *Demo) DeleteTaskComment(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.comments {
		if d.comments[i].ID == id {
			d.comments = append(d.comments[:i], d.comments[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

//
// УВЕДОМЛЕНИЯ
//

func (d *Demo) Notifications(userID string) ([]models.Notification, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []models.Notification
	for _, n := range d.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (d *Demo) CreateNotification(ins models.NotificationInsert) (models.Notification, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := models.Notification{
		ID:            d.demoID("notif"),
		CreatedAt:     time.Now(),
		UserID:        ins.UserID,
		Type:          ins.Type,
		Title:         ins.Title,
		Content:       ins.Content,
		ReferenceID:   ins.ReferenceID,
		ReferenceType: ins.ReferenceType,
	}
	d.notifications = append(d.notifications, n)
	return n, nil
}

func (d *Demo) MarkNotificationRead(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.notifications {
		if d.notifications[i].ID == id {
			d.notifications[i].IsRead = true
			return nil
		}
	}
	return ErrNotFound
}

func (d *Demo) MarkAllNotificationsRead(userID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.notifications {
		if d.notifications[i].UserID == userID {
			d.notifications[i].IsRead = true
		}
	}
	return nil
}

//
// ФИНАНСЫ
//

func (d *Demo) Incomes(projectID string) ([]models.ProjectIncome, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []models.ProjectIncome
	for _, row := range d.incomes {
		if projectID == "" || row.ProjectID == projectID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (d *Demo) CreateIncome(ins models.IncomeInsert) (models.ProjectIncome, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	row := models.ProjectIncome{
		ID:          d.demoID("income"),
		CreatedAt:   time.Now(),
		ProjectID:   ins.ProjectID,
		Title:       ins.Title,
		Description: ins.Description,
		Amount:      ins.Amount,
		Date:        ins.Date,
		Category:    ins.Category,
		CreatedBy:   ins.CreatedBy,
	}
	d.incomes = append(d.incomes, row)
	return row, nil
}

func (d *Demo) UpdateIncome(id string, upd models.IncomeUpdate) (models.ProjectIncome, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.incomes {
		if d.incomes[i].ID != id {
			continue
		}
		row := &d.incomes[i]
		if upd.Title != nil {
			row.Title = *upd.Title
		}
		if upd.Description != nil {
			row.Description = upd.Description
		}
		if upd.Amount != nil {
			row.Amount = *upd.Amount
		}
		if upd.Date != nil {
			row.Date = *upd.Date
		}
		if upd.Category != nil {
			row.Category = *upd.Category
		}
		return *row, nil
	}
	return models.ProjectIncome{}, ErrNotFound
}

func (d *Demo) DeleteIncome(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.incomes {
		if d.incomes[i].ID == id {
			d.incomes = append(d.incomes[:i], d.incomes[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (d *Demo) Expenses(projectID string) ([]models.ProjectExpense, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []models.ProjectExpense
	for _, row := range d.expenses {
		if projectID == "" || row.ProjectID == projectID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (d *Demo) CreateExpense(ins models.ExpenseInsert) (models.ProjectExpense, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	row := models.ProjectExpense{
		ID:          d.demoID("expense"),
		CreatedAt:   time.Now(),
		ProjectID:   ins.ProjectID,
		Title:       ins.Title,
		Description: ins.Description,
		Amount:      ins.Amount,
		Date:        ins.Date,
		Category:    ins.Category,
		CreatedBy:   ins.CreatedBy,
	}
	d.expenses = append(d.expenses, row)
	return row, nil
}

func (d *Demo) UpdateExpense(id string, upd models.ExpenseUpdate) (models.ProjectExpense, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.expenses {
		if d.expenses[i].ID != id {
			continue
		}
		row := &d.expenses[i]
		if upd.Title != nil {
			row.Title = *upd.Title
		}
		if upd.Description != nil {
			row.Description = upd.Description
		}
		if upd.Amount != nil {
			row.Amount = *upd.Amount
		}
		if upd.Date != nil {
			row.Date = *upd.Date
		}
		if upd.Category != nil {
			row.Category = *upd.Category
		}
		return *row, nil
	}
	return models.ProjectExpense{}, ErrNotFound
}

func (d *Demo) DeleteExpense(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.expenses {
		if d.expenses[i].ID == id {
			d.expenses = append(d.expenses[:i], d.expenses[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

//
// ДОЛИ ВЫРУЧКИ
//

func (d *Demo) RevenueShares(projectID string) ([]models.MemberRevenueShare, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []models.MemberRevenueShare
	for _, s := range d.shares {
		if projectID == "" || s.ProjectID == projectID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (d *Demo) UpsertRevenueShare(projectID, userID string, pct float64) (models.MemberRevenueShare, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.shares {
		if d.shares[i].ProjectID == projectID && d.shares[i].UserID == userID {
			d.shares[i].SharePercentage = pct
			d.shares[i].UpdatedAt = time.Now()
			return d.shares[i], nil
		}
	}

	now := time.Now()
	s := models.MemberRevenueShare{
		ID:              d.demoID("share"),
		CreatedAt:       now,
		UpdatedAt:       now,
		ProjectID:       projectID,
		UserID:          userID,
		SharePercentage: pct,
	}
	d.shares = append(d.shares, s)
	return s, nil
}

//
// ФАЙЛЫ ПРОЕКТОВ
//

func (d *Demo) ProjectFiles(projectID string) ([]models.ProjectFile, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []models.ProjectFile
	for _, f := range d.files {
		if f.ProjectID == projectID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (d *Demo) CreateProjectFile(ins models.ProjectFileInsert) (models.ProjectFile, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	f := models.ProjectFile{
		ID:         d.demoID("file"),
		CreatedAt:  time.Now(),
		ProjectID:  ins.ProjectID,
		Name:       ins.Name,
		FilePath:   ins.FilePath,
		FileSize:   ins.FileSize,
		UploadedBy: ins.UploadedBy,
	}
	d.files = append(d.files, f)
	return f, nil
}

func (d *Demo) DeleteProjectFile(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.files {
		if d.files[i].ID == id {
			d.files = append(d.files[:i], d.files[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
