package store

import (
	"sync"
	"time"

	"project-hub/internal/models"
	"project-hub/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

// Store — внутрипроцессное зеркало всех коллекций. Единственный владелец
// данных в памяти: хендлеры не держат своих копий, только производные
// выборки на чтение.
//
// Дисциплина мутаций: сначала вызов хранилища, и только при успехе —
// правка зеркала. Отката нет, потому что нечего откатывать; ошибка
// хранилища уходит вызывающему как есть, без ретраев.
type Store struct {
	mu sync.RWMutex
	st storage.Storage

	projects      []models.Project
	members       []models.Profile
	projectMembs  []models.ProjectMember
	tasks         []models.Task
	comments      []models.TaskComment
	notifications []models.Notification
	incomes       []models.ProjectIncome
	expenses      []models.ProjectExpense
	shares        []models.MemberRevenueShare
	files         []models.ProjectFile
}

func New(st storage.Storage) *Store {
	return &Store{st: st}
}

//
// ЗАГРУЗКА
//

// LoadAll вытягивает все коллекции целиком и замещает зеркало.
func (s *Store) LoadAll() error {
	projects, err := s.st.Projects()
	if err != nil {
		return err
	}
	tasks, err := s.st.Tasks("")
	if err != nil {
		return err
	}
	members, err := s.st.Profiles()
	if err != nil {
		return err
	}
	projectMembs, err := s.st.ProjectMembers()
	if err != nil {
		return err
	}
	incomes, err := s.st.Incomes("")
	if err != nil {
		return err
	}
	expenses, err := s.st.Expenses("")
	if err != nil {
		return err
	}
	shares, err := s.st.RevenueShares("")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = projects
	s.tasks = tasks
	s.members = members
	s.projectMembs = projectMembs
	s.incomes = incomes
	s.expenses = expenses
	s.shares = shares
	return nil
}

func (s *Store) LoadProjects() error {
	projects, err := s.st.Projects()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.projects = projects
	s.mu.Unlock()
	return nil
}

// LoadTasks с projectID подменяет только срез этого проекта
// (partition replace), без projectID — всю коллекцию.
func (s *Store) LoadTasks(projectID string) error {
	tasks, err := s.st.Tasks(projectID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if projectID == "" {
		s.tasks = tasks
		return nil
	}

	kept := s.tasks[:0:0]
	for _, t := range s.tasks {
		if t.ProjectID != projectID {
			kept = append(kept, t)
		}
	}
	s.tasks = append(kept, tasks...)
	return nil
}

func (s *Store) LoadMembers() error {
	members, err := s.st.Profiles()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.members = members
	s.mu.Unlock()
	return nil
}

func (s *Store) LoadNotifications(userID string) error {
	notifs, err := s.st.Notifications(userID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.notifications = notifs
	s.mu.Unlock()
	return nil
}

func (s *Store) LoadProjectMembers(projectID string) error {
	members, err := s.st.ProjectMembersOf(projectID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.projectMembs[:0:0]
	for _, m := range s.projectMembs {
		if m.ProjectID != projectID {
			kept = append(kept, m)
		}
	}
	s.projectMembs = append(kept, members...)
	return nil
}

// LoadProjectFinance перечитывает доходы, расходы и доли одного проекта,
// не трогая разделы остальных проектов.
func (s *Store) LoadProjectFinance(projectID string) error {
	incomes, err := s.st.Incomes(projectID)
	if err != nil {
		return err
	}
	expenses, err := s.st.Expenses(projectID)
	if err != nil {
		return err
	}
	shares, err := s.st.RevenueShares(projectID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	keptIn := s.incomes[:0:0]
	for _, row := range s.incomes {
		if row.ProjectID != projectID {
			keptIn = append(keptIn, row)
		}
	}
	s.incomes = append(keptIn, incomes...)

	keptEx := s.expenses[:0:0]
	for _, row := range s.expenses {
		if row.ProjectID != projectID {
			keptEx = append(keptEx, row)
		}
	}
	s.expenses = append(keptEx, expenses...)

	keptSh := s.shares[:0:0]
	for _, row := range s.shares {
		if row.ProjectID != projectID {
			keptSh = append(keptSh, row)
		}
	}
	s.shares = append(keptSh, shares...)
	return nil
}

func (s *Store) LoadProjectFiles(projectID string) error {
	files, err := s.st.ProjectFiles(projectID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.files[:0:0]
	for _, f := range s.files {
		if f.ProjectID != projectID {
			kept = append(kept, f)
		}
	}
	s.files = append(kept, files...)
	return nil
}

// ResetData — полная перезагрузка зеркала из хранилища.
func (s *Store) ResetData() error {
	return s.LoadAll()
}

//
// ЧТЕНИЕ
//

func (s *Store) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Project(nil), s.projects...)
}

func (s *Store) ProjectByID(id string) *models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			cp := p
			return &cp
		}
	}
	return nil
}

func (s *Store) Members() []models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Profile(nil), s.members...)
}

func (s *Store) MemberByID(id string) *models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.members {
		if m.ID == id {
			cp := m
			return &cp
		}
	}
	return nil
}

func (s *Store) ProjectMembers(projectID string) []models.ProjectMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.ProjectMember
	for _, m := range s.projectMembs {
		if projectID == "" || m.ProjectID == projectID {
			out = append(out, m)
		}
	}
	return out
}

func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Task(nil), s.tasks...)
}

func (s *Store) TaskByID(id string) *models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			cp := t
			return &cp
		}
	}
	return nil
}

func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Notification(nil), s.notifications...)
}

func (s *Store) Incomes(projectID string) []models.ProjectIncome {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.ProjectIncome
	for _, row := range s.incomes {
		if projectID == "" || row.ProjectID == projectID {
			out = append(out, row)
		}
	}
	return out
}

func (s *Store) Expenses(projectID string) []models.ProjectExpense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.ProjectExpense
	for _, row := range s.expenses {
		if projectID == "" || row.ProjectID == projectID {
			out = append(out, row)
		}
	}
	return out
}

func (s *Store) RevenueShares(projectID string) []models.MemberRevenueShare {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.MemberRevenueShare
	for _, row := range s.shares {
		if projectID == "" || row.ProjectID == projectID {
			out = append(out, row)
		}
	}
	return out
}

func (s *Store) ProjectFiles(projectID string) []models.ProjectFile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.ProjectFile
	for _, f := range s.files {
		if f.ProjectID == projectID {
			out = append(out, f)
		}
	}
	return out
}

//
// ПРОЕКТЫ
//

func (s *Store) CreateProject(ins models.ProjectInsert) (models.Project, error) {
	p, err := s.st.CreateProject(ins)
	if err != nil {
		return models.Project{}, err
	}

	s.mu.Lock()
	s.projects = append(s.projects, p)
	s.mu.Unlock()
	return p, nil
}

func (s *Store) UpdateProject(id string, upd models.ProjectUpdate) (models.Project, error) {
	p, err := s.st.UpdateProject(id, upd)
	if err != nil {
		return models.Project{}, err
	}

	s.mu.Lock()
	replaced := false
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		s.projects = append(s.projects, p)
	}
	s.mu.Unlock()
	return p, nil
}

func (s *Store) DeleteProject(id string) error {
	if err := s.st.DeleteProject(id); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *Store) AddProjectMember(projectID, userID string, role models.MemberRole) (models.ProjectMember, error) {
	if role == "" {
		role = models.RoleMember
	}
	m, err := s.st.AddProjectMember(projectID, userID, role)
	if err != nil {
		return models.ProjectMember{}, err
	}

	s.mu.Lock()
	s.projectMembs = append(s.projectMembs, m)
	s.mu.Unlock()
	return m, nil
}

func (s *Store) RemoveProjectMember(projectID, userID string) error {
	if err := s.st.RemoveProjectMember(projectID, userID); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.projectMembs {
		if s.projectMembs[i].ProjectID == projectID && s.projectMembs[i].UserID == userID {
			s.projectMembs = append(s.projectMembs[:i], s.projectMembs[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

//
// ЗАДАЧИ
//

func (s *Store) CreateTask(ins models.TaskInsert) (models.Task, error) {
	t, err := s.st.CreateTask(ins)
	if err != nil {
		return models.Task{}, err
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, t)
	s.mu.Unlock()
	return t, nil
}

func (s *Store) UpdateTask(id string, upd models.TaskUpdate) (models.Task, error) {
	t, err := s.st.UpdateTask(id, upd)
	if err != nil {
		return models.Task{}, err
	}

	s.mu.Lock()
	replaced := false
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i] = t
			replaced = true
			break
		}
	}
	if !replaced {
		s.tasks = append(s.tasks, t)
	}
	s.mu.Unlock()
	return t, nil
}

func (s *Store) DeleteTask(id string) error {
	if err := s.st.DeleteTask(id); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

//
// КОММЕНТАРИИ
//

func (s *Store) CommentsForTask(taskID string) ([]models.TaskComment, error) {
	comments, err := s.st.TaskComments(taskID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	kept := s.comments[:0:0]
	for _, c := range s.comments {
		if c.TaskID != taskID {
			kept = append(kept, c)
		}
	}
	s.comments = append(kept, comments...)
	s.mu.Unlock()
	return comments, nil
}

func (s *Store) AddComment(taskID, userID, content string) (models.TaskComment, error) {
	c, err := s.st.CreateTaskComment(taskID, userID, content)
	if err != nil {
		return models.TaskComment{}, err
	}

	s.mu.Lock()
	s.comments = append(s.comments, c)
	s.mu.Unlock()
	return c, nil
}

func (s *Store) DeleteComment(id string) error {
	if err := s.st.DeleteTaskComment(id); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.comments {
		if s.comments[i].ID == id {
			s.comments = append(s.comments[:i], s.comments[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

//
// УВЕДОМЛЕНИЯ
//

func (s *Store) CreateNotification(ins models.NotificationInsert) (models.Notification, error) {
	n, err := s.st.CreateNotification(ins)
	if err != nil {
		return models.Notification{}, err
	}

	s.mu.Lock()
	s.notifications = append(s.notifications, n)
	s.mu.Unlock()
	return n, nil
}

func (s *Store) MarkNotificationRead(id string) error {
	if err := s.st.MarkNotificationRead(id); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].IsRead = true
			break
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *Store) MarkAllNotificationsRead(userID string) error {
	if err := s.st.MarkAllNotificationsRead(userID); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.notifications {
		if s.notifications[i].UserID == userID {
			s.notifications[i].IsRead = true
		}
	}
	s.mu.Unlock()
	return nil
}

//
// УЧАСТНИКИ КОМАНДЫ
//

// CreateMember создаёт профиль; непустой пароль хешируется здесь,
// в хранилище сырой пароль не уходит.
func (s *Store) CreateMember(p models.Profile, password string) (models.Profile, error) {
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return models.Profile{}, err
		}
		p.PasswordHash = string(hash)
	}

	created, err := s.st.CreateProfile(p)
	if err != nil {
		return models.Profile{}, err
	}

	s.mu.Lock()
	s.members = append(s.members, created)
	s.mu.Unlock()
	return created, nil
}

func (s *Store) UpdateMember(id string, upd models.ProfileUpdate) (models.Profile, error) {
	if upd.Password != nil && *upd.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.Profile{}, err
		}
		h := string(hash)
		upd.PasswordHash = &h
	}
	upd.Password = nil

	m, err := s.st.UpdateProfile(id, upd)
	if err != nil {
		return models.Profile{}, err
	}

	s.mu.Lock()
	replaced := false
	for i := range s.members {
		if s.members[i].ID == id {
			s.members[i] = m
			replaced = true
			break
		}
	}
	if !replaced {
		s.members = append(s.members, m)
	}
	s.mu.Unlock()
	return m, nil
}

func (s *Store) DeleteMember(id string) error {
	if err := s.st.DeleteProfile(id); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.members {
		if s.members[i].ID == id {
			s.members = append(s.members[:i], s.members[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// MemberByEmail читает напрямую из хранилища — нужен логину до того,
// как зеркало загружено.
func (s *Store) MemberByEmail(email string) (*models.Profile, error) {
	return s.st.ProfileByEmail(email)
}

// TouchLastLogin ставит отметку входа (кормит статусы присутствия).
func (s *Store) TouchLastLogin(id string) error {
	now := time.Now()
	_, err := s.UpdateMember(id, models.ProfileUpdate{LastLogin: &now})
	return err
}
