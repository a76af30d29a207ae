package storage

import (
	"errors"

	"project-hub/internal/models"
)

// ErrNotFound возвращают update/delete по несуществующему id.
// Get-операции ошибкой это не считают и отдают (nil, nil).
var ErrNotFound = errors.New("storage: row not found")

// ErrDuplicate возвращают create-операции при нарушении уникальности:
// повторная пара (project_id, user_id) у участника или занятый email
// профиля. Обе реализации обязаны вести себя одинаково.
var ErrDuplicate = errors.New("storage: row already exists")

// Storage — единый интерфейс доступа к данным. Две реализации:
// Remote (postgres через gorm) и Demo (фикстура в памяти).
// Режим выбирается один раз на старте процесса, дальше все действия
// стора ходят через интерфейс без ветвления.
type Storage interface {
	// Профили (сортировка по full_name)
	Profiles() ([]models.Profile, error)
	Profile(id string) (*models.Profile, error)
	ProfileByEmail(email string) (*models.Profile, error)
	CreateProfile(p models.Profile) (models.Profile, error)
	UpdateProfile(id string, upd models.ProfileUpdate) (models.Profile, error)
	DeleteProfile(id string) error

	// Проекты (created_at desc)
	Projects() ([]models.Project, error)
	Project(id string) (*models.Project, error)
	CreateProject(ins models.ProjectInsert) (models.Project, error)
	UpdateProject(id string, upd models.ProjectUpdate) (models.Project, error)
	DeleteProject(id string) error

	// Участники проектов
	ProjectMembers() ([]models.ProjectMember, error)
	ProjectMembersOf(projectID string) ([]models.ProjectMember, error)
	AddProjectMember(projectID, userID string, role models.MemberRole) (models.ProjectMember, error)
	RemoveProjectMember(projectID, userID string) error

	// Задачи; projectID == "" — все задачи (created_at desc)
	Tasks(projectID string) ([]models.Task, error)
	CreateTask(ins models.TaskInsert) (models.Task, error)
	UpdateTask(id string, upd models.TaskUpdate) (models.Task, error)
	DeleteTask(id string) error

	// Комментарии к задачам
	TaskComments(taskID string) ([]models.TaskComment, error)
	CreateTaskComment(taskID, userID, content string) (models.TaskComment, error)
	DeleteTaskComment(id string) error

	// Уведомления (created_at desc)
	Notifications(userID string) ([]models.Notification, error)
	CreateNotification(ins models.NotificationInsert) (models.Notification, error)
	MarkNotificationRead(id string) error
	MarkAllNotificationsRead(userID string) error

	// Финансы; projectID == "" — все строки (date desc)
	Incomes(projectID string) ([]models.ProjectIncome, error)
	CreateIncome(ins models.IncomeInsert) (models.ProjectIncome, error)
	UpdateIncome(id string, upd models.IncomeUpdate) (models.ProjectIncome, error)
	DeleteIncome(id string) error

	Expenses(projectID string) ([]models.ProjectExpense, error)
	CreateExpense(ins models.ExpenseInsert) (models.ProjectExpense, error)
	UpdateExpense(id string, upd models.ExpenseUpdate) (models.ProjectExpense, error)
	DeleteExpense(id string) error

	// Доли выручки; upsert по составному ключу (project_id, user_id)
	RevenueShares(projectID string) ([]models.MemberRevenueShare, error)
	UpsertRevenueShare(projectID, userID string, pct float64) (models.MemberRevenueShare, error)

	// Файлы проектов
	ProjectFiles(projectID string) ([]models.ProjectFile, error)
	CreateProjectFile(ins models.ProjectFileInsert) (models.ProjectFile, error)
	DeleteProjectFile(id string) error
}
