package storage

import (
	"errors"
	"log"
	"time"

	"project-hub/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Remote — реализация Storage поверх postgres.
type Remote struct {
	db *gorm.DB
}

// OpenRemote подключается к базе (с повторами — контейнер с postgres
// мог ещё не подняться) и прогоняет миграции.
func OpenRemote(dsn string) (*Remote, error) {
	var db *gorm.DB
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, err
	}

	// миграции
	err = db.AutoMigrate(
		&models.Profile{},
		&models.Project{},
		&models.ProjectMember{},
		&models.Task{},
		&models.TaskComment{},
		&models.Notification{},
		&models.ProjectFile{},
		&models.ProjectIncome{},
		&models.ProjectExpense{},
		&models.MemberRevenueShare{},
	)
	if err != nil {
		return nil, err
	}

	return &Remote{db: db}, nil
}

func newID() string {
	return uuid.NewString()
}

// notFound переводит gorm.ErrRecordNotFound в наш сентинел,
// транспортные ошибки отдаёт как есть.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

//
// ПРОФИЛИ
//

func (r *Remote) Profiles() ([]models.Profile, error) {
	var out []models.Profile
	if err := r.db.Order("full_name asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Remote) Profile(id string) (*models.Profile, error) {
	var p models.Profile
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Remote) ProfileByEmail(email string) (*models.Profile, error) {
	var p models.Profile
	err := r.db.First(&p, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Remote) CreateProfile(p models.Profile) (models.Profile, error) {
	var count int64
	err := r.db.Model(&models.Profile{}).
		Where("email = ?", p.Email).
		Count(&count).Error
	if err != nil {
		return models.Profile{}, err
	}
	if count > 0 {
		return models.Profile{}, ErrDuplicate
	}

	if p.ID == "" {
		p.ID = newID()
	}
	if err := r.db.Create(&p).Error; err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

func (r *Remote) UpdateProfile(id string, upd models.ProfileUpdate) (models.Profile, error) {
	var p models.Profile
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		return models.Profile{}, notFound(err)
	}

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

	if err := r.db.Save(&p).Error; err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

func (r *Remote) DeleteProfile(id string) error {
	res := r.db.Delete(&models.Profile{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

//
// ПРОЕКТЫ
//

func (r *Remote) Projects() ([]models.Project, error) {
	var out []models.Project
	if err := r.db.Order("created_at desc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Remote) Project(id string) (*models.Project, error) {
	var p models.Project
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Remote) CreateProject(ins models.ProjectInsert) (models.Project, error) {
	status := ins.Status
	if status == "" {
		status = models.ProjectActive
	}

	p := models.Project{
		ID:            newID(),
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
	if err := r.db.Create(&p).Error; err != nil {
		return models.Project{}, err
	}
	return p, nil
}

func (r *Remote) UpdateProject(id string, upd models.ProjectUpdate) (models.Project, error) {
	var p models.Project
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		return models.Project{}, notFound(err)
	}

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

	if err := r.db.Save(&p).Error; err != nil {
		return models.Project{}, err
	}
	return p, nil
}

func (r *Remote) DeleteProject(id string) error {
	// каскада нет: задачи и финансы остаются висеть, чистит их (или не
	// чистит) сама база
	res := r.db.Delete(&models.Project{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

//
// УЧАСТНИКИ ПРОЕКТОВ
//

func (r *Remote) ProjectMembers() ([]models.ProjectMember, error) {
	var out []models.ProjectMember
	if err := r.db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Remote) ProjectMembersOf(projectID string) ([]models.ProjectMember, error) {
	var out []models.ProjectMember
	if err := r.db.Where("project_id = ?", projectID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Remote) AddProjectMember(projectID, userID string, role models.MemberRole) (models.ProjectMember, error) {
	var count int64
	err := r.db.Model(&models.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	if err != nil {
		return models.ProjectMember{}, err
	}
	if count > 0 {
		return models.ProjectMember{}, ErrDuplicate
	}

	m := models.ProjectMember{
		ID:        newID(),
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
		JoinedAt:  time.Now(),
	}
	if err := r.db.Create(&m).Error; err != nil {
		return models.ProjectMember{}, err
	}
	return m, nil
}

func (r *Remote) RemoveProjectMember(projectID, userID string) error {
	res := r.db.Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&models.ProjectMember{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

//
// ЗАДАЧИ
//

func (r *Remote) Tasks(projectID string) ([]models.Task, error) {
	dbq := r.db.Order("created_at desc")
	if projectID != "" {
		dbq = dbq.Where("project_id = ?", projectID)
	}

	var out []models.Task
	if err := dbq.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Remote) CreateTask(ins models.TaskInsert) (models.Task, error) {
	status := ins.Status
	if status == "" {
		status = models.TaskTodo
	}
	priority := ins.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	t := models.Task{
		ID:          newID(),
		ProjectID:   ins.ProjectID,
		Title:       ins.Title,
		Description: ins.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     ins.DueDate,
		AssigneeID:  ins.AssigneeID,
		CreatedBy:   ins.CreatedBy,
	}
	if err := r.db.Create(&t).Error; err != nil {
		return models.Task{}, err
	}
	return t, nil
}

func (r *Remote) UpdateTask(id string, upd models.TaskUpdate) (models.Task, error) {
	var t models.Task
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		return models.Task{}, notFound(err)
	}

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

	if err := r.db.Save(&t).Error; err != nil {
		return models.Task{}, err
	}
	return t, nil
}

func (r *Remote) DeleteTask(id string) error {
	res := r.db.Delete(&models.Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

//
// КОММЕНТАРИИ
//

func (r *Remote) TaskComments(taskID string) ([]models.TaskComment, error) {
	var out []models.TaskComment
	err := r.db.Where("task_id = ?", taskID).Order("created_at asc").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Remote) CreateTaskComment(taskID, userID, content string) (models.TaskComment, error) {
	c := models.TaskComment{
		ID:      newID(),
		TaskID:  taskID,
		UserID:  userID,
		Content: content,
	}
	if err := r.db.Create(&c).Error; err != nil {
		return models.TaskComment{}, err
	}
	return c, nil
}

func (r *Remote) DeleteTaskComment(id string) error {
	res := r.db.Delete(&models.TaskComment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

//
// УВЕДОМЛЕНИЯ
//

func (r *Remote) Notifications(userID string) ([]models.Notification, error) {
	var out []models.Notification
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Remote) CreateNotification(ins models.NotificationInsert) (models.Notification, error) {
	n := models.Notification{
		ID:            newID(),
		UserID:        ins.UserID,
		Type:          ins.Type,
		Title:         ins.Title,
		Content:       ins.Content,
		ReferenceID:   ins.ReferenceID,
		ReferenceType: ins.ReferenceType,
	}
	if err := r.db.Create(&n).Error; err != nil {
		return models.Notification{}, err
	}
	return n, nil
}

func (r *Remote) MarkNotificationRead(id string) error {
	res := r.db.Model(&models.Notification{}).
		Where("id = ?", id).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Remote) MarkAllNotificationsRead(userID string) error {
	return r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

//
// ФИНАНСЫ
//

func (r *Remote) Incomes(projectID string) ([]models.ProjectIncome, error) {
	dbq := r.db.Order("date desc")
	if projectID != "" {
		dbq = dbq.Where("project_id = ?", projectID)
	}

	var out []models.ProjectIncome
	if err := dbq.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Remote) CreateIncome(ins models.IncomeInsert) (models.ProjectIncome, error) {
	row := models.ProjectIncome{
		ID:          newID(),
		ProjectID:   ins.ProjectID,
		Title:       ins.Title,
		Description: ins.Description,
		Amount:      ins.Amount,
		Date:        ins.Date,
		Category:    ins.Category,
		CreatedBy:   ins.CreatedBy,
	}
	if err := r.db.Create(&row).Error; err != nil {
		return models.ProjectIncome{}, err
	}
	return row, nil
}

func (r *Remote) UpdateIncome(id string, upd models.IncomeUpdate) (models.ProjectIncome, error) {
	var row models.ProjectIncome
	if err := r.db.First(&row, "id = ?", id).Error; err != nil {
		return models.ProjectIncome{}, notFound(err)
	}

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

	if err := r.db.Save(&row).Error; err != nil {
		return models.ProjectIncome{}, err
	}
	return row, nil
}

func (r *Remote) DeleteIncome(id string) error {
	res := r.db.Delete(&models.ProjectIncome{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Remote) Expenses(projectID string) ([]models.ProjectExpense, error) {
	dbq := r.db.Order("date desc")
	if projectID != "" {
		dbq = dbq.Where("project_id = ?", projectID)
	}

	var out []models.ProjectExpense
	if err := dbq.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Remote) CreateExpense(ins models.ExpenseInsert) (models.ProjectExpense, error) {
	row := models.ProjectExpense{
		ID:          newID(),
		ProjectID:   ins.ProjectID,
		Title:       ins.Title,
		Description: ins.Description,
		Amount:      ins.Amount,
		Date:        ins.Date,
		Category:    ins.Category,
		CreatedBy:   ins.CreatedBy,
	}
	if err := r.db.Create(&row).Error; err != nil {
		return models.ProjectExpense{}, err
	}
	return row, nil
}

func (r *Remote) UpdateExpense(id string, upd models.ExpenseUpdate) (models.ProjectExpense, error) {
	var row models.ProjectExpense
	if err := r.db.First(&row, "id = ?", id).Error; err != nil {
		return models.ProjectExpense{}, notFound(err)
	}

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

	if err := r.db.Save(&row).Error; err != nil {
		return models.ProjectExpense{}, err
	}
	return row, nil
}

func (r *Remote) DeleteExpense(id string) error {
	res := r.db.Delete(&models.ProjectExpense{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

//
// ДОЛИ ВЫРУЧКИ
//

func (r *Remote) RevenueShares(projectID string) ([]models.MemberRevenueShare, error) {
	dbq := r.db
	if projectID != "" {
		dbq = dbq.Where("project_id = ?", projectID)
	}

	var out []models.MemberRevenueShare
	if err := dbq.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Remote) UpsertRevenueShare(projectID, userID string, pct float64) (models.MemberRevenueShare, error) {
	row := models.MemberRevenueShare{
		ID:              newID(),
		ProjectID:       projectID,
		UserID:          userID,
		SharePercentage: pct,
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "project_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"share_percentage": pct,
			"updated_at":       time.Now(),
		}),
	}).Create(&row).Error
	if err != nil {
		return models.MemberRevenueShare{}, err
	}

	// при конфликте вернётся старый id, перечитываем канонную строку
	var out models.MemberRevenueShare
	err = r.db.First(&out, "project_id = ? AND user_id = ?", projectID, userID).Error
	if err != nil {
		return models.MemberRevenueShare{}, err
	}
	return out, nil
}

//
// ФАЙЛЫ ПРОЕКТОВ
//

func (r *Remote) ProjectFiles(projectID string) ([]models.ProjectFile, error) {
	var out []models.ProjectFile
	err := r.db.Where("project_id = ?", projectID).Order("created_at desc").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Remote) CreateProjectFile(ins models.ProjectFileInsert) (models.ProjectFile, error) {
	f := models.ProjectFile{
		ID:         newID(),
		ProjectID:  ins.ProjectID,
		Name:       ins.Name,
		FilePath:   ins.FilePath,
		FileSize:   ins.FileSize,
		UploadedBy: ins.UploadedBy,
	}
	if err := r.db.Create(&f).Error; err != nil {
		return models.ProjectFile{}, err
	}
	return f, nil
}

func (r *Remote) DeleteProjectFile(id string) error {
	res := r.db.Delete(&models.ProjectFile{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
