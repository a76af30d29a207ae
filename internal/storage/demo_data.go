package storage

import (
	"time"

	"project-hub/internal/models"
)

// DemoUserID — пользователь, под которым работает демо-сессия.
const DemoUserID = "demo-user-id"

func strp(s string) *string { return &s }

func datep(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// seedDemoData наполняет демо-хранилище согласованным срезом данных:
// участники с разной давностью входа (для статусов присутствия),
// три проекта, канбан задач, финансы и доли по project-1.
func seedDemoData(d *Demo) {
	now := time.Now()

	ago := func(dur time.Duration) *time.Time {
		t := now.Add(-dur)
		return &t
	}

	d.profiles = []models.Profile{
		{
			ID: "1", FullName: "Анна Соколова", Email: "anna@example.com",
			AvatarURL: strp("https://api.dicebear.com/7.x/avataaars/svg?seed=anna"),
			JobTitle:  strp("Product Manager"), Bio: strp("Отвечает за картину проекта целиком"),
			CreatedAt: now, UpdatedAt: now, LastLogin: &now, // online
		},
		{
			ID: "2", FullName: "Виктор Лебедев", Email: "viktor@example.com",
			AvatarURL: strp("https://api.dicebear.com/7.x/avataaars/svg?seed=viktor"),
			JobTitle:  strp("UI/UX Designer"), Bio: strp("Дизайн интерфейсов"),
			CreatedAt: now, UpdatedAt: now, LastLogin: ago(2 * time.Minute), // online
		},
		{
			ID: "3", FullName: "Дарья Ким", Email: "darya@example.com",
			AvatarURL: strp("https://api.dicebear.com/7.x/avataaars/svg?seed=darya"),
			JobTitle:  strp("Frontend Developer"),
			CreatedAt: now, UpdatedAt: now, LastLogin: ago(45 * time.Minute), // away
		},
		{
			ID: "4", FullName: "David Chen", Email: "david@example.com",
			AvatarURL: strp("https://api.dicebear.com/7.x/avataaars/svg?seed=david"),
			JobTitle:  strp("Backend Developer"), Bio: strp("Backend и API"),
			CreatedAt: now, UpdatedAt: now, LastLogin: ago(5 * time.Hour), // offline
		},
		{
			ID: "5", FullName: "Sarah Miller", Email: "sarah@example.com",
			AvatarURL: strp("https://api.dicebear.com/7.x/avataaars/svg?seed=sarah"),
			JobTitle:  strp("QA Engineer"),
			CreatedAt: now, UpdatedAt: now, LastLogin: nil, // offline, ни разу не входила
		},
	}

	d.projects = []models.Project{
		{
			ID: "project-1", Name: "Website Redesign Q3",
			Description: strp("Редизайн корпоративного сайта под маркетинговую кампанию Q3"),
			Status:      models.ProjectActive,
			StartDate:   datep(2024, time.September, 1), EndDate: datep(2024, time.October, 31),
			DemoURL:       strp("https://demo.example.com"),
			ProductionURL: strp("https://example.com"),
			GithubURL:     strp("https://github.com/example/project"),
			CreatedBy:     strp("1"), CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "project-2", Name: "Mobile App Phase 1",
			Description: strp("Мобильное приложение для клиентов"),
			Status:      models.ProjectActive,
			StartDate:   datep(2024, time.August, 15), EndDate: datep(2024, time.December, 15),
			CreatedBy:   strp("1"), CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "project-3", Name: "Marketing Campaign Q4",
			Description: strp("Планирование и запуск кампании на Q4"),
			Status:      models.ProjectActive,
			StartDate:   datep(2024, time.October, 1), EndDate: datep(2024, time.December, 31),
			CreatedBy:   strp("2"), CreatedAt: now, UpdatedAt: now,
		},
	}

	d.tasks = []models.Task{
		{ID: "task-1", ProjectID: "project-1", Title: "Дизайн-система", Status: models.TaskInProgress, Priority: models.PriorityHigh, DueDate: datep(2024, time.October, 12), AssigneeID: strp("2"), CreatedBy: strp("1"), CreatedAt: now, UpdatedAt: now},
		{ID: "task-2", ProjectID: "project-1", Title: "Wireframes главной страницы", Status: models.TaskDone, Priority: models.PriorityHigh, DueDate: datep(2024, time.October, 10), AssigneeID: strp("2"), CreatedBy: strp("1"), CreatedAt: now, UpdatedAt: now},
		{ID: "task-3", ProjectID: "project-1", Title: "Адаптивная вёрстка", Status: models.TaskTodo, Priority: models.PriorityMedium, DueDate: datep(2024, time.October, 18), AssigneeID: strp("3"), CreatedBy: strp("1"), CreatedAt: now, UpdatedAt: now},
		{ID: "task-4", ProjectID: "project-2", Title: "Landing Page", Status: models.TaskInProgress, Priority: models.PriorityHigh, DueDate: datep(2024, time.October, 26), AssigneeID: strp("3"), CreatedBy: strp("1"), CreatedAt: now, UpdatedAt: now},
		{ID: "task-5", ProjectID: "project-2", Title: "SEO-аудит", Status: models.TaskReview, Priority: models.PriorityMedium, DueDate: datep(2024, time.October, 20), AssigneeID: strp("4"), CreatedBy: strp("1"), CreatedAt: now, UpdatedAt: now},
	}

	refTask := models.RefTask
	d.notifications = []models.Notification{
		{
			ID: "notif-1", UserID: DemoUserID, Type: models.NotifTaskAssigned,
			Title: "Новая задача", Content: strp("Анна назначила вам задачу \"Дизайн-система\""),
			ReferenceID: strp("task-1"), ReferenceType: &refTask,
			IsRead: false, CreatedAt: now.Add(-10 * time.Minute),
		},
		{
			ID: "notif-2", UserID: DemoUserID, Type: models.NotifComment,
			Title: "Новый комментарий", Content: strp("Виктор оставил комментарий к задаче"),
			ReferenceID: strp("task-2"), ReferenceType: &refTask,
			IsRead: false, CreatedAt: now.Add(-time.Hour),
		},
	}

	d.incomes = []models.ProjectIncome{
		{ID: "income-1", ProjectID: "project-1", Title: "Аванс по проекту", Description: strp("Предоплата 50%"), Amount: 150000, Date: *datep(2024, time.September, 1), Category: models.IncomeContract, CreatedBy: strp("1"), CreatedAt: now},
		{ID: "income-2", ProjectID: "project-1", Title: "Этап 1 — сдача дизайна", Amount: 75000, Date: *datep(2024, time.September, 20), Category: models.IncomeMilestone, CreatedBy: strp("1"), CreatedAt: now},
		{ID: "income-3", ProjectID: "project-2", Title: "Контракт на мобильное приложение", Amount: 500000, Date: *datep(2024, time.August, 15), Category: models.IncomeContract, CreatedBy: strp("1"), CreatedAt: now},
	}

	d.expenses = []models.ProjectExpense{
		{ID: "expense-1", ProjectID: "project-1", Title: "Лицензия Figma", Amount: 5000, Date: *datep(2024, time.September, 5), Category: models.ExpenseSoftware, CreatedBy: strp("2"), CreatedAt: now},
		{ID: "expense-2", ProjectID: "project-1", Title: "Зарплата команды дизайна", Amount: 80000, Date: *datep(2024, time.September, 30), Category: models.ExpenseSalary, CreatedBy: strp("1"), CreatedAt: now},
		{ID: "expense-3", ProjectID: "project-2", Title: "Apple Developer Program", Amount: 3500, Date: *datep(2024, time.August, 20), Category: models.ExpenseSoftware, CreatedBy: strp("1"), CreatedAt: now},
	}

	// по project-1 доли в сумме дают ровно 100, но это не инвариант
	d.shares = []models.MemberRevenueShare{
		{ID: "share-1", ProjectID: "project-1", UserID: "1", SharePercentage: 30, CreatedAt: now, UpdatedAt: now},
		{ID: "share-2", ProjectID: "project-1", UserID: "2", SharePercentage: 35, CreatedAt: now, UpdatedAt: now},
		{ID: "share-3", ProjectID: "project-1", UserID: "3", SharePercentage: 25, CreatedAt: now, UpdatedAt: now},
		{ID: "share-4", ProjectID: "project-1", UserID: "5", SharePercentage: 10, CreatedAt: now, UpdatedAt: now},
		{ID: "share-5", ProjectID: "project-2", UserID: "1", SharePercentage: 100, CreatedAt: now, UpdatedAt: now},
	}
}
