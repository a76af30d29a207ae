package models

import "time"

type IncomeCategory string
type ExpenseCategory string

const (
	IncomeContract  IncomeCategory = "contract"
	IncomeMilestone IncomeCategory = "milestone"
	IncomeBonus     IncomeCategory = "bonus"
	IncomeOther     IncomeCategory = "other"

	ExpenseSalary    ExpenseCategory = "salary"
	ExpenseSoftware  ExpenseCategory = "software"
	ExpenseHardware  ExpenseCategory = "hardware"
	ExpenseMarketing ExpenseCategory = "marketing"
	ExpenseTravel    ExpenseCategory = "travel"
	ExpenseOther     ExpenseCategory = "other"
)

type ProjectIncome struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ProjectID   string         `gorm:"size:64;not null;index" json:"project_id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description *string        `gorm:"type:text" json:"description"`
	Amount      float64        `gorm:"not null" json:"amount"`
	Date        time.Time      `gorm:"not null" json:"date"`
	Category    IncomeCategory `gorm:"type:varchar(20);not null" json:"category"`
	CreatedBy   *string        `gorm:"size:64" json:"created_by"`
}

type ProjectExpense struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ProjectID   string          `gorm:"size:64;not null;index" json:"project_id"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description *string         `gorm:"type:text" json:"description"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Date        time.Time       `gorm:"not null" json:"date"`
	Category    ExpenseCategory `gorm:"type:varchar(20);not null" json:"category"`
	CreatedBy   *string         `gorm:"size:64" json:"created_by"`
}

type IncomeInsert struct {
	ProjectID   string         `json:"project_id"`
	Title       string         `json:"title"`
	Description *string        `json:"description"`
	Amount      float64        `json:"amount"`
	Date        time.Time      `json:"date"`
	Category    IncomeCategory `json:"category"`
	CreatedBy   *string        `json:"created_by"`
}

type IncomeUpdate struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Amount      *float64        `json:"amount"`
	Date        *time.Time      `json:"date"`
	Category    *IncomeCategory `json:"category"`
}

type ExpenseInsert struct {
	ProjectID   string          `json:"project_id"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Amount      float64         `json:"amount"`
	Date        time.Time       `json:"date"`
	Category    ExpenseCategory `json:"category"`
	CreatedBy   *string         `json:"created_by"`
}

type ExpenseUpdate struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Amount      *float64         `json:"amount"`
	Date        *time.Time       `json:"date"`
	Category    *ExpenseCategory `json:"category"`
}

// MemberRevenueShare — процент участника от чистой прибыли проекта.
// Сумма долей по проекту на 100% НЕ нормируется, это осознанно.
type MemberRevenueShare struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectID       string  `gorm:"size:64;not null;index:idx_share_project_user,unique" json:"project_id"`
	UserID          string  `gorm:"size:64;not null;index:idx_share_project_user,unique" json:"user_id"`
	SharePercentage float64 `gorm:"not null" json:"share_percentage"`
}
