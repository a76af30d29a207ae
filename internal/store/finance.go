package store

import "project-hub/internal/models"

//
// ФИНАНСЫ
//

func (s *Store) AddIncome(ins models.IncomeInsert) (models.ProjectIncome, error) {
	row, err := s.st.CreateIncome(ins)
	if err != nil {
		return models.ProjectIncome{}, err
	}

	s.mu.Lock()
	s.incomes = append(s.incomes, row)
	s.mu.Unlock()
	return row, nil
}

func (s *Store) UpdateIncome(id string, upd models.IncomeUpdate) (models.ProjectIncome, error) {
	row, err := s.st.UpdateIncome(id, upd)
	if err != nil {
		return models.ProjectIncome{}, err
	}

	s.mu.Lock()
	replaced := false
	for i := range s.incomes {
		if s.incomes[i].ID == id {
			s.incomes[i] = row
			replaced = true
			break
		}
	}
	if !replaced {
		s.incomes = append(s.incomes, row)
	}
	s.mu.Unlock()
	return row, nil
}

func (s *Store) DeleteIncome(id string) error {
	if err := s.st.DeleteIncome(id); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.incomes {
		if s.incomes[i].ID == id {
			s.incomes = append(s.incomes[:i], s.incomes[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *Store) AddExpense(ins models.ExpenseInsert) (models.ProjectExpense, error) {
	row, err := s.st.CreateExpense(ins)
	if err != nil {
		return models.ProjectExpense{}, err
	}

	s.mu.Lock()
	s.expenses = append(s.expenses, row)
	s.mu.Unlock()
	return row, nil
}

func (s *Store) UpdateExpense(id string, upd models.ExpenseUpdate) (models.ProjectExpense, error) {
	row, err := s.st.UpdateExpense(id, upd)
	if err != nil {
		return models.ProjectExpense{}, err
	}

	s.mu.Lock()
	replaced := false
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			s.expenses[i] = row
			replaced = true
			break
		}
	}
	if !replaced {
		s.expenses = append(s.expenses, row)
	}
	s.mu.Unlock()
	return row, nil
}

func (s *Store) DeleteExpense(id string) error {
	if err := s.st.DeleteExpense(id); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// UpdateRevenueShare — upsert доли по составному ключу (проект, участник).
// Процент зажимается в [0, 100]. После записи финансовый раздел проекта
// перечитывается целиком: доверяем базе, а не локальному мержу.
func (s *Store) UpdateRevenueShare(projectID, userID string, pct float64) error {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	if _, err := s.st.UpsertRevenueShare(projectID, userID, pct); err != nil {
		return err
	}
	return s.LoadProjectFinance(projectID)
}

//
// ФАЙЛЫ
//

func (s *Store) AddFile(ins models.ProjectFileInsert) (models.ProjectFile, error) {
	f, err := s.st.CreateProjectFile(ins)
	if err != nil {
		return models.ProjectFile{}, err
	}

	s.mu.Lock()
	s.files = append(s.files, f)
	s.mu.Unlock()
	return f, nil
}

func (s *Store) DeleteFile(id string) error {
	if err := s.st.DeleteProjectFile(id); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.files {
		if s.files[i].ID == id {
			s.files = append(s.files[:i], s.files[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}
