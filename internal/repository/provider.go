package repository

import (
	"github.com/lshigami/examsched/config"
	"gorm.io/gorm"
)

// NewExamRepositoryFor picks the exam store for the configured driver.
func NewExamRepositoryFor(cfg *config.Config, db *gorm.DB) ExamRepository {
	if cfg.Database.Driver == config.DriverMemory || db == nil {
		return NewMemoryExamRepository()
	}
	return NewExamRepository(db)
}
