// Package sqlite implements the domain repositories with gorm over an
// embedded SQLite database.
package sqlite

import (
	"context"
	"fmt"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"gorm.io/gorm"
)

type categoryRecord struct {
	ID   int    `gorm:"primaryKey;autoIncrement"`
	Type string `gorm:"not null"`
}

func (categoryRecord) TableName() string {
	return "categories"
}

type questionRecord struct {
	ID         int    `gorm:"primaryKey;autoIncrement"`
	Question   string `gorm:"not null"`
	Answer     string `gorm:"not null"`
	Category   *int   `gorm:"index"`
	Difficulty int    `gorm:"not null"`
}

func (questionRecord) TableName() string {
	return "questions"
}

func (r *questionRecord) toDomain() *domain.Question {
	return &domain.Question{
		ID:         r.ID,
		Question:   r.Question,
		Answer:     r.Answer,
		Category:   r.Category,
		Difficulty: r.Difficulty,
	}
}

func newQuestionRecord(q *domain.Question) *questionRecord {
	return &questionRecord{
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// Store owns the gorm handle shared by the sqlite repositories
type Store struct {
	db *gorm.DB
}

// NewStore creates the categories and questions tables when they are
// missing and returns a store over db.
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&categoryRecord{}, &questionRecord{}); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return &Store{db: db}, nil
}

// Categories returns the category repository
func (s *Store) Categories() *CategoryRepository {
	return &CategoryRepository{db: s.db}
}

// Questions returns the question repository
func (s *Store) Questions() *QuestionRepository {
	return &QuestionRepository{db: s.db}
}

// SeedCategories inserts categories, assigning ids to those without one.
// The API never creates categories; this is for seeding and tests.
func (s *Store) SeedCategories(ctx context.Context, categories ...*domain.Category) error {
	for _, c := range categories {
		rec := categoryRecord{ID: c.ID, Type: c.Type}
		if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
			return fmt.Errorf("failed to seed category: %w", err)
		}
		c.ID = rec.ID
	}
	return nil
}

// Ping checks that the database answers
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying database
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
