package store

import (
	"context"
	"errors"
	"strings"

	"github.com/mahmoudsultan/trivia-api/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup by id matches no row
var ErrNotFound = errors.New("record not found")

// Store is the data access the handlers depend on.
type Store interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	FindCategory(ctx context.Context, id uint) (*models.Category, error)

	ListQuestions(ctx context.Context, offset, limit int) ([]models.Question, error)
	CountQuestions(ctx context.Context) (int64, error)
	FindQuestion(ctx context.Context, id uint) (*models.Question, error)
	InsertQuestion(ctx context.Context, question *models.Question) error
	DeleteQuestion(ctx context.Context, question *models.Question) error
	SearchQuestions(ctx context.Context, term string) ([]models.Question, error)
	QuestionsByCategory(ctx context.Context, categoryID uint) ([]models.Question, error)

	// QuizCandidates returns questions in categoryID whose id is not in exclude.
	QuizCandidates(ctx context.Context, categoryID uint, exclude []uint) ([]models.Question, error)
}

type GormStore struct {
	*gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.WithContext(ctx).Order("id asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *GormStore) FindCategory(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := s.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &category, nil
}

func (s *GormStore) ListQuestions(ctx context.Context, offset, limit int) ([]models.Question, error) {
	var questions []models.Question
	err := s.WithContext(ctx).Order("id asc").Offset(offset).Limit(limit).Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *GormStore) CountQuestions(ctx context.Context) (int64, error) {
	var count int64
	if err := s.WithContext(ctx).Model(&models.Question{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *GormStore) FindQuestion(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	if err := s.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &question, nil
}

// InsertQuestion persists question in its own transaction and fills in its id.
func (s *GormStore) InsertQuestion(ctx context.Context, question *models.Question) error {
	tx := s.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Create(question).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// DeleteQuestion removes question in its own transaction, rolling back on failure.
func (s *GormStore) DeleteQuestion(ctx context.Context, question *models.Question) error {
	tx := s.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	result := tx.Delete(&models.Question{}, question.ID)
	if result.Error != nil {
		tx.Rollback()
		return result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return ErrNotFound
	}

	return tx.Commit().Error
}

// SearchQuestions matches term as a case-insensitive literal substring of the question text.
func (s *GormStore) SearchQuestions(ctx context.Context, term string) ([]models.Question, error) {
	condition, pattern := searchCondition(s.Dialector.Name(), term)

	var questions []models.Question
	err := s.WithContext(ctx).
		Where(condition, pattern).
		Order("id asc").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *GormStore) QuestionsByCategory(ctx context.Context, categoryID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.WithContext(ctx).Where("category = ?", categoryID).Order("id asc").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *GormStore) QuizCandidates(ctx context.Context, categoryID uint, exclude []uint) ([]models.Question, error) {
	query := s.WithContext(ctx).Model(&models.Question{}).Where("category = ?", categoryID)
	if len(exclude) > 0 {
		query = query.Where("id NOT IN ?", exclude)
	}

	var questions []models.Question
	if err := query.Order("id asc").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// searchCondition builds the WHERE clause for a substring search on dialect.
// Postgres folds case with ILIKE. Elsewhere both sides are lowered; SQLite's
// LOWER only folds ASCII, so non-ASCII letters match case-sensitively there.
func searchCondition(dialect, term string) (string, string) {
	if dialect == "postgres" {
		return "question ILIKE ? ESCAPE '!'", "%" + escapeLike(term) + "%"
	}
	return "LOWER(question) LIKE ? ESCAPE '!'", "%" + escapeLike(strings.ToLower(term)) + "%"
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
