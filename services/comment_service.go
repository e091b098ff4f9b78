package services

import (
	"github.com/smiggiddy/100daysofcode-blog/models"

	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// Add добавляет комментарий от имени user к посту. Комментарии
// append-only: ни редактирования, ни удаления нет.
func (s *CommentService) Add(user *models.User, postID uint, text string) (*models.Comment, error) {
	if user == nil {
		return nil, ErrUnauthenticated
	}
	comment := &models.Comment{Text: text, UserID: user.ID, PostID: postID}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return tx.Create(comment).Error
	})
	if err != nil {
		return nil, err
	}
	comment.User = *user
	return comment, nil
}

// ForPost возвращает комментарии поста в порядке добавления
func (s *CommentService) ForPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.db.Preload("User").Where("post_id = ?", postID).Order("id").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
