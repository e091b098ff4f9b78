package services

import (
	"errors"
	"time"

	"github.com/smiggiddy/100daysofcode-blog/models"

	"gorm.io/gorm"
)

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// List возвращает все посты в порядке вставки
func (s *PostService) List() ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.Preload("Author").Order("id").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostService) Get(id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.Preload("Author").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create ставит дату публикации в момент создания
func (s *PostService) Create(author *models.User, title, subtitle, body, imgURL string) (*models.Post, error) {
	post := &models.Post{
		Title:    title,
		Subtitle: subtitle,
		Date:     time.Now().Format("January 2, 2006"),
		Body:     body,
		ImgURL:   imgURL,
		AuthorID: author.ID,
	}
	if err := s.db.Create(post).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateTitle
		}
		return nil, err
	}
	post.Author = *author
	return post, nil
}

// Update перезаписывает контентные поля целиком, это не partial update.
// Автор остаётся прежним: под admin-гардом писать может только он.
func (s *PostService) Update(id uint, title, subtitle, body, imgURL string) (*models.Post, error) {
	post, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	post.Title = title
	post.Subtitle = subtitle
	post.Body = body
	post.ImgURL = imgURL
	if err := s.db.Omit("Author").Save(post).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateTitle
		}
		return nil, err
	}
	return post, nil
}

// Delete окончательно удаляет пост вместе с его комментариями в одной
// транзакции: строка комментария не переживает свой пост
func (s *PostService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Unscoped().Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&post).Error
	})
}
