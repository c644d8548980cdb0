package repositories

import (
	"fmt"

	"github.com/syauqinrm/blog-backend/models"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	GetList(params models.PostListParams) ([]models.Post, int64, error)
	GetByUser(userID uint) ([]models.Post, error)
	Update(post *models.Post) error
	DeleteWithComments(id uint) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("User").
		Preload("Comments").
		Preload("Comments.User").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetList(params models.PostListParams) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	query := r.db.Model(&models.Post{}).Preload("User").Preload("Comments")

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if params.UserID > 0 {
		query = query.Where("user_id = ?", params.UserID)
	}

	query.Count(&total)

	sortOrder := params.SortOrder
	if sortOrder != "asc" {
		sortOrder = "desc"
	}

	query = query.Order(fmt.Sprintf("posts.%s %s", sortColumn(params.SortBy), sortOrder))

	offset := (params.Page - 1) * params.Limit
	err := query.Offset(offset).Limit(params.Limit).Find(&posts).Error

	return posts, total, err
}

// sortColumn maps the caller-supplied sort field to a known column. The value
// ends up inside the ORDER BY clause as raw SQL, so anything outside the
// whitelist falls back to created_at.
func sortColumn(sortBy string) string {
	switch sortBy {
	case "id", "title", "created_at", "updated_at":
		return sortBy
	default:
		return "created_at"
	}
}

func (r *postRepository) GetByUser(userID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Comments").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// DeleteWithComments removes a post and its comments in one transaction so a
// failed delete never leaves orphaned comments behind.
func (r *postRepository) DeleteWithComments(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}
