package services

import (
	"errors"
	"strings"

	"github.com/syauqinrm/blog-backend/models"
	"github.com/syauqinrm/blog-backend/policy"
	"github.com/syauqinrm/blog-backend/repositories"

	"gorm.io/gorm"
)

type PostService interface {
	CreatePost(actor policy.Actor, req models.CreatePostRequest) (*models.Post, error)
	GetPost(id uint) (*models.Post, error)
	GetPosts(params models.PostListParams) ([]models.Post, int64, error)
	GetMyPosts(actor policy.Actor) ([]models.Post, error)
	UpdatePost(id uint, actor policy.Actor, req models.UpdatePostRequest) (*models.Post, error)
	DeletePost(id uint, actor policy.Actor) error
}

type postService struct {
	postRepo repositories.PostRepository
}

func NewPostService(postRepo repositories.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (s *postService) CreatePost(actor policy.Actor, req models.CreatePostRequest) (*models.Post, error) {
	decision := policy.Authorize(actor, policy.ActionCreate, policy.Resource{Kind: policy.ResourcePost})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, models.ErrorValidation{Message: "title and content must not be empty"}
	}

	status, err := parseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:   req.Title,
		Content: req.Content,
		Status:  status,
		UserID:  actor.ID,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to create post"}
	}

	return s.GetPost(post.ID)
}

func (s *postService) GetPost(id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "post not found"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to load post"}
	}
	return post, nil
}

func (s *postService) GetPosts(params models.PostListParams) ([]models.Post, int64, error) {
	posts, total, err := s.postRepo.GetList(params)
	if err != nil {
		return nil, 0, models.ErrorInternalServer{Message: "failed to load posts"}
	}
	return posts, total, nil
}

func (s *postService) GetMyPosts(actor policy.Actor) ([]models.Post, error) {
	if !actor.Authenticated {
		return nil, models.ErrorUnauthorized{Message: "authentication required"}
	}

	posts, err := s.postRepo.GetByUser(actor.ID)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to load posts"}
	}
	return posts, nil
}

func (s *postService) UpdatePost(id uint, actor policy.Actor, req models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.GetPost(id)
	if err != nil {
		return nil, err
	}

	decision := policy.Authorize(actor, policy.ActionUpdate, policy.Resource{
		Kind:    policy.ResourcePost,
		OwnerID: post.UserID,
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, models.ErrorValidation{Message: "title must not be empty"}
		}
		post.Title = *req.Title
	}
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, models.ErrorValidation{Message: "content must not be empty"}
		}
		post.Content = *req.Content
	}
	if req.Status != nil {
		status, err := parseStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		post.Status = status
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to update post"}
	}

	return post, nil
}

func (s *postService) DeletePost(id uint, actor policy.Actor) error {
	post, err := s.GetPost(id)
	if err != nil {
		return err
	}

	decision := policy.Authorize(actor, policy.ActionDelete, policy.Resource{
		Kind:    policy.ResourcePost,
		OwnerID: post.UserID,
	})
	if err := decision.Err(); err != nil {
		return err
	}

	// Comments go with the post, atomically.
	if err := s.postRepo.DeleteWithComments(post.ID); err != nil {
		return models.ErrorInternalServer{Message: "failed to delete post"}
	}

	return nil
}

func parseStatus(raw string) (models.PostStatus, error) {
	switch models.PostStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return models.StatusDraft, nil
	case models.StatusDraft:
		return models.StatusDraft, nil
	case models.StatusPublished:
		return models.StatusPublished, nil
	default:
		return "", models.ErrorValidation{Message: `invalid status, use "draft" or "published"`}
	}
}
