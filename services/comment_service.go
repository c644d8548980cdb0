package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/syauqinrm/blog-backend/models"
	"github.com/syauqinrm/blog-backend/policy"
	"github.com/syauqinrm/blog-backend/repositories"

	"gorm.io/gorm"
)

type CommentService interface {
	CreateComment(postID uint, actor policy.Actor, req models.CreateCommentRequest) (*models.Comment, error)
	GetComment(id uint) (*models.Comment, error)
	GetComments(postID uint, params models.CommentListParams) ([]models.Comment, int64, error)
	UpdateComment(id uint, actor policy.Actor, req models.UpdateCommentRequest) (*models.Comment, error)
	DeleteComment(id uint, actor policy.Actor) error
}

type commentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *commentService) CreateComment(postID uint, actor policy.Actor, req models.CreateCommentRequest) (*models.Comment, error) {
	decision := policy.Authorize(actor, policy.ActionCreate, policy.Resource{Kind: policy.ResourceComment})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	if err := validateBody(req.Body); err != nil {
		return nil, err
	}

	// The parent post must exist
	if _, err := s.postRepo.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "post not found"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to load post"}
	}

	comment := &models.Comment{
		Body:   req.Body,
		PostID: postID,
		UserID: actor.ID,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to create comment"}
	}

	return s.GetComment(comment.ID)
}

func (s *commentService) GetComment(id uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "comment not found"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to load comment"}
	}
	return comment, nil
}

func (s *commentService) GetComments(postID uint, params models.CommentListParams) ([]models.Comment, int64, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, models.ErrorNotFound{Message: "post not found"}
		}
		return nil, 0, models.ErrorInternalServer{Message: "failed to load post"}
	}

	comments, total, err := s.commentRepo.GetByPost(postID, params)
	if err != nil {
		return nil, 0, models.ErrorInternalServer{Message: "failed to load comments"}
	}
	return comments, total, nil
}

func (s *commentService) UpdateComment(id uint, actor policy.Actor, req models.UpdateCommentRequest) (*models.Comment, error) {
	comment, err := s.GetComment(id)
	if err != nil {
		return nil, err
	}

	decision := policy.Authorize(actor, policy.ActionUpdate, policy.Resource{
		Kind:    policy.ResourceComment,
		OwnerID: comment.UserID,
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	if err := validateBody(req.Body); err != nil {
		return nil, err
	}

	comment.Body = req.Body

	if err := s.commentRepo.Update(comment); err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to update comment"}
	}

	return comment, nil
}

func (s *commentService) DeleteComment(id uint, actor policy.Actor) error {
	comment, err := s.GetComment(id)
	if err != nil {
		return err
	}

	// Load the parent post so the policy can grant the post owner the right
	// to moderate comments under it.
	var postOwnerID uint
	if post, err := s.postRepo.GetByID(comment.PostID); err == nil {
		postOwnerID = post.UserID
	}

	decision := policy.Authorize(actor, policy.ActionDelete, policy.Resource{
		Kind:        policy.ResourceComment,
		OwnerID:     comment.UserID,
		PostOwnerID: postOwnerID,
	})
	if err := decision.Err(); err != nil {
		return err
	}

	if err := s.commentRepo.Delete(comment.ID); err != nil {
		return models.ErrorInternalServer{Message: "failed to delete comment"}
	}

	return nil
}

func validateBody(body string) error {
	if strings.TrimSpace(body) == "" {
		return models.ErrorValidation{Message: "comment body must not be empty"}
	}
	// Characters, not bytes, so multibyte input is not cut short.
	if utf8.RuneCountInString(body) > models.MaxCommentLength {
		return models.ErrorValidation{Message: "comment body must be at most 250 characters"}
	}
	return nil
}
