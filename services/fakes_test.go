package services

import (
	"github.com/syauqinrm/blog-backend/models"

	"gorm.io/gorm"
)

// In-memory repository fakes so the service tests run without a database.
// They return gorm.ErrRecordNotFound the way the real gorm-backed
// repositories do.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint

	// createErr and updateErr stand in for constraint violations the real
	// database would raise, e.g. gorm.ErrDuplicatedKey from the unique
	// email index.
	createErr error
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	var users []models.User
	for _, user := range r.users {
		users = append(users, *user)
	}
	return users, nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	delete(r.users, id)
	return nil
}

type fakeCommentRepo struct {
	comments map[uint]*models.Comment
	nextID   uint
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uint]*models.Comment), nextID: 1}
}

func (r *fakeCommentRepo) Create(comment *models.Comment) error {
	comment.ID = r.nextID
	r.nextID++
	r.comments[comment.ID] = comment
	return nil
}

func (r *fakeCommentRepo) GetByID(id uint) (*models.Comment, error) {
	comment, ok := r.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return comment, nil
}

func (r *fakeCommentRepo) GetByPost(postID uint, params models.CommentListParams) ([]models.Comment, int64, error) {
	var comments []models.Comment
	for _, comment := range r.comments {
		if comment.PostID == postID {
			comments = append(comments, *comment)
		}
	}
	return comments, int64(len(comments)), nil
}

func (r *fakeCommentRepo) Update(comment *models.Comment) error {
	r.comments[comment.ID] = comment
	return nil
}

func (r *fakeCommentRepo) Delete(id uint) error {
	delete(r.comments, id)
	return nil
}

type fakePostRepo struct {
	posts    map[uint]*models.Post
	comments *fakeCommentRepo
	nextID   uint
}

func newFakePostRepo(comments *fakeCommentRepo) *fakePostRepo {
	return &fakePostRepo{posts: make(map[uint]*models.Post), comments: comments, nextID: 1}
}

func (r *fakePostRepo) Create(post *models.Post) error {
	post.ID = r.nextID
	r.nextID++
	r.posts[post.ID] = post
	return nil
}

func (r *fakePostRepo) GetByID(id uint) (*models.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return post, nil
}

func (r *fakePostRepo) GetList(params models.PostListParams) ([]models.Post, int64, error) {
	var posts []models.Post
	for _, post := range r.posts {
		if params.Status != "" && string(post.Status) != params.Status {
			continue
		}
		if params.UserID > 0 && post.UserID != params.UserID {
			continue
		}
		posts = append(posts, *post)
	}
	return posts, int64(len(posts)), nil
}

func (r *fakePostRepo) GetByUser(userID uint) ([]models.Post, error) {
	var posts []models.Post
	for _, post := range r.posts {
		if post.UserID == userID {
			posts = append(posts, *post)
		}
	}
	return posts, nil
}

func (r *fakePostRepo) Update(post *models.Post) error {
	r.posts[post.ID] = post
	return nil
}

func (r *fakePostRepo) DeleteWithComments(id uint) error {
	for commentID, comment := range r.comments.comments {
		if comment.PostID == id {
			delete(r.comments.comments, commentID)
		}
	}
	delete(r.posts, id)
	return nil
}
