package graph

import (
	"context"
	"testing"
	"time"

	"github.com/syauqinrm/blog-backend/models"
	"github.com/syauqinrm/blog-backend/policy"
	"github.com/syauqinrm/blog-backend/repositories"
	"github.com/syauqinrm/blog-backend/services"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func (r *memUserRepo) Create(user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(id uint) (*models.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) GetAll() ([]models.User, error) {
	var users []models.User
	for _, user := range r.users {
		users = append(users, *user)
	}
	return users, nil
}

func (r *memUserRepo) Update(user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) Delete(id uint) error {
	delete(r.users, id)
	return nil
}

type memCommentRepo struct {
	comments map[uint]*models.Comment
	nextID   uint
}

func (r *memCommentRepo) Create(comment *models.Comment) error {
	comment.ID = r.nextID
	r.nextID++
	r.comments[comment.ID] = comment
	return nil
}

func (r *memCommentRepo) GetByID(id uint) (*models.Comment, error) {
	if comment, ok := r.comments[id]; ok {
		return comment, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memCommentRepo) GetByPost(postID uint, params models.CommentListParams) ([]models.Comment, int64, error) {
	var comments []models.Comment
	for _, comment := range r.comments {
		if comment.PostID == postID {
			comments = append(comments, *comment)
		}
	}
	return comments, int64(len(comments)), nil
}

func (r *memCommentRepo) Update(comment *models.Comment) error {
	r.comments[comment.ID] = comment
	return nil
}

func (r *memCommentRepo) Delete(id uint) error {
	delete(r.comments, id)
	return nil
}

type memPostRepo struct {
	posts    map[uint]*models.Post
	comments *memCommentRepo
	nextID   uint
}

func (r *memPostRepo) Create(post *models.Post) error {
	post.ID = r.nextID
	r.nextID++
	r.posts[post.ID] = post
	return nil
}

func (r *memPostRepo) GetByID(id uint) (*models.Post, error) {
	if post, ok := r.posts[id]; ok {
		return post, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memPostRepo) GetList(params models.PostListParams) ([]models.Post, int64, error) {
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

func (r *memPostRepo) GetByUser(userID uint) ([]models.Post, error) {
	var posts []models.Post
	for _, post := range r.posts {
		if post.UserID == userID {
			posts = append(posts, *post)
		}
	}
	return posts, nil
}

func (r *memPostRepo) Update(post *models.Post) error {
	r.posts[post.ID] = post
	return nil
}

func (r *memPostRepo) DeleteWithComments(id uint) error {
	for commentID, comment := range r.comments.comments {
		if comment.PostID == id {
			delete(r.comments.comments, commentID)
		}
	}
	delete(r.posts, id)
	return nil
}

var (
	_ repositories.UserRepository    = (*memUserRepo)(nil)
	_ repositories.PostRepository    = (*memPostRepo)(nil)
	_ repositories.CommentRepository = (*memCommentRepo)(nil)
)

func newTestSchema(t *testing.T) graphql.Schema {
	t.Helper()

	userRepo := &memUserRepo{users: make(map[uint]*models.User), nextID: 1}
	commentRepo := &memCommentRepo{comments: make(map[uint]*models.Comment), nextID: 1}
	postRepo := &memPostRepo{posts: make(map[uint]*models.Post), comments: commentRepo, nextID: 1}

	tokenService := services.NewTokenService([]byte("test-secret"), time.Hour)
	resolver := NewResolver(
		services.NewAuthService(userRepo, tokenService),
		services.NewUserService(userRepo),
		services.NewPostService(postRepo),
		services.NewCommentService(commentRepo, postRepo),
	)

	schema, err := NewSchema(resolver)
	require.NoError(t, err)
	return schema
}

func execute(schema graphql.Schema, actor policy.Actor, query string, vars map[string]interface{}) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: vars,
		Context:        WithActor(context.Background(), actor),
	})
}

func errorCode(t *testing.T, result *graphql.Result) string {
	t.Helper()
	require.NotEmpty(t, result.Errors)

	code, _ := result.Errors[0].Extensions["code"].(string)
	return code
}

func TestRegisterAndLoginMutations(t *testing.T) {
	schema := newTestSchema(t)

	result := execute(schema, policy.Actor{}, `
		mutation {
			register(input: {name: "Andi", email: "andi@example.com", password: "secret123", role: "writer"}) {
				accessToken
				user { id name role }
				message
			}
		}`, nil)
	require.Empty(t, result.Errors)

	payload := result.Data.(map[string]interface{})["register"].(map[string]interface{})
	assert.NotEmpty(t, payload["accessToken"])
	assert.Equal(t, "writer", payload["user"].(map[string]interface{})["role"])

	result = execute(schema, policy.Actor{}, `
		mutation {
			login(input: {email: "andi@example.com", password: "secret123"}) {
				accessToken
				message
			}
		}`, nil)
	require.Empty(t, result.Errors)
}

func TestRegisterEditorRejectedWithForbiddenCode(t *testing.T) {
	schema := newTestSchema(t)

	result := execute(schema, policy.Actor{}, `
		mutation {
			register(input: {name: "Eve", email: "eve@example.com", password: "secret123", role: "Editor"}) {
				accessToken
			}
		}`, nil)

	assert.Equal(t, "FORBIDDEN", errorCode(t, result))
}

func TestCreatePostPolicyMatchesRest(t *testing.T) {
	schema := newTestSchema(t)

	mutation := `
		mutation {
			createPost(input: {title: "Hello", content: "World"}) {
				post { id title status userId }
			}
		}`

	// Anonymous
	result := execute(schema, policy.Actor{}, mutation, nil)
	assert.Equal(t, "UNAUTHENTICATED", errorCode(t, result))

	// Reader
	reader := policy.Actor{ID: 1, Role: models.RoleReader, Authenticated: true}
	result = execute(schema, reader, mutation, nil)
	assert.Equal(t, "FORBIDDEN", errorCode(t, result))

	// Writer
	writer := policy.Actor{ID: 2, Role: models.RoleWriter, Authenticated: true}
	result = execute(schema, writer, mutation, nil)
	require.Empty(t, result.Errors)

	post := result.Data.(map[string]interface{})["createPost"].(map[string]interface{})["post"].(map[string]interface{})
	assert.Equal(t, "draft", post["status"])
	assert.Equal(t, "2", post["userId"])
}

func TestPostsConnectionPaging(t *testing.T) {
	schema := newTestSchema(t)
	writer := policy.Actor{ID: 2, Role: models.RoleWriter, Authenticated: true}

	for i := 0; i < 3; i++ {
		result := execute(schema, writer, `
			mutation { createPost(input: {title: "T", content: "C"}) { post { id } } }`, nil)
		require.Empty(t, result.Errors)
	}

	result := execute(schema, policy.Actor{}, `
		query { posts(limit: 2, offset: 0) { totalCount hasNextPage hasPreviousPage } }`, nil)
	require.Empty(t, result.Errors)

	connection := result.Data.(map[string]interface{})["posts"].(map[string]interface{})
	assert.Equal(t, 3, connection["totalCount"])
	assert.Equal(t, true, connection["hasNextPage"])
	assert.Equal(t, false, connection["hasPreviousPage"])
}

func TestDeletePostRemovesComments(t *testing.T) {
	schema := newTestSchema(t)
	writer := policy.Actor{ID: 2, Role: models.RoleWriter, Authenticated: true}
	reader := policy.Actor{ID: 1, Role: models.RoleReader, Authenticated: true}

	result := execute(schema, writer, `
		mutation { createPost(input: {title: "T", content: "C"}) { post { id } } }`, nil)
	require.Empty(t, result.Errors)

	result = execute(schema, reader, `
		mutation { createComment(input: {postId: "1", body: "Hi"}) { comment { id } } }`, nil)
	require.Empty(t, result.Errors)

	result = execute(schema, writer, `
		mutation { deletePost(id: "1") { success } }`, nil)
	require.Empty(t, result.Errors)

	result = execute(schema, policy.Actor{}, `query { comment(id: "1") { id } }`, nil)
	assert.Equal(t, "NOT_FOUND", errorCode(t, result))
}

func TestMeRequiresAuthentication(t *testing.T) {
	schema := newTestSchema(t)

	result := execute(schema, policy.Actor{}, `query { me { id } }`, nil)
	assert.Equal(t, "UNAUTHENTICATED", errorCode(t, result))
}
