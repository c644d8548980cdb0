package graph

import (
	"strconv"
	"time"

	"github.com/syauqinrm/blog-backend/models"
	"github.com/syauqinrm/blog-backend/services"

	"github.com/graphql-go/graphql"
)

// Resolver bundles the services both front-ends share. Every mutation goes
// through the same policy checks as its REST counterpart.
type Resolver struct {
	AuthService    services.AuthService
	UserService    services.UserService
	PostService    services.PostService
	CommentService services.CommentService
}

func NewResolver(
	authService services.AuthService,
	userService services.UserService,
	postService services.PostService,
	commentService services.CommentService,
) *Resolver {
	return &Resolver{
		AuthService:    authService,
		UserService:    userService,
		PostService:    postService,
		CommentService: commentService,
	}
}

func parseID(value interface{}) (uint, error) {
	str, ok := value.(string)
	if !ok {
		return 0, models.ErrorValidation{Message: "invalid id"}
	}
	id, err := strconv.ParseUint(str, 10, 32)
	if err != nil {
		return 0, models.ErrorValidation{Message: "invalid id"}
	}
	return uint(id), nil
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func userFrom(src interface{}) (*models.User, bool) {
	switch v := src.(type) {
	case *models.User:
		return v, true
	case models.User:
		return &v, true
	}
	return nil, false
}

func postFrom(src interface{}) (*models.Post, bool) {
	switch v := src.(type) {
	case *models.Post:
		return v, true
	case models.Post:
		return &v, true
	}
	return nil, false
}

func commentFrom(src interface{}) (*models.Comment, bool) {
	switch v := src.(type) {
	case *models.Comment:
		return v, true
	case models.Comment:
		return &v, true
	}
	return nil, false
}

func NewSchema(r *Resolver) (graphql.Schema, error) {
	var postType *graphql.Object
	var commentType *graphql.Object

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, _ := userFrom(p.Source)
					return strconv.FormatUint(uint64(u.ID), 10), nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, _ := userFrom(p.Source)
					return u.Name, nil
				},
			},
			"email": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, _ := userFrom(p.Source)
					return u.Email, nil
				},
			},
			"role": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, _ := userFrom(p.Source)
					return string(u.Role), nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, _ := userFrom(p.Source)
					return formatTime(u.CreatedAt), nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, _ := userFrom(p.Source)
					return formatTime(u.UpdatedAt), nil
				},
			},
		},
	})

	postType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Post",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id": &graphql.Field{
					Type: graphql.NewNonNull(graphql.ID),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						post, _ := postFrom(p.Source)
						return strconv.FormatUint(uint64(post.ID), 10), nil
					},
				},
				"title": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						post, _ := postFrom(p.Source)
						return post.Title, nil
					},
				},
				"content": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						post, _ := postFrom(p.Source)
						return post.Content, nil
					},
				},
				"status": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						post, _ := postFrom(p.Source)
						return string(post.Status), nil
					},
				},
				"userId": &graphql.Field{
					Type: graphql.NewNonNull(graphql.ID),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						post, _ := postFrom(p.Source)
						return strconv.FormatUint(uint64(post.UserID), 10), nil
					},
				},
				"user": &graphql.Field{
					Type: graphql.NewNonNull(userType),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						post, _ := postFrom(p.Source)
						if post.User.ID != 0 {
							return post.User, nil
						}
						return r.AuthService.GetUserByID(post.UserID)
					},
				},
				"comments": &graphql.Field{
					Type: graphql.NewList(graphql.NewNonNull(commentType)),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						post, _ := postFrom(p.Source)
						return post.Comments, nil
					},
				},
				"commentCount": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Int),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						post, _ := postFrom(p.Source)
						return len(post.Comments), nil
					},
				},
				"createdAt": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						post, _ := postFrom(p.Source)
						return formatTime(post.CreatedAt), nil
					},
				},
				"updatedAt": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						post, _ := postFrom(p.Source)
						return formatTime(post.UpdatedAt), nil
					},
				},
			}
		}),
	})

	commentType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Comment",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id": &graphql.Field{
					Type: graphql.NewNonNull(graphql.ID),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						comment, _ := commentFrom(p.Source)
						return strconv.FormatUint(uint64(comment.ID), 10), nil
					},
				},
				"body": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						comment, _ := commentFrom(p.Source)
						return comment.Body, nil
					},
				},
				"userId": &graphql.Field{
					Type: graphql.NewNonNull(graphql.ID),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						comment, _ := commentFrom(p.Source)
						return strconv.FormatUint(uint64(comment.UserID), 10), nil
					},
				},
				"postId": &graphql.Field{
					Type: graphql.NewNonNull(graphql.ID),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						comment, _ := commentFrom(p.Source)
						return strconv.FormatUint(uint64(comment.PostID), 10), nil
					},
				},
				"user": &graphql.Field{
					Type: graphql.NewNonNull(userType),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						comment, _ := commentFrom(p.Source)
						if comment.User.ID != 0 {
							return comment.User, nil
						}
						return r.AuthService.GetUserByID(comment.UserID)
					},
				},
				"post": &graphql.Field{
					Type: graphql.NewNonNull(postType),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						comment, _ := commentFrom(p.Source)
						if comment.Post != nil {
							return comment.Post, nil
						}
						return r.PostService.GetPost(comment.PostID)
					},
				},
				"createdAt": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						comment, _ := commentFrom(p.Source)
						return formatTime(comment.CreatedAt), nil
					},
				},
				"updatedAt": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						comment, _ := commentFrom(p.Source)
						return formatTime(comment.UpdatedAt), nil
					},
				},
			}
		}),
	})

	authPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"accessToken": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"user":        &graphql.Field{Type: graphql.NewNonNull(userType)},
			"message":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	postsConnectionType := graphql.NewObject(graphql.ObjectConfig{
		Name: "PostsConnection",
		Fields: graphql.Fields{
			"posts":           &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(postType)))},
			"totalCount":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"hasNextPage":     &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"hasPreviousPage": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		},
	})

	commentsConnectionType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CommentsConnection",
		Fields: graphql.Fields{
			"comments":   &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(commentType)))},
			"totalCount": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	postPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "PostPayload",
		Fields: graphql.Fields{
			"post":    &graphql.Field{Type: graphql.NewNonNull(postType)},
			"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	commentPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CommentPayload",
		Fields: graphql.Fields{
			"comment": &graphql.Field{Type: graphql.NewNonNull(commentType)},
			"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	deletePayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "DeletePayload",
		Fields: graphql.Fields{
			"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	registerInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "RegisterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"role":     &graphql.InputObjectFieldConfig{Type: graphql.String, DefaultValue: "reader"},
		},
	})

	loginInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "LoginInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	createPostInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreatePostInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"content": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"status":  &graphql.InputObjectFieldConfig{Type: graphql.String, DefaultValue: "draft"},
		},
	})

	updatePostInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdatePostInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"content": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"status":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	createCommentInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateCommentInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"postId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"body":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	updateCommentInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateCommentInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"body": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type: userType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					actor := actorFrom(p.Context)
					if !actor.Authenticated {
						return nil, models.ErrorUnauthorized{Message: "authentication required"}
					}
					return r.AuthService.GetUserByID(actor.ID)
				},
			},
			"users": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(userType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.UserService.GetUsers(actorFrom(p.Context))
				},
			},
			"user": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := parseID(p.Args["id"])
					if err != nil {
						return nil, err
					}
					return r.UserService.GetUser(actorFrom(p.Context), id)
				},
			},
			"posts": &graphql.Field{
				Type: graphql.NewNonNull(postsConnectionType),
				Args: graphql.FieldConfigArgument{
					"limit":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 10},
					"offset": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
					"status": &graphql.ArgumentConfig{Type: graphql.String},
					"userId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					limit, _ := p.Args["limit"].(int)
					if limit <= 0 {
						limit = 10
					}
					offset, _ := p.Args["offset"].(int)
					if offset < 0 {
						offset = 0
					}

					params := models.PostListParams{
						Page:  offset/limit + 1,
						Limit: limit,
					}
					if status, ok := p.Args["status"].(string); ok {
						params.Status = status
					}
					if rawID, ok := p.Args["userId"]; ok && rawID != nil {
						userID, err := parseID(rawID)
						if err != nil {
							return nil, err
						}
						params.UserID = userID
					}

					posts, total, err := r.PostService.GetPosts(params)
					if err != nil {
						return nil, err
					}

					return map[string]interface{}{
						"posts":           posts,
						"totalCount":      int(total),
						"hasNextPage":     int64(offset+limit) < total,
						"hasPreviousPage": offset > 0,
					}, nil
				},
			},
			"post": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := parseID(p.Args["id"])
					if err != nil {
						return nil, err
					}
					return r.PostService.GetPost(id)
				},
			},
			"myPosts": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(postType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.PostService.GetMyPosts(actorFrom(p.Context))
				},
			},
			"comments": &graphql.Field{
				Type: graphql.NewNonNull(commentsConnectionType),
				Args: graphql.FieldConfigArgument{
					"postId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"limit":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 10},
					"offset": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					postID, err := parseID(p.Args["postId"])
					if err != nil {
						return nil, err
					}

					limit, _ := p.Args["limit"].(int)
					if limit <= 0 {
						limit = 10
					}
					offset, _ := p.Args["offset"].(int)
					if offset < 0 {
						offset = 0
					}

					comments, total, err := r.CommentService.GetComments(postID, models.CommentListParams{
						Page:  offset/limit + 1,
						Limit: limit,
					})
					if err != nil {
						return nil, err
					}

					return map[string]interface{}{
						"comments":   comments,
						"totalCount": int(total),
					}, nil
				},
			},
			"comment": &graphql.Field{
				Type: commentType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := parseID(p.Args["id"])
					if err != nil {
						return nil, err
					}
					return r.CommentService.GetComment(id)
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"register": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(registerInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input, _ := p.Args["input"].(map[string]interface{})
					req := models.RegisterRequest{
						Name:     stringArg(input, "name"),
						Email:    stringArg(input, "email"),
						Password: stringArg(input, "password"),
						Role:     stringArg(input, "role"),
					}

					response, err := r.AuthService.Register(req)
					if err != nil {
						return nil, err
					}

					return map[string]interface{}{
						"accessToken": response.Token,
						"user":        response.User,
						"message":     "Register success",
					}, nil
				},
			},
			"login": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(loginInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input, _ := p.Args["input"].(map[string]interface{})
					response, err := r.AuthService.Login(models.LoginRequest{
						Email:    stringArg(input, "email"),
						Password: stringArg(input, "password"),
					})
					if err != nil {
						return nil, err
					}

					return map[string]interface{}{
						"accessToken": response.Token,
						"user":        response.User,
						"message":     "Login success",
					}, nil
				},
			},
			"createPost": &graphql.Field{
				Type: graphql.NewNonNull(postPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createPostInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input, _ := p.Args["input"].(map[string]interface{})
					post, err := r.PostService.CreatePost(actorFrom(p.Context), models.CreatePostRequest{
						Title:   stringArg(input, "title"),
						Content: stringArg(input, "content"),
						Status:  stringArg(input, "status"),
					})
					if err != nil {
						return nil, err
					}

					return map[string]interface{}{
						"post":    post,
						"message": "Post created successfully",
					}, nil
				},
			},
			"updatePost": &graphql.Field{
				Type: graphql.NewNonNull(postPayloadType),
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updatePostInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := parseID(p.Args["id"])
					if err != nil {
						return nil, err
					}

					input, _ := p.Args["input"].(map[string]interface{})
					post, err := r.PostService.UpdatePost(id, actorFrom(p.Context), models.UpdatePostRequest{
						Title:   optionalStringArg(input, "title"),
						Content: optionalStringArg(input, "content"),
						Status:  optionalStringArg(input, "status"),
					})
					if err != nil {
						return nil, err
					}

					return map[string]interface{}{
						"post":    post,
						"message": "Post updated successfully",
					}, nil
				},
			},
			"deletePost": &graphql.Field{
				Type: graphql.NewNonNull(deletePayloadType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := parseID(p.Args["id"])
					if err != nil {
						return nil, err
					}

					if err := r.PostService.DeletePost(id, actorFrom(p.Context)); err != nil {
						return nil, err
					}

					return map[string]interface{}{
						"success": true,
						"message": "Post deleted successfully",
					}, nil
				},
			},
			"createComment": &graphql.Field{
				Type: graphql.NewNonNull(commentPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createCommentInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input, _ := p.Args["input"].(map[string]interface{})
					postID, err := parseID(input["postId"])
					if err != nil {
						return nil, err
					}

					comment, err := r.CommentService.CreateComment(postID, actorFrom(p.Context), models.CreateCommentRequest{
						Body: stringArg(input, "body"),
					})
					if err != nil {
						return nil, err
					}

					return map[string]interface{}{
						"comment": comment,
						"message": "Comment created successfully",
					}, nil
				},
			},
			"updateComment": &graphql.Field{
				Type: graphql.NewNonNull(commentPayloadType),
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateCommentInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := parseID(p.Args["id"])
					if err != nil {
						return nil, err
					}

					input, _ := p.Args["input"].(map[string]interface{})
					comment, err := r.CommentService.UpdateComment(id, actorFrom(p.Context), models.UpdateCommentRequest{
						Body: stringArg(input, "body"),
					})
					if err != nil {
						return nil, err
					}

					return map[string]interface{}{
						"comment": comment,
						"message": "Comment updated successfully",
					}, nil
				},
			},
			"deleteComment": &graphql.Field{
				Type: graphql.NewNonNull(deletePayloadType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := parseID(p.Args["id"])
					if err != nil {
						return nil, err
					}

					if err := r.CommentService.DeleteComment(id, actorFrom(p.Context)); err != nil {
						return nil, err
					}

					return map[string]interface{}{
						"success": true,
						"message": "Comment deleted successfully",
					}, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func stringArg(input map[string]interface{}, key string) string {
	if value, ok := input[key].(string); ok {
		return value
	}
	return ""
}

func optionalStringArg(input map[string]interface{}, key string) *string {
	if value, ok := input[key].(string); ok {
		return &value
	}
	return nil
}
