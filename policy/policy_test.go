package policy

import (
	"testing"

	"github.com/syauqinrm/blog-backend/models"

	"github.com/stretchr/testify/assert"
)

var (
	anonymous = Actor{}
	reader    = Actor{ID: 1, Role: models.RoleReader, Authenticated: true}
	writer    = Actor{ID: 2, Role: models.RoleWriter, Authenticated: true}
	editor    = Actor{ID: 3, Role: models.RoleEditor, Authenticated: true}
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name    string
		actor   Actor
		action  Action
		res     Resource
		allowed bool
		reason  Reason
	}{
		// Anonymous access
		{"anonymous can list posts", anonymous, ActionList, Resource{Kind: ResourcePost}, true, ""},
		{"anonymous can read a post", anonymous, ActionRead, Resource{Kind: ResourcePost, OwnerID: 2}, true, ""},
		{"anonymous can read comments", anonymous, ActionRead, Resource{Kind: ResourceComment, OwnerID: 1}, true, ""},
		{"anonymous cannot create a post", anonymous, ActionCreate, Resource{Kind: ResourcePost}, false, ReasonUnauthenticated},
		{"anonymous cannot comment", anonymous, ActionCreate, Resource{Kind: ResourceComment}, false, ReasonUnauthenticated},
		{"anonymous cannot read users", anonymous, ActionRead, Resource{Kind: ResourceUser, OwnerID: 1}, false, ReasonUnauthenticated},

		// Reader
		{"reader can comment", reader, ActionCreate, Resource{Kind: ResourceComment}, true, ""},
		{"reader cannot create a post", reader, ActionCreate, Resource{Kind: ResourcePost}, false, ReasonForbidden},
		{"reader can delete own comment", reader, ActionDelete, Resource{Kind: ResourceComment, OwnerID: 1}, true, ""},
		{"reader cannot delete another's comment", reader, ActionDelete, Resource{Kind: ResourceComment, OwnerID: 2}, false, ReasonForbidden},
		{"reader can update own comment", reader, ActionUpdate, Resource{Kind: ResourceComment, OwnerID: 1}, true, ""},
		{"reader can view own record", reader, ActionRead, Resource{Kind: ResourceUser, OwnerID: 1, TargetRole: models.RoleReader}, true, ""},
		{"reader can edit own record", reader, ActionUpdate, Resource{Kind: ResourceUser, OwnerID: 1, TargetRole: models.RoleReader}, true, ""},
		{"reader cannot view another user", reader, ActionRead, Resource{Kind: ResourceUser, OwnerID: 2, TargetRole: models.RoleWriter}, false, ReasonForbidden},
		{"reader cannot delete own account", reader, ActionDelete, Resource{Kind: ResourceUser, OwnerID: 1, TargetRole: models.RoleReader}, false, ReasonForbidden},
		{"reader cannot list users", reader, ActionList, Resource{Kind: ResourceUser}, false, ReasonForbidden},

		// Writer
		{"writer can create a post", writer, ActionCreate, Resource{Kind: ResourcePost}, true, ""},
		{"writer can update own post", writer, ActionUpdate, Resource{Kind: ResourcePost, OwnerID: 2}, true, ""},
		{"writer cannot update another's post", writer, ActionUpdate, Resource{Kind: ResourcePost, OwnerID: 3}, false, ReasonForbidden},
		{"writer can delete own post", writer, ActionDelete, Resource{Kind: ResourcePost, OwnerID: 2}, true, ""},
		{"writer can moderate comments on own post", writer, ActionDelete, Resource{Kind: ResourceComment, OwnerID: 1, PostOwnerID: 2}, true, ""},
		{"writer cannot delete comments elsewhere", writer, ActionDelete, Resource{Kind: ResourceComment, OwnerID: 1, PostOwnerID: 3}, false, ReasonForbidden},
		{"writer cannot update comments on own post", writer, ActionUpdate, Resource{Kind: ResourceComment, OwnerID: 1, PostOwnerID: 2}, false, ReasonForbidden},
		{"writer cannot list users", writer, ActionList, Resource{Kind: ResourceUser}, false, ReasonForbidden},

		// Editor
		{"editor can update any post", editor, ActionUpdate, Resource{Kind: ResourcePost, OwnerID: 2}, true, ""},
		{"editor can delete any comment", editor, ActionDelete, Resource{Kind: ResourceComment, OwnerID: 1}, true, ""},
		{"editor can list users", editor, ActionList, Resource{Kind: ResourceUser}, true, ""},
		{"editor can update a reader", editor, ActionUpdate, Resource{Kind: ResourceUser, OwnerID: 1, TargetRole: models.RoleReader}, true, ""},
		{"editor can delete a writer", editor, ActionDelete, Resource{Kind: ResourceUser, OwnerID: 2, TargetRole: models.RoleWriter}, true, ""},

		// Editor protection
		{"editor cannot edit another editor", editor, ActionUpdate, Resource{Kind: ResourceUser, OwnerID: 4, TargetRole: models.RoleEditor}, false, ReasonEditorProtected},
		{"editor cannot delete another editor", editor, ActionDelete, Resource{Kind: ResourceUser, OwnerID: 4, TargetRole: models.RoleEditor}, false, ReasonEditorProtected},
		{"editor cannot delete itself", editor, ActionDelete, Resource{Kind: ResourceUser, OwnerID: 3, TargetRole: models.RoleEditor}, false, ReasonEditorProtected},
		{"editor cannot edit itself", editor, ActionUpdate, Resource{Kind: ResourceUser, OwnerID: 3, TargetRole: models.RoleEditor}, false, ReasonEditorProtected},
		{"writer cannot edit an editor", writer, ActionUpdate, Resource{Kind: ResourceUser, OwnerID: 3, TargetRole: models.RoleEditor}, false, ReasonEditorProtected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Authorize(tt.actor, tt.action, tt.res)
			assert.Equal(t, tt.allowed, decision.Allowed)
			if !tt.allowed {
				assert.Equal(t, tt.reason, decision.Reason)
			}
		})
	}
}

// Authorize must be pure: the same inputs always produce the same decision.
func TestAuthorizeIsPure(t *testing.T) {
	res := Resource{Kind: ResourceComment, OwnerID: 1, PostOwnerID: 2}
	first := Authorize(writer, ActionDelete, res)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Authorize(writer, ActionDelete, res))
	}
}

func TestDecisionErr(t *testing.T) {
	assert.NoError(t, Allow().Err())

	err := Deny(ReasonUnauthenticated).Err()
	assert.IsType(t, models.ErrorUnauthorized{}, err)

	err = Deny(ReasonForbidden).Err()
	assert.IsType(t, models.ErrorForbidden{}, err)

	err = Deny(ReasonEditorProtected).Err()
	assert.IsType(t, models.ErrorForbidden{}, err)
}
