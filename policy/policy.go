// Package policy holds the authorization rules for the whole backend in one
// decision table. Both the REST handlers and the GraphQL resolvers consult
// Authorize through the services, so the two front-ends cannot drift apart.
package policy

import (
	"github.com/syauqinrm/blog-backend/models"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionList   Action = "list"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type ResourceKind string

const (
	ResourcePost    ResourceKind = "post"
	ResourceComment ResourceKind = "comment"
	ResourceUser    ResourceKind = "user"
)

// Actor is the identity performing an action. The zero value is anonymous.
type Actor struct {
	ID            uint
	Role          models.UserRole
	Authenticated bool
}

// Resource describes the record being acted upon. OwnerID is the id of the
// owning user. PostOwnerID is set for comments so a writer can moderate
// comments under their own posts. TargetRole is set for user resources.
type Resource struct {
	Kind        ResourceKind
	OwnerID     uint
	PostOwnerID uint
	TargetRole  models.UserRole
}

type Reason string

const (
	ReasonUnauthenticated Reason = "unauthenticated"
	ReasonForbidden       Reason = "forbidden"
	ReasonEditorProtected Reason = "editor_protected"
)

type Decision struct {
	Allowed bool
	Reason  Reason
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason Reason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Err converts a deny decision into the matching taxonomy error. Returns nil
// when the decision allows.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	switch d.Reason {
	case ReasonUnauthenticated:
		return models.ErrorUnauthorized{Message: "authentication required"}
	case ReasonEditorProtected:
		return models.ErrorForbidden{Message: "editor accounts cannot be modified"}
	default:
		return models.ErrorForbidden{Message: "you do not have permission to perform this action"}
	}
}

// Authorize is a pure function: the decision depends only on the actor, the
// action and the resource passed in.
func Authorize(actor Actor, action Action, res Resource) Decision {
	if !actor.Authenticated {
		if res.Kind != ResourceUser && (action == ActionRead || action == ActionList) {
			return Allow()
		}
		return Deny(ReasonUnauthenticated)
	}

	if res.Kind == ResourceUser {
		return authorizeUser(actor, action, res)
	}

	return authorizeContent(actor, action, res)
}

func authorizeContent(actor Actor, action Action, res Resource) Decision {
	if actor.Role == models.RoleEditor {
		return Allow()
	}

	switch action {
	case ActionRead, ActionList:
		return Allow()
	case ActionCreate:
		if res.Kind == ResourcePost {
			if actor.Role == models.RoleWriter {
				return Allow()
			}
			return Deny(ReasonForbidden)
		}
		// Any authenticated user may comment.
		return Allow()
	case ActionUpdate:
		if res.OwnerID == actor.ID {
			return Allow()
		}
		return Deny(ReasonForbidden)
	case ActionDelete:
		if res.OwnerID == actor.ID {
			return Allow()
		}
		// The owner of the parent post may moderate its comments.
		if res.Kind == ResourceComment && res.PostOwnerID != 0 && res.PostOwnerID == actor.ID {
			return Allow()
		}
		return Deny(ReasonForbidden)
	}

	return Deny(ReasonForbidden)
}

func authorizeUser(actor Actor, action Action, res Resource) Decision {
	// Editor accounts are off limits for mutation, no matter who asks.
	if (action == ActionUpdate || action == ActionDelete) && res.TargetRole == models.RoleEditor {
		return Deny(ReasonEditorProtected)
	}

	if actor.Role == models.RoleEditor {
		return Allow()
	}

	switch action {
	case ActionRead, ActionUpdate:
		if res.OwnerID == actor.ID {
			return Allow()
		}
	}

	return Deny(ReasonForbidden)
}
