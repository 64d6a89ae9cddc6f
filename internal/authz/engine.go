// Package authz decides whether a caller may perform an action. It performs
// no I/O; callers supply a snapshot of the caller's role and verification
// status fetched for the current request.
package authz

import "alumni-jobboard-backend/internal/domain"

type Action string

const (
	ActionManageRoles        Action = "manage-roles"
	ActionManageVerification Action = "manage-verification"
	ActionDeleteAnyPosting   Action = "delete-any-posting"
	ActionCreatePosting      Action = "create-posting"
	ActionApplyToJob         Action = "apply-to-job"
	ActionEditPosting        Action = "edit-posting"
	ActionDeletePosting      Action = "delete-posting"
	ActionDecideApplication  Action = "decide-application"
	ActionBrowseJobs         Action = "browse-jobs"
	ActionViewOwnApplication Action = "view-own-application"
)

type Request struct {
	CallerID           string
	CallerRole         domain.Role
	CallerVerification domain.VerificationStatus
	Action             Action
	// ResourceOwnerID is only consulted by ownership-gated actions.
	ResourceOwnerID string
}

type Decision struct {
	Allowed bool
	Reason  domain.ErrorKind
}

func allow() Decision { return Decision{Allowed: true} }

func deny(reason domain.ErrorKind) Decision { return Decision{Reason: reason} }

// Decide evaluates the rules in order; the first matching rule wins.
//
//  1. administrative actions require the admin role
//  2. creating obligations (postings, applications) requires approved verification
//  3. mutating an existing resource requires ownership or the admin role
//  4. read-only browsing is always allowed
//  5. anything else is denied
func Decide(req Request) Decision {
	role := req.CallerRole.OrDefault()

	switch req.Action {
	case ActionManageRoles, ActionManageVerification, ActionDeleteAnyPosting:
		if role == domain.RoleAdmin {
			return allow()
		}
		return deny(domain.KindNotAdmin)

	case ActionCreatePosting, ActionApplyToJob:
		if req.CallerVerification == domain.VerificationApproved {
			return allow()
		}
		return deny(domain.KindNotVerified)

	case ActionEditPosting, ActionDeletePosting, ActionDecideApplication:
		if role == domain.RoleAdmin {
			return allow()
		}
		if req.CallerID != "" && req.CallerID == req.ResourceOwnerID {
			return allow()
		}
		return deny(domain.KindNotOwner)

	case ActionBrowseJobs, ActionViewOwnApplication:
		return allow()

	default:
		return deny(domain.KindUnrecognized)
	}
}

// Err converts a deny into the matching domain error, or nil when allowed.
func (d Decision) Err(action Action) error {
	if d.Allowed {
		return nil
	}
	return domain.NewError(d.Reason, "action "+string(action)+" denied", nil)
}
