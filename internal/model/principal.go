package model

import "github.com/google/uuid"

type UserRole string

const (
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleSales      UserRole = "SALES"
	UserRoleAccounting UserRole = "ACCOUNTING"
	UserRoleViewer     UserRole = "VIEWER"
)

type Principal struct {
	UserID uuid.UUID
	OrgID  uuid.UUID
	Role   UserRole
}

// CanIssue reports whether the principal may produce final, archived documents.
// Everyone authenticated may preview.
func (p Principal) CanIssue() bool {
	switch p.Role {
	case UserRoleAdmin, UserRoleSales, UserRoleAccounting:
		return true
	default:
		return false
	}
}
