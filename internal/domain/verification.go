package domain

import "time"

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

func (s VerificationStatus) Valid() bool {
	switch s {
	case VerificationPending, VerificationApproved, VerificationRejected:
		return true
	default:
		return false
	}
}

type AccountType string

const (
	AccountTypeAlumni   AccountType = "alumni"
	AccountTypeEmployer AccountType = "employer"
)

func (t AccountType) Valid() bool {
	return t == AccountTypeAlumni || t == AccountTypeEmployer
}

type VerificationProfile struct {
	AccountID   string             `json:"account_id"`
	Status      VerificationStatus `json:"status"`
	IDNumber    string             `json:"id_number"`
	AccountType AccountType        `json:"account_type"`
	FullName    string             `json:"full_name"`
	Company     string             `json:"company"`
	ReviewedBy  *string            `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time         `json:"reviewed_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// DirectoryEntry is the public view of an approved member. Vetting fields
// stay on the admin screens.
type DirectoryEntry struct {
	AccountID   string      `json:"account_id"`
	FullName    string      `json:"full_name"`
	AccountType AccountType `json:"account_type"`
	Company     string      `json:"company"`
}

func (p VerificationProfile) DirectoryEntry() DirectoryEntry {
	return DirectoryEntry{
		AccountID:   p.AccountID,
		FullName:    p.FullName,
		AccountType: p.AccountType,
		Company:     p.Company,
	}
}

// Member is a profile paired with the account's effective role, as listed on
// the admin screen.
type Member struct {
	Profile VerificationProfile `json:"profile"`
	Role    Role                `json:"role"`
}
