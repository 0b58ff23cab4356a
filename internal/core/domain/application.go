package domain

import "time"

// ApplicationStatus is the review state of a capital application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Valid reports whether s is a known application status.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected:
		return true
	}
	return false
}

// CapitalApplication is a resident's request for business capital. It is
// submitted publicly and reviewed by an admin, who records the decision
// together with their identity and timestamp. A decided application may be
// re-reviewed; there is no transition guard.
type CapitalApplication struct {
	ID            string            `json:"id" bson:"_id,omitempty"`
	ApplicantName string            `json:"applicant_name" bson:"applicant_name"`
	Phone         string            `json:"phone" bson:"phone"`
	Email         string            `json:"email,omitempty" bson:"email,omitempty"`
	BusinessType  string            `json:"business_type" bson:"business_type"`
	LoanAmount    string            `json:"loan_amount" bson:"loan_amount"`
	Purpose       string            `json:"purpose" bson:"purpose"`
	Status        ApplicationStatus `json:"status" bson:"status"`
	SubmittedAt   time.Time         `json:"submitted_at" bson:"submitted_at"`
	ReviewedAt    *time.Time        `json:"reviewed_at,omitempty" bson:"reviewed_at,omitempty"`
	ReviewedBy    string            `json:"reviewed_by,omitempty" bson:"reviewed_by,omitempty"`
	AdminNotes    string            `json:"admin_notes,omitempty" bson:"admin_notes,omitempty"`
}
