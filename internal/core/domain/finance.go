package domain

import "time"

// AuditStatus marks whether a financial report has been audited.
type AuditStatus string

const (
	AuditPending AuditStatus = "pending"
	AuditAudited AuditStatus = "audited"
)

// Valid reports whether s is a known audit status.
func (s AuditStatus) Valid() bool {
	return s == AuditPending || s == AuditAudited
}

// FinancialReport is a quarterly transparency report.
type FinancialReport struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	Period      string      `json:"period" bson:"period"`
	Quarter     int         `json:"quarter" bson:"quarter"`
	Year        int         `json:"year" bson:"year"`
	Income      float64     `json:"income" bson:"income"`
	Expense     float64     `json:"expense" bson:"expense"`
	Profit      float64     `json:"profit" bson:"profit"`
	AuditStatus AuditStatus `json:"audit_status" bson:"audit_status"`
	PDFURL      string      `json:"pdf_url,omitempty" bson:"pdf_url,omitempty"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" bson:"updated_at"`
}

// SHUDistribution records one year's surplus distribution to members.
type SHUDistribution struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	Year             int       `json:"year" bson:"year"`
	TotalAmount      float64   `json:"total_amount" bson:"total_amount"`
	MemberCount      int       `json:"member_count" bson:"member_count"`
	PerMember        float64   `json:"per_member" bson:"per_member"`
	DistributionDate time.Time `json:"distribution_date" bson:"distribution_date"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" bson:"updated_at"`
}
