package domain

// MembershipForm is the one-to-one extension of a User holding the submitted
// application details. It is read-only for the review workflow.
type MembershipForm struct {
	ID                 int64  `json:"id"`
	UserID             int64  `json:"user_id"`
	BirthDate          string `json:"birth_date"`
	Address            string `json:"address"`
	Profession         string `json:"profession"`
	ConsularCardNumber string `json:"consular_card_number"`
	SubmittedAt        string `json:"submitted_at"`
}

// FormWithApplicant joins a form with the applicant summary fields used by
// the review listing.
type FormWithApplicant struct {
	Form      MembershipForm `json:"form"`
	Applicant User           `json:"applicant"`
}
