package api

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
// Password complexity beyond the minimum length is enforced by the domain
// validation, which the handler runs before touching storage.
type RegisterRequest struct {
	Email        string `json:"email"         validate:"required,email"`
	Password     string `json:"password"      validate:"required,min=8"`
	Username     string `json:"username"      validate:"required,max=48"`
	MobileNumber string `json:"mobile_number" validate:"required,len=10,numeric"`
	UserRole     string `json:"user_role"     validate:"required,oneof=Admin User"`
	SecretKey    string `json:"secret_key"    validate:"omitempty,max=56"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	Token string `json:"token"`
}

// InternshipRequest defines the payload for creating or updating an
// internship posting.
type InternshipRequest struct {
	Title               string  `json:"title"                validate:"required,max=128"`
	CompanyName         string  `json:"company_name"         validate:"required,max=128"`
	Location            string  `json:"location"             validate:"required,max=128"`
	DurationInMonths    int     `json:"duration_in_months"   validate:"required,min=1"`
	Stipend             float64 `json:"stipend"              validate:"min=0"`
	Description         string  `json:"description"          validate:"required,max=1024"`
	SkillsRequired      string  `json:"skills_required"      validate:"required,max=200"`
	ApplicationDeadline string  `json:"application_deadline" validate:"required,datetime=2006-01-02"`
}

// ApplicationRequest defines the payload for submitting an application.
type ApplicationRequest struct {
	UserID          int64  `json:"user_id"            validate:"required,gt=0"`
	InternshipID    int64  `json:"internship_id"      validate:"required,gt=0"`
	UniversityName  string `json:"university_name"    validate:"required,max=128"`
	DegreeProgram   string `json:"degree_program"     validate:"required,max=32"`
	Resume          string `json:"resume"             validate:"required"`
	LinkedInProfile string `json:"linkedin_profile"   validate:"omitempty,max=512"`
	Status          string `json:"application_status" validate:"required,max=8"`
}

// ApplicationUpdateRequest defines the payload for updating an application.
// The owning user, target internship, and application date are immutable and
// therefore absent here.
type ApplicationUpdateRequest struct {
	UniversityName  string `json:"university_name"    validate:"required,max=128"`
	DegreeProgram   string `json:"degree_program"     validate:"required,max=32"`
	Resume          string `json:"resume"             validate:"required"`
	LinkedInProfile string `json:"linkedin_profile"   validate:"omitempty,max=512"`
	Status          string `json:"application_status" validate:"required,max=8"`
}

// FeedbackRequest defines the payload for submitting feedback.
type FeedbackRequest struct {
	UserID int64  `json:"user_id"       validate:"required,gt=0"`
	Text   string `json:"feedback_text" validate:"required,max=1012"`
}

// FeedbackUpdateRequest defines the payload for updating feedback text.
type FeedbackUpdateRequest struct {
	Text string `json:"feedback_text" validate:"required,max=1012"`
}
