package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler        projectHandler
	skillHandler          skillHandler
	contactMessageHandler contactMessageHandler
	profileHandler        profileHandler
	healthHandler         healthHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// IDInput identifies a single record for get/update/delete operations.
type IDInput struct {
	ID uint `json:"id"`
}

// CreateProjectInput is the payload for the createProject operation.
type CreateProjectInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	DemoLink     *string  `json:"demo_link"`
	GithubLink   *string  `json:"github_link"`
	ImageURL     *string  `json:"image_url"`
	Featured     bool     `json:"featured"`
}

// UpdateProjectInput is the payload for the updateProject operation. Every
// field besides the id is optional; omitted fields keep their stored values.
type UpdateProjectInput struct {
	ID           uint               `json:"id"`
	Title        Optional[string]   `json:"title"`
	Description  Optional[string]   `json:"description"`
	Technologies Optional[[]string] `json:"technologies"`
	DemoLink     Optional[string]   `json:"demo_link"`
	GithubLink   Optional[string]   `json:"github_link"`
	ImageURL     Optional[string]   `json:"image_url"`
	Featured     Optional[bool]     `json:"featured"`
}

// CreateSkillInput is the payload for the createSkill operation.
type CreateSkillInput struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	ProficiencyLevel int    `json:"proficiency_level"`
}

// UpdateSkillInput is the payload for the updateSkill operation.
type UpdateSkillInput struct {
	ID               uint             `json:"id"`
	Name             Optional[string] `json:"name"`
	Category         Optional[string] `json:"category"`
	ProficiencyLevel Optional[int]    `json:"proficiency_level"`
}

// CreateContactMessageInput is the payload for the createContactMessage operation.
type CreateContactMessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// UpdateProfileInput is the payload for the updateProfile operation. All
// fields are optional; the handler upserts the canonical profile row.
type UpdateProfileInput struct {
	Name        Optional[string] `json:"name"`
	Title       Optional[string] `json:"title"`
	Bio         Optional[string] `json:"bio"`
	Location    Optional[string] `json:"location"`
	Email       Optional[string] `json:"email"`
	Phone       Optional[string] `json:"phone"`
	LinkedinURL Optional[string] `json:"linkedin_url"`
	GithubURL   Optional[string] `json:"github_url"`
	TwitterURL  Optional[string] `json:"twitter_url"`
	WebsiteURL  Optional[string] `json:"website_url"`
	AvatarURL   Optional[string] `json:"avatar_url"`
	ResumeURL   Optional[string] `json:"resume_url"`
}
