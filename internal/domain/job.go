package domain

// JobPosting is the backend's canonical wire shape for a listing. The
// portal treats it as read-only input to view mapping.
type JobPosting struct {
	ID             string  `json:"id"`
	JobTitle       string  `json:"jobTitle"`
	JobType        string  `json:"jobType"`
	JobDescription string  `json:"jobDescription"`
	Company        string  `json:"company,omitempty"`
	Location       string  `json:"location"`
	ExpectedSalary float64 `json:"expectedSalary"`
	LinkedInURL    string  `json:"linkedInUrl"`
	ContactInfo    string  `json:"contactInfo,omitempty"`
	Requirements   string  `json:"requirements"`
	CreatedBy      string  `json:"createdBy"`
	CreatedAt      string  `json:"createdAt"`
	Deleted        bool    `json:"deleted"`
	DeletedAt      string  `json:"deletedAt,omitempty"`
}

// PostedBy identifies the poster on a rendered card.
type PostedBy struct {
	Name     string `json:"name"`
	BitsID   string `json:"bitsId,omitempty"`
	LinkedIn string `json:"linkedIn"`
}

// JobView is the normalized shape the UI renders. Derived on every fetch,
// never persisted.
type JobView struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	JobType      string   `json:"jobType"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	ContactInfo  string   `json:"contactInfo,omitempty"`
	PostedBy     PostedBy `json:"postedBy"`
	PostedAt     string   `json:"postedAt"`
	Salary       float64  `json:"salary,omitempty"`
}
