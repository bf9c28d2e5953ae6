package resume

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Record is the canonical resume shape shared by the editor, the parser,
// the PDF renderer and the enhancement flow. Field names are part of the
// persisted contract and must not change.
type Record struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
	Location string `json:"location"`
	Summary  string `json:"summary"`

	Experience     []ExperienceEntry    `json:"experience"`
	Education      []EducationEntry     `json:"education"`
	Achievements   []AchievementEntry   `json:"achievements"`
	Skills         []string             `json:"skills"`
	Languages      []string             `json:"languages"`
	Projects       []ProjectEntry       `json:"projects"`
	Certifications []CertificationEntry `json:"certifications"`
	Courses        []CourseEntry        `json:"courses"`
}

type ExperienceEntry struct {
	Title           string   `json:"title"`
	CompanyName     string   `json:"companyName"`
	Date            string   `json:"date"`
	CompanyLocation string   `json:"companyLocation"`
	Accomplishment  []string `json:"accomplishment"`
}

type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Duration    string `json:"duration"`
	Location    string `json:"location"`
}

type AchievementEntry struct {
	KeyAchievements string `json:"keyAchievements"`
	Describe        string `json:"describe"`
}

type ProjectEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

type CertificationEntry struct {
	Title    string `json:"title"`
	IssuedBy string `json:"issuedBy"`
	Year     string `json:"year"`
}

type CourseEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// NewRecord returns a Record with all slice fields allocated so that JSON
// serialization yields [] instead of null for empty sections.
func NewRecord() Record {
	return Record{
		Experience:     []ExperienceEntry{},
		Education:      []EducationEntry{},
		Achievements:   []AchievementEntry{},
		Skills:         []string{},
		Languages:      []string{},
		Projects:       []ProjectEntry{},
		Certifications: []CertificationEntry{},
		Courses:        []CourseEntry{},
	}
}

// Document wraps a Record with storage metadata.
type Document struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId,omitempty"`
	Title     string    `json:"title"`
	Record    Record    `json:"record"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UploadMeta stores metadata about an imported source file.
type UploadMeta struct {
	ResumeID uuid.UUID `json:"resumeId"`
	Filename string    `json:"filename"`
	MimeType string    `json:"mimeType"`
	Size     int64     `json:"size"`
}

// Repository is the persistence port for resume documents.
type Repository interface {
	Create(ctx context.Context, d Document) error
	Get(ctx context.Context, ownerID, id uuid.UUID) (Document, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Document, error)
	Update(ctx context.Context, d Document) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	// upload provenance
	SaveUpload(ctx context.Context, m UploadMeta) error
	// admin
	ListAll(ctx context.Context, limit, offset int) ([]Document, error)
	GetAny(ctx context.Context, id uuid.UUID) (Document, error)
}
