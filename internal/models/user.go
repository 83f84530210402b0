// internal/models/user.go
package models

import (
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// User covers all four portal roles. Role-specific columns stay at their zero
// value for the roles they do not apply to.
type User struct {
	BaseModel
	Name         string `json:"name" gorm:"size:255;not null"`
	Email        string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`
	Role         Role   `json:"role" gorm:"type:varchar(20);not null;index"`

	// Student attributes
	Department      string          `json:"department,omitempty" gorm:"size:100;index"`
	Semester        int             `json:"semester,omitempty"`
	CGPA            float64         `json:"cgpa,omitempty" gorm:"type:decimal(4,2)"`
	Skills          pq.StringArray  `json:"skills,omitempty" gorm:"type:text[]"`
	ResumeLink      string          `json:"resume_link,omitempty" gorm:"size:500"`
	Phone           string          `json:"phone,omitempty" gorm:"size:20"`
	IsPlaced        bool            `json:"is_placed" gorm:"default:false"`
	PlacementStatus PlacementStatus `json:"placement_status,omitempty" gorm:"type:varchar(20);default:'active'"`
	PlacedAt        JSONB           `json:"placed_at,omitempty" gorm:"type:jsonb"`

	// Mentor / recruiter attributes
	Designation string `json:"designation,omitempty" gorm:"size:100"`
	Company     string `json:"company,omitempty" gorm:"size:255"`
	MaxStudents int    `json:"max_students,omitempty"`

	// Relationships
	Applications         []Application `json:"applications,omitempty" gorm:"foreignKey:StudentID"`
	MentoredApplications []Application `json:"mentored_applications,omitempty" gorm:"foreignKey:MentorID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
