// internal/services/eligibility.go
package services

import (
	"math"

	"github.com/campuscell/placement-backend/internal/models"
)

// Evaluation is the read-time verdict for one student against one internship.
type Evaluation struct {
	IsEligible          bool `json:"isEligible"`
	RecommendationScore int  `json:"recommendationScore"`
	HasApplied          bool `json:"hasApplied"`
}

// Evaluate computes the eligibility gate and the 0-100 recommendation score.
// Pure; HasApplied is filled in by the caller from the application store.
//
// Score weights: skill overlap with required skills 40, department match 30,
// CGPA gate 20, semester gate 10.
func Evaluate(student *models.User, internship *models.Internship) Evaluation {
	departmentMatch := containsString(internship.EligibleDepartments, student.Department)
	cgpaEligible := student.CGPA >= internship.MinimumCGPA
	semesterEligible := student.Semester >= internship.MinimumSemester

	score := 0.0
	if len(internship.RequiredSkills) > 0 {
		matched := 0
		for _, skill := range internship.RequiredSkills {
			if containsString(student.Skills, skill) {
				matched++
			}
		}
		score += float64(matched) / float64(len(internship.RequiredSkills)) * 40
	}
	if departmentMatch {
		score += 30
	}
	if cgpaEligible {
		score += 20
	}
	if semesterEligible {
		score += 10
	}

	return Evaluation{
		IsEligible:          departmentMatch && cgpaEligible && semesterEligible,
		RecommendationScore: int(math.Round(score)),
	}
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
