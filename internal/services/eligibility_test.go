// internal/services/eligibility_test.go
package services

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/campuscell/placement-backend/internal/models"
)

func TestEvaluate(t *testing.T) {
	internship := &models.Internship{
		RequiredSkills:      pq.StringArray{"React", "Node"},
		EligibleDepartments: pq.StringArray{"Computer Science", "Information Technology"},
		MinimumCGPA:         6.0,
		MinimumSemester:     4,
	}

	tests := []struct {
		name         string
		student      models.User
		wantEligible bool
		wantScore    int
	}{
		{
			name: "eligible with partial skill match",
			student: models.User{
				Department: "Computer Science",
				CGPA:       7.5,
				Semester:   5,
				Skills:     pq.StringArray{"React", "Python"},
			},
			wantEligible: true,
			wantScore:    80, // 20 skills + 30 dept + 20 cgpa + 10 semester
		},
		{
			name: "full skill match scores 100",
			student: models.User{
				Department: "Information Technology",
				CGPA:       9.0,
				Semester:   6,
				Skills:     pq.StringArray{"React", "Node", "Go"},
			},
			wantEligible: true,
			wantScore:    100,
		},
		{
			name: "department mismatch blocks eligibility",
			student: models.User{
				Department: "Mechanical Engineering",
				CGPA:       8.0,
				Semester:   6,
				Skills:     pq.StringArray{"React", "Node"},
			},
			wantEligible: false,
			wantScore:    70, // 40 skills + 20 cgpa + 10 semester
		},
		{
			name: "cgpa below minimum blocks eligibility",
			student: models.User{
				Department: "Computer Science",
				CGPA:       5.9,
				Semester:   5,
				Skills:     pq.StringArray{},
			},
			wantEligible: false,
			wantScore:    40, // 30 dept + 10 semester
		},
		{
			name: "semester below minimum blocks eligibility",
			student: models.User{
				Department: "Computer Science",
				CGPA:       6.0,
				Semester:   3,
			},
			wantEligible: false,
			wantScore:    50, // 30 dept + 20 cgpa
		},
		{
			name: "no skills at all",
			student: models.User{
				Department: "Computer Science",
				CGPA:       6.5,
				Semester:   4,
			},
			wantEligible: true,
			wantScore:    60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(&tt.student, internship)
			assert.Equal(t, tt.wantEligible, got.IsEligible)
			assert.Equal(t, tt.wantScore, got.RecommendationScore)
			assert.False(t, got.HasApplied)
		})
	}
}

func TestEvaluateEmptyRequiredSkills(t *testing.T) {
	internship := &models.Internship{
		RequiredSkills:      pq.StringArray{},
		EligibleDepartments: pq.StringArray{"Computer Science"},
		MinimumCGPA:         6.0,
		MinimumSemester:     4,
	}
	student := &models.User{
		Department: "Computer Science",
		CGPA:       8.0,
		Semester:   6,
		Skills:     pq.StringArray{"Go"},
	}

	got := Evaluate(student, internship)
	// The skill component contributes nothing instead of dividing by zero.
	assert.True(t, got.IsEligible)
	assert.Equal(t, 60, got.RecommendationScore)
}

func TestEvaluateSkillMatchIsExact(t *testing.T) {
	internship := &models.Internship{
		RequiredSkills:      pq.StringArray{"Java"},
		EligibleDepartments: pq.StringArray{"Computer Science"},
		MinimumCGPA:         6.0,
		MinimumSemester:     4,
	}
	student := &models.User{
		Department: "Computer Science",
		CGPA:       8.0,
		Semester:   6,
		Skills:     pq.StringArray{"JavaScript"},
	}

	got := Evaluate(student, internship)
	// "JavaScript" must not count as "Java".
	assert.Equal(t, 60, got.RecommendationScore)
}
