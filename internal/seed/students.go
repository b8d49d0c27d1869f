package seed

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/noah-isme/matricula-dashboard-api/internal/models"
)

var (
	studentLastNames = []string{"QUISPE", "FLORES", "RODRIGUEZ", "SANCHEZ", "GARCIA", "ROJAS", "DIAZ", "TORRES", "LOPEZ", "GONZALES", "PEREZ", "CHAVEZ", "VASQUEZ", "MENDOZA", "RAMOS", "RAMIREZ", "CASTILLO", "CASTRO", "VARGAS", "RIVERA", "MAMANI", "GUTIERREZ", "MARTINEZ", "SOTO", "HUAMAN"}
	maleNames        = []string{"JUAN", "CARLOS", "LUIS", "MIGUEL", "JOSE", "ANGEL", "PEDRO", "JORGE", "ALEJANDRO", "RICARDO", "DAVID", "FERNANDO", "VICTOR", "MARTIN", "RAUL", "MATEO", "DANIEL", "DIEGO", "NICOLAS", "SANTIAGO"}
	femaleNames      = []string{"MARIA", "ANA", "ROSA", "SOFIA", "CAMILA", "CARMEN", "JUANA", "VICTORIA", "ISABEL", "PATRICIA", "MONICA", "ELIZABETH", "LAURA", "ANDREA", "DANIELA", "VALENTINA", "LUCIA", "MARTINA", "PAULA", "SARA"}
)

// birth year offsets per level: age at grade 1 minus one.
var levelAgeOffset = map[models.LevelFilter]int{
	models.LevelInitial:   2,
	models.LevelPrimary:   5,
	models.LevelSecondary: 11,
}

// Students generates n students with unique document numbers spread over
// every grade and section of the catalog.
func Students(rng *rand.Rand, catalog models.GradeCatalog, academicYear, n int) []models.Student {
	list := make([]models.Student, 0, n)
	used := make(map[string]struct{}, n)
	for len(list) < n {
		s := student(rng, catalog, academicYear)
		if _, dup := used[s.DocumentNumber]; dup {
			continue
		}
		used[s.DocumentNumber] = struct{}{}
		list = append(list, s)
	}
	return list
}

func student(rng *rand.Rand, catalog models.GradeCatalog, academicYear int) models.Student {
	gender := "Mujer"
	names := femaleNames
	if rng.Float64() > 0.5 {
		gender = "Hombre"
		names = maleNames
	}
	paternal := pick(rng, studentLastNames)
	maternal := pick(rng, studentLastNames)
	name := pick(rng, names)

	level := catalog[rng.Intn(len(catalog))]
	grade := level.Grades[rng.Intn(len(level.Grades))]
	section := pick(rng, grade.Sections)

	gradeNumber, _ := strconv.Atoi(grade.Grade[:1])
	year := academicYear - (gradeNumber + levelAgeOffset[level.Level])
	birth := time.Date(year, time.Month(rng.Intn(12)+1), rng.Intn(28)+1, 0, 0, 0, 0, time.UTC)

	var status models.EnrollmentStatus
	switch roll := rng.Float64(); {
	case roll < 0.85:
		status = models.EnrollmentStatusEnrolled
	case roll < 0.93:
		status = models.EnrollmentStatusTransferred
	case roll < 0.98:
		status = models.EnrollmentStatusWithdrawn
	default:
		status = models.EnrollmentStatusPending
	}

	enrollmentType := models.EnrollmentTypeContinuing
	if status == models.EnrollmentStatusTransferred {
		enrollmentType = models.EnrollmentTypeTransfer
	} else if rng.Float64() > 0.7 {
		enrollmentType = models.EnrollmentTypeNew
	}
	condition := models.EnrollmentConditionPromoted
	if rng.Float64() > 0.9 {
		condition = models.EnrollmentConditionRepeater
	}

	dni := strconv.Itoa(70000000 + rng.Intn(20000000))
	return models.Student{
		DocumentNumber:       dni,
		StudentCode:          fmt.Sprintf("S%d%s", academicYear, dni),
		PaternalLastName:     paternal,
		MaternalLastName:     maternal,
		Names:                name,
		FullName:             models.ComposeFullName(paternal, maternal, name),
		Gender:               gender,
		BirthDate:            birth.Format(models.DateLayout),
		Grade:                grade.Grade,
		Section:              section,
		Shift:                models.ShiftMorning,
		EnrollmentStatus:     status,
		EnrollmentType:       enrollmentType,
		Condition:            condition,
		Status:               models.UserStatusForEnrollment(status),
		Sede:                 sede(rng),
		LastLogin:            maybeLogin(rng, academicYear, 0.3),
		AvatarURL:            avatarURL(dni, 80),
		TutorIDs:             []string{},
		Tags:                 []string{},
		AverageGrade:         11 + rng.Float64()*8,
		AttendancePercentage: 85 + rng.Float64()*15,
		TardinessCount:       rng.Intn(5),
		BehaviorIncidents:    rng.Intn(3),
		AcademicRisk:         rng.Float64() > 0.85,
	}
}

func pick(rng *rand.Rand, items []string) string {
	return items[rng.Intn(len(items))]
}

func sede(rng *rand.Rand) string {
	if rng.Float64() > 0.5 {
		return "Norte"
	}
	return "Sur"
}

// maybeLogin returns a login during the last week of July, or nil with probability skip.
func maybeLogin(rng *rand.Rand, academicYear int, skip float64) *time.Time {
	if rng.Float64() < skip {
		return nil
	}
	t := time.Date(academicYear, time.July, 20+rng.Intn(10), 8+rng.Intn(10), rng.Intn(60), 0, 0, time.UTC)
	return &t
}

func avatarURL(seed string, size int) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/%d/%d", seed, size, size)
}
