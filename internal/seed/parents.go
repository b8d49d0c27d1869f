package seed

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/noah-isme/matricula-dashboard-api/internal/models"
)

// Parents generates one tutor for each of the first n students and links
// the student back to the tutor. Students are modified in place.
func Parents(rng *rand.Rand, academicYear int, students []models.Student, n int) []models.ParentTutor {
	if n > len(students) {
		n = len(students)
	}
	list := make([]models.ParentTutor, 0, n)
	used := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		child := &students[i]

		dni := strconv.Itoa(40000000 + rng.Intn(30000000))
		if _, dup := used[dni]; dup {
			i--
			continue
		}
		used[dni] = struct{}{}

		var relation models.ParentRelation
		var lastNames, first string
		switch roll := rng.Float64(); {
		case roll < 0.45:
			relation = models.ParentRelationMother
			lastNames = child.MaternalLastName + " " + pick(rng, studentLastNames)
			first = pick(rng, femaleNames)
		case roll < 0.9:
			relation = models.ParentRelationFather
			lastNames = child.PaternalLastName + " " + pick(rng, studentLastNames)
			first = pick(rng, maleNames)
		default:
			relation = models.ParentRelationGuardian
			lastNames = pick(rng, studentLastNames) + " " + pick(rng, studentLastNames)
			first = pick(rng, append(maleNames[:len(maleNames):len(maleNames)], femaleNames...))
		}

		list = append(list, models.ParentTutor{
			DNI:         dni,
			Name:        lastNames + ", " + first,
			Relation:    relation,
			Phone:       fmt.Sprintf("9%08d", rng.Intn(100000000)),
			Email:       fmt.Sprintf("%s.%s@correo.pe", strings.ToLower(strings.Fields(first)[0]), dni),
			StudentDNIs: []string{child.DocumentNumber},
			Status:      models.UserStatusActive,
			Sede:        child.Sede,
			LastLogin:   maybeLogin(rng, academicYear, 0.5),
			AvatarURL:   avatarURL(dni, 100),
		})
		child.TutorIDs = append(child.TutorIDs, dni)
	}
	return list
}
