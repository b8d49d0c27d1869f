package service

import (
	"github.com/noah-isme/matricula-dashboard-api/internal/models"
	"github.com/noah-isme/matricula-dashboard-api/internal/seed"
	"github.com/noah-isme/matricula-dashboard-api/internal/store"
)

func fixtureStudent(dni, paternal, maternal, names, grade, section string, status models.EnrollmentStatus, typ models.EnrollmentType) models.Student {
	return models.Student{
		DocumentNumber:   dni,
		StudentCode:      "S2025" + dni,
		PaternalLastName: paternal,
		MaternalLastName: maternal,
		Names:            names,
		FullName:         models.ComposeFullName(paternal, maternal, names),
		Gender:           "Mujer",
		BirthDate:        "2012-04-10",
		Grade:            grade,
		Section:          section,
		Shift:            models.ShiftMorning,
		EnrollmentStatus: status,
		EnrollmentType:   typ,
		Condition:        models.EnrollmentConditionPromoted,
		Status:           models.UserStatusForEnrollment(status),
		Sede:             "Norte",
		TutorIDs:         []string{},
		Tags:             []string{},
	}
}

func fixtureState() store.State {
	return store.State{
		Students: []models.Student{
			fixtureStudent("70000001", "ZAPATA", "RUIZ", "ANA", "1° Año", "A", models.EnrollmentStatusEnrolled, models.EnrollmentTypeContinuing),
			fixtureStudent("70000002", "ÁLVAREZ", "SOTO", "LUIS", "2° Grado", "B", models.EnrollmentStatusPending, models.EnrollmentTypeNew),
			fixtureStudent("70000003", "BARRETO", "LUNA", "SARA", "1° Año", "C", models.EnrollmentStatusPreEnrolled, models.EnrollmentTypeNew),
			fixtureStudent("70000004", "MUÑOZ", "DIAZ", "PEDRO", "5° Año", "A", models.EnrollmentStatusWithdrawn, models.EnrollmentTypeContinuing),
			fixtureStudent("70000005", "CASTRO", "POMA", "LUCIA", "3 AÑOS", "Rosas", models.EnrollmentStatusTransferred, models.EnrollmentTypeTransfer),
		},
		Staff: []models.Staff{
			{DNI: "40000001", Name: "Rosa Quispe", Area: "Dirección", Role: "Directora", Category: models.StaffCategoryDirector, Status: models.UserStatusActive, Sede: "Norte"},
			{DNI: "40000002", Name: "Carlos Mendoza", Area: "Matemática", Role: "Docente", Category: models.StaffCategoryTeacher, Status: models.UserStatusActive, Sede: "Sur"},
		},
		Parents: []models.ParentTutor{
			{DNI: "50000001", Name: "Elena Ruiz", Relation: models.ParentRelationMother, StudentDNIs: []string{"70000001"}, Status: models.UserStatusActive, Sede: "Norte"},
		},
		Events: []models.CalendarEvent{
			{ID: "ev-1", Title: "Inicio de clases", Category: models.EventCategoryActivity, Date: "2025-03-10"},
			{ID: "ev-3", Title: "Exámenes bimestrales", Category: models.EventCategoryExam, Date: "2025-03-10"},
			{ID: "ev-2", Title: "Día del Maestro", Category: models.EventCategoryCivic, Date: "2025-07-06"},
		},
	}
}

func fixtureStore() *store.Store {
	return store.New(fixtureState())
}

var fixtureCatalog = seed.Grades()
