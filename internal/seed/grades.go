package seed

import "github.com/noah-isme/matricula-dashboard-api/internal/models"

// Grades returns the grade catalog offered by the school, in display order.
func Grades() models.GradeCatalog {
	return models.GradeCatalog{
		{
			Key:   "inicial",
			Level: models.LevelInitial,
			Grades: []models.GradeEntry{
				{Grade: "3 AÑOS", Sections: []string{"Margaritas", "Crisantemos"}},
				{Grade: "4 AÑOS", Sections: []string{"Jasminez", "Rosas", "Lirios", "Geranios"}},
				{Grade: "5 AÑOS", Sections: []string{"Orquideas", "Tulipanes", "Girasoles", "Claveles"}},
			},
		},
		{
			Key:   "primaria",
			Level: models.LevelPrimary,
			Grades: []models.GradeEntry{
				{Grade: "1° Grado", Sections: letters(3)},
				{Grade: "2° Grado", Sections: letters(3)},
				{Grade: "3° Grado", Sections: letters(3)},
				{Grade: "4° Grado", Sections: letters(4)},
				{Grade: "5° Grado", Sections: letters(3)},
				{Grade: "6° Grado", Sections: letters(3)},
			},
		},
		{
			Key:   "secundaria",
			Level: models.LevelSecondary,
			Grades: []models.GradeEntry{
				{Grade: "1° Año", Sections: letters(8)},
				{Grade: "2° Año", Sections: letters(7)},
				{Grade: "3° Año", Sections: letters(7)},
				{Grade: "4° Año", Sections: letters(6)},
				{Grade: "5° Año", Sections: letters(6)},
			},
		},
	}
}

func letters(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('A' + i))
	}
	return out
}
