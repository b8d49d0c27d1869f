package seed

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/noah-isme/matricula-dashboard-api/internal/models"
)

var (
	staffLastNames   = []string{"GOMEZ", "PEREZ", "RAMIREZ", "SOTO", "CORDOVA", "MONTERO", "VEGA", "MARÓN", "DIAZ", "ROMERO", "ZUÑIGA", "CUYUBAMBA", "FLORES", "RIVERA", "ALLAUCA", "VALENZUELA", "BARRETO", "BARRÓN", "BUENDIA", "SANTIAGO", "AQUINO", "POMA", "SOTELO", "RODRÍGUEZ", "VIZCARRA", "HERRERA", "CHONTA", "DE LA CRUZ", "VILLEGAS", "VALDIVIA", "ZAPATA", "LUNA", "PAREDES", "MANSILLA", "CASTRO", "MONTES", "FIESTAS", "POLO", "PUERTA", "REYNA", "TORRES", "ROJAS", "MENDOZA", "CASTILLO"}
	staffMaleNames   = []string{"JUAN CARLOS", "ANGEL ROSARIO", "GREGORIO", "MARCO ANTONIO", "JHOSSEL ANDERSON", "VLADIMIR", "FREDDY", "FELIX YVAN", "GUSTAVO ALEJANDRO", "LUIS HUMBERTO", "JAVIER", "DANIEL", "ALEJANDRO", "MANUEL", "RICARDO", "ROBERTO", "FERNANDO", "JORGE", "EDUARDO"}
	staffFemaleNames = []string{"MARIA ELENA", "NATALY", "AURIA CAROLINE", "LUZ MARÍA", "PATRICIA MARIBEL", "GLORIA LUZ", "CINTHIA MAYURI", "MARILYN FANNY", "LILI", "ANAMARIA ESTHER", "LAURA", "SOFIA", "CARMEN", "ISABEL", "ANA", "VERONICA", "SANDRA", "ELIZABETH", "PAOLA", "MIRELLA MARTHA"}
	teachingAreas    = []string{"Inicial", "Primaria", "Secundaria", "CIENCIA Y TECNOLOGÍA", "COMUNICACIÓN", "EDUCACIÓN FÍSICA", "ARTE Y CULTURA", "Matemática", "Ciencias Sociales", "Inglés"}
)

func fixedStaff() []models.Staff {
	login := func(raw string) *time.Time {
		t, _ := time.Parse(time.RFC3339, raw)
		return &t
	}
	entry := func(dni, name, area, role string, cat models.StaffCategory, status models.UserStatus, sede, last string, tags []string, att int) models.Staff {
		return models.Staff{
			DNI: dni, Name: name, Area: area, Role: role, Category: cat, Status: status, Sede: sede,
			LastLogin: login(last), AvatarURL: avatarURL(dni, 100), Tags: tags, AttendancePercentage: att,
		}
	}
	return []models.Staff{
		entry("10203040", "GOMEZ PEREZ, MARIA ELENA", "Secretaría Académica", "Secretaria", models.StaffCategoryAdministrative, models.UserStatusActive, "Norte", "2025-07-28T10:00:00Z", []string{"admin-principal"}, 98),
		entry("20304050", "RAMIREZ SOTO, JUAN CARLOS", "Administración", "Jefe de Administración", models.StaffCategoryAdministrative, models.UserStatusActive, "Sur", "2025-07-27T11:30:00Z", []string{}, 100),
		entry("07673115", "CORDOVA MONTERO ANGEL ROSARIO", "PIP", "Docente_Secundaria", models.StaffCategorySupport, models.UserStatusActive, "Norte", "2025-07-29T08:00:00Z", []string{"tecnologia"}, 95),
		entry("08046665", "VEGA MARÓN GREGORIO", "PIP", "Docente_Secundaria", models.StaffCategorySupport, models.UserStatusInactive, "Norte", "2025-05-10T14:00:00Z", []string{"tecnologia"}, 90),
		entry("45480502", "DIAZ ROMERO MIRELLA MARTHA", "PSICÓLOGO DOCENTE", "Docente_Secundaria", models.StaffCategorySupport, models.UserStatusActive, "Sur", "2025-07-26T15:20:00Z", []string{"bienestar"}, 99),
		entry("10106071", "ZUÑIGA CUYUBAMBA MARCO ANTONIO", "PSICÓLOGO JEC", "Docente_Secundaria", models.StaffCategorySupport, models.UserStatusActive, "Norte", "2025-07-28T12:10:00Z", []string{"bienestar"}, 100),
		entry("71829882", "FLORES RIVERA JHOSSEL ANDERSON", "PROFESOR DE BANDA", "Docente_Secundaria", models.StaffCategorySupport, models.UserStatusActive, "Norte", "2025-07-29T09:45:00Z", []string{"extracurricular"}, 97),
	}
}

// Staff returns the fixed administrative and support staff followed by
// generated teachers, n in total, with unique DNIs.
func Staff(rng *rand.Rand, academicYear, n int) []models.Staff {
	list := fixedStaff()
	if n < len(list) {
		return list[:n]
	}
	used := make(map[string]struct{}, n)
	for _, s := range list {
		used[s.DNI] = struct{}{}
	}
	for len(list) < n {
		dni := strconv.Itoa(10000000 + rng.Intn(90000000))
		if _, dup := used[dni]; dup {
			continue
		}
		used[dni] = struct{}{}

		first := staffFemaleNames
		if rng.Float64() > 0.5 {
			first = staffMaleNames
		}
		name := pick(rng, staffLastNames) + " " + pick(rng, staffLastNames) + ", " + pick(rng, first)
		area := pick(rng, teachingAreas)
		role := "Docente_Secundaria"
		switch area {
		case "Inicial":
			role = "Docente_Inicial"
		case "Primaria":
			role = "Docente_Primaria"
		}
		status := models.UserStatusActive
		if rng.Float64() <= 0.05 {
			status = models.UserStatusInactive
		}
		progress := 60 + rng.Intn(41)
		list = append(list, models.Staff{
			DNI:                  dni,
			Name:                 name,
			Area:                 area,
			Role:                 role,
			Category:             models.StaffCategoryTeacher,
			Status:               status,
			Sede:                 sede(rng),
			LastLogin:            maybeLogin(rng, academicYear, 0),
			AvatarURL:            avatarURL(dni, 100),
			Tags:                 []string{},
			NotesProgress:        &progress,
			AttendancePercentage: 90 + rng.Intn(11),
		})
	}
	return list
}
