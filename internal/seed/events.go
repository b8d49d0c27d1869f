package seed

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"github.com/noah-isme/matricula-dashboard-api/internal/models"
)

type eventTemplate struct {
	month    int
	day      int
	title    string
	category models.EventCategory
}

var academicEvents = []eventTemplate{
	{1, 1, "Año Nuevo", models.EventCategoryHoliday},
	{3, 3, "Inicio del año escolar", models.EventCategoryActivity},
	{3, 10, "Reunión de padres de familia", models.EventCategoryMeeting},
	{3, 28, "Entrega de nóminas de matrícula", models.EventCategoryUGEL},
	{4, 17, "Jueves Santo", models.EventCategoryHoliday},
	{4, 18, "Viernes Santo", models.EventCategoryHoliday},
	{4, 23, "Día del Idioma", models.EventCategoryCivic},
	{5, 1, "Día del Trabajo", models.EventCategoryHoliday},
	{5, 9, "Día de la Madre", models.EventCategoryActivity},
	{5, 12, "Exámenes del primer bimestre", models.EventCategoryExam},
	{5, 26, "Cierre del primer bimestre", models.EventCategoryManagement},
	{6, 7, "Día de la Bandera", models.EventCategoryCivic},
	{6, 20, "Día del Padre", models.EventCategoryActivity},
	{6, 29, "San Pedro y San Pablo", models.EventCategoryHoliday},
	{7, 14, "Exámenes del segundo bimestre", models.EventCategoryExam},
	{7, 23, "Día de la Fuerza Aérea", models.EventCategoryHoliday},
	{7, 25, "Actuación por Fiestas Patrias", models.EventCategoryCivic},
	{7, 28, "Fiestas Patrias", models.EventCategoryHoliday},
	{7, 29, "Fiestas Patrias", models.EventCategoryHoliday},
	{8, 6, "Batalla de Junín", models.EventCategoryHoliday},
	{8, 15, "Reporte de asistencia a la UGEL", models.EventCategoryUGEL},
	{8, 30, "Santa Rosa de Lima", models.EventCategoryHoliday},
	{9, 15, "Reunión de docentes por niveles", models.EventCategoryMeeting},
	{9, 23, "Día de la Juventud", models.EventCategoryActivity},
	{9, 29, "Exámenes del tercer bimestre", models.EventCategoryExam},
	{10, 8, "Combate de Angamos", models.EventCategoryHoliday},
	{10, 20, "Evaluación de desempeño docente", models.EventCategoryManagement},
	{11, 1, "Día de Todos los Santos", models.EventCategoryHoliday},
	{11, 28, "Simulacro nacional de sismo", models.EventCategoryUGEL},
	{12, 1, "Exámenes del cuarto bimestre", models.EventCategoryExam},
	{12, 8, "Inmaculada Concepción", models.EventCategoryHoliday},
	{12, 9, "Batalla de Ayacucho", models.EventCategoryHoliday},
	{12, 19, "Clausura del año escolar", models.EventCategoryActivity},
	{12, 25, "Navidad", models.EventCategoryHoliday},
}

// Events returns the academic calendar of the year sorted by date. IDs are
// drawn from rng so a fixed seed yields a reproducible calendar.
func Events(rng *rand.Rand, year int) []models.CalendarEvent {
	events := make([]models.CalendarEvent, 0, len(academicEvents))
	for _, tpl := range academicEvents {
		id, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			id = uuid.New()
		}
		events = append(events, models.CalendarEvent{
			ID:       id.String(),
			Title:    tpl.title,
			Category: tpl.category,
			Date:     fmt.Sprintf("%04d-%02d-%02d", year, tpl.month, tpl.day),
		})
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Date < events[j].Date })
	return events
}
