package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonValidate(t *testing.T) {
	assert.NoError(t, StudentPerson(Student{DocumentNumber: "1"}).Validate())
	assert.NoError(t, StaffPerson(Staff{DNI: "2"}).Validate())
	assert.NoError(t, ParentPerson(ParentTutor{DNI: "3"}).Validate())

	both := Person{Kind: PersonKindStudent, Student: &Student{}, Staff: &Staff{}}
	assert.Error(t, both.Validate())

	mismatch := Person{Kind: PersonKindStaff, Student: &Student{}}
	assert.Error(t, mismatch.Validate())

	unknown := Person{Kind: "robot", Student: &Student{}}
	assert.Error(t, unknown.Validate())
}

func TestPersonRoleAndLevel(t *testing.T) {
	student := StudentPerson(Student{Grade: "5° Año", Section: "B"})
	assert.Equal(t, UserRoleStudent, student.Role())
	assert.Equal(t, UserLevelSecondary, student.Level())
	assert.Equal(t, "5°B", student.GradeSection())

	initial := StudentPerson(Student{Grade: "3 AÑOS", Section: "Margaritas"})
	assert.Equal(t, UserLevelInitial, initial.Level())
	assert.Equal(t, "3 AÑOS Margaritas", initial.GradeSection())

	teacher := StaffPerson(Staff{Category: StaffCategoryTeacher, Role: "Docente_Primaria"})
	assert.Equal(t, UserRoleTeacher, teacher.Role())
	assert.Equal(t, "Docente-Primaria", teacher.RoleLabel())
	assert.Equal(t, UserLevelPrimary, teacher.Level())
	assert.Equal(t, "N/A", teacher.GradeSection())

	parent := ParentPerson(ParentTutor{Name: "ROJAS, ANA"})
	assert.Equal(t, UserRoleParent, parent.Role())
	assert.Equal(t, UserLevelNone, parent.Level())
}

func TestSortConfigToggle(t *testing.T) {
	var none *SortConfig
	first := none.Toggle("name")
	assert.Equal(t, SortConfig{Key: "name", Direction: SortAsc}, first)

	second := first.Toggle("name")
	assert.Equal(t, SortDesc, second.Direction)

	third := second.Toggle("name")
	assert.Equal(t, SortAsc, third.Direction)

	other := second.Toggle("status")
	assert.Equal(t, SortConfig{Key: "status", Direction: SortAsc}, other)
}

func TestKPIStatus(t *testing.T) {
	status, ok := KPIVacancies.Status()
	assert.True(t, ok)
	assert.Equal(t, EnrollmentStatusPending, status)

	_, ok = KPI("Otros").Status()
	assert.False(t, ok)
}

func TestAttendanceFilterResets(t *testing.T) {
	f := DefaultAttendanceFilters().WithLevel(LevelPrimary).WithGrade("1° Grado").WithSection("A")
	assert.Equal(t, "A", f.Section)

	f = f.WithGrade("2° Grado")
	assert.Equal(t, AllOption, f.Section)

	f = f.WithSection("B").WithLevel(LevelSecondary)
	assert.Equal(t, AllOption, f.Grade)
	assert.Equal(t, AllOption, f.Section)
}
