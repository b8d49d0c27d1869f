package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/matricula-dashboard-api/internal/models"
)

func sampleState() State {
	return State{
		Students: []models.Student{
			{DocumentNumber: "70000001", FullName: "QUISPE ROJAS, ANA", EnrollmentStatus: models.EnrollmentStatusEnrolled, Status: models.UserStatusActive},
			{DocumentNumber: "70000002", FullName: "FLORES DIAZ, LUIS", EnrollmentStatus: models.EnrollmentStatusPending, Status: models.UserStatusPending},
			{DocumentNumber: "70000003", FullName: "TORRES SOTO, SARA", EnrollmentStatus: models.EnrollmentStatusWithdrawn, Status: models.UserStatusInactive},
		},
		Staff:   []models.Staff{{DNI: "10203040", Name: "GOMEZ PEREZ, MARIA ELENA", Category: models.StaffCategoryAdministrative}},
		Parents: []models.ParentTutor{{DNI: "40000001", Name: "QUISPE LOPEZ, JUAN", Relation: models.ParentRelationFather}},
		Events: []models.CalendarEvent{
			{ID: "a", Title: "Inicio", Date: "2025-03-03"},
			{ID: "b", Title: "Feriado", Date: "2025-05-01"},
		},
	}
}

func TestSetAllUsersPartitionsByKind(t *testing.T) {
	s := sampleState()
	people := s.AllUsers()
	require.Len(t, people, 5)

	next, err := SetAllUsers(State{}, people)
	require.NoError(t, err)
	assert.Len(t, next.Students, 3)
	assert.Len(t, next.Staff, 1)
	assert.Len(t, next.Parents, 1)

	_, err = SetAllUsers(State{}, []models.Person{{Kind: models.PersonKindStudent}})
	assert.ErrorIs(t, err, ErrInvalidPerson)
}

func TestRemoveUsersAcrossKinds(t *testing.T) {
	s := sampleState()
	next, removed := RemoveUsers(s, []string{"70000001", "10203040", "99999999"})

	assert.Equal(t, 2, removed)
	assert.Len(t, next.Students, 2)
	assert.Empty(t, next.Staff)
	assert.Len(t, next.Parents, 1)
	assert.Len(t, s.Students, 3, "input state must not change")
}

func TestRowActionTransitions(t *testing.T) {
	s := sampleState()

	next, err := Transfer(s, "70000001")
	require.NoError(t, err)
	st, _ := next.FindStudent("70000001")
	assert.Equal(t, models.EnrollmentStatusTransferred, st.EnrollmentStatus)
	assert.Equal(t, models.EnrollmentTypeTransfer, st.EnrollmentType)
	assert.Equal(t, models.UserStatusInactive, st.Status)

	original, _ := s.FindStudent("70000001")
	assert.Equal(t, models.EnrollmentStatusEnrolled, original.EnrollmentStatus)

	_, err = Withdraw(s, "70000003")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	next, err = AssignVacancy(s, "70000002")
	require.NoError(t, err)
	st, _ = next.FindStudent("70000002")
	assert.Equal(t, models.EnrollmentStatusEnrolled, st.EnrollmentStatus)
	assert.Equal(t, models.UserStatusActive, st.Status)

	_, err = AssignVacancy(s, "70000001")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = Transfer(s, "00000000")
	assert.ErrorIs(t, err, ErrStudentNotFound)

	next, err = ChangeSection(s, "70000001", models.SectionChange{Grade: "2° Año", Section: "B", Shift: models.ShiftAfternoon})
	require.NoError(t, err)
	st, _ = next.FindStudent("70000001")
	assert.Equal(t, "2° Año", st.Grade)
	assert.Equal(t, "B", st.Section)
	assert.Equal(t, models.ShiftAfternoon, st.Shift)
}

func TestAddEventKeepsDateOrder(t *testing.T) {
	s := sampleState()
	next := AddEvent(s, models.CalendarEvent{ID: "c", Title: "Examen", Date: "2025-04-10"})
	next = AddEvent(next, models.CalendarEvent{ID: "d", Title: "Otro", Date: "2025-03-03"})
	next = AddEvent(next, models.CalendarEvent{ID: "e", Title: "Navidad", Date: "2025-12-25"})

	ids := make([]string, 0, len(next.Events))
	for _, e := range next.Events {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"a", "d", "c", "b", "e"}, ids)
	assert.Len(t, s.Events, 2)

	next, err := RemoveEvent(next, "c")
	require.NoError(t, err)
	assert.Len(t, next.Events, 4)
	_, err = RemoveEvent(next, "c")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestAppendActivityBounded(t *testing.T) {
	s := State{}
	for i := 0; i < 5; i++ {
		s = AppendActivity(s, models.ActivityLog{ID: string(rune('a' + i))}, 3)
	}
	require.Len(t, s.Activity, 3)
	assert.Equal(t, "c", s.Activity[0].ID)
	assert.Equal(t, "e", s.Activity[2].ID)
}

func TestStoreUpdateConcurrent(t *testing.T) {
	st := New(State{})
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = st.Update(func(s State) (State, error) {
				return AppendActivity(s, models.ActivityLog{}, 0), nil
			})
			_ = st.Snapshot()
		}()
	}
	wg.Wait()
	assert.Len(t, st.Snapshot().Activity, 50)
}

func TestStoreUpdateErrorKeepsState(t *testing.T) {
	st := New(sampleState())
	_, err := st.Update(func(s State) (State, error) { return Withdraw(s, "70000003") })
	assert.ErrorIs(t, err, ErrInvalidTransition)
	s, _ := st.Snapshot().FindStudent("70000003")
	assert.Equal(t, models.EnrollmentStatusWithdrawn, s.EnrollmentStatus)
}
