// Package store holds the in-memory roster. State values are immutable:
// every reducer returns a new State and leaves its input untouched.
package store

import (
	"errors"
	"fmt"
	"sort"

	"github.com/noah-isme/matricula-dashboard-api/internal/models"
)

var (
	ErrStudentNotFound   = errors.New("student not found")
	ErrEventNotFound     = errors.New("calendar event not found")
	ErrInvalidTransition = errors.New("enrollment status does not allow this action")
	ErrInvalidPerson     = errors.New("invalid person")
)

// State is the whole roster at one point in time.
type State struct {
	Students []models.Student
	Staff    []models.Staff
	Parents  []models.ParentTutor
	Events   []models.CalendarEvent
	Activity []models.ActivityLog
}

// AllUsers flattens the roster into the directory order: students, staff, parents.
func (s State) AllUsers() []models.Person {
	people := make([]models.Person, 0, len(s.Students)+len(s.Staff)+len(s.Parents))
	for _, st := range s.Students {
		people = append(people, models.StudentPerson(st))
	}
	for _, st := range s.Staff {
		people = append(people, models.StaffPerson(st))
	}
	for _, p := range s.Parents {
		people = append(people, models.ParentPerson(p))
	}
	return people
}

// FindStudent looks a student up by document number.
func (s State) FindStudent(dni string) (models.Student, bool) {
	for _, st := range s.Students {
		if st.DocumentNumber == dni {
			return st, true
		}
	}
	return models.Student{}, false
}

// SetAllUsers replaces the three collections by partitioning people on their kind.
func SetAllUsers(s State, people []models.Person) (State, error) {
	students := make([]models.Student, 0, len(people))
	staff := make([]models.Staff, 0)
	parents := make([]models.ParentTutor, 0)
	for i, p := range people {
		if err := p.Validate(); err != nil {
			return s, fmt.Errorf("%w at index %d: %v", ErrInvalidPerson, i, err)
		}
		switch p.Kind {
		case models.PersonKindStudent:
			students = append(students, *p.Student)
		case models.PersonKindStaff:
			staff = append(staff, *p.Staff)
		case models.PersonKindParent:
			parents = append(parents, *p.Parent)
		}
	}
	s.Students = students
	s.Staff = staff
	s.Parents = parents
	return s, nil
}

// RemoveUsers drops every person whose document number is listed and
// reports how many were removed.
func RemoveUsers(s State, dnis []string) (State, int) {
	drop := make(map[string]struct{}, len(dnis))
	for _, d := range dnis {
		drop[d] = struct{}{}
	}
	kept := make([]models.Person, 0, len(s.Students)+len(s.Staff)+len(s.Parents))
	removed := 0
	for _, p := range s.AllUsers() {
		if _, ok := drop[p.DocumentNumber()]; ok {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	if removed == 0 {
		return s, 0
	}
	next, _ := SetAllUsers(s, kept)
	return next, removed
}

// UpsertStudent replaces the student with the same document number or appends it.
func UpsertStudent(s State, student models.Student) State {
	students := make([]models.Student, 0, len(s.Students)+1)
	replaced := false
	for _, st := range s.Students {
		if st.DocumentNumber == student.DocumentNumber {
			students = append(students, student)
			replaced = true
			continue
		}
		students = append(students, st)
	}
	if !replaced {
		students = append(students, student)
	}
	s.Students = students
	return s
}

// UpdateStudent applies fn to one student.
func UpdateStudent(s State, dni string, fn func(models.Student) (models.Student, error)) (State, error) {
	current, ok := s.FindStudent(dni)
	if !ok {
		return s, ErrStudentNotFound
	}
	updated, err := fn(current)
	if err != nil {
		return s, err
	}
	return UpsertStudent(s, updated), nil
}

func isActiveEnrollment(status models.EnrollmentStatus) bool {
	switch status {
	case models.EnrollmentStatusEnrolled, models.EnrollmentStatusPreEnrolled, models.EnrollmentStatusPending:
		return true
	}
	return false
}

// Transfer marks an active student as transferred out.
func Transfer(s State, dni string) (State, error) {
	return UpdateStudent(s, dni, func(st models.Student) (models.Student, error) {
		if !isActiveEnrollment(st.EnrollmentStatus) {
			return st, ErrInvalidTransition
		}
		st.EnrollmentStatus = models.EnrollmentStatusTransferred
		st.EnrollmentType = models.EnrollmentTypeTransfer
		st.Status = models.UserStatusForEnrollment(st.EnrollmentStatus)
		return st, nil
	})
}

// Withdraw marks an active student as withdrawn.
func Withdraw(s State, dni string) (State, error) {
	return UpdateStudent(s, dni, func(st models.Student) (models.Student, error) {
		if !isActiveEnrollment(st.EnrollmentStatus) {
			return st, ErrInvalidTransition
		}
		st.EnrollmentStatus = models.EnrollmentStatusWithdrawn
		st.Status = models.UserStatusForEnrollment(st.EnrollmentStatus)
		return st, nil
	})
}

// ChangeSection moves an active student to another grade, section or shift.
// The placement must already be validated against the grade catalog.
func ChangeSection(s State, dni string, change models.SectionChange) (State, error) {
	return UpdateStudent(s, dni, func(st models.Student) (models.Student, error) {
		if !isActiveEnrollment(st.EnrollmentStatus) {
			return st, ErrInvalidTransition
		}
		if change.Grade != "" {
			st.Grade = change.Grade
		}
		st.Section = change.Section
		if change.Shift != "" {
			st.Shift = change.Shift
		}
		return st, nil
	})
}

// AssignVacancy enrolls a pre-enrolled or pending student.
func AssignVacancy(s State, dni string) (State, error) {
	return UpdateStudent(s, dni, func(st models.Student) (models.Student, error) {
		if st.EnrollmentStatus != models.EnrollmentStatusPreEnrolled && st.EnrollmentStatus != models.EnrollmentStatusPending {
			return st, ErrInvalidTransition
		}
		st.EnrollmentStatus = models.EnrollmentStatusEnrolled
		st.Status = models.UserStatusForEnrollment(st.EnrollmentStatus)
		return st, nil
	})
}

// AddEvent inserts an event keeping the list ordered by date. Events on
// the same date keep their insertion order.
func AddEvent(s State, event models.CalendarEvent) State {
	events := make([]models.CalendarEvent, 0, len(s.Events)+1)
	events = append(events, s.Events...)
	idx := sort.Search(len(events), func(i int) bool { return events[i].Date > event.Date })
	events = append(events, models.CalendarEvent{})
	copy(events[idx+1:], events[idx:])
	events[idx] = event
	s.Events = events
	return s
}

// RemoveEvent deletes an event by id.
func RemoveEvent(s State, id string) (State, error) {
	events := make([]models.CalendarEvent, 0, len(s.Events))
	found := false
	for _, e := range s.Events {
		if e.ID == id {
			found = true
			continue
		}
		events = append(events, e)
	}
	if !found {
		return s, ErrEventNotFound
	}
	s.Events = events
	return s, nil
}

// AppendActivity records an entry, keeping at most max of the newest.
func AppendActivity(s State, entry models.ActivityLog, max int) State {
	logs := make([]models.ActivityLog, 0, len(s.Activity)+1)
	logs = append(logs, s.Activity...)
	logs = append(logs, entry)
	if max > 0 && len(logs) > max {
		logs = logs[len(logs)-max:]
	}
	s.Activity = logs
	return s
}
