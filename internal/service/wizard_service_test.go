package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/matricula-dashboard-api/internal/dto"
	"github.com/noah-isme/matricula-dashboard-api/internal/models"
	"github.com/noah-isme/matricula-dashboard-api/internal/store"
	"github.com/noah-isme/matricula-dashboard-api/internal/wizard"
	appErrors "github.com/noah-isme/matricula-dashboard-api/pkg/errors"
)

func newWizardService() (*WizardService, *store.Store) {
	st := fixtureStore()
	svc := NewWizardService(st, fixtureCatalog, nil, NewMetricsService(), zap.NewNop(), WizardConfig{AcademicYear: 2025})
	return svc, st
}

func secondaryPlacement() dto.PlacementRequest {
	return dto.PlacementRequest{
		Level:     models.LevelSecondary,
		Grade:     "1° Año",
		Section:   "B",
		Shift:     models.ShiftMorning,
		Type:      models.EnrollmentTypeNew,
		Condition: models.EnrollmentConditionPromoted,
	}
}

func TestWizardEnrollsNewStudent(t *testing.T) {
	svc, st := newWizardService()
	ctx := context.Background()

	session := svc.Start(ctx)
	assert.Equal(t, wizard.StepIdentification, session.Step)

	_, err := svc.Next(ctx, session.ID)
	assert.ErrorIs(t, err, appErrors.ErrValidation, "identification required")

	session, err = svc.SetIdentification(ctx, session.ID, dto.IdentificationRequest{
		Query:            "71234567",
		PaternalLastName: "huaman",
		MaternalLastName: "torres",
		Names:            "valeria",
		Gender:           "Mujer",
		BirthDate:        "2013-02-14",
	})
	require.NoError(t, err)
	require.NotNil(t, session.Identification)
	assert.False(t, session.Identification.Existing)

	_, err = svc.SetPlacement(ctx, session.ID, secondaryPlacement())
	assert.ErrorIs(t, err, appErrors.ErrInvalidTransition, "placement belongs to step two")

	session, err = svc.Next(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepLocationCondition, session.Step)

	session, err = svc.SetPlacement(ctx, session.ID, secondaryPlacement())
	require.NoError(t, err)

	session, err = svc.Next(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepConfirmation, session.Step)
	require.NotNil(t, session.Summary)
	assert.Equal(t, "HUAMAN TORRES, VALERIA", session.Summary.Student)
	assert.Nil(t, session.Documents)

	session, err = svc.Finish(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepSuccess, session.Step)
	require.NotNil(t, session.Documents)
	assert.Equal(t, "/api/v1/documents/students/71234567/certificate", session.Documents.Certificate)

	enrolled, ok := st.Snapshot().FindStudent("71234567")
	require.True(t, ok)
	assert.Equal(t, "S202571234567", enrolled.StudentCode)
	assert.Equal(t, models.EnrollmentStatusEnrolled, enrolled.EnrollmentStatus)
	assert.Equal(t, models.UserStatusActive, enrolled.Status)
	assert.Equal(t, "B", enrolled.Section)
	assert.Len(t, st.Snapshot().Students, 6)

	_, err = svc.Back(ctx, session.ID)
	assert.ErrorIs(t, err, appErrors.ErrInvalidTransition, "success is terminal")
	_, err = svc.Finish(ctx, session.ID)
	assert.ErrorIs(t, err, appErrors.ErrInvalidTransition)
}

func TestWizardReenrollsExistingStudentByCode(t *testing.T) {
	svc, st := newWizardService()
	ctx := context.Background()

	session := svc.Start(ctx)
	session, err := svc.SetIdentification(ctx, session.ID, dto.IdentificationRequest{Query: "s202570000004"})
	require.NoError(t, err)
	assert.True(t, session.Identification.Existing)
	assert.Equal(t, "70000004", session.Identification.DocumentNumber)

	_, err = svc.Next(ctx, session.ID)
	require.NoError(t, err)
	_, err = svc.SetPlacement(ctx, session.ID, secondaryPlacement())
	require.NoError(t, err)
	_, err = svc.Next(ctx, session.ID)
	require.NoError(t, err)
	_, err = svc.Finish(ctx, session.ID)
	require.NoError(t, err)

	assert.Len(t, st.Snapshot().Students, 5)
	student, _ := st.Snapshot().FindStudent("70000004")
	assert.Equal(t, models.EnrollmentStatusEnrolled, student.EnrollmentStatus)
	assert.Equal(t, "1° Año", student.Grade)
	assert.Equal(t, "MUÑOZ DIAZ, PEDRO", student.FullName)
}

func TestWizardIdentificationErrors(t *testing.T) {
	svc, _ := newWizardService()
	ctx := context.Background()
	session := svc.Start(ctx)

	_, err := svc.SetIdentification(ctx, session.ID, dto.IdentificationRequest{Query: "70000001"})
	assert.ErrorIs(t, err, appErrors.ErrConflict, "already enrolled")

	_, err = svc.SetIdentification(ctx, session.ID, dto.IdentificationRequest{Query: "S202599999999"})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	_, err = svc.SetIdentification(ctx, session.ID, dto.IdentificationRequest{Query: "1234"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.SetIdentification(ctx, session.ID, dto.IdentificationRequest{Query: "71234567"})
	assert.ErrorIs(t, err, appErrors.ErrValidation, "new students need personal data")

	_, err = svc.SetIdentification(ctx, "missing", dto.IdentificationRequest{Query: "70000002"})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestWizardPlacementValidatesCatalog(t *testing.T) {
	svc, _ := newWizardService()
	ctx := context.Background()
	session := svc.Start(ctx)
	_, err := svc.SetIdentification(ctx, session.ID, dto.IdentificationRequest{Query: "70000002"})
	require.NoError(t, err)
	_, err = svc.Next(ctx, session.ID)
	require.NoError(t, err)

	wrongLevel := secondaryPlacement()
	wrongLevel.Level = models.LevelPrimary
	_, err = svc.SetPlacement(ctx, session.ID, wrongLevel)
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	wrongSection := secondaryPlacement()
	wrongSection.Section = "Z"
	_, err = svc.SetPlacement(ctx, session.ID, wrongSection)
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	badShift := secondaryPlacement()
	badShift.Shift = "Noche"
	_, err = svc.SetPlacement(ctx, session.ID, badShift)
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Next(ctx, session.ID)
	assert.ErrorIs(t, err, appErrors.ErrValidation, "placement required")
}

func TestWizardBackKeepsPayloads(t *testing.T) {
	svc, _ := newWizardService()
	ctx := context.Background()
	session := svc.Start(ctx)

	_, err := svc.Back(ctx, session.ID)
	assert.ErrorIs(t, err, appErrors.ErrInvalidTransition)

	_, err = svc.SetIdentification(ctx, session.ID, dto.IdentificationRequest{Query: "70000003"})
	require.NoError(t, err)
	_, err = svc.Next(ctx, session.ID)
	require.NoError(t, err)
	_, err = svc.SetPlacement(ctx, session.ID, secondaryPlacement())
	require.NoError(t, err)
	_, err = svc.Next(ctx, session.ID)
	require.NoError(t, err)

	back, err := svc.Back(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepLocationCondition, back.Step)
	assert.NotNil(t, back.Placement)
	assert.NotNil(t, back.Identification)
	assert.Nil(t, back.Summary)

	_, err = svc.Finish(ctx, session.ID)
	assert.ErrorIs(t, err, appErrors.ErrInvalidTransition, "finish only from confirmation")
}
