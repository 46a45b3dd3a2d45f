package matching

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bursarhq/bursar/internal/student"
)

func TestSuggest_AdmissionNumberInNarrative(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	students := NewMockStudentFinder(ctrl)
	svc := NewService(repo, students)

	st := &student.Student{ID: uuid.New(), AdmissionNumber: "ADM-1042", FullName: "J Mwangi"}

	students.EXPECT().FindByAdmissionNumber(gomock.Any(), "ADM-1042").Return(st, nil)

	got, err := svc.Suggest(context.Background(), "MPESA SCH FEES adm/1042 J MWANGI")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, st.ID, got.ID)
}

func TestSuggest_LearnedPattern(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	students := NewMockStudentFinder(ctrl)
	svc := NewService(repo, students)

	st := &student.Student{ID: uuid.New(), AdmissionNumber: "ADM-2001"}
	narrative := "STANDING ORDER MWANGI FAMILY TRUST"

	repo.EXPECT().FindMatch(gomock.Any(), narrative).Return("ADM-2001", nil)
	students.EXPECT().FindByAdmissionNumber(gomock.Any(), "ADM-2001").Return(st, nil)

	got, err := svc.Suggest(context.Background(), narrative)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, st.ID, got.ID)
}

func TestSuggest_NoMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	students := NewMockStudentFinder(ctrl)
	svc := NewService(repo, students)

	repo.EXPECT().FindMatch(gomock.Any(), "UNKNOWN DEPOSIT").Return("", nil)

	got, err := svc.Suggest(context.Background(), "UNKNOWN DEPOSIT")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSuggest_StaleMappingIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	students := NewMockStudentFinder(ctrl)
	svc := NewService(repo, students)

	repo.EXPECT().FindMatch(gomock.Any(), "OLD PAYER REF").Return("ADM-0009", nil)
	students.EXPECT().FindByAdmissionNumber(gomock.Any(), "ADM-0009").Return(nil, student.ErrNotFound)

	got, err := svc.Suggest(context.Background(), "OLD PAYER REF")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLearn_VerifiesStudentExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	students := NewMockStudentFinder(ctrl)
	svc := NewService(repo, students)

	students.EXPECT().FindByAdmissionNumber(gomock.Any(), "ADM-3003").Return(nil, student.ErrNotFound)

	err := svc.Learn(context.Background(), "MWANGI TRUST", "ADM-3003")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no student")
}

func TestLearn_StoresMapping(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	students := NewMockStudentFinder(ctrl)
	svc := NewService(repo, students)

	students.EXPECT().FindByAdmissionNumber(gomock.Any(), "ADM-3003").
		Return(&student.Student{AdmissionNumber: "ADM-3003"}, nil)
	repo.EXPECT().CreateMapping(gomock.Any(), "MWANGI TRUST", "ADM-3003").Return(nil)

	require.NoError(t, svc.Learn(context.Background(), "MWANGI TRUST", "ADM-3003"))
}

func TestLearn_RejectsEmptyPattern(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewService(NewMockRepository(ctrl), NewMockStudentFinder(ctrl))

	require.Error(t, svc.Learn(context.Background(), "   ", "ADM-3003"))
}
