package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bursarhq/bursar/internal/student"
)

const statement = `Transaction Date,Narrative,Debit,Credit
05/01/2026,MPESA SCH FEES ADM-1042,,"25,000.00"
07/01/2026,UNKNOWN SENDER,,"5,000.00"
`

func TestReview_AttachesSuggestions(t *testing.T) {
	ctrl := gomock.NewController(t)
	matcher := NewMockMatcher(ctrl)
	svc := NewService(matcher)

	st := &student.Student{ID: uuid.New(), AdmissionNumber: "ADM-1042"}

	matcher.EXPECT().Suggest(gomock.Any(), "MPESA SCH FEES ADM-1042").Return(st, nil)
	matcher.EXPECT().Suggest(gomock.Any(), "UNKNOWN SENDER").Return(nil, nil)

	rows, err := svc.Review(context.Background(), strings.NewReader(statement))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].Student)
	assert.Equal(t, st.ID, rows[0].Student.ID)
	assert.Equal(t, int64(2_500_000), rows[0].Credit.Amount)

	assert.Nil(t, rows[1].Student)
}

func TestReview_ParseFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	matcher := NewMockMatcher(ctrl)
	svc := NewService(matcher)

	_, err := svc.Review(context.Background(), strings.NewReader("garbage"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing statement")
}
