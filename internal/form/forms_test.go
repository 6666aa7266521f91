package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internhub/internal/portal"
)

func TestProgramFormInput(t *testing.T) {
	f := ProgramFormFrom(sampleProgram())
	f.Deadline = "2026-08-15"

	in, err := f.Input()
	require.NoError(t, err)
	assert.Equal(t, 4, in.Quota)
	assert.Equal(t, "2026-08-15", in.RegistrationDeadline.Format(DateLayout))
	assert.Equal(t, portal.ProgramOpen, in.Status)
}

func TestProgramFormInputReportsBadValues(t *testing.T) {
	f := ProgramFormFrom(sampleProgram())
	f.Quota = "many"
	f.EndDate = "2026-01-01"
	f.Status = "archived"

	_, err := f.Input()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Invalid, "quota")
	assert.Contains(t, verr.Invalid, "end_date")
	assert.Contains(t, verr.Invalid, "status")
}

func TestReviewFeedbackRequiredOnRejection(t *testing.T) {
	assert.NoError(t, Validate(ReviewForm{Status: "accepted"}))

	err := Validate(ReviewForm{Status: "rejected"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"feedback"}, verr.Missing)

	_, err = ReviewForm{Status: "maybe"}.Input()
	assert.Error(t, err)
}

func TestGradeFormRequiresGradeWhenFinished(t *testing.T) {
	assert.NoError(t, Validate(GradeForm{Status: "not_started"}))

	err := Validate(GradeForm{Status: "finished"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"grade", "feedback"}, verr.Missing)

	in, err := GradeForm{Grade: " A ", Feedback: "solid", Status: "finished"}.Input()
	require.NoError(t, err)
	assert.Equal(t, "A", in.Grade)
}

func TestApplyAndCertificateForms(t *testing.T) {
	err := Validate(ApplyForm{ProgramID: "p1"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"cv_url"}, verr.Missing)

	in := ApplyForm{ProgramID: " p1 ", CVURL: "https://files.test/cv.pdf"}.Input()
	assert.Equal(t, "p1", in.ProgramID)

	assert.Error(t, Validate(CertificateForm{}))
	assert.NoError(t, Validate(CertificateForm{AssessmentID: "s1", URL: "https://files.test/c.pdf"}))
}

func TestMentorFormEmail(t *testing.T) {
	_, err := MentorForm{Name: "x", Email: "nope"}.Input()
	assert.Error(t, err)
}
