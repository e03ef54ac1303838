package persistence

import (
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianmuthui/portfolio-api/internal/domain/experience"
	"github.com/brianmuthui/portfolio-api/internal/domain/project"
	"github.com/brianmuthui/portfolio-api/internal/domain/skill"
	"github.com/brianmuthui/portfolio-api/pkg/apperror"
)

type errRow struct{ err error }

func (r errRow) Scan(dest ...any) error { return r.err }

// The scan helpers classify failures exactly once; Insert/Update pass their
// errors through unchanged. A driver failure must surface as a single
// AppError wrapping the raw cause, never a nested taxonomy chain.
func TestScanHelpers_ClassifyFailuresOnce(t *testing.T) {
	raw := errors.New("broken connection")

	cases := []struct {
		name     string
		scan     func(row pgx.Row) error
		notFound error
	}{
		{
			name: "experience",
			scan: func(row pgx.Row) error {
				_, err := scanExperience(row)
				return err
			},
			notFound: experience.ErrNotFound,
		},
		{
			name: "project",
			scan: func(row pgx.Row) error {
				_, err := scanProject(row)
				return err
			},
			notFound: project.ErrNotFound,
		},
		{
			name: "skill",
			scan: func(row pgx.Row) error {
				_, err := scanSkillCategory(row)
				return err
			},
			notFound: skill.ErrNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.scan(errRow{pgx.ErrNoRows})
			assert.ErrorIs(t, err, tc.notFound)

			err = tc.scan(errRow{raw})
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.ErrorIs(t, appErr.Err, raw)

			var nested *apperror.AppError
			assert.False(t, errors.As(appErr.Err, &nested), "cause must be the raw driver error")
			assert.Equal(t, 1, strings.Count(err.Error(), "Cause:"))
		})
	}
}
