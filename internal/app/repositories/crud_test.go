package repositories

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/apperrors"
)

func TestTranslateWriteNamesReferenceField(t *testing.T) {
	tests := []struct {
		name       string
		translate  func(error) error
		constraint string
		field      string
	}{
		{"patrol log route", patrolLogTable.translateWrite, "patrol_logs_route_id_fkey", "route_id"},
		{"activity assignee", activityTable.translateWrite, "activities_assigned_user_id_fkey", "assigned_user_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: "23503", ConstraintName: tt.constraint}

			err := tt.translate(fmt.Errorf("insert: %w", pgErr))

			require.ErrorIs(t, err, apperrors.ErrInvalidReference)
			var customErr *apperrors.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, tt.field, customErr.Details["field"])
		})
	}
}

func TestTranslateWriteDuplicate(t *testing.T) {
	err := speciesTable.translateWrite(&pgconn.PgError{Code: "23505", ConstraintName: "species_scientific_name_key"})

	assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)
	assert.Equal(t, "species with this scientific_name already exists", err.Error())
}
