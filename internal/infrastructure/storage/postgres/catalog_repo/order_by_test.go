package catalog_repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetledger/internal/core/apperror"
)

func testRepo() *BaseCatalogRepo[any] {
	return NewBaseCatalogRepo[any](nil, "test_table", []string{"id", "name", "plate_number"}, func() any { return nil })
}

func TestParseOrderBy(t *testing.T) {
	repo := testRepo()

	tests := []struct {
		name    string
		orderBy string
		want    string
	}{
		{"empty defaults to name", "", "name ASC"},
		{"blank defaults to name", "   ", "name ASC"},
		{"plain field ascending", "plate_number", "plate_number ASC"},
		{"explicit ascending", "+name", "name ASC"},
		{"descending prefix", "-created_at", "created_at DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.parseOrderBy(tt.orderBy)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOrderBy_RejectsUnknownField(t *testing.T) {
	repo := testRepo()

	for _, orderBy := range []string{"secret_col", "-secret_col", "name; DROP TABLE test_table"} {
		_, err := repo.parseOrderBy(orderBy)
		require.Error(t, err, orderBy)
		assert.True(t, apperror.IsValidation(err), orderBy)
	}
}
