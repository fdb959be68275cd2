package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fleetledger/internal/core/entity"
	"fleetledger/internal/core/id"
)

type mockCatalog struct {
	entity.Catalog
	Phone *string `db:"phone" json:"phone"`
	Email *string `db:"email" json:"email"`
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[mockCatalog]()

	expectedCols := []string{
		"id", "company_id", "version", "created_at", "updated_at",
		"name", "deletion_mark", "phone", "email",
	}

	assert.Len(t, cols, len(expectedCols))
	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}
}

func TestExtractDBColumns_Cached(t *testing.T) {
	first := ExtractDBColumns[mockCatalog]()
	second := ExtractDBColumns[mockCatalog]()

	assert.Equal(t, first, second)
}

func TestStructToMap(t *testing.T) {
	phone := "+1 555 0100"
	cat := mockCatalog{
		Catalog: entity.Catalog{
			Base: entity.Base{
				ID:        id.New(),
				CompanyID: id.New(),
				Version:   5,
				CreatedAt: time.Now().UTC(),
				UpdatedAt: time.Now().UTC(),
			},
			Name:         "Test Name",
			DeletionMark: true,
		},
		Phone: &phone,
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, cat.CompanyID, m["company_id"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, "Test Name", m["name"])
	assert.Equal(t, &phone, m["phone"])
}
