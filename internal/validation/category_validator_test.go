package validation

import (
	"strings"
	"testing"

	"taskflow/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryValidator_ValidateName(t *testing.T) {
	tests := []struct {
		name         string
		categoryName string
		wantErr      bool
	}{
		{
			name:         "should accept a normal name",
			categoryName: "Errands",
		},
		{
			name:         "should reject an empty name",
			categoryName: "",
			wantErr:      true,
		},
		{
			name:         "should reject a whitespace-only name",
			categoryName: "  ",
			wantErr:      true,
		},
		{
			name:         "should reject an overly long name",
			categoryName: strings.Repeat("c", 150),
			wantErr:      true,
		},
	}

	validator := NewCategoryValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateName(tt.categoryName)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCategoryValidator_ValidateDeletable(t *testing.T) {
	validator := NewCategoryValidator()

	t.Run("should allow deleting a user-created category", func(t *testing.T) {
		err := validator.ValidateDeletable(domain.Category{ID: "c1", Name: "Errands"})
		assert.NoError(t, err)
	})

	t.Run("should block deleting a default category", func(t *testing.T) {
		err := validator.ValidateDeletable(domain.Category{ID: "c2", Name: "Work", IsDefault: true})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "default categories cannot be deleted")
	})
}
