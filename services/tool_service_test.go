package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/emlakkit/models"
)

func TestToolService_List(t *testing.T) {
	svc := NewToolService()

	tools := svc.List()
	require.NotEmpty(t, tools)

	// Slug'lar unique olmalı — URL anahtarıdır
	seen := make(map[string]bool)
	for _, tool := range tools {
		assert.NotEmpty(t, tool.Slug)
		assert.NotEmpty(t, tool.Name)
		assert.False(t, seen[tool.Slug], "duplicate slug %s", tool.Slug)
		seen[tool.Slug] = true
	}
}

func TestToolService_ListByCategory(t *testing.T) {
	svc := NewToolService()

	calculators := svc.ListByCategory(models.CategoryCalculator)
	generators := svc.ListByCategory(models.CategoryGenerator)

	require.NotEmpty(t, calculators)
	require.NotEmpty(t, generators)
	assert.Len(t, svc.List(), len(calculators)+len(generators))

	for _, tool := range calculators {
		assert.Equal(t, models.CategoryCalculator, tool.Category)
	}

	// Bilinmeyen kategori hata değil boş liste döner
	assert.Empty(t, svc.ListByCategory("unknown"))
}
