package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio.dev/internal/content"
	"folio.dev/internal/models"
)

func TestGetAllReturnsCopy(t *testing.T) {
	s := NewProjectService(content.Projects())

	all := s.GetAll()
	require.Len(t, all, s.Count())
	all[0].Title = "mutated"

	assert.Equal(t, "Softmaple, A Paper Typesetting Editor.", s.GetAll()[0].Title)
}

func TestGetViews(t *testing.T) {
	s := NewProjectService(content.Projects())

	views := s.GetViews()
	require.Len(t, views, 2)
	assert.Equal(t, "softmaple-a-paper-typesetting-editor", views[0].Slug)
	assert.Equal(t, "velokit-a-modern-fullstack-starter-kit", views[1].Slug)
	assert.Equal(t, "https://github.com/softmaple/softmaple", views[0].Href)
}

func TestGetBySlug(t *testing.T) {
	s := NewProjectService(content.Projects())

	p, err := s.GetBySlug("velokit-a-modern-fullstack-starter-kit")
	require.NoError(t, err)
	assert.Equal(t, "Velokit, A Modern Fullstack Starter Kit.", p.Title)
	assert.False(t, p.HasLink())
	assert.False(t, p.HasImage())
}

func TestGetBySlugDuplicateReturnsFirst(t *testing.T) {
	s := NewProjectService([]models.Project{
		{Title: "Same Name", Description: "first"},
		{Title: "same name!", Description: "second"},
	})

	p, err := s.GetBySlug("same-name")
	require.NoError(t, err)
	assert.Equal(t, "first", p.Description)
}

func TestGetBySlugNotFound(t *testing.T) {
	s := NewProjectService(content.Projects())

	p, err := s.GetBySlug("the-time-machine")
	assert.Nil(t, p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrProjectNotFound))
	assert.Contains(t, err.Error(), "the-time-machine")
}
