package workspaces_testing

import (
	"testing"

	workspaces_models "teamspace-backend/internal/features/workspaces/models"

	"github.com/stretchr/testify/assert"
)

func Test_Slugify_ProducesValidSlugs(t *testing.T) {
	names := []string{
		"Members test",
		"Team -- Alpha!!",
		"  padded   name  ",
		"C++ & Go (v2)",
		"!!!",
	}

	for _, name := range names {
		slug := slugify(name)
		assert.True(t, workspaces_models.IsValidSlug(slug), "name %q produced slug %q", name, slug)
	}
}
