package database

import (
	"testing"

	"github.com/rpupo63/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillRepoFindAllOrdering(t *testing.T) {
	repo := NewSkillRepo(setupTestDB(t))

	for _, skill := range []*models.Skill{
		{Name: "Expert Technology", Category: "Mastered", ProficiencyLevel: 5},
		{Name: "New Technology", Category: "Learning", ProficiencyLevel: 1},
		{Name: "Docker", Category: "Learning", ProficiencyLevel: 3},
		{Name: "SQL", Category: "Mastered", ProficiencyLevel: 4},
	} {
		require.NoError(t, repo.Add(skill))
	}

	skills, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, skills, 4)

	// "Learning" < "Mastered" lexically, so Learning entries come first,
	// strongest proficiency leading within each category.
	assert.Equal(t, "Docker", skills[0].Name)
	assert.Equal(t, "New Technology", skills[1].Name)
	assert.Equal(t, "Expert Technology", skills[2].Name)
	assert.Equal(t, "SQL", skills[3].Name)
}

func TestSkillRepoUpdateFieldsPartial(t *testing.T) {
	repo := NewSkillRepo(setupTestDB(t))

	skill := &models.Skill{Name: "Go", Category: "Backend", ProficiencyLevel: 3}
	require.NoError(t, repo.Add(skill))
	createdAt := skill.CreatedAt

	updated, err := repo.UpdateFields(skill.ID, map[string]any{"proficiency_level": 4})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Go", updated.Name)
	assert.Equal(t, "Backend", updated.Category)
	assert.Equal(t, 4, updated.ProficiencyLevel)
	assert.True(t, createdAt.Equal(updated.CreatedAt), "skills carry no modification timestamp")
}

func TestSkillRepoUpdateFieldsNoOp(t *testing.T) {
	repo := NewSkillRepo(setupTestDB(t))

	skill := &models.Skill{Name: "Go", Category: "Backend", ProficiencyLevel: 3}
	require.NoError(t, repo.Add(skill))

	updated, err := repo.UpdateFields(skill.ID, map[string]any{})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, skill.ID, updated.ID)
	assert.Equal(t, "Go", updated.Name)
	assert.Equal(t, 3, updated.ProficiencyLevel)
}

func TestSkillRepoUpdateFieldsMissing(t *testing.T) {
	repo := NewSkillRepo(setupTestDB(t))

	updated, err := repo.UpdateFields(404, map[string]any{"name": "nope"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestSkillRepoDeleteTwice(t *testing.T) {
	repo := NewSkillRepo(setupTestDB(t))

	skill := &models.Skill{Name: "Go", Category: "Backend", ProficiencyLevel: 3}
	require.NoError(t, repo.Add(skill))

	existed, err := repo.Delete(skill.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = repo.Delete(skill.ID)
	require.NoError(t, err)
	assert.False(t, existed)
}
