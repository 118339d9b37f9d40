package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveByName(t *testing.T) {
	ids := []string{"id-1", "id-2", "id-3"}
	names := []string{"Infra weekly", "Infra monthly", "API review"}

	got, err := resolveByName("workstream", "infra weekly", ids, names)
	require.NoError(t, err)
	assert.Equal(t, "id-1", got)

	got, err = resolveByName("workstream", "id-3", ids, names)
	require.NoError(t, err)
	assert.Equal(t, "id-3", got)

	got, err = resolveByName("workstream", "api", ids, names)
	require.NoError(t, err)
	assert.Equal(t, "id-3", got)

	_, err = resolveByName("workstream", "infra", ids, names)
	assert.ErrorContains(t, err, "ambiguous")

	_, err = resolveByName("workstream", "nope", ids, names)
	assert.ErrorContains(t, err, "not found")

	_, err = resolveByName("workstream", "", ids, names)
	assert.ErrorContains(t, err, "required")
}

func TestParseTaskLines(t *testing.T) {
	tasks := parseTaskLines("Deploy pipeline, Alex\n\nOn-call rotation\n  , \n")
	require.Len(t, tasks, 2)
	assert.Equal(t, "Deploy pipeline", tasks[0].Name)
	assert.Equal(t, "Alex", tasks[0].Owner)
	assert.Equal(t, "On-call rotation", tasks[1].Name)
	assert.Empty(t, tasks[1].Owner)
}
