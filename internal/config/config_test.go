package config

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppConfig_Defaults(t *testing.T) {
	runtime := t.TempDir()
	t.Setenv("FOOTIX_RUNTIME_PATH", runtime)

	c, err := LoadAppConfig()
	require.NoError(t, err)

	assert.Equal(t, runtime, c.RuntimePath)
	assert.Equal(t, filepath.Join(runtime, "knowledge.yaml"), c.KnowledgePath)
	assert.Equal(t, filepath.Join(runtime, "footix.db"), c.GetDatabasePath())
	assert.Equal(t, KnowledgeFromFile, c.KnowledgeSource)
	assert.Equal(t, StateInMemory, c.StateBackend)
	assert.Equal(t, []string{"hey"}, c.Blacklist)
	assert.InDelta(t, 0.5, c.Fuzziness, 1e-9)
	assert.True(t, c.EnableCLI)
	assert.True(t, c.NeedsDatabase())

	canned := c.CannedResponses()
	assert.Equal(t, "ARE YOU MOCKING ME?", canned.RepeatAnswer)
	assert.Equal(t, "SORRY, I WAS FALLING ASLEEP! WAHT'S UP?", canned.EmptyInput)
}

func TestLoadAppConfig_Overrides(t *testing.T) {
	t.Setenv("FOOTIX_RUNTIME_PATH", t.TempDir())
	t.Setenv("FOOTIX_BLACKLIST", "hey,<@U0S558MS7>")
	t.Setenv("FOOTIX_FUZZINESS", "1")
	t.Setenv("FOOTIX_KNOWLEDGE_SOURCE", "sqlite")
	t.Setenv("FOOTIX_TRANSCRIPT", "false")

	c, err := LoadAppConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"hey", "<@U0S558MS7>"}, c.Blacklist)
	assert.InDelta(t, 1.0, c.Fuzziness, 1e-9)
	assert.True(t, c.NeedsDatabase())
}

func TestLoadAppConfig_Invalid(t *testing.T) {
	t.Setenv("FOOTIX_RUNTIME_PATH", t.TempDir())

	t.Run("knowledge source", func(t *testing.T) {
		t.Setenv("FOOTIX_KNOWLEDGE_SOURCE", "postgres")
		_, err := LoadAppConfig()
		assert.ErrorContains(t, err, "unknown knowledge source")
	})

	t.Run("state backend", func(t *testing.T) {
		t.Setenv("FOOTIX_STATE_BACKEND", "etcd")
		_, err := LoadAppConfig()
		assert.ErrorContains(t, err, "unknown state backend")
	})

	t.Run("fuzziness", func(t *testing.T) {
		t.Setenv("FOOTIX_FUZZINESS", "lots")
		_, err := LoadAppConfig()
		assert.Error(t, err)
	})
}

func TestResolveRuntimePath(t *testing.T) {
	assert.Equal(t, "/srv/footix", ResolveRuntimePath("/srv/footix"))
	assert.True(t, filepath.IsAbs(ResolveRuntimePath("")))
	assert.Equal(t, defaultRuntimeDir, filepath.Base(ResolveRuntimePath("")))
}

func TestRedisConfig(t *testing.T) {
	t.Setenv("FOOTIX_CONVERSATION_TTL", "90m")

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	c := NewRedisConfig(ctx)
	assert.Equal(t, "localhost:6379", c.Addr)
	assert.Equal(t, "footix:", c.KeyPrefix)
	assert.Equal(t, 90*time.Minute, c.TTL)
}
