package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := InitWithWriter(Config{Level: "debug", Format: FormatJSON}, &buf)

	logger.Debug().Int("count", 20).Msg("batch started")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "batch started", entry["message"])
	assert.EqualValues(t, 20, entry["count"])
	assert.Contains(t, entry, "time")
}

func TestInitWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(Config{Level: "warn", Format: FormatJSON}, &buf)

	Logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	Logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitWithWriter_DefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(Config{}, &buf)

	Logger.Debug().Msg("hidden")
	assert.Empty(t, buf.String())
	Logger.Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitWithWriter_Pretty(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(Config{Level: "info", Format: FormatPretty}, &buf)

	Logger.Info().Str("path", "sample_cvs.json").Msg("wrote batch")
	assert.Contains(t, buf.String(), "wrote batch")
	assert.Contains(t, buf.String(), "sample_cvs.json")
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, Config{}.Validate())
	assert.NoError(t, Config{Level: "debug", Format: FormatPretty}.Validate())
	assert.Error(t, Config{Level: "loud"}.Validate())
	assert.Error(t, Config{Format: "xml"}.Validate())
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(Config{Level: "info", Format: FormatJSON}, &buf)

	Ctx(context.Background()).Info().Msg("from global")
	assert.Contains(t, buf.String(), "from global")

	buf.Reset()
	Ctx(WithContext(context.Background())).Info().Msg("from context")
	assert.Contains(t, buf.String(), "from context")
}

func TestInitWithWriter_ConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	logger := InitWithWriter(Config{Level: "info", Format: FormatJSON}, &buf)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info().Int("worker", i).Msg("tick")
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, strings.Count(buf.String(), `"message":"tick"`))
}
