package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

// TestProcessAndValidateDefaults verifies that an empty raw input
// resolves to the documented defaults.
func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, &ConfigRawInput{}))

	assert.Equal(t, DefaultMaxCommits, cfg.MaxCommits)
	assert.Equal(t, DefaultReposPerUser, cfg.ReposPerUser)
	assert.Equal(t, DefaultCommitsPerRepo, cfg.CommitsPerRepo)
	assert.Equal(t, DefaultDetailCap, cfg.DetailCap)
	assert.Equal(t, DefaultRateLimit, cfg.RateLimit)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.NoneBackend, cfg.StoreBackend)
	assert.Equal(t, DefaultPrecision, cfg.Precision)
	assert.True(t, cfg.UseColors)
}

// TestProcessAndValidateRejectsBadInput covers the validation failures.
func TestProcessAndValidateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		input ConfigRawInput
	}{
		{name: "unknown output mode", input: ConfigRawInput{Output: "xml"}},
		{name: "unknown store backend", input: ConfigRawInput{StoreBackend: "oracle"}},
		{name: "mysql without connect string", input: ConfigRawInput{StoreBackend: "mysql"}},
		{name: "postgresql without connect string", input: ConfigRawInput{StoreBackend: "postgresql"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ProcessAndValidate(&Config{}, &tt.input))
		})
	}
}

// TestProcessAndValidatePrecisionClamp pins precision to the 1..2 range.
func TestProcessAndValidatePrecisionClamp(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, &ConfigRawInput{Precision: 0}))
	assert.Equal(t, 1, cfg.Precision)

	require.NoError(t, ProcessAndValidate(cfg, &ConfigRawInput{Precision: 7}))
	assert.Equal(t, 2, cfg.Precision)
}

// TestParseBoolish covers the flag truthiness convention.
func TestParseBoolish(t *testing.T) {
	assert.True(t, parseBoolish("yes", false))
	assert.True(t, parseBoolish("TRUE", false))
	assert.True(t, parseBoolish("1", false))
	assert.False(t, parseBoolish("no", true))
	assert.False(t, parseBoolish("off", true))
	assert.True(t, parseBoolish("garbage", true))
	assert.False(t, parseBoolish("", false))
}

// TestTruncateText checks tail-preserving truncation.
func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "...tally-long", TruncateText("monumentally-long", 13))
	assert.Equal(t, "unbounded", TruncateText("unbounded", 0))
}
