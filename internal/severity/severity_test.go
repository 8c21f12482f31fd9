package severity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		expected string
	}{
		{"info level", SeverityInfo, "INFO"},
		{"warning level", SeverityWarning, "WARNING"},
		{"dangerous level", SeverityDangerous, "DANGEROUS"},
		{"breaking level", SeverityBreaking, "BREAKING"},

		// Edge cases: Invalid severity values
		{"unknown negative", Severity(-1), "UNKNOWN"},
		{"unknown large value", Severity(999), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.severity.String())
		})
	}
}

func TestSeverityOrdering(t *testing.T) {
	levels := All()
	require.Len(t, levels, 4)
	for i := 1; i < len(levels); i++ {
		assert.True(t, levels[i].AtLeast(levels[i-1]), "%s should be at least %s", levels[i], levels[i-1])
		assert.False(t, levels[i-1].AtLeast(levels[i]), "%s should be below %s", levels[i-1], levels[i])
	}
	assert.True(t, SeverityBreaking.AtLeast(SeverityBreaking))
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Severity
		wantErr  bool
	}{
		{"INFO", SeverityInfo, false},
		{"warning", SeverityWarning, false},
		{" Dangerous ", SeverityDangerous, false},
		{"BREAKING", SeverityBreaking, false},
		{"critical", SeverityInfo, true},
		{"", SeverityInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSeverityJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Severity{"severity": SeverityDangerous})
	require.NoError(t, err)
	assert.JSONEq(t, `{"severity":"DANGEROUS"}`, string(data))

	var decoded struct {
		Severity Severity `json:"severity"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"severity":"breaking"}`), &decoded))
	assert.Equal(t, SeverityBreaking, decoded.Severity)

	assert.Error(t, json.Unmarshal([]byte(`{"severity":"nope"}`), &decoded))

	_, err = json.Marshal(Severity(42))
	assert.Error(t, err)
}
