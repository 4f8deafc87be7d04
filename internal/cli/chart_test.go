package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestChartCommand_Text(t *testing.T) {
	out, err := execute(t,
		"chart", "--date", "1990-02-01", "--time", "12:10",
		"--zone", "Asia/Seoul", "--longitude", "126.9778", "--gender", "male")
	require.NoError(t, err)

	assert.Contains(t, out, "己巳 丁丑 丁酉 丙午")
	assert.Contains(t, out, "DayMaster 丁")
	assert.Contains(t, out, "Strength")
	assert.Contains(t, out, "Yongshen")
}

func TestChartCommand_JSON(t *testing.T) {
	out, err := execute(t,
		"--format", "json",
		"chart", "--date", "1990-02-01", "--time", "12:10",
		"--zone", "Asia/Seoul", "--longitude", "126.9778",
		"--yearly", "2024:2026")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.TraceID)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	pillarsData, ok := data["pillars"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1989), pillarsData["solar_year"])

	yearly, ok := data["yearly_luck"].([]interface{})
	require.True(t, ok)
	assert.Len(t, yearly, 3)
}

func TestChartCommand_InvalidPreset(t *testing.T) {
	out, err := execute(t,
		"chart", "--date", "1990-02-01", "--preset", "bogus")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "INVALID_PRESET")
}

func TestChartCommand_BadDate(t *testing.T) {
	_, err := execute(t, "chart", "--date", "02/01/1990")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestChartCommand_BadYearlyRange(t *testing.T) {
	_, err := execute(t, "chart", "--date", "1990-02-01", "--yearly", "2026")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestLuckCommand_Text(t *testing.T) {
	out, err := execute(t,
		"luck", "--date", "1990-02-01", "--time", "12:10", "--gender", "male")
	require.NoError(t, err)

	assert.Contains(t, out, "Direction backward")
	assert.Contains(t, out, "丙子")
}

func TestTermsCommand_Year(t *testing.T) {
	out, err := execute(t, "terms", "--year", "1990")
	require.NoError(t, err)

	assert.Contains(t, out, "Spring Begins")
	assert.Contains(t, out, "Winter Solstice")
}

func TestTermsCommand_RequiresYearOrAt(t *testing.T) {
	_, err := execute(t, "terms")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestLunarConvertCommand(t *testing.T) {
	out, err := execute(t, "lunar", "convert", "--date", "1990-02-01")
	require.NoError(t, err)
	assert.Contains(t, out, "1990-01-06")
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets")
	require.NoError(t, err)

	assert.Contains(t, out, "standard")
	assert.Contains(t, out, "classic")
	assert.Contains(t, out, "civil")
	assert.Contains(t, out, "zi-hour")
}
