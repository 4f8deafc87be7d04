package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "saju", cmd.Use)
	assert.Contains(t, cmd.Long, "sexagenary")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"chart", "terms", "luck", "lunar", "presets"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestLunarSubcommands(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"convert", "seed"} {
		subCmd, _, err := cmd.Find([]string{"lunar", name})
		require.NoError(t, err)
		assert.Equal(t, name, subCmd.Name())
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestChartCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	chartCmd, _, err := cmd.Find([]string{"chart"})
	require.NoError(t, err)

	for _, name := range []string{"date", "time", "zone", "longitude", "preset", "presets-file", "gender", "current-year", "yearly"} {
		require.NotNil(t, chartCmd.Flags().Lookup(name), "flag %s should exist", name)
	}
	assert.Equal(t, "00:00", chartCmd.Flags().Lookup("time").DefValue)
	assert.Equal(t, "Asia/Seoul", chartCmd.Flags().Lookup("zone").DefValue)
	assert.Equal(t, "standard", chartCmd.Flags().Lookup("preset").DefValue)
}

func TestLuckCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	luckCmd, _, err := cmd.Find([]string{"luck"})
	require.NoError(t, err)

	require.NotNil(t, luckCmd.Flags().Lookup("bands"))
	require.NotNil(t, luckCmd.Flags().Lookup("gender"))
}

func TestLunarSeedCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	seedCmd, _, err := cmd.Find([]string{"lunar", "seed"})
	require.NoError(t, err)

	dbFlag := seedCmd.Flags().Lookup("db")
	require.NotNil(t, dbFlag)
	// --db is required, so default is empty
	assert.Equal(t, "", dbFlag.DefValue)

	assert.Equal(t, "1900", seedCmd.Flags().Lookup("from").DefValue)
	assert.Equal(t, "2050", seedCmd.Flags().Lookup("to").DefValue)
}

func TestFormatValidation(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))

	assert.False(t, isValidFormat("xml"))
	assert.False(t, isValidFormat(""))
	assert.False(t, isValidFormat("TEXT"))
}

func TestFormatValidationIntegration(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"--format", "invalid", "presets"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
