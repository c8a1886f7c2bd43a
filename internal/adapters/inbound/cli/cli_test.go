package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/costflow/costflow/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := cli.NewRootCmdForTest()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeProjectConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".costflow.yaml"), []byte(content), 0644))
	return dir
}

const demoYAML = `
process:
  invoice: inv3
  shipping: sh2
  freight: fr3
  availability: av2
  shipping_date: sd2
`

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "costflow dev")
}

func TestQuoteCmd_Text(t *testing.T) {
	dir := writeProjectConfig(t, demoYAML)

	out, _, err := execute(t, "quote", "--path", dir, "--cost", "2000", "--date", "2021-03-16T12:00:00Z")
	require.NoError(t, err)
	assert.Contains(t, out, "1280.00")
	assert.Contains(t, out, "Saturday")
}

func TestQuoteCmd_JSONWithOverride(t *testing.T) {
	dir := writeProjectConfig(t, demoYAML)

	out, _, err := execute(t, "quote", "--path", dir, "--cost", "2000",
		"--date", "2021-03-16T12:00:00Z", "--availability", "av4", "--json")
	require.NoError(t, err)

	var quote struct {
		Config struct {
			Availability string `json:"availability"`
		} `json:"config"`
		Adjustment struct {
			Cost string `json:"cost"`
		} `json:"adjustment"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &quote))
	assert.Equal(t, "av4", quote.Config.Availability)
	assert.Equal(t, "1780", quote.Adjustment.Cost)
}

func TestQuoteCmd_VerboseTracesStages(t *testing.T) {
	dir := writeProjectConfig(t, demoYAML+"log:\n  format: json\n")

	_, stderr, err := execute(t, "quote", "--path", dir, "--cost", "2000",
		"--date", "2021-03-16T12:00:00Z", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"message":"stage_executed"`)
	assert.Contains(t, stderr, `"variant":"fr3"`)
}

func TestQuoteCmd_QuietByDefault(t *testing.T) {
	dir := writeProjectConfig(t, demoYAML)

	_, stderr, err := execute(t, "quote", "--path", dir, "--cost", "2000", "--date", "2021-03-16T12:00:00Z")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestQuoteCmd_UnknownVariant(t *testing.T) {
	dir := writeProjectConfig(t, demoYAML)

	_, _, err := execute(t, "quote", "--path", dir, "--cost", "2000", "--freight", "fr8")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `category freight, choice "fr8"`)
}

func TestQuoteCmd_RequiresCost(t *testing.T) {
	_, _, err := execute(t, "quote", "--path", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cost")
}

func TestQuoteCmd_InvalidDate(t *testing.T) {
	_, _, err := execute(t, "quote", "--path", t.TempDir(), "--cost", "10", "--date", "tomorrow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order")
}

func TestDiscountCmd(t *testing.T) {
	out, _, err := execute(t, "discount", "--cost", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "3.3333")
	assert.Contains(t, out, "rule-5")
}

func TestDiscountCmd_JSON(t *testing.T) {
	out, _, err := execute(t, "discount", "--cost", "100", "--date", "2021-03-16T12:00:00Z", "--json")
	require.NoError(t, err)

	var res struct {
		Breakdown struct {
			Rules    []map[string]any `json:"rules"`
			Discount string           `json:"discount"`
		} `json:"breakdown"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Len(t, res.Breakdown.Rules, 6)
	assert.Equal(t, "3.3333333333333333", res.Breakdown.Discount)
}

func TestVariantsCmd(t *testing.T) {
	out, _, err := execute(t, "variants")
	require.NoError(t, err)
	assert.Contains(t, out, "Shipping Date")
	assert.Contains(t, out, "inv5")
}

func TestVariantsCmd_JSON(t *testing.T) {
	out, _, err := execute(t, "variants", "--json")
	require.NoError(t, err)

	var v []struct {
		Category string `json:"category"`
		Variants []struct {
			Choice string `json:"choice"`
		} `json:"variants"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	require.Len(t, v, 5)
	assert.Equal(t, "shipping_date", v[4].Category)
	assert.Len(t, v[1].Variants, 3)
}
