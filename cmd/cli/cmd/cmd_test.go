package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteflow-quote/internal/errors"
)

var testCatalog = filepath.Join("..", "..", "..", "siteflow-prislista.json")

// resetFlags restores every flag to its default between runs
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out, stderr bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--catalog", testCatalog, "--locale", "en", "--no-color"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestProjectCommand(t *testing.T) {
	out, err := run(t, "project", "Elixir-utvecklare", "300", "--ownership", "shared")
	require.NoError(t, err)

	assert.Contains(t, out, "Elixir-utvecklare, 300h × 1,200 kr (Delad äganderätt):")
	assert.Contains(t, out, "  Baspris: 360,000 kr")
	assert.Contains(t, out, "  Slutpris: 468,000 kr")
	assert.Contains(t, out, "  Moms (25%): 117,000 kr")
	assert.Contains(t, out, "  Totalt inkl. moms: 585,000 kr")
}

func TestProjectCommandJSON(t *testing.T) {
	out, err := run(t, "project", "Elixir-utvecklare", "300", "--ownership", "shared", "--format", "json")
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "Delad äganderätt", res["ownership_model"])
	assert.Equal(t, "360000", res["base_cost"])
	assert.Equal(t, "468000", res["final_cost"])
	assert.Equal(t, "117000", res["vat"])
	assert.Equal(t, "585000", res["total_with_vat"])
}

func TestProjectCommandDefaultsToLicense(t *testing.T) {
	out, err := run(t, "project", "Frontend-utvecklare", "10")
	require.NoError(t, err)

	assert.Contains(t, out, "(Licensmodell):")
	assert.Contains(t, out, "  Slutpris: 10,000 kr")
}

func TestProjectCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		errType errors.Type
	}{
		{"invalid hours", []string{"project", "Elixir-utvecklare", "tre"}, errors.TypeInput},
		{"negative hours", []string{"project", "Elixir-utvecklare", "--", "-5"}, errors.TypeInput},
		{"unknown role", []string{"project", "Cobol-utvecklare", "10"}, errors.TypeRoleNotFound},
		{"unsupported format", []string{"project", "Elixir-utvecklare", "10", "--format", "xml"}, errors.TypeInput},
		{"strict ownership", []string{"--strict-ownership", "project", "Elixir-utvecklare", "10", "--ownership", "Ägarskap"}, errors.TypeOwnershipNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, tt.errType), "got %v", err)
		})
	}
}

func TestUnknownOwnershipFallsBack(t *testing.T) {
	out, err := run(t, "project", "Elixir-utvecklare", "10", "--ownership", "Ägarskap")
	require.NoError(t, err)

	assert.Contains(t, out, "(Ägarskap):")
	assert.Contains(t, out, "  Multiplier: 1.0x")
	assert.Contains(t, out, "  Slutpris: 12,000 kr")
}

func TestHostingCommand(t *testing.T) {
	out, err := run(t, "hosting", "Growth")
	require.NoError(t, err)

	assert.Contains(t, out, "Growth:\n  Fly.io: 600 kr/mån")
	assert.Contains(t, out, "  Årskostnad: 24,000 kr")
	assert.Contains(t, out, "  Specifikation: cpu=shared-cpu-2x, memory=2GB, regions=1")
}

func TestHostingCommandJSON(t *testing.T) {
	out, err := run(t, "hosting", "Growth", "-f", "json")
	require.NoError(t, err)

	var res struct {
		Package string `json:"package"`
		Annual  string `json:"annual"`
		Costs   struct {
			TotalMonthly string `json:"total_monthly"`
		} `json:"costs"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "Growth", res.Package)
	assert.Equal(t, "2000", res.Costs.TotalMonthly)
	assert.Equal(t, "24000", res.Annual)
}

func TestSupportCommand(t *testing.T) {
	out, err := run(t, "support", "Standard Support")
	require.NoError(t, err)
	assert.Contains(t, out, "Standard Support:\n  Månadskostnad: 3,000 kr\n  Årskostnad: 36,000 kr")

	_, err = run(t, "support", "Gold Support")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeLevelNotFound))
}

func TestServiceCommand(t *testing.T) {
	out, err := run(t, "service", "MVP-system")
	require.NoError(t, err)
	assert.Contains(t, out, "Tjänst: MVP-system")
	assert.Contains(t, out, "Prisintervall: 150,000 - 300,000 kr")

	_, err = run(t, "service", "Webbshop")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeServiceNotFound))
}

func TestReportCommand(t *testing.T) {
	out, err := run(t, "report")
	require.NoError(t, err)

	assert.Contains(t, out, "SITEFLOW PRISBERÄKNINGSEXEMPEL")
	assert.Contains(t, out, "TOTALT INKL. MOMS: 1,384,500 kr")
	assert.Contains(t, out, "Alla priser är i SEK")
}

func TestMissingCatalog(t *testing.T) {
	_, err := run(t, "--catalog", filepath.Join(t.TempDir(), "saknas.json"), "report")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeCatalogUnavailable))
}

func TestCatalogCommand(t *testing.T) {
	out, err := run(t, "catalog")
	require.NoError(t, err)

	assert.Contains(t, out, "Senior Elixir-arkitekt")
	assert.Contains(t, out, "Öppen källkod")
	assert.Contains(t, out, "Enterprise")
	assert.Contains(t, out, "Premium Support")
}

func TestCatalogValidateCommand(t *testing.T) {
	hcl := filepath.Join("..", "..", "..", "core", "catalog", "testdata", "siteflow-prislista.hcl")
	out, err := run(t, "catalog", "validate", hcl)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ "+hcl)

	_, err = run(t, "catalog", "validate", "prislista.toml")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeCatalogMalformed))
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "siteflow-quote version "+version+"\n", out)
}
