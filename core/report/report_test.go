package report

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"siteflow-quote/core/catalog"
	"siteflow-quote/core/quote"
	"siteflow-quote/core/ui"
	"siteflow-quote/internal/errors"
)

func newCalculator(t *testing.T) *quote.Calculator {
	t.Helper()
	cat, err := catalog.Load(filepath.Join("..", "..", "siteflow-prislista.json"))
	require.NoError(t, err)
	return quote.NewCalculator(cat, quote.WithLogger(zap.NewNop()))
}

func render(t *testing.T, s Scenario) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := Generate(ui.NewWriter(&buf, true, "en"), newCalculator(t), s)
	return buf.String(), err
}

func TestGenerateDefaultScenario(t *testing.T) {
	out, err := render(t, Default())
	require.NoError(t, err)

	expected := []string{
		"SITEFLOW PRISBERÄKNINGSEXEMPEL",

		// Section 1
		"1. PROJEKTKOSTNAD - 300 timmar Elixir-utveckling",
		"Licensmodell:\n  Baspris: 360,000 kr\n  Multiplier: 1.0x\n  Slutpris: 360,000 kr",
		"Delad äganderätt:\n  Baspris: 360,000 kr\n  Multiplier: 1.3x\n  Slutpris: 468,000 kr\n  Moms (25%): 117,000 kr\n  Totalt inkl. moms: 585,000 kr",
		"Full äganderätt:\n  Baspris: 360,000 kr\n  Multiplier: 1.6x\n  Slutpris: 576,000 kr",

		// Section 2
		"2. HOSTING-KOSTNADER",
		"Growth:\n  Fly.io: 600 kr/mån\n  Siteflow förvaltning: 1,400 kr/mån\n  Totalt: 2,000 kr/mån\n  Årskostnad: 24,000 kr",
		"Enterprise:",

		// Section 3
		"3. SUPPORT-KOSTNADER",
		"Standard Support:\n  Månadskostnad: 3,000 kr\n  Årskostnad: 36,000 kr\n  SLA: svar inom 24 timmar\n  Inkluderade utvecklingstimmar: 4h/mån",

		// Section 4
		"4. PAKETERAD TJÄNST - MVP-SYSTEM",
		"Prisintervall: 150,000 - 300,000 kr",
		"  • Backend i Elixir/Phoenix",
		"Med olika ägandemodeller (baserat på 300,000 kr):",
		"  • Delad äganderätt: 390,000 kr",
		"  • Full äganderätt: 480,000 kr",

		// Section 5
		"5. KOMPLETT PROJEKTEXEMPEL",
		"  • Senior Elixir-arkitekt: 80h × 1,500 kr = 120,000 kr",
		"  • DevOps-specialist: 40h × 1,300 kr = 52,000 kr",
		"Baspris: 852,000 kr",
		"Ägandemodell: Delad äganderätt (1.3x)",
		"Pris efter ägandemodell: 1,107,600 kr",
		"Moms (25%): 276,900 kr",
		"TOTALT INKL. MOMS: 1,384,500 kr",
		"  • Hosting (Scale): 4,000 kr/mån",
		"  • Support (Standard): 3,000 kr/mån",
		"  • Totalt löpande: 7,000 kr/mån",
		"  • Årskostnad löpande: 84,000 kr",

		"Alla priser är i SEK och exklusive moms där inget annat anges",
	}
	for _, want := range expected {
		assert.Contains(t, out, want)
	}
}

func TestGenerateSkipsZeroDevelopmentHours(t *testing.T) {
	out, err := render(t, Default())
	require.NoError(t, err)

	assert.Contains(t, out, "Basic Support:\n  Månadskostnad: 1,500 kr\n  Årskostnad: 18,000 kr\n  SLA: svar inom 48 timmar\n\n")
}

func TestGenerateSkipsOwnershipWithoutMultiplier(t *testing.T) {
	out, err := render(t, Default())
	require.NoError(t, err)

	assert.NotContains(t, out, "Öppen källkod")
}

func TestGenerateAbortsOnFirstFailure(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Scenario)
		errType errors.Type
		reached string
		missing string
	}{
		{
			name:    "unknown example role",
			mutate:  func(s *Scenario) { s.ExampleRole = "Cobol-utvecklare" },
			errType: errors.TypeRoleNotFound,
			reached: "1. PROJEKTKOSTNAD",
			missing: "2. HOSTING-KOSTNADER",
		},
		{
			name:    "unknown hosting package",
			mutate:  func(s *Scenario) { s.HostingPackages = []string{"Starter", "Hobby"} },
			errType: errors.TypePackageNotFound,
			reached: "Starter:",
			missing: "3. SUPPORT-KOSTNADER",
		},
		{
			name:    "unknown support level",
			mutate:  func(s *Scenario) { s.SupportLevels = []string{"Gold Support"} },
			errType: errors.TypeLevelNotFound,
			reached: "3. SUPPORT-KOSTNADER",
			missing: "4. PAKETERAD TJÄNST",
		},
		{
			name:    "unknown packaged service",
			mutate:  func(s *Scenario) { s.Service = "Webbshop" },
			errType: errors.TypeServiceNotFound,
			reached: "4. PAKETERAD TJÄNST - WEBBSHOP",
			missing: "5. KOMPLETT PROJEKTEXEMPEL",
		},
		{
			name:    "unknown project hosting",
			mutate:  func(s *Scenario) { s.Project.Hosting = "Hobby" },
			errType: errors.TypePackageNotFound,
			reached: "TOTALT INKL. MOMS",
			missing: "Månatliga löpande kostnader",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)

			out, err := render(t, s)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, tt.errType), "got %v", err)
			assert.Contains(t, out, tt.reached)
			assert.NotContains(t, out, tt.missing)
			assert.NotContains(t, out, "Alla priser är i SEK")
		})
	}
}
