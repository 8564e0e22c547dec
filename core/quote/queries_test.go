package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteflow-quote/core/catalog"
	"siteflow-quote/internal/errors"
)

func TestHostingMonthly(t *testing.T) {
	h, err := quietCalculator().HostingMonthly("Growth")
	require.NoError(t, err)

	assert.Equal(t, "Growth", h.Package)
	assert.Equal(t, "shared-cpu-2x", h.Specs["cpu"])
	assert.True(t, h.Costs.FlyioMonthly.Equal(dec("600")))
	assert.True(t, h.Costs.SiteflowManagementMonthly.Equal(dec("1400")))
	assert.True(t, h.Costs.TotalMonthly.Equal(dec("2000")))
	assert.True(t, h.Annual().Equal(dec("24000")))
}

func TestHostingMonthlyUnknownPackage(t *testing.T) {
	h, err := quietCalculator().HostingMonthly("Hobby")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypePackageNotFound))
	assert.Equal(t, Hosting{}, h)
}

func TestSupportAnnual(t *testing.T) {
	tests := []struct {
		level    string
		monthly  string
		annual   string
		sla      string
		devHours string
	}{
		{"Standard Support", "3000", "36000", "24 timmar", "4"},
		{"Basic Support", "1500", "18000", "48 timmar", "0"},
	}

	calc := quietCalculator()
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			s, err := calc.SupportAnnual(tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.level, s.Level)
			assert.True(t, s.Monthly.Equal(dec(tt.monthly)))
			assert.True(t, s.Annual.Equal(dec(tt.annual)))
			assert.Equal(t, tt.sla, s.SLA)
			assert.True(t, s.DevHoursMonthly.Equal(dec(tt.devHours)))
		})
	}
}

func TestSupportAnnualUnknownLevel(t *testing.T) {
	s, err := quietCalculator().SupportAnnual("Gold Support")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeLevelNotFound))
	assert.Equal(t, Support{}, s)
}

func TestPackagedService(t *testing.T) {
	svc, err := quietCalculator().PackagedService("MVP-system")
	require.NoError(t, err)

	assert.Equal(t, "MVP-system", svc.Name)
	assert.True(t, svc.PriceMin.Equal(dec("150000")))
	assert.True(t, svc.PriceMax.Equal(dec("300000")))
	assert.Equal(t, "6-10 veckor", svc.Duration)
	assert.Equal(t, []string{"Backend", "Frontend"}, svc.Scope)
}

func TestPackagedServiceUnknown(t *testing.T) {
	svc, err := quietCalculator().PackagedService("Webbshop")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeServiceNotFound))
	assert.Equal(t, catalog.PackagedService{}, svc)
}

func TestRecurring(t *testing.T) {
	calc := quietCalculator()
	h, err := calc.HostingMonthly("Scale")
	require.NoError(t, err)
	s, err := calc.SupportAnnual("Standard Support")
	require.NoError(t, err)

	r := Recurring(h, s)
	assert.True(t, r.HostingMonthly.Equal(dec("4000")))
	assert.True(t, r.SupportMonthly.Equal(dec("3000")))
	assert.True(t, r.Monthly.Equal(dec("7000")))
	assert.True(t, r.Annual.Equal(dec("84000")))
}

func TestProjectTotal(t *testing.T) {
	calc := quietCalculator()

	var lines []ProjectCost
	for _, item := range []struct {
		role  string
		hours string
	}{
		{"Senior Elixir-arkitekt", "80"},
		{"Elixir-utvecklare", "400"},
		{"Frontend-utvecklare", "200"},
	} {
		line, err := calc.ProjectCost(dec(item.hours), item.role, OwnershipShared)
		require.NoError(t, err)
		lines = append(lines, line)
	}

	total := ProjectTotal(lines...)
	// 80*1500 + 400*1200 + 200*1000
	assert.True(t, total.BaseCost.Equal(dec("800000")), "base %s", total.BaseCost)
	assert.True(t, total.FinalCost.Equal(dec("1040000")), "final %s", total.FinalCost)
	assert.True(t, total.VAT.Equal(dec("260000")), "vat %s", total.VAT)
	assert.True(t, total.TotalWithVAT.Equal(dec("1300000")), "total %s", total.TotalWithVAT)
}

func TestProjectTotalEmpty(t *testing.T) {
	total := ProjectTotal()
	assert.True(t, total.BaseCost.IsZero())
	assert.True(t, total.TotalWithVAT.IsZero())
}
