// Package report - Demonstration price report
// Runs a fixed set of quote queries and renders them as a Swedish
// plain-text report. The first failing query aborts the report.
package report

import (
	"strings"

	"github.com/shopspring/decimal"

	"siteflow-quote/core/catalog"
	"siteflow-quote/core/quote"
	"siteflow-quote/core/ui"
)

// LineItem is hours of work by one role
type LineItem struct {
	Role  string
	Hours decimal.Decimal
}

// Project is a multi-role project with running costs
type Project struct {
	Name      string
	Ownership string
	Lines     []LineItem
	Hosting   string
	Support   string
}

// Scenario holds every input the report queries
type Scenario struct {
	Title string

	// Section 1: one role priced under several ownership models
	ExampleLabel      string
	ExampleRole       string
	ExampleHours      decimal.Decimal
	ExampleOwnerships []string

	// Section 2 and 3
	HostingPackages []string
	SupportLevels   []string

	// Section 4: a packaged service and an illustrative base amount
	Service     string
	ServiceBase decimal.Decimal

	// Section 5
	Project Project
}

// Default returns the illustrative scenario of the pricing documentation
func Default() Scenario {
	return Scenario{
		Title:             "SITEFLOW PRISBERÄKNINGSEXEMPEL",
		ExampleLabel:      "Elixir-utveckling",
		ExampleRole:       "Elixir-utvecklare",
		ExampleHours:      decimal.NewFromInt(300),
		ExampleOwnerships: []string{quote.OwnershipLicense, quote.OwnershipShared, quote.OwnershipFull},
		HostingPackages:   []string{"Starter", "Growth", "Scale", "Enterprise"},
		SupportLevels:     []string{"Basic Support", "Standard Support", "Premium Support"},
		Service:           "MVP-system",
		ServiceBase:       decimal.NewFromInt(300000),
		Project: Project{
			Name:      "E-handelsplattform med Elixir",
			Ownership: quote.OwnershipShared,
			Lines: []LineItem{
				{Role: "Senior Elixir-arkitekt", Hours: decimal.NewFromInt(80)},
				{Role: "Elixir-utvecklare", Hours: decimal.NewFromInt(400)},
				{Role: "Frontend-utvecklare", Hours: decimal.NewFromInt(200)},
				{Role: "DevOps-specialist", Hours: decimal.NewFromInt(40)},
			},
			Hosting: "Scale",
			Support: "Standard Support",
		},
	}
}

// Generate renders the report for s
func Generate(w *ui.Writer, calc *quote.Calculator, s Scenario) error {
	g := &generator{w: w, calc: calc, s: s}

	w.Banner(s.Title)
	for _, section := range []func() error{
		g.projectCost,
		g.hosting,
		g.support,
		g.packagedService,
		g.completeProject,
	} {
		if err := section(); err != nil {
			return err
		}
	}

	w.Blank()
	w.Rule()
	w.Println("Alla priser är i SEK och exklusive moms där inget annat anges")
	w.Rule()
	return nil
}

type generator struct {
	w    *ui.Writer
	calc *quote.Calculator
	s    Scenario
}

func (g *generator) vatLabel() string {
	return VATLabel(g.calc.Catalog().VATRate())
}

// VATLabel renders e.g. "Moms (25%)" for a VAT rate
func VATLabel(rate decimal.Decimal) string {
	return "Moms (" + rate.Mul(decimal.NewFromInt(100)).String() + "%)"
}

// WriteProjectCost prints the cost breakdown of one project line
func WriteProjectCost(w *ui.Writer, res quote.ProjectCost, vatLabel string) {
	w.Field("Baspris", w.Amount(res.BaseCost))
	w.Field("Multiplier", w.Multiplier(res.Multiplier))
	w.Field("Slutpris", w.Amount(res.FinalCost))
	w.Field(vatLabel, w.Amount(res.VAT))
	w.Field("Totalt inkl. moms", w.Amount(res.TotalWithVAT))
}

// WriteHosting prints a hosting package with its yearly cost
func WriteHosting(w *ui.Writer, h quote.Hosting) {
	w.SubHeader(h.Package + ":")
	w.Field("Fly.io", w.Monthly(h.Costs.FlyioMonthly))
	w.Field("Siteflow förvaltning", w.Monthly(h.Costs.SiteflowManagementMonthly))
	w.Field("Totalt", w.Monthly(h.Costs.TotalMonthly))
	w.Field("Årskostnad", w.Amount(h.Annual()))
}

// WriteSupport prints a support level. Included development hours are
// only shown when the level has any.
func WriteSupport(w *ui.Writer, s quote.Support) {
	w.SubHeader(s.Level + ":")
	w.Field("Månadskostnad", w.Amount(s.Monthly))
	w.Field("Årskostnad", w.Amount(s.Annual))
	w.Field("SLA", "svar inom "+s.SLA)
	if s.DevHoursMonthly.IsPositive() {
		w.Field("Inkluderade utvecklingstimmar", w.Number(s.DevHoursMonthly)+"h/mån")
	}
}

// WriteService prints a packaged service and its scope
func WriteService(w *ui.Writer, svc catalog.PackagedService) {
	w.Println("Tjänst: %s", svc.Name)
	w.Println("Prisintervall: %s - %s", w.Number(svc.PriceMin), w.Amount(svc.PriceMax))
	w.Println("Tidsåtgång: %s", svc.Duration)
	w.Println("Omfattning:")
	for _, item := range svc.Scope {
		w.Bullet("%s", item)
	}
}

func (g *generator) projectCost() error {
	w := g.w
	w.Blank()
	w.Section(1, "PROJEKTKOSTNAD - "+g.s.ExampleHours.String()+" timmar "+g.s.ExampleLabel)

	for _, ownership := range g.s.ExampleOwnerships {
		res, err := g.calc.ProjectCost(g.s.ExampleHours, g.s.ExampleRole, ownership)
		if err != nil {
			return err
		}
		w.Blank()
		w.SubHeader(res.OwnershipModel + ":")
		WriteProjectCost(w, res, g.vatLabel())
	}
	return nil
}

func (g *generator) hosting() error {
	w := g.w
	w.Blank()
	w.Blank()
	w.Section(2, "HOSTING-KOSTNADER")

	for _, name := range g.s.HostingPackages {
		h, err := g.calc.HostingMonthly(name)
		if err != nil {
			return err
		}
		w.Blank()
		WriteHosting(w, h)
	}
	return nil
}

func (g *generator) support() error {
	w := g.w
	w.Blank()
	w.Blank()
	w.Section(3, "SUPPORT-KOSTNADER")

	for _, level := range g.s.SupportLevels {
		s, err := g.calc.SupportAnnual(level)
		if err != nil {
			return err
		}
		w.Blank()
		WriteSupport(w, s)
	}
	return nil
}

func (g *generator) packagedService() error {
	w := g.w
	w.Blank()
	w.Blank()
	w.Section(4, "PAKETERAD TJÄNST - "+strings.ToUpper(g.s.Service))

	svc, err := g.calc.PackagedService(g.s.Service)
	if err != nil {
		return err
	}
	w.Blank()
	WriteService(w, svc)

	w.Blank()
	w.Println("Med olika ägandemodeller (baserat på %s):", w.Amount(g.s.ServiceBase))
	for _, v := range g.calc.OwnershipVariants(g.s.ServiceBase) {
		w.Bullet("%s: %s", v.Model, w.Amount(v.Amount))
	}
	return nil
}

func (g *generator) completeProject() error {
	w := g.w
	p := g.s.Project
	w.Blank()
	w.Blank()
	w.Section(5, "KOMPLETT PROJEKTEXEMPEL")
	w.Blank()
	w.Println("Projekt: %s", p.Name)
	w.Blank()
	w.Println("Team och timmar:")

	lines := make([]quote.ProjectCost, 0, len(p.Lines))
	for _, item := range p.Lines {
		res, err := g.calc.ProjectCost(item.Hours, item.Role, p.Ownership)
		if err != nil {
			return err
		}
		lines = append(lines, res)
		w.Bullet("%s: %sh × %s = %s", res.Role, w.Number(res.Hours), w.Amount(res.HourlyRate), w.Amount(res.BaseCost))
	}

	total := quote.ProjectTotal(lines...)
	w.Blank()
	w.Println("Baspris: %s", w.Amount(total.BaseCost))
	if len(lines) > 0 {
		w.Println("Ägandemodell: %s (%s)", lines[0].OwnershipModel, w.Multiplier(lines[0].Multiplier))
	}
	w.Println("Pris efter ägandemodell: %s", w.Amount(total.FinalCost))
	w.Println("%s: %s", g.vatLabel(), w.Amount(total.VAT))
	w.Blank()
	w.Highlight("TOTALT INKL. MOMS: %s", w.Amount(total.TotalWithVAT))

	hosting, err := g.calc.HostingMonthly(p.Hosting)
	if err != nil {
		return err
	}
	support, err := g.calc.SupportAnnual(p.Support)
	if err != nil {
		return err
	}
	recurring := quote.Recurring(hosting, support)

	w.Blank()
	w.Println("Månatliga löpande kostnader:")
	w.Bullet("Hosting (%s): %s", hosting.Package, w.Monthly(recurring.HostingMonthly))
	w.Bullet("Support (%s): %s", strings.TrimSuffix(support.Level, " Support"), w.Monthly(recurring.SupportMonthly))
	w.Bullet("Totalt löpande: %s", w.Monthly(recurring.Monthly))
	w.Bullet("Årskostnad löpande: %s", w.Amount(recurring.Annual))
	return nil
}
