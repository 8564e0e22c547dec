package catalog

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// HCL layout: one company block plus labelled blocks per entry.
//
//	company { vat_rate = 0.25 }
//	rate "Elixir-utvecklare" { price_per_hour = 1200 }
//	ownership "Delad äganderätt" { multiplier = 1.3 }
//	hosting "Growth" {
//	  specs = { cpu = "shared-cpu-2x", regions = 1 }
//	  costs { total_monthly = 2000 }
//	}
//	support "Standard Support" { price_monthly = 3000 }
//	service "MVP-system" {
//	  price_min = 150000
//	  price_max = 300000
//	}
type hclDocument struct {
	Company   *hclCompany    `hcl:"company,block"`
	Rates     []hclRate      `hcl:"rate,block"`
	Ownership []hclOwnership `hcl:"ownership,block"`
	Hosting   []hclHosting   `hcl:"hosting,block"`
	Support   []hclSupport   `hcl:"support,block"`
	Services  []hclService   `hcl:"service,block"`
}

type hclCompany struct {
	Name     *string    `hcl:"name,optional"`
	Currency *string    `hcl:"currency,optional"`
	VATRate  *big.Float `hcl:"vat_rate,optional"`
}

type hclRate struct {
	Role         string     `hcl:"role,label"`
	PricePerHour *big.Float `hcl:"price_per_hour,optional"`
}

type hclOwnership struct {
	Name        string     `hcl:"name,label"`
	Description *string    `hcl:"description,optional"`
	Multiplier  *big.Float `hcl:"multiplier,optional"`
}

type hclHosting struct {
	Name  string           `hcl:"name,label"`
	Specs cty.Value        `hcl:"specs,optional"`
	Costs *hclHostingCosts `hcl:"costs,block"`
}

type hclHostingCosts struct {
	FlyioMonthly              *big.Float `hcl:"flyio_monthly,optional"`
	SiteflowManagementMonthly *big.Float `hcl:"siteflow_management_monthly,optional"`
	TotalMonthly              *big.Float `hcl:"total_monthly,optional"`
}

type hclSupport struct {
	Name                    string     `hcl:"name,label"`
	PriceMonthly            *big.Float `hcl:"price_monthly,optional"`
	SLAResponseTime         *string    `hcl:"sla_response_time,optional"`
	DevelopmentHoursMonthly *big.Float `hcl:"development_hours_monthly,optional"`
}

type hclService struct {
	Name     string     `hcl:"name,label"`
	PriceMin *big.Float `hcl:"price_min,optional"`
	PriceMax *big.Float `hcl:"price_max,optional"`
	Duration *string    `hcl:"duration,optional"`
	Scope    []string   `hcl:"scope,optional"`
}

// decodeHCL decodes native HCL syntax into the shared document shape so
// field presence is checked once in toData.
func decodeHCL(src []byte) (document, error) {
	var h hclDocument
	if err := hclsimple.Decode("catalog.hcl", src, nil, &h); err != nil {
		return document{}, err
	}

	c := &hclConverter{}
	var doc document
	if h.Company != nil {
		doc.Company.Name = str(h.Company.Name)
		doc.Company.Currency = str(h.Company.Currency)
		doc.Company.VATRate = c.amount("company.vat_rate", h.Company.VATRate)
	}

	for _, r := range h.Rates {
		doc.HourlyRates.Rates = append(doc.HourlyRates.Rates, rateDoc{
			Role:         r.Role,
			PricePerHour: c.amount("rate "+r.Role, r.PricePerHour),
		})
	}

	for _, m := range h.Ownership {
		doc.CodeOwnership.Models = append(doc.CodeOwnership.Models, ownershipDoc{
			Name:        m.Name,
			Description: str(m.Description),
			Multiplier:  c.amount("ownership "+m.Name, m.Multiplier),
		})
	}

	for _, p := range h.Hosting {
		hd := hostingDoc{Name: p.Name, Specs: c.specs(p.Name, p.Specs)}
		if p.Costs != nil {
			hd.Costs = &hostingCostsDoc{
				FlyioMonthly:              c.amount("hosting "+p.Name, p.Costs.FlyioMonthly),
				SiteflowManagementMonthly: c.amount("hosting "+p.Name, p.Costs.SiteflowManagementMonthly),
				TotalMonthly:              c.amount("hosting "+p.Name, p.Costs.TotalMonthly),
			}
		}
		doc.Hosting.Packages = append(doc.Hosting.Packages, hd)
	}

	for _, s := range h.Support {
		doc.Support.Packages = append(doc.Support.Packages, supportDoc{
			Name:                    s.Name,
			PriceMonthly:            c.amount("support "+s.Name, s.PriceMonthly),
			SLAResponseTime:         str(s.SLAResponseTime),
			DevelopmentHoursMonthly: c.amount("support "+s.Name, s.DevelopmentHoursMonthly),
		})
	}

	for _, s := range h.Services {
		doc.PackagedServices.Services = append(doc.PackagedServices.Services, serviceDoc{
			Name:     s.Name,
			PriceMin: c.amount("service "+s.Name, s.PriceMin),
			PriceMax: c.amount("service "+s.Name, s.PriceMax),
			Duration: str(s.Duration),
			Scope:    s.Scope,
		})
	}

	return doc, c.err
}

// hclConverter turns cty values into document values, keeping the first error
type hclConverter struct {
	err error
}

// amount converts an HCL number without passing through float64
func (c *hclConverter) amount(where string, f *big.Float) *decimal.Decimal {
	if f == nil || c.err != nil {
		return nil
	}
	d, err := decimal.NewFromString(f.Text('f', -1))
	if err != nil {
		c.err = fmt.Errorf("%s: %w", where, err)
		return nil
	}
	return &d
}

// specs converts a specs object to the same values encoding/json yields
// for the JSON layout: nested maps, lists, strings, float64 and bool.
func (c *hclConverter) specs(pkg string, v cty.Value) map[string]any {
	if v.IsNull() || c.err != nil {
		return nil
	}
	if !v.Type().IsObjectType() && !v.Type().IsMapType() {
		c.err = fmt.Errorf("hosting %q: specs must be an object", pkg)
		return nil
	}
	raw, err := ctyjson.Marshal(v, v.Type())
	if err != nil {
		c.err = fmt.Errorf("hosting %q specs: %w", pkg, err)
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		c.err = fmt.Errorf("hosting %q specs: %w", pkg, err)
		return nil
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
