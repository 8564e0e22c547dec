// Package catalog - Siteflow price catalog
// Read-only reference data: hourly rates, ownership models, hosting,
// support and packaged services. Built once, never mutated.
package catalog

import (
	"github.com/shopspring/decimal"
)

// Company holds company-wide pricing parameters
type Company struct {
	Name     string          `json:"name,omitempty"`
	Currency string          `json:"currency,omitempty"`
	VATRate  decimal.Decimal `json:"vat_rate"`
}

// HourlyRate is the price of one hour for a role
type HourlyRate struct {
	Role         string          `json:"role"`
	PricePerHour decimal.Decimal `json:"price_per_hour"`
}

// OwnershipModel is a code ownership arrangement.
// Multiplier is nil for informational entries that carry no price factor.
type OwnershipModel struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Multiplier  *decimal.Decimal `json:"multiplier,omitempty"`
}

// HasMultiplier reports whether the model prices anything
func (m OwnershipModel) HasMultiplier() bool {
	return m.Multiplier != nil
}

// HostingCosts is the monthly cost breakdown of a hosting package
type HostingCosts struct {
	FlyioMonthly              decimal.Decimal `json:"flyio_monthly"`
	SiteflowManagementMonthly decimal.Decimal `json:"siteflow_management_monthly"`
	TotalMonthly              decimal.Decimal `json:"total_monthly"`
}

// HostingPackage is a hosting tier
type HostingPackage struct {
	Name  string         `json:"name"`
	Specs map[string]any `json:"specs,omitempty"`
	Costs HostingCosts   `json:"costs"`
}

// SupportPackage is a support tier
type SupportPackage struct {
	Name                    string          `json:"name"`
	PriceMonthly            decimal.Decimal `json:"price_monthly"`
	SLAResponseTime         string          `json:"sla_response_time"`
	DevelopmentHoursMonthly decimal.Decimal `json:"development_hours_monthly"`
}

// PackagedService is a fixed-scope offering
type PackagedService struct {
	Name     string          `json:"name"`
	PriceMin decimal.Decimal `json:"price_min"`
	PriceMax decimal.Decimal `json:"price_max"`
	Duration string          `json:"duration"`
	Scope    []string        `json:"scope"`
}

// Data is the full content of a catalog
type Data struct {
	Company          Company
	HourlyRates      []HourlyRate
	OwnershipModels  []OwnershipModel
	HostingPackages  []HostingPackage
	SupportPackages  []SupportPackage
	PackagedServices []PackagedService
}

// Catalog is the immutable price catalog.
// Every accessor returns copies; callers cannot reach the backing data.
type Catalog struct {
	data Data
}

// New builds a catalog from already decoded data. The input is copied.
func New(d Data) *Catalog {
	return &Catalog{data: cloneData(d)}
}

// Company returns company-wide parameters
func (c *Catalog) Company() Company {
	return c.data.Company
}

// VATRate returns the VAT rate applied to project costs
func (c *Catalog) VATRate() decimal.Decimal {
	return c.data.Company.VATRate
}

// HourlyRates returns all hourly rates in catalog order
func (c *Catalog) HourlyRates() []HourlyRate {
	return append([]HourlyRate(nil), c.data.HourlyRates...)
}

// OwnershipModels returns all ownership models in catalog order
func (c *Catalog) OwnershipModels() []OwnershipModel {
	out := make([]OwnershipModel, len(c.data.OwnershipModels))
	for i, m := range c.data.OwnershipModels {
		out[i] = cloneOwnership(m)
	}
	return out
}

// HostingPackages returns all hosting packages in catalog order
func (c *Catalog) HostingPackages() []HostingPackage {
	out := make([]HostingPackage, len(c.data.HostingPackages))
	for i, p := range c.data.HostingPackages {
		out[i] = cloneHosting(p)
	}
	return out
}

// SupportPackages returns all support packages in catalog order
func (c *Catalog) SupportPackages() []SupportPackage {
	return append([]SupportPackage(nil), c.data.SupportPackages...)
}

// PackagedServices returns all packaged services in catalog order
func (c *Catalog) PackagedServices() []PackagedService {
	out := make([]PackagedService, len(c.data.PackagedServices))
	for i, s := range c.data.PackagedServices {
		out[i] = cloneService(s)
	}
	return out
}

// HourlyRate finds the first rate for role
func (c *Catalog) HourlyRate(role string) (HourlyRate, bool) {
	for _, r := range c.data.HourlyRates {
		if r.Role == role {
			return r, true
		}
	}
	return HourlyRate{}, false
}

// OwnershipModel finds the first ownership model called name
func (c *Catalog) OwnershipModel(name string) (OwnershipModel, bool) {
	for _, m := range c.data.OwnershipModels {
		if m.Name == name {
			return cloneOwnership(m), true
		}
	}
	return OwnershipModel{}, false
}

// HostingPackage finds the first hosting package called name
func (c *Catalog) HostingPackage(name string) (HostingPackage, bool) {
	for _, p := range c.data.HostingPackages {
		if p.Name == name {
			return cloneHosting(p), true
		}
	}
	return HostingPackage{}, false
}

// SupportPackage finds the first support package called name
func (c *Catalog) SupportPackage(name string) (SupportPackage, bool) {
	for _, p := range c.data.SupportPackages {
		if p.Name == name {
			return p, true
		}
	}
	return SupportPackage{}, false
}

// PackagedService finds the first packaged service called name
func (c *Catalog) PackagedService(name string) (PackagedService, bool) {
	for _, s := range c.data.PackagedServices {
		if s.Name == name {
			return cloneService(s), true
		}
	}
	return PackagedService{}, false
}

// Stats returns entry counts per section
func (c *Catalog) Stats() Stats {
	return Stats{
		HourlyRates:      len(c.data.HourlyRates),
		OwnershipModels:  len(c.data.OwnershipModels),
		HostingPackages:  len(c.data.HostingPackages),
		SupportPackages:  len(c.data.SupportPackages),
		PackagedServices: len(c.data.PackagedServices),
	}
}

// Stats holds catalog statistics
type Stats struct {
	HourlyRates      int
	OwnershipModels  int
	HostingPackages  int
	SupportPackages  int
	PackagedServices int
}

func cloneData(d Data) Data {
	out := Data{
		Company:         d.Company,
		HourlyRates:     append([]HourlyRate(nil), d.HourlyRates...),
		SupportPackages: append([]SupportPackage(nil), d.SupportPackages...),
	}
	for _, m := range d.OwnershipModels {
		out.OwnershipModels = append(out.OwnershipModels, cloneOwnership(m))
	}
	for _, p := range d.HostingPackages {
		out.HostingPackages = append(out.HostingPackages, cloneHosting(p))
	}
	for _, s := range d.PackagedServices {
		out.PackagedServices = append(out.PackagedServices, cloneService(s))
	}
	return out
}

func cloneOwnership(m OwnershipModel) OwnershipModel {
	if m.Multiplier != nil {
		v := *m.Multiplier
		m.Multiplier = &v
	}
	return m
}

func cloneHosting(p HostingPackage) HostingPackage {
	if p.Specs != nil {
		p.Specs = cloneValue(p.Specs).(map[string]any)
	}
	return p
}

func cloneService(s PackagedService) PackagedService {
	s.Scope = append([]string(nil), s.Scope...)
	return s
}

// cloneValue deep-copies decoded hosting spec values (maps and lists of scalars)
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
