package model

import "strings"

type Address struct {
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
	Locality   string `json:"locality"`
	Province   string `json:"province"`
}

func (a Address) String() string {
	parts := make([]string, 0, 3)
	if s := strings.TrimSpace(a.Street); s != "" {
		parts = append(parts, s)
	}
	city := strings.TrimSpace(strings.TrimSpace(a.PostalCode) + " " + strings.TrimSpace(a.Locality))
	if city != "" {
		parts = append(parts, city)
	}
	if s := strings.TrimSpace(a.Province); s != "" && !strings.EqualFold(s, strings.TrimSpace(a.Locality)) {
		parts = append(parts, "("+s+")")
	}
	return strings.Join(parts, ", ")
}

// Party is a buyer, seller or issuing company. For companies Name holds the
// legal representative and NationalID the representative's ID.
type Party struct {
	Name        string  `json:"name"`
	NationalID  string  `json:"national_id"`
	IsCompany   bool    `json:"is_company"`
	CompanyName string  `json:"company_name"`
	TaxID       string  `json:"tax_id"`
	Address     Address `json:"address"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
}

// DisplayName is the name a document uses to refer to the party.
func (p Party) DisplayName() string {
	if p.IsCompany && strings.TrimSpace(p.CompanyName) != "" {
		return strings.TrimSpace(p.CompanyName)
	}
	return strings.TrimSpace(p.Name)
}

// LegalID is the tax ID for companies and the national ID otherwise.
func (p Party) LegalID() string {
	if p.IsCompany && strings.TrimSpace(p.TaxID) != "" {
		return strings.TrimSpace(p.TaxID)
	}
	return strings.TrimSpace(p.NationalID)
}
