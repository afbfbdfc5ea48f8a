package domain

// JurisdictionCode short key of a Jurisdiction
type JurisdictionCode string

const (
	Singapore          JurisdictionCode = "SG"
	UnitedArabEmirates JurisdictionCode = "AE"
	EuropeanUnion      JurisdictionCode = "EU"
)

// Jurisdiction a place with a cash declaration threshold stated in its own currency.
// Cash at or above Threshold must be declared.
type Jurisdiction struct {
	Code      JurisdictionCode
	Label     string
	Currency  Currency
	Threshold Amount
}

// Jurisdictions returns the three supported jurisdictions in display order.
// A fresh slice is returned on every call so callers cannot alter the originals.
func Jurisdictions() []Jurisdiction {
	return []Jurisdiction{
		{Code: Singapore, Label: "Singapore", Currency: SGD, Threshold: 20000},
		{Code: UnitedArabEmirates, Label: "United Arab Emirates", Currency: AED, Threshold: 60000},
		{Code: EuropeanUnion, Label: "European Union", Currency: EUR, Threshold: 10000},
	}
}
