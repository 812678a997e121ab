package importer

// CarrierRecord is one normalized carrier row, ready to persist.
// Pointer fields are nullable columns; nil maps to SQL NULL.
type CarrierRecord struct {
	Name              string
	ContactPerson     *string
	Phone             *string
	Email             *string
	MCNumber          *string
	DOTNumber         *string
	Status            string
	SafetyRating      *string
	TaxID             *string
	CarrierType       *string
	StreetAddress1    *string
	StreetAddress2    *string
	City              *string
	State             *string
	ZipCode           *string
	RemittanceContact *string
	RemittanceEmail   *string
	FactoringCompany  *string

	// OnboardingComplete is derived at write time: true iff Status is
	// ONBOARDED.
	OnboardingComplete bool
}

// RouteRecord is one normalized linehaul route row.
// Distance always equals Miles; the schema keeps both columns.
type RouteRecord struct {
	Name          *string
	Origin        *string
	Destination   *string
	Distance      float64
	Miles         float64
	Active        bool
	DepartureTime *string
	ArrivalTime   *string
}

// LocationAddress is the address payload for one terminal location key.
// It is never persisted directly; it drives the generated enrichment
// statements against already-loaded routes.
type LocationAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipcode"`
}
