package importer

// Target-table statements. Values are always bound parameters; the only
// textual SQL this program produces is the reviewable enrichment script in
// addresses.go, which applies its own quote-doubling.
const (
	// insertCarrierSQL is idempotent on the mcNumber unique key: a
	// previously-seen mcNumber is a silent no-op (0 rows affected),
	// not an error.
	insertCarrierSQL = `
		INSERT INTO carriers (
			name, "contactPerson", phone, email, "mcNumber", "dotNumber",
			status, "safetyRating", "taxId", "carrierType", "streetAddress1",
			"streetAddress2", city, state, "zipCode", "remittanceContact",
			"remittanceEmail", "factoringCompany", "onboardingComplete",
			"createdAt", "updatedAt"
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT ("mcNumber") DO NOTHING`

	// clearRoutesSQL empties the routes table before a full-replace load.
	clearRoutesSQL = `DELETE FROM routes`

	insertRouteSQL = `
		INSERT INTO routes (
			name, origin, destination, distance, miles, active,
			"departureTime", "arrivalTime", "createdAt", "updatedAt"
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
)
