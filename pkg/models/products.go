package models

// ProductCatalog maps the billing collaborator's product ids to the wallet
// amounts they grant. Unrecognized product ids are rejected at claim time.
type ProductCatalog map[string]int64

// DefaultProductCatalog is the product default, overridable via
// configuration.
func DefaultProductCatalog() ProductCatalog {
	return ProductCatalog{
		"date_credit_1": 1 * CreditCents,
		"date_credit_3": 3 * CreditCents,
	}
}
