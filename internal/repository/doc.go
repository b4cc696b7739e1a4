// Package repository defines the data access contracts for the real-estate
// catalog.
//
// One interface per record type (AgencyRepository, RealtorRepository,
// PropertyRepository) exposes insert, lookup by id, ordered listing, full
// replace update and delete. Store groups the three over a shared
// connection pool. The SQL implementation lives in the sqlstore subpackage.
//
// # Absence
//
// GetByID returns a nil record and a nil error when the id is unknown.
// Turning absence into a NotFound failure is the service layer's job.
//
// # Failures
//
// Every store failure leaves an implementation as a *domain.Error of kind
// DataAccess carrying the driver error as its cause. Callers never see raw
// driver errors.
package repository
