// Package domain defines the records and rules of the real-estate catalog.
//
// # Records
//
// Agency, Realtor and Property are plain values identified by an integer
// primary key assigned by the store on insert. A record with ID 0 has not
// been persisted. Two records are the same record when their IDs match
// (see the Same methods); field values do not take part in identity.
//
// # Validation
//
// RequireNonBlank, RequirePositive and RequireID are the only input rules.
// Each record's Validate method applies them to its own fields and treats a
// nil record as a missing payload.
//
// # Errors
//
// Every failure that leaves the repository or service layers is an *Error
// with one of four kinds: InvalidInput, NotFound, DataAccess or Internal.
// Use errors.Is with ErrInvalidInput, ErrNotFound, ErrDataAccess or
// ErrInternal to branch on the kind, and Message to get the text that is
// safe to show to a caller.
//
// # Listings
//
// PropertyFilter and FilterProperties narrow a property listing by city and
// price range. PropertyKind and Commission compute what a realtor earns on
// a sale.
//
// The package has no database or transport dependencies.
package domain
