// Package service implements the use cases of the real-estate catalog.
//
// AgencyService, RealtorService and PropertyService each wrap one
// repository. Every operation checks its input first (id must be positive,
// payload must be present and valid) and only then touches the store. A
// missing record becomes a NotFound error here; the repository reports
// absence without an error. Failures that are not already part of the
// domain taxonomy are reported as Internal.
//
// # Event System
//
// Successful creates, updates and deletes publish an Event on the EventBus.
// The SSE hub and the Redis broker subscribe to it. Publishing never blocks:
// a subscriber whose channel is full misses the event.
//
// # Portfolio
//
// Portfolio exports the catalog to a codec.Snapshot and imports one back by
// creating each record through the services.
package service
