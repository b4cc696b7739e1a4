// Package handler implements the REST API of the real-estate catalog.
//
// # Routes
//
//	GET    /api/{agencies|realtors|properties}
//	POST   /api/{agencies|realtors|properties}
//	GET    /api/{agencies|realtors|properties}/{id}
//	PUT    /api/{agencies|realtors|properties}/{id}
//	DELETE /api/{agencies|realtors|properties}/{id}
//	GET    /api/properties?city=&min_price=&max_price=&sort=price
//	GET    /api/properties/{id}/commission?kind=house|apartment
//	GET    /api/export?format=json|yaml
//	POST   /api/import?format=json|yaml
//	GET    /events     (Server-Sent Events)
//	GET    /healthz
//	GET    /metrics    (Prometheus)
//
// # Response Format
//
// Reads return the record or list as JSON. Writes return
// {"success": true, "message": ...}; a create also carries the new id.
// Failures return {"success": false, "error": ...} with 400 for invalid
// input or a malformed id, 404 for an unknown id and 500 for store or
// internal failures. 500s are logged with their cause.
package handler
