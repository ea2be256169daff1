// Package middleware groups the HTTP middleware of the Fiber application.
//
//   - auth: API key validation, via the X-API-Key header or the api_key query
//     parameter.
//   - rayid: assigns a ray id to every request, stored in the request locals
//     and echoed in the X-Ray-ID response header.
//
// rayid is registered first so every later log line can carry the id.
package middleware
