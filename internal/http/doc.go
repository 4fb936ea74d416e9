// Package http provides an optional admin API for translation bookkeeping.
//
// Routes mount under /admin/api:
//   - Translations: GET /translations/{kind}/{id}
//   - Ensure:       POST /translations/{kind}/{id}, POST /translations/{kind}/{id}/{locale}
//
// {kind} accepts node, taxonomy_term, taxonomy and term. Host applications can
// register the handlers on their own mux.
package http
