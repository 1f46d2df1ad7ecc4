// Package dataset generates, reports on, persists and exports synthetic
// customer datasets.
//
// The Service keeps the latest generated dataset in memory so the matching
// feature can run against it. Persistence (bronze_customer_accounts,
// bronze_website_sessions) and bucket export are optional: without a
// database or object store the related endpoints answer 503 and generation
// still succeeds.
//
// # Endpoints
//
//   - POST /api/datasets: generate a dataset
//   - GET /api/datasets/latest: summaries of the latest dataset
//   - GET /api/datasets/schema: bronze table column check
//   - GET /api/datasets/exports: uploaded CSV keys of the latest dataset
//   - GET /api/datasets/exports/:file: download one uploaded CSV
package dataset
