// Package ingestion provides pipeline orchestration for processing book listings.
//
// The Pipeline type manages the ingestion workflow for scraped listings, including:
//   - Validating and adding listings to storage
//   - Generating embeddings asynchronously
//
// Processing is performed concurrently using a worker pool to maximize throughput.
// Errors during async processing are logged but do not fail the ingestion operation.
package ingestion
