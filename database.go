// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package finepress

import (
	"io"
	"log/slog"

	"github.com/poiesic/finepress/ai"
	"github.com/poiesic/finepress/ai/openai"
	"github.com/poiesic/finepress/ingestion"
	"github.com/poiesic/finepress/reembed"
	"github.com/poiesic/finepress/search"
	"github.com/poiesic/finepress/storage"
	"github.com/poiesic/finepress/storage/badger"
)

type Database struct {
	backend     *badger.Backend
	listingRepo storage.ListingRepository
	embedder    ai.Embedder
	logger      *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
}

// WithAIConfig sets the embedding service configuration.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	// Create listing repository
	listingRepo, err := badger.NewListingRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create embedder with configured settings
	embedder, err := openai.NewEmbedder(options.aiConfig)
	if err != nil {
		listingRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:     backend,
		listingRepo: listingRepo,
		embedder:    embedder,
		logger:      slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	if err := db.listingRepo.Close(); err != nil {
		db.logger.Error("error closing listing repository", "err", err)
		return err
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) ListingRepository() storage.ListingRepository {
	return db.listingRepo
}

func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(db.listingRepo, db.embedder, opts...)
}

func (db *Database) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(db.listingRepo, db.embedder, opts...)
}

func (db *Database) NewReembedder(config *reembed.Config, progress io.Writer) *reembed.Reembedder {
	return reembed.NewReembedder(db.listingRepo, db.embedder, config, progress)
}
