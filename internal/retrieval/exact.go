package retrieval

import (
	"context"
	"strings"

	"sentencias-rag/internal/citation"
	"sentencias-rag/internal/contextutil"
	"sentencias-rag/internal/vectorstore"
)

// ExactFetcher retrieves rulings by citation through metadata equality and
// membership filters over the collection payloads. Store failures are soft:
// they are logged and the next variant or citation is attempted, so an empty
// result always means "not found", never an error.
type ExactFetcher struct {
	store      vectorstore.VectorStore
	collection string
}

// NewExactFetcher creates an ExactFetcher over the given collection.
func NewExactFetcher(store vectorstore.VectorStore, collection string) *ExactFetcher {
	return &ExactFetcher{
		store:      store,
		collection: collection,
	}
}

// FetchOne looks up a single citation, trying its spelling variants in order.
// The first variant that returns at least one record wins; a store failure on
// a variant is swallowed and the next variant tried. Returned records carry
// no score.
func (f *ExactFetcher) FetchOne(ctx context.Context, cit string, limit int) []Record {
	logger := contextutil.LoggerFromContext(ctx)

	if limit <= 0 {
		return nil
	}

	for _, variant := range citation.Variants(cit) {
		hits, err := f.store.FetchByField(ctx, f.collection, FieldProvidencia, []string{variant}, limit)
		if err != nil {
			logger.WarnContext(ctx, "citation variant lookup failed, trying next",
				"citation", cit, "variant", variant, "error", err)
			continue
		}
		if len(hits) == 0 {
			continue
		}
		records := exactRecords(hits)
		if len(records) > limit {
			records = records[:limit]
		}
		return records
	}

	return nil
}

// FetchMany looks up several citations at once. It first tries one batched
// membership query over all citations plus their period-collapsed spellings;
// if that fails or comes back empty (some filter backends silently ignore
// membership filters), it falls back to per-citation lookup, visiting every
// citation and deduplicating by stored citation value. A record whose
// citation field is empty is deduplicated by point identity instead of being
// discarded. The result is truncated to limit.
func (f *ExactFetcher) FetchMany(ctx context.Context, citations []string, limit int) []Record {
	logger := contextutil.LoggerFromContext(ctx)

	if len(citations) == 0 || limit <= 0 {
		return nil
	}

	values := make([]string, 0, len(citations)*2)
	seen := make(map[string]bool, len(citations)*2)
	add := func(v string) {
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	for _, c := range citations {
		add(c)
	}
	for _, c := range citations {
		if strings.Contains(c, ". ") {
			add(strings.ReplaceAll(c, ". ", "."))
		}
	}

	hits, err := f.store.FetchByField(ctx, f.collection, FieldProvidencia, values, limit)
	if err != nil {
		logger.WarnContext(ctx, "batched citation lookup failed, falling back to per-citation lookup",
			"citations", citations, "error", err)
	} else if len(hits) > 0 {
		records := exactRecords(hits)
		if len(records) > limit {
			records = records[:limit]
		}
		return records
	}

	seenKeys := make(map[string]bool)
	var out []Record
	for _, c := range citations {
		for _, rec := range f.FetchOne(ctx, c, limit) {
			key := rec.Providencia()
			if key == "" {
				key = rec.ID
			}
			if seenKeys[key] {
				continue
			}
			seenKeys[key] = true
			out = append(out, rec)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// exactRecords maps filter hits to records with nil scores.
func exactRecords(hits []vectorstore.SearchResult) []Record {
	records := make([]Record, 0, len(hits))
	for _, h := range hits {
		records = append(records, Record{ID: h.PointID, Meta: h.Meta})
	}
	return records
}
