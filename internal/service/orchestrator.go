package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"news_engine/internal/config"
	"news_engine/internal/domain"
	"news_engine/internal/fingerprint"
)

// Orchestrator answers "get content for locale X" by composing cache check,
// fetch, enrichment and persistence. Its user-facing contract is "show
// something": content-retrieval failures degrade to cached or mirrored data
// and finally to an empty result, never to an error for a feed that has
// anything at all to show.
type Orchestrator struct {
	source     ContentSource
	summarizer Summarizer
	cache      ContentCache
	local      LocalStore
	backend    RemoteBackend
	txManager  TransactionManager
	publisher  Publisher
	logger     *slog.Logger
	config     config.CacheConfig
	now        func() time.Time
}

func NewOrchestrator(
	source ContentSource,
	summarizer Summarizer,
	cache ContentCache,
	local LocalStore,
	backend RemoteBackend,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.CacheConfig,
) *Orchestrator {
	return &Orchestrator{
		source:     source,
		summarizer: summarizer,
		cache:      cache,
		local:      local,
		backend:    backend,
		txManager:  txManager,
		publisher:  publisher,
		logger:     logger.With("component", "orchestrator"),
		config:     cfg,
		now:        time.Now,
	}
}

// GetNews returns one page of content for a locale and tab. Cache-first: a
// page fully covered by fresh cached records is served without a fetch.
func (o *Orchestrator) GetNews(ctx context.Context, locale domain.Locale, tab domain.Tab, page int) ([]domain.ContentRecord, error) {
	if page < 1 {
		page = 1
	}
	limit := o.config.PageSize

	records, ok := o.checkCache(ctx, locale, page, limit)
	if ok {
		return o.rank(ctx, tab, records), nil
	}

	result, err := o.source.Search(ctx, locale, page, limit)
	if err != nil {
		o.logger.Warn("fetch failed, serving cached content",
			"city", locale.City, "error", err)
		return o.serveFallback(ctx, locale, tab, page, limit), nil
	}

	enriched := o.enrich(ctx, locale, result.Items)

	if err := o.persist(ctx, locale, enriched); err != nil {
		// The fetched records are still good; serve them even if the cache
		// write failed.
		o.logger.Error("persist failed", "city", locale.City, "error", err)
	}

	return o.rank(ctx, tab, enriched), nil
}

func (o *Orchestrator) checkCache(ctx context.Context, locale domain.Locale, page, limit int) ([]domain.ContentRecord, bool) {
	count, err := o.cache.CountFresh(ctx, locale)
	if err != nil {
		o.logger.Warn("cache count failed", "city", locale.City, "error", err)
		return nil, false
	}
	// The page must be fully covered by fresh records; partial coverage
	// triggers a fetch.
	if count < page*limit {
		return nil, false
	}

	records, err := o.cache.QueryFresh(ctx, locale, page, limit)
	if err != nil {
		o.logger.Warn("cache query failed", "city", locale.City, "error", err)
		return nil, false
	}
	if len(records) == 0 {
		return nil, false
	}

	o.logger.Debug("served from cache", "city", locale.City, "records", len(records))
	return records, true
}

func (o *Orchestrator) enrich(ctx context.Context, locale domain.Locale, items []domain.SourceItem) []domain.ContentRecord {
	expiresAt := o.now().Add(o.config.ContentTTL)

	records := make([]domain.ContentRecord, 0, len(items))
	for _, item := range items {
		record := domain.ContentRecord{
			Fingerprint: fingerprint.Fingerprint(item.URL),
			Title:       item.Title,
			SourceName:  item.SourceName,
			SourceURL:   item.URL,
			City:        locale.City,
			Country:     locale.Country,
			PublishedAt: item.PublishedAt,
			ExpiresAt:   expiresAt,
		}
		if item.Content != "" {
			body := item.Content
			record.Body = &body
		}
		if item.Image != "" {
			image := item.Image
			record.ImageURL = &image
		}
		if summary := o.summarizer.Summarize(ctx, item.Content); summary != "" {
			record.Summary = &summary
		}
		records = append(records, record)
	}

	return records
}

func (o *Orchestrator) persist(ctx context.Context, locale domain.Locale, records []domain.ContentRecord) error {
	if len(records) == 0 {
		return nil
	}

	err := o.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for i := range records {
			if err := o.cache.Upsert(txCtx, &records[i]); err != nil {
				return fmt.Errorf("upsert %s: %w", records[i].Fingerprint, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Mirror for offline reads.
	if err := o.local.PutContent(ctx, records); err != nil {
		return fmt.Errorf("mirror content: %w", err)
	}

	if o.publisher != nil {
		fingerprints := make([]string, len(records))
		for i := range records {
			fingerprints[i] = records[i].Fingerprint
		}
		if err := o.publisher.PublishRefresh(ctx, locale, fingerprints); err != nil {
			o.logger.Warn("publish refresh failed", "city", locale.City, "error", err)
		}
	}

	return nil
}

// serveFallback is the degraded read path when the provider is down: cached
// records even if near expiry, then the offline mirror, then an empty page.
func (o *Orchestrator) serveFallback(ctx context.Context, locale domain.Locale, tab domain.Tab, page, limit int) []domain.ContentRecord {
	records, err := o.cache.QueryAny(ctx, locale, page, limit)
	if err != nil {
		o.logger.Warn("fallback cache query failed", "city", locale.City, "error", err)
	}
	if len(records) > 0 {
		return o.rank(ctx, tab, records)
	}

	records, err = o.local.ListContent(ctx, locale, page, limit)
	if err != nil {
		o.logger.Warn("fallback mirror query failed", "city", locale.City, "error", err)
		return []domain.ContentRecord{}
	}
	if records == nil {
		records = []domain.ContentRecord{}
	}
	return o.rank(ctx, tab, records)
}

func (o *Orchestrator) rank(ctx context.Context, tab domain.Tab, records []domain.ContentRecord) []domain.ContentRecord {
	switch tab {
	case domain.TabTrending:
		return o.rankTrending(ctx, records)
	case domain.TabForYou:
		return o.rankForYou(ctx, records)
	default:
		return rankLatest(records)
	}
}

func rankLatest(records []domain.ContentRecord) []domain.ContentRecord {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].PublishedAt.After(records[j].PublishedAt)
	})
	return records
}

func (o *Orchestrator) rankTrending(ctx context.Context, records []domain.ContentRecord) []domain.ContentRecord {
	fingerprints := make([]string, len(records))
	for i := range records {
		fingerprints[i] = records[i].Fingerprint
	}

	counts, err := o.backend.LikeCounts(ctx, fingerprints)
	if err != nil {
		o.logger.Warn("like counts unavailable, falling back to recency", "error", err)
		return rankLatest(records)
	}

	sort.SliceStable(records, func(i, j int) bool {
		ci, cj := counts[records[i].Fingerprint], counts[records[j].Fingerprint]
		if ci != cj {
			return ci > cj
		}
		return records[i].PublishedAt.After(records[j].PublishedAt)
	})
	return records
}

// rankForYou biases ordering toward content and sources the user recently
// interacted with. Anonymous or history-less users get latest behavior.
func (o *Orchestrator) rankForYou(ctx context.Context, records []domain.ContentRecord) []domain.ContentRecord {
	history, err := o.local.RecentInteractions(ctx, 50)
	if err != nil {
		o.logger.Warn("interaction history unavailable", "error", err)
		return rankLatest(records)
	}
	if len(history) == 0 {
		return rankLatest(records)
	}

	byFingerprint := make(map[string]int)
	for _, in := range history {
		if in.Type == domain.InteractionUnlike {
			continue
		}
		byFingerprint[in.Fingerprint]++
	}

	bySource := make(map[string]int)
	for i := range records {
		if n := byFingerprint[records[i].Fingerprint]; n > 0 {
			bySource[records[i].SourceName] += n
		}
	}

	score := func(r *domain.ContentRecord) int {
		return byFingerprint[r.Fingerprint]*2 + bySource[r.SourceName]
	}

	sort.SliceStable(records, func(i, j int) bool {
		si, sj := score(&records[i]), score(&records[j])
		if si != sj {
			return si > sj
		}
		return records[i].PublishedAt.After(records[j].PublishedAt)
	})
	return records
}
