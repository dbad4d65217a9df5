package ingest

import (
	"context"
	"sync"
	"time"
)

// CrawlJob is one unit of the detail crawl: a slug/label and the URL to
// fetch its detail page from.
type CrawlJob struct {
	Slug  string
	URL   string
	Label string // fallback display name if the detail fetch never succeeds
}

// CrawlResult pairs a job with either its fetched bytes or the label-only
// fallback when every retry failed.
type CrawlResult struct {
	Job      CrawlJob
	Body     []byte
	Fallback bool
	Err      error
}

// RunDetailCrawl fans CrawlJobs out across a bounded worker pool (~20
// concurrent fetches per spec §5), retrying each job up to attempts times
// before falling back to a label-only result. detailLimit caps how many jobs
// actually hit the network; jobs beyond the cap go straight to fallback
// (detailLimit <= 0 means unlimited).
func RunDetailCrawl(ctx context.Context, f *Fetcher, source string, jobs []CrawlJob, workers, attempts int, backoff time.Duration, detailLimit int) []CrawlResult {
	if workers <= 0 {
		workers = 20
	}
	results := make([]CrawlResult, len(jobs))

	jobCh := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobCh {
				job := jobs[idx]
				if detailLimit > 0 && idx >= detailLimit {
					results[idx] = CrawlResult{Job: job, Fallback: true}
					continue
				}
				body, err := f.FetchWithRetry(ctx, source, job.URL, attempts, backoff)
				if err != nil {
					results[idx] = CrawlResult{Job: job, Fallback: true, Err: err}
					continue
				}
				results[idx] = CrawlResult{Job: job, Body: body}
			}
		}()
	}

	go func() {
		defer close(jobCh)
		for i := range jobs {
			select {
			case jobCh <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return results
}
