// Command loadtest exercises the speech-processing endpoint with synthetic
// turns to measure latency under concurrent calls. It speaks the same form
// encoding the telephony provider uses, so the full turn path is measured.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var utterances = []string{
	"what are your opening hours",
	"how much does delivery cost",
	"do you take card payments",
	"आपके खुलने का समय क्या है",
	"डिलीवरी में कितना समय लगता है",
	"where is your office located",
}

type result struct {
	latency time.Duration
	err     error
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "server base URL")
	calls := flag.Int("calls", 5, "number of concurrent simulated calls")
	turns := flag.Int("turns", 4, "turns per call")
	flag.Parse()

	ctx := context.Background()
	client := &http.Client{Timeout: 30 * time.Second}

	results := make(chan result, *calls**turns)
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < *calls; i++ {
		wg.Add(1)
		go func(callNum int) {
			defer wg.Done()
			callSID := "LT" + strings.ReplaceAll(uuid.New().String(), "-", "")[:32]
			for turn := 0; turn < *turns; turn++ {
				utterance := utterances[(callNum+turn)%len(utterances)]
				elapsed, err := postTurn(ctx, client, *baseURL, callSID, utterance)
				results <- result{latency: elapsed, err: err}
			}
		}(i)
	}

	wg.Wait()
	close(results)

	var latencies []time.Duration
	failures := 0
	for r := range results {
		if r.err != nil {
			failures++
			continue
		}
		latencies = append(latencies, r.latency)
	}

	fmt.Printf("total: %d turns in %s, %d failed\n", *calls**turns, time.Since(start).Round(time.Millisecond), failures)
	if len(latencies) == 0 {
		return
	}
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })
	fmt.Printf("latency p50=%s p95=%s max=%s\n",
		percentile(latencies, 0.50).Round(time.Millisecond),
		percentile(latencies, 0.95).Round(time.Millisecond),
		latencies[len(latencies)-1].Round(time.Millisecond))
}

func postTurn(ctx context.Context, client *http.Client, baseURL, callSID, utterance string) (time.Duration, error) {
	form := url.Values{
		"CallSid":      {callSID},
		"SpeechResult": {utterance},
		"Confidence":   {"0.90"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		baseURL+"/voice/process-speech", strings.NewReader(form.Encode()))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("status %d", resp.StatusCode)
	}
	return time.Since(start), nil
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	idx := int(float64(len(sorted)-1) * p)
	return sorted[idx]
}
