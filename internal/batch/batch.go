// Package batch parses many git remote URLs concurrently.
package batch

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/quantmind-br/giturl-go/internal/utils"
	"github.com/quantmind-br/giturl-go/pkg/giturl"
)

// Result is the outcome of parsing one input line
type Result struct {
	Input string
	URL   *giturl.GitURL
	Err   error
}

// Options configures a batch run
type Options struct {
	// Workers is the number of concurrent parsers; values < 1 mean 1
	Workers int
	// SkipParts is forwarded to giturl.ParseWithSkips for every input
	SkipParts int
	// Progress, when non-nil, receives a progress bar during the run
	Progress io.Writer
	// Log receives per-input debug logging; nil disables logging
	Log *utils.Logger
}

// Run parses every input concurrently and returns results in input order.
// A failed input produces a Result with Err set; Run itself only fails when
// the context is cancelled.
func Run(ctx context.Context, inputs []string, opts Options) ([]Result, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(inputs) {
		workers = len(inputs)
	}

	results := make([]Result, len(inputs))
	if len(inputs) == 0 {
		return results, ctx.Err()
	}

	var bar interface{ Add(int) error }
	if opts.Progress != nil {
		bar = utils.NewProgressBar(opts.Progress, len(inputs), "Parsing")
	}

	taskChan := make(chan int, len(inputs))
	var wg sync.WaitGroup
	var mu sync.Mutex

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case idx, ok := <-taskChan:
					if !ok {
						return
					}
					input := inputs[idx]
					parsed, err := giturl.ParseWithSkips(input, opts.SkipParts)
					if opts.Log != nil {
						if err != nil {
							opts.Log.Debug().Str("url", input).Err(err).Msg("parse failed")
						} else {
							opts.Log.Debug().Str("url", input).Str("fullname", parsed.Fullname).Msg("parsed")
						}
					}
					mu.Lock()
					results[idx] = Result{Input: input, URL: parsed, Err: err}
					if bar != nil {
						_ = bar.Add(1)
					}
					mu.Unlock()
				}
			}
		}()
	}

	for i := range inputs {
		select {
		case <-ctx.Done():
			close(taskChan)
			wg.Wait()
			return results, ctx.Err()
		case taskChan <- i:
		}
	}

	close(taskChan)
	wg.Wait()

	return results, ctx.Err()
}

// ReadLines collects non-empty, non-comment lines from r, one URL per line
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// FailedCount returns how many results carry an error
func FailedCount(results []Result) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	return failed
}
