// Package ngrams counts the most frequent instruction sequences of the
// code regions of a ROM.
package ngrams

import (
	"cmp"
	"context"
	"encoding/binary"
	"fmt"
	"runtime"
	"slices"

	"github.com/retroenv/n64analyser/internal/arch/mips"
	"github.com/retroenv/n64analyser/internal/program"
	"github.com/retroenv/n64analyser/internal/rom"
	"github.com/retroenv/retrogolib/set"
	"golang.org/x/sync/errgroup"
)

// cutoffDivisor limits the summary to sequences that occur at least
// 1/cutoffDivisor times as often as the most frequent sequence.
const cutoffDivisor = 5

// key encodes a sequence of instruction IDs as a map key.
type key string

func makeKey(ids []mips.ID) key {
	buf := make([]byte, 2*len(ids))
	for i, id := range ids {
		binary.BigEndian.PutUint16(buf[2*i:], uint16(id))
	}
	return key(buf)
}

func (k key) ids() []mips.ID {
	ids := make([]mips.ID, len(k)/2)
	for i := range ids {
		ids[i] = mips.ID(binary.BigEndian.Uint16([]byte(k[2*i:])))
	}
	return ids
}

// Summarize counts all instruction ID sequences of length n in the regions
// and returns the most frequent ones. Regions are processed in parallel.
func Summarize(ctx context.Context, data []byte, regions []program.Region, n int) (*program.NGramSummary, error) {
	if n <= 0 {
		return nil, fmt.Errorf("invalid n-gram length %d", n)
	}

	counts := make([]map[key]int, len(regions))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, region := range regions {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("counting n-grams: %w", err)
			}
			counts[i] = countRegion(data, region, n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := map[key]int{}
	for _, regionCounts := range counts {
		for k, count := range regionCounts {
			merged[k] += count
		}
	}

	summary := &program.NGramSummary{N: n}
	for _, region := range regions {
		summary.Instructions += region.Size() / rom.InstructionSize
	}

	all := make([]program.NGram, 0, len(merged))
	seen := set.New[mips.ID]()
	for k, count := range merged {
		ids := k.ids()
		for _, id := range ids {
			if !seen.Contains(id) {
				seen.Add(id)
				summary.Distinct++
			}
		}
		all = append(all, program.NGram{Sequence: ids, Count: count})
	}
	sortNGrams(all)
	summary.NGrams = mostFrequent(all)
	return summary, nil
}

func countRegion(data []byte, region program.Region, n int) map[key]int {
	end := min(region.RomEnd, len(data))
	var ids []mips.ID
	for offset := region.RomStart; offset+rom.InstructionSize <= end; offset += rom.InstructionSize {
		ids = append(ids, mips.Decode(rom.ReadWord(data, offset), mips.CPU).ID())
	}

	counts := map[key]int{}
	for i := 0; i+n <= len(ids); i++ {
		counts[makeKey(ids[i:i+n])]++
	}
	return counts
}

// sortNGrams sorts by descending count, equal counts by sequence.
func sortNGrams(ngrams []program.NGram) {
	slices.SortFunc(ngrams, func(a, b program.NGram) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return slices.Compare(a.Sequence, b.Sequence)
	})
}

// mostFrequent returns the leading n-grams of a sorted list that reach the
// cutoff relative to the most frequent one.
func mostFrequent(ngrams []program.NGram) []program.NGram {
	if len(ngrams) == 0 {
		return nil
	}
	cutoff := ngrams[0].Count / cutoffDivisor
	for i, ngram := range ngrams {
		if ngram.Count < cutoff {
			return ngrams[:i]
		}
	}
	return ngrams
}
