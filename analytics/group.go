package analytics

import "github.com/rustyeddy/gltrades/ledger"

// bucket accumulates one report group.
type bucket struct {
	pl    float64
	count int
	wins  int
}

func (b *bucket) mean() float64 {
	if b.count == 0 {
		return 0
	}
	return b.pl / float64(b.count)
}

func (b *bucket) winRate() float64 {
	if b.count == 0 {
		return 0
	}
	return float64(b.wins) / float64(b.count) * 100
}

// groups holds report buckets keyed by label, with the key order fixed at
// first occurrence. Reports derive their series from this order (or re-sort
// it), never from map iteration.
type groups struct {
	order []string
	by    map[string]*bucket
}

// groupTrades fans each trade out to the keys keyFn returns and accumulates
// per-key P/L, count and wins. A trade mapping to N keys contributes to all
// N buckets (the tag report); a trade mapping to zero keys is dropped (the
// weekend and no-timestamp filters). Keys that never occur produce no
// bucket, so empty groups are simply absent.
func groupTrades(trades []ledger.Trade, keyFn func(ledger.Trade) []string) groups {
	g := groups{by: make(map[string]*bucket)}

	for _, t := range trades {
		for _, key := range keyFn(t) {
			b, ok := g.by[key]
			if !ok {
				b = &bucket{}
				g.by[key] = b
				g.order = append(g.order, key)
			}
			b.pl += t.PL
			b.count++
			if t.PL > 0 {
				b.wins++
			}
		}
	}
	return g
}
