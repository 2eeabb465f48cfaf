package hashing

import "testing"

var benchFENPositions = map[string]string{
	"Initial":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
}

func BenchmarkZobrist(b *testing.B) {
	for name, s := range benchFENPositions {
		b.Run(name, func(b *testing.B) {
			g := gameFromFEN(b, s)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Zobrist(g)
			}
		})
	}
}

func BenchmarkThreadSafeTable_Parallel(b *testing.B) {
	table := NewThreadSafeTable(1 << 16)
	b.RunParallel(func(pb *testing.PB) {
		var i uint64
		for pb.Next() {
			table.Store(i&0xFFFF, 1, i)
			table.Lookup(i&0xFFFF, 1)
			i++
		}
	})
}
