package mining

import (
	"testing"

	"github.com/osse101/PrintMiner_Go/internal/catalog"
	"github.com/osse101/PrintMiner_Go/internal/utils"
)

func BenchmarkSessionRun(b *testing.B) {
	cat := catalog.Default()
	rng := utils.NewRoller(1)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p := newMiner(cat)
		s, err := NewSession(cat, p, rng)
		if err != nil {
			b.Fatal(err)
		}
		s.Run(p)
	}
}
