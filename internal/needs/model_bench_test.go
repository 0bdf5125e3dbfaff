package needs

import (
	"testing"
	"time"

	"github.com/osse101/WhineTime/internal/domain"
)

func BenchmarkModel_Advance(b *testing.B) {
	m := New(map[domain.Need]float64{
		domain.NeedHunger:      50,
		domain.NeedCleanliness: 50,
		domain.NeedComfort:     50,
		domain.NeedSleepiness:  50,
	})
	rates := Rates{
		domain.NeedHunger:      8,
		domain.NeedCleanliness: -4,
		domain.NeedComfort:     -2,
		domain.NeedSleepiness:  3,
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Advance(time.Minute, rates)
	}
}
