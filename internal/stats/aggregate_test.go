package stats

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happyrussia/mood-api/internal/domain"
)

func TestAggregate_NamelessBucketDropped(t *testing.T) {
	rows := []domain.CheckIn{
		checkIn("c1", "77", "", "u1", 5, testNow.Add(-time.Hour)),
		checkIn("c2", "78", "Санкт-Петербург", "u2", 3, testNow.Add(-time.Hour)),
	}
	svc := newTestService(rows, nil)

	entries, err := svc.RegionRanking(context.Background(), PeriodDay)
	require.NoError(t, err)
	require.Len(t, entries, 1, "bucket without a resolvable name is dropped silently")
	assert.Equal(t, "78", entries[0].ID)
}

func TestRoundToTwoDecimals(t *testing.T) {
	tests := []struct {
		value float64
		want  float64
	}{
		{0, 0},
		{4.333333, 4.33},
		{4.335, 4.34},
		{4.995, 5.0},
		{3.2, 3.2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, roundToTwoDecimals(tt.value))
	}
}

func BenchmarkRegionRanking(b *testing.B) {
	regions := []struct{ id, name string }{
		{"77", "Москва"},
		{"78", "Санкт-Петербург"},
		{"66", "Свердловская область"},
		{"54", "Новосибирская область"},
	}
	rows := make([]domain.CheckIn, 0, 10000)
	for i := 0; i < 10000; i++ {
		r := regions[i%len(regions)]
		rows = append(rows, domain.CheckIn{
			ID:         fmt.Sprintf("c%d", i),
			RegionID:   r.id,
			RegionName: r.name,
			Mood:       1 + i%5,
			Date:       testNow.Add(-time.Duration(i%23) * time.Hour),
			UserID:     fmt.Sprintf("user%d", i%997),
		})
	}
	svc := newTestService(rows, nil)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.RegionRanking(ctx, PeriodDay); err != nil {
			b.Fatalf("region ranking: %v", err)
		}
	}
}
