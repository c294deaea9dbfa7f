package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-roadmap/models/career"
)

func testPath(n int) career.CareerPath {
	p := career.CareerPath{Key: "test_path", Title: "Test Path"}
	for i := 1; i <= n; i++ {
		p.Phases = append(p.Phases, career.PhaseTemplate{
			Name:        fmt.Sprintf("Phase%d", i),
			Description: fmt.Sprintf("description %d", i),
		})
	}
	return p
}

func TestPhaseDurations(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		numPhases int
		want      []int
	}{
		{name: "remainder two of six", total: 14, numPhases: 6, want: []int{3, 3, 2, 2, 2, 2}},
		{name: "one month each", total: 6, numPhases: 6, want: []int{1, 1, 1, 1, 1, 1}},
		{name: "remainder two of five", total: 12, numPhases: 5, want: []int{3, 3, 2, 2, 2}},
		{name: "even split", total: 12, numPhases: 6, want: []int{2, 2, 2, 2, 2, 2}},
		{name: "single phase", total: 7, numPhases: 1, want: []int{7}},
		{name: "remainder one short of full", total: 11, numPhases: 6, want: []int{2, 2, 2, 2, 2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PhaseDurations(tt.total, tt.numPhases)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("PhaseDurations(%d, %d) mismatch (-want +got):\n%s", tt.total, tt.numPhases, diff)
			}
		})
	}
}

func TestPhaseDurationsProperties(t *testing.T) {
	for numPhases := 1; numPhases <= 8; numPhases++ {
		for total := numPhases; total <= 60; total++ {
			got, err := PhaseDurations(total, numPhases)
			require.NoError(t, err, "total=%d phases=%d", total, numPhases)
			require.Len(t, got, numPhases)

			base, remainder := total/numPhases, total%numPhases
			sum, lo, hi := 0, got[0], got[0]
			for i, d := range got {
				sum += d
				lo, hi = min(lo, d), max(hi, d)
				want := base
				if i < remainder {
					want++
				}
				assert.Equal(t, want, d, "total=%d phases=%d index=%d", total, numPhases, i)
			}
			assert.Equal(t, total, sum, "total=%d phases=%d", total, numPhases)
			assert.LessOrEqual(t, hi-lo, 1, "total=%d phases=%d", total, numPhases)
			assert.GreaterOrEqual(t, lo, 1, "total=%d phases=%d", total, numPhases)
		}
	}
}

func TestPhaseDurationsRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		numPhases int
	}{
		{name: "zero months", total: 0, numPhases: 6},
		{name: "negative months", total: -3, numPhases: 6},
		{name: "zero phases", total: 12, numPhases: 0},
		{name: "negative phases", total: 12, numPhases: -1},
		{name: "fewer months than phases", total: 5, numPhases: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PhaseDurations(tt.total, tt.numPhases)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, ErrInvalidDuration))

			var durErr *InvalidDurationError
			require.True(t, errors.As(err, &durErr))
			assert.Equal(t, tt.total, durErr.TotalMonths)
			assert.Equal(t, tt.numPhases, durErr.NumPhases)
			assert.NotEmpty(t, durErr.Reason)
		})
	}
}

func TestBuildRoadmapRanges(t *testing.T) {
	tests := []struct {
		name   string
		total  int
		phases int
		ranges [][2]int
	}{
		{name: "14 over 6", total: 14, phases: 6, ranges: [][2]int{{1, 3}, {4, 6}, {7, 8}, {9, 10}, {11, 12}, {13, 14}}},
		{name: "6 over 6", total: 6, phases: 6, ranges: [][2]int{{1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}, {6, 6}}},
		{name: "12 over 5", total: 12, phases: 5, ranges: [][2]int{{1, 3}, {4, 6}, {7, 8}, {9, 10}, {11, 12}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testPath(tt.phases)
			roadmap, err := BuildRoadmap(path, tt.total)
			require.NoError(t, err)

			assert.Equal(t, path.Key, roadmap.Key)
			assert.Equal(t, path.Title, roadmap.Title)
			assert.Equal(t, tt.total, roadmap.TotalMonths)

			got := make([][2]int, 0, len(roadmap.Phases))
			for i, p := range roadmap.Phases {
				got = append(got, [2]int{p.StartMonth, p.EndMonth})
				assert.Equal(t, path.Phases[i].Name, p.Name)
				assert.Equal(t, path.Phases[i].Description, p.Description)
				assert.Equal(t, p.EndMonth-p.StartMonth+1, p.Duration)
			}
			if diff := cmp.Diff(tt.ranges, got); diff != "" {
				t.Fatalf("ranges mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildRoadmapContiguous(t *testing.T) {
	for phases := 1; phases <= 7; phases++ {
		path := testPath(phases)
		for total := phases; total <= 48; total++ {
			roadmap, err := BuildRoadmap(path, total)
			require.NoError(t, err)
			require.Len(t, roadmap.Phases, phases)

			assert.Equal(t, 1, roadmap.Phases[0].StartMonth)
			assert.Equal(t, total, roadmap.Phases[phases-1].EndMonth)
			sum := 0
			for i, p := range roadmap.Phases {
				sum += p.Duration
				if i > 0 {
					assert.Equal(t, roadmap.Phases[i-1].EndMonth+1, p.StartMonth, "total=%d phase=%d", total, i)
				}
			}
			assert.Equal(t, total, sum)
		}
	}
}

func TestBuildRoadmapIdempotent(t *testing.T) {
	path := testPath(6)
	first, err := BuildRoadmap(path, 17)
	require.NoError(t, err)
	second, err := BuildRoadmap(path, 17)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated build differs (-first +second):\n%s", diff)
	}
}

func TestBuildRoadmapRejectsShortDuration(t *testing.T) {
	_, err := BuildRoadmap(testPath(6), 4)
	require.ErrorIs(t, err, ErrInvalidDuration)
	assert.Contains(t, err.Error(), "at least 6 months")

	_, err = BuildRoadmap(career.CareerPath{Key: "empty", Title: "Empty"}, 4)
	require.ErrorIs(t, err, ErrInvalidDuration)
}

func TestMonthRange(t *testing.T) {
	assert.Equal(t, "Month 4", career.ScheduledPhase{StartMonth: 4, EndMonth: 4}.MonthRange())
	assert.Equal(t, "Months 1-3", career.ScheduledPhase{StartMonth: 1, EndMonth: 3}.MonthRange())
}
