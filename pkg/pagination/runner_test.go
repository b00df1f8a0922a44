package pagination

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type scriptedFetch struct {
	pages []Page[int]
	errAt int
	err   error
	calls []Query
}

func (s *scriptedFetch) fetch(_ context.Context, q Query) (Page[int], error) {
	s.calls = append(s.calls, q)
	idx := len(s.calls) - 1
	if s.err != nil && idx == s.errAt {
		return Page[int]{}, s.err
	}
	return s.pages[idx], nil
}

func TestCollect(t *testing.T) {
	ctx := context.Background()
	q := Query{
		InitialDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		FinalDate:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	t.Run("walks every page in order", func(t *testing.T) {
		s := &scriptedFetch{pages: []Page[int]{
			{Items: []int{1, 2}, CurrentPage: Int(1), TotalPages: Int(2)},
			{Items: []int{3}, CurrentPage: Int(2), TotalPages: Int(2)},
		}}

		got, err := Collect(ctx, q, s.fetch)

		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 3}, got)
		require.Len(t, s.calls, 2)
		require.Nil(t, s.calls[0].Page)
		require.Equal(t, 2, *s.calls[1].Page)
		require.Equal(t, q.InitialDate, s.calls[1].InitialDate)
	})

	t.Run("missing metadata stops after one call", func(t *testing.T) {
		s := &scriptedFetch{pages: []Page[int]{
			{Items: []int{1, 2, 3, 4, 5}},
			{Items: []int{6}},
		}}

		got, err := Collect(ctx, q, s.fetch)

		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 3, 4, 5}, got)
		require.Len(t, s.calls, 1)
	})

	t.Run("missing total pages stops", func(t *testing.T) {
		s := &scriptedFetch{pages: []Page[int]{{Items: []int{1}, CurrentPage: Int(1)}}}

		got, err := Collect(ctx, q, s.fetch)

		require.NoError(t, err)
		require.Equal(t, []int{1}, got)
		require.Len(t, s.calls, 1)
	})

	t.Run("starts from the requested page", func(t *testing.T) {
		s := &scriptedFetch{pages: []Page[int]{
			{Items: []int{30}, CurrentPage: Int(3), TotalPages: Int(4)},
			{Items: []int{40}, CurrentPage: Int(4), TotalPages: Int(4)},
		}}
		start := q
		start.Page = Int(3)
		start.MaxResults = Int(10)

		got, err := Collect(ctx, start, s.fetch)

		require.NoError(t, err)
		require.Equal(t, []int{30, 40}, got)
		require.Equal(t, 3, *s.calls[0].Page)
		require.Equal(t, 4, *s.calls[1].Page)
		require.Equal(t, 10, *s.calls[1].MaxResults)
		require.Equal(t, 3, *start.Page)
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		s := &scriptedFetch{pages: []Page[int]{{CurrentPage: Int(1), TotalPages: Int(1)}}}

		got, err := Collect(ctx, q, s.fetch)

		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("current page past the total stops", func(t *testing.T) {
		s := &scriptedFetch{pages: []Page[int]{
			{CurrentPage: Int(1), TotalPages: Int(0)},
			{CurrentPage: Int(2), TotalPages: Int(0)},
		}}

		got, err := Collect(ctx, q, s.fetch)

		require.NoError(t, err)
		require.Empty(t, got)
		require.Len(t, s.calls, 1)
	})

	t.Run("cancelled context stops between pages", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		defer cancel()
		calls := 0
		fetch := func(_ context.Context, q Query) (Page[int], error) {
			calls++
			cancel()
			return Page[int]{Items: []int{calls}, CurrentPage: Int(calls), TotalPages: Int(5)}, nil
		}

		got, err := Collect(cctx, q, fetch)

		require.ErrorIs(t, err, context.Canceled)
		require.Nil(t, got)
		require.Equal(t, 1, calls)
	})

	t.Run("failure on second page returns no results", func(t *testing.T) {
		boom := errors.New("connection reset")
		s := &scriptedFetch{
			pages: []Page[int]{
				{Items: []int{1, 2}, CurrentPage: Int(1), TotalPages: Int(2)},
			},
			errAt: 1,
			err:   boom,
		}

		got, err := Collect(ctx, q, s.fetch)

		require.ErrorIs(t, err, boom)
		require.Nil(t, got)
		require.Len(t, s.calls, 2)
	})
}

func TestPage_Last(t *testing.T) {
	require.True(t, Page[string]{}.Last())
	require.True(t, Page[string]{CurrentPage: Int(2), TotalPages: Int(2)}.Last())
	require.False(t, Page[string]{CurrentPage: Int(1), TotalPages: Int(2)}.Last())
	require.True(t, Page[string]{CurrentPage: Int(1), TotalPages: Int(0)}.Last())
	require.True(t, Page[string]{CurrentPage: Int(7), TotalPages: Int(3)}.Last())
}
