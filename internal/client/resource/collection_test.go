package resource

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sachink160/multitool-client/internal/logging"
)

type fakeList struct {
	items []string
	err   error
	calls atomic.Int32
}

func (f *fakeList) load(context.Context) ([]string, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return append([]string(nil), f.items...), nil
}

func TestCollection_RefreshReplacesWholesale(t *testing.T) {
	src := &fakeList{items: []string{"a", "b"}}
	c := NewCollection(src.load)
	require.False(t, c.Loaded())

	require.NoError(t, c.Refresh(context.Background()))
	require.Equal(t, []string{"a", "b"}, c.Items())
	require.True(t, c.Loaded())

	src.items = []string{"c"}
	require.NoError(t, c.Refresh(context.Background()))
	require.Equal(t, []string{"c"}, c.Items())
}

func TestCollection_RefreshFailureKeepsItems(t *testing.T) {
	src := &fakeList{items: []string{"a"}}
	c := NewCollection(src.load)
	require.NoError(t, c.Refresh(context.Background()))

	src.err = errors.New("down")
	require.EqualError(t, c.Refresh(context.Background()), "down")
	require.Equal(t, []string{"a"}, c.Items())
	require.EqualError(t, c.Err(), "down")
	require.False(t, c.Loading())
}

func TestCollection_MutateThenRefetch(t *testing.T) {
	src := &fakeList{items: []string{"a"}}
	c := NewCollection(src.load)

	err := c.Mutate(context.Background(), func(context.Context) error {
		require.Equal(t, int32(0), src.calls.Load(), "refetch must wait for the mutation")
		src.items = append(src.items, "b")
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, int32(1), src.calls.Load())
	require.Equal(t, []string{"a", "b"}, c.Items())
}

func TestCollection_FailedMutateSkipsRefetch(t *testing.T) {
	src := &fakeList{}
	c := NewCollection(src.load)

	err := c.Mutate(context.Background(), func(context.Context) error { return errors.New("rejected") })
	require.EqualError(t, err, "rejected")
	require.Equal(t, int32(0), src.calls.Load())
}

func TestCollection_Find(t *testing.T) {
	src := &fakeList{items: []string{"x", "y"}}
	c := NewCollection(src.load)
	require.NoError(t, c.Refresh(context.Background()))

	got, ok := c.Find(func(s string) bool { return s == "y" })
	require.True(t, ok)
	require.Equal(t, "y", got)
	_, ok = c.Find(func(s string) bool { return s == "z" })
	require.False(t, ok)
}

func TestLoadSections_IsolatesFailures(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	logger := logging.NewZapLogger(zap.New(core))

	var docs, videos int
	errs := LoadSections(context.Background(), logger,
		Section{Name: "documents", Load: func(context.Context) error { docs = 3; return nil }},
		Section{Name: "hr", Load: func(context.Context) error { return errors.New("hr down") }},
		Section{Name: "videos", Load: func(context.Context) error {
			time.Sleep(10 * time.Millisecond)
			videos = 2
			return nil
		}},
	)

	require.Equal(t, 3, docs)
	require.Equal(t, 2, videos, "slow sections settle before return")
	require.Len(t, errs, 1)
	require.True(t, errs.Failed("hr"))
	require.False(t, errs.Failed("documents"))
	require.Equal(t, 1, logs.FilterMessage("section load failed").Len())
}
