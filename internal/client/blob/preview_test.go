package blob

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sachink160/multitool-client/internal/client/client"
)

func staticFetch(context.Context, string) (client.Blob, error) {
	return client.Blob{Data: []byte("img"), ContentType: "image/png"}, nil
}

func TestRegistry_CreateGetRevoke(t *testing.T) {
	r := NewRegistry()
	u := r.Create(client.Blob{Data: []byte("x")})
	require.Contains(t, u, "blob:")
	require.Equal(t, 1, r.Live())

	b, ok := r.Get(u)
	require.True(t, ok)
	require.Equal(t, []byte("x"), b.Data)

	r.Revoke(u)
	r.Revoke(u)
	require.Equal(t, 0, r.Live())
	_, ok = r.Get(u)
	require.False(t, ok)
}

func TestPreviewSet_ReloadRevokesPrevious(t *testing.T) {
	reg := NewRegistry()
	p := NewPreviewSet(reg, staticFetch, nil)
	ctx := context.Background()

	p.Load(ctx, []string{"a", "b", "c"})
	require.Equal(t, 3, p.Len())
	require.Equal(t, 3, reg.Live())
	first, _ := p.URL("a")

	p.Load(ctx, []string{"a", "d"})
	require.Equal(t, 2, p.Len())
	require.Equal(t, 2, reg.Live())
	second, ok := p.URL("a")
	require.True(t, ok)
	require.NotEqual(t, first, second)
	_, ok = reg.Get(first)
	require.False(t, ok)

	p.Close()
	require.Equal(t, 0, reg.Live())
}

func TestPreviewSet_DuplicateIDsYieldOneURL(t *testing.T) {
	reg := NewRegistry()
	p := NewPreviewSet(reg, staticFetch, nil)

	p.Load(context.Background(), []string{"a", "a", "a"})
	require.Equal(t, 1, reg.Live())
}

func TestPreviewSet_FailedDownloadSkipped(t *testing.T) {
	reg := NewRegistry()
	p := NewPreviewSet(reg, func(ctx context.Context, id string) (client.Blob, error) {
		if id == "bad" {
			return client.Blob{}, errors.New("boom")
		}
		return staticFetch(ctx, id)
	}, nil)

	p.Load(context.Background(), []string{"good", "bad"})
	_, ok := p.URL("bad")
	require.False(t, ok)
	require.Equal(t, 1, reg.Live())
}

func TestPreviewSet_LateResultsDroppedAfterCancel(t *testing.T) {
	reg := NewRegistry()
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	p := NewPreviewSet(reg, func(ctx context.Context, id string) (client.Blob, error) {
		started <- struct{}{}
		<-release
		return staticFetch(ctx, id)
	}, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		p.Load(context.Background(), []string{"a"})
	}()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("fetch did not start")
	}
	p.Cancel()
	close(release)
	wg.Wait()

	require.Equal(t, 0, p.Len())
	require.Equal(t, 0, reg.Live())
}

func TestPreviewSet_LoadAfterCloseIsNoop(t *testing.T) {
	reg := NewRegistry()
	p := NewPreviewSet(reg, staticFetch, nil)
	p.Close()
	p.Load(context.Background(), []string{"a"})
	require.Equal(t, 0, reg.Live())
}

func TestPreviewSet_ClearKeepsSetUsable(t *testing.T) {
	reg := NewRegistry()
	p := NewPreviewSet(reg, staticFetch, nil)
	ctx := context.Background()

	p.Load(ctx, []string{"a", "b"})
	p.Clear()
	require.Equal(t, 0, p.Len())
	require.Equal(t, 0, reg.Live())

	p.Load(ctx, []string{"c"})
	require.Equal(t, 1, p.Len())
	require.Equal(t, 1, reg.Live())
}
