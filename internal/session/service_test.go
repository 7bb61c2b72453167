package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"bookconnect/internal/app"
	"bookconnect/internal/catalog"
	"bookconnect/internal/theme"
	"bookconnect/internal/view"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newService(t *testing.T, ttl time.Duration) (*Service, *fakeClock) {
	t.Helper()
	c, err := catalog.NewSampleSource(12).Load(context.Background())
	require.NoError(t, err)
	log, _ := test.NewNullLogger()

	factory := func(prefersDark bool) (*app.App, *view.Document, error) {
		doc := view.NewDocument()
		a, err := app.New(c, doc, log)
		if err != nil {
			return nil, nil, err
		}
		a.Init(prefersDark)
		return a, doc, nil
	}

	svc := NewService(NewMemoryRepo(), factory, ttl, log)
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc.now = clock.now
	return svc, clock
}

func TestService_StartAndGet(t *testing.T) {
	svc, _ := newService(t, time.Minute)
	ctx := context.Background()

	sess, err := svc.Start(ctx, true)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)

	got, err := svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)

	err = got.Do(func(a *app.App, doc *view.Document) error {
		assert.Equal(t, theme.Night, a.State().Theme)
		assert.Len(t, doc.Previews(), 12)
		return nil
	})
	assert.NoError(t, err)
}

func TestService_GetUnknown(t *testing.T) {
	svc, _ := newService(t, time.Minute)
	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Expiry(t *testing.T) {
	svc, clock := newService(t, time.Minute)
	ctx := context.Background()

	sess, err := svc.Start(ctx, false)
	require.NoError(t, err)

	clock.t = clock.t.Add(50 * time.Second)
	_, err = svc.Get(ctx, sess.ID)
	require.NoError(t, err)

	clock.t = clock.t.Add(50 * time.Second)
	_, err = svc.Get(ctx, sess.ID)
	require.NoError(t, err, "use refreshes the idle timer")

	clock.t = clock.t.Add(2 * time.Minute)
	_, err = svc.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_CleanupExpired(t *testing.T) {
	svc, clock := newService(t, time.Minute)
	ctx := context.Background()

	old, err := svc.Start(ctx, false)
	require.NoError(t, err)
	clock.t = clock.t.Add(90 * time.Second)
	fresh, err := svc.Start(ctx, false)
	require.NoError(t, err)

	n, err := svc.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = svc.repo.Get(ctx, old.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.repo.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}

func TestService_StartFactoryError(t *testing.T) {
	log, _ := test.NewNullLogger()
	boom := errors.New("boom")
	svc := NewService(NewMemoryRepo(), func(bool) (*app.App, *view.Document, error) {
		return nil, nil, boom
	}, time.Minute, log)

	_, err := svc.Start(context.Background(), false)
	assert.ErrorIs(t, err, boom)
}

func TestSession_DoSerializes(t *testing.T) {
	svc, _ := newService(t, time.Minute)
	sess, err := svc.Start(context.Background(), false)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = sess.Do(func(a *app.App, _ *view.Document) error {
				return a.Dispatch(app.Event{Hook: view.ListButton, Action: app.Click})
			})
		}()
	}
	wg.Wait()

	_ = sess.Do(func(a *app.App, doc *view.Document) error {
		assert.Len(t, doc.Previews(), len(a.Catalog().Books))
		assert.Equal(t, 0, doc.ButtonRemaining())
		return nil
	})
}
