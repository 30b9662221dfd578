package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type hidden struct {
	id     string
	reason RemovalReason
}

type recordingDisplayer struct {
	mu     sync.Mutex
	shown  []string
	hidden []hidden
}

func (d *recordingDisplayer) Show(n Notification) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.shown = append(d.shown, n.ID)
}

func (d *recordingDisplayer) Hide(n Notification, reason RemovalReason) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hidden = append(d.hidden, hidden{id: n.ID, reason: reason})
}

func (d *recordingDisplayer) hiddenFor(id string) []RemovalReason {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []RemovalReason
	for _, h := range d.hidden {
		if h.id == id {
			out = append(out, h.reason)
		}
	}
	return out
}

func TestProvider_Add(t *testing.T) {
	d := &recordingDisplayer{}
	p := NewProvider(WithDisplayer(d))
	defer p.Close()

	n, err := p.Add("Saved", TypeSuccess)
	require.NoError(t, err)

	list := p.List()
	require.Len(t, list, 1)
	assert.NotEmpty(t, list[0].ID)
	assert.Equal(t, n.ID, list[0].ID)
	assert.Equal(t, "Saved", list[0].Message)
	assert.Equal(t, TypeSuccess, list[0].Type)
	assert.Equal(t, DefaultDuration, list[0].Duration)
	assert.False(t, list[0].CreatedAt.IsZero())
	assert.Equal(t, []string{n.ID}, d.shown)
}

func TestProvider_AddKeepsInsertionOrder(t *testing.T) {
	p := NewProvider()
	defer p.Close()

	var ids []string
	for _, msg := range []string{"first", "second", "third"} {
		n, err := p.AddWithDuration(msg, TypeInfo, 0)
		require.NoError(t, err)
		ids = append(ids, n.ID)
	}

	list := p.List()
	require.Len(t, list, 3)
	for i, n := range list {
		assert.Equal(t, ids[i], n.ID)
	}
	assert.NotEqual(t, ids[0], ids[1])
	assert.NotEqual(t, ids[1], ids[2])
}

func TestProvider_AddInvalidType(t *testing.T) {
	p := NewProvider()
	defer p.Close()

	_, err := p.Add("boom", Type("fatal"))
	assert.ErrorIs(t, err, ErrInvalidType)
	assert.Empty(t, p.List())
}

func TestProvider_AutoExpiry(t *testing.T) {
	d := &recordingDisplayer{}
	p := NewProvider(WithDisplayer(d))
	defer p.Close()

	n, err := p.AddWithDuration("short lived", TypeWarning, 20*time.Millisecond)
	require.NoError(t, err)
	require.Len(t, p.List(), 1)

	assert.Eventually(t, func() bool {
		return len(p.List()) == 0
	}, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool {
		return len(d.hiddenFor(n.ID)) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []RemovalReason{ReasonExpired}, d.hiddenFor(n.ID))
}

func TestProvider_ZeroDurationPersists(t *testing.T) {
	p := NewProvider()
	defer p.Close()

	n, err := p.AddWithDuration("sticky", TypeError, 0)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	require.Len(t, p.List(), 1)

	p.Remove(n.ID)
	assert.Empty(t, p.List())
}

func TestProvider_NegativeDurationPersists(t *testing.T) {
	p := NewProvider()
	defer p.Close()

	_, err := p.AddWithDuration("sticky", TypeInfo, -time.Second)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	assert.Len(t, p.List(), 1)
}

func TestProvider_RemoveCancelsTimer(t *testing.T) {
	d := &recordingDisplayer{}
	p := NewProvider(WithDisplayer(d))
	defer p.Close()

	n, err := p.AddWithDuration("dismiss me", TypeInfo, 30*time.Millisecond)
	require.NoError(t, err)

	p.Remove(n.ID)
	assert.Empty(t, p.List())

	// the timer must not report a second removal
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, []RemovalReason{ReasonDismissed}, d.hiddenFor(n.ID))

	p.mu.Lock()
	assert.Empty(t, p.timers)
	p.mu.Unlock()
}

func TestProvider_RemoveUnknownIsNoop(t *testing.T) {
	d := &recordingDisplayer{}
	p := NewProvider(WithDisplayer(d))
	defer p.Close()

	_, err := p.AddWithDuration("keep", TypeInfo, 0)
	require.NoError(t, err)
	before := p.List()

	p.Remove("does-not-exist")
	p.Remove("")

	assert.Equal(t, before, p.List())
	assert.Empty(t, d.hidden)
}

func TestProvider_RemoveMiddle(t *testing.T) {
	p := NewProvider()
	defer p.Close()

	a, _ := p.AddWithDuration("a", TypeInfo, 0)
	b, _ := p.AddWithDuration("b", TypeInfo, 0)
	c, _ := p.AddWithDuration("c", TypeInfo, 0)

	snapshot := p.List()
	p.Remove(b.ID)

	list := p.List()
	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].ID)
	assert.Equal(t, c.ID, list[1].ID)
	// earlier snapshots are not mutated
	assert.Equal(t, b.ID, snapshot[1].ID)
}

func TestProvider_Close(t *testing.T) {
	d := &recordingDisplayer{}
	p := NewProvider(WithDisplayer(d))

	n1, _ := p.AddWithDuration("timed", TypeInfo, 20*time.Millisecond)
	n2, _ := p.AddWithDuration("sticky", TypeInfo, 0)

	p.Close()
	assert.True(t, p.Closed())
	assert.Empty(t, p.List())
	assert.Equal(t, []RemovalReason{ReasonClosed}, d.hiddenFor(n1.ID))
	assert.Equal(t, []RemovalReason{ReasonClosed}, d.hiddenFor(n2.ID))

	_, err := p.Add("late", TypeInfo)
	var scopeErr *ScopeError
	require.True(t, errors.As(err, &scopeErr))
	assert.ErrorIs(t, err, ErrProviderClosed)

	// the canceled timer never fires
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, []RemovalReason{ReasonClosed}, d.hiddenFor(n1.ID))

	p.Close()
}

type orderingDisplayer struct {
	mu       sync.Mutex
	shown    map[string]bool
	hidden   int
	outOfSeq []string
}

func (d *orderingDisplayer) Show(n Notification) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.shown[n.ID] = true
}

func (d *orderingDisplayer) Hide(n Notification, _ RemovalReason) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.shown[n.ID] {
		d.outOfSeq = append(d.outOfSeq, n.ID)
	}
	d.hidden++
}

func (d *orderingDisplayer) hiddenCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hidden
}

func TestProvider_ShowPrecedesHide(t *testing.T) {
	d := &orderingDisplayer{shown: map[string]bool{}}
	p := NewProvider(WithDisplayer(d))
	defer p.Close()

	const total = 200
	for i := 0; i < total; i++ {
		_, err := p.AddWithDuration("flash", TypeInfo, time.Nanosecond)
		require.NoError(t, err)
	}

	assert.Eventually(t, func() bool {
		return d.hiddenCount() == total
	}, time.Second, 5*time.Millisecond)

	d.mu.Lock()
	defer d.mu.Unlock()
	assert.Empty(t, d.outOfSeq)
	assert.Len(t, d.shown, total)
}

func TestProvider_WithDefaultDuration(t *testing.T) {
	p := NewProvider(WithDefaultDuration(10 * time.Millisecond))
	defer p.Close()

	n, err := p.Add("quick", TypeInfo)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, n.Duration)

	assert.Eventually(t, func() bool {
		return len(p.List()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestProvider_ConcurrentAddRemove(t *testing.T) {
	p := NewProvider()
	defer p.Close()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := p.AddWithDuration("burst", TypeInfo, time.Millisecond)
			if err != nil {
				return
			}
			p.Remove(n.ID)
		}()
	}
	wg.Wait()

	assert.Eventually(t, func() bool {
		return len(p.List()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestFromContext(t *testing.T) {
	t.Run("without provider", func(t *testing.T) {
		_, err := FromContext(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoProvider)
		assert.Equal(t, "must be used within a NotificationProvider", err.Error())
	})

	t.Run("with provider", func(t *testing.T) {
		p := NewProvider()
		defer p.Close()

		got, err := FromContext(WithProvider(context.Background(), p))
		require.NoError(t, err)
		assert.Same(t, p, got)
	})

	t.Run("closed provider", func(t *testing.T) {
		p := NewProvider()
		ctx := WithProvider(context.Background(), p)
		p.Close()

		_, err := FromContext(ctx)
		assert.ErrorIs(t, err, ErrProviderClosed)
	})
}

func TestType_Valid(t *testing.T) {
	for _, typ := range []Type{TypeInfo, TypeSuccess, TypeWarning, TypeError} {
		assert.True(t, typ.Valid(), typ)
	}
	assert.False(t, Type("").Valid())
	assert.False(t, Type("INFO").Valid())
}
