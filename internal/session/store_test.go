package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func turn(msg string) Turn {
	return Turn{At: time.Now(), Message: msg, Response: "re: " + msg, Intent: "general", Emotion: "neutral"}
}

func TestStore_RecordAndHistory(t *testing.T) {
	t.Parallel()
	s := New(10, time.Hour, 5)

	_, ok := s.History("missing")
	assert.False(t, ok)

	s.Record("a", turn("hello"))
	s.Record("a", turn("list professors"))
	s.Record("b", turn("help"))

	got, ok := s.History("a")
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, "hello", got[0].Message)
	assert.Equal(t, "list professors", got[1].Message)
	assert.Equal(t, 2, s.Len())
}

func TestStore_KeepsNewestTurns(t *testing.T) {
	t.Parallel()
	s := New(10, time.Hour, 3)

	for i := range 7 {
		s.Record("a", turn(fmt.Sprintf("m%d", i)))
	}

	got, ok := s.History("a")
	require.True(t, ok)
	msgs := make([]string, len(got))
	for i, tr := range got {
		msgs[i] = tr.Message
	}
	assert.Equal(t, []string{"m4", "m5", "m6"}, msgs)
}

func TestStore_HistoryIsCopy(t *testing.T) {
	t.Parallel()
	s := New(10, time.Hour, 5)
	s.Record("a", turn("hello"))

	got, _ := s.History("a")
	got[0].Message = "changed"

	again, _ := s.History("a")
	assert.Equal(t, "hello", again[0].Message)
}

func TestStore_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()
	s := New(2, time.Hour, 5)

	s.Record("a", turn("1"))
	s.Record("b", turn("2"))
	s.Record("c", turn("3"))

	assert.Equal(t, 2, s.Len())
	_, ok := s.History("a")
	assert.False(t, ok)
	_, ok = s.History("c")
	assert.True(t, ok)
}

func TestStore_Expires(t *testing.T) {
	t.Parallel()
	s := New(10, 50*time.Millisecond, 5)
	s.Record("a", turn("hello"))

	require.Eventually(t, func() bool {
		_, ok := s.History("a")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestStore_IgnoresEmptyID(t *testing.T) {
	t.Parallel()
	s := New(10, time.Hour, 5)
	s.Record("", turn("hello"))
	assert.Zero(t, s.Len())
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()
	s := New(10, time.Hour, 5)
	s.Record("a", turn("hello"))
	s.Delete("a")
	_, ok := s.History("a")
	assert.False(t, ok)
}

func TestStore_ConcurrentRecord(t *testing.T) {
	t.Parallel()
	s := New(10, time.Hour, 100)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Go(func() { s.Record("shared", turn(fmt.Sprint(i))) })
	}
	wg.Wait()

	got, ok := s.History("shared")
	require.True(t, ok)
	assert.Len(t, got, 50)
}
