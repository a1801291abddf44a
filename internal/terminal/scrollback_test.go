package terminal

import (
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrollback_AppendAndSnapshot(t *testing.T) {
	sb := NewScrollback(64)

	sb.AppendText("hello ")
	sb.AppendText("world")
	sb.AppendText("")

	assert.Equal(t, "hello world", sb.Snapshot())
	assert.Equal(t, 11, sb.Len())
}

func TestScrollback_DefaultSize(t *testing.T) {
	sb := NewScrollback(0)
	assert.Equal(t, DefaultScrollbackSize, sb.maxLen)
}

func TestScrollback_TrimsFront(t *testing.T) {
	sb := NewScrollback(8)

	sb.AppendText("abcdef")
	sb.AppendText("ghij")

	assert.Equal(t, "cdefghij", sb.Snapshot())
}

func TestScrollback_TrimKeepsRunesWhole(t *testing.T) {
	sb := NewScrollback(5)

	// three 2-byte runes; keeping 5 bytes would split the first one
	sb.AppendText("жжж")

	got := sb.Snapshot()
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "жж", got)
}

func TestScrollback_Drain(t *testing.T) {
	sb := NewScrollback(64)

	sb.AppendText("one ")
	assert.Equal(t, "one ", sb.Drain())
	assert.Equal(t, "", sb.Drain())

	sb.AppendText("two")
	assert.Equal(t, "two", sb.Drain())
	assert.Equal(t, "one two", sb.Snapshot(), "drain does not drop retained text")
}

func TestScrollback_DrainAfterTrim(t *testing.T) {
	sb := NewScrollback(6)

	sb.AppendText("abcd")
	sb.Drain()
	sb.AppendText("efgh")

	assert.Equal(t, "cdefgh", sb.Snapshot())
	assert.Equal(t, "efgh", sb.Drain())
}

func TestScrollback_DrainAfterTrimPastDrained(t *testing.T) {
	sb := NewScrollback(4)

	sb.AppendText("ab")
	sb.Drain()
	sb.AppendText("cdefgh")

	assert.Equal(t, "efgh", sb.Drain())
}

func TestScrollback_Clear(t *testing.T) {
	sb := NewScrollback(64)
	sb.AppendText("text")

	sb.Clear()

	assert.Equal(t, 0, sb.Len())
	assert.Equal(t, "", sb.Drain())
}

func TestScrollback_Notify(t *testing.T) {
	sb := NewScrollback(64)

	sb.AppendText("a")
	sb.AppendText("b")

	select {
	case <-sb.Notify():
	default:
		t.Fatal("expected a pending notification")
	}

	select {
	case <-sb.Notify():
		t.Fatal("notifications must coalesce")
	default:
	}
}

func TestScrollback_Close(t *testing.T) {
	sb := NewScrollback(64)
	sb.AppendText("before")

	sb.Close()
	sb.AppendText("after")

	assert.True(t, sb.IsClosed())
	assert.Equal(t, "before", sb.Snapshot())

	select {
	case <-sb.Notify():
	case <-time.After(time.Second):
		t.Fatal("close did not signal")
	}
}

func TestScrollback_ConcurrentAppend(t *testing.T) {
	sb := NewScrollback(1 << 16)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				sb.AppendText("x")
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 800, sb.Len())
	assert.Equal(t, strings.Repeat("x", 800), sb.Drain())
}
