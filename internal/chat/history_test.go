package chat

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_Append(t *testing.T) {
	start := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	tick := 0
	h := &History{
		now: func() time.Time {
			tick++
			return start.Add(time.Duration(tick) * time.Second)
		},
		newID: func() string { return "id-" + strconv.Itoa(tick) },
	}

	first := h.Append(SenderUser, "もっと短くして")
	second := h.Append(SenderAI, "指示に基づいて文章を更新しました。")

	assert.Equal(t, "id-0", first.ID)
	assert.Equal(t, SenderUser, first.Sender)
	assert.Equal(t, start.Add(time.Second), first.Timestamp)
	assert.Equal(t, SenderAI, second.Sender)
	assert.True(t, second.Timestamp.After(first.Timestamp))

	msgs := h.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, first, msgs[0])
	assert.Equal(t, second, msgs[1])
}

func TestHistory_MessagesReturnsCopy(t *testing.T) {
	h := NewHistory()
	h.Append(SenderUser, "original")

	msgs := h.Messages()
	msgs[0].Text = "mutated"

	assert.Equal(t, "original", h.Messages()[0].Text)
}

func TestHistory_DefaultIDsAreUUIDs(t *testing.T) {
	h := NewHistory()
	a := h.Append(SenderUser, "a")
	b := h.Append(SenderUser, "b")

	_, err := uuid.Parse(a.ID)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestHistory_AwaitingReplyAndReset(t *testing.T) {
	h := NewHistory()

	_, ok := h.Last()
	assert.False(t, ok)
	assert.False(t, h.AwaitingReply())

	h.Append(SenderUser, "絵文字を追加して")
	assert.True(t, h.AwaitingReply())

	h.Append(SenderAI, "更新しました")
	assert.False(t, h.AwaitingReply())
	assert.Equal(t, 2, h.Len())

	h.Reset()
	assert.Equal(t, 0, h.Len())
	assert.Empty(t, h.Messages())
}

func TestErrorReply(t *testing.T) {
	assert.Equal(t, "AI修正エラー: timeout", ErrorReply(errors.New("timeout")))
}
