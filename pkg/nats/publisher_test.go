package nats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "site.CONTACT_SUBMITTED", Subject("CONTACT_SUBMITTED"))
	assert.Equal(t, "site.USER_DELETED", Subject("USER_DELETED"))
}

func TestCloseWithoutConnection(t *testing.T) {
	p := &Publisher{}
	assert.NotPanics(t, p.Close)
}

func TestDecodeEvent(t *testing.T) {
	evt, err := DecodeEvent([]byte(`{"type":"CHAT_STARTED","data":{"thread_id":"thread_1"},"occurred_at":"2026-01-02T03:04:05Z"}`))
	assert.NoError(t, err)
	assert.Equal(t, "CHAT_STARTED", evt.EventType())
	assert.Equal(t, "thread_1", evt.Payload()["thread_id"])
	assert.Equal(t, 2026, evt.Timestamp().Year())

	_, err = DecodeEvent([]byte(`{"data":{}}`))
	assert.Error(t, err)

	_, err = DecodeEvent([]byte(`not json`))
	assert.Error(t, err)
}
