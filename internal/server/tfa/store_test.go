package tfa

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/adminconsole/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestStore(ttl time.Duration) (*Store, *clock) {
	c := &clock{t: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	s := NewStore(ttl)
	s.now = c.now
	s.newCode = func() (string, error) { return "123456", nil }
	return s, c
}

func TestStore_VerifyConsumesCode(t *testing.T) {
	s, _ := newTestStore(time.Minute)

	code, err := s.Issue(7)
	require.NoError(t, err)
	assert.Equal(t, "123456", code)

	require.NoError(t, s.Verify(7, "123456"))
	assert.ErrorIs(t, s.Verify(7, "123456"), ErrCodeNotFound)
}

func TestStore_WrongCodeCountsDown(t *testing.T) {
	s, _ := newTestStore(time.Minute)
	_, err := s.Issue(1)
	require.NoError(t, err)

	var wrong *WrongCodeError
	for _, left := range []int{2, 1, 0} {
		err := s.Verify(1, "000000")
		require.ErrorAs(t, err, &wrong)
		assert.Equal(t, left, wrong.Remaining)
	}

	assert.ErrorIs(t, s.Verify(1, "123456"), ErrTooManyAttempts)
	assert.ErrorIs(t, s.Verify(1, "123456"), ErrCodeNotFound)
}

func TestStore_Expired(t *testing.T) {
	s, c := newTestStore(time.Minute)
	_, err := s.Issue(1)
	require.NoError(t, err)

	c.t = c.t.Add(2 * time.Minute)
	assert.ErrorIs(t, s.Verify(1, "123456"), ErrCodeExpired)
	assert.ErrorIs(t, s.Verify(1, "123456"), ErrCodeNotFound)
}

func TestStore_IssueReplacesPrevious(t *testing.T) {
	s, _ := newTestStore(time.Minute)
	_, err := s.Issue(1)
	require.NoError(t, err)
	require.Error(t, s.Verify(1, "999999"))

	s.newCode = func() (string, error) { return "654321", nil }
	_, err = s.Issue(1)
	require.NoError(t, err)

	assert.Error(t, s.Verify(1, "123456"))
	assert.NoError(t, s.Verify(1, "654321"))
}

func TestStore_Cleanup(t *testing.T) {
	s, c := newTestStore(time.Minute)
	_, _ = s.Issue(1)
	c.t = c.t.Add(30 * time.Second)
	_, _ = s.Issue(2)
	c.t = c.t.Add(45 * time.Second)

	assert.Equal(t, 1, s.Cleanup())
	assert.NoError(t, s.Verify(2, "123456"))
}

func TestStore_DefaultCodes(t *testing.T) {
	s := NewStore(time.Minute)
	code, err := s.Issue(1)
	require.NoError(t, err)
	assert.Len(t, code, CodeLength)
	assert.Regexp(t, `^\d{6}$`, code)
}

func TestLogSender(t *testing.T) {
	s := NewLogSender(logging.Discard())
	assert.NoError(t, s.Send(context.Background(), "42", "123456"))
	assert.ErrorIs(t, s.Send(context.Background(), "", "123456"), ErrDelivery)
}
