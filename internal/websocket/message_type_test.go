package websocket

import (
	"testing"

	"marketplace-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvelopeKnownTypes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Envelope
	}{
		{
			name: "auth",
			raw:  `{"type":"auth","userId":7}`,
			want: AuthEnvelope{UserID: 7},
		},
		{
			name: "subscribe_reviews",
			raw:  `{"type":"subscribe_reviews","productId":3}`,
			want: SubscribeReviewsEnvelope{ProductID: 3},
		},
		{
			name: "review",
			raw:  `{"type":"review","productId":3,"data":{"userId":1,"username":"ann","rating":5,"comment":"great"}}`,
			want: ReviewEnvelope{ProductID: 3, Data: &ReviewData{UserID: 1, Username: "ann", Rating: 5, Comment: "great"}},
		},
		{
			name: "message",
			raw:  `{"type":"message","data":{"fromId":1,"toId":2,"content":"hi"}}`,
			want: DirectMessageEnvelope{Data: &models.CreateMessageRequest{FromID: 1, ToID: 2, Content: "hi"}},
		},
		{
			name: "unknown type is not an error",
			raw:  `{"type":"typing","userId":1}`,
			want: UnknownEnvelope{Kind: "typing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEnvelope([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEnvelopeMalformed(t *testing.T) {
	for _, raw := range []string{
		`not json`,
		`{"type":`,
		`[1,2,3]`,
		`null`,
		`{}`,
		`{"type":""}`,
		`{"type":42}`,
	} {
		_, err := ParseEnvelope([]byte(raw))
		assert.ErrorIs(t, err, ErrMalformedEnvelope, "input %q", raw)
	}
}

func TestParseEnvelopeInvalidPayload(t *testing.T) {
	for _, raw := range []string{
		`{"type":"auth"}`,
		`{"type":"auth","userId":0}`,
		`{"type":"auth","userId":-4}`,
		`{"type":"auth","userId":"7"}`,
		`{"type":"subscribe_reviews"}`,
		`{"type":"review","productId":3}`,
		`{"type":"review","productId":3,"data":{"rating":9}}`,
		`{"type":"message"}`,
		`{"type":"message","data":{"fromId":1,"toId":2,"content":""}}`,
		`{"type":"message","data":{"fromId":0,"toId":2,"content":"hi"}}`,
		`{"type":"message","data":{"fromId":1,"content":"hi"}}`,
		`{"type":"message","data":{"fromId":1.5,"toId":2,"content":"hi"}}`,
	} {
		_, err := ParseEnvelope([]byte(raw))
		assert.ErrorIs(t, err, ErrInvalidPayload, "input %q", raw)
	}
}

func TestMessageTypeIsKnown(t *testing.T) {
	assert.True(t, MessageTypeAuth.IsKnown())
	assert.True(t, MessageTypeMessage.IsKnown())
	assert.False(t, MessageType("presence").IsKnown())
}
