package requestid

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	cases := map[string]struct {
		ctx        context.Context
		expectedID string
		expectedOK bool
	}{
		"WithID":  {ctx: WithID(context.Background(), "abc"), expectedID: "abc", expectedOK: true},
		"EmptyID": {ctx: WithID(context.Background(), ""), expectedOK: false},
		"NoID":    {ctx: context.Background(), expectedOK: false},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			id, ok := FromContext(tc.ctx)
			assert.Equal(t, tc.expectedID, id)
			assert.Equal(t, tc.expectedOK, ok)
		})
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	Logger(WithID(context.Background(), "req-1"), base).Info("with_id")
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)

	buf.Reset()
	Logger(context.Background(), base).Info("without_id")
	assert.NotContains(t, buf.String(), "request_id")
}
