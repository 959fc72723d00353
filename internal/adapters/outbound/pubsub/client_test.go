package pubsub

import (
	"context"
	"io"
	"log"
	"testing"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitClient_Initialize(t *testing.T) {
	tests := map[string]struct {
		init func(t *testing.T, addr string) *InitClient
	}{
		"injected-client": {
			init: func(t *testing.T, _ string) *InitClient {
				return &InitClient{Logger: log.New(io.Discard, "", 0), client: newTestClient(t)}
			},
		},
		"emulator-host": {
			init: func(t *testing.T, addr string) *InitClient {
				return &InitClient{
					Logger:       log.New(io.Discard, "", 0),
					ProjectID:    "test-project",
					EmulatorHost: addr,
				}
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := pstest.NewServer()
			t.Cleanup(func() {
				server.Close() //nolint:errcheck
			})
			t.Cleanup(depend.ClearContainer)

			init := tt.init(t, server.Addr)
			_, err := init.Initialize(context.Background())
			require.NoError(t, err)

			client, err := depend.Resolve[*pubsubV2.Client]()
			require.NoError(t, err)
			assert.Same(t, init.client, client)

			init.Close()
		})
	}
}

func TestInitClient_ClientOptions(t *testing.T) {
	assert.Empty(t, (&InitClient{EmulatorHost: "-"}).clientOptions())
	assert.Empty(t, (&InitClient{}).clientOptions())
	assert.Len(t, (&InitClient{EmulatorHost: "localhost:8681"}).clientOptions(), 3)
}

func TestInitClient_CloseWithoutClient(t *testing.T) {
	init := &InitClient{}
	assert.NotPanics(t, init.Close)
}
