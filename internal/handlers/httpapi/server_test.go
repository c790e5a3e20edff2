package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gabapcia/blockarchive/internal/archiveinfo"
	infomocks "github.com/gabapcia/blockarchive/internal/archiveinfo/mocks"
	"github.com/gabapcia/blockarchive/internal/archiver"
	"github.com/gabapcia/blockarchive/internal/archiver/mocks"
	"github.com/gabapcia/blockarchive/internal/block"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	t.Run("ok without status", func(t *testing.T) {
		rec := serve(NewHandler(infomocks.NewService(t)), http.MethodGet, "/healthz")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})

	t.Run("unavailable while a stream is halted", func(t *testing.T) {
		svc := mocks.NewService(t)
		svc.EXPECT().Status(archiver.LiveSync).Return(archiver.StreamStatus{Stream: archiver.LiveSync, State: archiver.StatePolling})
		svc.EXPECT().Status(archiver.Backfill).Return(archiver.StreamStatus{Stream: archiver.Backfill, State: archiver.StateHalted, LastError: "malformed block"})

		rec := serve(NewHandler(infomocks.NewService(t), WithHealth(svc)), http.MethodGet, "/healthz")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "malformed block")
	})

	t.Run("rejects other methods", func(t *testing.T) {
		rec := serve(NewHandler(infomocks.NewService(t)), http.MethodPost, "/healthz")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestInfo(t *testing.T) {
	last := uint64(120)
	info := infomocks.NewService(t)
	info.EXPECT().Snapshot(mock.Anything).Return(archiveinfo.Info{
		NetworkName:        "Polkadot",
		LivesyncStartBlock: 100,
		LastLivesyncBlock:  &last,
		Archiver:           archiveinfo.Wallet{Address: "0xA1", BalanceError: "timeout"},
	}).Once()

	rec := serve(NewHandler(info), http.MethodGet, "/v1/info")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Polkadot", body["network_name"])
	assert.Equal(t, float64(100), body["livesync_start_block"])
	assert.Equal(t, float64(120), body["last_livesync_block"])
	assert.Nil(t, body["first_livesync_block"])
	assert.Equal(t, map[string]any{"address": "0xA1", "balance": nil, "balance_error": "timeout"}, body["archiver"])
}

func TestArchivedBlock(t *testing.T) {
	t.Run("returns the archived block", func(t *testing.T) {
		info := infomocks.NewService(t)
		info.EXPECT().ArchivedBlock(mock.Anything, archiver.Backfill, uint64(42)).
			Return(archiveinfo.ArchivedBlock{Stream: archiver.Backfill, Height: 42, TxID: "0xtx", Block: block.Block{Hash: "0xaa"}}, nil).Once()

		rec := serve(NewHandler(info), http.MethodGet, "/v1/blocks/backfill/42")

		require.Equal(t, http.StatusOK, rec.Code)
		var body archiveinfo.ArchivedBlock
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "0xtx", body.TxID)
		assert.Equal(t, "0xaa", body.Block.Hash)
	})

	t.Run("unknown height is not found", func(t *testing.T) {
		info := infomocks.NewService(t)
		info.EXPECT().ArchivedBlock(mock.Anything, archiver.LiveSync, uint64(7)).
			Return(archiveinfo.ArchivedBlock{}, archiver.ErrRecordNotFound).Once()

		rec := serve(NewHandler(info), http.MethodGet, "/v1/blocks/livesync/7")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("upstream failure", func(t *testing.T) {
		info := infomocks.NewService(t)
		info.EXPECT().ArchivedBlock(mock.Anything, archiver.LiveSync, uint64(7)).
			Return(archiveinfo.ArchivedBlock{}, errors.New("rpc down")).Once()

		rec := serve(NewHandler(info), http.MethodGet, "/v1/blocks/livesync/7")
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.NotContains(t, rec.Body.String(), "rpc down")
	})

	t.Run("bad parameters", func(t *testing.T) {
		h := NewHandler(infomocks.NewService(t))

		assert.Equal(t, http.StatusBadRequest, serve(h, http.MethodGet, "/v1/blocks/sideways/1").Code)
		assert.Equal(t, http.StatusBadRequest, serve(h, http.MethodGet, "/v1/blocks/livesync/-1").Code)
		assert.Equal(t, http.StatusBadRequest, serve(h, http.MethodGet, "/v1/blocks/livesync/ten").Code)
	})
}

func TestMetrics(t *testing.T) {
	h := NewHandler(infomocks.NewService(t))

	serve(h, http.MethodGet, "/healthz")
	serve(h, http.MethodGet, "/v1/blocks/sideways/1")

	rec := serve(h, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",path="/healthz",status="200"} 1`)
	assert.Contains(t, body, `http_requests_total{method="GET",path="/v1/blocks/{stream}/{height}",status="400"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestMetrics_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()

	exporter, err := otelprom.New(otelprom.WithRegisterer(reg))
	require.NoError(t, err)
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	archived, err := mp.Meter("archiver").Int64Counter("blockarchive.blocks.archived", metric.WithUnit("{block}"))
	require.NoError(t, err)
	archived.Add(t.Context(), 2, metric.WithAttributes(attribute.String("stream", "livesync")))

	rec := serve(NewHandler(infomocks.NewService(t), WithRegistry(reg)), http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "blockarchive_blocks_archived_total{")
	assert.Contains(t, body, `stream="livesync"`)
	assert.Contains(t, body, "go_goroutines")
}

func TestServer_Run(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := NewServer(ln.Addr().String(), infomocks.NewService(t))

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx, ln) }()

	var res *http.Response
	require.Eventually(t, func() bool {
		res, err = http.Get("http://" + ln.Addr().String() + "/healthz")
		return err == nil
	}, time.Second, 10*time.Millisecond)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	_ = res.Body.Close()
	assert.Equal(t, "ok", strings.TrimSpace(string(body)))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not stop")
	}
}
