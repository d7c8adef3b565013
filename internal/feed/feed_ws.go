package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/gorilla/websocket"

	"github.com/hanayukiz/aifunny/internal/metrics"
	"github.com/hanayukiz/aifunny/internal/signal"
)

type sampleEnvelope struct {
	Source string  `json:"source"`
	Value  float64 `json:"value"`
	TsMs   int64   `json:"ts_ms"`
}

func (f *Feed) runWebsocket(ctx context.Context, out chan<- signal.Sample) error {
	if f.url == "" {
		return fmt.Errorf("websocket feed requires a url")
	}

	backoff := time.Second
	const maxBackoff = 30 * time.Second

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := f.consumeStream(ctx, out); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			f.log.Warn().Err(err).Msg("sample feed disconnected, retrying")
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
			backoff = time.Duration(math.Min(float64(maxBackoff), float64(backoff)*1.8))
			continue
		}
		return nil
	}
}

func (f *Feed) consumeStream(ctx context.Context, out chan<- signal.Sample) error {
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.DialContext(ctx, f.url, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	// Unblock ReadMessage when the context ends.
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	f.log.Info().Str("provider", ProviderWebsocket).Str("url", f.url).Msg("connected sample feed")

	conn.SetReadLimit(1 << 16)
	conn.SetReadDeadline(time.Now().Add(30 * time.Second))
	conn.SetPongHandler(func(appData string) error {
		conn.SetReadDeadline(time.Now().Add(30 * time.Second))
		return nil
	})

	pingCtx, pingCancel := context.WithCancel(ctx)
	defer pingCancel()
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					f.log.Warn().Err(err).Msg("sample feed ping failed")
					return
				}
			case <-pingCtx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		_, message, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var env sampleEnvelope
		if err := json.Unmarshal(message, &env); err != nil {
			f.log.Warn().Err(err).Msg("failed to decode sample envelope")
			continue
		}
		source := normalizeSource(env.Source)
		if source == "" {
			f.log.Warn().Str("source", env.Source).Msg("unknown sample source")
			continue
		}

		sample := signal.Sample{
			Source: source,
			Value:  env.Value,
			Ts:     time.UnixMilli(env.TsMs),
		}
		select {
		case out <- sample:
			metrics.SamplesTotal.WithLabelValues(source).Inc()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func normalizeSource(raw string) string {
	switch raw {
	case signal.SourceSelf, "self":
		return signal.SourceSelf
	case signal.SourceEnv, "env":
		return signal.SourceEnv
	default:
		return ""
	}
}
