package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/aristath/backtest/internal/modules/backtest"
	"github.com/aristath/backtest/pkg/analytics"
)

const streamWriteTimeout = 10 * time.Second

// streamMessage is any client message. A message carrying daily_data starts
// a new session series, anything else only recomputes indicators.
type streamMessage struct {
	DailyData json.RawMessage    `json:"daily_data"`
	Options   *analytics.Options `json:"options"`
}

type streamReply struct {
	Result     *backtest.Result      `json:"result,omitempty"`
	Indicators *analytics.Indicators `json:"indicators,omitempty"`
	Error      string                `json:"error,omitempty"`
}

// streamSession holds the series of one connection
type streamSession struct {
	series analytics.Series
	ready  bool
}

// HandleStream handles GET /api/backtest/stream
func (h *Handler) HandleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "unexpected exit")

	conn.SetReadLimit(maxBodyBytes)

	ctx := r.Context()
	session := &streamSession{}
	h.log.Debug().Msg("Stream session opened")

	for {
		msgType, raw, err := conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				h.log.Debug().Msg("Stream session closed")
				conn.Close(websocket.StatusNormalClosure, "")
			} else if ctx.Err() != nil {
				h.log.Debug().Msg("Stream context cancelled")
			} else {
				h.log.Warn().Err(err).Msg("Stream read failed")
			}
			return
		}

		if msgType != websocket.MessageText {
			h.log.Debug().Int("type", int(msgType)).Msg("Ignoring non-text message")
			continue
		}

		reply := h.handleStreamMessage(session, raw)

		writeCtx, cancel := context.WithTimeout(ctx, streamWriteTimeout)
		err = wsjson.Write(writeCtx, conn, reply)
		cancel()
		if err != nil {
			h.log.Warn().Err(err).Msg("Stream write failed")
			return
		}
	}
}

func (h *Handler) handleStreamMessage(session *streamSession, raw []byte) streamReply {
	var msg streamMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return streamReply{Error: "Invalid message"}
	}

	if len(msg.DailyData) > 0 || !session.ready {
		var req backtest.AnalyzeRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return streamReply{Error: "Invalid analyze request"}
		}

		result, err := h.service.Analyze(req)
		if err != nil {
			return streamReply{Error: streamErrorMessage(err)}
		}

		session.series = analytics.Normalize(result.Analysis.Prices)
		session.ready = true
		return streamReply{Result: result}
	}

	ind, err := h.service.Indicators(session.series, msg.Options)
	if err != nil {
		return streamReply{Error: streamErrorMessage(err)}
	}
	return streamReply{Indicators: &ind}
}

func streamErrorMessage(err error) string {
	if errors.Is(err, backtest.ErrValidation) {
		return err.Error()
	}
	return "Analysis failed"
}
