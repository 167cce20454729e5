package opcua

import (
	"context"
	"errors"
	"log/slog"
)

// ErrNotConnected is returned when writing through a closed client.
var ErrNotConnected = errors.New("not connected to OPC UA server")

// Writer writes a batch of items to a server.
type Writer interface {
	WriteBatch(ctx context.Context, items []WriteItem) (BatchResult, error)
}

// ItemFailure is an item the server rejected.
type ItemFailure struct {
	Item   WriteItem `json:"item"`
	Status string    `json:"status"`
}

// BatchResult splits a batch into accepted and rejected items.
type BatchResult struct {
	Succeeded []WriteItem   `json:"succeeded"`
	Failed    []ItemFailure `json:"failed"`
}

// OK reports whether every item was accepted.
func (r BatchResult) OK() bool {
	return len(r.Failed) == 0
}

// Publish writes items through w and logs the outcome of each item.
// An empty batch is not sent.
func Publish(ctx context.Context, w Writer, items []WriteItem, logger *slog.Logger) (BatchResult, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if len(items) == 0 {
		logger.Warn("no items to write")
		return BatchResult{}, nil
	}

	logger.Info("writing batch", slog.Int("items", len(items)))
	result, err := w.WriteBatch(ctx, items)
	if err != nil {
		logger.Error("batch write failed", slog.String("error", err.Error()))
		return result, err
	}

	for _, item := range result.Succeeded {
		logger.Debug("write succeeded",
			slog.String("node_id", item.NodeID),
			slog.String("description", item.Description))
	}
	for _, f := range result.Failed {
		logger.Warn("write failed",
			slog.String("node_id", f.Item.NodeID),
			slog.String("description", f.Item.Description),
			slog.String("status", f.Status))
	}
	logger.Info("batch write completed",
		slog.Int("succeeded", len(result.Succeeded)),
		slog.Int("total", len(items)))

	return result, nil
}
