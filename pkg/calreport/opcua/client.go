package opcua

import (
	"context"
	"fmt"
	"log/slog"

	gopcua "github.com/gopcua/opcua"
	"github.com/gopcua/opcua/ua"
	"github.com/ukaji3/calreport-go/internal/config"
)

// Client is a connected OPC UA session used for batch writes.
type Client struct {
	conn   *gopcua.Client
	logger *slog.Logger
}

// Dial selects an endpoint of cfg.EndpointURL and opens a session on it.
func Dial(ctx context.Context, cfg config.OPCUAConfig, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With(slog.String("endpoint", cfg.EndpointURL))

	endpoints, err := gopcua.GetEndpoints(ctx, cfg.EndpointURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get endpoints: %w", err)
	}

	policy, mode := securitySelection(cfg)
	ep, err := gopcua.SelectEndpoint(endpoints, policy, ua.MessageSecurityModeFromString(mode))
	if err != nil {
		return nil, fmt.Errorf("failed to select endpoint: %w", err)
	}

	conn, err := gopcua.NewClient(cfg.EndpointURL, clientOptions(cfg, ep)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	if err := conn.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	logger.Info("connected to OPC UA server",
		slog.String("security_policy", ep.SecurityPolicyURI),
		slog.String("security_mode", ep.SecurityMode.String()))

	return &Client{conn: conn, logger: logger}, nil
}

// securitySelection returns the policy and mode used to pick an endpoint.
// Without security only unencrypted endpoints qualify; with security and no
// explicit policy the most secure endpoint wins.
func securitySelection(cfg config.OPCUAConfig) (policy, mode string) {
	if !cfg.UseSecurity {
		return "None", "None"
	}
	return cfg.SecurityPolicy, cfg.SecurityMode
}

func clientOptions(cfg config.OPCUAConfig, ep *ua.EndpointDescription) []gopcua.Option {
	opts := []gopcua.Option{
		gopcua.ApplicationName(cfg.ApplicationName),
		gopcua.SessionName(cfg.ApplicationName + " Session"),
		gopcua.SessionTimeout(cfg.SessionTimeout),
		gopcua.RequestTimeout(cfg.RequestTimeout),
	}

	if cfg.CertificateFile != "" {
		opts = append(opts,
			gopcua.CertificateFile(cfg.CertificateFile),
			gopcua.PrivateKeyFile(cfg.PrivateKeyFile))
	}

	authType := ua.UserTokenTypeAnonymous
	if cfg.AuthenticationType == config.AuthUserName {
		authType = ua.UserTokenTypeUserName
		opts = append(opts, gopcua.AuthUsername(cfg.Username, cfg.Password))
	} else {
		opts = append(opts, gopcua.AuthAnonymous())
	}

	return append(opts, gopcua.SecurityFromEndpoint(ep, authType))
}

// WriteBatch writes all items in one request and sorts them by status.
func (c *Client) WriteBatch(ctx context.Context, items []WriteItem) (BatchResult, error) {
	if c == nil || c.conn == nil {
		return BatchResult{}, ErrNotConnected
	}
	if len(items) == 0 {
		return BatchResult{}, nil
	}

	req, err := BuildWriteRequest(items)
	if err != nil {
		return BatchResult{}, err
	}

	resp, err := c.conn.Write(ctx, req)
	if err != nil {
		return BatchResult{}, fmt.Errorf("write request failed: %w", err)
	}

	return SortResults(items, resp.Results), nil
}

// Close ends the session.
func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.conn == nil {
		return nil
	}
	err := c.conn.Close(ctx)
	c.conn = nil
	if err != nil {
		return fmt.Errorf("disconnect failed: %w", err)
	}
	c.logger.Info("disconnected from OPC UA server")
	return nil
}

// BuildWriteRequest converts items into a single write request of string values.
func BuildWriteRequest(items []WriteItem) (*ua.WriteRequest, error) {
	nodes := make([]*ua.WriteValue, 0, len(items))
	for _, item := range items {
		id, err := ua.ParseNodeID(item.NodeID)
		if err != nil {
			return nil, fmt.Errorf("invalid node id %q (%s): %w", item.NodeID, item.Description, err)
		}
		v, err := ua.NewVariant(item.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", item.Description, err)
		}
		nodes = append(nodes, &ua.WriteValue{
			NodeID:      id,
			AttributeID: ua.AttributeIDValue,
			Value: &ua.DataValue{
				EncodingMask: ua.DataValueValue,
				Value:        v,
			},
		})
	}
	return &ua.WriteRequest{NodesToWrite: nodes}, nil
}

// SortResults pairs per-item status codes with items. Items without a status
// count as failed.
func SortResults(items []WriteItem, results []ua.StatusCode) BatchResult {
	var out BatchResult
	for i, item := range items {
		if i >= len(results) {
			out.Failed = append(out.Failed, ItemFailure{Item: item, Status: "no result"})
			continue
		}
		if results[i] != ua.StatusOK {
			out.Failed = append(out.Failed, ItemFailure{Item: item, Status: results[i].Error()})
			continue
		}
		out.Succeeded = append(out.Succeeded, item)
	}
	return out
}
