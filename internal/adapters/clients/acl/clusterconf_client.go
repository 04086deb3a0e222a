package acl

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/clusterconf/internal/adapters/clients/acl/clusterconf"
	"github.com/jsamuelsen11/clusterconf/internal/domain/option"
	"github.com/jsamuelsen11/clusterconf/internal/domain/override"
	"github.com/jsamuelsen11/clusterconf/internal/platform/httpclient"
	"github.com/jsamuelsen11/clusterconf/internal/ports"
)

// Compile-time interface check.
var _ ports.ClusterConfClient = (*ClusterConfClient)(nil)

const (
	confPath  = "/api/cluster_conf"
	adminPath = "/api/admin/config"
)

// ClusterConfClient is the outbound adapter for a remote cluster_conf API.
// It implements [ports.ClusterConfClient] for the query endpoints and the
// admin write endpoints.
//
// Wire records are translated by the [clusterconf] sub-package. HTTP errors
// are mapped to domain errors (ErrNotFound, ErrValidation, etc.) by
// [TranslateHTTPError].
//
// The underlying [httpclient.Client] provides circuit breaking, retry with
// exponential backoff, OpenTelemetry tracing, and health checking
// ([ports.HealthChecker]) for every outbound call.
type ClusterConfClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewClusterConfClient creates a ClusterConfClient that sends requests
// through the given [httpclient.Client]. The client's BaseURL should point
// to the service root (e.g. "http://localhost:8080").
func NewClusterConfClient(client *httpclient.Client, logger *slog.Logger) *ClusterConfClient {
	return &ClusterConfClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// --- Query operations ---

// ListOptions fetches every option record from GET /api/cluster_conf.
func (c *ClusterConfClient) ListOptions(ctx context.Context) ([]option.Option, error) {
	var dtos []clusterconf.OptionDTO
	if err := c.req.Do(ctx, http.MethodGet, confPath, http.StatusOK, nil, &dtos); err != nil {
		return nil, err
	}
	return clusterconf.ToDomainOptionList(dtos), nil
}

// GetOption fetches one record from GET /api/cluster_conf/{name}.
// Returns [domain.ErrNotFound] if the option is unknown.
func (c *ClusterConfClient) GetOption(ctx context.Context, name string) (*option.Option, error) {
	path := confPath + "/" + url.PathEscape(name)

	var dto clusterconf.OptionDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	result := clusterconf.ToDomainOption(&dto)
	return &result, nil
}

// FilterOptions fetches the records for names from
// GET /api/cluster_conf/filter. Unknown names are omitted by the server.
func (c *ClusterConfClient) FilterOptions(ctx context.Context, names []string) ([]option.Option, error) {
	path := confPath + "/filter?" + url.Values{"names": {strings.Join(names, ",")}}.Encode()

	var dtos []clusterconf.OptionDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dtos); err != nil {
		return nil, err
	}
	return clusterconf.ToDomainOptionList(dtos), nil
}

// --- Admin operations ---

// SetOption sends PUT /api/admin/config/{section}/{name} and returns the
// stored override with its canonical value.
func (c *ClusterConfClient) SetOption(ctx context.Context, section, name, value string) (*override.Override, error) {
	var respDTO clusterconf.OverrideDTO
	err := c.req.Do(ctx, http.MethodPut, overridePath(section, name), http.StatusOK,
		clusterconf.ToSetOverrideRequest(value), &respDTO)
	if err != nil {
		return nil, err
	}
	result := clusterconf.ToDomainOverride(&respDTO)
	return &result, nil
}

// RemoveOption sends DELETE /api/admin/config/{section}/{name}.
// Returns [domain.ErrNotFound] if no override exists.
func (c *ClusterConfClient) RemoveOption(ctx context.Context, section, name string) error {
	return c.req.Do(ctx, http.MethodDelete, overridePath(section, name), http.StatusNoContent, nil, nil)
}

// Dump fetches every stored override from GET /api/admin/config.
func (c *ClusterConfClient) Dump(ctx context.Context) ([]override.Override, error) {
	var dto clusterconf.OverrideListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, adminPath, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return clusterconf.ToDomainOverrideList(dto), nil
}

func overridePath(section, name string) string {
	return adminPath + "/" + url.PathEscape(section) + "/" + url.PathEscape(name)
}
