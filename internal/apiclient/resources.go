package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
)

// ErrUnknownResource is returned by Client.Resource for unsupported names.
var ErrUnknownResource = errors.New("apiclient: unknown resource")

// Resource exposes the standard REST verbs of one backend collection.
type Resource struct {
	client *Client
	name   string
}

// Name returns the collection path segment, e.g. "workers".
func (r Resource) Name() string {
	return r.name
}

// List calls GET /{resource}.
func (r Resource) List(ctx context.Context) (json.RawMessage, error) {
	return r.client.Get(ctx, r.path())
}

// Get calls GET /{resource}/{id}.
func (r Resource) Get(ctx context.Context, id string) (json.RawMessage, error) {
	return r.client.Get(ctx, r.path(id))
}

// Create calls POST /{resource}.
func (r Resource) Create(ctx context.Context, body any) (json.RawMessage, error) {
	return r.client.Post(ctx, r.path(), body)
}

// Update calls PUT /{resource}/{id}.
func (r Resource) Update(ctx context.Context, id string, body any) (json.RawMessage, error) {
	return r.client.Put(ctx, r.path(id), body)
}

// Delete calls DELETE /{resource}/{id}.
func (r Resource) Delete(ctx context.Context, id string) (json.RawMessage, error) {
	return r.client.Delete(ctx, r.path(id))
}

func (r Resource) path(segments ...string) string {
	p := "/" + r.name
	for _, seg := range segments {
		p += "/" + url.PathEscape(seg)
	}
	return p
}

// Departments adds the by-division lookup.
type Departments struct{ Resource }

// ByDivision calls GET /departments/by-division/{divisionID}.
func (d Departments) ByDivision(ctx context.Context, divisionID string) (json.RawMessage, error) {
	return d.client.Get(ctx, d.path("by-division", divisionID))
}

// SubPositions adds the by-position lookup.
type SubPositions struct{ Resource }

// ByPosition calls GET /sub-positions/by-position/{positionID}.
func (s SubPositions) ByPosition(ctx context.Context, positionID string) (json.RawMessage, error) {
	return s.client.Get(ctx, s.path("by-position", positionID))
}

// Items adds the item-number lookup.
type Items struct{ Resource }

// ByNumber calls GET /items/number/{itemNumber}.
func (i Items) ByNumber(ctx context.Context, itemNumber string) (json.RawMessage, error) {
	return i.client.Get(ctx, i.path("number", itemNumber))
}

// ProductionLogs adds the bulk status increment.
type ProductionLogs struct{ Resource }

// BulkIncrementStatus posts ids as a JSON array to
// /production-logs/bulk-increment-status.
func (p ProductionLogs) BulkIncrementStatus(ctx context.Context, ids []int64) (json.RawMessage, error) {
	if ids == nil {
		ids = []int64{}
	}
	return p.client.Post(ctx, p.path("bulk-increment-status"), ids)
}

// SystemStatus calls GET /system/status.
func (c *Client) SystemStatus(ctx context.Context) (json.RawMessage, error) {
	return c.Get(ctx, "/system/status")
}

// DeviceStatus calls GET /devices/status.
func (c *Client) DeviceStatus(ctx context.Context) (json.RawMessage, error) {
	return c.Get(ctx, "/devices/status")
}

// Resource looks a collection up by its path segment.
func (c *Client) Resource(name string) (Resource, error) {
	for _, r := range c.resources() {
		if r.name == name {
			return r, nil
		}
	}
	return Resource{}, fmt.Errorf("%w: %q", ErrUnknownResource, name)
}

// ResourceNames lists the supported collections alphabetically.
func (c *Client) ResourceNames() []string {
	return ResourceNames()
}

// ResourceNames lists the supported collections alphabetically, without a client.
func ResourceNames() []string {
	names := []string{
		"divisions", "departments", "positions", "sub-positions", "workers",
		"shifts", "suppliers", "items", "problem-comments", "production-logs",
	}
	sort.Strings(names)
	return names
}

func (c *Client) resources() []Resource {
	return []Resource{
		c.Divisions,
		c.Departments.Resource,
		c.Positions,
		c.SubPositions.Resource,
		c.Workers,
		c.Shifts,
		c.Suppliers,
		c.Items.Resource,
		c.ProblemComments,
		c.ProductionLogs.Resource,
	}
}
