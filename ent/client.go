// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/MiniSankaz/fleetd/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/MiniSankaz/fleetd/ent/approvaldecision"
	"github.com/MiniSankaz/fleetd/ent/approvalrequest"
	"github.com/MiniSankaz/fleetd/ent/auditentry"
	"github.com/MiniSankaz/fleetd/ent/usagealert"
	"github.com/MiniSankaz/fleetd/ent/usagemetric"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ApprovalDecision is the client for interacting with the ApprovalDecision builders.
	ApprovalDecision *ApprovalDecisionClient
	// ApprovalRequest is the client for interacting with the ApprovalRequest builders.
	ApprovalRequest *ApprovalRequestClient
	// AuditEntry is the client for interacting with the AuditEntry builders.
	AuditEntry *AuditEntryClient
	// UsageAlert is the client for interacting with the UsageAlert builders.
	UsageAlert *UsageAlertClient
	// UsageMetric is the client for interacting with the UsageMetric builders.
	UsageMetric *UsageMetricClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ApprovalDecision = NewApprovalDecisionClient(c.config)
	c.ApprovalRequest = NewApprovalRequestClient(c.config)
	c.AuditEntry = NewAuditEntryClient(c.config)
	c.UsageAlert = NewUsageAlertClient(c.config)
	c.UsageMetric = NewUsageMetricClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		ApprovalDecision: NewApprovalDecisionClient(cfg),
		ApprovalRequest:  NewApprovalRequestClient(cfg),
		AuditEntry:       NewAuditEntryClient(cfg),
		UsageAlert:       NewUsageAlertClient(cfg),
		UsageMetric:      NewUsageMetricClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		ApprovalDecision: NewApprovalDecisionClient(cfg),
		ApprovalRequest:  NewApprovalRequestClient(cfg),
		AuditEntry:       NewAuditEntryClient(cfg),
		UsageAlert:       NewUsageAlertClient(cfg),
		UsageMetric:      NewUsageMetricClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ApprovalDecision.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.ApprovalDecision.Use(hooks...)
	c.ApprovalRequest.Use(hooks...)
	c.AuditEntry.Use(hooks...)
	c.UsageAlert.Use(hooks...)
	c.UsageMetric.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ApprovalDecision.Intercept(interceptors...)
	c.ApprovalRequest.Intercept(interceptors...)
	c.AuditEntry.Intercept(interceptors...)
	c.UsageAlert.Intercept(interceptors...)
	c.UsageMetric.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ApprovalDecisionMutation:
		return c.ApprovalDecision.mutate(ctx, m)
	case *ApprovalRequestMutation:
		return c.ApprovalRequest.mutate(ctx, m)
	case *AuditEntryMutation:
		return c.AuditEntry.mutate(ctx, m)
	case *UsageAlertMutation:
		return c.UsageAlert.mutate(ctx, m)
	case *UsageMetricMutation:
		return c.UsageMetric.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ApprovalDecisionClient is a client for the ApprovalDecision schema.
type ApprovalDecisionClient struct {
	config
}

// NewApprovalDecisionClient returns a client for the ApprovalDecision from the given config.
func NewApprovalDecisionClient(c config) *ApprovalDecisionClient {
	return &ApprovalDecisionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `approvaldecision.Hooks(f(g(h())))`.
func (c *ApprovalDecisionClient) Use(hooks ...Hook) {
	c.hooks.ApprovalDecision = append(c.hooks.ApprovalDecision, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `approvaldecision.Intercept(f(g(h())))`.
func (c *ApprovalDecisionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ApprovalDecision = append(c.inters.ApprovalDecision, interceptors...)
}

// Create returns a builder for creating a ApprovalDecision entity.
func (c *ApprovalDecisionClient) Create() *ApprovalDecisionCreate {
	mutation := newApprovalDecisionMutation(c.config, OpCreate)
	return &ApprovalDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ApprovalDecision entities.
func (c *ApprovalDecisionClient) CreateBulk(builders ...*ApprovalDecisionCreate) *ApprovalDecisionCreateBulk {
	return &ApprovalDecisionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApprovalDecisionClient) MapCreateBulk(slice any, setFunc func(*ApprovalDecisionCreate, int)) *ApprovalDecisionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApprovalDecisionCreateBulk{err: fmt.Errorf("calling to ApprovalDecisionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApprovalDecisionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApprovalDecisionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ApprovalDecision.
func (c *ApprovalDecisionClient) Update() *ApprovalDecisionUpdate {
	mutation := newApprovalDecisionMutation(c.config, OpUpdate)
	return &ApprovalDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApprovalDecisionClient) UpdateOne(_m *ApprovalDecision) *ApprovalDecisionUpdateOne {
	mutation := newApprovalDecisionMutation(c.config, OpUpdateOne, withApprovalDecision(_m))
	return &ApprovalDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApprovalDecisionClient) UpdateOneID(id string) *ApprovalDecisionUpdateOne {
	mutation := newApprovalDecisionMutation(c.config, OpUpdateOne, withApprovalDecisionID(id))
	return &ApprovalDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ApprovalDecision.
func (c *ApprovalDecisionClient) Delete() *ApprovalDecisionDelete {
	mutation := newApprovalDecisionMutation(c.config, OpDelete)
	return &ApprovalDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApprovalDecisionClient) DeleteOne(_m *ApprovalDecision) *ApprovalDecisionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApprovalDecisionClient) DeleteOneID(id string) *ApprovalDecisionDeleteOne {
	builder := c.Delete().Where(approvaldecision.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApprovalDecisionDeleteOne{builder}
}

// Query returns a query builder for ApprovalDecision.
func (c *ApprovalDecisionClient) Query() *ApprovalDecisionQuery {
	return &ApprovalDecisionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApprovalDecision},
		inters: c.Interceptors(),
	}
}

// Get returns a ApprovalDecision entity by its id.
func (c *ApprovalDecisionClient) Get(ctx context.Context, id string) (*ApprovalDecision, error) {
	return c.Query().Where(approvaldecision.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApprovalDecisionClient) GetX(ctx context.Context, id string) *ApprovalDecision {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequest queries the request edge of a ApprovalDecision.
func (c *ApprovalDecisionClient) QueryRequest(_m *ApprovalDecision) *ApprovalRequestQuery {
	query := (&ApprovalRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(approvaldecision.Table, approvaldecision.FieldID, id),
			sqlgraph.To(approvalrequest.Table, approvalrequest.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, approvaldecision.RequestTable, approvaldecision.RequestColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ApprovalDecisionClient) Hooks() []Hook {
	return c.hooks.ApprovalDecision
}

// Interceptors returns the client interceptors.
func (c *ApprovalDecisionClient) Interceptors() []Interceptor {
	return c.inters.ApprovalDecision
}

func (c *ApprovalDecisionClient) mutate(ctx context.Context, m *ApprovalDecisionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApprovalDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApprovalDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApprovalDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApprovalDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ApprovalDecision mutation op: %q", m.Op())
	}
}

// ApprovalRequestClient is a client for the ApprovalRequest schema.
type ApprovalRequestClient struct {
	config
}

// NewApprovalRequestClient returns a client for the ApprovalRequest from the given config.
func NewApprovalRequestClient(c config) *ApprovalRequestClient {
	return &ApprovalRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `approvalrequest.Hooks(f(g(h())))`.
func (c *ApprovalRequestClient) Use(hooks ...Hook) {
	c.hooks.ApprovalRequest = append(c.hooks.ApprovalRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `approvalrequest.Intercept(f(g(h())))`.
func (c *ApprovalRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.ApprovalRequest = append(c.inters.ApprovalRequest, interceptors...)
}

// Create returns a builder for creating a ApprovalRequest entity.
func (c *ApprovalRequestClient) Create() *ApprovalRequestCreate {
	mutation := newApprovalRequestMutation(c.config, OpCreate)
	return &ApprovalRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ApprovalRequest entities.
func (c *ApprovalRequestClient) CreateBulk(builders ...*ApprovalRequestCreate) *ApprovalRequestCreateBulk {
	return &ApprovalRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApprovalRequestClient) MapCreateBulk(slice any, setFunc func(*ApprovalRequestCreate, int)) *ApprovalRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApprovalRequestCreateBulk{err: fmt.Errorf("calling to ApprovalRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApprovalRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApprovalRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ApprovalRequest.
func (c *ApprovalRequestClient) Update() *ApprovalRequestUpdate {
	mutation := newApprovalRequestMutation(c.config, OpUpdate)
	return &ApprovalRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApprovalRequestClient) UpdateOne(_m *ApprovalRequest) *ApprovalRequestUpdateOne {
	mutation := newApprovalRequestMutation(c.config, OpUpdateOne, withApprovalRequest(_m))
	return &ApprovalRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApprovalRequestClient) UpdateOneID(id string) *ApprovalRequestUpdateOne {
	mutation := newApprovalRequestMutation(c.config, OpUpdateOne, withApprovalRequestID(id))
	return &ApprovalRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ApprovalRequest.
func (c *ApprovalRequestClient) Delete() *ApprovalRequestDelete {
	mutation := newApprovalRequestMutation(c.config, OpDelete)
	return &ApprovalRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApprovalRequestClient) DeleteOne(_m *ApprovalRequest) *ApprovalRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApprovalRequestClient) DeleteOneID(id string) *ApprovalRequestDeleteOne {
	builder := c.Delete().Where(approvalrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApprovalRequestDeleteOne{builder}
}

// Query returns a query builder for ApprovalRequest.
func (c *ApprovalRequestClient) Query() *ApprovalRequestQuery {
	return &ApprovalRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApprovalRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a ApprovalRequest entity by its id.
func (c *ApprovalRequestClient) Get(ctx context.Context, id string) (*ApprovalRequest, error) {
	return c.Query().Where(approvalrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApprovalRequestClient) GetX(ctx context.Context, id string) *ApprovalRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDecisions queries the decisions edge of a ApprovalRequest.
func (c *ApprovalRequestClient) QueryDecisions(_m *ApprovalRequest) *ApprovalDecisionQuery {
	query := (&ApprovalDecisionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(approvalrequest.Table, approvalrequest.FieldID, id),
			sqlgraph.To(approvaldecision.Table, approvaldecision.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, approvalrequest.DecisionsTable, approvalrequest.DecisionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAuditEntries queries the audit_entries edge of a ApprovalRequest.
func (c *ApprovalRequestClient) QueryAuditEntries(_m *ApprovalRequest) *AuditEntryQuery {
	query := (&AuditEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(approvalrequest.Table, approvalrequest.FieldID, id),
			sqlgraph.To(auditentry.Table, auditentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, approvalrequest.AuditEntriesTable, approvalrequest.AuditEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ApprovalRequestClient) Hooks() []Hook {
	return c.hooks.ApprovalRequest
}

// Interceptors returns the client interceptors.
func (c *ApprovalRequestClient) Interceptors() []Interceptor {
	return c.inters.ApprovalRequest
}

func (c *ApprovalRequestClient) mutate(ctx context.Context, m *ApprovalRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApprovalRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApprovalRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApprovalRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApprovalRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ApprovalRequest mutation op: %q", m.Op())
	}
}

// AuditEntryClient is a client for the AuditEntry schema.
type AuditEntryClient struct {
	config
}

// NewAuditEntryClient returns a client for the AuditEntry from the given config.
func NewAuditEntryClient(c config) *AuditEntryClient {
	return &AuditEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditentry.Hooks(f(g(h())))`.
func (c *AuditEntryClient) Use(hooks ...Hook) {
	c.hooks.AuditEntry = append(c.hooks.AuditEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditentry.Intercept(f(g(h())))`.
func (c *AuditEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditEntry = append(c.inters.AuditEntry, interceptors...)
}

// Create returns a builder for creating a AuditEntry entity.
func (c *AuditEntryClient) Create() *AuditEntryCreate {
	mutation := newAuditEntryMutation(c.config, OpCreate)
	return &AuditEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditEntry entities.
func (c *AuditEntryClient) CreateBulk(builders ...*AuditEntryCreate) *AuditEntryCreateBulk {
	return &AuditEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditEntryClient) MapCreateBulk(slice any, setFunc func(*AuditEntryCreate, int)) *AuditEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditEntryCreateBulk{err: fmt.Errorf("calling to AuditEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditEntry.
func (c *AuditEntryClient) Update() *AuditEntryUpdate {
	mutation := newAuditEntryMutation(c.config, OpUpdate)
	return &AuditEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditEntryClient) UpdateOne(_m *AuditEntry) *AuditEntryUpdateOne {
	mutation := newAuditEntryMutation(c.config, OpUpdateOne, withAuditEntry(_m))
	return &AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditEntryClient) UpdateOneID(id string) *AuditEntryUpdateOne {
	mutation := newAuditEntryMutation(c.config, OpUpdateOne, withAuditEntryID(id))
	return &AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditEntry.
func (c *AuditEntryClient) Delete() *AuditEntryDelete {
	mutation := newAuditEntryMutation(c.config, OpDelete)
	return &AuditEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditEntryClient) DeleteOne(_m *AuditEntry) *AuditEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditEntryClient) DeleteOneID(id string) *AuditEntryDeleteOne {
	builder := c.Delete().Where(auditentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditEntryDeleteOne{builder}
}

// Query returns a query builder for AuditEntry.
func (c *AuditEntryClient) Query() *AuditEntryQuery {
	return &AuditEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditEntry entity by its id.
func (c *AuditEntryClient) Get(ctx context.Context, id string) (*AuditEntry, error) {
	return c.Query().Where(auditentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditEntryClient) GetX(ctx context.Context, id string) *AuditEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequest queries the request edge of a AuditEntry.
func (c *AuditEntryClient) QueryRequest(_m *AuditEntry) *ApprovalRequestQuery {
	query := (&ApprovalRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(auditentry.Table, auditentry.FieldID, id),
			sqlgraph.To(approvalrequest.Table, approvalrequest.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, auditentry.RequestTable, auditentry.RequestColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuditEntryClient) Hooks() []Hook {
	return c.hooks.AuditEntry
}

// Interceptors returns the client interceptors.
func (c *AuditEntryClient) Interceptors() []Interceptor {
	return c.inters.AuditEntry
}

func (c *AuditEntryClient) mutate(ctx context.Context, m *AuditEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditEntry mutation op: %q", m.Op())
	}
}

// UsageAlertClient is a client for the UsageAlert schema.
type UsageAlertClient struct {
	config
}

// NewUsageAlertClient returns a client for the UsageAlert from the given config.
func NewUsageAlertClient(c config) *UsageAlertClient {
	return &UsageAlertClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usagealert.Hooks(f(g(h())))`.
func (c *UsageAlertClient) Use(hooks ...Hook) {
	c.hooks.UsageAlert = append(c.hooks.UsageAlert, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usagealert.Intercept(f(g(h())))`.
func (c *UsageAlertClient) Intercept(interceptors ...Interceptor) {
	c.inters.UsageAlert = append(c.inters.UsageAlert, interceptors...)
}

// Create returns a builder for creating a UsageAlert entity.
func (c *UsageAlertClient) Create() *UsageAlertCreate {
	mutation := newUsageAlertMutation(c.config, OpCreate)
	return &UsageAlertCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UsageAlert entities.
func (c *UsageAlertClient) CreateBulk(builders ...*UsageAlertCreate) *UsageAlertCreateBulk {
	return &UsageAlertCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UsageAlertClient) MapCreateBulk(slice any, setFunc func(*UsageAlertCreate, int)) *UsageAlertCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UsageAlertCreateBulk{err: fmt.Errorf("calling to UsageAlertClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UsageAlertCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UsageAlertCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UsageAlert.
func (c *UsageAlertClient) Update() *UsageAlertUpdate {
	mutation := newUsageAlertMutation(c.config, OpUpdate)
	return &UsageAlertUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UsageAlertClient) UpdateOne(_m *UsageAlert) *UsageAlertUpdateOne {
	mutation := newUsageAlertMutation(c.config, OpUpdateOne, withUsageAlert(_m))
	return &UsageAlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UsageAlertClient) UpdateOneID(id string) *UsageAlertUpdateOne {
	mutation := newUsageAlertMutation(c.config, OpUpdateOne, withUsageAlertID(id))
	return &UsageAlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UsageAlert.
func (c *UsageAlertClient) Delete() *UsageAlertDelete {
	mutation := newUsageAlertMutation(c.config, OpDelete)
	return &UsageAlertDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UsageAlertClient) DeleteOne(_m *UsageAlert) *UsageAlertDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UsageAlertClient) DeleteOneID(id string) *UsageAlertDeleteOne {
	builder := c.Delete().Where(usagealert.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UsageAlertDeleteOne{builder}
}

// Query returns a query builder for UsageAlert.
func (c *UsageAlertClient) Query() *UsageAlertQuery {
	return &UsageAlertQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUsageAlert},
		inters: c.Interceptors(),
	}
}

// Get returns a UsageAlert entity by its id.
func (c *UsageAlertClient) Get(ctx context.Context, id string) (*UsageAlert, error) {
	return c.Query().Where(usagealert.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UsageAlertClient) GetX(ctx context.Context, id string) *UsageAlert {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UsageAlertClient) Hooks() []Hook {
	return c.hooks.UsageAlert
}

// Interceptors returns the client interceptors.
func (c *UsageAlertClient) Interceptors() []Interceptor {
	return c.inters.UsageAlert
}

func (c *UsageAlertClient) mutate(ctx context.Context, m *UsageAlertMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UsageAlertCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UsageAlertUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UsageAlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UsageAlertDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UsageAlert mutation op: %q", m.Op())
	}
}

// UsageMetricClient is a client for the UsageMetric schema.
type UsageMetricClient struct {
	config
}

// NewUsageMetricClient returns a client for the UsageMetric from the given config.
func NewUsageMetricClient(c config) *UsageMetricClient {
	return &UsageMetricClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usagemetric.Hooks(f(g(h())))`.
func (c *UsageMetricClient) Use(hooks ...Hook) {
	c.hooks.UsageMetric = append(c.hooks.UsageMetric, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usagemetric.Intercept(f(g(h())))`.
func (c *UsageMetricClient) Intercept(interceptors ...Interceptor) {
	c.inters.UsageMetric = append(c.inters.UsageMetric, interceptors...)
}

// Create returns a builder for creating a UsageMetric entity.
func (c *UsageMetricClient) Create() *UsageMetricCreate {
	mutation := newUsageMetricMutation(c.config, OpCreate)
	return &UsageMetricCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UsageMetric entities.
func (c *UsageMetricClient) CreateBulk(builders ...*UsageMetricCreate) *UsageMetricCreateBulk {
	return &UsageMetricCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UsageMetricClient) MapCreateBulk(slice any, setFunc func(*UsageMetricCreate, int)) *UsageMetricCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UsageMetricCreateBulk{err: fmt.Errorf("calling to UsageMetricClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UsageMetricCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UsageMetricCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UsageMetric.
func (c *UsageMetricClient) Update() *UsageMetricUpdate {
	mutation := newUsageMetricMutation(c.config, OpUpdate)
	return &UsageMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UsageMetricClient) UpdateOne(_m *UsageMetric) *UsageMetricUpdateOne {
	mutation := newUsageMetricMutation(c.config, OpUpdateOne, withUsageMetric(_m))
	return &UsageMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UsageMetricClient) UpdateOneID(id string) *UsageMetricUpdateOne {
	mutation := newUsageMetricMutation(c.config, OpUpdateOne, withUsageMetricID(id))
	return &UsageMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UsageMetric.
func (c *UsageMetricClient) Delete() *UsageMetricDelete {
	mutation := newUsageMetricMutation(c.config, OpDelete)
	return &UsageMetricDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UsageMetricClient) DeleteOne(_m *UsageMetric) *UsageMetricDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UsageMetricClient) DeleteOneID(id string) *UsageMetricDeleteOne {
	builder := c.Delete().Where(usagemetric.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UsageMetricDeleteOne{builder}
}

// Query returns a query builder for UsageMetric.
func (c *UsageMetricClient) Query() *UsageMetricQuery {
	return &UsageMetricQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUsageMetric},
		inters: c.Interceptors(),
	}
}

// Get returns a UsageMetric entity by its id.
func (c *UsageMetricClient) Get(ctx context.Context, id string) (*UsageMetric, error) {
	return c.Query().Where(usagemetric.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UsageMetricClient) GetX(ctx context.Context, id string) *UsageMetric {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UsageMetricClient) Hooks() []Hook {
	return c.hooks.UsageMetric
}

// Interceptors returns the client interceptors.
func (c *UsageMetricClient) Interceptors() []Interceptor {
	return c.inters.UsageMetric
}

func (c *UsageMetricClient) mutate(ctx context.Context, m *UsageMetricMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UsageMetricCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UsageMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UsageMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UsageMetricDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UsageMetric mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ApprovalDecision, ApprovalRequest, AuditEntry, UsageAlert,
		UsageMetric []ent.Hook
	}
	inters struct {
		ApprovalDecision, ApprovalRequest, AuditEntry, UsageAlert,
		UsageMetric []ent.Interceptor
	}
)
