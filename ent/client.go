// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/gapmapdev/gapmap/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/gapmapdev/gapmap/ent/classifierrequestevent"
	"github.com/gapmapdev/gapmap/ent/mergeevent"
	"github.com/gapmapdev/gapmap/ent/probeevent"
	"github.com/gapmapdev/gapmap/ent/profileversion"
	"github.com/gapmapdev/gapmap/ent/sessionrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ClassifierRequestEvent is the client for interacting with the ClassifierRequestEvent builders.
	ClassifierRequestEvent *ClassifierRequestEventClient
	// MergeEvent is the client for interacting with the MergeEvent builders.
	MergeEvent *MergeEventClient
	// ProbeEvent is the client for interacting with the ProbeEvent builders.
	ProbeEvent *ProbeEventClient
	// ProfileVersion is the client for interacting with the ProfileVersion builders.
	ProfileVersion *ProfileVersionClient
	// SessionRecord is the client for interacting with the SessionRecord builders.
	SessionRecord *SessionRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ClassifierRequestEvent = NewClassifierRequestEventClient(c.config)
	c.MergeEvent = NewMergeEventClient(c.config)
	c.ProbeEvent = NewProbeEventClient(c.config)
	c.ProfileVersion = NewProfileVersionClient(c.config)
	c.SessionRecord = NewSessionRecordClient(c.config)
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
		ctx:                    ctx,
		config:                 cfg,
		ClassifierRequestEvent: NewClassifierRequestEventClient(cfg),
		MergeEvent:             NewMergeEventClient(cfg),
		ProbeEvent:             NewProbeEventClient(cfg),
		ProfileVersion:         NewProfileVersionClient(cfg),
		SessionRecord:          NewSessionRecordClient(cfg),
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
		ctx:                    ctx,
		config:                 cfg,
		ClassifierRequestEvent: NewClassifierRequestEventClient(cfg),
		MergeEvent:             NewMergeEventClient(cfg),
		ProbeEvent:             NewProbeEventClient(cfg),
		ProfileVersion:         NewProfileVersionClient(cfg),
		SessionRecord:          NewSessionRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ClassifierRequestEvent.
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
	c.ClassifierRequestEvent.Use(hooks...)
	c.MergeEvent.Use(hooks...)
	c.ProbeEvent.Use(hooks...)
	c.ProfileVersion.Use(hooks...)
	c.SessionRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ClassifierRequestEvent.Intercept(interceptors...)
	c.MergeEvent.Intercept(interceptors...)
	c.ProbeEvent.Intercept(interceptors...)
	c.ProfileVersion.Intercept(interceptors...)
	c.SessionRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ClassifierRequestEventMutation:
		return c.ClassifierRequestEvent.mutate(ctx, m)
	case *MergeEventMutation:
		return c.MergeEvent.mutate(ctx, m)
	case *ProbeEventMutation:
		return c.ProbeEvent.mutate(ctx, m)
	case *ProfileVersionMutation:
		return c.ProfileVersion.mutate(ctx, m)
	case *SessionRecordMutation:
		return c.SessionRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ClassifierRequestEventClient is a client for the ClassifierRequestEvent schema.
type ClassifierRequestEventClient struct {
	config
}

// NewClassifierRequestEventClient returns a client for the ClassifierRequestEvent from the given config.
func NewClassifierRequestEventClient(c config) *ClassifierRequestEventClient {
	return &ClassifierRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `classifierrequestevent.Hooks(f(g(h())))`.
func (c *ClassifierRequestEventClient) Use(hooks ...Hook) {
	c.hooks.ClassifierRequestEvent = append(c.hooks.ClassifierRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `classifierrequestevent.Intercept(f(g(h())))`.
func (c *ClassifierRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClassifierRequestEvent = append(c.inters.ClassifierRequestEvent, interceptors...)
}

// Create returns a builder for creating a ClassifierRequestEvent entity.
func (c *ClassifierRequestEventClient) Create() *ClassifierRequestEventCreate {
	mutation := newClassifierRequestEventMutation(c.config, OpCreate)
	return &ClassifierRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClassifierRequestEvent entities.
func (c *ClassifierRequestEventClient) CreateBulk(builders ...*ClassifierRequestEventCreate) *ClassifierRequestEventCreateBulk {
	return &ClassifierRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClassifierRequestEventClient) MapCreateBulk(slice any, setFunc func(*ClassifierRequestEventCreate, int)) *ClassifierRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClassifierRequestEventCreateBulk{err: fmt.Errorf("calling to ClassifierRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClassifierRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClassifierRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClassifierRequestEvent.
func (c *ClassifierRequestEventClient) Update() *ClassifierRequestEventUpdate {
	mutation := newClassifierRequestEventMutation(c.config, OpUpdate)
	return &ClassifierRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClassifierRequestEventClient) UpdateOne(_m *ClassifierRequestEvent) *ClassifierRequestEventUpdateOne {
	mutation := newClassifierRequestEventMutation(c.config, OpUpdateOne, withClassifierRequestEvent(_m))
	return &ClassifierRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClassifierRequestEventClient) UpdateOneID(id int) *ClassifierRequestEventUpdateOne {
	mutation := newClassifierRequestEventMutation(c.config, OpUpdateOne, withClassifierRequestEventID(id))
	return &ClassifierRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClassifierRequestEvent.
func (c *ClassifierRequestEventClient) Delete() *ClassifierRequestEventDelete {
	mutation := newClassifierRequestEventMutation(c.config, OpDelete)
	return &ClassifierRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClassifierRequestEventClient) DeleteOne(_m *ClassifierRequestEvent) *ClassifierRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClassifierRequestEventClient) DeleteOneID(id int) *ClassifierRequestEventDeleteOne {
	builder := c.Delete().Where(classifierrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClassifierRequestEventDeleteOne{builder}
}

// Query returns a query builder for ClassifierRequestEvent.
func (c *ClassifierRequestEventClient) Query() *ClassifierRequestEventQuery {
	return &ClassifierRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClassifierRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ClassifierRequestEvent entity by its id.
func (c *ClassifierRequestEventClient) Get(ctx context.Context, id int) (*ClassifierRequestEvent, error) {
	return c.Query().Where(classifierrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClassifierRequestEventClient) GetX(ctx context.Context, id int) *ClassifierRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ClassifierRequestEventClient) Hooks() []Hook {
	return c.hooks.ClassifierRequestEvent
}

// Interceptors returns the client interceptors.
func (c *ClassifierRequestEventClient) Interceptors() []Interceptor {
	return c.inters.ClassifierRequestEvent
}

func (c *ClassifierRequestEventClient) mutate(ctx context.Context, m *ClassifierRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClassifierRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClassifierRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClassifierRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClassifierRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ClassifierRequestEvent mutation op: %q", m.Op())
	}
}

// MergeEventClient is a client for the MergeEvent schema.
type MergeEventClient struct {
	config
}

// NewMergeEventClient returns a client for the MergeEvent from the given config.
func NewMergeEventClient(c config) *MergeEventClient {
	return &MergeEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mergeevent.Hooks(f(g(h())))`.
func (c *MergeEventClient) Use(hooks ...Hook) {
	c.hooks.MergeEvent = append(c.hooks.MergeEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mergeevent.Intercept(f(g(h())))`.
func (c *MergeEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.MergeEvent = append(c.inters.MergeEvent, interceptors...)
}

// Create returns a builder for creating a MergeEvent entity.
func (c *MergeEventClient) Create() *MergeEventCreate {
	mutation := newMergeEventMutation(c.config, OpCreate)
	return &MergeEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MergeEvent entities.
func (c *MergeEventClient) CreateBulk(builders ...*MergeEventCreate) *MergeEventCreateBulk {
	return &MergeEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MergeEventClient) MapCreateBulk(slice any, setFunc func(*MergeEventCreate, int)) *MergeEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MergeEventCreateBulk{err: fmt.Errorf("calling to MergeEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MergeEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MergeEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MergeEvent.
func (c *MergeEventClient) Update() *MergeEventUpdate {
	mutation := newMergeEventMutation(c.config, OpUpdate)
	return &MergeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MergeEventClient) UpdateOne(_m *MergeEvent) *MergeEventUpdateOne {
	mutation := newMergeEventMutation(c.config, OpUpdateOne, withMergeEvent(_m))
	return &MergeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MergeEventClient) UpdateOneID(id int) *MergeEventUpdateOne {
	mutation := newMergeEventMutation(c.config, OpUpdateOne, withMergeEventID(id))
	return &MergeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MergeEvent.
func (c *MergeEventClient) Delete() *MergeEventDelete {
	mutation := newMergeEventMutation(c.config, OpDelete)
	return &MergeEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MergeEventClient) DeleteOne(_m *MergeEvent) *MergeEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MergeEventClient) DeleteOneID(id int) *MergeEventDeleteOne {
	builder := c.Delete().Where(mergeevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MergeEventDeleteOne{builder}
}

// Query returns a query builder for MergeEvent.
func (c *MergeEventClient) Query() *MergeEventQuery {
	return &MergeEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMergeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a MergeEvent entity by its id.
func (c *MergeEventClient) Get(ctx context.Context, id int) (*MergeEvent, error) {
	return c.Query().Where(mergeevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MergeEventClient) GetX(ctx context.Context, id int) *MergeEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MergeEventClient) Hooks() []Hook {
	return c.hooks.MergeEvent
}

// Interceptors returns the client interceptors.
func (c *MergeEventClient) Interceptors() []Interceptor {
	return c.inters.MergeEvent
}

func (c *MergeEventClient) mutate(ctx context.Context, m *MergeEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MergeEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MergeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MergeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MergeEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MergeEvent mutation op: %q", m.Op())
	}
}

// ProbeEventClient is a client for the ProbeEvent schema.
type ProbeEventClient struct {
	config
}

// NewProbeEventClient returns a client for the ProbeEvent from the given config.
func NewProbeEventClient(c config) *ProbeEventClient {
	return &ProbeEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `probeevent.Hooks(f(g(h())))`.
func (c *ProbeEventClient) Use(hooks ...Hook) {
	c.hooks.ProbeEvent = append(c.hooks.ProbeEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `probeevent.Intercept(f(g(h())))`.
func (c *ProbeEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProbeEvent = append(c.inters.ProbeEvent, interceptors...)
}

// Create returns a builder for creating a ProbeEvent entity.
func (c *ProbeEventClient) Create() *ProbeEventCreate {
	mutation := newProbeEventMutation(c.config, OpCreate)
	return &ProbeEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProbeEvent entities.
func (c *ProbeEventClient) CreateBulk(builders ...*ProbeEventCreate) *ProbeEventCreateBulk {
	return &ProbeEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProbeEventClient) MapCreateBulk(slice any, setFunc func(*ProbeEventCreate, int)) *ProbeEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProbeEventCreateBulk{err: fmt.Errorf("calling to ProbeEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProbeEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProbeEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProbeEvent.
func (c *ProbeEventClient) Update() *ProbeEventUpdate {
	mutation := newProbeEventMutation(c.config, OpUpdate)
	return &ProbeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProbeEventClient) UpdateOne(_m *ProbeEvent) *ProbeEventUpdateOne {
	mutation := newProbeEventMutation(c.config, OpUpdateOne, withProbeEvent(_m))
	return &ProbeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProbeEventClient) UpdateOneID(id int) *ProbeEventUpdateOne {
	mutation := newProbeEventMutation(c.config, OpUpdateOne, withProbeEventID(id))
	return &ProbeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProbeEvent.
func (c *ProbeEventClient) Delete() *ProbeEventDelete {
	mutation := newProbeEventMutation(c.config, OpDelete)
	return &ProbeEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProbeEventClient) DeleteOne(_m *ProbeEvent) *ProbeEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProbeEventClient) DeleteOneID(id int) *ProbeEventDeleteOne {
	builder := c.Delete().Where(probeevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProbeEventDeleteOne{builder}
}

// Query returns a query builder for ProbeEvent.
func (c *ProbeEventClient) Query() *ProbeEventQuery {
	return &ProbeEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProbeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ProbeEvent entity by its id.
func (c *ProbeEventClient) Get(ctx context.Context, id int) (*ProbeEvent, error) {
	return c.Query().Where(probeevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProbeEventClient) GetX(ctx context.Context, id int) *ProbeEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProbeEventClient) Hooks() []Hook {
	return c.hooks.ProbeEvent
}

// Interceptors returns the client interceptors.
func (c *ProbeEventClient) Interceptors() []Interceptor {
	return c.inters.ProbeEvent
}

func (c *ProbeEventClient) mutate(ctx context.Context, m *ProbeEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProbeEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProbeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProbeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProbeEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProbeEvent mutation op: %q", m.Op())
	}
}

// ProfileVersionClient is a client for the ProfileVersion schema.
type ProfileVersionClient struct {
	config
}

// NewProfileVersionClient returns a client for the ProfileVersion from the given config.
func NewProfileVersionClient(c config) *ProfileVersionClient {
	return &ProfileVersionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profileversion.Hooks(f(g(h())))`.
func (c *ProfileVersionClient) Use(hooks ...Hook) {
	c.hooks.ProfileVersion = append(c.hooks.ProfileVersion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profileversion.Intercept(f(g(h())))`.
func (c *ProfileVersionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProfileVersion = append(c.inters.ProfileVersion, interceptors...)
}

// Create returns a builder for creating a ProfileVersion entity.
func (c *ProfileVersionClient) Create() *ProfileVersionCreate {
	mutation := newProfileVersionMutation(c.config, OpCreate)
	return &ProfileVersionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProfileVersion entities.
func (c *ProfileVersionClient) CreateBulk(builders ...*ProfileVersionCreate) *ProfileVersionCreateBulk {
	return &ProfileVersionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileVersionClient) MapCreateBulk(slice any, setFunc func(*ProfileVersionCreate, int)) *ProfileVersionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileVersionCreateBulk{err: fmt.Errorf("calling to ProfileVersionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileVersionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileVersionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProfileVersion.
func (c *ProfileVersionClient) Update() *ProfileVersionUpdate {
	mutation := newProfileVersionMutation(c.config, OpUpdate)
	return &ProfileVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileVersionClient) UpdateOne(_m *ProfileVersion) *ProfileVersionUpdateOne {
	mutation := newProfileVersionMutation(c.config, OpUpdateOne, withProfileVersion(_m))
	return &ProfileVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileVersionClient) UpdateOneID(id int) *ProfileVersionUpdateOne {
	mutation := newProfileVersionMutation(c.config, OpUpdateOne, withProfileVersionID(id))
	return &ProfileVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProfileVersion.
func (c *ProfileVersionClient) Delete() *ProfileVersionDelete {
	mutation := newProfileVersionMutation(c.config, OpDelete)
	return &ProfileVersionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileVersionClient) DeleteOne(_m *ProfileVersion) *ProfileVersionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileVersionClient) DeleteOneID(id int) *ProfileVersionDeleteOne {
	builder := c.Delete().Where(profileversion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileVersionDeleteOne{builder}
}

// Query returns a query builder for ProfileVersion.
func (c *ProfileVersionClient) Query() *ProfileVersionQuery {
	return &ProfileVersionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfileVersion},
		inters: c.Interceptors(),
	}
}

// Get returns a ProfileVersion entity by its id.
func (c *ProfileVersionClient) Get(ctx context.Context, id int) (*ProfileVersion, error) {
	return c.Query().Where(profileversion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileVersionClient) GetX(ctx context.Context, id int) *ProfileVersion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProfileVersionClient) Hooks() []Hook {
	return c.hooks.ProfileVersion
}

// Interceptors returns the client interceptors.
func (c *ProfileVersionClient) Interceptors() []Interceptor {
	return c.inters.ProfileVersion
}

func (c *ProfileVersionClient) mutate(ctx context.Context, m *ProfileVersionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileVersionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileVersionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProfileVersion mutation op: %q", m.Op())
	}
}

// SessionRecordClient is a client for the SessionRecord schema.
type SessionRecordClient struct {
	config
}

// NewSessionRecordClient returns a client for the SessionRecord from the given config.
func NewSessionRecordClient(c config) *SessionRecordClient {
	return &SessionRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionrecord.Hooks(f(g(h())))`.
func (c *SessionRecordClient) Use(hooks ...Hook) {
	c.hooks.SessionRecord = append(c.hooks.SessionRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionrecord.Intercept(f(g(h())))`.
func (c *SessionRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionRecord = append(c.inters.SessionRecord, interceptors...)
}

// Create returns a builder for creating a SessionRecord entity.
func (c *SessionRecordClient) Create() *SessionRecordCreate {
	mutation := newSessionRecordMutation(c.config, OpCreate)
	return &SessionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionRecord entities.
func (c *SessionRecordClient) CreateBulk(builders ...*SessionRecordCreate) *SessionRecordCreateBulk {
	return &SessionRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionRecordClient) MapCreateBulk(slice any, setFunc func(*SessionRecordCreate, int)) *SessionRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionRecordCreateBulk{err: fmt.Errorf("calling to SessionRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionRecord.
func (c *SessionRecordClient) Update() *SessionRecordUpdate {
	mutation := newSessionRecordMutation(c.config, OpUpdate)
	return &SessionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionRecordClient) UpdateOne(_m *SessionRecord) *SessionRecordUpdateOne {
	mutation := newSessionRecordMutation(c.config, OpUpdateOne, withSessionRecord(_m))
	return &SessionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionRecordClient) UpdateOneID(id int) *SessionRecordUpdateOne {
	mutation := newSessionRecordMutation(c.config, OpUpdateOne, withSessionRecordID(id))
	return &SessionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionRecord.
func (c *SessionRecordClient) Delete() *SessionRecordDelete {
	mutation := newSessionRecordMutation(c.config, OpDelete)
	return &SessionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionRecordClient) DeleteOne(_m *SessionRecord) *SessionRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionRecordClient) DeleteOneID(id int) *SessionRecordDeleteOne {
	builder := c.Delete().Where(sessionrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionRecordDeleteOne{builder}
}

// Query returns a query builder for SessionRecord.
func (c *SessionRecordClient) Query() *SessionRecordQuery {
	return &SessionRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionRecord entity by its id.
func (c *SessionRecordClient) Get(ctx context.Context, id int) (*SessionRecord, error) {
	return c.Query().Where(sessionrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionRecordClient) GetX(ctx context.Context, id int) *SessionRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionRecordClient) Hooks() []Hook {
	return c.hooks.SessionRecord
}

// Interceptors returns the client interceptors.
func (c *SessionRecordClient) Interceptors() []Interceptor {
	return c.inters.SessionRecord
}

func (c *SessionRecordClient) mutate(ctx context.Context, m *SessionRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ClassifierRequestEvent, MergeEvent, ProbeEvent, ProfileVersion,
		SessionRecord []ent.Hook
	}
	inters struct {
		ClassifierRequestEvent, MergeEvent, ProbeEvent, ProfileVersion,
		SessionRecord []ent.Interceptor
	}
)
