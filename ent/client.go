// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/atlas/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/atlas/ent/activityevent"
	"github.com/abhisek/atlas/ent/knowledgegraphdoc"
	"github.com/abhisek/atlas/ent/lessonplandoc"
	"github.com/abhisek/atlas/ent/llmcallevent"
	"github.com/abhisek/atlas/ent/masteryrecord"
	"github.com/abhisek/atlas/ent/session"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ActivityEvent is the client for interacting with the ActivityEvent builders.
	ActivityEvent *ActivityEventClient
	// KnowledgeGraphDoc is the client for interacting with the KnowledgeGraphDoc builders.
	KnowledgeGraphDoc *KnowledgeGraphDocClient
	// LLMCallEvent is the client for interacting with the LLMCallEvent builders.
	LLMCallEvent *LLMCallEventClient
	// LessonPlanDoc is the client for interacting with the LessonPlanDoc builders.
	LessonPlanDoc *LessonPlanDocClient
	// MasteryRecord is the client for interacting with the MasteryRecord builders.
	MasteryRecord *MasteryRecordClient
	// Session is the client for interacting with the Session builders.
	Session *SessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ActivityEvent = NewActivityEventClient(c.config)
	c.KnowledgeGraphDoc = NewKnowledgeGraphDocClient(c.config)
	c.LLMCallEvent = NewLLMCallEventClient(c.config)
	c.LessonPlanDoc = NewLessonPlanDocClient(c.config)
	c.MasteryRecord = NewMasteryRecordClient(c.config)
	c.Session = NewSessionClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		ActivityEvent:     NewActivityEventClient(cfg),
		KnowledgeGraphDoc: NewKnowledgeGraphDocClient(cfg),
		LLMCallEvent:      NewLLMCallEventClient(cfg),
		LessonPlanDoc:     NewLessonPlanDocClient(cfg),
		MasteryRecord:     NewMasteryRecordClient(cfg),
		Session:           NewSessionClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		ActivityEvent:     NewActivityEventClient(cfg),
		KnowledgeGraphDoc: NewKnowledgeGraphDocClient(cfg),
		LLMCallEvent:      NewLLMCallEventClient(cfg),
		LessonPlanDoc:     NewLessonPlanDocClient(cfg),
		MasteryRecord:     NewMasteryRecordClient(cfg),
		Session:           NewSessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ActivityEvent.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.ActivityEvent, c.KnowledgeGraphDoc, c.LLMCallEvent, c.LessonPlanDoc,
		c.MasteryRecord, c.Session,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ActivityEvent, c.KnowledgeGraphDoc, c.LLMCallEvent, c.LessonPlanDoc,
		c.MasteryRecord, c.Session,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ActivityEventMutation:
		return c.ActivityEvent.mutate(ctx, m)
	case *KnowledgeGraphDocMutation:
		return c.KnowledgeGraphDoc.mutate(ctx, m)
	case *LLMCallEventMutation:
		return c.LLMCallEvent.mutate(ctx, m)
	case *LessonPlanDocMutation:
		return c.LessonPlanDoc.mutate(ctx, m)
	case *MasteryRecordMutation:
		return c.MasteryRecord.mutate(ctx, m)
	case *SessionMutation:
		return c.Session.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ActivityEventClient is a client for the ActivityEvent schema.
type ActivityEventClient struct {
	config
}

// NewActivityEventClient returns a client for the ActivityEvent from the given config.
func NewActivityEventClient(c config) *ActivityEventClient {
	return &ActivityEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `activityevent.Hooks(f(g(h())))`.
func (c *ActivityEventClient) Use(hooks ...Hook) {
	c.hooks.ActivityEvent = append(c.hooks.ActivityEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `activityevent.Intercept(f(g(h())))`.
func (c *ActivityEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActivityEvent = append(c.inters.ActivityEvent, interceptors...)
}

// Create returns a builder for creating a ActivityEvent entity.
func (c *ActivityEventClient) Create() *ActivityEventCreate {
	mutation := newActivityEventMutation(c.config, OpCreate)
	return &ActivityEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActivityEvent entities.
func (c *ActivityEventClient) CreateBulk(builders ...*ActivityEventCreate) *ActivityEventCreateBulk {
	return &ActivityEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActivityEventClient) MapCreateBulk(slice any, setFunc func(*ActivityEventCreate, int)) *ActivityEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActivityEventCreateBulk{err: fmt.Errorf("calling to ActivityEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActivityEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActivityEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActivityEvent.
func (c *ActivityEventClient) Update() *ActivityEventUpdate {
	mutation := newActivityEventMutation(c.config, OpUpdate)
	return &ActivityEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActivityEventClient) UpdateOne(_m *ActivityEvent) *ActivityEventUpdateOne {
	mutation := newActivityEventMutation(c.config, OpUpdateOne, withActivityEvent(_m))
	return &ActivityEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActivityEventClient) UpdateOneID(id int) *ActivityEventUpdateOne {
	mutation := newActivityEventMutation(c.config, OpUpdateOne, withActivityEventID(id))
	return &ActivityEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActivityEvent.
func (c *ActivityEventClient) Delete() *ActivityEventDelete {
	mutation := newActivityEventMutation(c.config, OpDelete)
	return &ActivityEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActivityEventClient) DeleteOne(_m *ActivityEvent) *ActivityEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActivityEventClient) DeleteOneID(id int) *ActivityEventDeleteOne {
	builder := c.Delete().Where(activityevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActivityEventDeleteOne{builder}
}

// Query returns a query builder for ActivityEvent.
func (c *ActivityEventClient) Query() *ActivityEventQuery {
	return &ActivityEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActivityEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ActivityEvent entity by its id.
func (c *ActivityEventClient) Get(ctx context.Context, id int) (*ActivityEvent, error) {
	return c.Query().Where(activityevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActivityEventClient) GetX(ctx context.Context, id int) *ActivityEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ActivityEventClient) Hooks() []Hook {
	return c.hooks.ActivityEvent
}

// Interceptors returns the client interceptors.
func (c *ActivityEventClient) Interceptors() []Interceptor {
	return c.inters.ActivityEvent
}

func (c *ActivityEventClient) mutate(ctx context.Context, m *ActivityEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActivityEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActivityEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActivityEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActivityEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ActivityEvent mutation op: %q", m.Op())
	}
}

// KnowledgeGraphDocClient is a client for the KnowledgeGraphDoc schema.
type KnowledgeGraphDocClient struct {
	config
}

// NewKnowledgeGraphDocClient returns a client for the KnowledgeGraphDoc from the given config.
func NewKnowledgeGraphDocClient(c config) *KnowledgeGraphDocClient {
	return &KnowledgeGraphDocClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `knowledgegraphdoc.Hooks(f(g(h())))`.
func (c *KnowledgeGraphDocClient) Use(hooks ...Hook) {
	c.hooks.KnowledgeGraphDoc = append(c.hooks.KnowledgeGraphDoc, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `knowledgegraphdoc.Intercept(f(g(h())))`.
func (c *KnowledgeGraphDocClient) Intercept(interceptors ...Interceptor) {
	c.inters.KnowledgeGraphDoc = append(c.inters.KnowledgeGraphDoc, interceptors...)
}

// Create returns a builder for creating a KnowledgeGraphDoc entity.
func (c *KnowledgeGraphDocClient) Create() *KnowledgeGraphDocCreate {
	mutation := newKnowledgeGraphDocMutation(c.config, OpCreate)
	return &KnowledgeGraphDocCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KnowledgeGraphDoc entities.
func (c *KnowledgeGraphDocClient) CreateBulk(builders ...*KnowledgeGraphDocCreate) *KnowledgeGraphDocCreateBulk {
	return &KnowledgeGraphDocCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KnowledgeGraphDocClient) MapCreateBulk(slice any, setFunc func(*KnowledgeGraphDocCreate, int)) *KnowledgeGraphDocCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KnowledgeGraphDocCreateBulk{err: fmt.Errorf("calling to KnowledgeGraphDocClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KnowledgeGraphDocCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KnowledgeGraphDocCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KnowledgeGraphDoc.
func (c *KnowledgeGraphDocClient) Update() *KnowledgeGraphDocUpdate {
	mutation := newKnowledgeGraphDocMutation(c.config, OpUpdate)
	return &KnowledgeGraphDocUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KnowledgeGraphDocClient) UpdateOne(_m *KnowledgeGraphDoc) *KnowledgeGraphDocUpdateOne {
	mutation := newKnowledgeGraphDocMutation(c.config, OpUpdateOne, withKnowledgeGraphDoc(_m))
	return &KnowledgeGraphDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KnowledgeGraphDocClient) UpdateOneID(id int) *KnowledgeGraphDocUpdateOne {
	mutation := newKnowledgeGraphDocMutation(c.config, OpUpdateOne, withKnowledgeGraphDocID(id))
	return &KnowledgeGraphDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KnowledgeGraphDoc.
func (c *KnowledgeGraphDocClient) Delete() *KnowledgeGraphDocDelete {
	mutation := newKnowledgeGraphDocMutation(c.config, OpDelete)
	return &KnowledgeGraphDocDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KnowledgeGraphDocClient) DeleteOne(_m *KnowledgeGraphDoc) *KnowledgeGraphDocDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KnowledgeGraphDocClient) DeleteOneID(id int) *KnowledgeGraphDocDeleteOne {
	builder := c.Delete().Where(knowledgegraphdoc.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KnowledgeGraphDocDeleteOne{builder}
}

// Query returns a query builder for KnowledgeGraphDoc.
func (c *KnowledgeGraphDocClient) Query() *KnowledgeGraphDocQuery {
	return &KnowledgeGraphDocQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKnowledgeGraphDoc},
		inters: c.Interceptors(),
	}
}

// Get returns a KnowledgeGraphDoc entity by its id.
func (c *KnowledgeGraphDocClient) Get(ctx context.Context, id int) (*KnowledgeGraphDoc, error) {
	return c.Query().Where(knowledgegraphdoc.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KnowledgeGraphDocClient) GetX(ctx context.Context, id int) *KnowledgeGraphDoc {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *KnowledgeGraphDocClient) Hooks() []Hook {
	return c.hooks.KnowledgeGraphDoc
}

// Interceptors returns the client interceptors.
func (c *KnowledgeGraphDocClient) Interceptors() []Interceptor {
	return c.inters.KnowledgeGraphDoc
}

func (c *KnowledgeGraphDocClient) mutate(ctx context.Context, m *KnowledgeGraphDocMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KnowledgeGraphDocCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KnowledgeGraphDocUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KnowledgeGraphDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KnowledgeGraphDocDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KnowledgeGraphDoc mutation op: %q", m.Op())
	}
}

// LLMCallEventClient is a client for the LLMCallEvent schema.
type LLMCallEventClient struct {
	config
}

// NewLLMCallEventClient returns a client for the LLMCallEvent from the given config.
func NewLLMCallEventClient(c config) *LLMCallEventClient {
	return &LLMCallEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmcallevent.Hooks(f(g(h())))`.
func (c *LLMCallEventClient) Use(hooks ...Hook) {
	c.hooks.LLMCallEvent = append(c.hooks.LLMCallEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmcallevent.Intercept(f(g(h())))`.
func (c *LLMCallEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMCallEvent = append(c.inters.LLMCallEvent, interceptors...)
}

// Create returns a builder for creating a LLMCallEvent entity.
func (c *LLMCallEventClient) Create() *LLMCallEventCreate {
	mutation := newLLMCallEventMutation(c.config, OpCreate)
	return &LLMCallEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMCallEvent entities.
func (c *LLMCallEventClient) CreateBulk(builders ...*LLMCallEventCreate) *LLMCallEventCreateBulk {
	return &LLMCallEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMCallEventClient) MapCreateBulk(slice any, setFunc func(*LLMCallEventCreate, int)) *LLMCallEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMCallEventCreateBulk{err: fmt.Errorf("calling to LLMCallEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMCallEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMCallEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMCallEvent.
func (c *LLMCallEventClient) Update() *LLMCallEventUpdate {
	mutation := newLLMCallEventMutation(c.config, OpUpdate)
	return &LLMCallEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMCallEventClient) UpdateOne(_m *LLMCallEvent) *LLMCallEventUpdateOne {
	mutation := newLLMCallEventMutation(c.config, OpUpdateOne, withLLMCallEvent(_m))
	return &LLMCallEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMCallEventClient) UpdateOneID(id int) *LLMCallEventUpdateOne {
	mutation := newLLMCallEventMutation(c.config, OpUpdateOne, withLLMCallEventID(id))
	return &LLMCallEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMCallEvent.
func (c *LLMCallEventClient) Delete() *LLMCallEventDelete {
	mutation := newLLMCallEventMutation(c.config, OpDelete)
	return &LLMCallEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMCallEventClient) DeleteOne(_m *LLMCallEvent) *LLMCallEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMCallEventClient) DeleteOneID(id int) *LLMCallEventDeleteOne {
	builder := c.Delete().Where(llmcallevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMCallEventDeleteOne{builder}
}

// Query returns a query builder for LLMCallEvent.
func (c *LLMCallEventClient) Query() *LLMCallEventQuery {
	return &LLMCallEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMCallEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMCallEvent entity by its id.
func (c *LLMCallEventClient) Get(ctx context.Context, id int) (*LLMCallEvent, error) {
	return c.Query().Where(llmcallevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMCallEventClient) GetX(ctx context.Context, id int) *LLMCallEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMCallEventClient) Hooks() []Hook {
	return c.hooks.LLMCallEvent
}

// Interceptors returns the client interceptors.
func (c *LLMCallEventClient) Interceptors() []Interceptor {
	return c.inters.LLMCallEvent
}

func (c *LLMCallEventClient) mutate(ctx context.Context, m *LLMCallEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMCallEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMCallEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMCallEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMCallEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMCallEvent mutation op: %q", m.Op())
	}
}

// LessonPlanDocClient is a client for the LessonPlanDoc schema.
type LessonPlanDocClient struct {
	config
}

// NewLessonPlanDocClient returns a client for the LessonPlanDoc from the given config.
func NewLessonPlanDocClient(c config) *LessonPlanDocClient {
	return &LessonPlanDocClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lessonplandoc.Hooks(f(g(h())))`.
func (c *LessonPlanDocClient) Use(hooks ...Hook) {
	c.hooks.LessonPlanDoc = append(c.hooks.LessonPlanDoc, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lessonplandoc.Intercept(f(g(h())))`.
func (c *LessonPlanDocClient) Intercept(interceptors ...Interceptor) {
	c.inters.LessonPlanDoc = append(c.inters.LessonPlanDoc, interceptors...)
}

// Create returns a builder for creating a LessonPlanDoc entity.
func (c *LessonPlanDocClient) Create() *LessonPlanDocCreate {
	mutation := newLessonPlanDocMutation(c.config, OpCreate)
	return &LessonPlanDocCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LessonPlanDoc entities.
func (c *LessonPlanDocClient) CreateBulk(builders ...*LessonPlanDocCreate) *LessonPlanDocCreateBulk {
	return &LessonPlanDocCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonPlanDocClient) MapCreateBulk(slice any, setFunc func(*LessonPlanDocCreate, int)) *LessonPlanDocCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonPlanDocCreateBulk{err: fmt.Errorf("calling to LessonPlanDocClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonPlanDocCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonPlanDocCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LessonPlanDoc.
func (c *LessonPlanDocClient) Update() *LessonPlanDocUpdate {
	mutation := newLessonPlanDocMutation(c.config, OpUpdate)
	return &LessonPlanDocUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonPlanDocClient) UpdateOne(_m *LessonPlanDoc) *LessonPlanDocUpdateOne {
	mutation := newLessonPlanDocMutation(c.config, OpUpdateOne, withLessonPlanDoc(_m))
	return &LessonPlanDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonPlanDocClient) UpdateOneID(id int) *LessonPlanDocUpdateOne {
	mutation := newLessonPlanDocMutation(c.config, OpUpdateOne, withLessonPlanDocID(id))
	return &LessonPlanDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LessonPlanDoc.
func (c *LessonPlanDocClient) Delete() *LessonPlanDocDelete {
	mutation := newLessonPlanDocMutation(c.config, OpDelete)
	return &LessonPlanDocDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonPlanDocClient) DeleteOne(_m *LessonPlanDoc) *LessonPlanDocDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonPlanDocClient) DeleteOneID(id int) *LessonPlanDocDeleteOne {
	builder := c.Delete().Where(lessonplandoc.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonPlanDocDeleteOne{builder}
}

// Query returns a query builder for LessonPlanDoc.
func (c *LessonPlanDocClient) Query() *LessonPlanDocQuery {
	return &LessonPlanDocQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLessonPlanDoc},
		inters: c.Interceptors(),
	}
}

// Get returns a LessonPlanDoc entity by its id.
func (c *LessonPlanDocClient) Get(ctx context.Context, id int) (*LessonPlanDoc, error) {
	return c.Query().Where(lessonplandoc.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonPlanDocClient) GetX(ctx context.Context, id int) *LessonPlanDoc {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LessonPlanDocClient) Hooks() []Hook {
	return c.hooks.LessonPlanDoc
}

// Interceptors returns the client interceptors.
func (c *LessonPlanDocClient) Interceptors() []Interceptor {
	return c.inters.LessonPlanDoc
}

func (c *LessonPlanDocClient) mutate(ctx context.Context, m *LessonPlanDocMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonPlanDocCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonPlanDocUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonPlanDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonPlanDocDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LessonPlanDoc mutation op: %q", m.Op())
	}
}

// MasteryRecordClient is a client for the MasteryRecord schema.
type MasteryRecordClient struct {
	config
}

// NewMasteryRecordClient returns a client for the MasteryRecord from the given config.
func NewMasteryRecordClient(c config) *MasteryRecordClient {
	return &MasteryRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `masteryrecord.Hooks(f(g(h())))`.
func (c *MasteryRecordClient) Use(hooks ...Hook) {
	c.hooks.MasteryRecord = append(c.hooks.MasteryRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `masteryrecord.Intercept(f(g(h())))`.
func (c *MasteryRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.MasteryRecord = append(c.inters.MasteryRecord, interceptors...)
}

// Create returns a builder for creating a MasteryRecord entity.
func (c *MasteryRecordClient) Create() *MasteryRecordCreate {
	mutation := newMasteryRecordMutation(c.config, OpCreate)
	return &MasteryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MasteryRecord entities.
func (c *MasteryRecordClient) CreateBulk(builders ...*MasteryRecordCreate) *MasteryRecordCreateBulk {
	return &MasteryRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MasteryRecordClient) MapCreateBulk(slice any, setFunc func(*MasteryRecordCreate, int)) *MasteryRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MasteryRecordCreateBulk{err: fmt.Errorf("calling to MasteryRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MasteryRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MasteryRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MasteryRecord.
func (c *MasteryRecordClient) Update() *MasteryRecordUpdate {
	mutation := newMasteryRecordMutation(c.config, OpUpdate)
	return &MasteryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MasteryRecordClient) UpdateOne(_m *MasteryRecord) *MasteryRecordUpdateOne {
	mutation := newMasteryRecordMutation(c.config, OpUpdateOne, withMasteryRecord(_m))
	return &MasteryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MasteryRecordClient) UpdateOneID(id int) *MasteryRecordUpdateOne {
	mutation := newMasteryRecordMutation(c.config, OpUpdateOne, withMasteryRecordID(id))
	return &MasteryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MasteryRecord.
func (c *MasteryRecordClient) Delete() *MasteryRecordDelete {
	mutation := newMasteryRecordMutation(c.config, OpDelete)
	return &MasteryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MasteryRecordClient) DeleteOne(_m *MasteryRecord) *MasteryRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MasteryRecordClient) DeleteOneID(id int) *MasteryRecordDeleteOne {
	builder := c.Delete().Where(masteryrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MasteryRecordDeleteOne{builder}
}

// Query returns a query builder for MasteryRecord.
func (c *MasteryRecordClient) Query() *MasteryRecordQuery {
	return &MasteryRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMasteryRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a MasteryRecord entity by its id.
func (c *MasteryRecordClient) Get(ctx context.Context, id int) (*MasteryRecord, error) {
	return c.Query().Where(masteryrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MasteryRecordClient) GetX(ctx context.Context, id int) *MasteryRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MasteryRecordClient) Hooks() []Hook {
	return c.hooks.MasteryRecord
}

// Interceptors returns the client interceptors.
func (c *MasteryRecordClient) Interceptors() []Interceptor {
	return c.inters.MasteryRecord
}

func (c *MasteryRecordClient) mutate(ctx context.Context, m *MasteryRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MasteryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MasteryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MasteryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MasteryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MasteryRecord mutation op: %q", m.Op())
	}
}

// SessionClient is a client for the Session schema.
type SessionClient struct {
	config
}

// NewSessionClient returns a client for the Session from the given config.
func NewSessionClient(c config) *SessionClient {
	return &SessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `session.Hooks(f(g(h())))`.
func (c *SessionClient) Use(hooks ...Hook) {
	c.hooks.Session = append(c.hooks.Session, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `session.Intercept(f(g(h())))`.
func (c *SessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Session = append(c.inters.Session, interceptors...)
}

// Create returns a builder for creating a Session entity.
func (c *SessionClient) Create() *SessionCreate {
	mutation := newSessionMutation(c.config, OpCreate)
	return &SessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Session entities.
func (c *SessionClient) CreateBulk(builders ...*SessionCreate) *SessionCreateBulk {
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionClient) MapCreateBulk(slice any, setFunc func(*SessionCreate, int)) *SessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionCreateBulk{err: fmt.Errorf("calling to SessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Session.
func (c *SessionClient) Update() *SessionUpdate {
	mutation := newSessionMutation(c.config, OpUpdate)
	return &SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionClient) UpdateOne(_m *Session) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSession(_m))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionClient) UpdateOneID(id int) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSessionID(id))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Session.
func (c *SessionClient) Delete() *SessionDelete {
	mutation := newSessionMutation(c.config, OpDelete)
	return &SessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionClient) DeleteOne(_m *Session) *SessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionClient) DeleteOneID(id int) *SessionDeleteOne {
	builder := c.Delete().Where(session.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionDeleteOne{builder}
}

// Query returns a query builder for Session.
func (c *SessionClient) Query() *SessionQuery {
	return &SessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a Session entity by its id.
func (c *SessionClient) Get(ctx context.Context, id int) (*Session, error) {
	return c.Query().Where(session.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionClient) GetX(ctx context.Context, id int) *Session {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionClient) Hooks() []Hook {
	return c.hooks.Session
}

// Interceptors returns the client interceptors.
func (c *SessionClient) Interceptors() []Interceptor {
	return c.inters.Session
}

func (c *SessionClient) mutate(ctx context.Context, m *SessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Session mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ActivityEvent, KnowledgeGraphDoc, LLMCallEvent, LessonPlanDoc, MasteryRecord,
		Session []ent.Hook
	}
	inters struct {
		ActivityEvent, KnowledgeGraphDoc, LLMCallEvent, LessonPlanDoc, MasteryRecord,
		Session []ent.Interceptor
	}
)
