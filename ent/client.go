// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/codeready-toolchain/recap/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/recap/ent/actionitem"
	"github.com/codeready-toolchain/recap/ent/aiquestion"
	"github.com/codeready-toolchain/recap/ent/importitem"
	"github.com/codeready-toolchain/recap/ent/importsession"
	"github.com/codeready-toolchain/recap/ent/incident"
	"github.com/codeready-toolchain/recap/ent/postmortem"
	"github.com/codeready-toolchain/recap/ent/timelineevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AIQuestion is the client for interacting with the AIQuestion builders.
	AIQuestion *AIQuestionClient
	// ActionItem is the client for interacting with the ActionItem builders.
	ActionItem *ActionItemClient
	// ImportItem is the client for interacting with the ImportItem builders.
	ImportItem *ImportItemClient
	// ImportSession is the client for interacting with the ImportSession builders.
	ImportSession *ImportSessionClient
	// Incident is the client for interacting with the Incident builders.
	Incident *IncidentClient
	// Postmortem is the client for interacting with the Postmortem builders.
	Postmortem *PostmortemClient
	// TimelineEvent is the client for interacting with the TimelineEvent builders.
	TimelineEvent *TimelineEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AIQuestion = NewAIQuestionClient(c.config)
	c.ActionItem = NewActionItemClient(c.config)
	c.ImportItem = NewImportItemClient(c.config)
	c.ImportSession = NewImportSessionClient(c.config)
	c.Incident = NewIncidentClient(c.config)
	c.Postmortem = NewPostmortemClient(c.config)
	c.TimelineEvent = NewTimelineEventClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		AIQuestion:    NewAIQuestionClient(cfg),
		ActionItem:    NewActionItemClient(cfg),
		ImportItem:    NewImportItemClient(cfg),
		ImportSession: NewImportSessionClient(cfg),
		Incident:      NewIncidentClient(cfg),
		Postmortem:    NewPostmortemClient(cfg),
		TimelineEvent: NewTimelineEventClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		AIQuestion:    NewAIQuestionClient(cfg),
		ActionItem:    NewActionItemClient(cfg),
		ImportItem:    NewImportItemClient(cfg),
		ImportSession: NewImportSessionClient(cfg),
		Incident:      NewIncidentClient(cfg),
		Postmortem:    NewPostmortemClient(cfg),
		TimelineEvent: NewTimelineEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AIQuestion.
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
		c.AIQuestion, c.ActionItem, c.ImportItem, c.ImportSession, c.Incident,
		c.Postmortem, c.TimelineEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AIQuestion, c.ActionItem, c.ImportItem, c.ImportSession, c.Incident,
		c.Postmortem, c.TimelineEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AIQuestionMutation:
		return c.AIQuestion.mutate(ctx, m)
	case *ActionItemMutation:
		return c.ActionItem.mutate(ctx, m)
	case *ImportItemMutation:
		return c.ImportItem.mutate(ctx, m)
	case *ImportSessionMutation:
		return c.ImportSession.mutate(ctx, m)
	case *IncidentMutation:
		return c.Incident.mutate(ctx, m)
	case *PostmortemMutation:
		return c.Postmortem.mutate(ctx, m)
	case *TimelineEventMutation:
		return c.TimelineEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AIQuestionClient is a client for the AIQuestion schema.
type AIQuestionClient struct {
	config
}

// NewAIQuestionClient returns a client for the AIQuestion from the given config.
func NewAIQuestionClient(c config) *AIQuestionClient {
	return &AIQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `aiquestion.Hooks(f(g(h())))`.
func (c *AIQuestionClient) Use(hooks ...Hook) {
	c.hooks.AIQuestion = append(c.hooks.AIQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `aiquestion.Intercept(f(g(h())))`.
func (c *AIQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AIQuestion = append(c.inters.AIQuestion, interceptors...)
}

// Create returns a builder for creating a AIQuestion entity.
func (c *AIQuestionClient) Create() *AIQuestionCreate {
	mutation := newAIQuestionMutation(c.config, OpCreate)
	return &AIQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AIQuestion entities.
func (c *AIQuestionClient) CreateBulk(builders ...*AIQuestionCreate) *AIQuestionCreateBulk {
	return &AIQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AIQuestionClient) MapCreateBulk(slice any, setFunc func(*AIQuestionCreate, int)) *AIQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AIQuestionCreateBulk{err: fmt.Errorf("calling to AIQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AIQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AIQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AIQuestion.
func (c *AIQuestionClient) Update() *AIQuestionUpdate {
	mutation := newAIQuestionMutation(c.config, OpUpdate)
	return &AIQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AIQuestionClient) UpdateOne(_m *AIQuestion) *AIQuestionUpdateOne {
	mutation := newAIQuestionMutation(c.config, OpUpdateOne, withAIQuestion(_m))
	return &AIQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AIQuestionClient) UpdateOneID(id string) *AIQuestionUpdateOne {
	mutation := newAIQuestionMutation(c.config, OpUpdateOne, withAIQuestionID(id))
	return &AIQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AIQuestion.
func (c *AIQuestionClient) Delete() *AIQuestionDelete {
	mutation := newAIQuestionMutation(c.config, OpDelete)
	return &AIQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AIQuestionClient) DeleteOne(_m *AIQuestion) *AIQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AIQuestionClient) DeleteOneID(id string) *AIQuestionDeleteOne {
	builder := c.Delete().Where(aiquestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AIQuestionDeleteOne{builder}
}

// Query returns a query builder for AIQuestion.
func (c *AIQuestionClient) Query() *AIQuestionQuery {
	return &AIQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAIQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a AIQuestion entity by its id.
func (c *AIQuestionClient) Get(ctx context.Context, id string) (*AIQuestion, error) {
	return c.Query().Where(aiquestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AIQuestionClient) GetX(ctx context.Context, id string) *AIQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryItem queries the item edge of a AIQuestion.
func (c *AIQuestionClient) QueryItem(_m *AIQuestion) *ImportItemQuery {
	query := (&ImportItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(aiquestion.Table, aiquestion.FieldID, id),
			sqlgraph.To(importitem.Table, importitem.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, aiquestion.ItemTable, aiquestion.ItemColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AIQuestionClient) Hooks() []Hook {
	return c.hooks.AIQuestion
}

// Interceptors returns the client interceptors.
func (c *AIQuestionClient) Interceptors() []Interceptor {
	return c.inters.AIQuestion
}

func (c *AIQuestionClient) mutate(ctx context.Context, m *AIQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AIQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AIQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AIQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AIQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AIQuestion mutation op: %q", m.Op())
	}
}

// ActionItemClient is a client for the ActionItem schema.
type ActionItemClient struct {
	config
}

// NewActionItemClient returns a client for the ActionItem from the given config.
func NewActionItemClient(c config) *ActionItemClient {
	return &ActionItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `actionitem.Hooks(f(g(h())))`.
func (c *ActionItemClient) Use(hooks ...Hook) {
	c.hooks.ActionItem = append(c.hooks.ActionItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `actionitem.Intercept(f(g(h())))`.
func (c *ActionItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActionItem = append(c.inters.ActionItem, interceptors...)
}

// Create returns a builder for creating a ActionItem entity.
func (c *ActionItemClient) Create() *ActionItemCreate {
	mutation := newActionItemMutation(c.config, OpCreate)
	return &ActionItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActionItem entities.
func (c *ActionItemClient) CreateBulk(builders ...*ActionItemCreate) *ActionItemCreateBulk {
	return &ActionItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActionItemClient) MapCreateBulk(slice any, setFunc func(*ActionItemCreate, int)) *ActionItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActionItemCreateBulk{err: fmt.Errorf("calling to ActionItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActionItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActionItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActionItem.
func (c *ActionItemClient) Update() *ActionItemUpdate {
	mutation := newActionItemMutation(c.config, OpUpdate)
	return &ActionItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActionItemClient) UpdateOne(_m *ActionItem) *ActionItemUpdateOne {
	mutation := newActionItemMutation(c.config, OpUpdateOne, withActionItem(_m))
	return &ActionItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActionItemClient) UpdateOneID(id string) *ActionItemUpdateOne {
	mutation := newActionItemMutation(c.config, OpUpdateOne, withActionItemID(id))
	return &ActionItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActionItem.
func (c *ActionItemClient) Delete() *ActionItemDelete {
	mutation := newActionItemMutation(c.config, OpDelete)
	return &ActionItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActionItemClient) DeleteOne(_m *ActionItem) *ActionItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActionItemClient) DeleteOneID(id string) *ActionItemDeleteOne {
	builder := c.Delete().Where(actionitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActionItemDeleteOne{builder}
}

// Query returns a query builder for ActionItem.
func (c *ActionItemClient) Query() *ActionItemQuery {
	return &ActionItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActionItem},
		inters: c.Interceptors(),
	}
}

// Get returns a ActionItem entity by its id.
func (c *ActionItemClient) Get(ctx context.Context, id string) (*ActionItem, error) {
	return c.Query().Where(actionitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActionItemClient) GetX(ctx context.Context, id string) *ActionItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryIncident queries the incident edge of a ActionItem.
func (c *ActionItemClient) QueryIncident(_m *ActionItem) *IncidentQuery {
	query := (&IncidentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(actionitem.Table, actionitem.FieldID, id),
			sqlgraph.To(incident.Table, incident.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, actionitem.IncidentTable, actionitem.IncidentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ActionItemClient) Hooks() []Hook {
	return c.hooks.ActionItem
}

// Interceptors returns the client interceptors.
func (c *ActionItemClient) Interceptors() []Interceptor {
	return c.inters.ActionItem
}

func (c *ActionItemClient) mutate(ctx context.Context, m *ActionItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActionItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActionItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActionItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActionItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ActionItem mutation op: %q", m.Op())
	}
}

// ImportItemClient is a client for the ImportItem schema.
type ImportItemClient struct {
	config
}

// NewImportItemClient returns a client for the ImportItem from the given config.
func NewImportItemClient(c config) *ImportItemClient {
	return &ImportItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `importitem.Hooks(f(g(h())))`.
func (c *ImportItemClient) Use(hooks ...Hook) {
	c.hooks.ImportItem = append(c.hooks.ImportItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `importitem.Intercept(f(g(h())))`.
func (c *ImportItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.ImportItem = append(c.inters.ImportItem, interceptors...)
}

// Create returns a builder for creating a ImportItem entity.
func (c *ImportItemClient) Create() *ImportItemCreate {
	mutation := newImportItemMutation(c.config, OpCreate)
	return &ImportItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ImportItem entities.
func (c *ImportItemClient) CreateBulk(builders ...*ImportItemCreate) *ImportItemCreateBulk {
	return &ImportItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ImportItemClient) MapCreateBulk(slice any, setFunc func(*ImportItemCreate, int)) *ImportItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ImportItemCreateBulk{err: fmt.Errorf("calling to ImportItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ImportItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ImportItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ImportItem.
func (c *ImportItemClient) Update() *ImportItemUpdate {
	mutation := newImportItemMutation(c.config, OpUpdate)
	return &ImportItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ImportItemClient) UpdateOne(_m *ImportItem) *ImportItemUpdateOne {
	mutation := newImportItemMutation(c.config, OpUpdateOne, withImportItem(_m))
	return &ImportItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ImportItemClient) UpdateOneID(id string) *ImportItemUpdateOne {
	mutation := newImportItemMutation(c.config, OpUpdateOne, withImportItemID(id))
	return &ImportItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ImportItem.
func (c *ImportItemClient) Delete() *ImportItemDelete {
	mutation := newImportItemMutation(c.config, OpDelete)
	return &ImportItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ImportItemClient) DeleteOne(_m *ImportItem) *ImportItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ImportItemClient) DeleteOneID(id string) *ImportItemDeleteOne {
	builder := c.Delete().Where(importitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ImportItemDeleteOne{builder}
}

// Query returns a query builder for ImportItem.
func (c *ImportItemClient) Query() *ImportItemQuery {
	return &ImportItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeImportItem},
		inters: c.Interceptors(),
	}
}

// Get returns a ImportItem entity by its id.
func (c *ImportItemClient) Get(ctx context.Context, id string) (*ImportItem, error) {
	return c.Query().Where(importitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ImportItemClient) GetX(ctx context.Context, id string) *ImportItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a ImportItem.
func (c *ImportItemClient) QuerySession(_m *ImportItem) *ImportSessionQuery {
	query := (&ImportSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(importitem.Table, importitem.FieldID, id),
			sqlgraph.To(importsession.Table, importsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, importitem.SessionTable, importitem.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuestions queries the questions edge of a ImportItem.
func (c *ImportItemClient) QueryQuestions(_m *ImportItem) *AIQuestionQuery {
	query := (&AIQuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(importitem.Table, importitem.FieldID, id),
			sqlgraph.To(aiquestion.Table, aiquestion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, importitem.QuestionsTable, importitem.QuestionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ImportItemClient) Hooks() []Hook {
	return c.hooks.ImportItem
}

// Interceptors returns the client interceptors.
func (c *ImportItemClient) Interceptors() []Interceptor {
	return c.inters.ImportItem
}

func (c *ImportItemClient) mutate(ctx context.Context, m *ImportItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ImportItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ImportItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ImportItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ImportItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ImportItem mutation op: %q", m.Op())
	}
}

// ImportSessionClient is a client for the ImportSession schema.
type ImportSessionClient struct {
	config
}

// NewImportSessionClient returns a client for the ImportSession from the given config.
func NewImportSessionClient(c config) *ImportSessionClient {
	return &ImportSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `importsession.Hooks(f(g(h())))`.
func (c *ImportSessionClient) Use(hooks ...Hook) {
	c.hooks.ImportSession = append(c.hooks.ImportSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `importsession.Intercept(f(g(h())))`.
func (c *ImportSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ImportSession = append(c.inters.ImportSession, interceptors...)
}

// Create returns a builder for creating a ImportSession entity.
func (c *ImportSessionClient) Create() *ImportSessionCreate {
	mutation := newImportSessionMutation(c.config, OpCreate)
	return &ImportSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ImportSession entities.
func (c *ImportSessionClient) CreateBulk(builders ...*ImportSessionCreate) *ImportSessionCreateBulk {
	return &ImportSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ImportSessionClient) MapCreateBulk(slice any, setFunc func(*ImportSessionCreate, int)) *ImportSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ImportSessionCreateBulk{err: fmt.Errorf("calling to ImportSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ImportSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ImportSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ImportSession.
func (c *ImportSessionClient) Update() *ImportSessionUpdate {
	mutation := newImportSessionMutation(c.config, OpUpdate)
	return &ImportSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ImportSessionClient) UpdateOne(_m *ImportSession) *ImportSessionUpdateOne {
	mutation := newImportSessionMutation(c.config, OpUpdateOne, withImportSession(_m))
	return &ImportSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ImportSessionClient) UpdateOneID(id string) *ImportSessionUpdateOne {
	mutation := newImportSessionMutation(c.config, OpUpdateOne, withImportSessionID(id))
	return &ImportSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ImportSession.
func (c *ImportSessionClient) Delete() *ImportSessionDelete {
	mutation := newImportSessionMutation(c.config, OpDelete)
	return &ImportSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ImportSessionClient) DeleteOne(_m *ImportSession) *ImportSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ImportSessionClient) DeleteOneID(id string) *ImportSessionDeleteOne {
	builder := c.Delete().Where(importsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ImportSessionDeleteOne{builder}
}

// Query returns a query builder for ImportSession.
func (c *ImportSessionClient) Query() *ImportSessionQuery {
	return &ImportSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeImportSession},
		inters: c.Interceptors(),
	}
}

// Get returns a ImportSession entity by its id.
func (c *ImportSessionClient) Get(ctx context.Context, id string) (*ImportSession, error) {
	return c.Query().Where(importsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ImportSessionClient) GetX(ctx context.Context, id string) *ImportSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryItems queries the items edge of a ImportSession.
func (c *ImportSessionClient) QueryItems(_m *ImportSession) *ImportItemQuery {
	query := (&ImportItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(importsession.Table, importsession.FieldID, id),
			sqlgraph.To(importitem.Table, importitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, importsession.ItemsTable, importsession.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ImportSessionClient) Hooks() []Hook {
	return c.hooks.ImportSession
}

// Interceptors returns the client interceptors.
func (c *ImportSessionClient) Interceptors() []Interceptor {
	return c.inters.ImportSession
}

func (c *ImportSessionClient) mutate(ctx context.Context, m *ImportSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ImportSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ImportSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ImportSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ImportSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ImportSession mutation op: %q", m.Op())
	}
}

// IncidentClient is a client for the Incident schema.
type IncidentClient struct {
	config
}

// NewIncidentClient returns a client for the Incident from the given config.
func NewIncidentClient(c config) *IncidentClient {
	return &IncidentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `incident.Hooks(f(g(h())))`.
func (c *IncidentClient) Use(hooks ...Hook) {
	c.hooks.Incident = append(c.hooks.Incident, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `incident.Intercept(f(g(h())))`.
func (c *IncidentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Incident = append(c.inters.Incident, interceptors...)
}

// Create returns a builder for creating a Incident entity.
func (c *IncidentClient) Create() *IncidentCreate {
	mutation := newIncidentMutation(c.config, OpCreate)
	return &IncidentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Incident entities.
func (c *IncidentClient) CreateBulk(builders ...*IncidentCreate) *IncidentCreateBulk {
	return &IncidentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IncidentClient) MapCreateBulk(slice any, setFunc func(*IncidentCreate, int)) *IncidentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IncidentCreateBulk{err: fmt.Errorf("calling to IncidentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IncidentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IncidentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Incident.
func (c *IncidentClient) Update() *IncidentUpdate {
	mutation := newIncidentMutation(c.config, OpUpdate)
	return &IncidentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IncidentClient) UpdateOne(_m *Incident) *IncidentUpdateOne {
	mutation := newIncidentMutation(c.config, OpUpdateOne, withIncident(_m))
	return &IncidentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IncidentClient) UpdateOneID(id string) *IncidentUpdateOne {
	mutation := newIncidentMutation(c.config, OpUpdateOne, withIncidentID(id))
	return &IncidentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Incident.
func (c *IncidentClient) Delete() *IncidentDelete {
	mutation := newIncidentMutation(c.config, OpDelete)
	return &IncidentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IncidentClient) DeleteOne(_m *Incident) *IncidentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IncidentClient) DeleteOneID(id string) *IncidentDeleteOne {
	builder := c.Delete().Where(incident.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IncidentDeleteOne{builder}
}

// Query returns a query builder for Incident.
func (c *IncidentClient) Query() *IncidentQuery {
	return &IncidentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIncident},
		inters: c.Interceptors(),
	}
}

// Get returns a Incident entity by its id.
func (c *IncidentClient) Get(ctx context.Context, id string) (*Incident, error) {
	return c.Query().Where(incident.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IncidentClient) GetX(ctx context.Context, id string) *Incident {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPostmortems queries the postmortems edge of a Incident.
func (c *IncidentClient) QueryPostmortems(_m *Incident) *PostmortemQuery {
	query := (&PostmortemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(incident.Table, incident.FieldID, id),
			sqlgraph.To(postmortem.Table, postmortem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, incident.PostmortemsTable, incident.PostmortemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTimelineEvents queries the timeline_events edge of a Incident.
func (c *IncidentClient) QueryTimelineEvents(_m *Incident) *TimelineEventQuery {
	query := (&TimelineEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(incident.Table, incident.FieldID, id),
			sqlgraph.To(timelineevent.Table, timelineevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, incident.TimelineEventsTable, incident.TimelineEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryActionItems queries the action_items edge of a Incident.
func (c *IncidentClient) QueryActionItems(_m *Incident) *ActionItemQuery {
	query := (&ActionItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(incident.Table, incident.FieldID, id),
			sqlgraph.To(actionitem.Table, actionitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, incident.ActionItemsTable, incident.ActionItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *IncidentClient) Hooks() []Hook {
	return c.hooks.Incident
}

// Interceptors returns the client interceptors.
func (c *IncidentClient) Interceptors() []Interceptor {
	return c.inters.Incident
}

func (c *IncidentClient) mutate(ctx context.Context, m *IncidentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IncidentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IncidentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IncidentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IncidentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Incident mutation op: %q", m.Op())
	}
}

// PostmortemClient is a client for the Postmortem schema.
type PostmortemClient struct {
	config
}

// NewPostmortemClient returns a client for the Postmortem from the given config.
func NewPostmortemClient(c config) *PostmortemClient {
	return &PostmortemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `postmortem.Hooks(f(g(h())))`.
func (c *PostmortemClient) Use(hooks ...Hook) {
	c.hooks.Postmortem = append(c.hooks.Postmortem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `postmortem.Intercept(f(g(h())))`.
func (c *PostmortemClient) Intercept(interceptors ...Interceptor) {
	c.inters.Postmortem = append(c.inters.Postmortem, interceptors...)
}

// Create returns a builder for creating a Postmortem entity.
func (c *PostmortemClient) Create() *PostmortemCreate {
	mutation := newPostmortemMutation(c.config, OpCreate)
	return &PostmortemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Postmortem entities.
func (c *PostmortemClient) CreateBulk(builders ...*PostmortemCreate) *PostmortemCreateBulk {
	return &PostmortemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PostmortemClient) MapCreateBulk(slice any, setFunc func(*PostmortemCreate, int)) *PostmortemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PostmortemCreateBulk{err: fmt.Errorf("calling to PostmortemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PostmortemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PostmortemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Postmortem.
func (c *PostmortemClient) Update() *PostmortemUpdate {
	mutation := newPostmortemMutation(c.config, OpUpdate)
	return &PostmortemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PostmortemClient) UpdateOne(_m *Postmortem) *PostmortemUpdateOne {
	mutation := newPostmortemMutation(c.config, OpUpdateOne, withPostmortem(_m))
	return &PostmortemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PostmortemClient) UpdateOneID(id string) *PostmortemUpdateOne {
	mutation := newPostmortemMutation(c.config, OpUpdateOne, withPostmortemID(id))
	return &PostmortemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Postmortem.
func (c *PostmortemClient) Delete() *PostmortemDelete {
	mutation := newPostmortemMutation(c.config, OpDelete)
	return &PostmortemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PostmortemClient) DeleteOne(_m *Postmortem) *PostmortemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PostmortemClient) DeleteOneID(id string) *PostmortemDeleteOne {
	builder := c.Delete().Where(postmortem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PostmortemDeleteOne{builder}
}

// Query returns a query builder for Postmortem.
func (c *PostmortemClient) Query() *PostmortemQuery {
	return &PostmortemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePostmortem},
		inters: c.Interceptors(),
	}
}

// Get returns a Postmortem entity by its id.
func (c *PostmortemClient) Get(ctx context.Context, id string) (*Postmortem, error) {
	return c.Query().Where(postmortem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PostmortemClient) GetX(ctx context.Context, id string) *Postmortem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryIncident queries the incident edge of a Postmortem.
func (c *PostmortemClient) QueryIncident(_m *Postmortem) *IncidentQuery {
	query := (&IncidentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(postmortem.Table, postmortem.FieldID, id),
			sqlgraph.To(incident.Table, incident.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, postmortem.IncidentTable, postmortem.IncidentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PostmortemClient) Hooks() []Hook {
	return c.hooks.Postmortem
}

// Interceptors returns the client interceptors.
func (c *PostmortemClient) Interceptors() []Interceptor {
	return c.inters.Postmortem
}

func (c *PostmortemClient) mutate(ctx context.Context, m *PostmortemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PostmortemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PostmortemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PostmortemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PostmortemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Postmortem mutation op: %q", m.Op())
	}
}

// TimelineEventClient is a client for the TimelineEvent schema.
type TimelineEventClient struct {
	config
}

// NewTimelineEventClient returns a client for the TimelineEvent from the given config.
func NewTimelineEventClient(c config) *TimelineEventClient {
	return &TimelineEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `timelineevent.Hooks(f(g(h())))`.
func (c *TimelineEventClient) Use(hooks ...Hook) {
	c.hooks.TimelineEvent = append(c.hooks.TimelineEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `timelineevent.Intercept(f(g(h())))`.
func (c *TimelineEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.TimelineEvent = append(c.inters.TimelineEvent, interceptors...)
}

// Create returns a builder for creating a TimelineEvent entity.
func (c *TimelineEventClient) Create() *TimelineEventCreate {
	mutation := newTimelineEventMutation(c.config, OpCreate)
	return &TimelineEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TimelineEvent entities.
func (c *TimelineEventClient) CreateBulk(builders ...*TimelineEventCreate) *TimelineEventCreateBulk {
	return &TimelineEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TimelineEventClient) MapCreateBulk(slice any, setFunc func(*TimelineEventCreate, int)) *TimelineEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TimelineEventCreateBulk{err: fmt.Errorf("calling to TimelineEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TimelineEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TimelineEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TimelineEvent.
func (c *TimelineEventClient) Update() *TimelineEventUpdate {
	mutation := newTimelineEventMutation(c.config, OpUpdate)
	return &TimelineEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TimelineEventClient) UpdateOne(_m *TimelineEvent) *TimelineEventUpdateOne {
	mutation := newTimelineEventMutation(c.config, OpUpdateOne, withTimelineEvent(_m))
	return &TimelineEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TimelineEventClient) UpdateOneID(id string) *TimelineEventUpdateOne {
	mutation := newTimelineEventMutation(c.config, OpUpdateOne, withTimelineEventID(id))
	return &TimelineEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TimelineEvent.
func (c *TimelineEventClient) Delete() *TimelineEventDelete {
	mutation := newTimelineEventMutation(c.config, OpDelete)
	return &TimelineEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TimelineEventClient) DeleteOne(_m *TimelineEvent) *TimelineEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TimelineEventClient) DeleteOneID(id string) *TimelineEventDeleteOne {
	builder := c.Delete().Where(timelineevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TimelineEventDeleteOne{builder}
}

// Query returns a query builder for TimelineEvent.
func (c *TimelineEventClient) Query() *TimelineEventQuery {
	return &TimelineEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTimelineEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a TimelineEvent entity by its id.
func (c *TimelineEventClient) Get(ctx context.Context, id string) (*TimelineEvent, error) {
	return c.Query().Where(timelineevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TimelineEventClient) GetX(ctx context.Context, id string) *TimelineEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryIncident queries the incident edge of a TimelineEvent.
func (c *TimelineEventClient) QueryIncident(_m *TimelineEvent) *IncidentQuery {
	query := (&IncidentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(timelineevent.Table, timelineevent.FieldID, id),
			sqlgraph.To(incident.Table, incident.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, timelineevent.IncidentTable, timelineevent.IncidentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TimelineEventClient) Hooks() []Hook {
	return c.hooks.TimelineEvent
}

// Interceptors returns the client interceptors.
func (c *TimelineEventClient) Interceptors() []Interceptor {
	return c.inters.TimelineEvent
}

func (c *TimelineEventClient) mutate(ctx context.Context, m *TimelineEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TimelineEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TimelineEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TimelineEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TimelineEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TimelineEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AIQuestion, ActionItem, ImportItem, ImportSession, Incident, Postmortem,
		TimelineEvent []ent.Hook
	}
	inters struct {
		AIQuestion, ActionItem, ImportItem, ImportSession, Incident, Postmortem,
		TimelineEvent []ent.Interceptor
	}
)
