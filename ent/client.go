// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/prepwise/backend/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/prepwise/backend/ent/attempt"
	"github.com/prepwise/backend/ent/constructstate"
	"github.com/prepwise/backend/ent/plancycle"
	"github.com/prepwise/backend/ent/plantask"
	"github.com/prepwise/backend/ent/question"
	"github.com/prepwise/backend/ent/skillstate"
	"github.com/prepwise/backend/ent/userprofile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Attempt is the client for interacting with the Attempt builders.
	Attempt *AttemptClient
	// ConstructState is the client for interacting with the ConstructState builders.
	ConstructState *ConstructStateClient
	// PlanCycle is the client for interacting with the PlanCycle builders.
	PlanCycle *PlanCycleClient
	// PlanTask is the client for interacting with the PlanTask builders.
	PlanTask *PlanTaskClient
	// Question is the client for interacting with the Question builders.
	Question *QuestionClient
	// SkillState is the client for interacting with the SkillState builders.
	SkillState *SkillStateClient
	// UserProfile is the client for interacting with the UserProfile builders.
	UserProfile *UserProfileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Attempt = NewAttemptClient(c.config)
	c.ConstructState = NewConstructStateClient(c.config)
	c.PlanCycle = NewPlanCycleClient(c.config)
	c.PlanTask = NewPlanTaskClient(c.config)
	c.Question = NewQuestionClient(c.config)
	c.SkillState = NewSkillStateClient(c.config)
	c.UserProfile = NewUserProfileClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		Attempt:        NewAttemptClient(cfg),
		ConstructState: NewConstructStateClient(cfg),
		PlanCycle:      NewPlanCycleClient(cfg),
		PlanTask:       NewPlanTaskClient(cfg),
		Question:       NewQuestionClient(cfg),
		SkillState:     NewSkillStateClient(cfg),
		UserProfile:    NewUserProfileClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		Attempt:        NewAttemptClient(cfg),
		ConstructState: NewConstructStateClient(cfg),
		PlanCycle:      NewPlanCycleClient(cfg),
		PlanTask:       NewPlanTaskClient(cfg),
		Question:       NewQuestionClient(cfg),
		SkillState:     NewSkillStateClient(cfg),
		UserProfile:    NewUserProfileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Attempt.
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
		c.Attempt, c.ConstructState, c.PlanCycle, c.PlanTask, c.Question, c.SkillState,
		c.UserProfile,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Attempt, c.ConstructState, c.PlanCycle, c.PlanTask, c.Question, c.SkillState,
		c.UserProfile,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AttemptMutation:
		return c.Attempt.mutate(ctx, m)
	case *ConstructStateMutation:
		return c.ConstructState.mutate(ctx, m)
	case *PlanCycleMutation:
		return c.PlanCycle.mutate(ctx, m)
	case *PlanTaskMutation:
		return c.PlanTask.mutate(ctx, m)
	case *QuestionMutation:
		return c.Question.mutate(ctx, m)
	case *SkillStateMutation:
		return c.SkillState.mutate(ctx, m)
	case *UserProfileMutation:
		return c.UserProfile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AttemptClient is a client for the Attempt schema.
type AttemptClient struct {
	config
}

// NewAttemptClient returns a client for the Attempt from the given config.
func NewAttemptClient(c config) *AttemptClient {
	return &AttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attempt.Hooks(f(g(h())))`.
func (c *AttemptClient) Use(hooks ...Hook) {
	c.hooks.Attempt = append(c.hooks.Attempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attempt.Intercept(f(g(h())))`.
func (c *AttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Attempt = append(c.inters.Attempt, interceptors...)
}

// Create returns a builder for creating a Attempt entity.
func (c *AttemptClient) Create() *AttemptCreate {
	mutation := newAttemptMutation(c.config, OpCreate)
	return &AttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Attempt entities.
func (c *AttemptClient) CreateBulk(builders ...*AttemptCreate) *AttemptCreateBulk {
	return &AttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptClient) MapCreateBulk(slice any, setFunc func(*AttemptCreate, int)) *AttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptCreateBulk{err: fmt.Errorf("calling to AttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Attempt.
func (c *AttemptClient) Update() *AttemptUpdate {
	mutation := newAttemptMutation(c.config, OpUpdate)
	return &AttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptClient) UpdateOne(_m *Attempt) *AttemptUpdateOne {
	mutation := newAttemptMutation(c.config, OpUpdateOne, withAttempt(_m))
	return &AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptClient) UpdateOneID(id string) *AttemptUpdateOne {
	mutation := newAttemptMutation(c.config, OpUpdateOne, withAttemptID(id))
	return &AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Attempt.
func (c *AttemptClient) Delete() *AttemptDelete {
	mutation := newAttemptMutation(c.config, OpDelete)
	return &AttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptClient) DeleteOne(_m *Attempt) *AttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptClient) DeleteOneID(id string) *AttemptDeleteOne {
	builder := c.Delete().Where(attempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptDeleteOne{builder}
}

// Query returns a query builder for Attempt.
func (c *AttemptClient) Query() *AttemptQuery {
	return &AttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a Attempt entity by its id.
func (c *AttemptClient) Get(ctx context.Context, id string) (*Attempt, error) {
	return c.Query().Where(attempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptClient) GetX(ctx context.Context, id string) *Attempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttemptClient) Hooks() []Hook {
	return c.hooks.Attempt
}

// Interceptors returns the client interceptors.
func (c *AttemptClient) Interceptors() []Interceptor {
	return c.inters.Attempt
}

func (c *AttemptClient) mutate(ctx context.Context, m *AttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Attempt mutation op: %q", m.Op())
	}
}

// ConstructStateClient is a client for the ConstructState schema.
type ConstructStateClient struct {
	config
}

// NewConstructStateClient returns a client for the ConstructState from the given config.
func NewConstructStateClient(c config) *ConstructStateClient {
	return &ConstructStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `constructstate.Hooks(f(g(h())))`.
func (c *ConstructStateClient) Use(hooks ...Hook) {
	c.hooks.ConstructState = append(c.hooks.ConstructState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `constructstate.Intercept(f(g(h())))`.
func (c *ConstructStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConstructState = append(c.inters.ConstructState, interceptors...)
}

// Create returns a builder for creating a ConstructState entity.
func (c *ConstructStateClient) Create() *ConstructStateCreate {
	mutation := newConstructStateMutation(c.config, OpCreate)
	return &ConstructStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConstructState entities.
func (c *ConstructStateClient) CreateBulk(builders ...*ConstructStateCreate) *ConstructStateCreateBulk {
	return &ConstructStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConstructStateClient) MapCreateBulk(slice any, setFunc func(*ConstructStateCreate, int)) *ConstructStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConstructStateCreateBulk{err: fmt.Errorf("calling to ConstructStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConstructStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConstructStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConstructState.
func (c *ConstructStateClient) Update() *ConstructStateUpdate {
	mutation := newConstructStateMutation(c.config, OpUpdate)
	return &ConstructStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConstructStateClient) UpdateOne(_m *ConstructState) *ConstructStateUpdateOne {
	mutation := newConstructStateMutation(c.config, OpUpdateOne, withConstructState(_m))
	return &ConstructStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConstructStateClient) UpdateOneID(id string) *ConstructStateUpdateOne {
	mutation := newConstructStateMutation(c.config, OpUpdateOne, withConstructStateID(id))
	return &ConstructStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConstructState.
func (c *ConstructStateClient) Delete() *ConstructStateDelete {
	mutation := newConstructStateMutation(c.config, OpDelete)
	return &ConstructStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConstructStateClient) DeleteOne(_m *ConstructState) *ConstructStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConstructStateClient) DeleteOneID(id string) *ConstructStateDeleteOne {
	builder := c.Delete().Where(constructstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConstructStateDeleteOne{builder}
}

// Query returns a query builder for ConstructState.
func (c *ConstructStateClient) Query() *ConstructStateQuery {
	return &ConstructStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConstructState},
		inters: c.Interceptors(),
	}
}

// Get returns a ConstructState entity by its id.
func (c *ConstructStateClient) Get(ctx context.Context, id string) (*ConstructState, error) {
	return c.Query().Where(constructstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConstructStateClient) GetX(ctx context.Context, id string) *ConstructState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConstructStateClient) Hooks() []Hook {
	return c.hooks.ConstructState
}

// Interceptors returns the client interceptors.
func (c *ConstructStateClient) Interceptors() []Interceptor {
	return c.inters.ConstructState
}

func (c *ConstructStateClient) mutate(ctx context.Context, m *ConstructStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConstructStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConstructStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConstructStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConstructStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConstructState mutation op: %q", m.Op())
	}
}

// PlanCycleClient is a client for the PlanCycle schema.
type PlanCycleClient struct {
	config
}

// NewPlanCycleClient returns a client for the PlanCycle from the given config.
func NewPlanCycleClient(c config) *PlanCycleClient {
	return &PlanCycleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `plancycle.Hooks(f(g(h())))`.
func (c *PlanCycleClient) Use(hooks ...Hook) {
	c.hooks.PlanCycle = append(c.hooks.PlanCycle, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `plancycle.Intercept(f(g(h())))`.
func (c *PlanCycleClient) Intercept(interceptors ...Interceptor) {
	c.inters.PlanCycle = append(c.inters.PlanCycle, interceptors...)
}

// Create returns a builder for creating a PlanCycle entity.
func (c *PlanCycleClient) Create() *PlanCycleCreate {
	mutation := newPlanCycleMutation(c.config, OpCreate)
	return &PlanCycleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PlanCycle entities.
func (c *PlanCycleClient) CreateBulk(builders ...*PlanCycleCreate) *PlanCycleCreateBulk {
	return &PlanCycleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlanCycleClient) MapCreateBulk(slice any, setFunc func(*PlanCycleCreate, int)) *PlanCycleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlanCycleCreateBulk{err: fmt.Errorf("calling to PlanCycleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlanCycleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlanCycleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PlanCycle.
func (c *PlanCycleClient) Update() *PlanCycleUpdate {
	mutation := newPlanCycleMutation(c.config, OpUpdate)
	return &PlanCycleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlanCycleClient) UpdateOne(_m *PlanCycle) *PlanCycleUpdateOne {
	mutation := newPlanCycleMutation(c.config, OpUpdateOne, withPlanCycle(_m))
	return &PlanCycleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlanCycleClient) UpdateOneID(id string) *PlanCycleUpdateOne {
	mutation := newPlanCycleMutation(c.config, OpUpdateOne, withPlanCycleID(id))
	return &PlanCycleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PlanCycle.
func (c *PlanCycleClient) Delete() *PlanCycleDelete {
	mutation := newPlanCycleMutation(c.config, OpDelete)
	return &PlanCycleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlanCycleClient) DeleteOne(_m *PlanCycle) *PlanCycleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlanCycleClient) DeleteOneID(id string) *PlanCycleDeleteOne {
	builder := c.Delete().Where(plancycle.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlanCycleDeleteOne{builder}
}

// Query returns a query builder for PlanCycle.
func (c *PlanCycleClient) Query() *PlanCycleQuery {
	return &PlanCycleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlanCycle},
		inters: c.Interceptors(),
	}
}

// Get returns a PlanCycle entity by its id.
func (c *PlanCycleClient) Get(ctx context.Context, id string) (*PlanCycle, error) {
	return c.Query().Where(plancycle.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlanCycleClient) GetX(ctx context.Context, id string) *PlanCycle {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PlanCycleClient) Hooks() []Hook {
	return c.hooks.PlanCycle
}

// Interceptors returns the client interceptors.
func (c *PlanCycleClient) Interceptors() []Interceptor {
	return c.inters.PlanCycle
}

func (c *PlanCycleClient) mutate(ctx context.Context, m *PlanCycleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlanCycleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlanCycleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlanCycleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlanCycleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PlanCycle mutation op: %q", m.Op())
	}
}

// PlanTaskClient is a client for the PlanTask schema.
type PlanTaskClient struct {
	config
}

// NewPlanTaskClient returns a client for the PlanTask from the given config.
func NewPlanTaskClient(c config) *PlanTaskClient {
	return &PlanTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `plantask.Hooks(f(g(h())))`.
func (c *PlanTaskClient) Use(hooks ...Hook) {
	c.hooks.PlanTask = append(c.hooks.PlanTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `plantask.Intercept(f(g(h())))`.
func (c *PlanTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.PlanTask = append(c.inters.PlanTask, interceptors...)
}

// Create returns a builder for creating a PlanTask entity.
func (c *PlanTaskClient) Create() *PlanTaskCreate {
	mutation := newPlanTaskMutation(c.config, OpCreate)
	return &PlanTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PlanTask entities.
func (c *PlanTaskClient) CreateBulk(builders ...*PlanTaskCreate) *PlanTaskCreateBulk {
	return &PlanTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlanTaskClient) MapCreateBulk(slice any, setFunc func(*PlanTaskCreate, int)) *PlanTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlanTaskCreateBulk{err: fmt.Errorf("calling to PlanTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlanTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlanTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PlanTask.
func (c *PlanTaskClient) Update() *PlanTaskUpdate {
	mutation := newPlanTaskMutation(c.config, OpUpdate)
	return &PlanTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlanTaskClient) UpdateOne(_m *PlanTask) *PlanTaskUpdateOne {
	mutation := newPlanTaskMutation(c.config, OpUpdateOne, withPlanTask(_m))
	return &PlanTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlanTaskClient) UpdateOneID(id string) *PlanTaskUpdateOne {
	mutation := newPlanTaskMutation(c.config, OpUpdateOne, withPlanTaskID(id))
	return &PlanTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PlanTask.
func (c *PlanTaskClient) Delete() *PlanTaskDelete {
	mutation := newPlanTaskMutation(c.config, OpDelete)
	return &PlanTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlanTaskClient) DeleteOne(_m *PlanTask) *PlanTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlanTaskClient) DeleteOneID(id string) *PlanTaskDeleteOne {
	builder := c.Delete().Where(plantask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlanTaskDeleteOne{builder}
}

// Query returns a query builder for PlanTask.
func (c *PlanTaskClient) Query() *PlanTaskQuery {
	return &PlanTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlanTask},
		inters: c.Interceptors(),
	}
}

// Get returns a PlanTask entity by its id.
func (c *PlanTaskClient) Get(ctx context.Context, id string) (*PlanTask, error) {
	return c.Query().Where(plantask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlanTaskClient) GetX(ctx context.Context, id string) *PlanTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PlanTaskClient) Hooks() []Hook {
	return c.hooks.PlanTask
}

// Interceptors returns the client interceptors.
func (c *PlanTaskClient) Interceptors() []Interceptor {
	return c.inters.PlanTask
}

func (c *PlanTaskClient) mutate(ctx context.Context, m *PlanTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlanTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlanTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlanTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlanTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PlanTask mutation op: %q", m.Op())
	}
}

// QuestionClient is a client for the Question schema.
type QuestionClient struct {
	config
}

// NewQuestionClient returns a client for the Question from the given config.
func NewQuestionClient(c config) *QuestionClient {
	return &QuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `question.Hooks(f(g(h())))`.
func (c *QuestionClient) Use(hooks ...Hook) {
	c.hooks.Question = append(c.hooks.Question, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `question.Intercept(f(g(h())))`.
func (c *QuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Question = append(c.inters.Question, interceptors...)
}

// Create returns a builder for creating a Question entity.
func (c *QuestionClient) Create() *QuestionCreate {
	mutation := newQuestionMutation(c.config, OpCreate)
	return &QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Question entities.
func (c *QuestionClient) CreateBulk(builders ...*QuestionCreate) *QuestionCreateBulk {
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionClient) MapCreateBulk(slice any, setFunc func(*QuestionCreate, int)) *QuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionCreateBulk{err: fmt.Errorf("calling to QuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Question.
func (c *QuestionClient) Update() *QuestionUpdate {
	mutation := newQuestionMutation(c.config, OpUpdate)
	return &QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionClient) UpdateOne(_m *Question) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestion(_m))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionClient) UpdateOneID(id string) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestionID(id))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Question.
func (c *QuestionClient) Delete() *QuestionDelete {
	mutation := newQuestionMutation(c.config, OpDelete)
	return &QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionClient) DeleteOne(_m *Question) *QuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionClient) DeleteOneID(id string) *QuestionDeleteOne {
	builder := c.Delete().Where(question.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionDeleteOne{builder}
}

// Query returns a query builder for Question.
func (c *QuestionClient) Query() *QuestionQuery {
	return &QuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a Question entity by its id.
func (c *QuestionClient) Get(ctx context.Context, id string) (*Question, error) {
	return c.Query().Where(question.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionClient) GetX(ctx context.Context, id string) *Question {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionClient) Hooks() []Hook {
	return c.hooks.Question
}

// Interceptors returns the client interceptors.
func (c *QuestionClient) Interceptors() []Interceptor {
	return c.inters.Question
}

func (c *QuestionClient) mutate(ctx context.Context, m *QuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Question mutation op: %q", m.Op())
	}
}

// SkillStateClient is a client for the SkillState schema.
type SkillStateClient struct {
	config
}

// NewSkillStateClient returns a client for the SkillState from the given config.
func NewSkillStateClient(c config) *SkillStateClient {
	return &SkillStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `skillstate.Hooks(f(g(h())))`.
func (c *SkillStateClient) Use(hooks ...Hook) {
	c.hooks.SkillState = append(c.hooks.SkillState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `skillstate.Intercept(f(g(h())))`.
func (c *SkillStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.SkillState = append(c.inters.SkillState, interceptors...)
}

// Create returns a builder for creating a SkillState entity.
func (c *SkillStateClient) Create() *SkillStateCreate {
	mutation := newSkillStateMutation(c.config, OpCreate)
	return &SkillStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SkillState entities.
func (c *SkillStateClient) CreateBulk(builders ...*SkillStateCreate) *SkillStateCreateBulk {
	return &SkillStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SkillStateClient) MapCreateBulk(slice any, setFunc func(*SkillStateCreate, int)) *SkillStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SkillStateCreateBulk{err: fmt.Errorf("calling to SkillStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SkillStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SkillStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SkillState.
func (c *SkillStateClient) Update() *SkillStateUpdate {
	mutation := newSkillStateMutation(c.config, OpUpdate)
	return &SkillStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SkillStateClient) UpdateOne(_m *SkillState) *SkillStateUpdateOne {
	mutation := newSkillStateMutation(c.config, OpUpdateOne, withSkillState(_m))
	return &SkillStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SkillStateClient) UpdateOneID(id string) *SkillStateUpdateOne {
	mutation := newSkillStateMutation(c.config, OpUpdateOne, withSkillStateID(id))
	return &SkillStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SkillState.
func (c *SkillStateClient) Delete() *SkillStateDelete {
	mutation := newSkillStateMutation(c.config, OpDelete)
	return &SkillStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SkillStateClient) DeleteOne(_m *SkillState) *SkillStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SkillStateClient) DeleteOneID(id string) *SkillStateDeleteOne {
	builder := c.Delete().Where(skillstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SkillStateDeleteOne{builder}
}

// Query returns a query builder for SkillState.
func (c *SkillStateClient) Query() *SkillStateQuery {
	return &SkillStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSkillState},
		inters: c.Interceptors(),
	}
}

// Get returns a SkillState entity by its id.
func (c *SkillStateClient) Get(ctx context.Context, id string) (*SkillState, error) {
	return c.Query().Where(skillstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SkillStateClient) GetX(ctx context.Context, id string) *SkillState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SkillStateClient) Hooks() []Hook {
	return c.hooks.SkillState
}

// Interceptors returns the client interceptors.
func (c *SkillStateClient) Interceptors() []Interceptor {
	return c.inters.SkillState
}

func (c *SkillStateClient) mutate(ctx context.Context, m *SkillStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SkillStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SkillStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SkillStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SkillStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SkillState mutation op: %q", m.Op())
	}
}

// UserProfileClient is a client for the UserProfile schema.
type UserProfileClient struct {
	config
}

// NewUserProfileClient returns a client for the UserProfile from the given config.
func NewUserProfileClient(c config) *UserProfileClient {
	return &UserProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userprofile.Hooks(f(g(h())))`.
func (c *UserProfileClient) Use(hooks ...Hook) {
	c.hooks.UserProfile = append(c.hooks.UserProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userprofile.Intercept(f(g(h())))`.
func (c *UserProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserProfile = append(c.inters.UserProfile, interceptors...)
}

// Create returns a builder for creating a UserProfile entity.
func (c *UserProfileClient) Create() *UserProfileCreate {
	mutation := newUserProfileMutation(c.config, OpCreate)
	return &UserProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserProfile entities.
func (c *UserProfileClient) CreateBulk(builders ...*UserProfileCreate) *UserProfileCreateBulk {
	return &UserProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserProfileClient) MapCreateBulk(slice any, setFunc func(*UserProfileCreate, int)) *UserProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserProfileCreateBulk{err: fmt.Errorf("calling to UserProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserProfile.
func (c *UserProfileClient) Update() *UserProfileUpdate {
	mutation := newUserProfileMutation(c.config, OpUpdate)
	return &UserProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserProfileClient) UpdateOne(_m *UserProfile) *UserProfileUpdateOne {
	mutation := newUserProfileMutation(c.config, OpUpdateOne, withUserProfile(_m))
	return &UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserProfileClient) UpdateOneID(id string) *UserProfileUpdateOne {
	mutation := newUserProfileMutation(c.config, OpUpdateOne, withUserProfileID(id))
	return &UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserProfile.
func (c *UserProfileClient) Delete() *UserProfileDelete {
	mutation := newUserProfileMutation(c.config, OpDelete)
	return &UserProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserProfileClient) DeleteOne(_m *UserProfile) *UserProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserProfileClient) DeleteOneID(id string) *UserProfileDeleteOne {
	builder := c.Delete().Where(userprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserProfileDeleteOne{builder}
}

// Query returns a query builder for UserProfile.
func (c *UserProfileClient) Query() *UserProfileQuery {
	return &UserProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a UserProfile entity by its id.
func (c *UserProfileClient) Get(ctx context.Context, id string) (*UserProfile, error) {
	return c.Query().Where(userprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserProfileClient) GetX(ctx context.Context, id string) *UserProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserProfileClient) Hooks() []Hook {
	return c.hooks.UserProfile
}

// Interceptors returns the client interceptors.
func (c *UserProfileClient) Interceptors() []Interceptor {
	return c.inters.UserProfile
}

func (c *UserProfileClient) mutate(ctx context.Context, m *UserProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserProfile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Attempt, ConstructState, PlanCycle, PlanTask, Question, SkillState,
		UserProfile []ent.Hook
	}
	inters struct {
		Attempt, ConstructState, PlanCycle, PlanTask, Question, SkillState,
		UserProfile []ent.Interceptor
	}
)
