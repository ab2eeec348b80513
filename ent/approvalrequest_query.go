// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/MiniSankaz/fleetd/ent/approvaldecision"
	"github.com/MiniSankaz/fleetd/ent/approvalrequest"
	"github.com/MiniSankaz/fleetd/ent/auditentry"
	"github.com/MiniSankaz/fleetd/ent/predicate"
)

// ApprovalRequestQuery is the builder for querying ApprovalRequest entities.
type ApprovalRequestQuery struct {
	config
	ctx              *QueryContext
	order            []approvalrequest.OrderOption
	inters           []Interceptor
	predicates       []predicate.ApprovalRequest
	withDecisions    *ApprovalDecisionQuery
	withAuditEntries *AuditEntryQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ApprovalRequestQuery builder.
func (_q *ApprovalRequestQuery) Where(ps ...predicate.ApprovalRequest) *ApprovalRequestQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ApprovalRequestQuery) Limit(limit int) *ApprovalRequestQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ApprovalRequestQuery) Offset(offset int) *ApprovalRequestQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ApprovalRequestQuery) Unique(unique bool) *ApprovalRequestQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ApprovalRequestQuery) Order(o ...approvalrequest.OrderOption) *ApprovalRequestQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDecisions chains the current query on the "decisions" edge.
func (_q *ApprovalRequestQuery) QueryDecisions() *ApprovalDecisionQuery {
	query := (&ApprovalDecisionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(approvalrequest.Table, approvalrequest.FieldID, selector),
			sqlgraph.To(approvaldecision.Table, approvaldecision.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, approvalrequest.DecisionsTable, approvalrequest.DecisionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAuditEntries chains the current query on the "audit_entries" edge.
func (_q *ApprovalRequestQuery) QueryAuditEntries() *AuditEntryQuery {
	query := (&AuditEntryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(approvalrequest.Table, approvalrequest.FieldID, selector),
			sqlgraph.To(auditentry.Table, auditentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, approvalrequest.AuditEntriesTable, approvalrequest.AuditEntriesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ApprovalRequest entity from the query.
// Returns a *NotFoundError when no ApprovalRequest was found.
func (_q *ApprovalRequestQuery) First(ctx context.Context) (*ApprovalRequest, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{approvalrequest.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ApprovalRequestQuery) FirstX(ctx context.Context) *ApprovalRequest {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ApprovalRequest ID from the query.
// Returns a *NotFoundError when no ApprovalRequest ID was found.
func (_q *ApprovalRequestQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{approvalrequest.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ApprovalRequestQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ApprovalRequest entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ApprovalRequest entity is found.
// Returns a *NotFoundError when no ApprovalRequest entities are found.
func (_q *ApprovalRequestQuery) Only(ctx context.Context) (*ApprovalRequest, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{approvalrequest.Label}
	default:
		return nil, &NotSingularError{approvalrequest.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ApprovalRequestQuery) OnlyX(ctx context.Context) *ApprovalRequest {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ApprovalRequest ID in the query.
// Returns a *NotSingularError when more than one ApprovalRequest ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ApprovalRequestQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{approvalrequest.Label}
	default:
		err = &NotSingularError{approvalrequest.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ApprovalRequestQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ApprovalRequests.
func (_q *ApprovalRequestQuery) All(ctx context.Context) ([]*ApprovalRequest, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ApprovalRequest, *ApprovalRequestQuery]()
	return withInterceptors[[]*ApprovalRequest](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ApprovalRequestQuery) AllX(ctx context.Context) []*ApprovalRequest {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ApprovalRequest IDs.
func (_q *ApprovalRequestQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(approvalrequest.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ApprovalRequestQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ApprovalRequestQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ApprovalRequestQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ApprovalRequestQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ApprovalRequestQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ApprovalRequestQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ApprovalRequestQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ApprovalRequestQuery) Clone() *ApprovalRequestQuery {
	if _q == nil {
		return nil
	}
	return &ApprovalRequestQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]approvalrequest.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.ApprovalRequest{}, _q.predicates...),
		withDecisions:    _q.withDecisions.Clone(),
		withAuditEntries: _q.withAuditEntries.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDecisions tells the query-builder to eager-load the nodes that are connected to
// the "decisions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ApprovalRequestQuery) WithDecisions(opts ...func(*ApprovalDecisionQuery)) *ApprovalRequestQuery {
	query := (&ApprovalDecisionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDecisions = query
	return _q
}

// WithAuditEntries tells the query-builder to eager-load the nodes that are connected to
// the "audit_entries" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ApprovalRequestQuery) WithAuditEntries(opts ...func(*AuditEntryQuery)) *ApprovalRequestQuery {
	query := (&AuditEntryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAuditEntries = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Type string `json:"type,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ApprovalRequest.Query().
//		GroupBy(approvalrequest.FieldType).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ApprovalRequestQuery) GroupBy(field string, fields ...string) *ApprovalRequestGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ApprovalRequestGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = approvalrequest.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Type string `json:"type,omitempty"`
//	}
//
//	client.ApprovalRequest.Query().
//		Select(approvalrequest.FieldType).
//		Scan(ctx, &v)
func (_q *ApprovalRequestQuery) Select(fields ...string) *ApprovalRequestSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ApprovalRequestSelect{ApprovalRequestQuery: _q}
	sbuild.label = approvalrequest.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ApprovalRequestSelect configured with the given aggregations.
func (_q *ApprovalRequestQuery) Aggregate(fns ...AggregateFunc) *ApprovalRequestSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ApprovalRequestQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !approvalrequest.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ApprovalRequestQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ApprovalRequest, error) {
	var (
		nodes       = []*ApprovalRequest{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withDecisions != nil,
			_q.withAuditEntries != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ApprovalRequest).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ApprovalRequest{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withDecisions; query != nil {
		if err := _q.loadDecisions(ctx, query, nodes,
			func(n *ApprovalRequest) { n.Edges.Decisions = []*ApprovalDecision{} },
			func(n *ApprovalRequest, e *ApprovalDecision) { n.Edges.Decisions = append(n.Edges.Decisions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAuditEntries; query != nil {
		if err := _q.loadAuditEntries(ctx, query, nodes,
			func(n *ApprovalRequest) { n.Edges.AuditEntries = []*AuditEntry{} },
			func(n *ApprovalRequest, e *AuditEntry) { n.Edges.AuditEntries = append(n.Edges.AuditEntries, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ApprovalRequestQuery) loadDecisions(ctx context.Context, query *ApprovalDecisionQuery, nodes []*ApprovalRequest, init func(*ApprovalRequest), assign func(*ApprovalRequest, *ApprovalDecision)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ApprovalRequest)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(approvaldecision.FieldRequestID)
	}
	query.Where(predicate.ApprovalDecision(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(approvalrequest.DecisionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RequestID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "request_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ApprovalRequestQuery) loadAuditEntries(ctx context.Context, query *AuditEntryQuery, nodes []*ApprovalRequest, init func(*ApprovalRequest), assign func(*ApprovalRequest, *AuditEntry)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ApprovalRequest)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(auditentry.FieldRequestID)
	}
	query.Where(predicate.AuditEntry(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(approvalrequest.AuditEntriesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RequestID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "request_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ApprovalRequestQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ApprovalRequestQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(approvalrequest.Table, approvalrequest.Columns, sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, approvalrequest.FieldID)
		for i := range fields {
			if fields[i] != approvalrequest.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ApprovalRequestQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(approvalrequest.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = approvalrequest.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ApprovalRequestGroupBy is the group-by builder for ApprovalRequest entities.
type ApprovalRequestGroupBy struct {
	selector
	build *ApprovalRequestQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ApprovalRequestGroupBy) Aggregate(fns ...AggregateFunc) *ApprovalRequestGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ApprovalRequestGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ApprovalRequestQuery, *ApprovalRequestGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ApprovalRequestGroupBy) sqlScan(ctx context.Context, root *ApprovalRequestQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ApprovalRequestSelect is the builder for selecting fields of ApprovalRequest entities.
type ApprovalRequestSelect struct {
	*ApprovalRequestQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ApprovalRequestSelect) Aggregate(fns ...AggregateFunc) *ApprovalRequestSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ApprovalRequestSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ApprovalRequestQuery, *ApprovalRequestSelect](ctx, _s.ApprovalRequestQuery, _s, _s.inters, v)
}

func (_s *ApprovalRequestSelect) sqlScan(ctx context.Context, root *ApprovalRequestQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
