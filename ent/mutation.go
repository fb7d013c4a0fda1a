// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathpal/ent/interactionevent"
	"github.com/abhisek/mathpal/ent/performancelog"
	"github.com/abhisek/mathpal/ent/predicate"
	"github.com/abhisek/mathpal/ent/progress"
	"github.com/abhisek/mathpal/ent/schema"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeInteractionEvent = "InteractionEvent"
	TypePerformanceLog   = "PerformanceLog"
	TypeProgress         = "Progress"
)

// InteractionEventMutation represents an operation that mutates the InteractionEvent nodes in the graph.
type InteractionEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	module_name   *string
	timestamp     *time.Time
	session_id    *string
	question_id   *string
	event_type    *string
	payload       *schema.EventPayload
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*InteractionEvent, error)
	predicates    []predicate.InteractionEvent
}

var _ ent.Mutation = (*InteractionEventMutation)(nil)

// interactioneventOption allows management of the mutation configuration using functional options.
type interactioneventOption func(*InteractionEventMutation)

// newInteractionEventMutation creates new mutation for the InteractionEvent entity.
func newInteractionEventMutation(c config, op Op, opts ...interactioneventOption) *InteractionEventMutation {
	m := &InteractionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeInteractionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInteractionEventID sets the ID field of the mutation.
func withInteractionEventID(id int) interactioneventOption {
	return func(m *InteractionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *InteractionEvent
		)
		m.oldValue = func(ctx context.Context) (*InteractionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InteractionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInteractionEvent sets the old InteractionEvent of the mutation.
func withInteractionEvent(node *InteractionEvent) interactioneventOption {
	return func(m *InteractionEventMutation) {
		m.oldValue = func(context.Context) (*InteractionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InteractionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InteractionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InteractionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InteractionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InteractionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *InteractionEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *InteractionEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *InteractionEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetModuleName sets the "module_name" field.
func (m *InteractionEventMutation) SetModuleName(s string) {
	m.module_name = &s
}

// ModuleName returns the value of the "module_name" field in the mutation.
func (m *InteractionEventMutation) ModuleName() (r string, exists bool) {
	v := m.module_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModuleName returns the old "module_name" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldModuleName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModuleName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModuleName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModuleName: %w", err)
	}
	return oldValue.ModuleName, nil
}

// ResetModuleName resets all changes to the "module_name" field.
func (m *InteractionEventMutation) ResetModuleName() {
	m.module_name = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *InteractionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *InteractionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *InteractionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *InteractionEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *InteractionEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *InteractionEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *InteractionEventMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *InteractionEventMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ClearQuestionID clears the value of the "question_id" field.
func (m *InteractionEventMutation) ClearQuestionID() {
	m.question_id = nil
	m.clearedFields[interactionevent.FieldQuestionID] = struct{}{}
}

// QuestionIDCleared returns if the "question_id" field was cleared in this mutation.
func (m *InteractionEventMutation) QuestionIDCleared() bool {
	_, ok := m.clearedFields[interactionevent.FieldQuestionID]
	return ok
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *InteractionEventMutation) ResetQuestionID() {
	m.question_id = nil
	delete(m.clearedFields, interactionevent.FieldQuestionID)
}

// SetEventType sets the "event_type" field.
func (m *InteractionEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *InteractionEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *InteractionEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *InteractionEventMutation) SetPayload(sp schema.EventPayload) {
	m.payload = &sp
}

// Payload returns the value of the "payload" field in the mutation.
func (m *InteractionEventMutation) Payload() (r schema.EventPayload, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldPayload(ctx context.Context) (v schema.EventPayload, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *InteractionEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[interactionevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *InteractionEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[interactionevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *InteractionEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, interactionevent.FieldPayload)
}

// Where appends a list predicates to the InteractionEventMutation builder.
func (m *InteractionEventMutation) Where(ps ...predicate.InteractionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InteractionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InteractionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InteractionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InteractionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InteractionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InteractionEvent).
func (m *InteractionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InteractionEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user_id != nil {
		fields = append(fields, interactionevent.FieldUserID)
	}
	if m.module_name != nil {
		fields = append(fields, interactionevent.FieldModuleName)
	}
	if m.timestamp != nil {
		fields = append(fields, interactionevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, interactionevent.FieldSessionID)
	}
	if m.question_id != nil {
		fields = append(fields, interactionevent.FieldQuestionID)
	}
	if m.event_type != nil {
		fields = append(fields, interactionevent.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, interactionevent.FieldPayload)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InteractionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case interactionevent.FieldUserID:
		return m.UserID()
	case interactionevent.FieldModuleName:
		return m.ModuleName()
	case interactionevent.FieldTimestamp:
		return m.Timestamp()
	case interactionevent.FieldSessionID:
		return m.SessionID()
	case interactionevent.FieldQuestionID:
		return m.QuestionID()
	case interactionevent.FieldEventType:
		return m.EventType()
	case interactionevent.FieldPayload:
		return m.Payload()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InteractionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case interactionevent.FieldUserID:
		return m.OldUserID(ctx)
	case interactionevent.FieldModuleName:
		return m.OldModuleName(ctx)
	case interactionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case interactionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case interactionevent.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case interactionevent.FieldEventType:
		return m.OldEventType(ctx)
	case interactionevent.FieldPayload:
		return m.OldPayload(ctx)
	}
	return nil, fmt.Errorf("unknown InteractionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InteractionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case interactionevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case interactionevent.FieldModuleName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModuleName(v)
		return nil
	case interactionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case interactionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case interactionevent.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case interactionevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case interactionevent.FieldPayload:
		v, ok := value.(schema.EventPayload)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	}
	return fmt.Errorf("unknown InteractionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InteractionEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InteractionEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InteractionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown InteractionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InteractionEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(interactionevent.FieldQuestionID) {
		fields = append(fields, interactionevent.FieldQuestionID)
	}
	if m.FieldCleared(interactionevent.FieldPayload) {
		fields = append(fields, interactionevent.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InteractionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InteractionEventMutation) ClearField(name string) error {
	switch name {
	case interactionevent.FieldQuestionID:
		m.ClearQuestionID()
		return nil
	case interactionevent.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown InteractionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InteractionEventMutation) ResetField(name string) error {
	switch name {
	case interactionevent.FieldUserID:
		m.ResetUserID()
		return nil
	case interactionevent.FieldModuleName:
		m.ResetModuleName()
		return nil
	case interactionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case interactionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case interactionevent.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case interactionevent.FieldEventType:
		m.ResetEventType()
		return nil
	case interactionevent.FieldPayload:
		m.ResetPayload()
		return nil
	}
	return fmt.Errorf("unknown InteractionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InteractionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InteractionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InteractionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InteractionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InteractionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InteractionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InteractionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InteractionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InteractionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InteractionEvent edge %s", name)
}

// PerformanceLogMutation represents an operation that mutates the PerformanceLog nodes in the graph.
type PerformanceLogMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	user_id             *string
	module_name         *string
	timestamp           *time.Time
	session_id          *string
	question_type       *string
	is_correct          *bool
	response_time_ms    *int64
	addresponse_time_ms *int64
	difficulty          *string
	hints_used          *int
	addhints_used       *int
	concept_tags        *[]string
	appendconcept_tags  []string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*PerformanceLog, error)
	predicates          []predicate.PerformanceLog
}

var _ ent.Mutation = (*PerformanceLogMutation)(nil)

// performancelogOption allows management of the mutation configuration using functional options.
type performancelogOption func(*PerformanceLogMutation)

// newPerformanceLogMutation creates new mutation for the PerformanceLog entity.
func newPerformanceLogMutation(c config, op Op, opts ...performancelogOption) *PerformanceLogMutation {
	m := &PerformanceLogMutation{
		config:        c,
		op:            op,
		typ:           TypePerformanceLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPerformanceLogID sets the ID field of the mutation.
func withPerformanceLogID(id int) performancelogOption {
	return func(m *PerformanceLogMutation) {
		var (
			err   error
			once  sync.Once
			value *PerformanceLog
		)
		m.oldValue = func(ctx context.Context) (*PerformanceLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PerformanceLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPerformanceLog sets the old PerformanceLog of the mutation.
func withPerformanceLog(node *PerformanceLog) performancelogOption {
	return func(m *PerformanceLogMutation) {
		m.oldValue = func(context.Context) (*PerformanceLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PerformanceLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PerformanceLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PerformanceLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PerformanceLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PerformanceLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PerformanceLogMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PerformanceLogMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PerformanceLog entity.
// If the PerformanceLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceLogMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PerformanceLogMutation) ResetUserID() {
	m.user_id = nil
}

// SetModuleName sets the "module_name" field.
func (m *PerformanceLogMutation) SetModuleName(s string) {
	m.module_name = &s
}

// ModuleName returns the value of the "module_name" field in the mutation.
func (m *PerformanceLogMutation) ModuleName() (r string, exists bool) {
	v := m.module_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModuleName returns the old "module_name" field's value of the PerformanceLog entity.
// If the PerformanceLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceLogMutation) OldModuleName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModuleName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModuleName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModuleName: %w", err)
	}
	return oldValue.ModuleName, nil
}

// ResetModuleName resets all changes to the "module_name" field.
func (m *PerformanceLogMutation) ResetModuleName() {
	m.module_name = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *PerformanceLogMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *PerformanceLogMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the PerformanceLog entity.
// If the PerformanceLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceLogMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *PerformanceLogMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *PerformanceLogMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PerformanceLogMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the PerformanceLog entity.
// If the PerformanceLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceLogMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PerformanceLogMutation) ResetSessionID() {
	m.session_id = nil
}

// SetQuestionType sets the "question_type" field.
func (m *PerformanceLogMutation) SetQuestionType(s string) {
	m.question_type = &s
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *PerformanceLogMutation) QuestionType() (r string, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the PerformanceLog entity.
// If the PerformanceLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceLogMutation) OldQuestionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *PerformanceLogMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetIsCorrect sets the "is_correct" field.
func (m *PerformanceLogMutation) SetIsCorrect(b bool) {
	m.is_correct = &b
}

// IsCorrect returns the value of the "is_correct" field in the mutation.
func (m *PerformanceLogMutation) IsCorrect() (r bool, exists bool) {
	v := m.is_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCorrect returns the old "is_correct" field's value of the PerformanceLog entity.
// If the PerformanceLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceLogMutation) OldIsCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCorrect: %w", err)
	}
	return oldValue.IsCorrect, nil
}

// ResetIsCorrect resets all changes to the "is_correct" field.
func (m *PerformanceLogMutation) ResetIsCorrect() {
	m.is_correct = nil
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (m *PerformanceLogMutation) SetResponseTimeMs(i int64) {
	m.response_time_ms = &i
	m.addresponse_time_ms = nil
}

// ResponseTimeMs returns the value of the "response_time_ms" field in the mutation.
func (m *PerformanceLogMutation) ResponseTimeMs() (r int64, exists bool) {
	v := m.response_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseTimeMs returns the old "response_time_ms" field's value of the PerformanceLog entity.
// If the PerformanceLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceLogMutation) OldResponseTimeMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseTimeMs: %w", err)
	}
	return oldValue.ResponseTimeMs, nil
}

// AddResponseTimeMs adds i to the "response_time_ms" field.
func (m *PerformanceLogMutation) AddResponseTimeMs(i int64) {
	if m.addresponse_time_ms != nil {
		*m.addresponse_time_ms += i
	} else {
		m.addresponse_time_ms = &i
	}
}

// AddedResponseTimeMs returns the value that was added to the "response_time_ms" field in this mutation.
func (m *PerformanceLogMutation) AddedResponseTimeMs() (r int64, exists bool) {
	v := m.addresponse_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseTimeMs resets all changes to the "response_time_ms" field.
func (m *PerformanceLogMutation) ResetResponseTimeMs() {
	m.response_time_ms = nil
	m.addresponse_time_ms = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *PerformanceLogMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *PerformanceLogMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the PerformanceLog entity.
// If the PerformanceLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceLogMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *PerformanceLogMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetHintsUsed sets the "hints_used" field.
func (m *PerformanceLogMutation) SetHintsUsed(i int) {
	m.hints_used = &i
	m.addhints_used = nil
}

// HintsUsed returns the value of the "hints_used" field in the mutation.
func (m *PerformanceLogMutation) HintsUsed() (r int, exists bool) {
	v := m.hints_used
	if v == nil {
		return
	}
	return *v, true
}

// OldHintsUsed returns the old "hints_used" field's value of the PerformanceLog entity.
// If the PerformanceLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceLogMutation) OldHintsUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHintsUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHintsUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHintsUsed: %w", err)
	}
	return oldValue.HintsUsed, nil
}

// AddHintsUsed adds i to the "hints_used" field.
func (m *PerformanceLogMutation) AddHintsUsed(i int) {
	if m.addhints_used != nil {
		*m.addhints_used += i
	} else {
		m.addhints_used = &i
	}
}

// AddedHintsUsed returns the value that was added to the "hints_used" field in this mutation.
func (m *PerformanceLogMutation) AddedHintsUsed() (r int, exists bool) {
	v := m.addhints_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetHintsUsed resets all changes to the "hints_used" field.
func (m *PerformanceLogMutation) ResetHintsUsed() {
	m.hints_used = nil
	m.addhints_used = nil
}

// SetConceptTags sets the "concept_tags" field.
func (m *PerformanceLogMutation) SetConceptTags(s []string) {
	m.concept_tags = &s
	m.appendconcept_tags = nil
}

// ConceptTags returns the value of the "concept_tags" field in the mutation.
func (m *PerformanceLogMutation) ConceptTags() (r []string, exists bool) {
	v := m.concept_tags
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptTags returns the old "concept_tags" field's value of the PerformanceLog entity.
// If the PerformanceLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceLogMutation) OldConceptTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptTags: %w", err)
	}
	return oldValue.ConceptTags, nil
}

// AppendConceptTags adds s to the "concept_tags" field.
func (m *PerformanceLogMutation) AppendConceptTags(s []string) {
	m.appendconcept_tags = append(m.appendconcept_tags, s...)
}

// AppendedConceptTags returns the list of values that were appended to the "concept_tags" field in this mutation.
func (m *PerformanceLogMutation) AppendedConceptTags() ([]string, bool) {
	if len(m.appendconcept_tags) == 0 {
		return nil, false
	}
	return m.appendconcept_tags, true
}

// ClearConceptTags clears the value of the "concept_tags" field.
func (m *PerformanceLogMutation) ClearConceptTags() {
	m.concept_tags = nil
	m.appendconcept_tags = nil
	m.clearedFields[performancelog.FieldConceptTags] = struct{}{}
}

// ConceptTagsCleared returns if the "concept_tags" field was cleared in this mutation.
func (m *PerformanceLogMutation) ConceptTagsCleared() bool {
	_, ok := m.clearedFields[performancelog.FieldConceptTags]
	return ok
}

// ResetConceptTags resets all changes to the "concept_tags" field.
func (m *PerformanceLogMutation) ResetConceptTags() {
	m.concept_tags = nil
	m.appendconcept_tags = nil
	delete(m.clearedFields, performancelog.FieldConceptTags)
}

// Where appends a list predicates to the PerformanceLogMutation builder.
func (m *PerformanceLogMutation) Where(ps ...predicate.PerformanceLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PerformanceLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PerformanceLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PerformanceLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PerformanceLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PerformanceLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PerformanceLog).
func (m *PerformanceLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PerformanceLogMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user_id != nil {
		fields = append(fields, performancelog.FieldUserID)
	}
	if m.module_name != nil {
		fields = append(fields, performancelog.FieldModuleName)
	}
	if m.timestamp != nil {
		fields = append(fields, performancelog.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, performancelog.FieldSessionID)
	}
	if m.question_type != nil {
		fields = append(fields, performancelog.FieldQuestionType)
	}
	if m.is_correct != nil {
		fields = append(fields, performancelog.FieldIsCorrect)
	}
	if m.response_time_ms != nil {
		fields = append(fields, performancelog.FieldResponseTimeMs)
	}
	if m.difficulty != nil {
		fields = append(fields, performancelog.FieldDifficulty)
	}
	if m.hints_used != nil {
		fields = append(fields, performancelog.FieldHintsUsed)
	}
	if m.concept_tags != nil {
		fields = append(fields, performancelog.FieldConceptTags)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PerformanceLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case performancelog.FieldUserID:
		return m.UserID()
	case performancelog.FieldModuleName:
		return m.ModuleName()
	case performancelog.FieldTimestamp:
		return m.Timestamp()
	case performancelog.FieldSessionID:
		return m.SessionID()
	case performancelog.FieldQuestionType:
		return m.QuestionType()
	case performancelog.FieldIsCorrect:
		return m.IsCorrect()
	case performancelog.FieldResponseTimeMs:
		return m.ResponseTimeMs()
	case performancelog.FieldDifficulty:
		return m.Difficulty()
	case performancelog.FieldHintsUsed:
		return m.HintsUsed()
	case performancelog.FieldConceptTags:
		return m.ConceptTags()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PerformanceLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case performancelog.FieldUserID:
		return m.OldUserID(ctx)
	case performancelog.FieldModuleName:
		return m.OldModuleName(ctx)
	case performancelog.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case performancelog.FieldSessionID:
		return m.OldSessionID(ctx)
	case performancelog.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case performancelog.FieldIsCorrect:
		return m.OldIsCorrect(ctx)
	case performancelog.FieldResponseTimeMs:
		return m.OldResponseTimeMs(ctx)
	case performancelog.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case performancelog.FieldHintsUsed:
		return m.OldHintsUsed(ctx)
	case performancelog.FieldConceptTags:
		return m.OldConceptTags(ctx)
	}
	return nil, fmt.Errorf("unknown PerformanceLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PerformanceLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case performancelog.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case performancelog.FieldModuleName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModuleName(v)
		return nil
	case performancelog.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case performancelog.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case performancelog.FieldQuestionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case performancelog.FieldIsCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCorrect(v)
		return nil
	case performancelog.FieldResponseTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseTimeMs(v)
		return nil
	case performancelog.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case performancelog.FieldHintsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHintsUsed(v)
		return nil
	case performancelog.FieldConceptTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptTags(v)
		return nil
	}
	return fmt.Errorf("unknown PerformanceLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PerformanceLogMutation) AddedFields() []string {
	var fields []string
	if m.addresponse_time_ms != nil {
		fields = append(fields, performancelog.FieldResponseTimeMs)
	}
	if m.addhints_used != nil {
		fields = append(fields, performancelog.FieldHintsUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PerformanceLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case performancelog.FieldResponseTimeMs:
		return m.AddedResponseTimeMs()
	case performancelog.FieldHintsUsed:
		return m.AddedHintsUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PerformanceLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case performancelog.FieldResponseTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseTimeMs(v)
		return nil
	case performancelog.FieldHintsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHintsUsed(v)
		return nil
	}
	return fmt.Errorf("unknown PerformanceLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PerformanceLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(performancelog.FieldConceptTags) {
		fields = append(fields, performancelog.FieldConceptTags)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PerformanceLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PerformanceLogMutation) ClearField(name string) error {
	switch name {
	case performancelog.FieldConceptTags:
		m.ClearConceptTags()
		return nil
	}
	return fmt.Errorf("unknown PerformanceLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PerformanceLogMutation) ResetField(name string) error {
	switch name {
	case performancelog.FieldUserID:
		m.ResetUserID()
		return nil
	case performancelog.FieldModuleName:
		m.ResetModuleName()
		return nil
	case performancelog.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case performancelog.FieldSessionID:
		m.ResetSessionID()
		return nil
	case performancelog.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case performancelog.FieldIsCorrect:
		m.ResetIsCorrect()
		return nil
	case performancelog.FieldResponseTimeMs:
		m.ResetResponseTimeMs()
		return nil
	case performancelog.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case performancelog.FieldHintsUsed:
		m.ResetHintsUsed()
		return nil
	case performancelog.FieldConceptTags:
		m.ResetConceptTags()
		return nil
	}
	return fmt.Errorf("unknown PerformanceLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PerformanceLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PerformanceLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PerformanceLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PerformanceLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PerformanceLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PerformanceLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PerformanceLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PerformanceLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PerformanceLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PerformanceLog edge %s", name)
}

// ProgressMutation represents an operation that mutates the Progress nodes in the graph.
type ProgressMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	user_id                *string
	module_name            *string
	timestamp              *time.Time
	accuracy_pct           *int
	addaccuracy_pct        *int
	mastery_level          *string
	completed_sessions     *int
	addcompleted_sessions  *int
	total_questions        *int
	addtotal_questions     *int
	correct_answers        *int
	addcorrect_answers     *int
	current_difficulty     *string
	strengths              *[]schema.ConceptStat
	appendstrengths        []schema.ConceptStat
	weak_areas             *[]schema.ConceptStat
	appendweak_areas       []schema.ConceptStat
	average_response_ms    *float64
	addaverage_response_ms *float64
	total_time_secs        *int
	addtotal_time_secs     *int
	last_session_at        *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Progress, error)
	predicates             []predicate.Progress
}

var _ ent.Mutation = (*ProgressMutation)(nil)

// progressOption allows management of the mutation configuration using functional options.
type progressOption func(*ProgressMutation)

// newProgressMutation creates new mutation for the Progress entity.
func newProgressMutation(c config, op Op, opts ...progressOption) *ProgressMutation {
	m := &ProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProgressID sets the ID field of the mutation.
func withProgressID(id int) progressOption {
	return func(m *ProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *Progress
		)
		m.oldValue = func(ctx context.Context) (*Progress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Progress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProgress sets the old Progress of the mutation.
func withProgress(node *Progress) progressOption {
	return func(m *ProgressMutation) {
		m.oldValue = func(context.Context) (*Progress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Progress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ProgressMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ProgressMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ProgressMutation) ResetUserID() {
	m.user_id = nil
}

// SetModuleName sets the "module_name" field.
func (m *ProgressMutation) SetModuleName(s string) {
	m.module_name = &s
}

// ModuleName returns the value of the "module_name" field in the mutation.
func (m *ProgressMutation) ModuleName() (r string, exists bool) {
	v := m.module_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModuleName returns the old "module_name" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldModuleName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModuleName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModuleName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModuleName: %w", err)
	}
	return oldValue.ModuleName, nil
}

// ResetModuleName resets all changes to the "module_name" field.
func (m *ProgressMutation) ResetModuleName() {
	m.module_name = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ProgressMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ProgressMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ProgressMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAccuracyPct sets the "accuracy_pct" field.
func (m *ProgressMutation) SetAccuracyPct(i int) {
	m.accuracy_pct = &i
	m.addaccuracy_pct = nil
}

// AccuracyPct returns the value of the "accuracy_pct" field in the mutation.
func (m *ProgressMutation) AccuracyPct() (r int, exists bool) {
	v := m.accuracy_pct
	if v == nil {
		return
	}
	return *v, true
}

// OldAccuracyPct returns the old "accuracy_pct" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldAccuracyPct(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccuracyPct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccuracyPct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccuracyPct: %w", err)
	}
	return oldValue.AccuracyPct, nil
}

// AddAccuracyPct adds i to the "accuracy_pct" field.
func (m *ProgressMutation) AddAccuracyPct(i int) {
	if m.addaccuracy_pct != nil {
		*m.addaccuracy_pct += i
	} else {
		m.addaccuracy_pct = &i
	}
}

// AddedAccuracyPct returns the value that was added to the "accuracy_pct" field in this mutation.
func (m *ProgressMutation) AddedAccuracyPct() (r int, exists bool) {
	v := m.addaccuracy_pct
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccuracyPct resets all changes to the "accuracy_pct" field.
func (m *ProgressMutation) ResetAccuracyPct() {
	m.accuracy_pct = nil
	m.addaccuracy_pct = nil
}

// SetMasteryLevel sets the "mastery_level" field.
func (m *ProgressMutation) SetMasteryLevel(s string) {
	m.mastery_level = &s
}

// MasteryLevel returns the value of the "mastery_level" field in the mutation.
func (m *ProgressMutation) MasteryLevel() (r string, exists bool) {
	v := m.mastery_level
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryLevel returns the old "mastery_level" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldMasteryLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryLevel: %w", err)
	}
	return oldValue.MasteryLevel, nil
}

// ResetMasteryLevel resets all changes to the "mastery_level" field.
func (m *ProgressMutation) ResetMasteryLevel() {
	m.mastery_level = nil
}

// SetCompletedSessions sets the "completed_sessions" field.
func (m *ProgressMutation) SetCompletedSessions(i int) {
	m.completed_sessions = &i
	m.addcompleted_sessions = nil
}

// CompletedSessions returns the value of the "completed_sessions" field in the mutation.
func (m *ProgressMutation) CompletedSessions() (r int, exists bool) {
	v := m.completed_sessions
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedSessions returns the old "completed_sessions" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldCompletedSessions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedSessions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedSessions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedSessions: %w", err)
	}
	return oldValue.CompletedSessions, nil
}

// AddCompletedSessions adds i to the "completed_sessions" field.
func (m *ProgressMutation) AddCompletedSessions(i int) {
	if m.addcompleted_sessions != nil {
		*m.addcompleted_sessions += i
	} else {
		m.addcompleted_sessions = &i
	}
}

// AddedCompletedSessions returns the value that was added to the "completed_sessions" field in this mutation.
func (m *ProgressMutation) AddedCompletedSessions() (r int, exists bool) {
	v := m.addcompleted_sessions
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedSessions resets all changes to the "completed_sessions" field.
func (m *ProgressMutation) ResetCompletedSessions() {
	m.completed_sessions = nil
	m.addcompleted_sessions = nil
}

// SetTotalQuestions sets the "total_questions" field.
func (m *ProgressMutation) SetTotalQuestions(i int) {
	m.total_questions = &i
	m.addtotal_questions = nil
}

// TotalQuestions returns the value of the "total_questions" field in the mutation.
func (m *ProgressMutation) TotalQuestions() (r int, exists bool) {
	v := m.total_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQuestions returns the old "total_questions" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldTotalQuestions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQuestions: %w", err)
	}
	return oldValue.TotalQuestions, nil
}

// AddTotalQuestions adds i to the "total_questions" field.
func (m *ProgressMutation) AddTotalQuestions(i int) {
	if m.addtotal_questions != nil {
		*m.addtotal_questions += i
	} else {
		m.addtotal_questions = &i
	}
}

// AddedTotalQuestions returns the value that was added to the "total_questions" field in this mutation.
func (m *ProgressMutation) AddedTotalQuestions() (r int, exists bool) {
	v := m.addtotal_questions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQuestions resets all changes to the "total_questions" field.
func (m *ProgressMutation) ResetTotalQuestions() {
	m.total_questions = nil
	m.addtotal_questions = nil
}

// SetCorrectAnswers sets the "correct_answers" field.
func (m *ProgressMutation) SetCorrectAnswers(i int) {
	m.correct_answers = &i
	m.addcorrect_answers = nil
}

// CorrectAnswers returns the value of the "correct_answers" field in the mutation.
func (m *ProgressMutation) CorrectAnswers() (r int, exists bool) {
	v := m.correct_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswers returns the old "correct_answers" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldCorrectAnswers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswers: %w", err)
	}
	return oldValue.CorrectAnswers, nil
}

// AddCorrectAnswers adds i to the "correct_answers" field.
func (m *ProgressMutation) AddCorrectAnswers(i int) {
	if m.addcorrect_answers != nil {
		*m.addcorrect_answers += i
	} else {
		m.addcorrect_answers = &i
	}
}

// AddedCorrectAnswers returns the value that was added to the "correct_answers" field in this mutation.
func (m *ProgressMutation) AddedCorrectAnswers() (r int, exists bool) {
	v := m.addcorrect_answers
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectAnswers resets all changes to the "correct_answers" field.
func (m *ProgressMutation) ResetCorrectAnswers() {
	m.correct_answers = nil
	m.addcorrect_answers = nil
}

// SetCurrentDifficulty sets the "current_difficulty" field.
func (m *ProgressMutation) SetCurrentDifficulty(s string) {
	m.current_difficulty = &s
}

// CurrentDifficulty returns the value of the "current_difficulty" field in the mutation.
func (m *ProgressMutation) CurrentDifficulty() (r string, exists bool) {
	v := m.current_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentDifficulty returns the old "current_difficulty" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldCurrentDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentDifficulty: %w", err)
	}
	return oldValue.CurrentDifficulty, nil
}

// ResetCurrentDifficulty resets all changes to the "current_difficulty" field.
func (m *ProgressMutation) ResetCurrentDifficulty() {
	m.current_difficulty = nil
}

// SetStrengths sets the "strengths" field.
func (m *ProgressMutation) SetStrengths(ss []schema.ConceptStat) {
	m.strengths = &ss
	m.appendstrengths = nil
}

// Strengths returns the value of the "strengths" field in the mutation.
func (m *ProgressMutation) Strengths() (r []schema.ConceptStat, exists bool) {
	v := m.strengths
	if v == nil {
		return
	}
	return *v, true
}

// OldStrengths returns the old "strengths" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldStrengths(ctx context.Context) (v []schema.ConceptStat, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrengths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrengths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrengths: %w", err)
	}
	return oldValue.Strengths, nil
}

// AppendStrengths adds ss to the "strengths" field.
func (m *ProgressMutation) AppendStrengths(ss []schema.ConceptStat) {
	m.appendstrengths = append(m.appendstrengths, ss...)
}

// AppendedStrengths returns the list of values that were appended to the "strengths" field in this mutation.
func (m *ProgressMutation) AppendedStrengths() ([]schema.ConceptStat, bool) {
	if len(m.appendstrengths) == 0 {
		return nil, false
	}
	return m.appendstrengths, true
}

// ClearStrengths clears the value of the "strengths" field.
func (m *ProgressMutation) ClearStrengths() {
	m.strengths = nil
	m.appendstrengths = nil
	m.clearedFields[progress.FieldStrengths] = struct{}{}
}

// StrengthsCleared returns if the "strengths" field was cleared in this mutation.
func (m *ProgressMutation) StrengthsCleared() bool {
	_, ok := m.clearedFields[progress.FieldStrengths]
	return ok
}

// ResetStrengths resets all changes to the "strengths" field.
func (m *ProgressMutation) ResetStrengths() {
	m.strengths = nil
	m.appendstrengths = nil
	delete(m.clearedFields, progress.FieldStrengths)
}

// SetWeakAreas sets the "weak_areas" field.
func (m *ProgressMutation) SetWeakAreas(ss []schema.ConceptStat) {
	m.weak_areas = &ss
	m.appendweak_areas = nil
}

// WeakAreas returns the value of the "weak_areas" field in the mutation.
func (m *ProgressMutation) WeakAreas() (r []schema.ConceptStat, exists bool) {
	v := m.weak_areas
	if v == nil {
		return
	}
	return *v, true
}

// OldWeakAreas returns the old "weak_areas" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldWeakAreas(ctx context.Context) (v []schema.ConceptStat, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeakAreas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeakAreas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeakAreas: %w", err)
	}
	return oldValue.WeakAreas, nil
}

// AppendWeakAreas adds ss to the "weak_areas" field.
func (m *ProgressMutation) AppendWeakAreas(ss []schema.ConceptStat) {
	m.appendweak_areas = append(m.appendweak_areas, ss...)
}

// AppendedWeakAreas returns the list of values that were appended to the "weak_areas" field in this mutation.
func (m *ProgressMutation) AppendedWeakAreas() ([]schema.ConceptStat, bool) {
	if len(m.appendweak_areas) == 0 {
		return nil, false
	}
	return m.appendweak_areas, true
}

// ClearWeakAreas clears the value of the "weak_areas" field.
func (m *ProgressMutation) ClearWeakAreas() {
	m.weak_areas = nil
	m.appendweak_areas = nil
	m.clearedFields[progress.FieldWeakAreas] = struct{}{}
}

// WeakAreasCleared returns if the "weak_areas" field was cleared in this mutation.
func (m *ProgressMutation) WeakAreasCleared() bool {
	_, ok := m.clearedFields[progress.FieldWeakAreas]
	return ok
}

// ResetWeakAreas resets all changes to the "weak_areas" field.
func (m *ProgressMutation) ResetWeakAreas() {
	m.weak_areas = nil
	m.appendweak_areas = nil
	delete(m.clearedFields, progress.FieldWeakAreas)
}

// SetAverageResponseMs sets the "average_response_ms" field.
func (m *ProgressMutation) SetAverageResponseMs(f float64) {
	m.average_response_ms = &f
	m.addaverage_response_ms = nil
}

// AverageResponseMs returns the value of the "average_response_ms" field in the mutation.
func (m *ProgressMutation) AverageResponseMs() (r float64, exists bool) {
	v := m.average_response_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldAverageResponseMs returns the old "average_response_ms" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldAverageResponseMs(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAverageResponseMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAverageResponseMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAverageResponseMs: %w", err)
	}
	return oldValue.AverageResponseMs, nil
}

// AddAverageResponseMs adds f to the "average_response_ms" field.
func (m *ProgressMutation) AddAverageResponseMs(f float64) {
	if m.addaverage_response_ms != nil {
		*m.addaverage_response_ms += f
	} else {
		m.addaverage_response_ms = &f
	}
}

// AddedAverageResponseMs returns the value that was added to the "average_response_ms" field in this mutation.
func (m *ProgressMutation) AddedAverageResponseMs() (r float64, exists bool) {
	v := m.addaverage_response_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetAverageResponseMs resets all changes to the "average_response_ms" field.
func (m *ProgressMutation) ResetAverageResponseMs() {
	m.average_response_ms = nil
	m.addaverage_response_ms = nil
}

// SetTotalTimeSecs sets the "total_time_secs" field.
func (m *ProgressMutation) SetTotalTimeSecs(i int) {
	m.total_time_secs = &i
	m.addtotal_time_secs = nil
}

// TotalTimeSecs returns the value of the "total_time_secs" field in the mutation.
func (m *ProgressMutation) TotalTimeSecs() (r int, exists bool) {
	v := m.total_time_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTimeSecs returns the old "total_time_secs" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldTotalTimeSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTimeSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTimeSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTimeSecs: %w", err)
	}
	return oldValue.TotalTimeSecs, nil
}

// AddTotalTimeSecs adds i to the "total_time_secs" field.
func (m *ProgressMutation) AddTotalTimeSecs(i int) {
	if m.addtotal_time_secs != nil {
		*m.addtotal_time_secs += i
	} else {
		m.addtotal_time_secs = &i
	}
}

// AddedTotalTimeSecs returns the value that was added to the "total_time_secs" field in this mutation.
func (m *ProgressMutation) AddedTotalTimeSecs() (r int, exists bool) {
	v := m.addtotal_time_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTimeSecs resets all changes to the "total_time_secs" field.
func (m *ProgressMutation) ResetTotalTimeSecs() {
	m.total_time_secs = nil
	m.addtotal_time_secs = nil
}

// SetLastSessionAt sets the "last_session_at" field.
func (m *ProgressMutation) SetLastSessionAt(t time.Time) {
	m.last_session_at = &t
}

// LastSessionAt returns the value of the "last_session_at" field in the mutation.
func (m *ProgressMutation) LastSessionAt() (r time.Time, exists bool) {
	v := m.last_session_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSessionAt returns the old "last_session_at" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldLastSessionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSessionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSessionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSessionAt: %w", err)
	}
	return oldValue.LastSessionAt, nil
}

// ClearLastSessionAt clears the value of the "last_session_at" field.
func (m *ProgressMutation) ClearLastSessionAt() {
	m.last_session_at = nil
	m.clearedFields[progress.FieldLastSessionAt] = struct{}{}
}

// LastSessionAtCleared returns if the "last_session_at" field was cleared in this mutation.
func (m *ProgressMutation) LastSessionAtCleared() bool {
	_, ok := m.clearedFields[progress.FieldLastSessionAt]
	return ok
}

// ResetLastSessionAt resets all changes to the "last_session_at" field.
func (m *ProgressMutation) ResetLastSessionAt() {
	m.last_session_at = nil
	delete(m.clearedFields, progress.FieldLastSessionAt)
}

// Where appends a list predicates to the ProgressMutation builder.
func (m *ProgressMutation) Where(ps ...predicate.Progress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Progress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Progress).
func (m *ProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProgressMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.user_id != nil {
		fields = append(fields, progress.FieldUserID)
	}
	if m.module_name != nil {
		fields = append(fields, progress.FieldModuleName)
	}
	if m.timestamp != nil {
		fields = append(fields, progress.FieldTimestamp)
	}
	if m.accuracy_pct != nil {
		fields = append(fields, progress.FieldAccuracyPct)
	}
	if m.mastery_level != nil {
		fields = append(fields, progress.FieldMasteryLevel)
	}
	if m.completed_sessions != nil {
		fields = append(fields, progress.FieldCompletedSessions)
	}
	if m.total_questions != nil {
		fields = append(fields, progress.FieldTotalQuestions)
	}
	if m.correct_answers != nil {
		fields = append(fields, progress.FieldCorrectAnswers)
	}
	if m.current_difficulty != nil {
		fields = append(fields, progress.FieldCurrentDifficulty)
	}
	if m.strengths != nil {
		fields = append(fields, progress.FieldStrengths)
	}
	if m.weak_areas != nil {
		fields = append(fields, progress.FieldWeakAreas)
	}
	if m.average_response_ms != nil {
		fields = append(fields, progress.FieldAverageResponseMs)
	}
	if m.total_time_secs != nil {
		fields = append(fields, progress.FieldTotalTimeSecs)
	}
	if m.last_session_at != nil {
		fields = append(fields, progress.FieldLastSessionAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case progress.FieldUserID:
		return m.UserID()
	case progress.FieldModuleName:
		return m.ModuleName()
	case progress.FieldTimestamp:
		return m.Timestamp()
	case progress.FieldAccuracyPct:
		return m.AccuracyPct()
	case progress.FieldMasteryLevel:
		return m.MasteryLevel()
	case progress.FieldCompletedSessions:
		return m.CompletedSessions()
	case progress.FieldTotalQuestions:
		return m.TotalQuestions()
	case progress.FieldCorrectAnswers:
		return m.CorrectAnswers()
	case progress.FieldCurrentDifficulty:
		return m.CurrentDifficulty()
	case progress.FieldStrengths:
		return m.Strengths()
	case progress.FieldWeakAreas:
		return m.WeakAreas()
	case progress.FieldAverageResponseMs:
		return m.AverageResponseMs()
	case progress.FieldTotalTimeSecs:
		return m.TotalTimeSecs()
	case progress.FieldLastSessionAt:
		return m.LastSessionAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case progress.FieldUserID:
		return m.OldUserID(ctx)
	case progress.FieldModuleName:
		return m.OldModuleName(ctx)
	case progress.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case progress.FieldAccuracyPct:
		return m.OldAccuracyPct(ctx)
	case progress.FieldMasteryLevel:
		return m.OldMasteryLevel(ctx)
	case progress.FieldCompletedSessions:
		return m.OldCompletedSessions(ctx)
	case progress.FieldTotalQuestions:
		return m.OldTotalQuestions(ctx)
	case progress.FieldCorrectAnswers:
		return m.OldCorrectAnswers(ctx)
	case progress.FieldCurrentDifficulty:
		return m.OldCurrentDifficulty(ctx)
	case progress.FieldStrengths:
		return m.OldStrengths(ctx)
	case progress.FieldWeakAreas:
		return m.OldWeakAreas(ctx)
	case progress.FieldAverageResponseMs:
		return m.OldAverageResponseMs(ctx)
	case progress.FieldTotalTimeSecs:
		return m.OldTotalTimeSecs(ctx)
	case progress.FieldLastSessionAt:
		return m.OldLastSessionAt(ctx)
	}
	return nil, fmt.Errorf("unknown Progress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case progress.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case progress.FieldModuleName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModuleName(v)
		return nil
	case progress.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case progress.FieldAccuracyPct:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccuracyPct(v)
		return nil
	case progress.FieldMasteryLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryLevel(v)
		return nil
	case progress.FieldCompletedSessions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedSessions(v)
		return nil
	case progress.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQuestions(v)
		return nil
	case progress.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswers(v)
		return nil
	case progress.FieldCurrentDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentDifficulty(v)
		return nil
	case progress.FieldStrengths:
		v, ok := value.([]schema.ConceptStat)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrengths(v)
		return nil
	case progress.FieldWeakAreas:
		v, ok := value.([]schema.ConceptStat)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeakAreas(v)
		return nil
	case progress.FieldAverageResponseMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAverageResponseMs(v)
		return nil
	case progress.FieldTotalTimeSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTimeSecs(v)
		return nil
	case progress.FieldLastSessionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSessionAt(v)
		return nil
	}
	return fmt.Errorf("unknown Progress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProgressMutation) AddedFields() []string {
	var fields []string
	if m.addaccuracy_pct != nil {
		fields = append(fields, progress.FieldAccuracyPct)
	}
	if m.addcompleted_sessions != nil {
		fields = append(fields, progress.FieldCompletedSessions)
	}
	if m.addtotal_questions != nil {
		fields = append(fields, progress.FieldTotalQuestions)
	}
	if m.addcorrect_answers != nil {
		fields = append(fields, progress.FieldCorrectAnswers)
	}
	if m.addaverage_response_ms != nil {
		fields = append(fields, progress.FieldAverageResponseMs)
	}
	if m.addtotal_time_secs != nil {
		fields = append(fields, progress.FieldTotalTimeSecs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case progress.FieldAccuracyPct:
		return m.AddedAccuracyPct()
	case progress.FieldCompletedSessions:
		return m.AddedCompletedSessions()
	case progress.FieldTotalQuestions:
		return m.AddedTotalQuestions()
	case progress.FieldCorrectAnswers:
		return m.AddedCorrectAnswers()
	case progress.FieldAverageResponseMs:
		return m.AddedAverageResponseMs()
	case progress.FieldTotalTimeSecs:
		return m.AddedTotalTimeSecs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case progress.FieldAccuracyPct:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccuracyPct(v)
		return nil
	case progress.FieldCompletedSessions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedSessions(v)
		return nil
	case progress.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQuestions(v)
		return nil
	case progress.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectAnswers(v)
		return nil
	case progress.FieldAverageResponseMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAverageResponseMs(v)
		return nil
	case progress.FieldTotalTimeSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTimeSecs(v)
		return nil
	}
	return fmt.Errorf("unknown Progress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(progress.FieldStrengths) {
		fields = append(fields, progress.FieldStrengths)
	}
	if m.FieldCleared(progress.FieldWeakAreas) {
		fields = append(fields, progress.FieldWeakAreas)
	}
	if m.FieldCleared(progress.FieldLastSessionAt) {
		fields = append(fields, progress.FieldLastSessionAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProgressMutation) ClearField(name string) error {
	switch name {
	case progress.FieldStrengths:
		m.ClearStrengths()
		return nil
	case progress.FieldWeakAreas:
		m.ClearWeakAreas()
		return nil
	case progress.FieldLastSessionAt:
		m.ClearLastSessionAt()
		return nil
	}
	return fmt.Errorf("unknown Progress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProgressMutation) ResetField(name string) error {
	switch name {
	case progress.FieldUserID:
		m.ResetUserID()
		return nil
	case progress.FieldModuleName:
		m.ResetModuleName()
		return nil
	case progress.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case progress.FieldAccuracyPct:
		m.ResetAccuracyPct()
		return nil
	case progress.FieldMasteryLevel:
		m.ResetMasteryLevel()
		return nil
	case progress.FieldCompletedSessions:
		m.ResetCompletedSessions()
		return nil
	case progress.FieldTotalQuestions:
		m.ResetTotalQuestions()
		return nil
	case progress.FieldCorrectAnswers:
		m.ResetCorrectAnswers()
		return nil
	case progress.FieldCurrentDifficulty:
		m.ResetCurrentDifficulty()
		return nil
	case progress.FieldStrengths:
		m.ResetStrengths()
		return nil
	case progress.FieldWeakAreas:
		m.ResetWeakAreas()
		return nil
	case progress.FieldAverageResponseMs:
		m.ResetAverageResponseMs()
		return nil
	case progress.FieldTotalTimeSecs:
		m.ResetTotalTimeSecs()
		return nil
	case progress.FieldLastSessionAt:
		m.ResetLastSessionAt()
		return nil
	}
	return fmt.Errorf("unknown Progress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Progress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Progress edge %s", name)
}
