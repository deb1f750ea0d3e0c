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
	"github.com/codeready-toolchain/recap/ent/actionitem"
	"github.com/codeready-toolchain/recap/ent/aiquestion"
	"github.com/codeready-toolchain/recap/ent/importitem"
	"github.com/codeready-toolchain/recap/ent/importsession"
	"github.com/codeready-toolchain/recap/ent/incident"
	"github.com/codeready-toolchain/recap/ent/postmortem"
	"github.com/codeready-toolchain/recap/ent/predicate"
	"github.com/codeready-toolchain/recap/ent/timelineevent"
	"github.com/codeready-toolchain/recap/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAIQuestion    = "AIQuestion"
	TypeActionItem    = "ActionItem"
	TypeImportItem    = "ImportItem"
	TypeImportSession = "ImportSession"
	TypeIncident      = "Incident"
	TypePostmortem    = "Postmortem"
	TypeTimelineEvent = "TimelineEvent"
)

// AIQuestionMutation represents an operation that mutates the AIQuestion nodes in the graph.
type AIQuestionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	field         *string
	question      *string
	answered      *bool
	answer        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	item          *string
	cleareditem   bool
	done          bool
	oldValue      func(context.Context) (*AIQuestion, error)
	predicates    []predicate.AIQuestion
}

var _ ent.Mutation = (*AIQuestionMutation)(nil)

// aiquestionOption allows management of the mutation configuration using functional options.
type aiquestionOption func(*AIQuestionMutation)

// newAIQuestionMutation creates new mutation for the AIQuestion entity.
func newAIQuestionMutation(c config, op Op, opts ...aiquestionOption) *AIQuestionMutation {
	m := &AIQuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeAIQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAIQuestionID sets the ID field of the mutation.
func withAIQuestionID(id string) aiquestionOption {
	return func(m *AIQuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *AIQuestion
		)
		m.oldValue = func(ctx context.Context) (*AIQuestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AIQuestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAIQuestion sets the old AIQuestion of the mutation.
func withAIQuestion(node *AIQuestion) aiquestionOption {
	return func(m *AIQuestionMutation) {
		m.oldValue = func(context.Context) (*AIQuestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AIQuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AIQuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AIQuestion entities.
func (m *AIQuestionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AIQuestionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AIQuestionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AIQuestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetItemID sets the "item_id" field.
func (m *AIQuestionMutation) SetItemID(s string) {
	m.item = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *AIQuestionMutation) ItemID() (r string, exists bool) {
	v := m.item
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the AIQuestion entity.
// If the AIQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIQuestionMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *AIQuestionMutation) ResetItemID() {
	m.item = nil
}

// SetFieldField sets the "field" field.
func (m *AIQuestionMutation) SetFieldField(s string) {
	m.field = &s
}

// GetField returns the value of the "field" field in the mutation.
func (m *AIQuestionMutation) GetField() (r string, exists bool) {
	v := m.field
	if v == nil {
		return
	}
	return *v, true
}

// GetOldField returns the old "field" field's value of the AIQuestion entity.
// If the AIQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIQuestionMutation) GetOldField(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("GetOldField is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("GetOldField requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for GetOldField: %w", err)
	}
	return oldValue.Field, nil
}

// ResetFieldField resets all changes to the "field" field.
func (m *AIQuestionMutation) ResetFieldField() {
	m.field = nil
}

// SetQuestion sets the "question" field.
func (m *AIQuestionMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *AIQuestionMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the AIQuestion entity.
// If the AIQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIQuestionMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *AIQuestionMutation) ResetQuestion() {
	m.question = nil
}

// SetAnswered sets the "answered" field.
func (m *AIQuestionMutation) SetAnswered(b bool) {
	m.answered = &b
}

// Answered returns the value of the "answered" field in the mutation.
func (m *AIQuestionMutation) Answered() (r bool, exists bool) {
	v := m.answered
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswered returns the old "answered" field's value of the AIQuestion entity.
// If the AIQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIQuestionMutation) OldAnswered(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswered: %w", err)
	}
	return oldValue.Answered, nil
}

// ResetAnswered resets all changes to the "answered" field.
func (m *AIQuestionMutation) ResetAnswered() {
	m.answered = nil
}

// SetAnswer sets the "answer" field.
func (m *AIQuestionMutation) SetAnswer(s string) {
	m.answer = &s
}

// Answer returns the value of the "answer" field in the mutation.
func (m *AIQuestionMutation) Answer() (r string, exists bool) {
	v := m.answer
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswer returns the old "answer" field's value of the AIQuestion entity.
// If the AIQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIQuestionMutation) OldAnswer(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswer: %w", err)
	}
	return oldValue.Answer, nil
}

// ClearAnswer clears the value of the "answer" field.
func (m *AIQuestionMutation) ClearAnswer() {
	m.answer = nil
	m.clearedFields[aiquestion.FieldAnswer] = struct{}{}
}

// AnswerCleared returns if the "answer" field was cleared in this mutation.
func (m *AIQuestionMutation) AnswerCleared() bool {
	_, ok := m.clearedFields[aiquestion.FieldAnswer]
	return ok
}

// ResetAnswer resets all changes to the "answer" field.
func (m *AIQuestionMutation) ResetAnswer() {
	m.answer = nil
	delete(m.clearedFields, aiquestion.FieldAnswer)
}

// SetCreatedAt sets the "created_at" field.
func (m *AIQuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AIQuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AIQuestion entity.
// If the AIQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIQuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AIQuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearItem clears the "item" edge to the ImportItem entity.
func (m *AIQuestionMutation) ClearItem() {
	m.cleareditem = true
	m.clearedFields[aiquestion.FieldItemID] = struct{}{}
}

// ItemCleared reports if the "item" edge to the ImportItem entity was cleared.
func (m *AIQuestionMutation) ItemCleared() bool {
	return m.cleareditem
}

// ItemIDs returns the "item" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ItemID instead. It exists only for internal usage by the builders.
func (m *AIQuestionMutation) ItemIDs() (ids []string) {
	if id := m.item; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetItem resets all changes to the "item" edge.
func (m *AIQuestionMutation) ResetItem() {
	m.item = nil
	m.cleareditem = false
}

// Where appends a list predicates to the AIQuestionMutation builder.
func (m *AIQuestionMutation) Where(ps ...predicate.AIQuestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AIQuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AIQuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AIQuestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AIQuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AIQuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AIQuestion).
func (m *AIQuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AIQuestionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.item != nil {
		fields = append(fields, aiquestion.FieldItemID)
	}
	if m.field != nil {
		fields = append(fields, aiquestion.FieldField)
	}
	if m.question != nil {
		fields = append(fields, aiquestion.FieldQuestion)
	}
	if m.answered != nil {
		fields = append(fields, aiquestion.FieldAnswered)
	}
	if m.answer != nil {
		fields = append(fields, aiquestion.FieldAnswer)
	}
	if m.created_at != nil {
		fields = append(fields, aiquestion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AIQuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case aiquestion.FieldItemID:
		return m.ItemID()
	case aiquestion.FieldField:
		return m.GetField()
	case aiquestion.FieldQuestion:
		return m.Question()
	case aiquestion.FieldAnswered:
		return m.Answered()
	case aiquestion.FieldAnswer:
		return m.Answer()
	case aiquestion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AIQuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case aiquestion.FieldItemID:
		return m.OldItemID(ctx)
	case aiquestion.FieldField:
		return m.GetOldField(ctx)
	case aiquestion.FieldQuestion:
		return m.OldQuestion(ctx)
	case aiquestion.FieldAnswered:
		return m.OldAnswered(ctx)
	case aiquestion.FieldAnswer:
		return m.OldAnswer(ctx)
	case aiquestion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AIQuestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AIQuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case aiquestion.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case aiquestion.FieldField:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldField(v)
		return nil
	case aiquestion.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case aiquestion.FieldAnswered:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswered(v)
		return nil
	case aiquestion.FieldAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswer(v)
		return nil
	case aiquestion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AIQuestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AIQuestionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AIQuestionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AIQuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AIQuestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AIQuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(aiquestion.FieldAnswer) {
		fields = append(fields, aiquestion.FieldAnswer)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AIQuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AIQuestionMutation) ClearField(name string) error {
	switch name {
	case aiquestion.FieldAnswer:
		m.ClearAnswer()
		return nil
	}
	return fmt.Errorf("unknown AIQuestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AIQuestionMutation) ResetField(name string) error {
	switch name {
	case aiquestion.FieldItemID:
		m.ResetItemID()
		return nil
	case aiquestion.FieldField:
		m.ResetFieldField()
		return nil
	case aiquestion.FieldQuestion:
		m.ResetQuestion()
		return nil
	case aiquestion.FieldAnswered:
		m.ResetAnswered()
		return nil
	case aiquestion.FieldAnswer:
		m.ResetAnswer()
		return nil
	case aiquestion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AIQuestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AIQuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.item != nil {
		edges = append(edges, aiquestion.EdgeItem)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AIQuestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case aiquestion.EdgeItem:
		if id := m.item; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AIQuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AIQuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AIQuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditem {
		edges = append(edges, aiquestion.EdgeItem)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AIQuestionMutation) EdgeCleared(name string) bool {
	switch name {
	case aiquestion.EdgeItem:
		return m.cleareditem
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AIQuestionMutation) ClearEdge(name string) error {
	switch name {
	case aiquestion.EdgeItem:
		m.ClearItem()
		return nil
	}
	return fmt.Errorf("unknown AIQuestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AIQuestionMutation) ResetEdge(name string) error {
	switch name {
	case aiquestion.EdgeItem:
		m.ResetItem()
		return nil
	}
	return fmt.Errorf("unknown AIQuestion edge %s", name)
}

// ActionItemMutation represents an operation that mutates the ActionItem nodes in the graph.
type ActionItemMutation struct {
	config
	op              Op
	typ             string
	id              *string
	description     *string
	owner           *string
	status          *actionitem.Status
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	incident        *string
	clearedincident bool
	done            bool
	oldValue        func(context.Context) (*ActionItem, error)
	predicates      []predicate.ActionItem
}

var _ ent.Mutation = (*ActionItemMutation)(nil)

// actionitemOption allows management of the mutation configuration using functional options.
type actionitemOption func(*ActionItemMutation)

// newActionItemMutation creates new mutation for the ActionItem entity.
func newActionItemMutation(c config, op Op, opts ...actionitemOption) *ActionItemMutation {
	m := &ActionItemMutation{
		config:        c,
		op:            op,
		typ:           TypeActionItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActionItemID sets the ID field of the mutation.
func withActionItemID(id string) actionitemOption {
	return func(m *ActionItemMutation) {
		var (
			err   error
			once  sync.Once
			value *ActionItem
		)
		m.oldValue = func(ctx context.Context) (*ActionItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActionItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActionItem sets the old ActionItem of the mutation.
func withActionItem(node *ActionItem) actionitemOption {
	return func(m *ActionItemMutation) {
		m.oldValue = func(context.Context) (*ActionItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActionItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActionItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ActionItem entities.
func (m *ActionItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActionItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActionItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActionItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIncidentID sets the "incident_id" field.
func (m *ActionItemMutation) SetIncidentID(s string) {
	m.incident = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *ActionItemMutation) IncidentID() (r string, exists bool) {
	v := m.incident
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the ActionItem entity.
// If the ActionItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionItemMutation) OldIncidentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *ActionItemMutation) ResetIncidentID() {
	m.incident = nil
}

// SetDescription sets the "description" field.
func (m *ActionItemMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ActionItemMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ActionItem entity.
// If the ActionItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionItemMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ActionItemMutation) ResetDescription() {
	m.description = nil
}

// SetOwner sets the "owner" field.
func (m *ActionItemMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *ActionItemMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the ActionItem entity.
// If the ActionItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionItemMutation) OldOwner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ClearOwner clears the value of the "owner" field.
func (m *ActionItemMutation) ClearOwner() {
	m.owner = nil
	m.clearedFields[actionitem.FieldOwner] = struct{}{}
}

// OwnerCleared returns if the "owner" field was cleared in this mutation.
func (m *ActionItemMutation) OwnerCleared() bool {
	_, ok := m.clearedFields[actionitem.FieldOwner]
	return ok
}

// ResetOwner resets all changes to the "owner" field.
func (m *ActionItemMutation) ResetOwner() {
	m.owner = nil
	delete(m.clearedFields, actionitem.FieldOwner)
}

// SetStatus sets the "status" field.
func (m *ActionItemMutation) SetStatus(a actionitem.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ActionItemMutation) Status() (r actionitem.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ActionItem entity.
// If the ActionItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionItemMutation) OldStatus(ctx context.Context) (v actionitem.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ActionItemMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ActionItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ActionItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ActionItem entity.
// If the ActionItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ActionItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ActionItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ActionItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ActionItem entity.
// If the ActionItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ActionItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearIncident clears the "incident" edge to the Incident entity.
func (m *ActionItemMutation) ClearIncident() {
	m.clearedincident = true
	m.clearedFields[actionitem.FieldIncidentID] = struct{}{}
}

// IncidentCleared reports if the "incident" edge to the Incident entity was cleared.
func (m *ActionItemMutation) IncidentCleared() bool {
	return m.clearedincident
}

// IncidentIDs returns the "incident" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IncidentID instead. It exists only for internal usage by the builders.
func (m *ActionItemMutation) IncidentIDs() (ids []string) {
	if id := m.incident; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIncident resets all changes to the "incident" edge.
func (m *ActionItemMutation) ResetIncident() {
	m.incident = nil
	m.clearedincident = false
}

// Where appends a list predicates to the ActionItemMutation builder.
func (m *ActionItemMutation) Where(ps ...predicate.ActionItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActionItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActionItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActionItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActionItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActionItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActionItem).
func (m *ActionItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActionItemMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.incident != nil {
		fields = append(fields, actionitem.FieldIncidentID)
	}
	if m.description != nil {
		fields = append(fields, actionitem.FieldDescription)
	}
	if m.owner != nil {
		fields = append(fields, actionitem.FieldOwner)
	}
	if m.status != nil {
		fields = append(fields, actionitem.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, actionitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, actionitem.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActionItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case actionitem.FieldIncidentID:
		return m.IncidentID()
	case actionitem.FieldDescription:
		return m.Description()
	case actionitem.FieldOwner:
		return m.Owner()
	case actionitem.FieldStatus:
		return m.Status()
	case actionitem.FieldCreatedAt:
		return m.CreatedAt()
	case actionitem.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActionItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case actionitem.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case actionitem.FieldDescription:
		return m.OldDescription(ctx)
	case actionitem.FieldOwner:
		return m.OldOwner(ctx)
	case actionitem.FieldStatus:
		return m.OldStatus(ctx)
	case actionitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case actionitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ActionItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActionItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case actionitem.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case actionitem.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case actionitem.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case actionitem.FieldStatus:
		v, ok := value.(actionitem.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case actionitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case actionitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ActionItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActionItemMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActionItemMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActionItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ActionItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActionItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(actionitem.FieldOwner) {
		fields = append(fields, actionitem.FieldOwner)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActionItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActionItemMutation) ClearField(name string) error {
	switch name {
	case actionitem.FieldOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown ActionItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActionItemMutation) ResetField(name string) error {
	switch name {
	case actionitem.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case actionitem.FieldDescription:
		m.ResetDescription()
		return nil
	case actionitem.FieldOwner:
		m.ResetOwner()
		return nil
	case actionitem.FieldStatus:
		m.ResetStatus()
		return nil
	case actionitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case actionitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ActionItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActionItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.incident != nil {
		edges = append(edges, actionitem.EdgeIncident)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActionItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case actionitem.EdgeIncident:
		if id := m.incident; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActionItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActionItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActionItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedincident {
		edges = append(edges, actionitem.EdgeIncident)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActionItemMutation) EdgeCleared(name string) bool {
	switch name {
	case actionitem.EdgeIncident:
		return m.clearedincident
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActionItemMutation) ClearEdge(name string) error {
	switch name {
	case actionitem.EdgeIncident:
		m.ClearIncident()
		return nil
	}
	return fmt.Errorf("unknown ActionItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActionItemMutation) ResetEdge(name string) error {
	switch name {
	case actionitem.EdgeIncident:
		m.ResetIncident()
		return nil
	}
	return fmt.Errorf("unknown ActionItem edge %s", name)
}

// ImportItemMutation represents an operation that mutates the ImportItem nodes in the graph.
type ImportItemMutation struct {
	config
	op               Op
	typ              string
	id               *string
	file_name        *string
	file_size        *int64
	addfile_size     *int64
	file_type        *string
	storage_key      *string
	status           *importitem.Status
	current_step     *importitem.CurrentStep
	status_message   *string
	extracted_text   *string
	metadata         **models.ExtractedMetadata
	incident_id      *string
	postmortem_id    *string
	error_message    *string
	failed_step      *importitem.FailedStep
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	session          *string
	clearedsession   bool
	questions        map[string]struct{}
	removedquestions map[string]struct{}
	clearedquestions bool
	done             bool
	oldValue         func(context.Context) (*ImportItem, error)
	predicates       []predicate.ImportItem
}

var _ ent.Mutation = (*ImportItemMutation)(nil)

// importitemOption allows management of the mutation configuration using functional options.
type importitemOption func(*ImportItemMutation)

// newImportItemMutation creates new mutation for the ImportItem entity.
func newImportItemMutation(c config, op Op, opts ...importitemOption) *ImportItemMutation {
	m := &ImportItemMutation{
		config:        c,
		op:            op,
		typ:           TypeImportItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withImportItemID sets the ID field of the mutation.
func withImportItemID(id string) importitemOption {
	return func(m *ImportItemMutation) {
		var (
			err   error
			once  sync.Once
			value *ImportItem
		)
		m.oldValue = func(ctx context.Context) (*ImportItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ImportItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withImportItem sets the old ImportItem of the mutation.
func withImportItem(node *ImportItem) importitemOption {
	return func(m *ImportItemMutation) {
		m.oldValue = func(context.Context) (*ImportItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ImportItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ImportItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ImportItem entities.
func (m *ImportItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ImportItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ImportItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ImportItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ImportItemMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ImportItemMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ImportItem entity.
// If the ImportItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportItemMutation) OldSessionID(ctx context.Context) (v string, err error) {
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
func (m *ImportItemMutation) ResetSessionID() {
	m.session = nil
}

// SetFileName sets the "file_name" field.
func (m *ImportItemMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *ImportItemMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the ImportItem entity.
// If the ImportItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportItemMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *ImportItemMutation) ResetFileName() {
	m.file_name = nil
}

// SetFileSize sets the "file_size" field.
func (m *ImportItemMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *ImportItemMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the ImportItem entity.
// If the ImportItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportItemMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *ImportItemMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *ImportItemMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *ImportItemMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetFileType sets the "file_type" field.
func (m *ImportItemMutation) SetFileType(s string) {
	m.file_type = &s
}

// FileType returns the value of the "file_type" field in the mutation.
func (m *ImportItemMutation) FileType() (r string, exists bool) {
	v := m.file_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFileType returns the old "file_type" field's value of the ImportItem entity.
// If the ImportItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportItemMutation) OldFileType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileType: %w", err)
	}
	return oldValue.FileType, nil
}

// ResetFileType resets all changes to the "file_type" field.
func (m *ImportItemMutation) ResetFileType() {
	m.file_type = nil
}

// SetStorageKey sets the "storage_key" field.
func (m *ImportItemMutation) SetStorageKey(s string) {
	m.storage_key = &s
}

// StorageKey returns the value of the "storage_key" field in the mutation.
func (m *ImportItemMutation) StorageKey() (r string, exists bool) {
	v := m.storage_key
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageKey returns the old "storage_key" field's value of the ImportItem entity.
// If the ImportItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportItemMutation) OldStorageKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageKey: %w", err)
	}
	return oldValue.StorageKey, nil
}

// ResetStorageKey resets all changes to the "storage_key" field.
func (m *ImportItemMutation) ResetStorageKey() {
	m.storage_key = nil
}

// SetStatus sets the "status" field.
func (m *ImportItemMutation) SetStatus(i importitem.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *ImportItemMutation) Status() (r importitem.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ImportItem entity.
// If the ImportItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportItemMutation) OldStatus(ctx context.Context) (v importitem.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ImportItemMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentStep sets the "current_step" field.
func (m *ImportItemMutation) SetCurrentStep(is importitem.CurrentStep) {
	m.current_step = &is
}

// CurrentStep returns the value of the "current_step" field in the mutation.
func (m *ImportItemMutation) CurrentStep() (r importitem.CurrentStep, exists bool) {
	v := m.current_step
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStep returns the old "current_step" field's value of the ImportItem entity.
// If the ImportItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportItemMutation) OldCurrentStep(ctx context.Context) (v importitem.CurrentStep, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStep: %w", err)
	}
	return oldValue.CurrentStep, nil
}

// ResetCurrentStep resets all changes to the "current_step" field.
func (m *ImportItemMutation) ResetCurrentStep() {
	m.current_step = nil
}

// SetStatusMessage sets the "status_message" field.
func (m *ImportItemMutation) SetStatusMessage(s string) {
	m.status_message = &s
}

// StatusMessage returns the value of the "status_message" field in the mutation.
func (m *ImportItemMutation) StatusMessage() (r string, exists bool) {
	v := m.status_message
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusMessage returns the old "status_message" field's value of the ImportItem entity.
// If the ImportItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportItemMutation) OldStatusMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusMessage: %w", err)
	}
	return oldValue.StatusMessage, nil
}

// ClearStatusMessage clears the value of the "status_message" field.
func (m *ImportItemMutation) ClearStatusMessage() {
	m.status_message = nil
	m.clearedFields[importitem.FieldStatusMessage] = struct{}{}
}

// StatusMessageCleared returns if the "status_message" field was cleared in this mutation.
func (m *ImportItemMutation) StatusMessageCleared() bool {
	_, ok := m.clearedFields[importitem.FieldStatusMessage]
	return ok
}

// ResetStatusMessage resets all changes to the "status_message" field.
func (m *ImportItemMutation) ResetStatusMessage() {
	m.status_message = nil
	delete(m.clearedFields, importitem.FieldStatusMessage)
}

// SetExtractedText sets the "extracted_text" field.
func (m *ImportItemMutation) SetExtractedText(s string) {
	m.extracted_text = &s
}

// ExtractedText returns the value of the "extracted_text" field in the mutation.
func (m *ImportItemMutation) ExtractedText() (r string, exists bool) {
	v := m.extracted_text
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedText returns the old "extracted_text" field's value of the ImportItem entity.
// If the ImportItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportItemMutation) OldExtractedText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedText: %w", err)
	}
	return oldValue.ExtractedText, nil
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (m *ImportItemMutation) ClearExtractedText() {
	m.extracted_text = nil
	m.clearedFields[importitem.FieldExtractedText] = struct{}{}
}

// ExtractedTextCleared returns if the "extracted_text" field was cleared in this mutation.
func (m *ImportItemMutation) ExtractedTextCleared() bool {
	_, ok := m.clearedFields[importitem.FieldExtractedText]
	return ok
}

// ResetExtractedText resets all changes to the "extracted_text" field.
func (m *ImportItemMutation) ResetExtractedText() {
	m.extracted_text = nil
	delete(m.clearedFields, importitem.FieldExtractedText)
}

// SetMetadata sets the "metadata" field.
func (m *ImportItemMutation) SetMetadata(mm *models.ExtractedMetadata) {
	m.metadata = &mm
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ImportItemMutation) Metadata() (r *models.ExtractedMetadata, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ImportItem entity.
// If the ImportItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportItemMutation) OldMetadata(ctx context.Context) (v *models.ExtractedMetadata, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ImportItemMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[importitem.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ImportItemMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[importitem.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ImportItemMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, importitem.FieldMetadata)
}

// SetIncidentID sets the "incident_id" field.
func (m *ImportItemMutation) SetIncidentID(s string) {
	m.incident_id = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *ImportItemMutation) IncidentID() (r string, exists bool) {
	v := m.incident_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the ImportItem entity.
// If the ImportItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportItemMutation) OldIncidentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ClearIncidentID clears the value of the "incident_id" field.
func (m *ImportItemMutation) ClearIncidentID() {
	m.incident_id = nil
	m.clearedFields[importitem.FieldIncidentID] = struct{}{}
}

// IncidentIDCleared returns if the "incident_id" field was cleared in this mutation.
func (m *ImportItemMutation) IncidentIDCleared() bool {
	_, ok := m.clearedFields[importitem.FieldIncidentID]
	return ok
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *ImportItemMutation) ResetIncidentID() {
	m.incident_id = nil
	delete(m.clearedFields, importitem.FieldIncidentID)
}

// SetPostmortemID sets the "postmortem_id" field.
func (m *ImportItemMutation) SetPostmortemID(s string) {
	m.postmortem_id = &s
}

// PostmortemID returns the value of the "postmortem_id" field in the mutation.
func (m *ImportItemMutation) PostmortemID() (r string, exists bool) {
	v := m.postmortem_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPostmortemID returns the old "postmortem_id" field's value of the ImportItem entity.
// If the ImportItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportItemMutation) OldPostmortemID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostmortemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostmortemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostmortemID: %w", err)
	}
	return oldValue.PostmortemID, nil
}

// ClearPostmortemID clears the value of the "postmortem_id" field.
func (m *ImportItemMutation) ClearPostmortemID() {
	m.postmortem_id = nil
	m.clearedFields[importitem.FieldPostmortemID] = struct{}{}
}

// PostmortemIDCleared returns if the "postmortem_id" field was cleared in this mutation.
func (m *ImportItemMutation) PostmortemIDCleared() bool {
	_, ok := m.clearedFields[importitem.FieldPostmortemID]
	return ok
}

// ResetPostmortemID resets all changes to the "postmortem_id" field.
func (m *ImportItemMutation) ResetPostmortemID() {
	m.postmortem_id = nil
	delete(m.clearedFields, importitem.FieldPostmortemID)
}

// SetErrorMessage sets the "error_message" field.
func (m *ImportItemMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ImportItemMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ImportItem entity.
// If the ImportItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportItemMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ImportItemMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[importitem.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ImportItemMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[importitem.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ImportItemMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, importitem.FieldErrorMessage)
}

// SetFailedStep sets the "failed_step" field.
func (m *ImportItemMutation) SetFailedStep(is importitem.FailedStep) {
	m.failed_step = &is
}

// FailedStep returns the value of the "failed_step" field in the mutation.
func (m *ImportItemMutation) FailedStep() (r importitem.FailedStep, exists bool) {
	v := m.failed_step
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedStep returns the old "failed_step" field's value of the ImportItem entity.
// If the ImportItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportItemMutation) OldFailedStep(ctx context.Context) (v *importitem.FailedStep, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedStep: %w", err)
	}
	return oldValue.FailedStep, nil
}

// ClearFailedStep clears the value of the "failed_step" field.
func (m *ImportItemMutation) ClearFailedStep() {
	m.failed_step = nil
	m.clearedFields[importitem.FieldFailedStep] = struct{}{}
}

// FailedStepCleared returns if the "failed_step" field was cleared in this mutation.
func (m *ImportItemMutation) FailedStepCleared() bool {
	_, ok := m.clearedFields[importitem.FieldFailedStep]
	return ok
}

// ResetFailedStep resets all changes to the "failed_step" field.
func (m *ImportItemMutation) ResetFailedStep() {
	m.failed_step = nil
	delete(m.clearedFields, importitem.FieldFailedStep)
}

// SetCreatedAt sets the "created_at" field.
func (m *ImportItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ImportItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ImportItem entity.
// If the ImportItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ImportItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ImportItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ImportItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ImportItem entity.
// If the ImportItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ImportItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSession clears the "session" edge to the ImportSession entity.
func (m *ImportItemMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[importitem.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ImportSession entity was cleared.
func (m *ImportItemMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ImportItemMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ImportItemMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// AddQuestionIDs adds the "questions" edge to the AIQuestion entity by ids.
func (m *ImportItemMutation) AddQuestionIDs(ids ...string) {
	if m.questions == nil {
		m.questions = make(map[string]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the AIQuestion entity.
func (m *ImportItemMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the AIQuestion entity was cleared.
func (m *ImportItemMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the AIQuestion entity by IDs.
func (m *ImportItemMutation) RemoveQuestionIDs(ids ...string) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the AIQuestion entity.
func (m *ImportItemMutation) RemovedQuestionsIDs() (ids []string) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *ImportItemMutation) QuestionsIDs() (ids []string) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *ImportItemMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// Where appends a list predicates to the ImportItemMutation builder.
func (m *ImportItemMutation) Where(ps ...predicate.ImportItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ImportItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ImportItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ImportItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ImportItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ImportItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ImportItem).
func (m *ImportItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ImportItemMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.session != nil {
		fields = append(fields, importitem.FieldSessionID)
	}
	if m.file_name != nil {
		fields = append(fields, importitem.FieldFileName)
	}
	if m.file_size != nil {
		fields = append(fields, importitem.FieldFileSize)
	}
	if m.file_type != nil {
		fields = append(fields, importitem.FieldFileType)
	}
	if m.storage_key != nil {
		fields = append(fields, importitem.FieldStorageKey)
	}
	if m.status != nil {
		fields = append(fields, importitem.FieldStatus)
	}
	if m.current_step != nil {
		fields = append(fields, importitem.FieldCurrentStep)
	}
	if m.status_message != nil {
		fields = append(fields, importitem.FieldStatusMessage)
	}
	if m.extracted_text != nil {
		fields = append(fields, importitem.FieldExtractedText)
	}
	if m.metadata != nil {
		fields = append(fields, importitem.FieldMetadata)
	}
	if m.incident_id != nil {
		fields = append(fields, importitem.FieldIncidentID)
	}
	if m.postmortem_id != nil {
		fields = append(fields, importitem.FieldPostmortemID)
	}
	if m.error_message != nil {
		fields = append(fields, importitem.FieldErrorMessage)
	}
	if m.failed_step != nil {
		fields = append(fields, importitem.FieldFailedStep)
	}
	if m.created_at != nil {
		fields = append(fields, importitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, importitem.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ImportItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case importitem.FieldSessionID:
		return m.SessionID()
	case importitem.FieldFileName:
		return m.FileName()
	case importitem.FieldFileSize:
		return m.FileSize()
	case importitem.FieldFileType:
		return m.FileType()
	case importitem.FieldStorageKey:
		return m.StorageKey()
	case importitem.FieldStatus:
		return m.Status()
	case importitem.FieldCurrentStep:
		return m.CurrentStep()
	case importitem.FieldStatusMessage:
		return m.StatusMessage()
	case importitem.FieldExtractedText:
		return m.ExtractedText()
	case importitem.FieldMetadata:
		return m.Metadata()
	case importitem.FieldIncidentID:
		return m.IncidentID()
	case importitem.FieldPostmortemID:
		return m.PostmortemID()
	case importitem.FieldErrorMessage:
		return m.ErrorMessage()
	case importitem.FieldFailedStep:
		return m.FailedStep()
	case importitem.FieldCreatedAt:
		return m.CreatedAt()
	case importitem.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ImportItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case importitem.FieldSessionID:
		return m.OldSessionID(ctx)
	case importitem.FieldFileName:
		return m.OldFileName(ctx)
	case importitem.FieldFileSize:
		return m.OldFileSize(ctx)
	case importitem.FieldFileType:
		return m.OldFileType(ctx)
	case importitem.FieldStorageKey:
		return m.OldStorageKey(ctx)
	case importitem.FieldStatus:
		return m.OldStatus(ctx)
	case importitem.FieldCurrentStep:
		return m.OldCurrentStep(ctx)
	case importitem.FieldStatusMessage:
		return m.OldStatusMessage(ctx)
	case importitem.FieldExtractedText:
		return m.OldExtractedText(ctx)
	case importitem.FieldMetadata:
		return m.OldMetadata(ctx)
	case importitem.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case importitem.FieldPostmortemID:
		return m.OldPostmortemID(ctx)
	case importitem.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case importitem.FieldFailedStep:
		return m.OldFailedStep(ctx)
	case importitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case importitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ImportItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case importitem.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case importitem.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case importitem.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case importitem.FieldFileType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileType(v)
		return nil
	case importitem.FieldStorageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageKey(v)
		return nil
	case importitem.FieldStatus:
		v, ok := value.(importitem.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case importitem.FieldCurrentStep:
		v, ok := value.(importitem.CurrentStep)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStep(v)
		return nil
	case importitem.FieldStatusMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusMessage(v)
		return nil
	case importitem.FieldExtractedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedText(v)
		return nil
	case importitem.FieldMetadata:
		v, ok := value.(*models.ExtractedMetadata)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case importitem.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case importitem.FieldPostmortemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostmortemID(v)
		return nil
	case importitem.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case importitem.FieldFailedStep:
		v, ok := value.(importitem.FailedStep)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedStep(v)
		return nil
	case importitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case importitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ImportItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ImportItemMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, importitem.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ImportItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case importitem.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case importitem.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown ImportItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ImportItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(importitem.FieldStatusMessage) {
		fields = append(fields, importitem.FieldStatusMessage)
	}
	if m.FieldCleared(importitem.FieldExtractedText) {
		fields = append(fields, importitem.FieldExtractedText)
	}
	if m.FieldCleared(importitem.FieldMetadata) {
		fields = append(fields, importitem.FieldMetadata)
	}
	if m.FieldCleared(importitem.FieldIncidentID) {
		fields = append(fields, importitem.FieldIncidentID)
	}
	if m.FieldCleared(importitem.FieldPostmortemID) {
		fields = append(fields, importitem.FieldPostmortemID)
	}
	if m.FieldCleared(importitem.FieldErrorMessage) {
		fields = append(fields, importitem.FieldErrorMessage)
	}
	if m.FieldCleared(importitem.FieldFailedStep) {
		fields = append(fields, importitem.FieldFailedStep)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ImportItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ImportItemMutation) ClearField(name string) error {
	switch name {
	case importitem.FieldStatusMessage:
		m.ClearStatusMessage()
		return nil
	case importitem.FieldExtractedText:
		m.ClearExtractedText()
		return nil
	case importitem.FieldMetadata:
		m.ClearMetadata()
		return nil
	case importitem.FieldIncidentID:
		m.ClearIncidentID()
		return nil
	case importitem.FieldPostmortemID:
		m.ClearPostmortemID()
		return nil
	case importitem.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case importitem.FieldFailedStep:
		m.ClearFailedStep()
		return nil
	}
	return fmt.Errorf("unknown ImportItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ImportItemMutation) ResetField(name string) error {
	switch name {
	case importitem.FieldSessionID:
		m.ResetSessionID()
		return nil
	case importitem.FieldFileName:
		m.ResetFileName()
		return nil
	case importitem.FieldFileSize:
		m.ResetFileSize()
		return nil
	case importitem.FieldFileType:
		m.ResetFileType()
		return nil
	case importitem.FieldStorageKey:
		m.ResetStorageKey()
		return nil
	case importitem.FieldStatus:
		m.ResetStatus()
		return nil
	case importitem.FieldCurrentStep:
		m.ResetCurrentStep()
		return nil
	case importitem.FieldStatusMessage:
		m.ResetStatusMessage()
		return nil
	case importitem.FieldExtractedText:
		m.ResetExtractedText()
		return nil
	case importitem.FieldMetadata:
		m.ResetMetadata()
		return nil
	case importitem.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case importitem.FieldPostmortemID:
		m.ResetPostmortemID()
		return nil
	case importitem.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case importitem.FieldFailedStep:
		m.ResetFailedStep()
		return nil
	case importitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case importitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ImportItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ImportItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, importitem.EdgeSession)
	}
	if m.questions != nil {
		edges = append(edges, importitem.EdgeQuestions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ImportItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case importitem.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case importitem.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ImportItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedquestions != nil {
		edges = append(edges, importitem.EdgeQuestions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ImportItemMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case importitem.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ImportItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, importitem.EdgeSession)
	}
	if m.clearedquestions {
		edges = append(edges, importitem.EdgeQuestions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ImportItemMutation) EdgeCleared(name string) bool {
	switch name {
	case importitem.EdgeSession:
		return m.clearedsession
	case importitem.EdgeQuestions:
		return m.clearedquestions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ImportItemMutation) ClearEdge(name string) error {
	switch name {
	case importitem.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown ImportItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ImportItemMutation) ResetEdge(name string) error {
	switch name {
	case importitem.EdgeSession:
		m.ResetSession()
		return nil
	case importitem.EdgeQuestions:
		m.ResetQuestions()
		return nil
	}
	return fmt.Errorf("unknown ImportItem edge %s", name)
}

// ImportSessionMutation represents an operation that mutates the ImportSession nodes in the graph.
type ImportSessionMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	auto_publish       *bool
	total_files        *int
	addtotal_files     *int
	completed_files    *int
	addcompleted_files *int
	failed_files       *int
	addfailed_files    *int
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	items              map[string]struct{}
	removeditems       map[string]struct{}
	cleareditems       bool
	done               bool
	oldValue           func(context.Context) (*ImportSession, error)
	predicates         []predicate.ImportSession
}

var _ ent.Mutation = (*ImportSessionMutation)(nil)

// importsessionOption allows management of the mutation configuration using functional options.
type importsessionOption func(*ImportSessionMutation)

// newImportSessionMutation creates new mutation for the ImportSession entity.
func newImportSessionMutation(c config, op Op, opts ...importsessionOption) *ImportSessionMutation {
	m := &ImportSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeImportSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withImportSessionID sets the ID field of the mutation.
func withImportSessionID(id string) importsessionOption {
	return func(m *ImportSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ImportSession
		)
		m.oldValue = func(ctx context.Context) (*ImportSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ImportSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withImportSession sets the old ImportSession of the mutation.
func withImportSession(node *ImportSession) importsessionOption {
	return func(m *ImportSessionMutation) {
		m.oldValue = func(context.Context) (*ImportSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ImportSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ImportSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ImportSession entities.
func (m *ImportSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ImportSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ImportSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ImportSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAutoPublish sets the "auto_publish" field.
func (m *ImportSessionMutation) SetAutoPublish(b bool) {
	m.auto_publish = &b
}

// AutoPublish returns the value of the "auto_publish" field in the mutation.
func (m *ImportSessionMutation) AutoPublish() (r bool, exists bool) {
	v := m.auto_publish
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoPublish returns the old "auto_publish" field's value of the ImportSession entity.
// If the ImportSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportSessionMutation) OldAutoPublish(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoPublish is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoPublish requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoPublish: %w", err)
	}
	return oldValue.AutoPublish, nil
}

// ResetAutoPublish resets all changes to the "auto_publish" field.
func (m *ImportSessionMutation) ResetAutoPublish() {
	m.auto_publish = nil
}

// SetTotalFiles sets the "total_files" field.
func (m *ImportSessionMutation) SetTotalFiles(i int) {
	m.total_files = &i
	m.addtotal_files = nil
}

// TotalFiles returns the value of the "total_files" field in the mutation.
func (m *ImportSessionMutation) TotalFiles() (r int, exists bool) {
	v := m.total_files
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalFiles returns the old "total_files" field's value of the ImportSession entity.
// If the ImportSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportSessionMutation) OldTotalFiles(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalFiles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalFiles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalFiles: %w", err)
	}
	return oldValue.TotalFiles, nil
}

// AddTotalFiles adds i to the "total_files" field.
func (m *ImportSessionMutation) AddTotalFiles(i int) {
	if m.addtotal_files != nil {
		*m.addtotal_files += i
	} else {
		m.addtotal_files = &i
	}
}

// AddedTotalFiles returns the value that was added to the "total_files" field in this mutation.
func (m *ImportSessionMutation) AddedTotalFiles() (r int, exists bool) {
	v := m.addtotal_files
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalFiles resets all changes to the "total_files" field.
func (m *ImportSessionMutation) ResetTotalFiles() {
	m.total_files = nil
	m.addtotal_files = nil
}

// SetCompletedFiles sets the "completed_files" field.
func (m *ImportSessionMutation) SetCompletedFiles(i int) {
	m.completed_files = &i
	m.addcompleted_files = nil
}

// CompletedFiles returns the value of the "completed_files" field in the mutation.
func (m *ImportSessionMutation) CompletedFiles() (r int, exists bool) {
	v := m.completed_files
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedFiles returns the old "completed_files" field's value of the ImportSession entity.
// If the ImportSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportSessionMutation) OldCompletedFiles(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedFiles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedFiles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedFiles: %w", err)
	}
	return oldValue.CompletedFiles, nil
}

// AddCompletedFiles adds i to the "completed_files" field.
func (m *ImportSessionMutation) AddCompletedFiles(i int) {
	if m.addcompleted_files != nil {
		*m.addcompleted_files += i
	} else {
		m.addcompleted_files = &i
	}
}

// AddedCompletedFiles returns the value that was added to the "completed_files" field in this mutation.
func (m *ImportSessionMutation) AddedCompletedFiles() (r int, exists bool) {
	v := m.addcompleted_files
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedFiles resets all changes to the "completed_files" field.
func (m *ImportSessionMutation) ResetCompletedFiles() {
	m.completed_files = nil
	m.addcompleted_files = nil
}

// SetFailedFiles sets the "failed_files" field.
func (m *ImportSessionMutation) SetFailedFiles(i int) {
	m.failed_files = &i
	m.addfailed_files = nil
}

// FailedFiles returns the value of the "failed_files" field in the mutation.
func (m *ImportSessionMutation) FailedFiles() (r int, exists bool) {
	v := m.failed_files
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedFiles returns the old "failed_files" field's value of the ImportSession entity.
// If the ImportSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportSessionMutation) OldFailedFiles(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedFiles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedFiles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedFiles: %w", err)
	}
	return oldValue.FailedFiles, nil
}

// AddFailedFiles adds i to the "failed_files" field.
func (m *ImportSessionMutation) AddFailedFiles(i int) {
	if m.addfailed_files != nil {
		*m.addfailed_files += i
	} else {
		m.addfailed_files = &i
	}
}

// AddedFailedFiles returns the value that was added to the "failed_files" field in this mutation.
func (m *ImportSessionMutation) AddedFailedFiles() (r int, exists bool) {
	v := m.addfailed_files
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedFiles resets all changes to the "failed_files" field.
func (m *ImportSessionMutation) ResetFailedFiles() {
	m.failed_files = nil
	m.addfailed_files = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ImportSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ImportSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ImportSession entity.
// If the ImportSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ImportSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ImportSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ImportSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ImportSession entity.
// If the ImportSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ImportSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddItemIDs adds the "items" edge to the ImportItem entity by ids.
func (m *ImportSessionMutation) AddItemIDs(ids ...string) {
	if m.items == nil {
		m.items = make(map[string]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the ImportItem entity.
func (m *ImportSessionMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the ImportItem entity was cleared.
func (m *ImportSessionMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the ImportItem entity by IDs.
func (m *ImportSessionMutation) RemoveItemIDs(ids ...string) {
	if m.removeditems == nil {
		m.removeditems = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the ImportItem entity.
func (m *ImportSessionMutation) RemovedItemsIDs() (ids []string) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *ImportSessionMutation) ItemsIDs() (ids []string) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *ImportSessionMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// Where appends a list predicates to the ImportSessionMutation builder.
func (m *ImportSessionMutation) Where(ps ...predicate.ImportSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ImportSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ImportSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ImportSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ImportSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ImportSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ImportSession).
func (m *ImportSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ImportSessionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.auto_publish != nil {
		fields = append(fields, importsession.FieldAutoPublish)
	}
	if m.total_files != nil {
		fields = append(fields, importsession.FieldTotalFiles)
	}
	if m.completed_files != nil {
		fields = append(fields, importsession.FieldCompletedFiles)
	}
	if m.failed_files != nil {
		fields = append(fields, importsession.FieldFailedFiles)
	}
	if m.created_at != nil {
		fields = append(fields, importsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, importsession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ImportSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case importsession.FieldAutoPublish:
		return m.AutoPublish()
	case importsession.FieldTotalFiles:
		return m.TotalFiles()
	case importsession.FieldCompletedFiles:
		return m.CompletedFiles()
	case importsession.FieldFailedFiles:
		return m.FailedFiles()
	case importsession.FieldCreatedAt:
		return m.CreatedAt()
	case importsession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ImportSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case importsession.FieldAutoPublish:
		return m.OldAutoPublish(ctx)
	case importsession.FieldTotalFiles:
		return m.OldTotalFiles(ctx)
	case importsession.FieldCompletedFiles:
		return m.OldCompletedFiles(ctx)
	case importsession.FieldFailedFiles:
		return m.OldFailedFiles(ctx)
	case importsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case importsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ImportSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case importsession.FieldAutoPublish:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoPublish(v)
		return nil
	case importsession.FieldTotalFiles:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalFiles(v)
		return nil
	case importsession.FieldCompletedFiles:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedFiles(v)
		return nil
	case importsession.FieldFailedFiles:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedFiles(v)
		return nil
	case importsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case importsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ImportSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ImportSessionMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_files != nil {
		fields = append(fields, importsession.FieldTotalFiles)
	}
	if m.addcompleted_files != nil {
		fields = append(fields, importsession.FieldCompletedFiles)
	}
	if m.addfailed_files != nil {
		fields = append(fields, importsession.FieldFailedFiles)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ImportSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case importsession.FieldTotalFiles:
		return m.AddedTotalFiles()
	case importsession.FieldCompletedFiles:
		return m.AddedCompletedFiles()
	case importsession.FieldFailedFiles:
		return m.AddedFailedFiles()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case importsession.FieldTotalFiles:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalFiles(v)
		return nil
	case importsession.FieldCompletedFiles:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedFiles(v)
		return nil
	case importsession.FieldFailedFiles:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedFiles(v)
		return nil
	}
	return fmt.Errorf("unknown ImportSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ImportSessionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ImportSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ImportSessionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ImportSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ImportSessionMutation) ResetField(name string) error {
	switch name {
	case importsession.FieldAutoPublish:
		m.ResetAutoPublish()
		return nil
	case importsession.FieldTotalFiles:
		m.ResetTotalFiles()
		return nil
	case importsession.FieldCompletedFiles:
		m.ResetCompletedFiles()
		return nil
	case importsession.FieldFailedFiles:
		m.ResetFailedFiles()
		return nil
	case importsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case importsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ImportSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ImportSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.items != nil {
		edges = append(edges, importsession.EdgeItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ImportSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case importsession.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ImportSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeditems != nil {
		edges = append(edges, importsession.EdgeItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ImportSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case importsession.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ImportSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditems {
		edges = append(edges, importsession.EdgeItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ImportSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case importsession.EdgeItems:
		return m.cleareditems
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ImportSessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ImportSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ImportSessionMutation) ResetEdge(name string) error {
	switch name {
	case importsession.EdgeItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown ImportSession edge %s", name)
}

// IncidentMutation represents an operation that mutates the Incident nodes in the graph.
type IncidentMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	incident_number        *string
	title                  *string
	description            *string
	severity               *incident.Severity
	status                 *incident.Status
	affected_service       *string
	summary                *string
	source                 *incident.Source
	detected_at            *time.Time
	resolved_at            *time.Time
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	postmortems            map[string]struct{}
	removedpostmortems     map[string]struct{}
	clearedpostmortems     bool
	timeline_events        map[string]struct{}
	removedtimeline_events map[string]struct{}
	clearedtimeline_events bool
	action_items           map[string]struct{}
	removedaction_items    map[string]struct{}
	clearedaction_items    bool
	done                   bool
	oldValue               func(context.Context) (*Incident, error)
	predicates             []predicate.Incident
}

var _ ent.Mutation = (*IncidentMutation)(nil)

// incidentOption allows management of the mutation configuration using functional options.
type incidentOption func(*IncidentMutation)

// newIncidentMutation creates new mutation for the Incident entity.
func newIncidentMutation(c config, op Op, opts ...incidentOption) *IncidentMutation {
	m := &IncidentMutation{
		config:        c,
		op:            op,
		typ:           TypeIncident,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIncidentID sets the ID field of the mutation.
func withIncidentID(id string) incidentOption {
	return func(m *IncidentMutation) {
		var (
			err   error
			once  sync.Once
			value *Incident
		)
		m.oldValue = func(ctx context.Context) (*Incident, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Incident.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIncident sets the old Incident of the mutation.
func withIncident(node *Incident) incidentOption {
	return func(m *IncidentMutation) {
		m.oldValue = func(context.Context) (*Incident, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IncidentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IncidentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Incident entities.
func (m *IncidentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IncidentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IncidentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Incident.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIncidentNumber sets the "incident_number" field.
func (m *IncidentMutation) SetIncidentNumber(s string) {
	m.incident_number = &s
}

// IncidentNumber returns the value of the "incident_number" field in the mutation.
func (m *IncidentMutation) IncidentNumber() (r string, exists bool) {
	v := m.incident_number
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentNumber returns the old "incident_number" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldIncidentNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentNumber: %w", err)
	}
	return oldValue.IncidentNumber, nil
}

// ClearIncidentNumber clears the value of the "incident_number" field.
func (m *IncidentMutation) ClearIncidentNumber() {
	m.incident_number = nil
	m.clearedFields[incident.FieldIncidentNumber] = struct{}{}
}

// IncidentNumberCleared returns if the "incident_number" field was cleared in this mutation.
func (m *IncidentMutation) IncidentNumberCleared() bool {
	_, ok := m.clearedFields[incident.FieldIncidentNumber]
	return ok
}

// ResetIncidentNumber resets all changes to the "incident_number" field.
func (m *IncidentMutation) ResetIncidentNumber() {
	m.incident_number = nil
	delete(m.clearedFields, incident.FieldIncidentNumber)
}

// SetTitle sets the "title" field.
func (m *IncidentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *IncidentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *IncidentMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *IncidentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *IncidentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *IncidentMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[incident.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *IncidentMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[incident.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *IncidentMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, incident.FieldDescription)
}

// SetSeverity sets the "severity" field.
func (m *IncidentMutation) SetSeverity(i incident.Severity) {
	m.severity = &i
}

// Severity returns the value of the "severity" field in the mutation.
func (m *IncidentMutation) Severity() (r incident.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldSeverity(ctx context.Context) (v incident.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *IncidentMutation) ResetSeverity() {
	m.severity = nil
}

// SetStatus sets the "status" field.
func (m *IncidentMutation) SetStatus(i incident.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *IncidentMutation) Status() (r incident.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldStatus(ctx context.Context) (v incident.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *IncidentMutation) ResetStatus() {
	m.status = nil
}

// SetAffectedService sets the "affected_service" field.
func (m *IncidentMutation) SetAffectedService(s string) {
	m.affected_service = &s
}

// AffectedService returns the value of the "affected_service" field in the mutation.
func (m *IncidentMutation) AffectedService() (r string, exists bool) {
	v := m.affected_service
	if v == nil {
		return
	}
	return *v, true
}

// OldAffectedService returns the old "affected_service" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldAffectedService(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffectedService is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffectedService requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffectedService: %w", err)
	}
	return oldValue.AffectedService, nil
}

// ClearAffectedService clears the value of the "affected_service" field.
func (m *IncidentMutation) ClearAffectedService() {
	m.affected_service = nil
	m.clearedFields[incident.FieldAffectedService] = struct{}{}
}

// AffectedServiceCleared returns if the "affected_service" field was cleared in this mutation.
func (m *IncidentMutation) AffectedServiceCleared() bool {
	_, ok := m.clearedFields[incident.FieldAffectedService]
	return ok
}

// ResetAffectedService resets all changes to the "affected_service" field.
func (m *IncidentMutation) ResetAffectedService() {
	m.affected_service = nil
	delete(m.clearedFields, incident.FieldAffectedService)
}

// SetSummary sets the "summary" field.
func (m *IncidentMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *IncidentMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *IncidentMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[incident.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *IncidentMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[incident.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *IncidentMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, incident.FieldSummary)
}

// SetSource sets the "source" field.
func (m *IncidentMutation) SetSource(i incident.Source) {
	m.source = &i
}

// Source returns the value of the "source" field in the mutation.
func (m *IncidentMutation) Source() (r incident.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldSource(ctx context.Context) (v incident.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *IncidentMutation) ResetSource() {
	m.source = nil
}

// SetDetectedAt sets the "detected_at" field.
func (m *IncidentMutation) SetDetectedAt(t time.Time) {
	m.detected_at = &t
}

// DetectedAt returns the value of the "detected_at" field in the mutation.
func (m *IncidentMutation) DetectedAt() (r time.Time, exists bool) {
	v := m.detected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedAt returns the old "detected_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldDetectedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedAt: %w", err)
	}
	return oldValue.DetectedAt, nil
}

// ClearDetectedAt clears the value of the "detected_at" field.
func (m *IncidentMutation) ClearDetectedAt() {
	m.detected_at = nil
	m.clearedFields[incident.FieldDetectedAt] = struct{}{}
}

// DetectedAtCleared returns if the "detected_at" field was cleared in this mutation.
func (m *IncidentMutation) DetectedAtCleared() bool {
	_, ok := m.clearedFields[incident.FieldDetectedAt]
	return ok
}

// ResetDetectedAt resets all changes to the "detected_at" field.
func (m *IncidentMutation) ResetDetectedAt() {
	m.detected_at = nil
	delete(m.clearedFields, incident.FieldDetectedAt)
}

// SetResolvedAt sets the "resolved_at" field.
func (m *IncidentMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *IncidentMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *IncidentMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[incident.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *IncidentMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[incident.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *IncidentMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, incident.FieldResolvedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *IncidentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IncidentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IncidentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IncidentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IncidentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *IncidentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddPostmortemIDs adds the "postmortems" edge to the Postmortem entity by ids.
func (m *IncidentMutation) AddPostmortemIDs(ids ...string) {
	if m.postmortems == nil {
		m.postmortems = make(map[string]struct{})
	}
	for i := range ids {
		m.postmortems[ids[i]] = struct{}{}
	}
}

// ClearPostmortems clears the "postmortems" edge to the Postmortem entity.
func (m *IncidentMutation) ClearPostmortems() {
	m.clearedpostmortems = true
}

// PostmortemsCleared reports if the "postmortems" edge to the Postmortem entity was cleared.
func (m *IncidentMutation) PostmortemsCleared() bool {
	return m.clearedpostmortems
}

// RemovePostmortemIDs removes the "postmortems" edge to the Postmortem entity by IDs.
func (m *IncidentMutation) RemovePostmortemIDs(ids ...string) {
	if m.removedpostmortems == nil {
		m.removedpostmortems = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.postmortems, ids[i])
		m.removedpostmortems[ids[i]] = struct{}{}
	}
}

// RemovedPostmortems returns the removed IDs of the "postmortems" edge to the Postmortem entity.
func (m *IncidentMutation) RemovedPostmortemsIDs() (ids []string) {
	for id := range m.removedpostmortems {
		ids = append(ids, id)
	}
	return
}

// PostmortemsIDs returns the "postmortems" edge IDs in the mutation.
func (m *IncidentMutation) PostmortemsIDs() (ids []string) {
	for id := range m.postmortems {
		ids = append(ids, id)
	}
	return
}

// ResetPostmortems resets all changes to the "postmortems" edge.
func (m *IncidentMutation) ResetPostmortems() {
	m.postmortems = nil
	m.clearedpostmortems = false
	m.removedpostmortems = nil
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by ids.
func (m *IncidentMutation) AddTimelineEventIDs(ids ...string) {
	if m.timeline_events == nil {
		m.timeline_events = make(map[string]struct{})
	}
	for i := range ids {
		m.timeline_events[ids[i]] = struct{}{}
	}
}

// ClearTimelineEvents clears the "timeline_events" edge to the TimelineEvent entity.
func (m *IncidentMutation) ClearTimelineEvents() {
	m.clearedtimeline_events = true
}

// TimelineEventsCleared reports if the "timeline_events" edge to the TimelineEvent entity was cleared.
func (m *IncidentMutation) TimelineEventsCleared() bool {
	return m.clearedtimeline_events
}

// RemoveTimelineEventIDs removes the "timeline_events" edge to the TimelineEvent entity by IDs.
func (m *IncidentMutation) RemoveTimelineEventIDs(ids ...string) {
	if m.removedtimeline_events == nil {
		m.removedtimeline_events = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.timeline_events, ids[i])
		m.removedtimeline_events[ids[i]] = struct{}{}
	}
}

// RemovedTimelineEvents returns the removed IDs of the "timeline_events" edge to the TimelineEvent entity.
func (m *IncidentMutation) RemovedTimelineEventsIDs() (ids []string) {
	for id := range m.removedtimeline_events {
		ids = append(ids, id)
	}
	return
}

// TimelineEventsIDs returns the "timeline_events" edge IDs in the mutation.
func (m *IncidentMutation) TimelineEventsIDs() (ids []string) {
	for id := range m.timeline_events {
		ids = append(ids, id)
	}
	return
}

// ResetTimelineEvents resets all changes to the "timeline_events" edge.
func (m *IncidentMutation) ResetTimelineEvents() {
	m.timeline_events = nil
	m.clearedtimeline_events = false
	m.removedtimeline_events = nil
}

// AddActionItemIDs adds the "action_items" edge to the ActionItem entity by ids.
func (m *IncidentMutation) AddActionItemIDs(ids ...string) {
	if m.action_items == nil {
		m.action_items = make(map[string]struct{})
	}
	for i := range ids {
		m.action_items[ids[i]] = struct{}{}
	}
}

// ClearActionItems clears the "action_items" edge to the ActionItem entity.
func (m *IncidentMutation) ClearActionItems() {
	m.clearedaction_items = true
}

// ActionItemsCleared reports if the "action_items" edge to the ActionItem entity was cleared.
func (m *IncidentMutation) ActionItemsCleared() bool {
	return m.clearedaction_items
}

// RemoveActionItemIDs removes the "action_items" edge to the ActionItem entity by IDs.
func (m *IncidentMutation) RemoveActionItemIDs(ids ...string) {
	if m.removedaction_items == nil {
		m.removedaction_items = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.action_items, ids[i])
		m.removedaction_items[ids[i]] = struct{}{}
	}
}

// RemovedActionItems returns the removed IDs of the "action_items" edge to the ActionItem entity.
func (m *IncidentMutation) RemovedActionItemsIDs() (ids []string) {
	for id := range m.removedaction_items {
		ids = append(ids, id)
	}
	return
}

// ActionItemsIDs returns the "action_items" edge IDs in the mutation.
func (m *IncidentMutation) ActionItemsIDs() (ids []string) {
	for id := range m.action_items {
		ids = append(ids, id)
	}
	return
}

// ResetActionItems resets all changes to the "action_items" edge.
func (m *IncidentMutation) ResetActionItems() {
	m.action_items = nil
	m.clearedaction_items = false
	m.removedaction_items = nil
}

// Where appends a list predicates to the IncidentMutation builder.
func (m *IncidentMutation) Where(ps ...predicate.Incident) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IncidentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IncidentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Incident, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IncidentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IncidentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Incident).
func (m *IncidentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IncidentMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.incident_number != nil {
		fields = append(fields, incident.FieldIncidentNumber)
	}
	if m.title != nil {
		fields = append(fields, incident.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, incident.FieldDescription)
	}
	if m.severity != nil {
		fields = append(fields, incident.FieldSeverity)
	}
	if m.status != nil {
		fields = append(fields, incident.FieldStatus)
	}
	if m.affected_service != nil {
		fields = append(fields, incident.FieldAffectedService)
	}
	if m.summary != nil {
		fields = append(fields, incident.FieldSummary)
	}
	if m.source != nil {
		fields = append(fields, incident.FieldSource)
	}
	if m.detected_at != nil {
		fields = append(fields, incident.FieldDetectedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, incident.FieldResolvedAt)
	}
	if m.created_at != nil {
		fields = append(fields, incident.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, incident.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IncidentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case incident.FieldIncidentNumber:
		return m.IncidentNumber()
	case incident.FieldTitle:
		return m.Title()
	case incident.FieldDescription:
		return m.Description()
	case incident.FieldSeverity:
		return m.Severity()
	case incident.FieldStatus:
		return m.Status()
	case incident.FieldAffectedService:
		return m.AffectedService()
	case incident.FieldSummary:
		return m.Summary()
	case incident.FieldSource:
		return m.Source()
	case incident.FieldDetectedAt:
		return m.DetectedAt()
	case incident.FieldResolvedAt:
		return m.ResolvedAt()
	case incident.FieldCreatedAt:
		return m.CreatedAt()
	case incident.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IncidentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case incident.FieldIncidentNumber:
		return m.OldIncidentNumber(ctx)
	case incident.FieldTitle:
		return m.OldTitle(ctx)
	case incident.FieldDescription:
		return m.OldDescription(ctx)
	case incident.FieldSeverity:
		return m.OldSeverity(ctx)
	case incident.FieldStatus:
		return m.OldStatus(ctx)
	case incident.FieldAffectedService:
		return m.OldAffectedService(ctx)
	case incident.FieldSummary:
		return m.OldSummary(ctx)
	case incident.FieldSource:
		return m.OldSource(ctx)
	case incident.FieldDetectedAt:
		return m.OldDetectedAt(ctx)
	case incident.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	case incident.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case incident.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Incident field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case incident.FieldIncidentNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentNumber(v)
		return nil
	case incident.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case incident.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case incident.FieldSeverity:
		v, ok := value.(incident.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case incident.FieldStatus:
		v, ok := value.(incident.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case incident.FieldAffectedService:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffectedService(v)
		return nil
	case incident.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case incident.FieldSource:
		v, ok := value.(incident.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case incident.FieldDetectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedAt(v)
		return nil
	case incident.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	case incident.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case incident.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Incident field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IncidentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IncidentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Incident numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IncidentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(incident.FieldIncidentNumber) {
		fields = append(fields, incident.FieldIncidentNumber)
	}
	if m.FieldCleared(incident.FieldDescription) {
		fields = append(fields, incident.FieldDescription)
	}
	if m.FieldCleared(incident.FieldAffectedService) {
		fields = append(fields, incident.FieldAffectedService)
	}
	if m.FieldCleared(incident.FieldSummary) {
		fields = append(fields, incident.FieldSummary)
	}
	if m.FieldCleared(incident.FieldDetectedAt) {
		fields = append(fields, incident.FieldDetectedAt)
	}
	if m.FieldCleared(incident.FieldResolvedAt) {
		fields = append(fields, incident.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IncidentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IncidentMutation) ClearField(name string) error {
	switch name {
	case incident.FieldIncidentNumber:
		m.ClearIncidentNumber()
		return nil
	case incident.FieldDescription:
		m.ClearDescription()
		return nil
	case incident.FieldAffectedService:
		m.ClearAffectedService()
		return nil
	case incident.FieldSummary:
		m.ClearSummary()
		return nil
	case incident.FieldDetectedAt:
		m.ClearDetectedAt()
		return nil
	case incident.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown Incident nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IncidentMutation) ResetField(name string) error {
	switch name {
	case incident.FieldIncidentNumber:
		m.ResetIncidentNumber()
		return nil
	case incident.FieldTitle:
		m.ResetTitle()
		return nil
	case incident.FieldDescription:
		m.ResetDescription()
		return nil
	case incident.FieldSeverity:
		m.ResetSeverity()
		return nil
	case incident.FieldStatus:
		m.ResetStatus()
		return nil
	case incident.FieldAffectedService:
		m.ResetAffectedService()
		return nil
	case incident.FieldSummary:
		m.ResetSummary()
		return nil
	case incident.FieldSource:
		m.ResetSource()
		return nil
	case incident.FieldDetectedAt:
		m.ResetDetectedAt()
		return nil
	case incident.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	case incident.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case incident.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Incident field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IncidentMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.postmortems != nil {
		edges = append(edges, incident.EdgePostmortems)
	}
	if m.timeline_events != nil {
		edges = append(edges, incident.EdgeTimelineEvents)
	}
	if m.action_items != nil {
		edges = append(edges, incident.EdgeActionItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IncidentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case incident.EdgePostmortems:
		ids := make([]ent.Value, 0, len(m.postmortems))
		for id := range m.postmortems {
			ids = append(ids, id)
		}
		return ids
	case incident.EdgeTimelineEvents:
		ids := make([]ent.Value, 0, len(m.timeline_events))
		for id := range m.timeline_events {
			ids = append(ids, id)
		}
		return ids
	case incident.EdgeActionItems:
		ids := make([]ent.Value, 0, len(m.action_items))
		for id := range m.action_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IncidentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedpostmortems != nil {
		edges = append(edges, incident.EdgePostmortems)
	}
	if m.removedtimeline_events != nil {
		edges = append(edges, incident.EdgeTimelineEvents)
	}
	if m.removedaction_items != nil {
		edges = append(edges, incident.EdgeActionItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IncidentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case incident.EdgePostmortems:
		ids := make([]ent.Value, 0, len(m.removedpostmortems))
		for id := range m.removedpostmortems {
			ids = append(ids, id)
		}
		return ids
	case incident.EdgeTimelineEvents:
		ids := make([]ent.Value, 0, len(m.removedtimeline_events))
		for id := range m.removedtimeline_events {
			ids = append(ids, id)
		}
		return ids
	case incident.EdgeActionItems:
		ids := make([]ent.Value, 0, len(m.removedaction_items))
		for id := range m.removedaction_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IncidentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedpostmortems {
		edges = append(edges, incident.EdgePostmortems)
	}
	if m.clearedtimeline_events {
		edges = append(edges, incident.EdgeTimelineEvents)
	}
	if m.clearedaction_items {
		edges = append(edges, incident.EdgeActionItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IncidentMutation) EdgeCleared(name string) bool {
	switch name {
	case incident.EdgePostmortems:
		return m.clearedpostmortems
	case incident.EdgeTimelineEvents:
		return m.clearedtimeline_events
	case incident.EdgeActionItems:
		return m.clearedaction_items
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IncidentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Incident unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IncidentMutation) ResetEdge(name string) error {
	switch name {
	case incident.EdgePostmortems:
		m.ResetPostmortems()
		return nil
	case incident.EdgeTimelineEvents:
		m.ResetTimelineEvents()
		return nil
	case incident.EdgeActionItems:
		m.ResetActionItems()
		return nil
	}
	return fmt.Errorf("unknown Incident edge %s", name)
}

// PostmortemMutation represents an operation that mutates the Postmortem nodes in the graph.
type PostmortemMutation struct {
	config
	op              Op
	typ             string
	id              *string
	content         *string
	status          *postmortem.Status
	published_at    *time.Time
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	incident        *string
	clearedincident bool
	done            bool
	oldValue        func(context.Context) (*Postmortem, error)
	predicates      []predicate.Postmortem
}

var _ ent.Mutation = (*PostmortemMutation)(nil)

// postmortemOption allows management of the mutation configuration using functional options.
type postmortemOption func(*PostmortemMutation)

// newPostmortemMutation creates new mutation for the Postmortem entity.
func newPostmortemMutation(c config, op Op, opts ...postmortemOption) *PostmortemMutation {
	m := &PostmortemMutation{
		config:        c,
		op:            op,
		typ:           TypePostmortem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPostmortemID sets the ID field of the mutation.
func withPostmortemID(id string) postmortemOption {
	return func(m *PostmortemMutation) {
		var (
			err   error
			once  sync.Once
			value *Postmortem
		)
		m.oldValue = func(ctx context.Context) (*Postmortem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Postmortem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPostmortem sets the old Postmortem of the mutation.
func withPostmortem(node *Postmortem) postmortemOption {
	return func(m *PostmortemMutation) {
		m.oldValue = func(context.Context) (*Postmortem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PostmortemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PostmortemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Postmortem entities.
func (m *PostmortemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PostmortemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PostmortemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Postmortem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIncidentID sets the "incident_id" field.
func (m *PostmortemMutation) SetIncidentID(s string) {
	m.incident = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *PostmortemMutation) IncidentID() (r string, exists bool) {
	v := m.incident
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the Postmortem entity.
// If the Postmortem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostmortemMutation) OldIncidentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *PostmortemMutation) ResetIncidentID() {
	m.incident = nil
}

// SetContent sets the "content" field.
func (m *PostmortemMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *PostmortemMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Postmortem entity.
// If the Postmortem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostmortemMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *PostmortemMutation) ResetContent() {
	m.content = nil
}

// SetStatus sets the "status" field.
func (m *PostmortemMutation) SetStatus(po postmortem.Status) {
	m.status = &po
}

// Status returns the value of the "status" field in the mutation.
func (m *PostmortemMutation) Status() (r postmortem.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Postmortem entity.
// If the Postmortem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostmortemMutation) OldStatus(ctx context.Context) (v postmortem.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PostmortemMutation) ResetStatus() {
	m.status = nil
}

// SetPublishedAt sets the "published_at" field.
func (m *PostmortemMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *PostmortemMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the Postmortem entity.
// If the Postmortem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostmortemMutation) OldPublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ClearPublishedAt clears the value of the "published_at" field.
func (m *PostmortemMutation) ClearPublishedAt() {
	m.published_at = nil
	m.clearedFields[postmortem.FieldPublishedAt] = struct{}{}
}

// PublishedAtCleared returns if the "published_at" field was cleared in this mutation.
func (m *PostmortemMutation) PublishedAtCleared() bool {
	_, ok := m.clearedFields[postmortem.FieldPublishedAt]
	return ok
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *PostmortemMutation) ResetPublishedAt() {
	m.published_at = nil
	delete(m.clearedFields, postmortem.FieldPublishedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *PostmortemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PostmortemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Postmortem entity.
// If the Postmortem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostmortemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PostmortemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PostmortemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PostmortemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Postmortem entity.
// If the Postmortem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostmortemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PostmortemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearIncident clears the "incident" edge to the Incident entity.
func (m *PostmortemMutation) ClearIncident() {
	m.clearedincident = true
	m.clearedFields[postmortem.FieldIncidentID] = struct{}{}
}

// IncidentCleared reports if the "incident" edge to the Incident entity was cleared.
func (m *PostmortemMutation) IncidentCleared() bool {
	return m.clearedincident
}

// IncidentIDs returns the "incident" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IncidentID instead. It exists only for internal usage by the builders.
func (m *PostmortemMutation) IncidentIDs() (ids []string) {
	if id := m.incident; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIncident resets all changes to the "incident" edge.
func (m *PostmortemMutation) ResetIncident() {
	m.incident = nil
	m.clearedincident = false
}

// Where appends a list predicates to the PostmortemMutation builder.
func (m *PostmortemMutation) Where(ps ...predicate.Postmortem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PostmortemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PostmortemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Postmortem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PostmortemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PostmortemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Postmortem).
func (m *PostmortemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PostmortemMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.incident != nil {
		fields = append(fields, postmortem.FieldIncidentID)
	}
	if m.content != nil {
		fields = append(fields, postmortem.FieldContent)
	}
	if m.status != nil {
		fields = append(fields, postmortem.FieldStatus)
	}
	if m.published_at != nil {
		fields = append(fields, postmortem.FieldPublishedAt)
	}
	if m.created_at != nil {
		fields = append(fields, postmortem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, postmortem.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PostmortemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case postmortem.FieldIncidentID:
		return m.IncidentID()
	case postmortem.FieldContent:
		return m.Content()
	case postmortem.FieldStatus:
		return m.Status()
	case postmortem.FieldPublishedAt:
		return m.PublishedAt()
	case postmortem.FieldCreatedAt:
		return m.CreatedAt()
	case postmortem.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PostmortemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case postmortem.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case postmortem.FieldContent:
		return m.OldContent(ctx)
	case postmortem.FieldStatus:
		return m.OldStatus(ctx)
	case postmortem.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case postmortem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case postmortem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Postmortem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PostmortemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case postmortem.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case postmortem.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case postmortem.FieldStatus:
		v, ok := value.(postmortem.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case postmortem.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case postmortem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case postmortem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Postmortem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PostmortemMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PostmortemMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PostmortemMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Postmortem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PostmortemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(postmortem.FieldPublishedAt) {
		fields = append(fields, postmortem.FieldPublishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PostmortemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PostmortemMutation) ClearField(name string) error {
	switch name {
	case postmortem.FieldPublishedAt:
		m.ClearPublishedAt()
		return nil
	}
	return fmt.Errorf("unknown Postmortem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PostmortemMutation) ResetField(name string) error {
	switch name {
	case postmortem.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case postmortem.FieldContent:
		m.ResetContent()
		return nil
	case postmortem.FieldStatus:
		m.ResetStatus()
		return nil
	case postmortem.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case postmortem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case postmortem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Postmortem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PostmortemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.incident != nil {
		edges = append(edges, postmortem.EdgeIncident)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PostmortemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case postmortem.EdgeIncident:
		if id := m.incident; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PostmortemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PostmortemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PostmortemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedincident {
		edges = append(edges, postmortem.EdgeIncident)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PostmortemMutation) EdgeCleared(name string) bool {
	switch name {
	case postmortem.EdgeIncident:
		return m.clearedincident
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PostmortemMutation) ClearEdge(name string) error {
	switch name {
	case postmortem.EdgeIncident:
		m.ClearIncident()
		return nil
	}
	return fmt.Errorf("unknown Postmortem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PostmortemMutation) ResetEdge(name string) error {
	switch name {
	case postmortem.EdgeIncident:
		m.ResetIncident()
		return nil
	}
	return fmt.Errorf("unknown Postmortem edge %s", name)
}

// TimelineEventMutation represents an operation that mutates the TimelineEvent nodes in the graph.
type TimelineEventMutation struct {
	config
	op              Op
	typ             string
	id              *string
	event_type      *string
	description     *string
	occurred_at     *time.Time
	created_at      *time.Time
	clearedFields   map[string]struct{}
	incident        *string
	clearedincident bool
	done            bool
	oldValue        func(context.Context) (*TimelineEvent, error)
	predicates      []predicate.TimelineEvent
}

var _ ent.Mutation = (*TimelineEventMutation)(nil)

// timelineeventOption allows management of the mutation configuration using functional options.
type timelineeventOption func(*TimelineEventMutation)

// newTimelineEventMutation creates new mutation for the TimelineEvent entity.
func newTimelineEventMutation(c config, op Op, opts ...timelineeventOption) *TimelineEventMutation {
	m := &TimelineEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTimelineEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTimelineEventID sets the ID field of the mutation.
func withTimelineEventID(id string) timelineeventOption {
	return func(m *TimelineEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TimelineEvent
		)
		m.oldValue = func(ctx context.Context) (*TimelineEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TimelineEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTimelineEvent sets the old TimelineEvent of the mutation.
func withTimelineEvent(node *TimelineEvent) timelineeventOption {
	return func(m *TimelineEventMutation) {
		m.oldValue = func(context.Context) (*TimelineEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TimelineEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TimelineEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TimelineEvent entities.
func (m *TimelineEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TimelineEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TimelineEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TimelineEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIncidentID sets the "incident_id" field.
func (m *TimelineEventMutation) SetIncidentID(s string) {
	m.incident = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *TimelineEventMutation) IncidentID() (r string, exists bool) {
	v := m.incident
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldIncidentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *TimelineEventMutation) ResetIncidentID() {
	m.incident = nil
}

// SetEventType sets the "event_type" field.
func (m *TimelineEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *TimelineEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldEventType(ctx context.Context) (v string, err error) {
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
func (m *TimelineEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetDescription sets the "description" field.
func (m *TimelineEventMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TimelineEventMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TimelineEventMutation) ResetDescription() {
	m.description = nil
}

// SetOccurredAt sets the "occurred_at" field.
func (m *TimelineEventMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *TimelineEventMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *TimelineEventMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TimelineEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TimelineEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TimelineEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearIncident clears the "incident" edge to the Incident entity.
func (m *TimelineEventMutation) ClearIncident() {
	m.clearedincident = true
	m.clearedFields[timelineevent.FieldIncidentID] = struct{}{}
}

// IncidentCleared reports if the "incident" edge to the Incident entity was cleared.
func (m *TimelineEventMutation) IncidentCleared() bool {
	return m.clearedincident
}

// IncidentIDs returns the "incident" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IncidentID instead. It exists only for internal usage by the builders.
func (m *TimelineEventMutation) IncidentIDs() (ids []string) {
	if id := m.incident; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIncident resets all changes to the "incident" edge.
func (m *TimelineEventMutation) ResetIncident() {
	m.incident = nil
	m.clearedincident = false
}

// Where appends a list predicates to the TimelineEventMutation builder.
func (m *TimelineEventMutation) Where(ps ...predicate.TimelineEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TimelineEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TimelineEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TimelineEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TimelineEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TimelineEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TimelineEvent).
func (m *TimelineEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TimelineEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.incident != nil {
		fields = append(fields, timelineevent.FieldIncidentID)
	}
	if m.event_type != nil {
		fields = append(fields, timelineevent.FieldEventType)
	}
	if m.description != nil {
		fields = append(fields, timelineevent.FieldDescription)
	}
	if m.occurred_at != nil {
		fields = append(fields, timelineevent.FieldOccurredAt)
	}
	if m.created_at != nil {
		fields = append(fields, timelineevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TimelineEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case timelineevent.FieldIncidentID:
		return m.IncidentID()
	case timelineevent.FieldEventType:
		return m.EventType()
	case timelineevent.FieldDescription:
		return m.Description()
	case timelineevent.FieldOccurredAt:
		return m.OccurredAt()
	case timelineevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TimelineEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case timelineevent.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case timelineevent.FieldEventType:
		return m.OldEventType(ctx)
	case timelineevent.FieldDescription:
		return m.OldDescription(ctx)
	case timelineevent.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	case timelineevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TimelineEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TimelineEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case timelineevent.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case timelineevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case timelineevent.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case timelineevent.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	case timelineevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TimelineEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TimelineEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TimelineEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TimelineEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TimelineEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TimelineEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TimelineEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TimelineEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TimelineEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TimelineEventMutation) ResetField(name string) error {
	switch name {
	case timelineevent.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case timelineevent.FieldEventType:
		m.ResetEventType()
		return nil
	case timelineevent.FieldDescription:
		m.ResetDescription()
		return nil
	case timelineevent.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	case timelineevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TimelineEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TimelineEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.incident != nil {
		edges = append(edges, timelineevent.EdgeIncident)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TimelineEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case timelineevent.EdgeIncident:
		if id := m.incident; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TimelineEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TimelineEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TimelineEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedincident {
		edges = append(edges, timelineevent.EdgeIncident)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TimelineEventMutation) EdgeCleared(name string) bool {
	switch name {
	case timelineevent.EdgeIncident:
		return m.clearedincident
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TimelineEventMutation) ClearEdge(name string) error {
	switch name {
	case timelineevent.EdgeIncident:
		m.ClearIncident()
		return nil
	}
	return fmt.Errorf("unknown TimelineEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TimelineEventMutation) ResetEdge(name string) error {
	switch name {
	case timelineevent.EdgeIncident:
		m.ResetIncident()
		return nil
	}
	return fmt.Errorf("unknown TimelineEvent edge %s", name)
}
