package model

import (
	"math"
	"reflect"
	"sync"

	"github.com/google/uuid"

	"github.com/ti/recordstore/log"
)

const (
	opRecord = "record"
	opAll    = "all"
	opFind   = "find"
	opUpdate = "update"
	opFilter = "filter"
)

// Model is an in-memory, insertion ordered collection of records.
type Model struct {
	mu         sync.RWMutex
	collection []Record
	options    *options
	id         string
	// lastID is the largest numeric primary key seen or generated.
	lastID  int64
	cache   *lookupCache
	metrics *modelMetrics
	logger  log.StdLogger
}

// New creates a model and records data into it, so seed data gets primary
// keys like any later insert.
func New(data []Record, opts ...Option) *Model {
	o := evaluateOptions(opts)
	m := &Model{
		collection: make([]Record, 0, len(data)),
		options:    o,
		id:         uuid.New().String(),
		cache:      newLookupCache(o.cacheCapacity),
		metrics:    newModelMetrics(o.registerer),
		logger:     o.logger,
	}
	m.Record(data...)
	return m
}

// log returns the configured logger, or one derived from the current default
// logger so log.SetOutput also applies to existing models.
func (m *Model) log() log.StdLogger {
	if m.logger != nil {
		return m.logger
	}
	return log.With(map[string]any{
		"model":       m.id,
		"primary_key": m.options.PrimaryKey,
	})
}

// ID returns the instance id of the model.
func (m *Model) ID() string {
	return m.id
}

// PrimaryKey returns the field used to identify records.
func (m *Model) PrimaryKey() string {
	return m.options.PrimaryKey
}

// Options returns the loadable options of the model.
func (m *Model) Options() Options {
	return m.options.Options
}

// Record appends copies of records to the collection in order. A record
// without a value at the primary key gets an int64 key greater than any
// numeric key already in the collection. Once that would overflow, the
// smallest unused positive key is taken instead.
func (m *Model) Record(records ...Record) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pk := m.options.PrimaryKey
	var generated int
	for _, r := range records {
		row := r.Clone()
		if row == nil {
			row = Record{}
		}
		if key, ok := row[pk]; ok && key != nil {
			if n, ok := numericKey(key); ok && n > m.lastID {
				m.lastID = n
			}
		} else {
			row[pk] = m.nextID()
			generated++
		}
		m.collection = append(m.collection, row)
	}
	if generated > 0 {
		m.log().Debug("generated %d primary keys, last %d", generated, m.lastID)
	}
	m.metrics.observe(opRecord, resultOK, len(records))
}

// nextID generates a key distinct from every key in the collection, m.mu must
// be held.
func (m *Model) nextID() int64 {
	if m.lastID == math.MaxInt64 {
		return m.freeID()
	}
	id := m.lastID + 1
	if g := m.options.idGenerator; g != nil {
		if candidate := g.NextID(); candidate > m.lastID {
			id = candidate
		}
	}
	m.lastID = id
	return id
}

// freeID returns the smallest positive int64 no record uses as its key.
func (m *Model) freeID() int64 {
	pk := m.options.PrimaryKey
	used := make(map[int64]struct{}, len(m.collection))
	for _, row := range m.collection {
		if n, ok := canonicalKey(row[pk]).(int64); ok {
			used[n] = struct{}{}
		}
	}
	for id := int64(1); ; id++ {
		if _, ok := used[id]; !ok {
			return id
		}
	}
}

// All returns a deep copy of the collection in storage order.
func (m *Model) All() []Record {
	m.mu.RLock()
	defer m.mu.RUnlock()

	m.metrics.observe(opAll, resultOK, 1)
	return cloneAll(m.collection)
}

// Len returns the number of records.
func (m *Model) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.collection)
}

// Find returns a copy of the first record whose primary key equals key.
// Integer keys match by value whatever their Go type, so Find(2) finds a
// generated int64(2); other keys must match in type and value.
func (m *Model) Find(key any) (Record, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	pos, found := m.indexOf(key)
	m.metrics.observe(opFind, lookupResult(found), 1)
	if !found {
		return nil, false
	}
	return m.collection[pos].Clone(), true
}

// Exists reports whether a record with the primary key exists.
func (m *Model) Exists(key any) bool {
	_, ok := m.Find(key)
	return ok
}

// Update merges patch into the record with the primary key and returns a copy
// of the result. Fields missing from patch are kept. The primary key itself
// cannot be changed, a different value in patch is ignored. It returns false
// when no record matches.
func (m *Model) Update(key any, patch Record) (Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pos, found := m.indexOf(key)
	m.metrics.observe(opUpdate, lookupResult(found), 1)
	if !found {
		return nil, false
	}
	pk := m.options.PrimaryKey
	row := m.collection[pos]
	if v, ok := patch[pk]; ok && !keyEqual(v, row[pk]) {
		m.log().Warn("ignored update of primary key %v to %v", row[pk], v)
	}
	row.merge(patch, pk)
	return row.Clone(), true
}

// Filter returns copies of the records matching all conditions, an empty
// condition matches every record.
func (m *Model) Filter(cond C) []Record {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Record, 0)
	for _, row := range m.collection {
		if cond.match(row) {
			result = append(result, row.Clone())
		}
	}
	m.metrics.observe(opFilter, lookupResult(len(result) > 0), 1)
	return result
}

// indexOf returns the position of the first record with the primary key,
// m.mu must be held.
func (m *Model) indexOf(key any) (int, bool) {
	if pos, ok := m.cache.get(key); ok {
		return pos, true
	}
	pk := m.options.PrimaryKey
	for i, row := range m.collection {
		if keyEqual(row[pk], key) {
			m.cache.set(key, i)
			return i, true
		}
	}
	return 0, false
}

// keyEqual compares keys by type and value, integer kinds by value only.
func keyEqual(a, b any) bool {
	if a == nil || b == nil {
		return false
	}
	return valueEqual(a, b)
}

// valueEqual is reflect.DeepEqual after mapping integers with canonicalKey.
func valueEqual(a, b any) bool {
	return reflect.DeepEqual(canonicalKey(a), canonicalKey(b))
}

// canonicalKey maps every integer kind to int64, or to uint64 above
// math.MaxInt64, other values are returned as is.
func canonicalKey(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return u
		}
		return int64(u)
	default:
		return v
	}
}
