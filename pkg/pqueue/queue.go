package pqueue

import (
	"sort"
)

func WithOrderAsc() Option {
	return func(q *Queue) {
		q.order = orderAsc
	}
}

func WithOrderDesc() Option {
	return func(q *Queue) {
		q.order = orderDesc
	}
}

func WithCap(size uint) Option {
	return func(q *Queue) {
		q.cap = int(size)
	}
}

type Option func(*Queue)

type order uint8

const (
	orderAsc order = iota
	orderDesc
)

type item struct {
	value interface{}
	prior float64
}

func New(opts ...Option) *Queue {
	p := &Queue{order: orderAsc, cap: -1}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Queue orders values by priority. Values with equal priority keep the order they were pushed in.
// The queue is sorted lazily, so pushing n values costs a single O(n log n) sort on first read.
type Queue struct {
	order  order
	cap    int
	sorted bool
	items  []item
}

func (q *Queue) Push(val interface{}, priority float64) {
	q.items = append(q.items, item{value: val, prior: priority})
	q.sorted = false
}

func (q *Queue) PopAll() []interface{} {
	q.settle()
	pulled := make([]interface{}, len(q.items))
	for i := range q.items {
		pulled[i] = q.items[i].value
	}
	q.items = q.items[:0]
	return pulled
}

func (q *Queue) Head() interface{} {
	q.settle()
	if len(q.items) == 0 {
		return nil
	}
	x := q.items[0]
	q.items = q.items[1:]
	return x.value
}

func (q *Queue) Tail() interface{} {
	q.settle()
	l := len(q.items) - 1
	if l < 0 {
		return nil
	}
	x := q.items[l]
	q.items = q.items[:l]
	return x.value
}

func (q *Queue) Seek(idx int) (interface{}, float64) {
	q.settle()
	it := q.items[idx]
	return it.value, it.prior
}

func (q *Queue) Cap() int { return q.cap }

func (q *Queue) Len() int {
	q.settle()
	return len(q.items)
}

func (q *Queue) settle() {
	if q.sorted {
		return
	}
	sort.SliceStable(q.items, q.less)
	if q.cap >= 0 && q.cap < len(q.items) {
		q.items = q.items[:q.cap]
	}
	q.sorted = true
}

func (q *Queue) less(i, j int) bool {
	if q.order == orderAsc {
		return q.items[i].prior < q.items[j].prior
	}
	return q.items[i].prior > q.items[j].prior
}
