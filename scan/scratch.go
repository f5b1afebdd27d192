package scan

import (
	"reflect"
	"sync"

	"github.com/cwbudde/algo-scan/buffer"
)

// scratchPools holds one *buffer.Pool[T] per element type.
var scratchPools sync.Map

func scratchPool[T Integer]() *buffer.Pool[T] {
	key := reflect.TypeFor[T]()
	if p, ok := scratchPools.Load(key); ok {
		return p.(*buffer.Pool[T])
	}
	p, _ := scratchPools.LoadOrStore(key, buffer.NewPool[T]())
	return p.(*buffer.Pool[T])
}

func getScratch[T Integer](n int) *buffer.Buffer[T] {
	return scratchPool[T]().Get(n)
}

func putScratch[T Integer](b *buffer.Buffer[T]) {
	scratchPool[T]().Put(b)
}
