package myutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bradenaw/myutil/dblist"
)

func TestLRU(t *testing.T) {
	require := require.New(t)
	c := NewLRU[string, int](3)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)
	require.Equal([]string{"a", "b", "c"}, c.Keys())

	v, ok := c.Get("a")
	require.True(ok)
	require.Equal(1, v)
	require.Equal([]string{"b", "c", "a"}, c.Keys())

	c.Put("d", 4)
	require.Equal([]string{"c", "a", "d"}, c.Keys())
	_, ok = c.Get("b")
	require.False(ok)

	c.Put("c", 30)
	require.Equal([]string{"a", "d", "c"}, c.Keys())
	v, _ = c.Get("c")
	require.Equal(30, v)

	c.Forget("d")
	c.Forget("d")
	require.Equal([]string{"a", "c"}, c.Keys())
	c.Forget("a")
	c.Forget("c")
	require.Zero(c.Len())
	require.Empty(c.Keys())

	c.Put("e", 5)
	require.Equal([]string{"e"}, c.Keys())
}

func FuzzLRU(f *testing.F) {
	f.Add(byte(3), []byte{1, 2, 3, 1, 4, 5, 1, 6})
	f.Add(byte(1), []byte{1, 1, 2, 2, 1})

	f.Fuzz(func(t *testing.T, size byte, b []byte) {
		if size == 0 {
			return
		}

		t.Logf("size %d", size)

		populate := func(b byte) uint32 {
			return (uint32(b) * 2547493511) ^ 0x95835b12
		}

		cache := NewLRU[byte, uint32](int(size))
		// Keys from least to most recently used.
		var recent []byte

		touch := func(k byte) {
			for i := range recent {
				if recent[i] == k {
					recent = append(recent[:i:i], recent[i+1:]...)
					break
				}
			}
			recent = append(recent, k)
		}

		for i := range b {
			v, ok := cache.Get(b[i])
			exp := populate(b[i])
			if ok {
				t.Logf("Get(%#v) hit", b[i])
				if v != exp {
					t.Fatalf("got a wrong value back")
				}
				touch(b[i])
			} else {
				t.Logf("Get(%#v) miss, Put(%#v, %08x)", b[i], b[i], exp)
				cache.Put(b[i], exp)
				touch(b[i])
				if len(recent) > int(size) {
					recent = recent[1:]
				}
			}
			logCache(t, cache)
			require.Equal(t, recent, cache.Keys())
			require.Equal(t, len(recent), dblist.Len(cache.head))
		}
	})
}

func logCache[K comparable, V any](t *testing.T, c *LRU[K, V]) {
	t.Log("cache =================")
	it := dblist.NewIter(c.head)
	for it.Next() {
		e := it.Current()
		pfx := "  "
		if e == c.head {
			pfx = "->"
		}
		t.Logf("  %s%#v: %#v", pfx, e.k, e.v)
	}
}
