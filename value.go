package datadiff

import (
	"encoding/hex"
	"encoding/json"
	"hash"
	"hash/fnv"
	"math"
	"reflect"
	"sort"
	"strconv"
)

// nodeType defines all of the atoms in our universe, or the types of data we
// will encounter while generating a diff
type nodeType uint8

const (
	ntUnknown nodeType = iota
	ntObject
	ntArray
	ntString
	ntNumber
	ntBool
	ntNull
)

func (nt nodeType) String() string {
	switch nt {
	case ntObject:
		return "object"
	case ntArray:
		return "array"
	case ntString:
		return "string"
	case ntNumber:
		return "number"
	case ntBool:
		return "bool"
	case ntNull:
		return "null"
	default:
		return "unknown"
	}
}

// typeOf classifies v. the common types created by unmarshaling JSON, YAML &
// TOML are switched on directly, everything else goes through reflection.
// nil maps & slices are empty containers, not nulls
func typeOf(v interface{}) nodeType {
	switch v.(type) {
	case nil:
		return ntNull
	case map[string]interface{}:
		return ntObject
	case []interface{}:
		return ntArray
	case string:
		return ntString
	case bool:
		return ntBool
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, json.Number:
		return ntNumber
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return ntNull
		}
		return ntUnknown
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return ntObject
		}
	case reflect.Slice, reflect.Array:
		return ntArray
	case reflect.String:
		return ntString
	case reflect.Bool:
		return ntBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return ntNumber
	}
	return ntUnknown
}

// asRecord returns v as a keyed record. typed maps with string keys are
// copied into a map[string]interface{}
func asRecord(v interface{}) (map[string]interface{}, bool) {
	if m, ok := v.(map[string]interface{}); ok {
		return m, true
	}
	if typeOf(v) != ntObject {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	m := make(map[string]interface{}, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

// asSequence returns v as an ordered sequence. typed slices & arrays are
// copied into a []interface{}
func asSequence(v interface{}) ([]interface{}, bool) {
	if s, ok := v.([]interface{}); ok {
		return s, true
	}
	if typeOf(v) != ntArray {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	s := make([]interface{}, rv.Len())
	for i := range s {
		s[i] = rv.Index(i).Interface()
	}
	return s, true
}

// number is a numeric value normalised across go's numeric kinds. integers
// keep exact representations so large ids don't collide through float64
type number struct {
	kind byte // 'i', 'u' or 'f'
	i    int64
	u    uint64
	f    float64
}

func asNumber(v interface{}) (number, bool) {
	switch x := v.(type) {
	case float64:
		return number{kind: 'f', f: x}, true
	case int:
		return number{kind: 'i', i: int64(x)}, true
	case int64:
		return number{kind: 'i', i: x}, true
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return number{kind: 'i', i: i}, true
		}
		f, err := x.Float64()
		if err != nil {
			return number{}, false
		}
		return number{kind: 'f', f: f}, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{kind: 'i', i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return number{kind: 'u', u: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return number{kind: 'f', f: rv.Float()}, true
	}
	return number{}, false
}

func (n number) equal(o number) bool {
	switch {
	case n.kind == 'f' && o.kind == 'f':
		return n.f == o.f
	case n.kind == 'f':
		return o.equalFloat(n.f)
	case o.kind == 'f':
		return n.equalFloat(o.f)
	case n.kind == 'i' && o.kind == 'i':
		return n.i == o.i
	case n.kind == 'u' && o.kind == 'u':
		return n.u == o.u
	case n.kind == 'i':
		return n.i >= 0 && uint64(n.i) == o.u
	}
	return o.i >= 0 && uint64(o.i) == n.u
}

// equalFloat compares an integer number to f without rounding through float64
func (n number) equalFloat(f float64) bool {
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return false
	}
	if n.kind == 'u' {
		if f < 0 || f >= 1<<64 {
			return false
		}
		return uint64(f) == n.u
	}
	if f < -(1<<63) || f >= 1<<63 {
		return false
	}
	return int64(f) == n.i
}

// String renders the number canonically: equal numbers render identically
// regardless of kind
func (n number) String() string {
	switch n.kind {
	case 'i':
		return strconv.FormatInt(n.i, 10)
	case 'u':
		return strconv.FormatUint(n.u, 10)
	}
	if n.f == 0 {
		return "0"
	}
	if n.f == math.Trunc(n.f) && !math.IsInf(n.f, 0) {
		return strconv.FormatFloat(n.f, 'f', -1, 64)
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}

// NewHash returns a new hash interface, wrapped in a function for easy
// hash algorithm switching, package consumers can override NewHash
// with their own desired hash.Hash implementation if the value space is
// particularly large. default is 64-bit FNV 1 for fast, cheap,
// (non-cryptographic) hashing
var NewHash = func() hash.Hash {
	return fnv.New64()
}

// hashStr converts a hash sum to a string using hex encoding
func hashStr(sum []byte) string {
	return hex.EncodeToString(sum)
}

// identity is the address of a compound value, used to detect cycles. two
// slices sharing a backing array but differing in length are different values
type identity struct {
	ptr uintptr
	len int
	t   nodeType
}

// identityOf returns the identity of maps & slices. arrays & scalars can't
// form cycles on their own, so they report false
func identityOf(v interface{}) (identity, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return identity{}, false
		}
		return identity{ptr: rv.Pointer(), t: ntObject}, true
	case reflect.Slice:
		if rv.IsNil() || rv.Len() == 0 {
			return identity{}, false
		}
		return identity{ptr: rv.Pointer(), len: rv.Len(), t: ntArray}, true
	}
	return identity{}, false
}

// canonicalHash produces a serialisation hash of v that's consistent with
// Equal: values that compare equal always share a hash. when ignoreOrder is
// true sequence element hashes are sorted before writing, making the hash
// insensitive to element order at every depth.
//
// Equal treats cycles coinductively, so [a] with a = [a] equals [[b]] with
// b = [[b]] even though they unroll at different depths. compound values that
// reach a cycle hash only their shape (type plus length or key set), which
// every coinductively equal value shares
func canonicalHash(v interface{}, ignoreOrder bool) string {
	h := &hasher{ignoreOrder: ignoreOrder, path: map[identity]bool{}}
	sum, _ := h.sum(v)
	return hashStr(sum)
}

type hasher struct {
	ignoreOrder bool
	// compound values on the path from the root to the value being hashed
	path map[identity]bool
}

// sum hashes v, reporting whether v reaches a cycle
func (h *hasher) sum(v interface{}) ([]byte, bool) {
	hsh := NewHash()
	t := typeOf(v)
	hsh.Write([]byte{byte(t)})

	switch t {
	case ntNull:
	case ntString:
		s, ok := v.(string)
		if !ok {
			s = reflect.ValueOf(v).String()
		}
		hsh.Write([]byte(s))
	case ntBool:
		b, ok := v.(bool)
		if !ok {
			b = reflect.ValueOf(v).Bool()
		}
		if b {
			hsh.Write([]byte("true"))
		} else {
			hsh.Write([]byte("false"))
		}
	case ntNumber:
		n, _ := asNumber(v)
		hsh.Write([]byte(n.String()))
	case ntArray, ntObject:
		if id, ok := identityOf(v); ok {
			if h.path[id] {
				return h.shape(v, t), true
			}
			h.path[id] = true
			defer delete(h.path, id)
		}
		var cyclic bool
		if t == ntArray {
			cyclic = h.writeSequence(hsh, v)
		} else {
			cyclic = h.writeRecord(hsh, v)
		}
		if cyclic {
			return h.shape(v, t), true
		}
	default:
		// unknown types are only comparable through reflect.DeepEqual, so they
		// share a bucket per type
		hsh.Write([]byte(reflect.TypeOf(v).String()))
	}
	return hsh.Sum(nil), false
}

// shape hashes a compound value without its contents: sequence length or
// record keys
func (h *hasher) shape(v interface{}, t nodeType) []byte {
	hsh := NewHash()
	hsh.Write([]byte{byte(t)})
	hsh.Write([]byte("cyclic"))
	if t == ntArray {
		seq, _ := asSequence(v)
		hsh.Write([]byte(strconv.Itoa(len(seq))))
		return hsh.Sum(nil)
	}
	rec, _ := asRecord(v)
	for _, key := range sortedKeys(rec) {
		hsh.Write([]byte(strconv.Quote(key)))
	}
	return hsh.Sum(nil)
}

func (h *hasher) writeSequence(hsh hash.Hash, v interface{}) bool {
	seq, _ := asSequence(v)
	sums := make([]string, len(seq))
	cyclic := false
	for i, el := range seq {
		sum, c := h.sum(el)
		sums[i] = string(sum)
		cyclic = cyclic || c
	}
	if h.ignoreOrder {
		sort.Strings(sums)
	}
	for _, s := range sums {
		hsh.Write([]byte(s))
	}
	return cyclic
}

func (h *hasher) writeRecord(hsh hash.Hash, v interface{}) bool {
	rec, _ := asRecord(v)
	// gotta sort keys for consistent hashing :(
	keys := sortedKeys(rec)
	cyclic := false
	for _, key := range keys {
		sum, c := h.sum(rec[key])
		hsh.Write([]byte(strconv.Quote(key)))
		hsh.Write(sum)
		cyclic = cyclic || c
	}
	return cyclic
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
