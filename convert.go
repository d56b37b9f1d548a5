package planfind

import (
	"reflect"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// FromGo reads in a Go value and generates a tree that can be searched
// and serialized. Map entries are sorted by key so equal inputs yield
// equal trees. Struct fields honor the json tag options "-" and
// "omitempty".
func FromGo(val interface{}) (*Node, error) {
	n, err := fromGo(val)
	if err != nil {
		return nil, err
	}
	n.adopt()
	return n, nil
}

func fromGo(val interface{}) (*Node, error) {
	if val == nil {
		return &Node{kind: Null}, nil
	}
	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Bool:
		return &Node{kind: Bool, value: v.Bool()}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &Node{kind: Number, value: float64(v.Int())}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Node{kind: Number, value: float64(v.Uint())}, nil
	case reflect.Float32, reflect.Float64:
		return &Node{kind: Number, value: v.Float()}, nil
	case reflect.String:
		return &Node{kind: String, value: escapeString(v.String())}, nil
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return &Node{kind: String, value: escapeString(string(v.Bytes()))}, nil
		}
		fallthrough
	case reflect.Array:
		nn := []*Node(nil)
		for i := 0; i < v.Len(); i++ {
			n, err := fromGo(v.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			nn = append(nn, n)
		}
		return &Node{kind: Array, value: nn}, nil
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, errors.Wrapf(ErrInvalidInput,
				"map key type %s, want string", v.Type().Key())
		}
		keys := make([]string, 0, v.Len())
		for _, key := range v.MapKeys() {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		kn := []Entry(nil)
		for _, key := range keys {
			elem := v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key()))
			n, err := fromGo(elem.Interface())
			if err != nil {
				return nil, err
			}
			kn = append(kn, Entry{Key: key, Node: n})
		}
		return &Node{kind: Object, value: kn}, nil
	case reflect.Struct:
		kn := []Entry(nil)
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if r, _ := utf8.DecodeRuneInString(t.Field(i).Name); !unicode.IsUpper(r) {
				continue
			}
			key, opts, skip := fieldTag(t.Field(i))
			if skip {
				continue
			}
			if opts["omitempty"] && v.Field(i).IsZero() {
				continue
			}
			n, err := fromGo(v.Field(i).Interface())
			if err != nil {
				return nil, err
			}
			kn = append(kn, Entry{Key: key, Node: n})
		}
		return &Node{kind: Object, value: kn}, nil
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return &Node{kind: Null}, nil
		}
		return fromGo(v.Elem().Interface())
	default:
		return nil, errors.Wrapf(ErrInvalidInput,
			"cannot represent %s as a tree value", v.Kind())
	}
}

// Decode reads the tree into val. val has to be a non-nil pointer.
// Object entries without a matching struct field and struct fields
// without a matching entry are skipped.
func (n *Node) Decode(val interface{}) error {
	v := reflect.ValueOf(val)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return errors.Wrapf(ErrInvalidInput, "decode target %T is not a pointer", val)
	}
	return decode(n, v.Elem())
}

func decode(n *Node, dst reflect.Value) error {
	switch dst.Kind() {
	case reflect.Interface:
		if dst.NumMethod() != 0 {
			return errors.Wrapf(ErrInvalidInput,
				"cannot decode into non-empty interface %s", dst.Type())
		}
		itf, err := n.Value()
		if err != nil {
			return err
		}
		if itf == nil {
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		dst.Set(reflect.ValueOf(itf))
		return nil
	case reflect.Bool:
		if n.Kind() != Bool {
			return kindMismatch(Bool, n)
		}
		dst.SetBool(n.value.(bool))
		return nil
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n.Kind() != Number {
			return kindMismatch(Number, n)
		}
		dst.Set(reflect.ValueOf(n.value).Convert(dst.Type()))
		return nil
	case reflect.String:
		if n.Kind() != String {
			return kindMismatch(String, n)
		}
		dst.SetString(n.value.(string))
		return nil
	case reflect.Slice:
		if n.Kind() != Array {
			return kindMismatch(Array, n)
		}
		nn, _ := n.value.([]*Node)
		out := reflect.MakeSlice(dst.Type(), len(nn), len(nn))
		for i, m := range nn {
			if err := decode(m, out.Index(i)); err != nil {
				return errors.Wrapf(err, "element %d", i)
			}
		}
		dst.Set(out)
		return nil
	case reflect.Map:
		if n.Kind() != Object {
			return kindMismatch(Object, n)
		}
		t := dst.Type()
		if t.Key().Kind() != reflect.String {
			return errors.Wrapf(ErrInvalidInput, "map key type %s, want string", t.Key())
		}
		kn, _ := n.value.([]Entry)
		out := reflect.MakeMapWithSize(t, len(kn))
		for _, e := range kn {
			ev := reflect.New(t.Elem()).Elem()
			if err := decode(e.Node, ev); err != nil {
				return errors.Wrapf(err, "entry %q", e.Key)
			}
			out.SetMapIndex(reflect.ValueOf(e.Key).Convert(t.Key()), ev)
		}
		dst.Set(out)
		return nil
	case reflect.Ptr:
		if n.Kind() == Null {
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return decode(n, dst.Elem())
	case reflect.Struct:
		if n.Kind() != Object {
			return kindMismatch(Object, n)
		}
		t := dst.Type()
		for i := 0; i < t.NumField(); i++ {
			ft := t.Field(i)
			if !ft.IsExported() {
				continue
			}
			key, _, skip := fieldTag(ft)
			if skip {
				continue
			}
			child, ok := n.childByKey(key)
			if !ok {
				continue
			}
			if err := decode(child, dst.Field(i)); err != nil {
				return errors.Wrapf(err, "field %s", ft.Name)
			}
		}
		return nil
	default:
		return errors.Wrapf(ErrInvalidInput, "unsupported decode kind %s", dst.Kind())
	}
}

func kindMismatch(want Kind, n *Node) error {
	return errors.Wrapf(ErrInvalidInput, "mismatched kind: want %s, got %s", want, n.Kind())
}

func fieldTag(ft reflect.StructField) (key string, opts map[string]bool, skip bool) {
	tags := strings.Split(ft.Tag.Get("json"), ",")
	if len(tags) == 1 && tags[0] == "-" {
		return "", nil, true
	}
	key = tags[0]
	if key == "" {
		key = ft.Name
	}
	opts = make(map[string]bool, len(tags)-1)
	for _, tag := range tags[1:] {
		opts[tag] = true
	}
	return key, opts, false
}
