// Package registry selects the wire type and conversion for a daemon method at
// a given release.
//
// Each method is registered once per release that changed its reply. Lookup
// picks the newest registration not newer than the requested release, the
// same way the version packages alias unchanged replies.
package registry

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/DOIDFoundation/corerpc/metrics"
)

const (
	MinVersion = 17
	MaxVersion = 28
)

// Converter decodes a raw daemon reply and converts it into its model type.
type Converter func(raw json.RawMessage) (any, error)

// Method describes one supported daemon method.
type Method struct {
	// Name is the registry name. Verbose variants carry a "_verbose" suffix.
	Name string `json:"name" yaml:"name"`
	// RPC is the daemon method to call.
	RPC string `json:"rpc" yaml:"rpc"`
	// Verbose methods take a trailing true parameter.
	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"`
	// Since is the first release providing the method.
	Since int `json:"since" yaml:"since"`
	// Buckets lists the releases whose reply shape differs from the one before.
	Buckets []int `json:"buckets" yaml:"buckets"`

	convert map[int]Converter
}

var methods = map[string]*Method{}

func register(name string, bucket int, convert Converter) {
	m, ok := methods[name]
	if !ok {
		rpc, verbose := name, false
		if n := len(name) - len("_verbose"); n > 0 && name[n:] == "_verbose" {
			rpc, verbose = name[:n], true
		}
		m = &Method{Name: name, RPC: rpc, Verbose: verbose, Since: bucket, convert: map[int]Converter{}}
		methods[name] = m
	}
	if _, dup := m.convert[bucket]; dup {
		panic(fmt.Sprintf("registry: %s registered twice for v%d", name, bucket))
	}
	m.convert[bucket] = convert
	m.Buckets = append(m.Buckets, bucket)
	sort.Ints(m.Buckets)
	if bucket < m.Since {
		m.Since = bucket
	}
}

// Get returns the method registered under name.
func Get(name string) (Method, error) {
	m, ok := methods[name]
	if !ok {
		return Method{}, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
	return *m, nil
}

// Methods returns all supported methods ordered by name.
func Methods() []Method {
	out := make([]Method, 0, len(methods))
	for _, m := range methods {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Bucket returns the release whose wire type serves the method at version.
func (m Method) Bucket(version int) (int, error) {
	if version < MinVersion || version > MaxVersion {
		return 0, fmt.Errorf("%w: v%d", ErrUnsupportedVersion, version)
	}
	if version < m.Since {
		return 0, fmt.Errorf("%w: %s needs v%d, daemon is v%d", ErrUnsupportedVersion, m.Name, m.Since, version)
	}
	bucket := m.Since
	for _, b := range m.Buckets {
		if b <= version {
			bucket = b
		}
	}
	return bucket, nil
}

// Lookup returns the converter of method name at daemon release version.
func Lookup(name string, version int) (Converter, error) {
	m, err := Get(name)
	if err != nil {
		return nil, err
	}
	bucket, err := m.Bucket(version)
	if err != nil {
		return nil, err
	}
	return m.convert[bucket], nil
}

// Convert decodes raw as the reply of method name at daemon release version
// and converts it into the model type. Outcomes are counted in metrics.
func Convert(name string, version int, raw json.RawMessage) (any, error) {
	convert, err := Lookup(name, version)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	v, err := convert(raw)
	if err != nil {
		if de, ok := err.(*DecodeError); ok {
			de.Method, de.Version = name, version
		}
	}
	metrics.ObserveConversion(name, version, time.Since(start), err)
	return v, err
}

type wire[M any] interface {
	IntoModel() (M, error)
}

// conv builds the converter of wire type W.
func conv[W wire[M], M any](raw json.RawMessage) (any, error) {
	var w W
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, &DecodeError{Err: err}
	}
	m, err := w.IntoModel()
	if err != nil {
		return nil, err
	}
	return m, nil
}

type infallible[M any] interface {
	IntoModel() M
}

// convInfallible builds the converter of a wire type whose conversion cannot
// fail.
func convInfallible[W infallible[M], M any](raw json.RawMessage) (any, error) {
	var w W
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return w.IntoModel(), nil
}
