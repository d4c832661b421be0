package witimport

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/bindgen/errors"
	"github.com/wippyai/bindgen/idl"
)

func ptr(s string) *string { return &s }

// fixture builds a resolve with one interface "store" declaring a record,
// a resource with one method, and two free functions.
func fixture() *wit.Resolve {
	iface := &wit.Interface{Name: ptr("store"), Docs: wit.Docs{Contents: "Key value store."}}

	entry := &wit.TypeDef{
		Name:  ptr("entry"),
		Owner: iface,
		Docs:  wit.Docs{Contents: "One pair."},
		Kind: &wit.Record{Fields: []wit.Field{
			{Name: "key", Type: wit.String{}},
			{Name: "value", Type: &wit.TypeDef{Owner: iface, Kind: &wit.List{Type: wit.U8{}}}},
		}},
	}
	bucket := &wit.TypeDef{Name: ptr("bucket"), Owner: iface, Kind: &wit.Resource{}}
	borrowBucket := &wit.TypeDef{Owner: iface, Kind: &wit.Borrow{Type: bucket}}
	ownBucket := &wit.TypeDef{Owner: iface, Kind: &wit.Own{Type: bucket}}
	errorCode := &wit.TypeDef{Name: ptr("error-code"), Owner: iface, Kind: &wit.Enum{Cases: []wit.EnumCase{
		{Name: "missing"}, {Name: "denied"},
	}}}

	iface.Functions.Set("open", &wit.Function{
		Name:    "open",
		Kind:    &wit.Freestanding{},
		Params:  []wit.Param{{Name: "name", Type: wit.String{}}},
		Results: []wit.Param{{Type: &wit.TypeDef{Owner: iface, Kind: &wit.Result{OK: ownBucket, Err: errorCode}}}},
	})
	iface.Functions.Set("[method]bucket.get", &wit.Function{
		Name: "[method]bucket.get",
		Kind: &wit.Method{Type: bucket},
		Params: []wit.Param{
			{Name: "self", Type: borrowBucket},
			{Name: "key", Type: wit.String{}},
		},
		Results: []wit.Param{{Type: &wit.TypeDef{Owner: iface, Kind: &wit.Option{Type: entry}}}},
	})
	iface.Functions.Set("[constructor]bucket", &wit.Function{
		Name:    "[constructor]bucket",
		Kind:    &wit.Constructor{Type: bucket},
		Results: []wit.Param{{Type: ownBucket}},
	})
	iface.Functions.Set("stats", &wit.Function{
		Name: "stats",
		Kind: &wit.Freestanding{},
		Results: []wit.Param{
			{Name: "count", Type: wit.U64{}},
			{Name: "bytes", Type: wit.U64{}},
		},
	})

	return &wit.Resolve{
		Interfaces: []*wit.Interface{iface, {Docs: wit.Docs{Contents: "anonymous"}}},
		TypeDefs:   []*wit.TypeDef{entry, bucket, borrowBucket, ownBucket, errorCode},
	}
}

func TestConvert(t *testing.T) {
	ifaces, err := Convert(fixture(), Options{})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if len(ifaces) != 1 {
		t.Fatalf("got %d interfaces, want 1 (anonymous interfaces are skipped)", len(ifaces))
	}

	got := ifaces[0]
	if got.Name != "store" || got.Docs != "Key value store." {
		t.Errorf("interface = %q %q", got.Name, got.Docs)
	}

	var names []string
	for _, td := range got.TypeDefs {
		names = append(names, td.Name)
	}
	if diff := cmp.Diff([]string{"entry", "bucket", "error-code"}, names); diff != "" {
		t.Errorf("typedef order mismatch (-want +got):\n%s", diff)
	}

	entry := got.TypeDefs[0]
	if entry.Docs != "One pair." {
		t.Errorf("entry docs = %q", entry.Docs)
	}
	wantEntry := &idl.Record{Fields: []idl.Field{
		{Name: "key", Type: idl.String{}},
		{Name: "value", Type: idl.List{Elem: idl.U8{}}},
	}}
	if diff := cmp.Diff(wantEntry, entry.Kind); diff != "" {
		t.Errorf("entry mismatch (-want +got):\n%s", diff)
	}

	if len(got.Functions) != 2 {
		t.Fatalf("got %d functions, want 2", len(got.Functions))
	}
	open := got.Functions[0]
	if open.Name != "open" || !open.Throws() {
		t.Errorf("open = %+v", open)
	}
	if diff := cmp.Diff(idl.Result{OK: idl.ID(1), Err: idl.ID(2)}, open.Result.Anon); diff != "" {
		t.Errorf("open result mismatch (-want +got):\n%s", diff)
	}

	stats := got.Functions[1]
	if stats.Result.Len() != 2 || stats.Result.Named[0].Name != "count" {
		t.Errorf("stats result = %+v", stats.Result)
	}

	methods := got.TypeDefs[1].Kind.(*idl.Resource).Methods
	if len(methods) != 1 {
		t.Fatalf("got %d methods, want 1 (constructor skipped)", len(methods))
	}
	get := methods[0]
	if get.Name != "get" {
		t.Errorf("method name = %q, want get", get.Name)
	}
	if diff := cmp.Diff([]idl.Param{{Name: "key", Type: idl.String{}}}, get.Params); diff != "" {
		t.Errorf("method params mismatch, self must be dropped (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(idl.Option{Type: idl.ID(0)}, get.Result.Anon); diff != "" {
		t.Errorf("method result mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_Skip(t *testing.T) {
	ifaces, err := Convert(fixture(), Options{Skip: []string{"stats", "bucket.get"}})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	iface := ifaces[0]
	if len(iface.Functions) != 1 || iface.Functions[0].Name != "open" {
		t.Errorf("functions after skip = %d", len(iface.Functions))
	}
	if n := len(iface.Methods()); n != 0 {
		t.Errorf("methods after skip = %d, want 0", n)
	}
}

func TestConvert_Recursive(t *testing.T) {
	iface := &wit.Interface{Name: ptr("tree")}
	node := &wit.TypeDef{Name: ptr("node"), Owner: iface}
	node.Kind = &wit.Record{Fields: []wit.Field{
		{Name: "children", Type: &wit.TypeDef{Owner: iface, Kind: &wit.List{Type: node}}},
	}}

	ifaces, err := Convert(&wit.Resolve{Interfaces: []*wit.Interface{iface}, TypeDefs: []*wit.TypeDef{node}}, Options{})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	want := &idl.Record{Fields: []idl.Field{{Name: "children", Type: idl.List{Elem: idl.ID(0)}}}}
	if diff := cmp.Diff(want, ifaces[0].TypeDefs[0].Kind); diff != "" {
		t.Errorf("recursive record mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_AliasAndForeignType(t *testing.T) {
	types := &wit.Interface{Name: ptr("types")}
	api := &wit.Interface{Name: ptr("api")}

	id := &wit.TypeDef{Name: ptr("id"), Owner: types, Kind: wit.U64{}}
	used := &wit.TypeDef{Name: ptr("id"), Owner: api, Kind: id}
	api.Functions.Set("lookup", &wit.Function{
		Name:   "lookup",
		Kind:   &wit.Freestanding{},
		Params: []wit.Param{{Name: "id", Type: used}},
	})

	ifaces, err := Convert(&wit.Resolve{
		Interfaces: []*wit.Interface{types, api},
		TypeDefs:   []*wit.TypeDef{id, used},
	}, Options{})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	got := ifaces[1]
	if len(got.TypeDefs) != 2 {
		t.Fatalf("api typedefs = %d, want local alias plus imported target", len(got.TypeDefs))
	}
	if diff := cmp.Diff(&idl.Alias{Type: idl.ID(1)}, got.TypeDefs[0].Kind); diff != "" {
		t.Errorf("alias mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(&idl.Alias{Type: idl.U64{}}, got.TypeDefs[1].Kind); diff != "" {
		t.Errorf("imported target mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_Unsupported(t *testing.T) {
	tests := []struct {
		name    string
		kind    wit.TypeDefKind
		witType string
	}{
		{"future", &wit.Future{}, "future"},
		{"stream", &wit.Stream{}, "stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iface := &wit.Interface{Name: ptr("async")}
			td := &wit.TypeDef{Name: ptr("pending"), Owner: iface, Kind: tt.kind}

			_, err := Convert(&wit.Resolve{Interfaces: []*wit.Interface{iface}, TypeDefs: []*wit.TypeDef{td}}, Options{})
			var e *errors.Error
			if !stderrors.As(err, &e) {
				t.Fatalf("error = %v, want *errors.Error", err)
			}
			if e.Kind != errors.KindUnsupported || e.Phase != errors.PhaseResolve || e.WitType != tt.witType {
				t.Errorf("error = %+v", e)
			}
			if diff := cmp.Diff([]string{"async", "pending"}, e.Path); diff != "" {
				t.Errorf("path mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvert_FlagsLimit(t *testing.T) {
	build := func(n int) *wit.Resolve {
		iface := &wit.Interface{Name: ptr("perm")}
		flags := make([]wit.Flag, n)
		for i := range flags {
			flags[i] = wit.Flag{Name: fmt.Sprintf("f%d", i)}
		}
		td := &wit.TypeDef{Name: ptr("bits"), Owner: iface, Kind: &wit.Flags{Flags: flags}}
		return &wit.Resolve{Interfaces: []*wit.Interface{iface}, TypeDefs: []*wit.TypeDef{td}}
	}

	ifaces, err := Convert(build(idl.MaxFlagsFields), Options{})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got := len(ifaces[0].TypeDefs[0].Kind.(*idl.Flags).Fields); got != idl.MaxFlagsFields {
		t.Errorf("fields = %d, want %d", got, idl.MaxFlagsFields)
	}

	_, err = Convert(build(idl.MaxFlagsFields+1), Options{})
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error = %v, want *errors.Error", err)
	}
	if e.Kind != errors.KindUnsupported || e.Phase != errors.PhaseResolve || e.WitType != "flags" {
		t.Errorf("error = %+v", e)
	}
	if diff := cmp.Diff([]string{"perm", "bits"}, e.Path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(strings.NewReader("{not json"), Options{})
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Phase != errors.PhaseLoad {
		t.Fatalf("error = %v, want load phase error", err)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(t.TempDir()+"/missing.wit.json", Options{})
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Phase != errors.PhaseLoad {
		t.Fatalf("error = %v, want load phase error", err)
	}
}

func TestSelect(t *testing.T) {
	a := &idl.Interface{Name: "a"}
	b := &idl.Interface{Name: "b"}
	all := []*idl.Interface{a, b}

	got, err := Select(all, nil)
	if err != nil || len(got) != 2 {
		t.Fatalf("Select(nil) = %v, %v", got, err)
	}

	got, err = Select(all, []string{"b", "a"})
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != b || got[1] != a {
		t.Error("Select did not keep requested order")
	}

	_, err = Select(all, []string{"c"})
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindNotFound {
		t.Errorf("error = %v, want not_found", err)
	}
}

func TestBaseName(t *testing.T) {
	tests := map[string]string{
		"[method]bucket.get":       "get",
		"[method]file-handle.read": "read",
		"plain":                    "plain",
	}
	for in, want := range tests {
		if got := baseName(in); got != want {
			t.Errorf("baseName(%q) = %q, want %q", in, got, want)
		}
	}
}
