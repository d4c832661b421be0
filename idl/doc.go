// Package idl holds the resolved interface model consumed by binding generators.
//
// An Interface is an ordered set of type definitions and functions. Type
// definitions live in one arena (Interface.TypeDefs) and are referenced
// everywhere else by TypeDefID, so recursive shapes never nest bodies:
//
//	iface := &idl.Interface{Name: "chat"}
//	msg := iface.AddTypeDef("message", "", &idl.Record{Fields: []idl.Field{
//	    {Name: "body", Type: idl.String{}},
//	    {Name: "reply-to", Type: idl.Option{Type: idl.ID(0)}},
//	}})
//
// The model is produced once per run (see package witimport) and treated as
// read-only by every backend.
package idl
