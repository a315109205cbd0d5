// Package sift implements the search and filter engine behind a
// code-intelligence dashboard: a small query micro-language, a canonical
// filter specification, and a predicate evaluator over symbol records.
//
// # Pipeline
//
// A raw query string flows through three stages:
//
//  1. Parse: [Parse] tokenizes the query ("kind:function state:dead foo")
//     into a canonical [FilterSpec]. Recognized key:value tokens with
//     invalid vocabulary are dropped; everything else becomes free text.
//
//  2. Apply: an [Engine] holds the live FilterSpec. [Engine.Set] and
//     [Engine.Update] merge changes, persist the durable subset, and
//     notify subscribers synchronously with an isolated snapshot.
//
//  3. Filter: [FilterRecords] evaluates the spec against a slice of
//     [Record] symbols, ANDing every active constraint.
//
// # Query grammar
//
// Queries are whitespace-tokenized. Recognized prefixes (case-insensitive):
//
//	kind:<function|method|class|struct|enum|interface|type|variable>
//	state:<used|dead|cycle|entry>
//	file:<glob>
//	refs:<N | >N | <N>
//	callers:<0 | N | >N>
//	callees:<0 | N | >N>
//	entry:<true|false>
//	has:<callers|callees>
//
// Any other token is free text, matched case-insensitively against a
// record's name or path. File globs support '*' (within a path segment),
// '**' (across segments), and '?' (single character), anchored at the
// start of the path only.
//
// # Presets
//
// A [PresetStore] keeps named query strings in durable storage. Applying
// a preset feeds its query back through [Parse]; presets never bypass the
// grammar.
//
// # Usage
//
//	st, err := store.NewStore("sift.db")
//	if err != nil { ... }
//	defer st.Close()
//
//	engine := sift.NewEngine(sift.WithStorage(st))
//	unsub := engine.Subscribe(func(spec sift.FilterSpec) {
//		visible := sift.FilterRecords(symbols, spec)
//		render(visible, engine.ActiveFilters())
//	})
//	defer unsub()
//
//	engine.Set(sift.Parse("state:dead file:internal/**"))
package sift
