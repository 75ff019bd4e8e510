// Package format renders log timestamps and heterogeneous log arguments.
//
// Arguments are classified into a closed set of kinds (see [Kind]) and each
// kind has one rendering rule. Values that fit no specific kind fall through
// to [KindOther] and are rendered with fmt.Sprint, so new types degrade to
// their natural string form instead of failing.
//
//	format.Message(nil, "user", 42, true, map[string]any{"id": 7})
//	// user 42 true {
//	//     "id": 7
//	// }
package format
