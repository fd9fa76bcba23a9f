// Package plan describes schema patch plans.
//
// A [Plan] is an ordered list of steps.  Each step either adds a field
// line to a model after an anchor field ([AddField]) or inserts a
// section of schema text before a marker comment ([InsertSection]).
//
// Plans are written in YAML and loaded with [Load]; an overlay given
// with [WithOverlay] is applied to the plan as a JSON patch (RFC 6902)
// or merge patch (RFC 7386) before it is decoded.  Anchors may carry a
// "where" expression, evaluated with github.com/expr-lang/expr against
// the candidate field.
//
// [Builtin] returns the embedded order-bump plan.
package plan
