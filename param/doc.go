/*
Package param implements the building blocks for API request bodies in which
most fields are optional.

Opt carries a value together with an explicit presence flag, so "unset" and
"set to the zero value" stay distinguishable. Object accumulates a JSON
object field by field, emitting keys in the order they were set and skipping
absent optionals entirely, so the wire representation contains exactly the
mandatory keys plus whatever the caller chose to provide.
*/
package param
