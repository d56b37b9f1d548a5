/*
Package planfind locates keys in Terraform plan JSON.

The package is centered around a tree model: a document is parsed into a
Node, a tagged variant that is either an object (ordered key-value
entries), an array, or a scalar. FindKey walks a tree and reports the
access path of every entry carrying a given key, no matter how deeply it
is nested. Values are reported raw; a bare scalar and a wrapped
{"constant_value": ...} encoding of the same logical field are two
distinct matches.

Trees can also be built from YAML documents and from plain Go values, so
the same search works on a plan regardless of how it was serialized.
*/
package planfind
