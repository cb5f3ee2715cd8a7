// Package internalcheck holds static policy tests for the ownkit packages.
//
// The tests load the public package source through golang.org/x/tools and
// fail on constructs that would silently break an ownership contract even
// though they compile. Today that is a single rule: the reference-counted
// type must never be copied by value, because a struct copy duplicates the
// count and detaches it from the instance it describes.
package internalcheck
