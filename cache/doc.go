// Package cache provides the bounded compiled-pattern cache shared by
// concurrent matcher callers.
//
// The default implementation is a fixed-capacity LRU backed by
// hashicorp/golang-lru, safe for concurrent use. The Interface type lets
// callers inject an alternative bounded cache at matcher construction.
package cache
