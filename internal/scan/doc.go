// Package scan discovers candidate playlist files under one or more roots.
//
// Discovery is extension-driven and case-insensitive, skips hidden entries
// unless configured otherwise, and always excludes the stats directory so a
// run never processes its own snapshot storage. Unreadable subtrees are
// logged and skipped rather than aborting discovery.
package scan
