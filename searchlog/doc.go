// Package searchlog keeps an append-only, ordered record of completed
// route searches for later inspection.
//
// A Log is owned by the caller and handed to the search engine explicitly
// (astar.WithRecorder); there is no process-wide log. Recording is purely
// observational: nothing in a Log ever influences a search result.
//
// A Log is safe for concurrent use. Records returns copies, so callers may
// keep or modify them freely.
package searchlog
